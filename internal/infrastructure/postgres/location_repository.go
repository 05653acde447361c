package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kardexcloud/kardex-api/internal/domain"
	"github.com/kardexcloud/kardex-api/internal/domain/entity"
	"github.com/kardexcloud/kardex-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de persistencia para ubicaciones.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una nueva ubicación.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (id, warehouse_id, code, name, description, parent_id, level, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.WarehouseID, location.Code, location.Name, location.Description,
		location.ParentID, location.Level, location.Active, location.CreatedAt, location.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID dentro del almacén.
func (r *LocationRepo) GetByID(id, warehouseID string) (*entity.Location, error) {
	query := `
		SELECT id, warehouse_id, code, name, description, parent_id, level, active, created_at, updated_at
		FROM locations WHERE id = $1 AND warehouse_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, warehouseID))
}

// GetByCode obtiene una ubicación por código dentro del almacén.
func (r *LocationRepo) GetByCode(code, warehouseID string) (*entity.Location, error) {
	query := `
		SELECT id, warehouse_id, code, name, description, parent_id, level, active, created_at, updated_at
		FROM locations WHERE code = $1 AND warehouse_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code, warehouseID))
}

// ListByWarehouse lista las ubicaciones activas del almacén, padres antes que
// hijas (nivel ascendente) para poder armar el árbol en una pasada.
func (r *LocationRepo) ListByWarehouse(warehouseID string) ([]*entity.Location, error) {
	query := `
		SELECT id, warehouse_id, code, name, description, parent_id, level, active, created_at, updated_at
		FROM locations WHERE warehouse_id = $1 AND active = true
		ORDER BY level, code`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var locations []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.WarehouseID, &l.Code, &l.Name, &l.Description, &l.ParentID, &l.Level, &l.Active, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, &l)
	}
	return locations, rows.Err()
}

// Update actualiza código, nombre, descripción y estado de la ubicación.
func (r *LocationRepo) Update(location *entity.Location) error {
	query := `
		UPDATE locations SET code = $1, name = $2, description = $3, active = $4, updated_at = $5
		WHERE id = $6 AND warehouse_id = $7`
	tag, err := r.q.Exec(context.Background(), query,
		location.Code, location.Name, location.Description, location.Active, location.UpdatedAt,
		location.ID, location.WarehouseID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountActiveChildren cuenta las ubicaciones hijas activas.
func (r *LocationRepo) CountActiveChildren(parentID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM locations WHERE parent_id = $1 AND active = true`,
		parentID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count child locations: %w", err)
	}
	return count, nil
}

func (r *LocationRepo) scanOne(row pgx.Row) (*entity.Location, error) {
	var l entity.Location
	err := row.Scan(&l.ID, &l.WarehouseID, &l.Code, &l.Name, &l.Description, &l.ParentID, &l.Level, &l.Active, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}
