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

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
// Toda consulta filtra por empresa: los IDs de otra empresa no existen aquí.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para almacenes.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste un nuevo almacén.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, company_id, code, name, address, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.CompanyID, warehouse.Code, warehouse.Name,
		warehouse.Address, warehouse.Active, warehouse.CreatedAt, warehouse.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene un almacén por ID dentro de la empresa.
func (r *WarehouseRepo) GetByID(id, companyID string) (*entity.Warehouse, error) {
	query := `
		SELECT id, company_id, code, name, address, active, created_at, updated_at
		FROM warehouses WHERE id = $1 AND company_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, companyID))
}

// GetByCode obtiene un almacén por código dentro de la empresa.
func (r *WarehouseRepo) GetByCode(code, companyID string) (*entity.Warehouse, error) {
	query := `
		SELECT id, company_id, code, name, address, active, created_at, updated_at
		FROM warehouses WHERE code = $1 AND company_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code, companyID))
}

// ListByCompany lista los almacenes de la empresa.
func (r *WarehouseRepo) ListByCompany(companyID string, onlyActive bool, limit, offset int) ([]*entity.Warehouse, error) {
	query := `
		SELECT id, company_id, code, name, address, active, created_at, updated_at
		FROM warehouses
		WHERE company_id = $1 AND ($2 = false OR active = true)
		ORDER BY code LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, onlyActive, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	var warehouses []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.CompanyID, &w.Code, &w.Name, &w.Address, &w.Active, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		warehouses = append(warehouses, &w)
	}
	return warehouses, rows.Err()
}

// Update actualiza nombre, dirección y estado del almacén.
func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET name = $1, address = $2, active = $3, updated_at = $4
		WHERE id = $5 AND company_id = $6`
	tag, err := r.q.Exec(context.Background(), query,
		warehouse.Name, warehouse.Address, warehouse.Active, warehouse.UpdatedAt,
		warehouse.ID, warehouse.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountActiveLocations cuenta las ubicaciones activas del almacén.
func (r *WarehouseRepo) CountActiveLocations(warehouseID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM locations WHERE warehouse_id = $1 AND active = true`,
		warehouseID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count locations: %w", err)
	}
	return count, nil
}

func (r *WarehouseRepo) scanOne(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := row.Scan(&w.ID, &w.CompanyID, &w.Code, &w.Name, &w.Address, &w.Active, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}
