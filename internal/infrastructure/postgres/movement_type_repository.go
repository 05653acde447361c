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

var _ repository.MovementTypeRepository = (*MovementTypeRepo)(nil)

// MovementTypeRepo implementación del puerto MovementTypeRepository.
// Los tipos del sistema (company_id NULL) son visibles para toda empresa.
type MovementTypeRepo struct {
	q Querier
}

// NewMovementTypeRepository construye el adaptador de tipos de movimiento.
func NewMovementTypeRepository(q Querier) *MovementTypeRepo {
	return &MovementTypeRepo{q: q}
}

// Create persiste un tipo de movimiento (seed o tipos propios de la empresa).
func (r *MovementTypeRepo) Create(mt *entity.MovementType) error {
	query := `
		INSERT INTO movement_types (id, company_id, code, name, affects_stock, requires_destination, is_system, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		mt.ID, mt.CompanyID, mt.Code, mt.Name, mt.AffectsStock,
		mt.RequiresDestination, mt.IsSystem, mt.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert movement type: %w", err)
	}
	return nil
}

// GetVisible obtiene un tipo visible para la empresa: del sistema o propio.
func (r *MovementTypeRepo) GetVisible(id, companyID string) (*entity.MovementType, error) {
	query := `
		SELECT id, company_id, code, name, affects_stock, requires_destination, is_system, created_at
		FROM movement_types WHERE id = $1 AND (company_id IS NULL OR company_id = $2)`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, companyID))
}

// GetByCode obtiene un tipo del sistema por su código.
func (r *MovementTypeRepo) GetByCode(code string) (*entity.MovementType, error) {
	query := `
		SELECT id, company_id, code, name, affects_stock, requires_destination, is_system, created_at
		FROM movement_types WHERE code = $1 AND is_system = true`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code))
}

// ListVisible lista los tipos visibles para la empresa, sistema primero.
func (r *MovementTypeRepo) ListVisible(companyID string) ([]*entity.MovementType, error) {
	query := `
		SELECT id, company_id, code, name, affects_stock, requires_destination, is_system, created_at
		FROM movement_types WHERE company_id IS NULL OR company_id = $1
		ORDER BY is_system DESC, code`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list movement types: %w", err)
	}
	defer rows.Close()

	var types []*entity.MovementType
	for rows.Next() {
		var mt entity.MovementType
		if err := rows.Scan(&mt.ID, &mt.CompanyID, &mt.Code, &mt.Name, &mt.AffectsStock, &mt.RequiresDestination, &mt.IsSystem, &mt.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement type: %w", err)
		}
		types = append(types, &mt)
	}
	return types, rows.Err()
}

func (r *MovementTypeRepo) scanOne(row pgx.Row) (*entity.MovementType, error) {
	var mt entity.MovementType
	err := row.Scan(&mt.ID, &mt.CompanyID, &mt.Code, &mt.Name, &mt.AffectsStock, &mt.RequiresDestination, &mt.IsSystem, &mt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement type: %w", err)
	}
	return &mt, nil
}
