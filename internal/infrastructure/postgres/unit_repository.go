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

var _ repository.UnitOfMeasureRepository = (*UnitOfMeasureRepo)(nil)
var _ repository.ProductUnitRepository = (*ProductUnitRepo)(nil)

// UnitOfMeasureRepo implementación del catálogo global de unidades.
type UnitOfMeasureRepo struct {
	q Querier
}

// NewUnitOfMeasureRepository construye el adaptador del catálogo de unidades.
func NewUnitOfMeasureRepository(q Querier) *UnitOfMeasureRepo {
	return &UnitOfMeasureRepo{q: q}
}

// Create persiste una unidad del catálogo (usado por el seed).
func (r *UnitOfMeasureRepo) Create(unit *entity.UnitOfMeasure) error {
	query := `
		INSERT INTO units_of_measure (id, name, abbreviation, category, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.Name, unit.Abbreviation, unit.Category, unit.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad del catálogo.
func (r *UnitOfMeasureRepo) GetByID(id string) (*entity.UnitOfMeasure, error) {
	query := `
		SELECT id, name, abbreviation, category, created_at
		FROM units_of_measure WHERE id = $1`
	var u entity.UnitOfMeasure
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Name, &u.Abbreviation, &u.Category, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}

// List devuelve el catálogo completo de unidades.
func (r *UnitOfMeasureRepo) List() ([]*entity.UnitOfMeasure, error) {
	query := `
		SELECT id, name, abbreviation, category, created_at
		FROM units_of_measure ORDER BY category, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var units []*entity.UnitOfMeasure
	for rows.Next() {
		var u entity.UnitOfMeasure
		if err := rows.Scan(&u.ID, &u.Name, &u.Abbreviation, &u.Category, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		units = append(units, &u)
	}
	return units, rows.Err()
}

// ProductUnitRepo implementación de las asociaciones producto-unidad.
type ProductUnitRepo struct {
	q Querier
}

// NewProductUnitRepository construye el adaptador de asociaciones producto-unidad.
func NewProductUnitRepository(q Querier) *ProductUnitRepo {
	return &ProductUnitRepo{q: q}
}

// Create persiste una asociación producto-unidad.
func (r *ProductUnitRepo) Create(pu *entity.ProductUnit) error {
	query := `
		INSERT INTO product_units (id, product_id, unit_id, conversion_factor, is_primary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		pu.ID, pu.ProductID, pu.UnitID, pu.ConversionFactor, pu.IsPrimary, pu.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert product unit: %w", err)
	}
	return nil
}

// GetByID obtiene una asociación por ID; devuelve nil si no pertenece al
// producto indicado.
func (r *ProductUnitRepo) GetByID(id, productID string) (*entity.ProductUnit, error) {
	query := `
		SELECT id, product_id, unit_id, conversion_factor, is_primary, created_at
		FROM product_units WHERE id = $1 AND product_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, productID))
}

// GetByProductAndUnit obtiene la asociación de un producto con una unidad.
func (r *ProductUnitRepo) GetByProductAndUnit(productID, unitID string) (*entity.ProductUnit, error) {
	query := `
		SELECT id, product_id, unit_id, conversion_factor, is_primary, created_at
		FROM product_units WHERE product_id = $1 AND unit_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID, unitID))
}

// ListByProduct lista las asociaciones del producto, la principal primero.
func (r *ProductUnitRepo) ListByProduct(productID string) ([]*entity.ProductUnit, error) {
	query := `
		SELECT id, product_id, unit_id, conversion_factor, is_primary, created_at
		FROM product_units WHERE product_id = $1
		ORDER BY is_primary DESC, created_at`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product units: %w", err)
	}
	defer rows.Close()

	var units []*entity.ProductUnit
	for rows.Next() {
		var pu entity.ProductUnit
		if err := rows.Scan(&pu.ID, &pu.ProductID, &pu.UnitID, &pu.ConversionFactor, &pu.IsPrimary, &pu.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product unit: %w", err)
		}
		units = append(units, &pu)
	}
	return units, rows.Err()
}

// CountByProduct cuenta las asociaciones del producto.
func (r *ProductUnitRepo) CountByProduct(productID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM product_units WHERE product_id = $1`, productID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count product units: %w", err)
	}
	return count, nil
}

// UnmarkPrimary quita la marca de principal a todas las asociaciones del producto.
func (r *ProductUnitRepo) UnmarkPrimary(productID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE product_units SET is_primary = false WHERE product_id = $1`, productID,
	)
	if err != nil {
		return fmt.Errorf("unmark primary unit: %w", err)
	}
	return nil
}

func (r *ProductUnitRepo) scanOne(row pgx.Row) (*entity.ProductUnit, error) {
	var pu entity.ProductUnit
	err := row.Scan(&pu.ID, &pu.ProductID, &pu.UnitID, &pu.ConversionFactor, &pu.IsPrimary, &pu.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product unit: %w", err)
	}
	return &pu, nil
}
