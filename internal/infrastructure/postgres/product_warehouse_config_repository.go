package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kardexcloud/kardex-api/internal/domain/entity"
	"github.com/kardexcloud/kardex-api/internal/domain/repository"
)

var _ repository.ProductWarehouseConfigRepository = (*ProductWarehouseConfigRepo)(nil)

// ProductWarehouseConfigRepo implementación de los umbrales de stock por
// producto/almacén/ubicación.
type ProductWarehouseConfigRepo struct {
	q Querier
}

// NewProductWarehouseConfigRepository construye el adaptador de umbrales de stock.
func NewProductWarehouseConfigRepository(q Querier) *ProductWarehouseConfigRepo {
	return &ProductWarehouseConfigRepo{q: q}
}

// Get obtiene la configuración del triple producto/almacén/ubicación.
func (r *ProductWarehouseConfigRepo) Get(productID, warehouseID string, locationID *string) (*entity.ProductWarehouseConfig, error) {
	query := `
		SELECT id, product_id, warehouse_id, location_id, min_stock, max_stock, reorder_point, created_at, updated_at
		FROM product_warehouse_configs
		WHERE product_id = $1 AND warehouse_id = $2 AND location_id IS NOT DISTINCT FROM $3`
	var c entity.ProductWarehouseConfig
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID, locationID).Scan(
		&c.ID, &c.ProductID, &c.WarehouseID, &c.LocationID,
		&c.MinStock, &c.MaxStock, &c.ReorderPoint, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock config: %w", err)
	}
	return &c, nil
}

// Upsert inserta o actualiza la configuración.
func (r *ProductWarehouseConfigRepo) Upsert(config *entity.ProductWarehouseConfig) error {
	query := `
		INSERT INTO product_warehouse_configs (id, product_id, warehouse_id, location_id, min_stock, max_stock, reorder_point, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (product_id, warehouse_id, location_id)
		DO UPDATE SET min_stock = EXCLUDED.min_stock, max_stock = EXCLUDED.max_stock,
		              reorder_point = EXCLUDED.reorder_point, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		config.ID, config.ProductID, config.WarehouseID, config.LocationID,
		config.MinStock, config.MaxStock, config.ReorderPoint, config.CreatedAt, config.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert stock config: %w", err)
	}
	return nil
}

// ListByCompany lista las configuraciones de los productos de la empresa.
func (r *ProductWarehouseConfigRepo) ListByCompany(companyID string) ([]*entity.ProductWarehouseConfig, error) {
	query := `
		SELECT c.id, c.product_id, c.warehouse_id, c.location_id, c.min_stock, c.max_stock, c.reorder_point, c.created_at, c.updated_at
		FROM product_warehouse_configs c
		JOIN products p ON p.id = c.product_id
		WHERE p.company_id = $1
		ORDER BY c.created_at`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list stock configs: %w", err)
	}
	defer rows.Close()

	var configs []*entity.ProductWarehouseConfig
	for rows.Next() {
		var c entity.ProductWarehouseConfig
		if err := rows.Scan(&c.ID, &c.ProductID, &c.WarehouseID, &c.LocationID,
			&c.MinStock, &c.MaxStock, &c.ReorderPoint, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock config: %w", err)
		}
		configs = append(configs, &c)
	}
	return configs, rows.Err()
}
