package repository

import "github.com/kardexcloud/kardex-api/internal/domain/entity"

// ProductWarehouseConfigRepository define el puerto para los umbrales de
// stock por producto/almacén/ubicación.
type ProductWarehouseConfigRepository interface {
	Get(productID, warehouseID string, locationID *string) (*entity.ProductWarehouseConfig, error)
	Upsert(config *entity.ProductWarehouseConfig) error
	ListByCompany(companyID string) ([]*entity.ProductWarehouseConfig, error)
}
