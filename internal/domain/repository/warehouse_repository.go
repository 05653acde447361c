package repository

import "github.com/kardexcloud/kardex-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para almacenes.
// Todas las consultas filtran por empresa: un ID de otra empresa se comporta
// como inexistente.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id, companyID string) (*entity.Warehouse, error)
	GetByCode(code, companyID string) (*entity.Warehouse, error)
	ListByCompany(companyID string, onlyActive bool, limit, offset int) ([]*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	CountActiveLocations(warehouseID string) (int, error)
}
