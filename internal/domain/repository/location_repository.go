package repository

import "github.com/kardexcloud/kardex-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para ubicaciones.
// Las ubicaciones se alcanzan siempre a través de su almacén.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id, warehouseID string) (*entity.Location, error)
	GetByCode(code, warehouseID string) (*entity.Location, error)
	ListByWarehouse(warehouseID string) ([]*entity.Location, error)
	Update(location *entity.Location) error
	CountActiveChildren(parentID string) (int, error)
}
