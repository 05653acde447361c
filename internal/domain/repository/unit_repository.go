package repository

import "github.com/kardexcloud/kardex-api/internal/domain/entity"

// UnitOfMeasureRepository define el puerto para el catálogo global de
// unidades (solo lectura fuera del seed).
type UnitOfMeasureRepository interface {
	Create(unit *entity.UnitOfMeasure) error
	GetByID(id string) (*entity.UnitOfMeasure, error)
	List() ([]*entity.UnitOfMeasure, error)
}

// ProductUnitRepository define el puerto para las asociaciones
// producto-unidad con su factor de conversión.
type ProductUnitRepository interface {
	Create(pu *entity.ProductUnit) error
	// GetByID devuelve nil si la asociación no existe o no pertenece al
	// producto indicado (los IDs de otra asociación se rechazan como
	// inexistentes).
	GetByID(id, productID string) (*entity.ProductUnit, error)
	GetByProductAndUnit(productID, unitID string) (*entity.ProductUnit, error)
	ListByProduct(productID string) ([]*entity.ProductUnit, error)
	CountByProduct(productID string) (int, error)
	// UnmarkPrimary quita la marca de principal a todas las asociaciones del
	// producto.
	UnmarkPrimary(productID string) error
}
