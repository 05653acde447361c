package repository

import "github.com/kardexcloud/kardex-api/internal/domain/entity"

// MovementTypeRepository define el puerto para tipos de movimiento.
// GetVisible resuelve un tipo visible para la empresa: del sistema o propio.
type MovementTypeRepository interface {
	Create(mt *entity.MovementType) error
	GetVisible(id, companyID string) (*entity.MovementType, error)
	GetByCode(code string) (*entity.MovementType, error)
	ListVisible(companyID string) ([]*entity.MovementType, error)
}
