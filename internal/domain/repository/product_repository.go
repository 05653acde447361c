package repository

import "github.com/kardexcloud/kardex-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id, companyID string) (*entity.Product, error)
	GetByCode(code, companyID string) (*entity.Product, error)
	ListByCompany(companyID string, onlyActive bool, limit, offset int) ([]*entity.Product, error)
	// Search busca por código o nombre normalizados (sin acentos, sin
	// distinción de mayúsculas).
	Search(companyID, query string, limit int) ([]*entity.Product, error)
	Update(product *entity.Product) error
}
