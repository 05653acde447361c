package repository

import "github.com/kardexcloud/kardex-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para empresas.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
}
