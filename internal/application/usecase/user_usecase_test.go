package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kardexcloud/kardex-api/internal/application/dto"
	"github.com/kardexcloud/kardex-api/internal/application/usecase"
	"github.com/kardexcloud/kardex-api/internal/domain"
	"github.com/kardexcloud/kardex-api/internal/domain/entity"
	"github.com/kardexcloud/kardex-api/internal/domain/repository"
)

type fakeUserRepo struct{ items []*entity.User }

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.items {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Email == email && u.CompanyID == companyID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.items {
		if u.CompanyID == companyID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	for i, it := range r.items {
		if it.ID == u.ID {
			cp := *u
			r.items[i] = &cp
		}
	}
	return nil
}

func newUserEnv(t *testing.T) (*fakeUserRepo, *usecase.UserUseCase) {
	t.Helper()
	repo := &fakeUserRepo{}
	require.NoError(t, repo.Create(&entity.User{
		ID: "u1", CompanyID: companyID, Email: "admin@acme.com", Name: "Admin", Role: entity.RoleAdmin, Active: true,
	}))
	return repo, usecase.NewUserUseCase(repo)
}

func TestUser_GetByID_OtraEmpresaEsNotFound(t *testing.T) {
	_, uc := newUserEnv(t)

	// aunque el ID exista, desde otra empresa se comporta como inexistente
	_, err := uc.GetByID("u1", "otra-empresa")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUser_Update_RolInvalido(t *testing.T) {
	_, uc := newUserEnv(t)

	rol := "superadmin"
	_, err := uc.Update("u1", companyID, dto.UpdateUserRequest{Role: &rol})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUser_Update_CambioDeRol(t *testing.T) {
	_, uc := newUserEnv(t)

	rol := entity.RoleConsulta
	got, err := uc.Update("u1", companyID, dto.UpdateUserRequest{Role: &rol})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleConsulta, got.Role)
}

func TestUser_Deactivate_YaInactivo(t *testing.T) {
	_, uc := newUserEnv(t)

	require.NoError(t, uc.Deactivate("u1", companyID))
	err := uc.Deactivate("u1", companyID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
