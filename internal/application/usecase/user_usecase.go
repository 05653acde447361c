package usecase

import (
	"time"

	"github.com/kardexcloud/kardex-api/internal/application/dto"
	"github.com/kardexcloud/kardex-api/internal/domain"
	"github.com/kardexcloud/kardex-api/internal/domain/entity"
	"github.com/kardexcloud/kardex-api/internal/domain/repository"
)

// UserUseCase administración de usuarios dentro de una empresa (el alta es
// responsabilidad del caso de uso de autenticación).
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// GetByID obtiene un usuario de la empresa.
func (uc *UserUseCase) GetByID(id, companyID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// List lista los usuarios de la empresa.
func (uc *UserUseCase) List(companyID string, limit, offset int) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// Update cambia nombre o rol de un usuario de la empresa.
func (uc *UserUseCase) Update(id, companyID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		switch *in.Role {
		case entity.RoleAdmin, entity.RoleOperador, entity.RoleConsulta:
			user.Role = *in.Role
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Deactivate desactiva un usuario. Un usuario inactivo no puede iniciar
// sesión.
func (uc *UserUseCase) Deactivate(id, companyID string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil || user.CompanyID != companyID {
		return domain.ErrNotFound
	}
	if !user.Active {
		return domain.ErrInvalidInput
	}
	user.Active = false
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Active:    u.Active,
	}
}
