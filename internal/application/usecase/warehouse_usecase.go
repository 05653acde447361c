package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/kardexcloud/kardex-api/internal/application/dto"
	"github.com/kardexcloud/kardex-api/internal/domain"
	"github.com/kardexcloud/kardex-api/internal/domain/entity"
	"github.com/kardexcloud/kardex-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso de almacenes y su jerarquía de ubicaciones.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
	locationRepo  repository.LocationRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(warehouseRepo repository.WarehouseRepository, locationRepo repository.LocationRepository) *WarehouseUseCase {
	return &WarehouseUseCase{warehouseRepo: warehouseRepo, locationRepo: locationRepo}
}

// Create crea un almacén. El código es único por empresa.
func (uc *WarehouseUseCase) Create(companyID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	existing, err := uc.warehouseRepo.GetByCode(in.Code, companyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Code:      in.Code,
		Name:      in.Name,
		Address:   in.Address,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.warehouseRepo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene un almacén de la empresa.
func (uc *WarehouseUseCase) GetByID(id, companyID string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista los almacenes de la empresa.
func (uc *WarehouseUseCase) List(companyID string, onlyActive bool, limit, offset int) ([]dto.WarehouseResponse, error) {
	warehouses, err := uc.warehouseRepo.ListByCompany(companyID, onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, *toWarehouseResponse(w))
	}
	return out, nil
}

// Update actualiza nombre y dirección de un almacén.
func (uc *WarehouseUseCase) Update(id, companyID string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		warehouse.Name = *in.Name
	}
	if in.Address != nil {
		warehouse.Address = *in.Address
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.warehouseRepo.Update(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Deactivate desactiva un almacén. Falla si tiene ubicaciones activas.
func (uc *WarehouseUseCase) Deactivate(id, companyID string) error {
	warehouse, err := uc.warehouseRepo.GetByID(id, companyID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	if !warehouse.Active {
		return domain.ErrInvalidInput // el almacén ya está inactivo
	}
	count, err := uc.warehouseRepo.CountActiveLocations(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict // tiene ubicaciones activas
	}
	warehouse.Active = false
	warehouse.UpdatedAt = time.Now()
	return uc.warehouseRepo.Update(warehouse)
}

// Activate reactiva un almacén desactivado.
func (uc *WarehouseUseCase) Activate(id, companyID string) error {
	warehouse, err := uc.warehouseRepo.GetByID(id, companyID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	if warehouse.Active {
		return domain.ErrInvalidInput
	}
	warehouse.Active = true
	warehouse.UpdatedAt = time.Now()
	return uc.warehouseRepo.Update(warehouse)
}

// CreateLocation crea una ubicación dentro del almacén. El código es único
// por almacén; con padre, la nueva ubicación queda un nivel más abajo.
func (uc *WarehouseUseCase) CreateLocation(warehouseID, companyID string, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID, companyID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.locationRepo.GetByCode(in.Code, warehouseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	level := 1
	if in.ParentID != nil {
		parent, err := uc.locationRepo.GetByID(*in.ParentID, warehouseID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound // el padre debe ser del mismo almacén
		}
		level = parent.Level + 1
	}
	now := time.Now()
	location := &entity.Location{
		ID:          uuid.New().String(),
		WarehouseID: warehouseID,
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		ParentID:    in.ParentID,
		Level:       level,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.locationRepo.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// UpdateLocation actualiza los metadatos de una ubicación.
func (uc *WarehouseUseCase) UpdateLocation(locationID, warehouseID, companyID string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID, companyID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	location, err := uc.locationRepo.GetByID(locationID, warehouseID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != nil && *in.Code != location.Code {
		dup, err := uc.locationRepo.GetByCode(*in.Code, warehouseID)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, domain.ErrConflict
		}
		location.Code = *in.Code
	}
	if in.Name != nil {
		location.Name = *in.Name
	}
	if in.Description != nil {
		location.Description = *in.Description
	}
	location.UpdatedAt = time.Now()
	if err := uc.locationRepo.Update(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// DeactivateLocation desactiva una ubicación. Falla si tiene hijas activas.
func (uc *WarehouseUseCase) DeactivateLocation(locationID, warehouseID, companyID string) error {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID, companyID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	location, err := uc.locationRepo.GetByID(locationID, warehouseID)
	if err != nil {
		return err
	}
	if location == nil {
		return domain.ErrNotFound
	}
	if !location.Active {
		return domain.ErrInvalidInput
	}
	count, err := uc.locationRepo.CountActiveChildren(locationID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict // tiene ubicaciones hijas activas
	}
	location.Active = false
	location.UpdatedAt = time.Now()
	return uc.locationRepo.Update(location)
}

// LocationTree devuelve la jerarquía completa de ubicaciones del almacén.
func (uc *WarehouseUseCase) LocationTree(warehouseID, companyID string) ([]dto.LocationTreeNode, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID, companyID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	locations, err := uc.locationRepo.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	roots := entity.BuildLocationTree(locations)
	return toLocationTree(roots), nil
}

func toLocationTree(nodes []*entity.LocationNode) []dto.LocationTreeNode {
	out := make([]dto.LocationTreeNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, dto.LocationTreeNode{
			LocationResponse: *toLocationResponse(&n.Location),
			Children:         toLocationTree(n.Children),
		})
	}
	return out
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:      w.ID,
		Code:    w.Code,
		Name:    w.Name,
		Address: w.Address,
		Active:  w.Active,
	}
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:          l.ID,
		WarehouseID: l.WarehouseID,
		Code:        l.Code,
		Name:        l.Name,
		Description: l.Description,
		ParentID:    l.ParentID,
		Level:       l.Level,
		Active:      l.Active,
	}
}
