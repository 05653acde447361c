package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kardexcloud/kardex-api/internal/application/dto"
	"github.com/kardexcloud/kardex-api/internal/domain"
	"github.com/kardexcloud/kardex-api/internal/domain/entity"
	"github.com/kardexcloud/kardex-api/internal/domain/repository"
)

// ProductUseCase casos de uso de productos: CRUD, unidades de medida
// asociadas y umbrales de stock por almacén.
type ProductUseCase struct {
	productRepo     repository.ProductRepository
	unitRepo        repository.UnitOfMeasureRepository
	productUnitRepo repository.ProductUnitRepository
	warehouseRepo   repository.WarehouseRepository
	locationRepo    repository.LocationRepository
	configRepo      repository.ProductWarehouseConfigRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	unitRepo repository.UnitOfMeasureRepository,
	productUnitRepo repository.ProductUnitRepository,
	warehouseRepo repository.WarehouseRepository,
	locationRepo repository.LocationRepository,
	configRepo repository.ProductWarehouseConfigRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:     productRepo,
		unitRepo:        unitRepo,
		productUnitRepo: productUnitRepo,
		warehouseRepo:   warehouseRepo,
		locationRepo:    locationRepo,
		configRepo:      configRepo,
	}
}

// Create crea un producto. El código es único por empresa y un producto no
// puede requerir lote y serie a la vez.
func (uc *ProductUseCase) Create(companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.RequiresLot && in.RequiresSerial {
		return nil, domain.ErrInvalidInput // lote y serie simultáneos no permitidos
	}
	existing, err := uc.productRepo.GetByCode(in.Code, companyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict // código duplicado en la empresa
	}
	now := time.Now()
	product := &entity.Product{
		ID:                  uuid.New().String(),
		CompanyID:           companyID,
		Code:                in.Code,
		Name:                in.Name,
		Description:         in.Description,
		RequiresLot:         in.RequiresLot,
		RequiresSerial:      in.RequiresSerial,
		AllowsNegativeStock: in.AllowsNegativeStock,
		ExpiryDays:          in.ExpiryDays,
		Active:              true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto de la empresa.
func (uc *ProductUseCase) GetByID(id, companyID string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos activos de la empresa.
func (uc *ProductUseCase) List(companyID string, limit, offset int) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.ListByCompany(companyID, true, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Search busca productos por código o nombre (sin acentos ni mayúsculas).
func (uc *ProductUseCase) Search(companyID, query string) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.Search(companyID, query, 20)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update actualiza banderas y metadatos de un producto.
func (uc *ProductUseCase) Update(id, companyID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.RequiresLot != nil {
		product.RequiresLot = *in.RequiresLot
	}
	if in.RequiresSerial != nil {
		product.RequiresSerial = *in.RequiresSerial
	}
	if product.RequiresLot && product.RequiresSerial {
		return nil, domain.ErrInvalidInput
	}
	if in.AllowsNegativeStock != nil {
		product.AllowsNegativeStock = *in.AllowsNegativeStock
	}
	if in.ExpiryDays != nil {
		product.ExpiryDays = in.ExpiryDays
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Deactivate desactiva un producto (borrado lógico).
func (uc *ProductUseCase) Deactivate(id, companyID string) error {
	product, err := uc.productRepo.GetByID(id, companyID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if !product.Active {
		return domain.ErrInvalidInput // el producto ya está inactivo
	}
	product.Active = false
	product.UpdatedAt = time.Now()
	return uc.productRepo.Update(product)
}

// AddUnit asocia una unidad del catálogo al producto con su factor de
// conversión. La primera asociación se marca principal automáticamente;
// marcar una nueva principal desmarca las demás. La combinación
// producto-unidad es única.
func (uc *ProductUseCase) AddUnit(productID, companyID string, in dto.AddProductUnitRequest) (*dto.ProductUnitResponse, error) {
	product, err := uc.productRepo.GetByID(productID, companyID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	unit, err := uc.unitRepo.GetByID(in.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.productUnitRepo.GetByProductAndUnit(productID, in.UnitID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict // unidad ya asociada al producto
	}
	if !in.ConversionFactor.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	if in.IsPrimary {
		if err := uc.productUnitRepo.UnmarkPrimary(productID); err != nil {
			return nil, err
		}
	}
	count, err := uc.productUnitRepo.CountByProduct(productID)
	if err != nil {
		return nil, err
	}
	isPrimary := in.IsPrimary
	if count == 0 {
		isPrimary = true
	}

	productUnit := &entity.ProductUnit{
		ID:               uuid.New().String(),
		ProductID:        productID,
		UnitID:           in.UnitID,
		ConversionFactor: in.ConversionFactor,
		IsPrimary:        isPrimary,
		CreatedAt:        time.Now(),
	}
	if err := uc.productUnitRepo.Create(productUnit); err != nil {
		return nil, err
	}
	return &dto.ProductUnitResponse{
		ID:               productUnit.ID,
		ProductID:        productUnit.ProductID,
		UnitID:           productUnit.UnitID,
		UnitName:         unit.Name,
		Abbreviation:     unit.Abbreviation,
		ConversionFactor: productUnit.ConversionFactor,
		IsPrimary:        productUnit.IsPrimary,
	}, nil
}

// ListUnits devuelve las asociaciones de unidad del producto.
func (uc *ProductUseCase) ListUnits(productID, companyID string) ([]dto.ProductUnitResponse, error) {
	product, err := uc.productRepo.GetByID(productID, companyID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	units, err := uc.productUnitRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductUnitResponse, 0, len(units))
	for _, pu := range units {
		resp := dto.ProductUnitResponse{
			ID:               pu.ID,
			ProductID:        pu.ProductID,
			UnitID:           pu.UnitID,
			ConversionFactor: pu.ConversionFactor,
			IsPrimary:        pu.IsPrimary,
		}
		if unit, err := uc.unitRepo.GetByID(pu.UnitID); err == nil && unit != nil {
			resp.UnitName = unit.Name
			resp.Abbreviation = unit.Abbreviation
		}
		out = append(out, resp)
	}
	return out, nil
}

// UnitCatalog devuelve el catálogo global de unidades de medida.
func (uc *ProductUseCase) UnitCatalog() ([]dto.UnitOfMeasureResponse, error) {
	units, err := uc.unitRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnitOfMeasureResponse, 0, len(units))
	for _, u := range units {
		out = append(out, dto.UnitOfMeasureResponse{
			ID:           u.ID,
			Name:         u.Name,
			Abbreviation: u.Abbreviation,
			Category:     u.Category,
		})
	}
	return out, nil
}

// ConfigStock crea o actualiza los umbrales de stock del producto en un
// almacén (y opcionalmente una ubicación). stock máximo < stock mínimo es
// inválido.
func (uc *ProductUseCase) ConfigStock(productID, companyID string, in dto.ConfigStockRequest) (*dto.StockConfigResponse, error) {
	product, err := uc.productRepo.GetByID(productID, companyID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID, companyID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if in.LocationID != nil {
		location, err := uc.locationRepo.GetByID(*in.LocationID, in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if location == nil {
			return nil, domain.ErrNotFound
		}
	}
	if in.MaxStock != nil && in.MaxStock.LessThan(in.MinStock) {
		return nil, domain.ErrInvalidInput // stock máximo debe ser >= mínimo
	}

	config, err := uc.configRepo.Get(productID, in.WarehouseID, in.LocationID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if config == nil {
		config = &entity.ProductWarehouseConfig{
			ID:          uuid.New().String(),
			ProductID:   productID,
			WarehouseID: in.WarehouseID,
			LocationID:  in.LocationID,
			CreatedAt:   now,
		}
	}
	config.MinStock = in.MinStock
	config.MaxStock = in.MaxStock
	config.ReorderPoint = in.ReorderPoint
	config.UpdatedAt = now
	if err := uc.configRepo.Upsert(config); err != nil {
		return nil, err
	}
	return &dto.StockConfigResponse{
		ID:           config.ID,
		ProductID:    config.ProductID,
		WarehouseID:  config.WarehouseID,
		LocationID:   config.LocationID,
		MinStock:     config.MinStock,
		MaxStock:     config.MaxStock,
		ReorderPoint: config.ReorderPoint,
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                  p.ID,
		Code:                p.Code,
		Name:                p.Name,
		Description:         p.Description,
		RequiresLot:         p.RequiresLot,
		RequiresSerial:      p.RequiresSerial,
		AllowsNegativeStock: p.AllowsNegativeStock,
		ExpiryDays:          p.ExpiryDays,
		Active:              p.Active,
	}
}
