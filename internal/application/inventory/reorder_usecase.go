package inventory

import (
	"github.com/kardexcloud/kardex-api/internal/application/dto"
	"github.com/kardexcloud/kardex-api/internal/domain/inventory"
	"github.com/kardexcloud/kardex-api/internal/domain/repository"
)

// ReorderUseCase produce el reporte de reposición: productos cuyo stock
// replegado está en o por debajo de su punto de reorden configurado.
// Los umbrales son consultivos; este reporte es su único consumidor.
type ReorderUseCase struct {
	configRepo  repository.ProductWarehouseConfigRepository
	ledgerRepo  repository.LedgerRepository
	productRepo repository.ProductRepository
}

// NewReorderUseCase construye el caso de uso.
func NewReorderUseCase(
	configRepo repository.ProductWarehouseConfigRepository,
	ledgerRepo repository.LedgerRepository,
	productRepo repository.ProductRepository,
) *ReorderUseCase {
	return &ReorderUseCase{configRepo: configRepo, ledgerRepo: ledgerRepo, productRepo: productRepo}
}

// GenerateReport evalúa cada configuración con punto de reorden contra el
// stock replegado del par (producto, almacén). warehouseID vacío = todas las
// bodegas.
func (uc *ReorderUseCase) GenerateReport(companyID, warehouseID string) ([]dto.ReorderRowResponse, error) {
	configs, err := uc.configRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}

	var rows []dto.ReorderRowResponse
	for _, cfg := range configs {
		if cfg.ReorderPoint == nil {
			continue
		}
		if warehouseID != "" && cfg.WarehouseID != warehouseID {
			continue
		}
		entries, err := uc.ledgerRepo.StockEntries(companyID, cfg.ProductID, cfg.WarehouseID)
		if err != nil {
			return nil, err
		}
		stock := inventory.StockFor(entries)
		if stock.GreaterThan(*cfg.ReorderPoint) {
			continue
		}
		product, err := uc.productRepo.GetByID(cfg.ProductID, companyID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.Active {
			continue
		}
		rows = append(rows, dto.ReorderRowResponse{
			ProductID:    product.ID,
			ProductCode:  product.Code,
			ProductName:  product.Name,
			WarehouseID:  cfg.WarehouseID,
			Stock:        stock,
			ReorderPoint: *cfg.ReorderPoint,
			MinStock:     cfg.MinStock,
		})
	}
	return rows, nil
}
