package inventory

import (
	"github.com/kardexcloud/kardex-api/internal/domain"
	"github.com/kardexcloud/kardex-api/internal/domain/entity"
	"github.com/kardexcloud/kardex-api/internal/domain/inventory"
	"github.com/kardexcloud/kardex-api/internal/domain/repository"
)

// ensureAvailable verifica la disponibilidad de cada renglón contra el stock
// replegado del almacén de origen. El movimiento que se está confirmando aún
// no está confirmado, así que queda correctamente excluido del replay.
// El primer renglón insuficiente aborta toda la confirmación; un producto con
// stock negativo permitido nunca falla aquí.
func ensureAvailable(
	companyID string,
	movement *entity.Movement,
	lines []*entity.MovementLine,
	ledgerRepo repository.LedgerRepository,
	productRepo repository.ProductRepository,
	productUnitRepo repository.ProductUnitRepository,
) error {
	for _, line := range lines {
		product, err := productRepo.GetByID(line.ProductID, companyID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		productUnit, err := productUnitRepo.GetByID(line.ProductUnitID, line.ProductID)
		if err != nil {
			return err
		}
		if productUnit == nil {
			return domain.ErrNotFound
		}

		entries, err := ledgerRepo.StockEntries(companyID, line.ProductID, movement.OriginWarehouseID)
		if err != nil {
			return err
		}
		available := inventory.StockFor(entries)
		required := inventory.BaseQuantity(line.Quantity, productUnit.ConversionFactor)

		if available.LessThan(required) && !product.AllowsNegativeStock {
			return &domain.InsufficientStockError{
				ProductName: product.Name,
				Available:   available,
				Required:    required,
			}
		}
	}
	return nil
}
