package inventory

import (
	"context"

	"github.com/kardexcloud/kardex-api/internal/application/dto"
	"github.com/kardexcloud/kardex-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La confirmación de movimientos depende de
// esto: la lectura de disponibilidad y la escritura de estado deben ser
// atómicas frente a confirmaciones concurrentes del mismo par
// producto/almacén.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		ledgerRepo repository.LedgerRepository,
		productRepo repository.ProductRepository,
		productUnitRepo repository.ProductUnitRepository,
		typeRepo repository.MovementTypeRepository,
	) error) error
}

// KardexPDFGenerator genera la representación PDF de un kardex.
type KardexPDFGenerator interface {
	GenerateKardexPDF(ctx context.Context, kardex *dto.KardexResponse) ([]byte, error)
}
