package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kardexcloud/kardex-api/internal/application/dto"
	"github.com/kardexcloud/kardex-api/internal/domain"
	"github.com/kardexcloud/kardex-api/internal/domain/entity"
	"github.com/kardexcloud/kardex-api/internal/domain/repository"
)

// MovementUseCase gobierna el ciclo de vida de un movimiento de inventario:
// creación en borrador, renglones, confirmación (con verificación de
// disponibilidad) y anulación. La confirmación y la anulación corren dentro
// de una transacción del TxRunner.
type MovementUseCase struct {
	txRunner        TxRunner
	movementRepo    repository.MovementRepository
	typeRepo        repository.MovementTypeRepository
	warehouseRepo   repository.WarehouseRepository
	locationRepo    repository.LocationRepository
	productRepo     repository.ProductRepository
	productUnitRepo repository.ProductUnitRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	movementRepo repository.MovementRepository,
	typeRepo repository.MovementTypeRepository,
	warehouseRepo repository.WarehouseRepository,
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
	productUnitRepo repository.ProductUnitRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:        txRunner,
		movementRepo:    movementRepo,
		typeRepo:        typeRepo,
		warehouseRepo:   warehouseRepo,
		locationRepo:    locationRepo,
		productRepo:     productRepo,
		productUnitRepo: productUnitRepo,
	}
}

// Create crea un movimiento en estado borrador. Valida que el tipo sea
// visible para la empresa (del sistema o propio), que el almacén de origen
// pertenezca a la empresa y, si el tipo exige destino, que el destino exista,
// pertenezca a la empresa y sea distinto del origen.
func (uc *MovementUseCase) Create(companyID, userID string, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	tipo, err := uc.typeRepo.GetVisible(in.TypeID, companyID)
	if err != nil {
		return nil, err
	}
	if tipo == nil {
		return nil, domain.ErrNotFound
	}

	origin, err := uc.warehouseRepo.GetByID(in.OriginWarehouseID, companyID)
	if err != nil {
		return nil, err
	}
	if origin == nil {
		return nil, domain.ErrNotFound
	}
	if in.OriginLocationID != nil {
		loc, err := uc.locationRepo.GetByID(*in.OriginLocationID, origin.ID)
		if err != nil {
			return nil, err
		}
		if loc == nil {
			return nil, domain.ErrNotFound
		}
	}

	if tipo.RequiresDestination {
		if in.DestWarehouseID == nil {
			return nil, domain.ErrInvalidInput // este tipo requiere almacén de destino
		}
		dest, err := uc.warehouseRepo.GetByID(*in.DestWarehouseID, companyID)
		if err != nil {
			return nil, err
		}
		if dest == nil {
			return nil, domain.ErrNotFound
		}
		if dest.ID == origin.ID {
			return nil, domain.ErrInvalidInput // origen y destino no pueden ser el mismo
		}
		if in.DestLocationID != nil {
			loc, err := uc.locationRepo.GetByID(*in.DestLocationID, dest.ID)
			if err != nil {
				return nil, err
			}
			if loc == nil {
				return nil, domain.ErrNotFound
			}
		}
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	movement := &entity.Movement{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		TypeID:            tipo.ID,
		OriginWarehouseID: origin.ID,
		OriginLocationID:  in.OriginLocationID,
		DestWarehouseID:   in.DestWarehouseID,
		DestLocationID:    in.DestLocationID,
		Date:              date,
		Status:            entity.MovementStatusDraft,
		UserID:            userID,
		Note:              in.Note,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.movementRepo.Create(movement); err != nil {
		return nil, err
	}
	return toMovementResponse(movement, nil), nil
}

// AddLine agrega un renglón a un movimiento en borrador. Valida que el
// producto pertenezca a la empresa, que la asociación de unidad pertenezca al
// producto, la cantidad mínima y la presencia de lote/serie según las
// banderas del producto.
func (uc *MovementUseCase) AddLine(companyID, movementID string, in dto.AddLineRequest) (*dto.MovementLineResponse, error) {
	movement, err := uc.movementRepo.GetByID(movementID, companyID)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	if movement.Status != entity.MovementStatusDraft {
		return nil, &domain.InvalidStateError{Current: movement.Status}
	}

	product, err := uc.productRepo.GetByID(in.ProductID, companyID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	productUnit, err := uc.productUnitRepo.GetByID(in.ProductUnitID, product.ID)
	if err != nil {
		return nil, err
	}
	if productUnit == nil {
		return nil, domain.ErrNotFound // unidad no válida para este producto
	}

	if in.Quantity.LessThan(entity.MinLineQuantity) {
		return nil, domain.ErrInvalidInput
	}
	if product.RequiresLot && in.Lot == "" {
		return nil, domain.ErrInvalidInput // este producto requiere número de lote
	}
	if product.RequiresSerial && in.Serial == "" {
		return nil, domain.ErrInvalidInput // este producto requiere número de serie
	}

	line := &entity.MovementLine{
		ID:            uuid.New().String(),
		MovementID:    movement.ID,
		ProductID:     product.ID,
		ProductUnitID: productUnit.ID,
		Quantity:      in.Quantity,
		Lot:           in.Lot,
		Serial:        in.Serial,
		Note:          in.Note,
		CreatedAt:     time.Now(),
	}
	if err := uc.movementRepo.AddLine(line); err != nil {
		return nil, err
	}
	return toLineResponse(line), nil
}

// RemoveLine quita un renglón; solo permitido en borrador.
func (uc *MovementUseCase) RemoveLine(companyID, movementID, lineID string) error {
	movement, err := uc.movementRepo.GetByID(movementID, companyID)
	if err != nil {
		return err
	}
	if movement == nil {
		return domain.ErrNotFound
	}
	if movement.Status != entity.MovementStatusDraft {
		return &domain.InvalidStateError{Current: movement.Status}
	}
	return uc.movementRepo.RemoveLine(lineID, movementID)
}

// Confirm transiciona borrador → confirmado. Exige al menos un renglón y,
// para tipos que restan stock o transfieren, verifica disponibilidad renglón
// por renglón; cualquier insuficiencia aborta la confirmación completa.
// Todo corre en una sola transacción: dos confirmaciones concurrentes no
// pueden sobregirar juntas el mismo par producto/almacén.
func (uc *MovementUseCase) Confirm(ctx context.Context, companyID, movementID, userID string) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		ledgerRepo repository.LedgerRepository,
		productRepo repository.ProductRepository,
		productUnitRepo repository.ProductUnitRepository,
		typeRepo repository.MovementTypeRepository,
	) error {
		movement, err := movRepo.GetByIDForUpdate(movementID, companyID)
		if err != nil {
			return err
		}
		if movement == nil {
			return domain.ErrNotFound
		}
		if movement.Status != entity.MovementStatusDraft {
			return &domain.InvalidStateError{Current: movement.Status}
		}

		lines, err := movRepo.ListLines(movement.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.ErrInvalidInput // no se puede confirmar un movimiento sin productos
		}

		tipo, err := typeRepo.GetVisible(movement.TypeID, companyID)
		if err != nil {
			return err
		}
		if tipo == nil {
			return domain.ErrNotFound
		}

		if tipo.AffectsStock == -1 || tipo.RequiresDestination {
			if err := ensureAvailable(companyID, movement, lines, ledgerRepo, productRepo, productUnitRepo); err != nil {
				return err
			}
		}

		return movRepo.Confirm(movement.ID, time.Now(), userID)
	})
}

// Void transiciona confirmado → anulado y anexa el motivo a la observación.
// Anular no revierte el stock: los renglones del movimiento siguen contando
// en el replay del libro (historia contable intacta).
func (uc *MovementUseCase) Void(ctx context.Context, companyID, movementID, reason string) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		_ repository.LedgerRepository,
		_ repository.ProductRepository,
		_ repository.ProductUnitRepository,
		_ repository.MovementTypeRepository,
	) error {
		movement, err := movRepo.GetByIDForUpdate(movementID, companyID)
		if err != nil {
			return err
		}
		if movement == nil {
			return domain.ErrNotFound
		}
		if movement.Status != entity.MovementStatusConfirmed {
			return &domain.InvalidStateError{Current: movement.Status}
		}
		note := movement.Note + "\n[ANULADO] Motivo: " + reason
		return movRepo.Void(movement.ID, note)
	})
}

// GetByID devuelve un movimiento con sus renglones.
func (uc *MovementUseCase) GetByID(companyID, movementID string) (*dto.MovementResponse, error) {
	movement, err := uc.movementRepo.GetByID(movementID, companyID)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.movementRepo.ListLines(movement.ID)
	if err != nil {
		return nil, err
	}
	return toMovementResponse(movement, lines), nil
}

// List lista movimientos de la empresa, más recientes primero.
func (uc *MovementUseCase) List(companyID string, limit, offset int) ([]dto.MovementResponse, error) {
	movements, err := uc.movementRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, *toMovementResponse(m, nil))
	}
	return out, nil
}

// ListTypes lista los tipos de movimiento visibles para la empresa.
func (uc *MovementUseCase) ListTypes(companyID string) ([]dto.MovementTypeResponse, error) {
	types, err := uc.typeRepo.ListVisible(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, dto.MovementTypeResponse{
			ID:                  t.ID,
			Code:                t.Code,
			Name:                t.Name,
			AffectsStock:        t.AffectsStock,
			RequiresDestination: t.RequiresDestination,
			IsSystem:            t.IsSystem,
		})
	}
	return out, nil
}

func toMovementResponse(m *entity.Movement, lines []*entity.MovementLine) *dto.MovementResponse {
	resp := &dto.MovementResponse{
		ID:                m.ID,
		TypeID:            m.TypeID,
		OriginWarehouseID: m.OriginWarehouseID,
		OriginLocationID:  m.OriginLocationID,
		DestWarehouseID:   m.DestWarehouseID,
		DestLocationID:    m.DestLocationID,
		Date:              m.Date,
		Status:            m.Status,
		UserID:            m.UserID,
		ConfirmedAt:       m.ConfirmedAt,
		ConfirmedBy:       m.ConfirmedBy,
		Note:              m.Note,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, *toLineResponse(l))
	}
	return resp
}

func toLineResponse(l *entity.MovementLine) *dto.MovementLineResponse {
	return &dto.MovementLineResponse{
		ID:            l.ID,
		ProductID:     l.ProductID,
		ProductUnitID: l.ProductUnitID,
		Quantity:      l.Quantity,
		Lot:           l.Lot,
		Serial:        l.Serial,
		Note:          l.Note,
	}
}
