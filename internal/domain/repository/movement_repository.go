package repository

import (
	"time"

	"github.com/kardexcloud/kardex-api/internal/domain/entity"
	"github.com/kardexcloud/kardex-api/internal/domain/inventory"
)

// MovementRepository define el puerto de persistencia para movimientos y sus
// renglones.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id, companyID string) (*entity.Movement, error)
	// GetByIDForUpdate bloquea la fila del movimiento (SELECT FOR UPDATE);
	// solo tiene sentido dentro de una transacción.
	GetByIDForUpdate(id, companyID string) (*entity.Movement, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Movement, error)
	// Confirm fija estado confirmado, fecha y usuario de confirmación.
	Confirm(id string, confirmedAt time.Time, confirmedBy string) error
	// Void fija estado anulado y reemplaza la observación (con el motivo ya
	// anexado por el caso de uso).
	Void(id, note string) error

	AddLine(line *entity.MovementLine) error
	RemoveLine(lineID, movementID string) error
	ListLines(movementID string) ([]*entity.MovementLine, error)
	CountLines(movementID string) (int, error)
}

// LedgerFilter acota las proyecciones del libro de inventario.
// WarehouseID en ListForStock empareja origen O destino (comportamiento del
// listado de stock); en ListForKardex es el almacén de origen exacto.
type LedgerFilter struct {
	ProductID   string
	WarehouseID string
	From        *time.Time
	To          *time.Time
}

// LedgerRepository proyecta renglones de movimientos para el replay de stock
// y el kardex. Entrega renglones de movimientos confirmados y anulados de la
// empresa indicada (anular no revierte el efecto contable); los borradores
// nunca aparecen.
type LedgerRepository interface {
	// ListForStock devuelve los renglones confirmados que tocan el filtro,
	// sin orden garantizado.
	ListForStock(companyID string, filter LedgerFilter) ([]inventory.LedgerEntry, error)
	// ListForKardex devuelve los renglones del producto con origen en el
	// almacén dado, dentro del rango de fechas inclusivo, ordenados por fecha
	// de movimiento ascendente con desempate estable por inserción.
	ListForKardex(companyID string, filter LedgerFilter) ([]inventory.LedgerEntry, error)
	// StockEntries devuelve los renglones que determinan la disponibilidad de
	// un producto en un almacén (solo lado origen, ver inventory.StockFor).
	StockEntries(companyID, productID, warehouseID string) ([]inventory.LedgerEntry, error)
}
