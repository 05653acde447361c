package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductWarehouseConfig define umbrales de stock por producto y almacén
// (opcionalmente por ubicación). Son metadatos de alerta: el motor de
// inventario no los aplica al confirmar movimientos.
type ProductWarehouseConfig struct {
	ID           string
	ProductID    string
	WarehouseID  string
	LocationID   *string
	MinStock     decimal.Decimal
	MaxStock     *decimal.Decimal // si está presente debe ser >= MinStock
	ReorderPoint *decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
