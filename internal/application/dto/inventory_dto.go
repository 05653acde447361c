package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest body para POST /api/inventory/movements.
type CreateMovementRequest struct {
	TypeID            string     `json:"type_id" validate:"required,uuid4"`
	OriginWarehouseID string     `json:"origin_warehouse_id" validate:"required,uuid4"`
	OriginLocationID  *string    `json:"origin_location_id,omitempty" validate:"omitempty,uuid4"`
	DestWarehouseID   *string    `json:"dest_warehouse_id,omitempty" validate:"omitempty,uuid4"`
	DestLocationID    *string    `json:"dest_location_id,omitempty" validate:"omitempty,uuid4"`
	Date              *time.Time `json:"date,omitempty"`
	Note              string     `json:"note"`
}

// AddLineRequest body para POST /api/inventory/movements/:id/lines.
type AddLineRequest struct {
	ProductID     string          `json:"product_id" validate:"required,uuid4"`
	ProductUnitID string          `json:"product_unit_id" validate:"required,uuid4"`
	Quantity      decimal.Decimal `json:"quantity" validate:"dgt0"`
	Lot           string          `json:"lot"`
	Serial        string          `json:"serial"`
	Note          string          `json:"note"`
}

// VoidMovementRequest body para POST /api/inventory/movements/:id/void.
type VoidMovementRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

// MovementLineResponse renglón de un movimiento.
type MovementLineResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductUnitID string          `json:"product_unit_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	Lot           string          `json:"lot,omitempty"`
	Serial        string          `json:"serial,omitempty"`
	Note          string          `json:"note,omitempty"`
}

// MovementResponse movimiento con o sin renglones.
type MovementResponse struct {
	ID                string                 `json:"id"`
	TypeID            string                 `json:"type_id"`
	OriginWarehouseID string                 `json:"origin_warehouse_id"`
	OriginLocationID  *string                `json:"origin_location_id,omitempty"`
	DestWarehouseID   *string                `json:"dest_warehouse_id,omitempty"`
	DestLocationID    *string                `json:"dest_location_id,omitempty"`
	Date              time.Time              `json:"date"`
	Status            string                 `json:"status"`
	UserID            string                 `json:"user_id"`
	ConfirmedAt       *time.Time             `json:"confirmed_at,omitempty"`
	ConfirmedBy       *string                `json:"confirmed_by,omitempty"`
	Note              string                 `json:"note,omitempty"`
	Lines             []MovementLineResponse `json:"lines,omitempty"`
}

// StockFilterRequest query para GET /api/inventory/stock.
type StockFilterRequest struct {
	ProductID   string `query:"product_id" validate:"omitempty,uuid4"`
	WarehouseID string `query:"warehouse_id" validate:"omitempty,uuid4"`
}

// StockRowResponse stock replegado de un par (producto, almacén).
type StockRowResponse struct {
	ProductID   string          `json:"product_id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	WarehouseID string          `json:"warehouse_id"`
	Stock       decimal.Decimal `json:"stock"`
}

// KardexFilterRequest query para GET /api/inventory/kardex.
type KardexFilterRequest struct {
	ProductID   string     `query:"product_id" validate:"required,uuid4"`
	WarehouseID string     `query:"warehouse_id" validate:"required,uuid4"`
	From        *time.Time `query:"from"`
	To          *time.Time `query:"to"`
}

// KardexRowResponse fila del kardex con saldo acumulado.
type KardexRowResponse struct {
	Date     time.Time       `json:"date"`
	TypeName string          `json:"type"`
	Entrada  decimal.Decimal `json:"entrada"`
	Salida   decimal.Decimal `json:"salida"`
	Saldo    decimal.Decimal `json:"saldo"`
	Lot      string          `json:"lot,omitempty"`
	Serial   string          `json:"serial,omitempty"`
	UserName string          `json:"user,omitempty"`
	Note     string          `json:"note,omitempty"`
}

// KardexResponse kardex completo de un producto en un almacén.
type KardexResponse struct {
	ProductID   string              `json:"product_id"`
	ProductCode string              `json:"product_code,omitempty"`
	ProductName string              `json:"product_name,omitempty"`
	WarehouseID string              `json:"warehouse_id"`
	Rows        []KardexRowResponse `json:"movimientos"`
	SaldoFinal  decimal.Decimal     `json:"saldo_final"`
}

// MovementTypeResponse tipo de movimiento visible para la empresa.
type MovementTypeResponse struct {
	ID                  string `json:"id"`
	Code                string `json:"code"`
	Name                string `json:"name"`
	AffectsStock        int    `json:"affects_stock"`
	RequiresDestination bool   `json:"requires_destination"`
	IsSystem            bool   `json:"is_system"`
}

// ReorderRowResponse producto en o por debajo de su punto de reorden.
type ReorderRowResponse struct {
	ProductID    string          `json:"product_id"`
	ProductCode  string          `json:"product_code"`
	ProductName  string          `json:"product_name"`
	WarehouseID  string          `json:"warehouse_id"`
	Stock        decimal.Decimal `json:"stock"`
	ReorderPoint decimal.Decimal `json:"reorder_point"`
	MinStock     decimal.Decimal `json:"min_stock"`
}
