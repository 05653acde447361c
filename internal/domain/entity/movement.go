package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un movimiento.
// borrador → confirmado → anulado; ninguna transición regresa a borrador y
// anulado es terminal.
const (
	MovementStatusDraft     = "borrador"
	MovementStatusConfirmed = "confirmado"
	MovementStatusVoided    = "anulado"
)

// Movement representa un movimiento de inventario (entrada, salida, ajuste o
// transferencia). Solo los movimientos confirmados afectan el stock derivado;
// anular NO revierte el efecto contable, conserva la historia.
type Movement struct {
	ID                string
	CompanyID         string
	TypeID            string
	OriginWarehouseID string
	OriginLocationID  *string
	DestWarehouseID   *string // requerido solo si el tipo exige destino
	DestLocationID    *string
	Date              time.Time
	Status            string // borrador, confirmado, anulado
	UserID            string
	ConfirmedAt       *time.Time
	ConfirmedBy       *string
	Note              string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// MovementLine es un renglón de producto dentro de un movimiento.
// Inmutable una vez que el movimiento sale de borrador.
type MovementLine struct {
	ID            string
	MovementID    string
	ProductID     string
	ProductUnitID string
	Quantity      decimal.Decimal // mínimo 0.0001
	Lot           string
	Serial        string
	Note          string
	CreatedAt     time.Time
}

// MinLineQuantity es la cantidad mínima aceptada en un renglón.
var MinLineQuantity = decimal.RequireFromString("0.0001")
