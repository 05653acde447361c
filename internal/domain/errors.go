package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidState       = errors.New("estado inválido para la operación")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// InvalidStateError indica que un movimiento está en un estado que no admite
// la operación solicitada. Envuelve ErrInvalidState.
type InvalidStateError struct {
	Current string // estado actual del movimiento
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("el movimiento ya está en estado: %s", e.Current)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// InsufficientStockError reporta producto, disponible y requerido cuando la
// verificación de disponibilidad rechaza una confirmación. Envuelve
// ErrInsufficientStock.
type InsufficientStockError struct {
	ProductName string
	Available   decimal.Decimal
	Required    decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s. Disponible: %s, Requerido: %s",
		e.ProductName, e.Available.String(), e.Required.String())
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
