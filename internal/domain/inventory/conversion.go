// Package inventory contiene los servicios de dominio puros del motor de
// inventario: conversión de unidades, replay de stock y construcción del
// kardex. Ninguna función de este paquete toca persistencia.
package inventory

import "github.com/shopspring/decimal"

// BaseQuantity convierte una cantidad expresada en una unidad asociada del
// producto a su unidad base: cantidad × factor de conversión.
func BaseQuantity(quantity, conversionFactor decimal.Decimal) decimal.Decimal {
	return quantity.Mul(conversionFactor)
}
