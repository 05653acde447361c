package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de unidad de medida.
const (
	UnitCategoryUnidad   = "unidad"
	UnitCategoryPeso     = "peso"
	UnitCategoryVolumen  = "volumen"
	UnitCategoryLongitud = "longitud"
)

// UnitOfMeasure es una entrada del catálogo global de unidades (no pertenece
// a ninguna empresa).
type UnitOfMeasure struct {
	ID           string
	Name         string
	Abbreviation string
	Category     string // unidad, peso, volumen, longitud
	CreatedAt    time.Time
}

// ProductUnit asocia un producto con una unidad del catálogo y su factor de
// conversión: cantidad en esta unidad × factor = cantidad en la unidad base
// del producto. Exactamente una asociación por producto es la principal
// (factor 1); la primera agregada se marca principal automáticamente.
type ProductUnit struct {
	ID               string
	ProductID        string
	UnitID           string
	ConversionFactor decimal.Decimal
	IsPrimary        bool
	CreatedAt        time.Time
}
