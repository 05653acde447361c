package entity

import "time"

// Product representa un producto del inventario. El código es único por
// empresa. Un producto no puede requerir lote y serie a la vez (se valida al
// crear/actualizar). El stock nunca se guarda aquí: siempre se deriva de los
// movimientos confirmados.
type Product struct {
	ID                  string
	CompanyID           string
	Code                string
	Name                string
	Description         string
	RequiresLot         bool
	RequiresSerial      bool
	AllowsNegativeStock bool
	ExpiryDays          *int // nil = no perecedero
	Active              bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
