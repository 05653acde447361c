package entity

import "time"

// Warehouse representa un almacén o bodega de una empresa (multi-bodega).
// No puede desactivarse mientras tenga ubicaciones activas.
type Warehouse struct {
	ID        string
	CompanyID string
	Code      string // único por empresa
	Name      string
	Address   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
