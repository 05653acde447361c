package entity

import "time"

// Company representa una empresa/tenant del sistema. Toda entidad de
// inventario pertenece a exactamente una empresa y ninguna operación cruza
// ese límite.
type Company struct {
	ID        string
	Name      string
	TaxID     string // NIT o RUC según país
	Address   string
	Phone     string
	Email     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
