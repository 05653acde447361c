package entity

import "time"

// Códigos de los tipos de movimiento del sistema (sembrados por cmd/seed).
const (
	MovementTypeEntrada        = "ENTRADA"
	MovementTypeSalida         = "SALIDA"
	MovementTypeAjustePositivo = "AJUSTE_POSITIVO"
	MovementTypeAjusteNegativo = "AJUSTE_NEGATIVO"
	MovementTypeTransferencia  = "TRANSFERENCIA"
)

// MovementType define el efecto contable de un movimiento.
// AffectsStock ∈ {+1, -1, 0}; RequiresDestination solo en transferencias.
// Los tipos del sistema (IsSystem, CompanyID nil) son visibles para todas las
// empresas; una empresa puede además definir tipos propios.
type MovementType struct {
	ID                  string
	CompanyID           *string // nil = tipo del sistema
	Code                string
	Name                string
	AffectsStock        int
	RequiresDestination bool
	IsSystem            bool
	CreatedAt           time.Time
}
