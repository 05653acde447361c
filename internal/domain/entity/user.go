package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"    // acceso total dentro de su empresa
	RoleOperador = "operador" // registra y consulta movimientos
	RoleConsulta = "consulta" // solo lectura
)

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Name         string
	Role         string // admin, operador, consulta
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
