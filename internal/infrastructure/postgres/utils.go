package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation reporta si el error es una violación de unicidad
// (SQLSTATE 23505). Los repositorios la traducen a errores de dominio
// (ErrConflict, ErrEmailAlreadyExists) en lugar de exponer el detalle SQL.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
