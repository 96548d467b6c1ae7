package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/soportec/gestor-api/internal/domain"
)

// remoteErr envuelve un fallo de bajo nivel del driver con domain.ErrRemote,
// conservando el detalle como texto. Los errores ya clasificados (no-existe,
// violación de unicidad) se traducen antes de llegar aquí.
func remoteErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrRemote, err)
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}
