package postgres

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/cafetal-api/internal/domain"
	"github.com/jhoicas/cafetal-api/internal/domain/inventory"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return false
}

// isValueRejected verifica si la BD rechazó el valor de una columna:
// check_violation (23514) o numeric_value_out_of_range (22003).
func isValueRejected(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23514" || pgErr.Code == "22003"
	}
	return false
}

// translateWriteError traduce errores de constraint a errores de dominio.
func translateWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	switch {
	case isValueRejected(err):
		detail := ""
		if errors.As(err, &pgErr) {
			detail = pgErr.ConstraintName
			if detail == "" {
				detail = pgErr.Message
			}
		}
		return fmt.Errorf("%w: valor fuera de rango (%s)", domain.ErrInvalidInput, detail)
	case isForeignKeyViolation(err):
		constraint := ""
		if errors.As(err, &pgErr) {
			constraint = pgErr.ConstraintName
		}
		return fmt.Errorf("%w: referencia inexistente (%s)", domain.ErrInvalidInput, constraint)
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// argList acumula parámetros posicionales y devuelve su placeholder ($n).
type argList struct {
	args []any
}

func (a *argList) add(v any) string {
	a.args = append(a.args, v)
	return "$" + strconv.Itoa(len(a.args))
}

// signedQty expresión SQL del aporte con signo de un movimiento (alias de inventory_movement).
// Los conjuntos de tipos se pasan como parámetros desde el clasificador; tipos desconocidos aportan 0.
func signedQty(alias string, a *argList) string {
	in := a.add(inventory.InboundTypes())
	out := a.add(inventory.OutboundTypes())
	return fmt.Sprintf(
		"CASE WHEN %[1]s.movement_type = ANY(%[2]s) THEN %[1]s.qty WHEN %[1]s.movement_type = ANY(%[3]s) THEN -%[1]s.qty ELSE 0 END",
		alias, in, out,
	)
}

// whereClause une condiciones con AND; vacío si no hay condiciones.
func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}
