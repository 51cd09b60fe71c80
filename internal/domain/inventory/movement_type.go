package inventory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/cafetal-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Direction clasifica un tipo de movimiento según el signo que aporta al saldo.
type Direction int8

const (
	// DirectionUnknown solo aparece al proyectar filas con tipos no reconocidos (aporte cero).
	DirectionUnknown Direction = 0
	Inbound          Direction = 1
	Outbound         Direction = -1
)

func (d Direction) String() string {
	switch d {
	case Inbound:
		return "IN"
	case Outbound:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// MovementType es el tipo semántico de un movimiento del kardex.
type MovementType string

// Tipos de movimiento de inventario.
const (
	MovementPurchase       MovementType = "PURCHASE"
	MovementTransferIn     MovementType = "TRANSFER_IN"
	MovementReturnSale     MovementType = "RETURN_SALE"
	MovementAdjustIn       MovementType = "ADJUST_IN"
	MovementProdIn         MovementType = "PROD_IN"
	MovementSale           MovementType = "SALE"
	MovementTransferOut    MovementType = "TRANSFER_OUT"
	MovementReturnPurchase MovementType = "RETURN_PURCHASE"
	MovementAdjustOut      MovementType = "ADJUST_OUT"
	MovementProdOut        MovementType = "PROD_OUT"
)

// directions es el mapeo exhaustivo tipo → dirección.
var directions = map[MovementType]Direction{
	MovementPurchase:       Inbound,
	MovementTransferIn:     Inbound,
	MovementReturnSale:     Inbound,
	MovementAdjustIn:       Inbound,
	MovementProdIn:         Inbound,
	MovementSale:           Outbound,
	MovementTransferOut:    Outbound,
	MovementReturnPurchase: Outbound,
	MovementAdjustOut:      Outbound,
	MovementProdOut:        Outbound,
}

// ParseMovementType normaliza (trim + mayúsculas) y valida el tipo recibido.
// Un tipo fuera de los conjuntos IN/OUT devuelve ErrUnknownMovementType.
func ParseMovementType(s string) (MovementType, error) {
	t := MovementType(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := directions[t]; !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownMovementType, s)
	}
	return t, nil
}

// Direction devuelve la dirección del tipo; DirectionUnknown si no está en el mapeo.
func (t MovementType) Direction() Direction {
	return directions[t]
}

// Signed aplica el signo del tipo a la magnitud de qty.
// Tipos no reconocidos aportan cero (filas heredadas cargadas fuera de la API).
func Signed(t MovementType, qty decimal.Decimal) decimal.Decimal {
	switch t.Direction() {
	case Inbound:
		return qty.Abs()
	case Outbound:
		return qty.Abs().Neg()
	default:
		return decimal.Zero
	}
}

// InboundTypes lista ordenada de tipos de entrada (usada como parámetro en SQL).
func InboundTypes() []string { return typesOf(Inbound) }

// OutboundTypes lista ordenada de tipos de salida.
func OutboundTypes() []string { return typesOf(Outbound) }

func typesOf(d Direction) []string {
	out := make([]string, 0, len(directions)/2)
	for t, dir := range directions {
		if dir == d {
			out = append(out, string(t))
		}
	}
	sort.Strings(out)
	return out
}
