package inventory

import (
	"fmt"

	"github.com/jhoicas/cafetal-api/internal/domain"
	"github.com/shopspring/decimal"
)

// AlertLevel nivel de alerta de stock de una llave.
type AlertLevel string

const (
	AlertNone     AlertLevel = ""
	AlertCritical AlertLevel = "critical"
	AlertLow      AlertLevel = "low"
)

// AlertThresholds umbrales absolutos (en unidades) para alertas de stock.
// No hay stock mínimo por producto en el esquema; cuando exista, este tipo es el punto de cambio.
type AlertThresholds struct {
	Critical decimal.Decimal
	Low      decimal.Decimal
}

// DefaultAlertThresholds ≤20 crítico, ≤50 bajo.
func DefaultAlertThresholds() AlertThresholds {
	return AlertThresholds{
		Critical: decimal.NewFromInt(20),
		Low:      decimal.NewFromInt(50),
	}
}

// Validate exige 0 ≤ Critical ≤ Low.
func (t AlertThresholds) Validate() error {
	if t.Critical.IsNegative() || t.Low.LessThan(t.Critical) {
		return fmt.Errorf("%w: umbrales crítico=%s bajo=%s", domain.ErrInvalidInput, t.Critical, t.Low)
	}
	return nil
}

// Classify devuelve el nivel de alerta de un saldo. Saldos ≤ 0 no generan alerta.
func (t AlertThresholds) Classify(qty decimal.Decimal) AlertLevel {
	switch {
	case !qty.IsPositive():
		return AlertNone
	case qty.LessThanOrEqual(t.Critical):
		return AlertCritical
	case qty.LessThanOrEqual(t.Low):
		return AlertLow
	default:
		return AlertNone
	}
}

// AlertCounts conteo de llaves por nivel.
type AlertCounts struct {
	Critical int
	Low      int
}

// CountAlerts clasifica cada saldo y acumula los conteos.
func (t AlertThresholds) CountAlerts(balances []decimal.Decimal) AlertCounts {
	var c AlertCounts
	for _, b := range balances {
		switch t.Classify(b) {
		case AlertCritical:
			c.Critical++
		case AlertLow:
			c.Low++
		}
	}
	return c
}
