package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de calidad de un lote.
const (
	QualityPending  = "PENDING"
	QualityApproved = "APPROVED"
	QualityRejected = "REJECTED"
)

// Lot lote trazable de un producto.
// QtyAvailable es caché del saldo derivado del kardex; se refresca periódicamente (ver RefreshedAt).
type Lot struct {
	ID             int64
	Code           string
	ProductID      int64
	UoMID          int64
	ProductionDate *time.Time
	ExpirationDate *time.Time
	QualityStatus  string
	QtyInitial     decimal.Decimal
	QtyAvailable   decimal.Decimal
	RefreshedAt    *time.Time
}
