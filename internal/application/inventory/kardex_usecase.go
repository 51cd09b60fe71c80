package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/cafetal-api/internal/application/dto"
	"github.com/jhoicas/cafetal-api/internal/domain"
	"github.com/jhoicas/cafetal-api/internal/domain/inventory"
	"github.com/jhoicas/cafetal-api/internal/domain/repository"
)

// Formatos aceptados para dateFrom/dateTo.
var dateInputLayouts = []string{DateLayout, "2006-01-02"}

// ParseDate interpreta dd/MM/yyyy o yyyy-MM-dd en la zona loc. Vacío devuelve nil.
func ParseDate(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range dateInputLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: fecha %q (use dd/MM/yyyy o yyyy-MM-dd)", domain.ErrInvalidInput, s)
}

// KardexUseCase historial de movimientos con saldo corrido por llave.
type KardexUseCase struct {
	movRepo repository.InventoryMovementRepository
}

func NewKardexUseCase(movRepo repository.InventoryMovementRepository) *KardexUseCase {
	return &KardexUseCase{movRepo: movRepo}
}

// History devuelve una página del kardex en orden ascendente (fecha, id).
// El saldo de cada fila parte del saldo de apertura de su llave antes de la primera fila de la página.
func (uc *KardexUseCase) History(ctx context.Context, f repository.KardexFilter, page dto.PageRequest) (*dto.KardexPageDTO, error) {
	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		return nil, fmt.Errorf("%w: dateFrom posterior a dateTo", domain.ErrInvalidInput)
	}
	page.Normalize(dto.KardexDefaultPageSize, dto.KardexMaxPageSize)
	f.Limit = page.PageSize
	f.Offset = page.Offset()

	rows, total, err := uc.movRepo.History(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]dto.KardexEntryDTO, 0, len(rows))
	if len(rows) > 0 {
		first := rows[0]
		opening, err := uc.movRepo.BalancesBefore(ctx, f, first.Timestamp, first.ID)
		if err != nil {
			return nil, err
		}
		ledger := inventory.NewLedger()
		for k, b := range opening {
			ledger.Open(k, b)
		}
		for _, r := range rows {
			r.BalanceAfter = ledger.Apply(r.Key(), r.Type, r.Quantity)
			items = append(items, dto.KardexEntryDTO{
				ID:        r.ID,
				Datetime:  r.Timestamp.Format(DateTimeLayout),
				Type:      string(r.Type),
				Direction: r.Type.Direction().String(),
				Qty:       r.Quantity,
				UoM:       r.UoMCode,
				Warehouse: r.WarehouseCode,
				Product:   dto.KardexProductDTO{SKU: r.ProductSKU, Name: r.ProductName},
				Lot:       r.LotCode,
				Ref:       dto.KardexRefDTO{Type: r.RefType, ID: r.RefID},
				Notes:     r.Notes,
				Balance:   r.BalanceAfter,
			})
		}
	}

	return &dto.KardexPageDTO{
		Items:    items,
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    total,
	}, nil
}
