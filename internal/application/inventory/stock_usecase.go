package inventory

import (
	"context"

	"github.com/jhoicas/cafetal-api/internal/application/dto"
	"github.com/jhoicas/cafetal-api/internal/domain/entity"
	"github.com/jhoicas/cafetal-api/internal/domain/inventory"
	"github.com/jhoicas/cafetal-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// StockUseCase lecturas de saldos: listado paginado, KPIs y saldo de una llave.
type StockUseCase struct {
	stockRepo  repository.StockRepository
	thresholds inventory.AlertThresholds
	uom        string
}

// NewStockUseCase uom es la etiqueta de unidad reportada en los KPIs.
func NewStockUseCase(stockRepo repository.StockRepository, thresholds inventory.AlertThresholds, uom string) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, thresholds: thresholds, uom: uom}
}

// List devuelve una página de saldos con su nivel de alerta.
func (uc *StockUseCase) List(ctx context.Context, f repository.StockFilter, page dto.PageRequest) (*dto.InventoryPageDTO, error) {
	page.Normalize(dto.DefaultPageSize, dto.MaxPageSize)
	rows, total, err := uc.stockRepo.List(ctx, f, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryRowDTO, 0, len(rows))
	for _, s := range rows {
		items = append(items, uc.toRow(s))
	}
	return &dto.InventoryPageDTO{
		Items:    items,
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    total,
	}, nil
}

// KPIs totales del filtro. Disponible = total y reservado = 0 mientras no existan reservas.
func (uc *StockUseCase) KPIs(ctx context.Context, f repository.StockFilter) (*dto.InventoryKPIsDTO, error) {
	qtys, err := uc.stockRepo.Quantities(ctx, f)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, q := range qtys {
		total = total.Add(q)
	}
	available := total
	reserved := decimal.Zero

	counts := uc.thresholds.CountAlerts(qtys)
	return &dto.InventoryKPIsDTO{
		TotalStock:     dto.KpiQtyDTO{Qty: total, UoM: uc.uom},
		AvailableStock: dto.KpiQtyDTO{Qty: available, UoM: uc.uom, Pct: percent(available, total, hundred)},
		ReservedStock:  dto.KpiQtyDTO{Qty: reserved, UoM: uc.uom, Pct: percent(reserved, total, decimal.Zero)},
		Alerts:         dto.AlertCountsDTO{Critical: counts.Critical, Low: counts.Low},
	}, nil
}

// Balance saldo actual de una llave calculado desde el kardex.
func (uc *StockUseCase) Balance(ctx context.Context, key inventory.Key) (*dto.BalanceDTO, error) {
	b, err := uc.stockRepo.Balance(ctx, key)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceDTO{
		ID:          key.String(),
		WarehouseID: key.WarehouseID,
		ProductID:   key.ProductID,
		LotID:       key.Lot(),
		Balance:     b,
	}, nil
}

func (uc *StockUseCase) toRow(s *entity.Stock) dto.InventoryRowDTO {
	return dto.InventoryRowDTO{
		ID: s.Key.String(),
		Warehouse: dto.StockWarehouseDTO{
			ID:   s.Key.WarehouseID,
			Code: s.WarehouseCode,
			Name: s.WarehouseName,
		},
		Product: dto.StockProductDTO{
			ID:       s.Key.ProductID,
			SKU:      s.ProductSKU,
			Name:     s.ProductName,
			Category: s.CategoryName,
			UoM:      s.UoMCode,
		},
		Lot: dto.StockLotDTO{
			ID:            s.Key.Lot(),
			Code:          s.LotCode,
			QualityStatus: s.QualityStatus,
			MfgDate:       formatDate(s.ProductionDate),
			ExpDate:       formatDate(s.ExpirationDate),
		},
		Qty: dto.QtyDTO{
			Total:     s.QtyOnHand,
			Available: s.QtyOnHand,
			Reserved:  decimal.Zero,
		},
		Alert:        string(uc.thresholds.Classify(s.QtyOnHand)),
		LastMovement: formatDateTime(s.LastMovement),
	}
}

// percent part/total*100 redondeado a un decimal; whenEmpty cuando no hay stock
// (sin stock todo lo existente está disponible: 100 para disponible, 0 para reservado).
func percent(part, total, whenEmpty decimal.Decimal) *decimal.Decimal {
	p := whenEmpty
	if !total.IsZero() {
		p = part.Div(total).Mul(hundred).Round(1)
	}
	return &p
}
