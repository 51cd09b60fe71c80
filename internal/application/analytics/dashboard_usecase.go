// Package analytics contiene los casos de uso del dashboard operativo.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/cafetal-api/internal/application/dto"
	"github.com/jhoicas/cafetal-api/internal/domain/inventory"
	"github.com/jhoicas/cafetal-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const dashboardLowStockTop = 10 // productos en el widget de stock bajo

// DashboardUseCase genera el resumen del dashboard a partir del kardex.
//
// Fuente de datos: StockRepository (saldos por llave) y AnalyticsRepository (agregados).
// Ventas, calidad, despachos y nómina no forman parte del esquema y no se reportan.
type DashboardUseCase struct {
	stockRepo     repository.StockRepository
	analyticsRepo repository.AnalyticsRepository
	thresholds    inventory.AlertThresholds
	uom           string
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	stockRepo repository.StockRepository,
	analyticsRepo repository.AnalyticsRepository,
	thresholds inventory.AlertThresholds,
	uom string,
) *DashboardUseCase {
	return &DashboardUseCase{
		stockRepo:     stockRepo,
		analyticsRepo: analyticsRepo,
		thresholds:    thresholds,
		uom:           uom,
	}
}

// Overview construye el DashboardOverviewDTO.
//
// Tres llamadas en paralelo:
//  1. Quantities(sin filtro)        → KPIs y alertas por umbral
//  2. StockByCategory               → serie por categoría
//  3. LowestStockProducts(top 10)   → widget de stock bajo
func (uc *DashboardUseCase) Overview(ctx context.Context) (*dto.DashboardOverviewDTO, error) {
	type qtyResult struct {
		qtys []decimal.Decimal
		err  error
	}
	type categoryResult struct {
		rows []repository.CategoryStockResult
		err  error
	}
	type productResult struct {
		rows []repository.ProductStockResult
		err  error
	}

	qtyCh := make(chan qtyResult, 1)
	catCh := make(chan categoryResult, 1)
	prodCh := make(chan productResult, 1)

	go func() {
		q, err := uc.stockRepo.Quantities(ctx, repository.StockFilter{})
		qtyCh <- qtyResult{q, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.StockByCategory(ctx)
		catCh <- categoryResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.LowestStockProducts(ctx, dashboardLowStockTop)
		prodCh <- productResult{rows, err}
	}()

	qtys := <-qtyCh
	cats := <-catCh
	prods := <-prodCh

	if qtys.err != nil {
		return nil, fmt.Errorf("dashboard: saldos: %w", qtys.err)
	}
	if cats.err != nil {
		return nil, fmt.Errorf("dashboard: stock por categoría: %w", cats.err)
	}
	if prods.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", prods.err)
	}

	// ── KPIs ──────────────────────────────────────────────────────────────────
	total := decimal.Zero
	inStock := 0
	for _, q := range qtys.qtys {
		total = total.Add(q)
		if q.IsPositive() {
			inStock++
		}
	}
	counts := uc.thresholds.CountAlerts(qtys.qtys)

	series := make([]dto.CategoryStockDTO, 0, len(cats.rows))
	for _, r := range cats.rows {
		series = append(series, dto.CategoryStockDTO{Category: r.Category, Qty: r.Qty})
	}
	low := make([]dto.LowStockProductDTO, 0, len(prods.rows))
	for _, r := range prods.rows {
		low = append(low, dto.LowStockProductDTO{ProductID: r.ProductID, SKU: r.SKU, Name: r.Name, Qty: r.Qty})
	}

	return &dto.DashboardOverviewDTO{
		KPIs: dto.DashboardKPIsDTO{
			StockTotal:   total,
			UoM:          uc.uom,
			KeysInStock:  inStock,
			CriticalKeys: counts.Critical,
			LowKeys:      counts.Low,
		},
		Series: dto.DashboardSeriesDTO{StockByCategory: series},
		Alerts: dto.DashboardAlertsDTO{LowStock: low},
	}, nil
}
