package dto

import "github.com/shopspring/decimal"

// DashboardOverviewDTO respuesta de GET /api/v1/dashboard/overview.
type DashboardOverviewDTO struct {
	KPIs   DashboardKPIsDTO   `json:"kpis"`
	Series DashboardSeriesDTO `json:"series"`
	Alerts DashboardAlertsDTO `json:"alertas"`
}

// DashboardKPIsDTO indicadores derivados del kardex.
type DashboardKPIsDTO struct {
	StockTotal   decimal.Decimal `json:"stock_total"`
	UoM          string          `json:"uom"`
	KeysInStock  int             `json:"keys_in_stock"` // llaves con saldo > 0
	CriticalKeys int             `json:"critical_keys"`
	LowKeys      int             `json:"low_keys"`
}

// DashboardSeriesDTO series para gráficos.
type DashboardSeriesDTO struct {
	StockByCategory []CategoryStockDTO `json:"stock_por_categoria"`
}

// CategoryStockDTO punto de la serie stock por categoría.
type CategoryStockDTO struct {
	Category string          `json:"categoria"`
	Qty      decimal.Decimal `json:"qty"`
}

// DashboardAlertsDTO alertas del dashboard.
type DashboardAlertsDTO struct {
	LowStock []LowStockProductDTO `json:"stock_bajo"`
}

// LowStockProductDTO producto con menor saldo agregado.
type LowStockProductDTO struct {
	ProductID int64           `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Qty       decimal.Decimal `json:"qty"`
}
