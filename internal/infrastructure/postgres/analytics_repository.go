package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/cafetal-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard. Todo saldo sale del kardex.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// StockByCategory saldo agregado por categoría. Categorías sin movimientos reportan 0.
func (r *AnalyticsRepo) StockByCategory(ctx context.Context) ([]repository.CategoryStockResult, error) {
	a := &argList{}
	query := fmt.Sprintf(`
		SELECT c.name, COALESCE(SUM(%s), 0) AS qty
		FROM cafetal.product_category c
		LEFT JOIN cafetal.product p ON p.category_id = c.category_id
		LEFT JOIN cafetal.inventory_movement m ON m.product_id = p.product_id
		GROUP BY c.category_id, c.name
		ORDER BY c.name`, signedQty("m", a))

	rows, err := r.pool.Query(ctx, query, a.args...)
	if err != nil {
		return nil, fmt.Errorf("stock by category: %w", err)
	}
	defer rows.Close()

	var out []repository.CategoryStockResult
	for rows.Next() {
		var res repository.CategoryStockResult
		if err := rows.Scan(&res.Category, &res.Qty); err != nil {
			return nil, fmt.Errorf("scan stock by category: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// LowestStockProducts los limit productos con menor saldo agregado (todas las bodegas y lotes).
func (r *AnalyticsRepo) LowestStockProducts(ctx context.Context, limit int) ([]repository.ProductStockResult, error) {
	a := &argList{}
	signed := signedQty("m", a)
	query := fmt.Sprintf(`
		SELECT p.product_id, p.sku, p.name, COALESCE(SUM(%s), 0) AS qty
		FROM cafetal.product p
		LEFT JOIN cafetal.inventory_movement m ON m.product_id = p.product_id
		GROUP BY p.product_id, p.sku, p.name
		ORDER BY qty ASC, p.name
		LIMIT %s`, signed, a.add(limit))

	rows, err := r.pool.Query(ctx, query, a.args...)
	if err != nil {
		return nil, fmt.Errorf("lowest stock products: %w", err)
	}
	defer rows.Close()

	var out []repository.ProductStockResult
	for rows.Next() {
		var res repository.ProductStockResult
		if err := rows.Scan(&res.ProductID, &res.SKU, &res.Name, &res.Qty); err != nil {
			return nil, fmt.Errorf("scan lowest stock product: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}
