package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cafetal-api/internal/domain/entity"
	"github.com/jhoicas/cafetal-api/internal/domain/inventory"
	"github.com/jhoicas/cafetal-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// No existe tabla de stock: todo saldo se agrega desde cafetal.inventory_movement.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Lock toma un advisory lock transaccional sobre la llave. Solo tiene efecto dentro de una tx.
func (r *StockRepo) Lock(ctx context.Context, key inventory.Key) error {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key.String()); err != nil {
		return fmt.Errorf("lock stock key %s: %w", key, err)
	}
	return nil
}

// Balance suma con signo los movimientos de la llave. Sin lote compara con IS NOT DISTINCT FROM.
func (r *StockRepo) Balance(ctx context.Context, key inventory.Key) (decimal.Decimal, error) {
	a := &argList{}
	signed := signedQty("m", a)
	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(%s), 0)
		FROM cafetal.inventory_movement m
		WHERE m.warehouse_id = %s AND m.product_id = %s AND m.lot_id IS NOT DISTINCT FROM %s`,
		signed, a.add(key.WarehouseID), a.add(key.ProductID), a.add(key.Lot()))

	var b decimal.Decimal
	if err := r.q.QueryRow(ctx, query, a.args...).Scan(&b); err != nil {
		return decimal.Zero, fmt.Errorf("balance %s: %w", key, err)
	}
	return b, nil
}

// stockQuery arma el CTE de saldos por llave, los joins de descriptores y el WHERE del filtro.
// Devuelve el texto desde WITH hasta WHERE (sin SELECT final) partido en dos piezas.
func stockQuery(f repository.StockFilter, a *argList) (with, from string) {
	with = fmt.Sprintf(`
		WITH s AS (
			SELECT m.warehouse_id, m.product_id, m.lot_id,
			       SUM(%s) AS qty_on_hand,
			       MAX(m.movement_ts) AS last_movement
			FROM cafetal.inventory_movement m
			GROUP BY m.warehouse_id, m.product_id, m.lot_id
		)`, signedQty("m", a))

	var conds []string
	if f.WarehouseID != nil {
		conds = append(conds, "s.warehouse_id = "+a.add(*f.WarehouseID))
	}
	if f.Category != "" {
		conds = append(conds, "c.name = "+a.add(f.Category))
	}
	if f.Quality != "" {
		conds = append(conds, "l.quality_status = "+a.add(f.Quality))
	}
	if f.Search != "" {
		p := a.add("%" + f.Search + "%")
		conds = append(conds, fmt.Sprintf("(p.name ILIKE %[1]s OR p.sku ILIKE %[1]s OR l.lot_code ILIKE %[1]s)", p))
	}

	from = `
		FROM s
		JOIN cafetal.warehouse w ON w.warehouse_id = s.warehouse_id
		JOIN cafetal.product p ON p.product_id = s.product_id
		LEFT JOIN cafetal.product_category c ON c.category_id = p.category_id
		LEFT JOIN cafetal.unit_of_measure u ON u.uom_id = p.uom_id
		LEFT JOIN cafetal.lot l ON l.lot_id = s.lot_id` + whereClause(conds)
	return with, from
}

// List página de saldos ordenada por producto, bodega y lote (sin lote primero).
func (r *StockRepo) List(ctx context.Context, f repository.StockFilter, limit, offset int) ([]*entity.Stock, int, error) {
	a := &argList{}
	with, from := stockQuery(f, a)

	var total int
	if err := r.q.QueryRow(ctx, with+" SELECT COUNT(1)"+from, a.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock: %w", err)
	}

	query := with + `
		SELECT s.warehouse_id, s.product_id, s.lot_id, s.qty_on_hand, s.last_movement,
		       w.code, w.name, p.sku, p.name, COALESCE(c.name, ''), COALESCE(u.code, ''),
		       l.lot_code, l.quality_status, l.production_date, l.expiration_date` + from +
		fmt.Sprintf(`
		ORDER BY p.name, s.warehouse_id, s.lot_id NULLS FIRST
		LIMIT %s OFFSET %s`, a.add(limit), a.add(offset))

	rows, err := r.q.Query(ctx, query, a.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		var lotID *int64
		if err := rows.Scan(
			&s.Key.WarehouseID, &s.Key.ProductID, &lotID, &s.QtyOnHand, &s.LastMovement,
			&s.WarehouseCode, &s.WarehouseName, &s.ProductSKU, &s.ProductName, &s.CategoryName, &s.UoMCode,
			&s.LotCode, &s.QualityStatus, &s.ProductionDate, &s.ExpirationDate,
		); err != nil {
			return nil, 0, fmt.Errorf("scan stock: %w", err)
		}
		s.Key = inventory.NewKey(s.Key.WarehouseID, s.Key.ProductID, lotID)
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list stock: %w", err)
	}
	return list, total, nil
}

// Quantities saldos de todas las llaves del filtro, sin descriptores.
func (r *StockRepo) Quantities(ctx context.Context, f repository.StockFilter) ([]decimal.Decimal, error) {
	a := &argList{}
	with, from := stockQuery(f, a)

	rows, err := r.q.Query(ctx, with+" SELECT s.qty_on_hand"+from, a.args...)
	if err != nil {
		return nil, fmt.Errorf("stock quantities: %w", err)
	}
	defer rows.Close()

	var qtys []decimal.Decimal
	for rows.Next() {
		var q decimal.Decimal
		if err := rows.Scan(&q); err != nil {
			return nil, fmt.Errorf("scan stock quantity: %w", err)
		}
		qtys = append(qtys, q)
	}
	return qtys, rows.Err()
}
