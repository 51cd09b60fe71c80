package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cafetal-api/internal/domain/entity"
	"github.com/jhoicas/cafetal-api/internal/domain/inventory"
	"github.com/jhoicas/cafetal-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lee: el kardex es de solo anexado.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento y asigna movement_id y movement_ts devueltos por la BD.
func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	query := `
		INSERT INTO cafetal.inventory_movement
			(movement_ts, warehouse_id, product_id, lot_id, qty, uom_id, movement_type, ref_type, ref_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING movement_id, movement_ts`
	err := r.q.QueryRow(ctx, query,
		m.Timestamp, m.WarehouseID, m.ProductID, m.LotID, m.Quantity, m.UoMID,
		string(m.Type), m.RefType, m.RefID, m.Notes,
	).Scan(&m.ID, &m.Timestamp)
	if err != nil {
		return translateWriteError("create inventory movement", err)
	}
	return nil
}

// kardexConds condiciones de llave (bodega, producto, lote) comunes a History y BalancesBefore.
func kardexConds(f repository.KardexFilter, a *argList) []string {
	var conds []string
	if f.WarehouseID != nil {
		conds = append(conds, "m.warehouse_id = "+a.add(*f.WarehouseID))
	}
	if f.ProductID != nil {
		conds = append(conds, "m.product_id = "+a.add(*f.ProductID))
	}
	if f.LotID != nil {
		conds = append(conds, "m.lot_id = "+a.add(*f.LotID))
	}
	return conds
}

// History página del kardex en orden (movement_ts, movement_id). Fechas inclusivas por día.
func (r *InventoryMovementRepo) History(ctx context.Context, f repository.KardexFilter) ([]*entity.KardexEntry, int, error) {
	a := &argList{}
	conds := kardexConds(f, a)
	if f.DateFrom != nil {
		conds = append(conds, "m.movement_ts::date >= "+a.add(*f.DateFrom)+"::date")
	}
	if f.DateTo != nil {
		conds = append(conds, "m.movement_ts::date <= "+a.add(*f.DateTo)+"::date")
	}
	where := whereClause(conds)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(1) FROM cafetal.inventory_movement m`+where, a.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count kardex: %w", err)
	}

	query := `
		SELECT m.movement_id, m.movement_ts, m.warehouse_id, m.product_id, m.lot_id, m.qty, m.uom_id,
		       m.movement_type, m.ref_type, m.ref_id, m.notes,
		       COALESCE(u.code, ''), w.code, p.sku, p.name, l.lot_code
		FROM cafetal.inventory_movement m
		JOIN cafetal.warehouse w ON w.warehouse_id = m.warehouse_id
		JOIN cafetal.product p ON p.product_id = m.product_id
		LEFT JOIN cafetal.unit_of_measure u ON u.uom_id = m.uom_id
		LEFT JOIN cafetal.lot l ON l.lot_id = m.lot_id` + where + `
		ORDER BY m.movement_ts, m.movement_id`
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %s OFFSET %s", a.add(f.Limit), a.add(f.Offset))
	}

	rows, err := r.q.Query(ctx, query, a.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list kardex: %w", err)
	}
	defer rows.Close()

	var list []*entity.KardexEntry
	for rows.Next() {
		var e entity.KardexEntry
		var mt string
		if err := rows.Scan(
			&e.ID, &e.Timestamp, &e.WarehouseID, &e.ProductID, &e.LotID, &e.Quantity, &e.UoMID,
			&mt, &e.RefType, &e.RefID, &e.Notes,
			&e.UoMCode, &e.WarehouseCode, &e.ProductSKU, &e.ProductName, &e.LotCode,
		); err != nil {
			return nil, 0, fmt.Errorf("scan kardex: %w", err)
		}
		// Filas heredadas pueden traer tipos fuera del catálogo; se conservan tal cual.
		e.Type = inventory.MovementType(mt)
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list kardex: %w", err)
	}
	return list, total, nil
}

// BalancesBefore saldo por llave de los movimientos anteriores a (ts, id).
// Ignora DateFrom/DateTo: el saldo de apertura incluye toda la historia previa.
func (r *InventoryMovementRepo) BalancesBefore(ctx context.Context, f repository.KardexFilter, ts time.Time, id int64) (map[inventory.Key]decimal.Decimal, error) {
	a := &argList{}
	signed := signedQty("m", a)
	conds := kardexConds(f, a)
	conds = append(conds, fmt.Sprintf("(m.movement_ts, m.movement_id) < (%s, %s)", a.add(ts), a.add(id)))

	query := fmt.Sprintf(`
		SELECT m.warehouse_id, m.product_id, m.lot_id, SUM(%s)
		FROM cafetal.inventory_movement m%s
		GROUP BY m.warehouse_id, m.product_id, m.lot_id`, signed, whereClause(conds))

	rows, err := r.q.Query(ctx, query, a.args...)
	if err != nil {
		return nil, fmt.Errorf("opening balances: %w", err)
	}
	defer rows.Close()

	out := make(map[inventory.Key]decimal.Decimal)
	for rows.Next() {
		var w, p int64
		var lot *int64
		var b decimal.Decimal
		if err := rows.Scan(&w, &p, &lot, &b); err != nil {
			return nil, fmt.Errorf("scan opening balance: %w", err)
		}
		out[inventory.NewKey(w, p, lot)] = b
	}
	return out, rows.Err()
}
