package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cafetal-api/internal/domain/entity"
	"github.com/jhoicas/cafetal-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

const lotSelect = `
		SELECT lot_id, lot_code, product_id, COALESCE(uom_id, 0), production_date, expiration_date,
		       COALESCE(quality_status, ''), COALESCE(qty_initial, 0), COALESCE(qty_available, 0), qty_refreshed_at
		FROM cafetal.lot`

func scanLot(row pgxScanner) (*entity.Lot, error) {
	var l entity.Lot
	err := row.Scan(
		&l.ID, &l.Code, &l.ProductID, &l.UoMID, &l.ProductionDate, &l.ExpirationDate,
		&l.QualityStatus, &l.QtyInitial, &l.QtyAvailable, &l.RefreshedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetByID obtiene un lote por ID. Devuelve nil, nil si no existe.
func (r *LotRepo) GetByID(ctx context.Context, id int64) (*entity.Lot, error) {
	l, err := scanLot(r.q.QueryRow(ctx, lotSelect+` WHERE lot_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return l, nil
}

// List lotes filtrados por producto y estado de calidad; más recientes primero.
func (r *LotRepo) List(ctx context.Context, f repository.LotFilter) ([]*entity.Lot, error) {
	a := &argList{}
	var conds []string
	if f.ProductID != nil {
		conds = append(conds, "product_id = "+a.add(*f.ProductID))
	}
	if f.Quality != "" {
		conds = append(conds, "quality_status = "+a.add(f.Quality))
	}
	query := lotSelect + whereClause(conds) + " ORDER BY production_date DESC NULLS LAST, lot_id DESC"
	if f.Limit > 0 {
		query += " LIMIT " + a.add(f.Limit)
	}

	rows, err := r.q.Query(ctx, query, a.args...)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()

	var list []*entity.Lot
	for rows.Next() {
		l, err := scanLot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// RefreshAvailable recalcula qty_available de cada lote como la suma con signo de sus movimientos
// en todas las bodegas, y marca qty_refreshed_at.
func (r *LotRepo) RefreshAvailable(ctx context.Context) (int64, error) {
	a := &argList{}
	query := fmt.Sprintf(`
		UPDATE cafetal.lot l
		SET qty_available = COALESCE((
		        SELECT SUM(%s) FROM cafetal.inventory_movement m WHERE m.lot_id = l.lot_id
		    ), 0),
		    qty_refreshed_at = LOCALTIMESTAMP`, signedQty("m", a))
	tag, err := r.q.Exec(ctx, query, a.args...)
	if err != nil {
		return 0, fmt.Errorf("refresh lot availability: %w", err)
	}
	return tag.RowsAffected(), nil
}
