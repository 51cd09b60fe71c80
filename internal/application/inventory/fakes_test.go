package inventory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafetal-api/internal/domain/entity"
	"github.com/jhoicas/cafetal-api/internal/domain/inventory"
	"github.com/jhoicas/cafetal-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// memLedger: kardex en memoria con transacciones serializadas
// ──────────────────────────────────────────────────────────────────────────────

type memLedger struct {
	mu     sync.Mutex
	movs   []entity.InventoryMovement
	nextID int64
}

func (s *memLedger) seed(ts time.Time, w, p int64, lot *int64, t inventory.MovementType, qty int64) {
	s.nextID++
	s.movs = append(s.movs, entity.InventoryMovement{
		ID: s.nextID, Timestamp: ts, WarehouseID: w, ProductID: p, LotID: lot,
		Quantity: decimal.NewFromInt(qty), UoMID: 1, Type: t,
	})
}

func (s *memLedger) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movs)
}

func (s *memLedger) balance(k inventory.Key) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return foldBalance(s.movs, k)
}

func foldBalance(movs []entity.InventoryMovement, k inventory.Key) decimal.Decimal {
	l := inventory.NewLedger()
	for i := range movs {
		if movs[i].Key() == k {
			l.Apply(k, movs[i].Type, movs[i].Quantity)
		}
	}
	return l.Balance(k)
}

// Run serializa transacciones completas; los movimientos pendientes se descartan si fn falla.
func (s *memLedger) Run(ctx context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &memTx{store: s}
	if err := fn(tx, tx); err != nil {
		return err
	}
	s.movs = append(s.movs, tx.pending...)
	return nil
}

func (s *memLedger) Create(ctx context.Context, m *entity.InventoryMovement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	m.ID = s.nextID
	s.movs = append(s.movs, *m)
	return nil
}

func sameDayOrAfter(ts, day time.Time) bool {
	y, m, d := day.Date()
	return !ts.Before(time.Date(y, m, d, 0, 0, 0, 0, ts.Location()))
}

func sameDayOrBefore(ts, day time.Time) bool {
	y, m, d := day.Date()
	return ts.Before(time.Date(y, m, d+1, 0, 0, 0, 0, ts.Location()))
}

func matchesKeyFilter(m entity.InventoryMovement, f repository.KardexFilter) bool {
	if f.WarehouseID != nil && m.WarehouseID != *f.WarehouseID {
		return false
	}
	if f.ProductID != nil && m.ProductID != *f.ProductID {
		return false
	}
	if f.LotID != nil && (m.LotID == nil || *m.LotID != *f.LotID) {
		return false
	}
	return true
}

func (s *memLedger) sorted() []entity.InventoryMovement {
	out := append([]entity.InventoryMovement(nil), s.movs...)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.Before(out[j].Timestamp)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *memLedger) History(ctx context.Context, f repository.KardexFilter) ([]*entity.KardexEntry, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []*entity.KardexEntry
	for _, m := range s.sorted() {
		if !matchesKeyFilter(m, f) {
			continue
		}
		if f.DateFrom != nil && !sameDayOrAfter(m.Timestamp, *f.DateFrom) {
			continue
		}
		if f.DateTo != nil && !sameDayOrBefore(m.Timestamp, *f.DateTo) {
			continue
		}
		all = append(all, &entity.KardexEntry{InventoryMovement: m, UoMCode: "kg", WarehouseCode: "W1"})
	}
	total := len(all)
	if f.Offset >= total {
		return nil, total, nil
	}
	end := total
	if f.Limit > 0 && f.Offset+f.Limit < total {
		end = f.Offset + f.Limit
	}
	return all[f.Offset:end], total, nil
}

func (s *memLedger) BalancesBefore(ctx context.Context, f repository.KardexFilter, ts time.Time, id int64) (map[inventory.Key]decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := inventory.NewLedger()
	out := make(map[inventory.Key]decimal.Decimal)
	for _, m := range s.sorted() {
		if !matchesKeyFilter(m, f) {
			continue
		}
		if m.Timestamp.After(ts) || (m.Timestamp.Equal(ts) && m.ID >= id) {
			continue
		}
		out[m.Key()] = l.Apply(m.Key(), m.Type, m.Quantity)
	}
	return out, nil
}

// memTx vista transaccional: lee lo confirmado más lo pendiente.
type memTx struct {
	store   *memLedger
	pending []entity.InventoryMovement
	locked  []inventory.Key
}

func (t *memTx) Create(ctx context.Context, m *entity.InventoryMovement) error {
	t.store.nextID++
	m.ID = t.store.nextID
	t.pending = append(t.pending, *m)
	return nil
}

func (t *memTx) History(ctx context.Context, f repository.KardexFilter) ([]*entity.KardexEntry, int, error) {
	return nil, 0, nil
}

func (t *memTx) BalancesBefore(ctx context.Context, f repository.KardexFilter, ts time.Time, id int64) (map[inventory.Key]decimal.Decimal, error) {
	return nil, nil
}

func (t *memTx) Lock(ctx context.Context, key inventory.Key) error {
	t.locked = append(t.locked, key)
	return nil
}

func (t *memTx) Balance(ctx context.Context, key inventory.Key) (decimal.Decimal, error) {
	all := append(append([]entity.InventoryMovement(nil), t.store.movs...), t.pending...)
	return foldBalance(all, key), nil
}

func (t *memTx) List(ctx context.Context, f repository.StockFilter, limit, offset int) ([]*entity.Stock, int, error) {
	return nil, 0, nil
}

func (t *memTx) Quantities(ctx context.Context, f repository.StockFilter) ([]decimal.Decimal, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogos
// ──────────────────────────────────────────────────────────────────────────────

type fakeProducts map[int64]*entity.Product

func (f fakeProducts) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return f[id], nil
}

func (f fakeProducts) List(ctx context.Context, _ repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}

type fakeWarehouses map[int64]*entity.Warehouse

func (f fakeWarehouses) GetByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	return f[id], nil
}

func (f fakeWarehouses) List(ctx context.Context) ([]*entity.Warehouse, error) { return nil, nil }

type fakeLots map[int64]*entity.Lot

func (f fakeLots) GetByID(ctx context.Context, id int64) (*entity.Lot, error) { return f[id], nil }

func (f fakeLots) List(ctx context.Context, _ repository.LotFilter) ([]*entity.Lot, error) {
	return nil, nil
}

func (f fakeLots) RefreshAvailable(ctx context.Context) (int64, error) { return int64(len(f)), nil }

// ──────────────────────────────────────────────────────────────────────────────
// Stock con filas fijas
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	rows    []*entity.Stock
	balance decimal.Decimal
}

func (f *fakeStockRepo) Lock(ctx context.Context, key inventory.Key) error { return nil }

func (f *fakeStockRepo) Balance(ctx context.Context, key inventory.Key) (decimal.Decimal, error) {
	return f.balance, nil
}

func (f *fakeStockRepo) List(ctx context.Context, _ repository.StockFilter, limit, offset int) ([]*entity.Stock, int, error) {
	total := len(f.rows)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return f.rows[offset:end], total, nil
}

func (f *fakeStockRepo) Quantities(ctx context.Context, _ repository.StockFilter) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, 0, len(f.rows))
	for _, r := range f.rows {
		out = append(out, r.QtyOnHand)
	}
	return out, nil
}
