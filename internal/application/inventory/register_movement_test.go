package inventory

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafetal-api/internal/application/dto"
	"github.com/jhoicas/cafetal-api/internal/domain"
	"github.com/jhoicas/cafetal-api/internal/domain/inventory"
)

type registerFixture struct {
	store *memLedger
	uc    *RegisterMovementUseCase
}

// W1 = bodega 1, P1 = producto 1; el lote 7 es de P1 y el lote 8 de otro producto.
func newRegisterFixture() registerFixture {
	store := &memLedger{}
	uc := NewRegisterMovementUseCase(
		store,
		fakeProducts{1: {ID: 1, SKU: "CAF-001", Name: "Café pergamino"}},
		fakeWarehouses{1: {ID: 1, Code: "W1", Name: "Planta"}},
		fakeLots{7: {ID: 7, ProductID: 1}, 8: {ID: 8, ProductID: 2}},
		time.UTC,
	)
	return registerFixture{store: store, uc: uc}
}

func move(t string, qty string) MovementInputDTO {
	return MovementInputDTO{
		WarehouseID:  1,
		ProductID:    1,
		UoMID:        1,
		MovementType: t,
		Quantity:     decimal.RequireFromString(qty),
	}
}

var keyW1P1 = inventory.NewKey(1, 1, nil)

// ──────────────────────────────────────────────────────────────────────────────
// Escenario W1/P1
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EscenarioW1P1(t *testing.T) {
	f := newRegisterFixture()
	ctx := context.Background()

	id, err := f.uc.RegisterMovement(ctx, move("PURCHASE", "100"))
	require.NoError(t, err)
	assert.Positive(t, id)

	_, err = f.uc.RegisterMovement(ctx, move("SALE", "-30"))
	require.NoError(t, err)
	_, err = f.uc.RegisterMovement(ctx, move("TRANSFER_OUT", "-20"))
	require.NoError(t, err)
	assert.True(t, f.store.balance(keyW1P1).Equal(decimal.NewFromInt(50)))

	_, err = f.uc.RegisterMovement(ctx, move("SALE", "-60"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 3, f.store.count(), "la salida rechazada no debe quedar en el kardex")

	_, err = f.uc.RegisterMovement(ctx, move("SALE", "-50"))
	require.NoError(t, err)
	assert.True(t, f.store.balance(keyW1P1).IsZero())
}

func TestRegisterMovement_SalidaMayorAlSaldo(t *testing.T) {
	f := newRegisterFixture()
	ctx := context.Background()
	_, err := f.uc.RegisterMovement(ctx, move("PROD_IN", "12.5"))
	require.NoError(t, err)

	_, err = f.uc.RegisterMovement(ctx, move("PROD_OUT", "-13.5"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, f.store.balance(keyW1P1).Equal(decimal.RequireFromString("12.5")))

	_, err = f.uc.RegisterMovement(ctx, move("PROD_OUT", "-12.5"))
	require.NoError(t, err)
	assert.True(t, f.store.balance(keyW1P1).IsZero())
}

func TestRegisterMovement_SalidaPositivaSeNormaliza(t *testing.T) {
	f := newRegisterFixture()
	ctx := context.Background()
	_, err := f.uc.RegisterMovement(ctx, move("PURCHASE", "10"))
	require.NoError(t, err)
	_, err = f.uc.RegisterMovement(ctx, move("SALE", "4"))
	require.NoError(t, err)

	assert.True(t, f.store.balance(keyW1P1).Equal(decimal.NewFromInt(6)))
	for _, m := range f.store.movs {
		assert.True(t, m.Quantity.IsPositive(), "se guarda la magnitud")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_TipoDesconocido(t *testing.T) {
	f := newRegisterFixture()
	_, err := f.uc.RegisterMovement(context.Background(), move("PURCHASE", "10"))
	require.NoError(t, err)

	_, err = f.uc.RegisterMovement(context.Background(), move("GIFT", "5"))
	assert.ErrorIs(t, err, domain.ErrUnknownMovementType)
	assert.Equal(t, 1, f.store.count())
	assert.True(t, f.store.balance(keyW1P1).Equal(decimal.NewFromInt(10)))
}

func TestRegisterMovement_EntradaNegativaRechazada(t *testing.T) {
	f := newRegisterFixture()
	_, err := f.uc.RegisterMovement(context.Background(), move("PURCHASE", "-10"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, f.store.count())
}

func TestRegisterMovement_ValidacionesDeEntrada(t *testing.T) {
	long := strings.Repeat("x", 251)
	badLot := int64(0)
	cases := map[string]MovementInputDTO{
		"cantidad cero":              move("PURCHASE", "0"),
		"sin bodega":                 {ProductID: 1, UoMID: 1, MovementType: "PURCHASE", Quantity: decimal.NewFromInt(1)},
		"sin unidad":                 {WarehouseID: 1, ProductID: 1, MovementType: "PURCHASE", Quantity: decimal.NewFromInt(1)},
		"lote inválido":              func() MovementInputDTO { m := move("PURCHASE", "1"); m.LotID = &badLot; return m }(),
		"notas largas":               func() MovementInputDTO { m := move("PURCHASE", "1"); m.Notes = &long; return m }(),
		"qty con más de 3 decimales": move("PURCHASE", "0.0001"),
		"qty desborda la columna":    move("PURCHASE", "1000000000000000"),
		"salida desborda la columna": move("SALE", "-1000000000000000"),
		"bodega fuera de INTEGER":    func() MovementInputDTO { m := move("PURCHASE", "1"); m.WarehouseID = 3_000_000_000; return m }(),
		"lote fuera de INTEGER":      func() MovementInputDTO { m := move("PURCHASE", "1"); l := int64(3_000_000_000); m.LotID = &l; return m }(),
		"ref_id fuera de INTEGER":    func() MovementInputDTO { m := move("PURCHASE", "1"); r := int64(3_000_000_000); m.RefID = &r; return m }(),
		"ref_type largo": func() MovementInputDTO {
			m := move("PURCHASE", "1")
			s := strings.Repeat("R", 21)
			m.RefType = &s
			return m
		}(),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			f := newRegisterFixture()
			_, err := f.uc.RegisterMovement(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, f.store.count())
		})
	}
}

func TestRegisterMovement_LimitesDeColumnaAceptados(t *testing.T) {
	f := newRegisterFixture()
	_, err := f.uc.RegisterMovement(context.Background(), move("PURCHASE", "999999999999999.999"))
	require.NoError(t, err)
	_, err = f.uc.RegisterMovement(context.Background(), move("SALE", "0.001"))
	require.NoError(t, err)
	assert.Equal(t, 2, f.store.count())
}

func TestRegisterMovement_Referencias(t *testing.T) {
	f := newRegisterFixture()
	ctx := context.Background()

	in := move("PURCHASE", "1")
	in.ProductID = 99
	_, err := f.uc.RegisterMovement(ctx, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in = move("PURCHASE", "1")
	in.WarehouseID = 99
	_, err = f.uc.RegisterMovement(ctx, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	otherLot := int64(8)
	in = move("PURCHASE", "1")
	in.LotID = &otherLot
	_, err = f.uc.RegisterMovement(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el lote pertenece a otro producto")

	lot := int64(7)
	in = move("PURCHASE", "5")
	in.LotID = &lot
	_, err = f.uc.RegisterMovement(ctx, in)
	require.NoError(t, err)
	assert.True(t, f.store.balance(inventory.NewKey(1, 1, &lot)).Equal(decimal.NewFromInt(5)))
	assert.True(t, f.store.balance(keyW1P1).IsZero(), "la llave sin lote es independiente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia
// ──────────────────────────────────────────────────────────────────────────────

// Salidas concurrentes sobre la misma llave nunca dejan el saldo negativo.
func TestRegisterMovement_SalidasConcurrentes(t *testing.T) {
	f := newRegisterFixture()
	ctx := context.Background()
	_, err := f.uc.RegisterMovement(ctx, move("PURCHASE", "10"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := 0
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.uc.RegisterMovement(ctx, move("SALE", "-1")); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, ok)
	assert.True(t, f.store.balance(keyW1P1).IsZero())
}

func TestRegisterMovementFromRequest(t *testing.T) {
	f := newRegisterFixture()
	notes := "recepción cosecha"
	id, err := f.uc.RegisterMovementFromRequest(context.Background(), dto.RegisterMovementRequest{
		WarehouseID:  1,
		ProductID:    1,
		UoMID:        1,
		MovementType: "purchase",
		Quantity:     decimal.NewFromInt(3),
		Notes:        &notes,
	})
	require.NoError(t, err)
	require.Len(t, f.store.movs, 1)
	assert.Equal(t, id, f.store.movs[0].ID)
	assert.Equal(t, inventory.MovementPurchase, f.store.movs[0].Type)
	assert.Equal(t, &notes, f.store.movs[0].Notes)
}
