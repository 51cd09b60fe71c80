package inventory

import (
	"context"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/cafetal-api/internal/domain"
	"github.com/jhoicas/cafetal-api/internal/domain/entity"
	"github.com/jhoicas/cafetal-api/internal/domain/inventory"
	"github.com/jhoicas/cafetal-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Límites de las columnas del movimiento (notes VARCHAR(250), ref_type VARCHAR(20),
// ids INTEGER, qty NUMERIC(18,3)).
const (
	maxNotesLen   = 250
	maxRefTypeLen = 20
	maxColumnID   = math.MaxInt32
	qtyScale      = 3
)

// maxQty primer valor que no cabe en NUMERIC(18,3).
var maxQty = decimal.New(1, 15)

// RegisterMovementUseCase registra movimientos en el kardex.
// Las salidas se validan contra el saldo derivado dentro de la misma transacción,
// con un bloqueo por llave que serializa escrituras concurrentes.
type RegisterMovementUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	lotRepo       repository.LotRepository
	loc           *time.Location
}

// NewRegisterMovementUseCase construye el caso de uso. loc es la zona horaria de movement_ts.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	lotRepo repository.LotRepository,
	loc *time.Location,
) *RegisterMovementUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &RegisterMovementUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		lotRepo:       lotRepo,
		loc:           loc,
	}
}

// MovementInputDTO entrada para registrar un movimiento.
// Quantity puede venir negativa solo en tipos de salida; se guarda siempre la magnitud.
type MovementInputDTO struct {
	WarehouseID  int64
	ProductID    int64
	UoMID        int64
	MovementType string
	Quantity     decimal.Decimal
	LotID        *int64
	RefType      *string
	RefID        *int64
	Notes        *string
}

// RegisterMovement valida la entrada, verifica referencias y agrega el movimiento al kardex.
// Devuelve el ID asignado por la BD.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInputDTO) (int64, error) {
	mt, err := validateInput(input)
	if err != nil {
		return 0, err
	}

	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, fmt.Errorf("%w: producto %d", domain.ErrNotFound, input.ProductID)
	}
	wh, err := uc.warehouseRepo.GetByID(ctx, input.WarehouseID)
	if err != nil {
		return 0, err
	}
	if wh == nil {
		return 0, fmt.Errorf("%w: bodega %d", domain.ErrNotFound, input.WarehouseID)
	}
	if input.LotID != nil {
		lot, err := uc.lotRepo.GetByID(ctx, *input.LotID)
		if err != nil {
			return 0, err
		}
		if lot == nil || lot.ProductID != product.ID {
			return 0, fmt.Errorf("%w: el lote %d no pertenece al producto %d", domain.ErrInvalidInput, *input.LotID, product.ID)
		}
	}

	mov := &entity.InventoryMovement{
		Timestamp:   time.Now().In(uc.loc),
		WarehouseID: input.WarehouseID,
		ProductID:   input.ProductID,
		LotID:       input.LotID,
		Quantity:    input.Quantity.Abs(),
		UoMID:       input.UoMID,
		Type:        mt,
		RefType:     input.RefType,
		RefID:       input.RefID,
		Notes:       input.Notes,
	}

	// Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace)
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
	) error {
		if mt.Direction() == inventory.Outbound {
			key := mov.Key()
			if err := stockRepo.Lock(ctx, key); err != nil {
				return err
			}
			balance, err := stockRepo.Balance(ctx, key)
			if err != nil {
				return err
			}
			if err := inventory.CheckWithdrawal(balance, mov.Quantity); err != nil {
				return err
			}
		}
		return movRepo.Create(ctx, mov)
	})
	if err != nil {
		return 0, err
	}
	return mov.ID, nil
}

// validateInput revisa campos obligatorios y la coherencia signo/tipo antes de tocar la BD.
func validateInput(in MovementInputDTO) (inventory.MovementType, error) {
	if in.WarehouseID <= 0 || in.ProductID <= 0 || in.UoMID <= 0 {
		return "", fmt.Errorf("%w: warehouse_id, product_id y uom_id son obligatorios", domain.ErrInvalidInput)
	}
	if in.WarehouseID > maxColumnID || in.ProductID > maxColumnID || in.UoMID > maxColumnID {
		return "", fmt.Errorf("%w: warehouse_id, product_id y uom_id deben ser ≤ %d", domain.ErrInvalidInput, maxColumnID)
	}
	if in.LotID != nil && (*in.LotID <= 0 || *in.LotID > maxColumnID) {
		return "", fmt.Errorf("%w: lot_id inválido", domain.ErrInvalidInput)
	}
	if in.RefID != nil && (*in.RefID < math.MinInt32 || *in.RefID > maxColumnID) {
		return "", fmt.Errorf("%w: ref_id fuera de rango", domain.ErrInvalidInput)
	}
	mt, err := inventory.ParseMovementType(in.MovementType)
	if err != nil {
		return "", err
	}
	if in.Quantity.IsZero() {
		return "", fmt.Errorf("%w: qty no puede ser cero", domain.ErrInvalidInput)
	}
	if !in.Quantity.Round(qtyScale).Equal(in.Quantity) {
		return "", fmt.Errorf("%w: qty admite hasta %d decimales", domain.ErrInvalidInput, qtyScale)
	}
	if in.Quantity.Abs().GreaterThanOrEqual(maxQty) {
		return "", fmt.Errorf("%w: qty debe ser menor que %s", domain.ErrInvalidInput, maxQty)
	}
	if in.Quantity.IsNegative() && mt.Direction() == inventory.Inbound {
		return "", fmt.Errorf("%w: qty negativa con tipo de entrada %s", domain.ErrInvalidInput, mt)
	}
	if in.Notes != nil && utf8.RuneCountInString(*in.Notes) > maxNotesLen {
		return "", fmt.Errorf("%w: notes supera %d caracteres", domain.ErrInvalidInput, maxNotesLen)
	}
	if in.RefType != nil && utf8.RuneCountInString(*in.RefType) > maxRefTypeLen {
		return "", fmt.Errorf("%w: ref_type supera %d caracteres", domain.ErrInvalidInput, maxRefTypeLen)
	}
	return mt, nil
}
