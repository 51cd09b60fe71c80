package inventory

import (
	"context"

	"github.com/jhoicas/cafetal-api/internal/application/dto"
)

// RegisterMovementFromRequest adapta el request HTTP al caso de uso RegisterMovement(ctx, MovementInputDTO).
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, in dto.RegisterMovementRequest) (int64, error) {
	input := MovementInputDTO{
		WarehouseID:  in.WarehouseID,
		ProductID:    in.ProductID,
		UoMID:        in.UoMID,
		MovementType: in.MovementType,
		Quantity:     in.Quantity,
		LotID:        in.LotID,
		RefType:      in.RefType,
		RefID:        in.RefID,
		Notes:        in.Notes,
	}
	return uc.RegisterMovement(ctx, input)
}
