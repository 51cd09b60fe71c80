package usecase

import (
	"context"

	"github.com/jhoicas/cafetal-api/internal/application/dto"
	"github.com/jhoicas/cafetal-api/internal/domain/entity"
	"github.com/jhoicas/cafetal-api/internal/domain/repository"
)

// WarehouseUseCase lectura de bodegas y unidades de medida.
type WarehouseUseCase struct {
	repo    repository.WarehouseRepository
	uomRepo repository.UnitOfMeasureRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, uomRepo repository.UnitOfMeasureRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, uomRepo: uomRepo}
}

// List lista todas las bodegas ordenadas por nombre.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, toWarehouseResponse(w))
	}
	return items, nil
}

// ListUnits lista las unidades de medida.
func (uc *WarehouseUseCase) ListUnits(ctx context.Context) ([]dto.UnitOfMeasureResponse, error) {
	list, err := uc.uomRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UnitOfMeasureResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.UnitOfMeasureResponse{ID: u.ID, Code: u.Code, Description: u.Description})
	}
	return items, nil
}

func toWarehouseResponse(w *entity.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{
		ID:       w.ID,
		Code:     w.Code,
		Name:     w.Name,
		Location: w.Location,
	}
}
