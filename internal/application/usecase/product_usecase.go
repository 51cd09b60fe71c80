package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/cafetal-api/internal/application/dto"
	"github.com/jhoicas/cafetal-api/internal/domain"
	"github.com/jhoicas/cafetal-api/internal/domain/entity"
	"github.com/jhoicas/cafetal-api/internal/domain/repository"
)

const (
	productListLimit = 200
	lotListLimit     = 500
)

var qualityStatuses = map[string]bool{
	entity.QualityPending:  true,
	entity.QualityApproved: true,
	entity.QualityRejected: true,
}

// ProductUseCase lectura del catálogo: productos, categorías y lotes.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	lotRepo      repository.LotRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	lotRepo repository.LotRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, lotRepo: lotRepo}
}

// List busca productos por nombre/SKU y categoría (máximo 200).
func (uc *ProductUseCase) List(ctx context.Context, search, category string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, repository.ProductFilter{
		Search:   strings.TrimSpace(search),
		Category: strings.TrimSpace(category),
		Limit:    productListLimit,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProductResponse{
			ID:       p.ID,
			SKU:      p.SKU,
			Name:     p.Name,
			Category: p.Category,
			UoM:      p.UoM,
		})
	}
	return items, nil
}

// Categories lista las categorías de producto.
func (uc *ProductUseCase) Categories(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return items, nil
}

// Lots lista lotes con su disponible en caché. quality vacío = todos.
func (uc *ProductUseCase) Lots(ctx context.Context, productID *int64, quality string) ([]dto.LotResponse, error) {
	quality = strings.ToUpper(strings.TrimSpace(quality))
	if quality != "" && !qualityStatuses[quality] {
		return nil, fmt.Errorf("%w: quality %q", domain.ErrInvalidInput, quality)
	}
	list, err := uc.lotRepo.List(ctx, repository.LotFilter{
		ProductID: productID,
		Quality:   quality,
		Limit:     lotListLimit,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.LotResponse, 0, len(list))
	for _, l := range list {
		items = append(items, toLotResponse(l))
	}
	return items, nil
}

func toLotResponse(l *entity.Lot) dto.LotResponse {
	r := dto.LotResponse{
		ID:            l.ID,
		Code:          l.Code,
		ProductID:     l.ProductID,
		QualityStatus: l.QualityStatus,
		QtyInitial:    l.QtyInitial,
		QtyAvailable:  l.QtyAvailable,
	}
	if l.ProductionDate != nil {
		s := l.ProductionDate.Format("02/01/2006")
		r.MfgDate = &s
	}
	if l.ExpirationDate != nil {
		s := l.ExpirationDate.Format("02/01/2006")
		r.ExpDate = &s
	}
	if l.RefreshedAt != nil {
		s := l.RefreshedAt.Format("02/01/2006 15:04")
		r.RefreshedAt = &s
	}
	return r
}
