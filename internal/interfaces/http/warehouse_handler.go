package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cafetal-api/internal/application/usecase"
)

// WarehouseHandler catálogos de bodegas y unidades de medida.
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// List godoc
// @Summary      Listar bodegas
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   dto.WarehouseResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// ListUnits godoc
// @Summary      Listar unidades de medida
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   dto.UnitOfMeasureResponse
// @Router       /api/v1/uoms [get]
func (h *WarehouseHandler) ListUnits(c *fiber.Ctx) error {
	list, err := h.uc.ListUnits(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}
