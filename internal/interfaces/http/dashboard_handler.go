package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/cafetal-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Overview godoc
// @Summary      Resumen del inventario
// @Description  KPIs de stock, serie por categoría y productos con menor saldo.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardOverviewDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/dashboard/overview [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
