package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cafetal-api/internal/application/usecase"
)

// ProductHandler catálogos de productos, categorías y lotes.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         catalog
// @Produce      json
// @Param        search    query  string  false  "Nombre o SKU"
// @Param        category  query  string  false  "Categoría"
// @Success      200  {array}   dto.ProductResponse
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), c.Query("search"), c.Query("category"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Categories godoc
// @Summary      Listar categorías de producto
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   dto.CategoryResponse
// @Router       /api/v1/categories [get]
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	list, err := h.uc.Categories(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Lots godoc
// @Summary      Listar lotes
// @Description  qtyAvailable es un valor en caché que el scheduler recalcula desde el kardex.
// @Tags         catalog
// @Produce      json
// @Param        productId  query  int     false  "Producto"
// @Param        quality    query  string  false  "PENDING | APPROVED | REJECTED"
// @Success      200  {array}   dto.LotResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/lots [get]
func (h *ProductHandler) Lots(c *fiber.Ctx) error {
	productID, err := queryID(c, "productId")
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.Lots(c.UserContext(), productID, c.Query("quality"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}
