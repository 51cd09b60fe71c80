package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cafetal-api/internal/application/dto"
	appinventory "github.com/jhoicas/cafetal-api/internal/application/inventory"
	"github.com/jhoicas/cafetal-api/internal/domain/inventory"
	"github.com/jhoicas/cafetal-api/internal/domain/repository"
)

// InventoryHandler maneja saldos, kardex y registro de movimientos.
type InventoryHandler struct {
	stock    *appinventory.StockUseCase
	kardex   *appinventory.KardexUseCase
	register *appinventory.RegisterMovementUseCase
	loc      *time.Location
}

// NewInventoryHandler construye el handler. loc se usa para interpretar las fechas del kardex.
func NewInventoryHandler(
	stock *appinventory.StockUseCase,
	kardex *appinventory.KardexUseCase,
	register *appinventory.RegisterMovementUseCase,
	loc *time.Location,
) *InventoryHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &InventoryHandler{stock: stock, kardex: kardex, register: register, loc: loc}
}

func stockFilter(c *fiber.Ctx) (repository.StockFilter, error) {
	wh, err := queryID(c, "warehouseId")
	if err != nil {
		return repository.StockFilter{}, err
	}
	return repository.StockFilter{
		WarehouseID: wh,
		Category:    strings.TrimSpace(c.Query("category")),
		Quality:     strings.ToUpper(strings.TrimSpace(c.Query("quality"))),
		Search:      strings.TrimSpace(c.Query("search")),
	}, nil
}

// List godoc
// @Summary      Listado de saldos por bodega, producto y lote
// @Tags         inventory
// @Produce      json
// @Param        warehouseId  query  int     false  "Bodega"
// @Param        category     query  string  false  "Categoría (nombre)"
// @Param        quality      query  string  false  "PENDING | APPROVED | REJECTED"
// @Param        search       query  string  false  "Nombre, SKU o código de lote"
// @Param        page         query  int     false  "Página (base 1)"
// @Param        pageSize     query  int     false  "Tamaño de página (máx. 200)"
// @Success      200  {object}  dto.InventoryPageDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	f, err := stockFilter(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.stock.List(c.UserContext(), f, pageRequest(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// KPIs godoc
// @Summary      Indicadores de stock con los mismos filtros del listado
// @Tags         inventory
// @Produce      json
// @Param        warehouseId  query  int     false  "Bodega"
// @Param        category     query  string  false  "Categoría"
// @Param        quality      query  string  false  "Estado de calidad del lote"
// @Param        search       query  string  false  "Texto libre"
// @Success      200  {object}  dto.InventoryKPIsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/kpis [get]
func (h *InventoryHandler) KPIs(c *fiber.Ctx) error {
	f, err := stockFilter(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.stock.KPIs(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Kardex godoc
// @Summary      Historial de movimientos con saldo corrido
// @Description  Fechas en dd/MM/yyyy o yyyy-MM-dd, ambas inclusivas.
// @Tags         inventory
// @Produce      json
// @Param        warehouseId  query  int     false  "Bodega"
// @Param        productId    query  int     false  "Producto"
// @Param        lotId        query  int     false  "Lote"
// @Param        dateFrom     query  string  false  "Desde"
// @Param        dateTo       query  string  false  "Hasta"
// @Param        page         query  int     false  "Página (base 1)"
// @Param        pageSize     query  int     false  "Tamaño de página (máx. 1000)"
// @Success      200  {object}  dto.KardexPageDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/kardex [get]
func (h *InventoryHandler) Kardex(c *fiber.Ctx) error {
	var f repository.KardexFilter
	var err error
	if f.WarehouseID, err = queryID(c, "warehouseId"); err != nil {
		return writeError(c, err)
	}
	if f.ProductID, err = queryID(c, "productId"); err != nil {
		return writeError(c, err)
	}
	if f.LotID, err = queryID(c, "lotId"); err != nil {
		return writeError(c, err)
	}
	if f.DateFrom, err = appinventory.ParseDate(c.Query("dateFrom"), h.loc); err != nil {
		return writeError(c, err)
	}
	if f.DateTo, err = appinventory.ParseDate(c.Query("dateTo"), h.loc); err != nil {
		return writeError(c, err)
	}
	out, err := h.kardex.History(c.UserContext(), f, pageRequest(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Balance godoc
// @Summary      Saldo actual de una llave (bodega, producto, lote)
// @Tags         inventory
// @Produce      json
// @Param        warehouseId  query  int  true   "Bodega"
// @Param        productId    query  int  true   "Producto"
// @Param        lotId        query  int  false  "Lote; vacío = sin lote"
// @Success      200  {object}  dto.BalanceDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/balance [get]
func (h *InventoryHandler) Balance(c *fiber.Ctx) error {
	wh, err := requiredID(c, "warehouseId")
	if err != nil {
		return writeError(c, err)
	}
	p, err := requiredID(c, "productId")
	if err != nil {
		return writeError(c, err)
	}
	lot, err := queryID(c, "lotId")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.stock.Balance(c.UserContext(), inventory.NewKey(wh, p, lot))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Las salidas se validan contra el saldo de la llave; qty negativa solo se admite en salidas.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/v1/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.register.RegisterMovementFromRequest(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterMovementResponse{OK: true, ID: id})
}
