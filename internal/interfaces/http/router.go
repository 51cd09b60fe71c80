package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/cafetal-api/internal/application/analytics"
	appinventory "github.com/jhoicas/cafetal-api/internal/application/inventory"
	"github.com/jhoicas/cafetal-api/internal/application/usecase"
	"github.com/jhoicas/cafetal-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Stock            *appinventory.StockUseCase
	Kardex           *appinventory.KardexUseCase
	RegisterMovement *appinventory.RegisterMovementUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	ProductUC        *usecase.ProductUseCase
	DashboardUC      *appanalytics.DashboardUseCase
	Location         *time.Location

	// JWTSecret vacío deja POST /movements sin autenticación.
	JWTSecret string
	// MovementLimiter opcional (ver RateLimit).
	MovementLimiter fiber.Handler
	// Ping opcional para /health.
	Ping func(ctx context.Context) error
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		if deps.Ping != nil {
			if err := deps.Ping(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	inventoryHandler := NewInventoryHandler(deps.Stock, deps.Kardex, deps.RegisterMovement, deps.Location)
	inv := api.Group("/inventory")
	inv.Get("/", inventoryHandler.List)
	inv.Get("/kpis", inventoryHandler.KPIs)
	inv.Get("/kardex", inventoryHandler.Kardex)
	inv.Get("/balance", inventoryHandler.Balance)

	var movementChain []fiber.Handler
	if deps.MovementLimiter != nil {
		movementChain = append(movementChain, deps.MovementLimiter)
	}
	if deps.JWTSecret != "" {
		movementChain = append(movementChain, AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleAdmin, jwt.RoleBodeguero))
	}
	movementChain = append(movementChain, inventoryHandler.RegisterMovement)
	api.Post("/movements", movementChain...)

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	api.Get("/warehouses", warehouseHandler.List)
	api.Get("/uoms", warehouseHandler.ListUnits)

	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.List)
	api.Get("/categories", productHandler.Categories)
	api.Get("/lots", productHandler.Lots)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/overview", dashboardHandler.Overview)
}
