package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	zlog "github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	_ "github.com/jhoicas/cafetal-api/docs"
	appanalytics "github.com/jhoicas/cafetal-api/internal/application/analytics"
	"github.com/jhoicas/cafetal-api/internal/application/dto"
	"github.com/jhoicas/cafetal-api/internal/application/inventory"
	"github.com/jhoicas/cafetal-api/internal/application/usecase"
	domaininv "github.com/jhoicas/cafetal-api/internal/domain/inventory"
	"github.com/jhoicas/cafetal-api/internal/infrastructure/postgres"
	"github.com/jhoicas/cafetal-api/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/cafetal-api/internal/interfaces/http"
	"github.com/jhoicas/cafetal-api/pkg/config"
	"github.com/jhoicas/cafetal-api/pkg/logger"
)

// @title        CAFETAL Inventario API
// @version      1.0
// @description  Kardex de solo anexado, saldos por bodega/producto/lote y dashboard.
// @BasePath     /
// @securityDefinitions.apikey Bearer
// @in           header
// @name         Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		Name:  cfg.App.Name,
	})
	// Logger global para el mapeo de errores HTTP.
	zlog.Logger = log.Zerolog()

	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("tz", cfg.App.TZ).
		Msg("iniciando aplicación")

	loc, err := cfg.App.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria")
	}
	thresholds, err := alertThresholds(cfg.Inventory)
	if err != nil {
		log.Fatal().Err(err).Msg("umbrales de alerta")
	}
	// Cantidades como números JSON (no strings).
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, cfg.App.TZ)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	warehouseRepo := postgres.NewWarehouseRepository(pool)
	uomRepo := postgres.NewUnitOfMeasureRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, warehouseRepo, lotRepo, loc)
	stockUC := inventory.NewStockUseCase(stockRepo, thresholds, cfg.Inventory.KPIUoM)
	kardexUC := inventory.NewKardexUseCase(movementRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, uomRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, lotRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(stockRepo, analyticsRepo, thresholds, cfg.Inventory.KPIUoM)

	movementLimiter, err := httpRouter.RateLimit(cfg.RateLimit.Movements)
	if err != nil {
		log.Fatal().Err(err).Msg("rate limit")
	}
	if !cfg.JWT.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: POST /api/v1/movements sin autenticación")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowCredentials: false,
	}))

	// Swagger UI en /docs solo si existe el swagger.json generado.
	if _, err := os.Stat(cfg.Swagger.FilePath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.FilePath,
			Path:     "docs",
			Title:    "CAFETAL Inventario API",
		}))
	} else {
		log.Warn().Str("path", cfg.Swagger.FilePath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Stock:            stockUC,
		Kardex:           kardexUC,
		RegisterMovement: registerMovementUC,
		WarehouseUC:      warehouseUC,
		ProductUC:        productUC,
		DashboardUC:      dashboardUC,
		Location:         loc,
		JWTSecret:        cfg.JWT.Secret,
		MovementLimiter:  movementLimiter,
		Ping:             pool.Ping,
	})

	lotScheduler := scheduler.New(lotRepo, cfg.Lots.RefreshSpec, loc, log)
	if err := lotScheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("scheduler de lotes")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	lotScheduler.Stop()

	log.Info().Msg("aplicación detenida")
}

// alertThresholds interpreta los umbrales configurados (texto decimal) y los valida.
func alertThresholds(c config.InventoryConfig) (domaininv.AlertThresholds, error) {
	critical, err := decimal.NewFromString(c.AlertCritical)
	if err != nil {
		return domaininv.AlertThresholds{}, fmt.Errorf("INVENTORY_ALERT_CRITICAL %q: %w", c.AlertCritical, err)
	}
	low, err := decimal.NewFromString(c.AlertLow)
	if err != nil {
		return domaininv.AlertThresholds{}, fmt.Errorf("INVENTORY_ALERT_LOW %q: %w", c.AlertLow, err)
	}
	t := domaininv.AlertThresholds{Critical: critical, Low: low}
	return t, t.Validate()
}

// errorHandler responde {code, message} para errores que llegan a Fiber (rutas inexistentes, panics recuperados).
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		zlog.Error().Err(err).Str("path", c.Path()).Str("request_id", httpRouter.GetRequestID(c)).Msg("error no controlado")
		return c.Status(code).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if code == fiber.StatusNotFound {
		return c.Status(code).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta no encontrada"})
	}
	return c.Status(code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: err.Error()})
}
