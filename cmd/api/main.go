package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/specialdk/rac-inventory-sub000/docs"
	"github.com/specialdk/rac-inventory-sub000/internal/application/auth"
	appdelivery "github.com/specialdk/rac-inventory-sub000/internal/application/delivery"
	"github.com/specialdk/rac-inventory-sub000/internal/application/inventory"
	"github.com/specialdk/rac-inventory-sub000/internal/application/report"
	"github.com/specialdk/rac-inventory-sub000/internal/application/usecase"
	"github.com/specialdk/rac-inventory-sub000/internal/infrastructure/metrics"
	infrapdf "github.com/specialdk/rac-inventory-sub000/internal/infrastructure/pdf"
	"github.com/specialdk/rac-inventory-sub000/internal/infrastructure/postgres"
	"github.com/specialdk/rac-inventory-sub000/internal/infrastructure/xmldoc"
	httpRouter "github.com/specialdk/rac-inventory-sub000/internal/interfaces/http"
	"github.com/specialdk/rac-inventory-sub000/pkg/config"
	"github.com/specialdk/rac-inventory-sub000/pkg/logger"
)

// runMigrations aplica las migraciones goose antes de abrir el pool pgx.
func runMigrations(dsn, dir string) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, dir)
}

// @title           RAC Inventory API
// @version         1.0
// @description     API de inventario de áridos: libro de movimientos, costo promedio ponderado y despachos.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := runMigrations(cfg.DB.ConnectionString(), cfg.App.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	log.Info().Str("dir", cfg.App.MigrationsDir).Msg("migraciones aplicadas")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockpileRepo := postgres.NewStockpileRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	carrierRepo := postgres.NewCarrierRepository(pool)
	driverRepo := postgres.NewDriverRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	stockRepo := postgres.NewCurrentStockRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, stockpileRepo)
	inventoryQueryUC := inventory.NewQueryUseCase(movementRepo, stockRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	stockpileUC := usecase.NewStockpileUseCase(stockpileRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	carrierUC := usecase.NewCarrierUseCase(carrierRepo)
	driverUC := usecase.NewDriverUseCase(driverRepo, carrierRepo)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo, carrierRepo)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo)
	reportUC := report.NewReportUseCase(stockRepo, movementRepo, productRepo, stockpileRepo)

	pdfGenerator := infrapdf.NewDocketPDFGenerator(cfg.App.Name)
	xmlBuilder := xmldoc.NewDocketXMLBuilder(cfg.App.Name)
	deliveryUC := appdelivery.NewDeliveryUseCase(
		deliveryRepo, movementRepo, productRepo, stockpileRepo,
		customerRepo, carrierRepo, driverRepo, vehicleRepo,
		pdfGenerator, xmlBuilder,
	)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	appMetrics := metrics.New(nil)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RAC Inventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		RegisterMovement: registerMovementUC,
		InventoryQuery:   inventoryQueryUC,
		ProductUC:        productUC,
		StockpileUC:      stockpileUC,
		CustomerUC:       customerUC,
		CarrierUC:        carrierUC,
		DriverUC:         driverUC,
		VehicleUC:        vehicleUC,
		DashboardUC:      dashboardUC,
		DeliveryUC:       deliveryUC,
		ReportUC:         reportUC,
		AuthUC:           authUC,
		Metrics:          appMetrics,
		JWTSecret:        cfg.JWT.Secret,
	})

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

	log.Info().Msg("aplicación detenida")
}
