package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/specialdk/rac-inventory-sub000/internal/application/auth"
	"github.com/specialdk/rac-inventory-sub000/internal/application/delivery"
	appinventory "github.com/specialdk/rac-inventory-sub000/internal/application/inventory"
	"github.com/specialdk/rac-inventory-sub000/internal/application/report"
	"github.com/specialdk/rac-inventory-sub000/internal/application/usecase"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
	"github.com/specialdk/rac-inventory-sub000/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RegisterMovement *appinventory.RegisterMovementUseCase
	InventoryQuery   *appinventory.QueryUseCase
	ProductUC        *usecase.ProductUseCase
	StockpileUC      *usecase.StockpileUseCase
	CustomerUC       *usecase.CustomerUseCase
	CarrierUC        *usecase.CarrierUseCase
	DriverUC         *usecase.DriverUseCase
	VehicleUC        *usecase.VehicleUseCase
	DashboardUC      *usecase.DashboardUseCase
	DeliveryUC       *delivery.DeliveryUseCase
	ReportUC         *report.ReportUseCase
	AuthUC           *auth.AuthUseCase
	Metrics          *metrics.Metrics
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Roles: admin administra todo; operador registra producción, ajustes y
	// traslados; ventas registra ventas y despachos. Las lecturas quedan
	// abiertas a cualquier usuario autenticado.
	planta := RequireRole(entity.RoleAdmin, entity.RoleOperador)
	comercial := RequireRole(entity.RoleAdmin, entity.RoleVentas)
	soloAdmin := RequireRole(entity.RoleAdmin)

	// Movements (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.InventoryQuery, deps.Metrics)
	movements.Post("/production", planta, movementHandler.Production)
	movements.Post("/opening", planta, movementHandler.Opening)
	movements.Post("/sales", comercial, movementHandler.Sales)
	movements.Post("/adjustment", planta, movementHandler.Adjustment)
	movements.Post("/transfer", planta, movementHandler.Transfer)
	movements.Post("/demand", comercial, movementHandler.Demand)
	movements.Post("/:id/cancel", soloAdmin, movementHandler.Cancel)
	movements.Put("/:id", soloAdmin, movementHandler.Edit)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)

	// Stock (protegido)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.InventoryQuery, deps.RegisterMovement, deps.Metrics)
	stock.Get("/", stockHandler.List)
	stock.Post("/rebuild", soloAdmin, stockHandler.Rebuild)
	stock.Get("/:product_id/:stockpile_id", stockHandler.Get)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", soloAdmin, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", soloAdmin, productHandler.Update)
	products.Delete("/:id", soloAdmin, productHandler.Delete)

	// Stockpiles (protegido)
	stockpiles := protected.Group("/stockpiles")
	stockpileHandler := NewStockpileHandler(deps.StockpileUC)
	stockpiles.Post("/", soloAdmin, stockpileHandler.Create)
	stockpiles.Get("/", stockpileHandler.List)
	stockpiles.Get("/:id", stockpileHandler.GetByID)
	stockpiles.Put("/:id", soloAdmin, stockpileHandler.Update)
	stockpiles.Delete("/:id", soloAdmin, stockpileHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", comercial, customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", comercial, customerHandler.Update)
	customers.Delete("/:id", soloAdmin, customerHandler.Delete)

	// Fleet (protegido)
	fleetHandler := NewFleetHandler(deps.CarrierUC, deps.DriverUC, deps.VehicleUC)
	carriers := protected.Group("/carriers")
	carriers.Post("/", comercial, fleetHandler.CreateCarrier)
	carriers.Get("/", fleetHandler.ListCarriers)
	carriers.Get("/:id", fleetHandler.GetCarrier)
	drivers := protected.Group("/drivers")
	drivers.Post("/", comercial, fleetHandler.CreateDriver)
	drivers.Get("/", fleetHandler.ListDrivers)
	vehicles := protected.Group("/vehicles")
	vehicles.Post("/", comercial, fleetHandler.CreateVehicle)
	vehicles.Get("/", fleetHandler.ListVehicles)
	vehicles.Get("/:id", fleetHandler.GetVehicle)

	// Deliveries (protegido)
	deliveries := protected.Group("/deliveries")
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC, deps.Metrics)
	deliveries.Post("/", comercial, deliveryHandler.Create)
	deliveries.Get("/", deliveryHandler.List)
	deliveries.Get("/:id", deliveryHandler.GetByID)
	deliveries.Get("/:id/docket.pdf", deliveryHandler.DocketPDF)
	deliveries.Get("/:id/docket.xml", deliveryHandler.DocketXML)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/stock.xlsx", reportHandler.Stock)
	reports.Get("/movements.xlsx", reportHandler.Movements)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
