package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcardenas/Produccion-api/internal/application/report"
	"github.com/jcardenas/Produccion-api/internal/application/stockquery"
	"github.com/jcardenas/Produccion-api/internal/application/usecase"
)

// Roles reconocidos por la API.
const (
	RoleAdmin      = "admin"
	RoleProduccion = "produccion"
	RoleTienda     = "tienda"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SnapshotUC   *stockquery.SnapshotUseCase
	FacilityUC   *usecase.FacilityUseCase
	StoreUC      *usecase.StoreUseCase
	ProductionUC *usecase.ProductionUseCase
	DispatchUC   *usecase.DispatchUseCase
	ReportUC     *report.SnapshotReportUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Todas las rutas requieren Bearer Token; los roles acotan las mutaciones.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Facilities (directorio de plantas + snapshot + producción + PDF)
	facilities := protected.Group("/facilities")
	facilityHandler := NewFacilityHandler(deps.FacilityUC)
	snapshotHandler := NewSnapshotHandler(deps.SnapshotUC)
	productionHandler := NewProductionHandler(deps.ProductionUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	facilities.Get("/", facilityHandler.List)
	facilities.Post("/", RequireRole(RoleAdmin), facilityHandler.Create)
	facilities.Get("/:id", facilityHandler.GetByID)
	facilities.Get("/:id/snapshot", snapshotHandler.GetByFacility)
	facilities.Get("/:id/snapshot/pdf", reportHandler.DownloadSnapshotPDF)
	facilities.Get("/:id/production", productionHandler.ListByFacility)

	// Snapshots (vista de todas las plantas)
	protected.Get("/snapshots", snapshotHandler.GetAll)

	// Stores (directorio de tiendas + sus despachos)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	dispatchHandler := NewDispatchHandler(deps.DispatchUC)
	stores.Get("/", storeHandler.List)
	stores.Post("/", RequireRole(RoleAdmin), storeHandler.Create)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Get("/:id/dispatches", dispatchHandler.ListByStore)

	// Production (registro de cierres y aprobación)
	production := protected.Group("/production")
	production.Post("/", RequireRole(RoleAdmin, RoleProduccion), productionHandler.Register)
	production.Patch("/:id/approval", RequireRole(RoleAdmin), productionHandler.UpdateApproval)

	// Dispatches (ciclo de vida de solicitudes)
	dispatches := protected.Group("/dispatches")
	dispatches.Post("/", RequireRole(RoleAdmin, RoleTienda), dispatchHandler.Create)
	dispatches.Patch("/:id/status", RequireRole(RoleAdmin, RoleProduccion), dispatchHandler.UpdateStatus)
	dispatches.Patch("/:id/deliver", RequireRole(RoleAdmin, RoleProduccion), dispatchHandler.Deliver)
}
