package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jcardenas/Produccion-api/internal/application/report"
	"github.com/jcardenas/Produccion-api/internal/application/stockquery"
	"github.com/jcardenas/Produccion-api/internal/application/usecase"
	"github.com/jcardenas/Produccion-api/internal/domain/stock"
	infrapdf "github.com/jcardenas/Produccion-api/internal/infrastructure/pdf"
	"github.com/jcardenas/Produccion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcardenas/Produccion-api/internal/interfaces/http"
	"github.com/jcardenas/Produccion-api/pkg/config"
	"github.com/jcardenas/Produccion-api/pkg/logger"
)

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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	facilityRepo := postgres.NewFacilityRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	productionRepo := postgres.NewProductionRecordRepository(pool)
	dispatchRepo := postgres.NewDispatchRequestRepository(pool)

	policy, err := stock.ParseApprovalPolicy(cfg.Stock.ApprovalPolicy)
	if err != nil {
		log.Fatal().Err(err).Str("policy", cfg.Stock.ApprovalPolicy).Msg("STOCK_APPROVAL_POLICY inválida")
	}

	snapshotUC := stockquery.NewSnapshotUseCase(
		productionRepo, dispatchRepo, storeRepo, facilityRepo,
		policy, log.Component("stockquery"),
	)
	facilityUC := usecase.NewFacilityUseCase(facilityRepo)
	storeUC := usecase.NewStoreUseCase(storeRepo, facilityRepo)
	productionUC := usecase.NewProductionUseCase(productionRepo, facilityRepo)
	dispatchUC := usecase.NewDispatchUseCase(dispatchRepo, storeRepo)

	// PDF: informe diario de stock por planta
	pdfGenerator := infrapdf.NewMarotoSnapshotGenerator()
	reportUC := report.NewSnapshotReportUseCase(snapshotUC, facilityRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Produccion Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SnapshotUC:   snapshotUC,
		FacilityUC:   facilityUC,
		StoreUC:      storeUC,
		ProductionUC: productionUC,
		DispatchUC:   dispatchUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
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
