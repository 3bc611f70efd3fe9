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

	appanalytics "github.com/smartstock/pos-api/internal/application/analytics"
	"github.com/smartstock/pos-api/internal/application/auth"
	"github.com/smartstock/pos-api/internal/application/billing"
	"github.com/smartstock/pos-api/internal/application/inventory"
	"github.com/smartstock/pos-api/internal/application/sales"
	"github.com/smartstock/pos-api/internal/application/settings"
	infrapdf "github.com/smartstock/pos-api/internal/infrastructure/pdf"
	"github.com/smartstock/pos-api/internal/infrastructure/postgres"
	"github.com/smartstock/pos-api/internal/infrastructure/xlsx"
	httpRouter "github.com/smartstock/pos-api/internal/interfaces/http"
	"github.com/smartstock/pos-api/pkg/config"
	"github.com/smartstock/pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("renderer", cfg.Invoice.Renderer).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	txnRepo := postgres.NewTransactionRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	settingsUC := settings.NewUseCase(settingsRepo)
	inventoryUC := inventory.NewUseCase(itemRepo, categoryRepo, supplierRepo, txnRepo, txRunner.ForAdjustments())
	processSaleUC := sales.NewProcessSaleUseCase(txRunner, settingsUC)
	saleQueryUC := sales.NewSaleQueryUseCase(saleRepo, xlsx.NewSalesExporter())
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Ambas estrategias recorren el mismo documento intermedio; la elección
	// solo cambia la técnica de dibujo del PDF.
	var renderer billing.Renderer
	switch cfg.Invoice.Renderer {
	case config.RendererLayout:
		renderer = infrapdf.NewMarotoRenderer()
	default:
		renderer = infrapdf.NewGofpdfRenderer()
	}
	invoicePDFUC := billing.NewInvoicePDFUseCase(saleRepo, settingsUC, renderer)

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
		Title:    "SmartStock POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InventoryUC: inventoryUC,
		ProcessSale: processSaleUC,
		SaleQuery:   saleQueryUC,
		InvoicePDF:  invoicePDFUC,
		SettingsUC:  settingsUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
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
