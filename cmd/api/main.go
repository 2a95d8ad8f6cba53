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

	"github.com/jhoicas/billing-pos/internal/application/billing"
	"github.com/jhoicas/billing-pos/internal/application/inventory"
	"github.com/jhoicas/billing-pos/internal/application/reports"
	"github.com/jhoicas/billing-pos/internal/application/usecase"
	"github.com/jhoicas/billing-pos/internal/domain/numbering"
	infrapdf "github.com/jhoicas/billing-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/billing-pos/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/billing-pos/internal/interfaces/http"
	"github.com/jhoicas/billing-pos/pkg/config"
	"github.com/jhoicas/billing-pos/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	consumeUC := inventory.NewConsumeUseCase(txRunner, cfg.Billing.AllowNegativeStock)
	numbers := numbering.New(cfg.Billing.NumberPrefix)
	billUC := billing.NewBillUseCase(txRunner, consumeUC, numbers, settingsRepo, billRepo)

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := billing.NewReceiptUseCase(billRepo, settingsRepo, receiptGenerator)

	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	reportUC := reports.NewReportUseCase(reportRepo)

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
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BillUC:     billUC,
		ReceiptUC:  receiptUC,
		ProductUC:  productUC,
		CustomerUC: customerUC,
		CategoryUC: categoryUC,
		SettingsUC: settingsUC,
		ReportUC:   reportUC,
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
