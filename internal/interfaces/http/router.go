package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billing-pos/internal/application/billing"
	"github.com/jhoicas/billing-pos/internal/application/reports"
	"github.com/jhoicas/billing-pos/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BillUC     *billing.BillUseCase
	ReceiptUC  *billing.ReceiptUseCase
	ProductUC  *usecase.ProductUseCase
	CustomerUC *usecase.CustomerUseCase
	CategoryUC *usecase.CategoryUseCase
	SettingsUC *usecase.SettingsUseCase
	ReportUC   *reports.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Bills
	bills := api.Group("/bills")
	billHandler := NewBillHandler(deps.BillUC, deps.ReceiptUC)
	bills.Post("/", billHandler.Create)
	bills.Get("/", billHandler.List)
	bills.Get("/:id", billHandler.GetByID)
	bills.Get("/:id/receipt", billHandler.DownloadReceipt)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)

	// Settings
	settings := api.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)

	// Reports + dashboard
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup := api.Group("/reports")
	reportsGroup.Get("/daily-sales", reportHandler.DailySales)
	reportsGroup.Get("/monthly-sales", reportHandler.MonthlySales)
	api.Get("/dashboard/stats", reportHandler.DashboardStats)
}
