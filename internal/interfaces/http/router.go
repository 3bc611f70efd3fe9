package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartstock/pos-api/internal/application/analytics"
	"github.com/smartstock/pos-api/internal/application/auth"
	"github.com/smartstock/pos-api/internal/application/billing"
	"github.com/smartstock/pos-api/internal/application/inventory"
	"github.com/smartstock/pos-api/internal/application/sales"
	"github.com/smartstock/pos-api/internal/application/settings"
	"github.com/smartstock/pos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	InventoryUC *inventory.UseCase
	ProcessSale *sales.ProcessSaleUseCase
	SaleQuery   *sales.SaleQueryUseCase
	InvoicePDF  *billing.InvoicePDFUseCase
	SettingsUC  *settings.UseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
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
	adminOnly := RequireRole(entity.RoleAdmin)
	managerUp := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Catálogo: artículos
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.InventoryUC)
	items.Post("/", managerUp, itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", managerUp, itemHandler.Update)
	items.Delete("/:id", adminOnly, itemHandler.Delete)

	// Catálogo: categorías y proveedores
	catalogHandler := NewCatalogHandler(deps.InventoryUC)
	categories := protected.Group("/categories")
	categories.Post("/", managerUp, catalogHandler.CreateCategory)
	categories.Get("/", catalogHandler.ListCategories)
	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", managerUp, catalogHandler.CreateSupplier)
	suppliers.Get("/", catalogHandler.ListSuppliers)

	// Movimientos de stock
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/adjustments", managerUp, inventoryHandler.AdjustQuantity)
	invGroup.Get("/transactions", inventoryHandler.ListTransactions)

	// Ventas y facturas
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.ProcessSale, deps.SaleQuery)
	invoiceHandler := NewInvoiceHandler(deps.InvoicePDF)
	salesGroup.Post("/", saleHandler.Process)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/export", saleHandler.Export)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/invoice/download", invoiceHandler.Download)
	salesGroup.Get("/:id/invoice/print", invoiceHandler.Print)

	// Configuración
	settingsGroup := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settingsGroup.Get("/", settingsHandler.List)
	settingsGroup.Get("/:key", settingsHandler.Get)
	settingsGroup.Put("/:key", adminOnly, settingsHandler.Update)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)
}
