package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturacion-api/internal/application/auth"
	"github.com/tu-usuario/facturacion-api/internal/application/billing"
	"github.com/tu-usuario/facturacion-api/internal/application/stock"
	"github.com/tu-usuario/facturacion-api/internal/application/usecase"
	"github.com/tu-usuario/facturacion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	ClientUC      *usecase.ClientUseCase
	UnitUC        *usecase.UnitUseCase
	Ledger        *stock.LedgerUseCase
	StockQueries  *stock.QueryUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	InvoiceQuery  *billing.InvoiceQueryUseCase
	InvoicePDF    *billing.PDFUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Las lecturas requieren autenticación;
// las mutaciones de stock y facturación requieren rol admin.
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

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC, deps.InvoiceQuery)
	clients.Post("/", adminOnly, clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Get("/:id/invoices", clientHandler.ListInvoices)
	clients.Put("/:id", adminOnly, clientHandler.Update)
	clients.Delete("/:id", adminOnly, clientHandler.Delete)

	// Unidades de medida (protegido)
	units := protected.Group("/unites")
	unitHandler := NewUnitHandler(deps.UnitUC)
	units.Post("/", adminOnly, unitHandler.Create)
	units.Get("/", unitHandler.List)
	units.Get("/:id", unitHandler.GetByID)
	units.Put("/:id", adminOnly, unitHandler.Update)
	units.Delete("/:id", adminOnly, unitHandler.Delete)

	// Stock: movimientos y alertas (protegido)
	stocks := protected.Group("/stocks")
	stockHandler := NewStockHandler(deps.Ledger, deps.StockQueries)
	stocks.Post("/movements", adminOnly, stockHandler.CreateMovement)
	stocks.Get("/movements", stockHandler.ListMovements)
	stocks.Get("/movements/product/:productId", stockHandler.ListProductMovements)
	stocks.Get("/movements/:id", stockHandler.GetMovement)
	stocks.Get("/alerts", stockHandler.ListAlerts)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.InvoiceQuery, deps.InvoicePDF)
	invoices.Post("/", adminOnly, invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Delete("/:id", adminOnly, invoiceHandler.Delete)
}
