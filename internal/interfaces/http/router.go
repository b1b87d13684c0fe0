package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/karant-dev/gst-invoice-api/internal/application/billing"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CustomerUC    *billing.CustomerUseCase
	ItemUC        *billing.ItemUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
}
