package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/karant-dev/gst-invoice-api/internal/application/billing"
	"github.com/karant-dev/gst-invoice-api/internal/application/dto"
	"github.com/karant-dev/gst-invoice-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// InvoiceHandler handles the invoice HTTP endpoints.
type InvoiceHandler struct {
	uc *billing.CreateInvoiceUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *billing.CreateInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Create POST /api/invoices
// Validation failures short-circuit with 400 and the message list; anything
// the storage layer rejects (FK violation, constraint abort, pool timeout)
// is a 500 with the underlying message in details. The transaction guarantees
// no partial invoice is ever visible.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	invoice, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if ve, ok := domain.AsValidation(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error:   ve.Error(),
				Details: ve.Messages,
			})
		}
		log.Error().Err(err).Msg("invoice creation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   "Failed to create invoice",
			Details: []string{err.Error()},
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateInvoiceResponse{
		Message: "Invoice created successfully",
		Invoice: invoice,
	})
}

// List GET /api/invoices
// Full table, hydrated, most recent invoice date first.
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	invoices, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   "Failed to fetch invoices",
			Details: err.Error(),
		})
	}
	if invoices == nil {
		invoices = []*dto.InvoiceResponse{}
	}
	return c.JSON(invoices)
}
