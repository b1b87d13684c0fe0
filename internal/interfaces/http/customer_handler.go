package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/karant-dev/gst-invoice-api/internal/application/billing"
	"github.com/karant-dev/gst-invoice-api/internal/application/dto"
)

// CustomerHandler handles the customer HTTP endpoints.
type CustomerHandler struct {
	uc *billing.CustomerUseCase
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(uc *billing.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /api/customers
// Any failure, validation included, maps to 500 {message} — the contract the
// browser form was written against.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Error creating customer"})
	}
	customer, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: err.Error()})
	}
	return c.JSON(customer)
}

// List GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: err.Error()})
	}
	return c.JSON(list)
}
