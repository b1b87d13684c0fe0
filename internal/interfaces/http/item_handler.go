package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/karant-dev/gst-invoice-api/internal/application/billing"
	"github.com/karant-dev/gst-invoice-api/internal/application/dto"
)

// ItemHandler handles the catalog item HTTP endpoints.
type ItemHandler struct {
	uc *billing.ItemUseCase
}

// NewItemHandler builds the handler.
func NewItemHandler(uc *billing.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create POST /api/items
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Error creating item"})
	}
	item, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: err.Error()})
	}
	return c.JSON(item)
}

// List GET /api/items
func (h *ItemHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: err.Error()})
	}
	return c.JSON(list)
}
