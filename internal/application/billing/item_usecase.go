package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/karant-dev/gst-invoice-api/internal/application/dto"
	"github.com/karant-dev/gst-invoice-api/internal/domain"
	"github.com/karant-dev/gst-invoice-api/internal/domain/entity"
	"github.com/karant-dev/gst-invoice-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ItemUseCase single-table create/list for catalog items.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase builds the use case.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create persists a new catalog item.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	var msgs []string
	if in.Name == "" {
		msgs = append(msgs, "Item name is required")
	}
	if in.HSNCode == "" {
		msgs = append(msgs, "HSN code is required")
	}
	if !in.Rate.GreaterThan(decimal.Zero) {
		msgs = append(msgs, "Rate must be greater than zero")
	}
	if len(msgs) > 0 {
		return nil, domain.NewValidationError(msgs...)
	}
	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		HSNCode:     in.HSNCode,
		Rate:        in.Rate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return ItemToResponse(item), nil
}

// List returns all catalog items.
func (uc *ItemUseCase) List(ctx context.Context) ([]*dto.ItemResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, ItemToResponse(it))
	}
	return out, nil
}

// ItemToResponse maps the entity to its response shape.
func ItemToResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		HSNCode:     it.HSNCode,
		Rate:        it.Rate,
		CreatedAt:   it.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   it.UpdatedAt.Format(time.RFC3339),
	}
}
