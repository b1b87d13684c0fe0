package repository

import (
	"context"

	"github.com/karant-dev/gst-invoice-api/internal/domain/entity"
)

// ItemRepository is the persistence port for catalog items.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	List(ctx context.Context) ([]*entity.Item, error)
}
