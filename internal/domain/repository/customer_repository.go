package repository

import (
	"context"

	"github.com/karant-dev/gst-invoice-api/internal/domain/entity"
)

// CustomerRepository is the persistence port for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
}
