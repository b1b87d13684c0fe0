package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/karant-dev/gst-invoice-api/internal/application/dto"
	"github.com/karant-dev/gst-invoice-api/internal/domain"
	"github.com/karant-dev/gst-invoice-api/internal/domain/entity"
	"github.com/karant-dev/gst-invoice-api/internal/domain/repository"
)

// CustomerUseCase single-table create/list for customers.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create persists a new customer.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("Customer name is required")
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Email:     in.Email,
		Phone:     in.Phone,
		GSTIN:     in.GSTIN,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return CustomerToResponse(customer), nil
}

// List returns all customers.
func (uc *CustomerUseCase) List(ctx context.Context) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, CustomerToResponse(c))
	}
	return out, nil
}

// CustomerToResponse maps the entity to its response shape.
func CustomerToResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Email:     c.Email,
		Phone:     c.Phone,
		GSTIN:     c.GSTIN,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}
