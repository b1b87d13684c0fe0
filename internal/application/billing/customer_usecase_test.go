package billing_test

import (
	"context"
	"testing"

	"github.com/karant-dev/gst-invoice-api/internal/application/billing"
	"github.com/karant-dev/gst-invoice-api/internal/application/dto"
	"github.com/karant-dev/gst-invoice-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerUseCase_Create(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := billing.NewCustomerUseCase(repo)

	resp, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:    "Sharma Traders",
		Address: "14 MG Road, Pune",
		Email:   "accounts@sharmatraders.in",
		Phone:   "+91 98200 12345",
		GSTIN:   "27AAPFU0939F1ZV",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Sharma Traders", resp.Name)
	assert.Equal(t, "27AAPFU0939F1ZV", resp.GSTIN)
	assert.Len(t, repo.customers, 1)
}

func TestCustomerUseCase_CreateRequiresName(t *testing.T) {
	uc := billing.NewCustomerUseCase(newFakeCustomerRepo())

	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{GSTIN: "27AAPFU0939F1ZV"})

	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Messages, "Customer name is required")
}

func TestCustomerUseCase_List(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := billing.NewCustomerUseCase(repo)

	for _, name := range []string{"Sharma Traders", "Verma Electricals"} {
		_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{Name: name})
		require.NoError(t, err)
	}

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestItemUseCase_Create(t *testing.T) {
	repo := newFakeItemRepo()
	uc := billing.NewItemUseCase(repo)

	resp, err := uc.Create(context.Background(), dto.CreateItemRequest{
		Name:    "Copper Wire",
		HSNCode: "7408",
		Rate:    decimal.RequireFromString("118.50"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "7408", resp.HSNCode)
	assert.True(t, resp.Rate.Equal(decimal.RequireFromString("118.50")))
}

func TestItemUseCase_CreateRequiredFields(t *testing.T) {
	uc := billing.NewItemUseCase(newFakeItemRepo())

	_, err := uc.Create(context.Background(), dto.CreateItemRequest{})

	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Messages, "Item name is required")
	assert.Contains(t, ve.Messages, "HSN code is required")
	assert.Contains(t, ve.Messages, "Rate must be greater than zero")
}
