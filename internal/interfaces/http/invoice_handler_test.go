package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karant-dev/gst-invoice-api/internal/application/billing"
	"github.com/karant-dev/gst-invoice-api/internal/application/dto"
	"github.com/karant-dev/gst-invoice-api/internal/domain/entity"
	"github.com/karant-dev/gst-invoice-api/internal/domain/repository"
	apphttp "github.com/karant-dev/gst-invoice-api/internal/interfaces/http"
)

// ── In-memory storage fakes, enough to drive the handlers through real usecases ──

type memStore struct {
	customers map[string]*entity.Customer
	items     map[string]*entity.Item
	invoices  map[string]*entity.Invoice
	lines     []*entity.InvoiceItem
}

func newMemStore() *memStore {
	return &memStore{
		customers: map[string]*entity.Customer{},
		items:     map[string]*entity.Item{},
		invoices:  map[string]*entity.Invoice{},
	}
}

type memCustomerRepo struct{ s *memStore }

func (r memCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.s.customers[c.ID] = c
	return nil
}

func (r memCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return r.s.customers[id], nil
}

func (r memCustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	return slices.Collect(maps.Values(r.s.customers)), nil
}

type memItemRepo struct{ s *memStore }

func (r memItemRepo) Create(_ context.Context, it *entity.Item) error {
	r.s.items[it.ID] = it
	return nil
}

func (r memItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	return r.s.items[id], nil
}

func (r memItemRepo) List(_ context.Context) ([]*entity.Item, error) {
	return slices.Collect(maps.Values(r.s.items)), nil
}

type memInvoiceRepo struct{ s *memStore }

func (r memInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	if _, ok := r.s.customers[inv.CustomerID]; !ok {
		return fmt.Errorf("insert invoice: violates foreign key constraint on customer_id")
	}
	r.s.invoices[inv.ID] = inv
	return nil
}

func (r memInvoiceRepo) CreateItems(_ context.Context, items []*entity.InvoiceItem) error {
	for _, it := range items {
		if _, ok := r.s.items[it.ItemID]; !ok {
			return fmt.Errorf("insert invoice items: violates foreign key constraint on item_id")
		}
	}
	r.s.lines = append(r.s.lines, items...)
	return nil
}

func (r memInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	return r.s.invoices[id], nil
}

func (r memInvoiceRepo) GetItemsByInvoiceID(_ context.Context, invoiceID string) ([]*entity.InvoiceItem, error) {
	var out []*entity.InvoiceItem
	for _, it := range r.s.lines {
		if it.InvoiceID == invoiceID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r memInvoiceRepo) List(_ context.Context) ([]*entity.Invoice, error) {
	out := slices.Collect(maps.Values(r.s.invoices))
	slices.SortFunc(out, func(a, b *entity.Invoice) int {
		return b.Date.Compare(a.Date)
	})
	return out, nil
}

func (r memInvoiceRepo) ListItems(_ context.Context) ([]*entity.InvoiceItem, error) {
	return r.s.lines, nil
}

type memTxRunner struct{ s *memStore }

func (tr memTxRunner) Run(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error {
	invSnap := maps.Clone(tr.s.invoices)
	lineSnap := slices.Clone(tr.s.lines)
	if err := fn(memInvoiceRepo{tr.s}); err != nil {
		tr.s.invoices = invSnap
		tr.s.lines = lineSnap
		return err
	}
	return nil
}

// buildTestApp wires a Fiber app with real usecases over the in-memory store,
// seeded with one customer and two catalog items.
func buildTestApp(t *testing.T) (*fiber.App, *memStore, string, string, string) {
	t.Helper()
	s := newMemStore()

	customerID := uuid.New().String()
	itemA := uuid.New().String()
	itemB := uuid.New().String()
	now := time.Now()
	s.customers[customerID] = &entity.Customer{ID: customerID, Name: "Sharma Traders", GSTIN: "27AAPFU0939F1ZV", CreatedAt: now, UpdatedAt: now}
	s.items[itemA] = &entity.Item{ID: itemA, Name: "Copper Wire", HSNCode: "7408", Rate: dec("100"), CreatedAt: now, UpdatedAt: now}
	s.items[itemB] = &entity.Item{ID: itemB, Name: "PVC Conduit", HSNCode: "3917", Rate: dec("50"), CreatedAt: now, UpdatedAt: now}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC:    billing.NewCustomerUseCase(memCustomerRepo{s}),
		ItemUC:        billing.NewItemUseCase(memItemRepo{s}),
		CreateInvoice: billing.NewCreateInvoiceUseCase(memTxRunner{s}, memCustomerRepo{s}, memItemRepo{s}, memInvoiceRepo{s}),
	})
	return app, s, customerID, itemA, itemB
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, app *fiber.App, path string, out any) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
	require.NoError(t, err)
	if out != nil {
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, out))
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out), "body: %s", body)
}

func invoicePayload(customerID, itemA, itemB string) map[string]any {
	return map[string]any{
		"invoice_number":  "INV-2024-001",
		"date":            "2024-03-15",
		"customer_id":     customerID,
		"discount":        "10",
		"cgst_percentage": "9",
		"sgst_percentage": "9",
		"items": []map[string]any{
			{"item_id": itemA, "rate": "100", "quantity": "2"},
			{"item_id": itemB, "rate": "50", "quantity": "1"},
		},
	}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestPostInvoice_CreatedWithComputedAmounts(t *testing.T) {
	app, s, customerID, itemA, itemB := buildTestApp(t)

	resp := postJSON(t, app, "/api/invoices/", invoicePayload(customerID, itemA, itemB))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.CreateInvoiceResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "Invoice created successfully", out.Message)
	require.NotNil(t, out.Invoice)
	assert.True(t, out.Invoice.Subtotal.Equal(dec("250.00")))
	assert.True(t, out.Invoice.Discount.Equal(dec("25.00")))
	assert.True(t, out.Invoice.CgstAmount.Equal(dec("20.25")))
	assert.True(t, out.Invoice.SgstAmount.Equal(dec("20.25")))
	assert.True(t, out.Invoice.Total.Equal(dec("265.50")))
	require.NotNil(t, out.Invoice.Customer)
	assert.Equal(t, "Sharma Traders", out.Invoice.Customer.Name)
	require.Len(t, out.Invoice.Items, 2)
	require.NotNil(t, out.Invoice.Items[0].Item)

	assert.Len(t, s.invoices, 1)
	assert.Len(t, s.lines, 2)
}

func TestPostInvoice_EmptyItemsIs400(t *testing.T) {
	app, s, customerID, _, _ := buildTestApp(t)

	payload := invoicePayload(customerID, "", "")
	payload["items"] = []map[string]any{}

	resp := postJSON(t, app, "/api/invoices/", payload)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	assert.Contains(t, out.Error, "At least one item is required")
	assert.Empty(t, s.invoices)
	assert.Empty(t, s.lines)
}

func TestPostInvoice_UnknownCustomerIs500(t *testing.T) {
	app, s, _, itemA, itemB := buildTestApp(t)

	resp := postJSON(t, app, "/api/invoices/", invoicePayload(uuid.New().String(), itemA, itemB))
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "Failed to create invoice", out.Error)
	assert.NotEmpty(t, out.Details)
	assert.Empty(t, s.invoices, "transaction must leave no partial invoice")
}

func TestGetInvoices_MostRecentDateFirst(t *testing.T) {
	app, _, customerID, itemA, itemB := buildTestApp(t)

	first := invoicePayload(customerID, itemA, itemB)
	first["invoice_number"] = "INV-2024-001"
	first["date"] = "2024-03-01"
	second := invoicePayload(customerID, itemA, itemB)
	second["invoice_number"] = "INV-2024-002"
	second["date"] = "2024-03-20"

	require.Equal(t, fiber.StatusCreated, postJSON(t, app, "/api/invoices/", first).StatusCode)
	require.Equal(t, fiber.StatusCreated, postJSON(t, app, "/api/invoices/", second).StatusCode)

	var list []dto.InvoiceResponse
	resp := getJSON(t, app, "/api/invoices/", &list)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, list, 2)
	assert.Equal(t, "INV-2024-002", list[0].InvoiceNumber)
	assert.Equal(t, "INV-2024-001", list[1].InvoiceNumber)
	require.NotNil(t, list[0].Customer)
	require.Len(t, list[0].Items, 2)
	require.NotNil(t, list[0].Items[0].Item)
	assert.Equal(t, "7408", itemHSN(list[0].Items, itemA))
}

func itemHSN(items []dto.InvoiceItemResponse, itemID string) string {
	for _, it := range items {
		if it.ItemID == itemID && it.Item != nil {
			return it.Item.HSNCode
		}
	}
	return ""
}

func TestPostCustomer_RoundTrip(t *testing.T) {
	app, _, _, _, _ := buildTestApp(t)

	resp := postJSON(t, app, "/api/customers/", map[string]any{
		"name":  "Verma Electricals",
		"gstin": "27AABCV1234A1Z5",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var created dto.CustomerResponse
	decodeBody(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Verma Electricals", created.Name)

	var list []dto.CustomerResponse
	getJSON(t, app, "/api/customers/", &list)
	assert.Len(t, list, 2) // seeded customer + created one
}

func TestPostCustomer_MissingNameIs500(t *testing.T) {
	app, _, _, _, _ := buildTestApp(t)

	resp := postJSON(t, app, "/api/customers/", map[string]any{"gstin": "27AABCV1234A1Z5"})
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var out dto.MessageResponse
	decodeBody(t, resp, &out)
	assert.Contains(t, out.Message, "Customer name is required")
}

func TestPostItem_RoundTrip(t *testing.T) {
	app, _, _, _, _ := buildTestApp(t)

	resp := postJSON(t, app, "/api/items/", map[string]any{
		"name":     "MCB Switch",
		"hsn_code": "8536",
		"rate":     "240.00",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var created dto.ItemResponse
	decodeBody(t, resp, &created)
	assert.Equal(t, "8536", created.HSNCode)
	assert.True(t, created.Rate.Equal(dec("240.00")))

	var list []dto.ItemResponse
	getJSON(t, app, "/api/items/", &list)
	assert.Len(t, list, 3) // two seeded + created
}

func TestPostItem_MissingFieldsIs500(t *testing.T) {
	app, _, _, _, _ := buildTestApp(t)

	resp := postJSON(t, app, "/api/items/", map[string]any{"description": "loose"})
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var out dto.MessageResponse
	decodeBody(t, resp, &out)
	assert.Contains(t, out.Message, "Item name is required")
	assert.Contains(t, out.Message, "HSN code is required")
}
