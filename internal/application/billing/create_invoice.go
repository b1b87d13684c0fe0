package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/karant-dev/gst-invoice-api/internal/application/dto"
	"github.com/karant-dev/gst-invoice-api/internal/domain"
	"github.com/karant-dev/gst-invoice-api/internal/domain/billing"
	"github.com/karant-dev/gst-invoice-api/internal/domain/entity"
	"github.com/karant-dev/gst-invoice-api/internal/domain/repository"
)

// dateLayout for invoice and PO dates (calendar date only).
const dateLayout = "2006-01-02"

// CreateInvoiceUseCase creates an invoice header and all of its lines in one
// transaction, and serves the hydrated read paths.
type CreateInvoiceUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
	itemRepo     repository.ItemRepository
	invoiceRepo  repository.InvoiceRepository // pool-bound, read paths only
}

// NewCreateInvoiceUseCase builds the use case.
func NewCreateInvoiceUseCase(
	txRunner TxRunner,
	customerRepo repository.CustomerRepository,
	itemRepo repository.ItemRepository,
	invoiceRepo repository.InvoiceRepository,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		itemRepo:     itemRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// Create validates the request, recomputes every derived amount server-side,
// writes header plus lines atomically and returns the hydrated invoice.
// Client-submitted subtotal, total and line amounts are never trusted.
func (uc *CreateInvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	var msgs []string
	if len(in.Items) == 0 {
		msgs = append(msgs, "At least one item is required")
	}
	if in.InvoiceNumber == "" {
		msgs = append(msgs, "Invoice number is required")
	}
	var date time.Time
	if in.Date == "" {
		msgs = append(msgs, "Invoice date is required")
	} else {
		var err error
		if date, err = time.Parse(dateLayout, in.Date); err != nil {
			msgs = append(msgs, "Invoice date must be a calendar date (YYYY-MM-DD)")
		}
	}
	if in.CustomerID == "" {
		msgs = append(msgs, "Customer is required")
	}
	var poDate *time.Time
	if in.PODate != "" {
		d, err := time.Parse(dateLayout, in.PODate)
		if err != nil {
			msgs = append(msgs, "PO date must be a calendar date (YYYY-MM-DD)")
		} else {
			poDate = &d
		}
	}

	// Normalize lines: the amount is always round(rate*quantity, 2), done
	// here explicitly rather than in a persistence hook.
	invoiceID := uuid.New().String()
	items := make([]*entity.InvoiceItem, 0, len(in.Items))
	lines := make([]billing.Line, 0, len(in.Items))
	for _, li := range in.Items {
		item := &entity.InvoiceItem{
			ID:        uuid.New().String(),
			InvoiceID: invoiceID,
			ItemID:    li.ItemID,
			Quantity:  li.Quantity,
			Rate:      li.Rate,
			Amount:    billing.LineAmount(li.Rate, li.Quantity),
		}
		msgs = append(msgs, item.Validate()...)
		items = append(items, item)
		lines = append(lines, billing.Line{Rate: li.Rate, Quantity: li.Quantity})
	}
	if len(msgs) > 0 {
		return nil, domain.NewValidationError(msgs...)
	}

	amounts := billing.Calculate(lines, in.Discount, in.CgstPercentage, in.SgstPercentage)

	now := time.Now()
	inv := &entity.Invoice{
		ID:             invoiceID,
		InvoiceNumber:  in.InvoiceNumber,
		Date:           date,
		PONumber:       in.PONumber,
		PODate:         poDate,
		Transport:      in.Transport,
		VehicleNo:      in.VehicleNo,
		CustomerID:     in.CustomerID,
		Subtotal:       amounts.Subtotal,
		Discount:       amounts.DiscountAmount,
		CgstPercentage: in.CgstPercentage,
		SgstPercentage: in.SgstPercentage,
		CgstAmount:     amounts.CgstAmount,
		SgstAmount:     amounts.SgstAmount,
		Total:          amounts.Total,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// Header and all lines in one transaction; any failure (FK violation on
	// customer or item, constraint abort) rolls the whole invoice back.
	err := uc.txRunner.Run(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.Create(ctx, inv); err != nil {
			return err
		}
		return invoiceRepo.CreateItems(ctx, items)
	})
	if err != nil {
		return nil, err
	}

	return uc.Get(ctx, inv.ID)
}

// Get returns one invoice hydrated with its customer and its lines, each line
// carrying its catalog item.
func (uc *CreateInvoiceUseCase) Get(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		// Post-commit read of a just-created invoice; absence means a broken
		// storage invariant, not a user-facing not-found.
		return nil, fmt.Errorf("invoice %s missing after write: %w", id, domain.ErrNotFound)
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(ctx, id)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(ctx, inv.CustomerID)
	if err != nil {
		return nil, err
	}

	catalog := make(map[string]*entity.Item)
	for _, li := range items {
		if _, ok := catalog[li.ItemID]; ok {
			continue
		}
		it, err := uc.itemRepo.GetByID(ctx, li.ItemID)
		if err != nil {
			return nil, err
		}
		catalog[li.ItemID] = it
	}
	return invoiceToResponse(inv, customer, items, catalog), nil
}

// List returns every invoice ordered by date descending, hydrated like Get.
// Customers and catalog items are fetched once and stitched in memory.
func (uc *CreateInvoiceUseCase) List(ctx context.Context) ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	allItems, err := uc.invoiceRepo.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	catalogList, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	customerByID := make(map[string]*entity.Customer, len(customers))
	for _, c := range customers {
		customerByID[c.ID] = c
	}
	catalog := make(map[string]*entity.Item, len(catalogList))
	for _, it := range catalogList {
		catalog[it.ID] = it
	}
	itemsByInvoice := make(map[string][]*entity.InvoiceItem)
	for _, li := range allItems {
		itemsByInvoice[li.InvoiceID] = append(itemsByInvoice[li.InvoiceID], li)
	}

	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, invoiceToResponse(inv, customerByID[inv.CustomerID], itemsByInvoice[inv.ID], catalog))
	}
	return out, nil
}

func invoiceToResponse(
	inv *entity.Invoice,
	customer *entity.Customer,
	items []*entity.InvoiceItem,
	catalog map[string]*entity.Item,
) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		Date:           inv.Date.Format(dateLayout),
		PONumber:       inv.PONumber,
		Transport:      inv.Transport,
		VehicleNo:      inv.VehicleNo,
		CustomerID:     inv.CustomerID,
		Subtotal:       inv.Subtotal,
		Discount:       inv.Discount,
		CgstPercentage: inv.CgstPercentage,
		SgstPercentage: inv.SgstPercentage,
		CgstAmount:     inv.CgstAmount,
		SgstAmount:     inv.SgstAmount,
		Total:          inv.Total,
		Items:          make([]dto.InvoiceItemResponse, 0, len(items)),
		CreatedAt:      inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      inv.UpdatedAt.Format(time.RFC3339),
	}
	if inv.PODate != nil {
		resp.PODate = inv.PODate.Format(dateLayout)
	}
	if customer != nil {
		resp.Customer = CustomerToResponse(customer)
	}
	for _, li := range items {
		itemResp := dto.InvoiceItemResponse{
			ID:        li.ID,
			InvoiceID: li.InvoiceID,
			ItemID:    li.ItemID,
			Quantity:  li.Quantity,
			Rate:      li.Rate,
			Amount:    li.Amount,
		}
		if it := catalog[li.ItemID]; it != nil {
			itemResp.Item = ItemToResponse(it)
		}
		resp.Items = append(resp.Items, itemResp)
	}
	return resp
}
