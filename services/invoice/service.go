package invoice

import (
	"context"
	"fmt"
	"time"

	invoiceRepo "github.com/pr4shxnt/ecobin-backend/database/repository/invoice"
	"github.com/pr4shxnt/ecobin-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateInvoiceRequest carries the input for a new invoice. IssueDate defaults
// to now and DueDate to thirty days after issue when omitted.
type CreateInvoiceRequest struct {
	Customer  string               `json:"customer"`
	Items     []models.InvoiceItem `json:"items"`
	IssueDate *time.Time           `json:"issueDate,omitempty"`
	DueDate   *time.Time           `json:"dueDate,omitempty"`
	Status    string               `json:"status,omitempty"`
	Notes     string               `json:"notes,omitempty"`
}

// UpdateInvoiceRequest carries the mutable invoice fields; nil fields are
// left untouched.
type UpdateInvoiceRequest struct {
	Items   *[]models.InvoiceItem `json:"items,omitempty"`
	DueDate *time.Time            `json:"dueDate,omitempty"`
	Notes   *string               `json:"notes,omitempty"`
	Status  *string               `json:"status,omitempty"`
}

// Service issues and manages billing documents.
type Service struct {
	Repo   invoiceRepo.InvoiceRepository
	Logger *zap.Logger
}

// Create issues a new invoice. The invoice number is derived from the current
// count, formatted INV-{year}-{NNNN}, and line totals are computed from
// quantity and unit price.
func (s *Service) Create(ctx context.Context, req CreateInvoiceRequest) (*models.Invoice, error) {
	if req.Customer == "" {
		return nil, fmt.Errorf("customer is required")
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("at least one invoice item is required")
	}

	status := req.Status
	if status == "" {
		status = models.InvoiceStatusDraft
	}
	if !models.IsValidInvoiceStatus(status) {
		return nil, fmt.Errorf("invalid invoice status: %s", status)
	}

	count, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	issueDate := now
	if req.IssueDate != nil {
		issueDate = *req.IssueDate
	}
	dueDate := issueDate.AddDate(0, 0, 30)
	if req.DueDate != nil {
		dueDate = *req.DueDate
	}

	items, total := computeTotals(req.Items)

	inv := &models.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: fmt.Sprintf("INV-%d-%04d", issueDate.Year(), count+1),
		Customer:      req.Customer,
		Items:         items,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		Status:        status,
		TotalAmount:   total,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// List returns all invoices.
func (s *Service) List(ctx context.Context) ([]models.Invoice, error) {
	return s.Repo.List(ctx)
}

// Get returns the invoice with the given id.
func (s *Service) Get(ctx context.Context, id string) (*models.Invoice, error) {
	return s.Repo.GetByID(ctx, id)
}

// GetByCustomer returns the invoice issued to the given customer.
func (s *Service) GetByCustomer(ctx context.Context, customerID string) (*models.Invoice, error) {
	return s.Repo.GetByCustomer(ctx, customerID)
}

// Update applies a partial update. When items change, line totals and the
// invoice total are recomputed.
func (s *Service) Update(ctx context.Context, id string, req UpdateInvoiceRequest) (*models.Invoice, error) {
	if req.Status != nil && !models.IsValidInvoiceStatus(*req.Status) {
		return nil, fmt.Errorf("invalid invoice status: %s", *req.Status)
	}

	update := invoiceRepo.InvoiceUpdate{
		DueDate: req.DueDate,
		Notes:   req.Notes,
		Status:  req.Status,
	}
	if req.Items != nil {
		items, total := computeTotals(*req.Items)
		update.Items = &items
		update.TotalAmount = &total
	}

	return s.Repo.Update(ctx, id, update)
}

// Delete removes the invoice with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func computeTotals(items []models.InvoiceItem) ([]models.InvoiceItem, float64) {
	out := make([]models.InvoiceItem, len(items))
	var total float64
	for i, item := range items {
		item.Total = item.Quantity * item.UnitPrice
		total += item.Total
		out[i] = item
	}
	return out, total
}
