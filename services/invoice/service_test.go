package invoice

import (
	"context"
	"fmt"
	"testing"
	"time"

	invoiceRepo "github.com/pr4shxnt/ecobin-backend/database/repository/invoice"
	"github.com/pr4shxnt/ecobin-backend/models"

	"go.uber.org/zap"
)

type stubRepo struct {
	count      int64
	created    *models.Invoice
	update     *invoiceRepo.InvoiceUpdate
	byCustomer map[string]*models.Invoice
}

func (r *stubRepo) Create(ctx context.Context, inv *models.Invoice) error {
	r.created = inv
	return nil
}

func (r *stubRepo) Count(ctx context.Context) (int64, error) { return r.count, nil }

func (r *stubRepo) List(ctx context.Context) ([]models.Invoice, error) { return nil, nil }

func (r *stubRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	return nil, invoiceRepo.ErrInvoiceNotFound
}

func (r *stubRepo) GetByCustomer(ctx context.Context, customerID string) (*models.Invoice, error) {
	if inv, ok := r.byCustomer[customerID]; ok {
		return inv, nil
	}
	return nil, invoiceRepo.ErrInvoiceNotFound
}

func (r *stubRepo) Update(ctx context.Context, id string, update invoiceRepo.InvoiceUpdate) (*models.Invoice, error) {
	r.update = &update
	return &models.Invoice{ID: id}, nil
}

func (r *stubRepo) Delete(ctx context.Context, id string) error { return nil }

func TestCreateNumbersFromCount(t *testing.T) {
	cases := []struct {
		count int64
		want  string
	}{
		{0, "0001"},
		{9, "0010"},
		{122, "0123"},
		{9999, "10000"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			repo := &stubRepo{count: tc.count}
			svc := &Service{Repo: repo, Logger: zap.NewNop()}

			inv, err := svc.Create(context.Background(), CreateInvoiceRequest{
				Customer: "tenant-1",
				Items:    []models.InvoiceItem{{Description: "Monthly collection", Quantity: 1, UnitPrice: 30}},
			})
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			want := fmt.Sprintf("INV-%d-%s", time.Now().Year(), tc.want)
			if inv.InvoiceNumber != want {
				t.Errorf("invoiceNumber = %q, want %q", inv.InvoiceNumber, want)
			}
		})
	}
}

func TestCreateComputesTotals(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{Repo: repo, Logger: zap.NewNop()}

	inv, err := svc.Create(context.Background(), CreateInvoiceRequest{
		Customer: "tenant-1",
		Items: []models.InvoiceItem{
			{Description: "Monthly collection", Quantity: 2, UnitPrice: 30},
			{Description: "Extra bin", Quantity: 3, UnitPrice: 5.5},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if inv.Items[0].Total != 60 {
		t.Errorf("item 0 total = %v, want 60", inv.Items[0].Total)
	}
	if inv.Items[1].Total != 16.5 {
		t.Errorf("item 1 total = %v, want 16.5", inv.Items[1].Total)
	}
	if inv.TotalAmount != 76.5 {
		t.Errorf("totalAmount = %v, want 76.5", inv.TotalAmount)
	}
	if inv.Status != models.InvoiceStatusDraft {
		t.Errorf("status = %q, want draft", inv.Status)
	}
	wantDue := inv.IssueDate.AddDate(0, 0, 30)
	if !inv.DueDate.Equal(wantDue) {
		t.Errorf("dueDate = %v, want %v", inv.DueDate, wantDue)
	}
}

func TestCreateRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		req  CreateInvoiceRequest
	}{
		{"missing customer", CreateInvoiceRequest{Items: []models.InvoiceItem{{Description: "x", Quantity: 1, UnitPrice: 1}}}},
		{"no items", CreateInvoiceRequest{Customer: "tenant-1"}},
		{"bad status", CreateInvoiceRequest{
			Customer: "tenant-1",
			Items:    []models.InvoiceItem{{Description: "x", Quantity: 1, UnitPrice: 1}},
			Status:   "archived",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubRepo{}
			svc := &Service{Repo: repo, Logger: zap.NewNop()}
			if _, err := svc.Create(context.Background(), tc.req); err == nil {
				t.Fatal("expected an error")
			}
			if repo.created != nil {
				t.Fatal("invalid invoice must not be persisted")
			}
		})
	}
}

func TestGetByCustomer(t *testing.T) {
	repo := &stubRepo{byCustomer: map[string]*models.Invoice{
		"tenant-1": {ID: "inv-1", Customer: "tenant-1"},
	}}
	svc := &Service{Repo: repo, Logger: zap.NewNop()}

	inv, err := svc.GetByCustomer(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("GetByCustomer: %v", err)
	}
	if inv.ID != "inv-1" {
		t.Errorf("invoice id = %q, want inv-1", inv.ID)
	}

	if _, err := svc.GetByCustomer(context.Background(), "tenant-2"); err != invoiceRepo.ErrInvoiceNotFound {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}

func TestUpdateRecomputesTotalsWhenItemsChange(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{Repo: repo, Logger: zap.NewNop()}

	items := []models.InvoiceItem{{Description: "Extra pickup", Quantity: 4, UnitPrice: 12.5}}
	if _, err := svc.Update(context.Background(), "inv-1", UpdateInvoiceRequest{Items: &items}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if repo.update == nil || repo.update.Items == nil || repo.update.TotalAmount == nil {
		t.Fatal("expected items and total to be passed to the repository")
	}
	if (*repo.update.Items)[0].Total != 50 {
		t.Errorf("item total = %v, want 50", (*repo.update.Items)[0].Total)
	}
	if *repo.update.TotalAmount != 50 {
		t.Errorf("totalAmount = %v, want 50", *repo.update.TotalAmount)
	}
}

func TestUpdateWithoutItemsLeavesTotalsAlone(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{Repo: repo, Logger: zap.NewNop()}

	notes := "paid by bank transfer"
	if _, err := svc.Update(context.Background(), "inv-1", UpdateInvoiceRequest{Notes: &notes}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if repo.update.TotalAmount != nil {
		t.Error("total must not be recomputed when items are untouched")
	}
}
