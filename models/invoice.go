package models

import "time"

// Invoice statuses.
const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

var invoiceStatuses = map[string]bool{
	InvoiceStatusDraft:   true,
	InvoiceStatusSent:    true,
	InvoiceStatusPaid:    true,
	InvoiceStatusOverdue: true,
}

// InvoiceItem is one billed line on an invoice.
type InvoiceItem struct {
	Description string  `bson:"description" json:"description"`
	Quantity    float64 `bson:"quantity" json:"quantity"`
	UnitPrice   float64 `bson:"unitPrice" json:"unitPrice"`
	Total       float64 `bson:"total" json:"total"`
}

// Invoice is a billing document issued to a tenant or landlord.
type Invoice struct {
	ID            string        `bson:"id" json:"id"`
	InvoiceNumber string        `bson:"invoiceNumber" json:"invoiceNumber"`
	Customer      string        `bson:"customer" json:"customer"`
	Items         []InvoiceItem `bson:"items" json:"items"`
	IssueDate     time.Time     `bson:"issueDate" json:"issueDate"`
	DueDate       time.Time     `bson:"dueDate" json:"dueDate"`
	Status        string        `bson:"status" json:"status"`
	TotalAmount   float64       `bson:"totalAmount" json:"totalAmount"`
	Notes         string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// IsValidInvoiceStatus reports whether status is a known invoice state.
func IsValidInvoiceStatus(status string) bool {
	return invoiceStatuses[status]
}
