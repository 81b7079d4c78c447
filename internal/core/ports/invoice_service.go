package ports

import (
	"context"
	"time"
)

// ItemInput holds one invoice line as submitted by the caller. Amount is
// intentionally absent: it is always derived from quantity and unit price.
type ItemInput struct {
	ID          string // empty = new item, id assigned by the store
	Description string
	Quantity    float64
	UnitPrice   float64
}

// CreateInvoiceInput carries all data needed to create an invoice.
type CreateInvoiceInput struct {
	InvoiceNumber string // empty = generated
	ClientID      string
	IssueDate     string // YYYY-MM-DD, empty = today
	DueDate       string // YYYY-MM-DD, empty = issue date + 14 days
	Items         []ItemInput
	Tax           float64
	Status        string
	Notes         string
}

// UpdateInvoiceInput is the service-level partial update. Nil fields are
// left untouched; a non-nil Items replaces the whole line list.
type UpdateInvoiceInput struct {
	InvoiceNumber *string
	ClientID      *string
	IssueDate     *string
	DueDate       *string
	Items         *[]ItemInput
	Tax           *float64
	Status        *string
	Notes         *string
}

// ItemDetail is one invoice line in a detail view.
type ItemDetail struct {
	ID          string
	Description string
	Quantity    float64
	UnitPrice   float64
	Amount      float64
}

// InvoiceDetail is the full invoice view with the client reference resolved
// to a display name ("Unknown Client" when dangling).
type InvoiceDetail struct {
	ID            string
	InvoiceNumber string
	ClientID      string
	ClientName    string
	IssueDate     string
	DueDate       string
	Items         []ItemDetail
	Subtotal      float64
	Tax           float64
	Total         float64
	Status        string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InvoiceSummary is the lightweight view used in list and dashboard
// responses (no line items or notes).
type InvoiceSummary struct {
	ID            string
	InvoiceNumber string
	ClientID      string
	ClientName    string
	IssueDate     string
	DueDate       string
	Total         float64
	Status        string
	CreatedAt     time.Time
}

// ListInvoicesFilter carries the list-page query parameters.
type ListInvoicesFilter struct {
	Status string // optional: exact status match
	Search string // optional: case-insensitive match on invoice number or resolved client name
}

// ListInvoicesResult is returned by ListInvoices. Total counts the whole
// collection before filtering, so callers can distinguish "no invoices yet"
// from "no matching invoices".
type ListInvoicesResult struct {
	Items []InvoiceSummary
	Total int
}

// InvoiceService defines use-case operations for invoices.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*InvoiceDetail, error)
	GetInvoice(ctx context.Context, id string) (*InvoiceDetail, error)
	ListInvoices(ctx context.Context, filter ListInvoicesFilter) (*ListInvoicesResult, error)
	UpdateInvoice(ctx context.Context, id string, input UpdateInvoiceInput) (*InvoiceDetail, error)
	DeleteInvoice(ctx context.Context, id string) error
}
