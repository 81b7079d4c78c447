package ports

import (
	"context"

	"github.com/invoicehub/invoicing-system/internal/core/domain"
)

// InvoicePatch carries a partial invoice update. Nil fields are left
// untouched; a non-nil Items pointer replaces the whole ordered item list.
// Derived fields (item amounts, subtotal, total) are never patched directly
// — the store reconciles them as part of the same mutation.
type InvoicePatch struct {
	InvoiceNumber *string
	ClientID      *string
	IssueDate     *string
	DueDate       *string
	Items         *[]domain.InvoiceItem
	Tax           *float64
	Status        *domain.InvoiceStatus
	Notes         *string
}

// InvoiceStore defines the invoice side of the state store. All operations
// are total: update and delete on a missing id are silent no-ops, never
// errors. The store performs no field validation and no uniqueness check on
// invoice numbers.
type InvoiceStore interface {
	// Invoices returns a copy of the full collection in insertion order.
	Invoices(ctx context.Context) []domain.Invoice
	InvoiceByID(ctx context.Context, id string) (domain.Invoice, bool)
	// AddInvoice assigns id and timestamps, reconciles derived totals, and
	// returns the stored invoice.
	AddInvoice(ctx context.Context, inv domain.Invoice) domain.Invoice
	// UpdateInvoice merges patch into the invoice with the given id and
	// returns the result for immediate read-back. Returns nil when the id
	// does not exist (the collection is left unchanged).
	UpdateInvoice(ctx context.Context, id string, patch InvoicePatch) *domain.Invoice
	DeleteInvoice(ctx context.Context, id string)
}
