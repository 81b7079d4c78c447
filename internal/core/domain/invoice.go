package domain

import (
	"errors"
	"time"
)

// InvoiceStatus represents the billing state of an invoice.
type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "draft"
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
	StatusOverdue InvoiceStatus = "overdue"
)

// validStatuses is the closed set of invoice statuses.
var validStatuses = map[InvoiceStatus]bool{
	StatusDraft:   true,
	StatusPending: true,
	StatusPaid:    true,
	StatusOverdue: true,
}

var ErrInvoiceNotFound = errors.New("invoice not found")
var ErrClientNotFound = errors.New("client not found")

// IsValid reports whether s is one of the known invoice statuses.
func (s InvoiceStatus) IsValid() bool {
	return validStatuses[s]
}

// UnknownClientName is the read-time fallback for a dangling client
// reference. Invoices keep their clientID after the client is deleted;
// the reference is resolved to this label instead of failing.
const UnknownClientName = "Unknown Client"

// InvoiceItem is a single billable line on an invoice. IDs are unique
// within the owning invoice only.
type InvoiceItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	// Amount is derived: always Quantity * UnitPrice. Caller-supplied
	// values are overwritten by Recalculate.
	Amount float64 `json:"amount"`
}

// Invoice is the core aggregate root. It exclusively owns its item list;
// the ClientID is a weak reference that is never validated to exist.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	ClientID      string        `json:"client_id"`
	IssueDate     string        `json:"issue_date"` // YYYY-MM-DD
	DueDate       string        `json:"due_date"`   // YYYY-MM-DD
	Items         []InvoiceItem `json:"items"`
	Subtotal      float64       `json:"subtotal"` // derived: sum of item amounts
	Tax           float64       `json:"tax"`      // absolute amount, not a rate
	Total         float64       `json:"total"`    // derived: Subtotal + Tax
	Status        InvoiceStatus `json:"status"`
	Notes         string        `json:"notes"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Recalculate reconciles every derived field with its inputs, leaves first:
// each item amount is forced back to quantity * unit price (self-healing
// against stale or hand-built records), the subtotal is re-summed, and the
// total is rebuilt from subtotal + tax. Idempotent; must be called inside
// every mutation that can touch items or tax.
func (inv *Invoice) Recalculate() {
	var subtotal float64
	for i := range inv.Items {
		inv.Items[i].Amount = inv.Items[i].Quantity * inv.Items[i].UnitPrice
		subtotal += inv.Items[i].Amount
	}
	inv.Subtotal = subtotal
	inv.Total = subtotal + inv.Tax
}

// Clone returns a deep copy, so stored invoices never leak a shared item
// slice to callers.
func (inv Invoice) Clone() Invoice {
	out := inv
	if inv.Items != nil {
		out.Items = make([]InvoiceItem, len(inv.Items))
		copy(out.Items, inv.Items)
	}
	return out
}
