package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Validation failures surface here as user-facing messages; the
// store layer itself never signals errors.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// itemRequest is one invoice line as submitted. Any supplied amount is
// ignored: amounts are derived from quantity and unit price by the store.
type itemRequest struct {
	ID          string  `json:"id"` // kept when editing an existing line
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// createInvoiceRequest mirrors the invoice form. The required-client and
// at-least-one-item rules lived in the form's submit handler; here they are
// validator tags, enforced before any store call.
type createInvoiceRequest struct {
	InvoiceNumber string        `json:"invoice_number"` // empty = generated
	ClientID      string        `json:"client_id"  validate:"required"`
	IssueDate     string        `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
	DueDate       string        `json:"due_date"   validate:"omitempty,datetime=2006-01-02"`
	Items         []itemRequest `json:"items"      validate:"required,min=1"`
	Tax           float64       `json:"tax"`
	Status        string        `json:"status"     validate:"omitempty,oneof=draft pending paid overdue"`
	Notes         string        `json:"notes"`
}

// updateInvoiceRequest is a partial update: absent fields stay untouched,
// a present items array replaces the whole line list.
type updateInvoiceRequest struct {
	InvoiceNumber *string        `json:"invoice_number"`
	ClientID      *string        `json:"client_id"`
	IssueDate     *string        `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
	DueDate       *string        `json:"due_date"   validate:"omitempty,datetime=2006-01-02"`
	Items         *[]itemRequest `json:"items"      validate:"omitempty,min=1"`
	Tax           *float64       `json:"tax"`
	Status        *string        `json:"status"     validate:"omitempty,oneof=draft pending paid overdue"`
	Notes         *string        `json:"notes"`
}

// --- Response types ---
// Response-only types owned by the transport layer, intentionally separate
// from ports/domain types so the JSON contract is not coupled to internal
// service changes.

// invoiceLinks carries the navigation target for a mutated or fetched
// invoice, so clients can follow the result without building URLs.
type invoiceLinks struct {
	Self string `json:"self"`
}

type itemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

type invoiceResponse struct {
	ID            string         `json:"id"`
	InvoiceNumber string         `json:"invoice_number"`
	ClientID      string         `json:"client_id"`
	ClientName    string         `json:"client_name"`
	IssueDate     string         `json:"issue_date"`
	DueDate       string         `json:"due_date"`
	Items         []itemResponse `json:"items"`
	Subtotal      float64        `json:"subtotal"`
	Tax           float64        `json:"tax"`
	Total         float64        `json:"total"`
	// TotalDisplay is the render-time two-decimal form; Total keeps full
	// float precision.
	TotalDisplay string       `json:"total_display"`
	Status       string       `json:"status"`
	Notes        string       `json:"notes"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Links        invoiceLinks `json:"_links"`
}

// invoiceSummaryResponse is the lightweight item used in list and dashboard
// responses. It intentionally omits line items and notes.
type invoiceSummaryResponse struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	ClientID      string    `json:"client_id"`
	ClientName    string    `json:"client_name"`
	IssueDate     string    `json:"issue_date"`
	DueDate       string    `json:"due_date"`
	Total         float64   `json:"total"`
	TotalDisplay  string    `json:"total_display"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type listInvoicesResponse struct {
	Data []invoiceSummaryResponse `json:"data"`
	// Total counts the whole collection before filtering, so clients can
	// tell "no invoices yet" apart from "no matching invoices".
	Total int `json:"total"`
}
