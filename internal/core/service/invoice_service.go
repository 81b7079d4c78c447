package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/invoicehub/invoicing-system/internal/core/domain"
	"github.com/invoicehub/invoicing-system/internal/core/ports"
)

const dateLayout = "2006-01-02"

// defaultDueDays is added to the issue date when no due date is supplied.
const defaultDueDays = 14

type InvoiceService struct {
	invoices ports.InvoiceStore
	clients  ports.ClientStore
	logger   zerolog.Logger
}

func NewInvoiceService(invoices ports.InvoiceStore, clients ports.ClientStore, logger zerolog.Logger) *InvoiceService {
	return &InvoiceService{invoices: invoices, clients: clients, logger: logger}
}

// CreateInvoice creates a new invoice. Blank optional fields are defaulted:
// a generated invoice number, today's issue date, a due date 14 days after
// issue, and draft status. Derived totals come from the store's
// reconciliation; any caller expectation about amounts is ignored.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input ports.CreateInvoiceInput) (*ports.InvoiceDetail, error) {
	number := input.InvoiceNumber
	if number == "" {
		number = generateInvoiceNumber()
	}
	issueDate := input.IssueDate
	if issueDate == "" {
		issueDate = time.Now().UTC().Format(dateLayout)
	}
	dueDate := input.DueDate
	if dueDate == "" {
		if issued, err := time.Parse(dateLayout, issueDate); err == nil {
			dueDate = issued.AddDate(0, 0, defaultDueDays).Format(dateLayout)
		}
	}
	status := domain.InvoiceStatus(input.Status)
	if status == "" {
		status = domain.StatusDraft
	}

	inv := s.invoices.AddInvoice(ctx, domain.Invoice{
		InvoiceNumber: number,
		ClientID:      input.ClientID,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		Items:         toDomainItems(input.Items),
		Tax:           input.Tax,
		Status:        status,
		Notes:         input.Notes,
	})

	s.logger.Info().
		Str("invoice_id", inv.ID).
		Str("invoice_number", inv.InvoiceNumber).
		Str("client_id", inv.ClientID).
		Float64("total", inv.Total).
		Msg("invoice created")

	detail := s.toDetail(ctx, inv)
	return &detail, nil
}

// GetInvoice retrieves a single invoice with its client reference resolved
// to a display name.
func (s *InvoiceService) GetInvoice(ctx context.Context, id string) (*ports.InvoiceDetail, error) {
	inv, ok := s.invoices.InvoiceByID(ctx, id)
	if !ok {
		return nil, domain.ErrInvoiceNotFound
	}
	detail := s.toDetail(ctx, inv)
	return &detail, nil
}

// ListInvoices returns summaries matching the filter. Search is a
// case-insensitive substring match on the invoice number or the resolved
// client name, mirroring the list page of the UI this service replaced.
func (s *InvoiceService) ListInvoices(ctx context.Context, filter ports.ListInvoicesFilter) (*ports.ListInvoicesResult, error) {
	invoices := s.invoices.Invoices(ctx)
	names := s.clientNames(ctx)
	search := strings.ToLower(filter.Search)

	items := make([]ports.InvoiceSummary, 0, len(invoices))
	for _, inv := range invoices {
		if filter.Status != "" && string(inv.Status) != filter.Status {
			continue
		}
		name := resolveClientName(names, inv.ClientID)
		if search != "" &&
			!strings.Contains(strings.ToLower(inv.InvoiceNumber), search) &&
			!strings.Contains(strings.ToLower(name), search) {
			continue
		}
		items = append(items, toSummary(inv, name))
	}

	return &ports.ListInvoicesResult{Items: items, Total: len(invoices)}, nil
}

// UpdateInvoice applies a partial update. The store itself treats a missing
// id as a silent no-op; at this layer the nil read-back is reported as
// ErrInvoiceNotFound so callers are not told a phantom update succeeded.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id string, input ports.UpdateInvoiceInput) (*ports.InvoiceDetail, error) {
	patch := ports.InvoicePatch{
		InvoiceNumber: input.InvoiceNumber,
		ClientID:      input.ClientID,
		IssueDate:     input.IssueDate,
		DueDate:       input.DueDate,
		Tax:           input.Tax,
		Notes:         input.Notes,
	}
	if input.Status != nil {
		status := domain.InvoiceStatus(*input.Status)
		patch.Status = &status
	}
	if input.Items != nil {
		items := toDomainItems(*input.Items)
		patch.Items = &items
	}

	inv := s.invoices.UpdateInvoice(ctx, id, patch)
	if inv == nil {
		return nil, domain.ErrInvoiceNotFound
	}

	s.logger.Info().Str("invoice_id", id).Msg("invoice updated")

	detail := s.toDetail(ctx, *inv)
	return &detail, nil
}

// DeleteInvoice removes an invoice. No cascade; nothing else references
// invoices.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id string) error {
	if _, ok := s.invoices.InvoiceByID(ctx, id); !ok {
		return domain.ErrInvoiceNotFound
	}
	s.invoices.DeleteInvoice(ctx, id)
	s.logger.Info().Str("invoice_id", id).Msg("invoice deleted")
	return nil
}

// --- helpers ---

// generateInvoiceNumber returns a human-readable default in the format
// INV-XXXXXX, derived from the current time. Uniqueness is not guaranteed
// and not enforced anywhere.
func generateInvoiceNumber() string {
	millis := time.Now().UnixMilli()
	return fmt.Sprintf("INV-%06d", millis%1000000)
}

func toDomainItems(in []ports.ItemInput) []domain.InvoiceItem {
	items := make([]domain.InvoiceItem, len(in))
	for i, it := range in {
		items[i] = domain.InvoiceItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
	}
	return items
}

// clientNames snapshots the current id → name mapping for read-time
// reference resolution.
func (s *InvoiceService) clientNames(ctx context.Context) map[string]string {
	clients := s.clients.Clients(ctx)
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}
	return names
}

// resolveClientName is the lookup-or-default resolution for weak client
// references. A dangling id yields the fallback label, never an error.
func resolveClientName(names map[string]string, clientID string) string {
	if name, ok := names[clientID]; ok {
		return name
	}
	return domain.UnknownClientName
}

func (s *InvoiceService) toDetail(ctx context.Context, inv domain.Invoice) ports.InvoiceDetail {
	items := make([]ports.ItemDetail, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = ports.ItemDetail{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		}
	}
	return ports.InvoiceDetail{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientID:      inv.ClientID,
		ClientName:    resolveClientName(s.clientNames(ctx), inv.ClientID),
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		Items:         items,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Total:         inv.Total,
		Status:        string(inv.Status),
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

func toSummary(inv domain.Invoice, clientName string) ports.InvoiceSummary {
	return ports.InvoiceSummary{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientID:      inv.ClientID,
		ClientName:    clientName,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		Total:         inv.Total,
		Status:        string(inv.Status),
		CreatedAt:     inv.CreatedAt,
	}
}
