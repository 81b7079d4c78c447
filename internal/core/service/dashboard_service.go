package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/invoicehub/invoicing-system/internal/core/domain"
	"github.com/invoicehub/invoicing-system/internal/core/ports"
)

const (
	defaultRecentLimit = 5
	maxRecentLimit     = 20
)

// DashboardService computes the read-only aggregates behind the dashboard:
// revenue totals broken down by status, and the most recent invoices.
type DashboardService struct {
	invoices    ports.InvoiceStore
	clients     ports.ClientStore
	recentLimit int
	logger      zerolog.Logger
}

// NewDashboardService builds a DashboardService. recentLimit is the page
// size used when a caller does not ask for one; non-positive values fall
// back to the built-in default.
func NewDashboardService(invoices ports.InvoiceStore, clients ports.ClientStore, recentLimit int, logger zerolog.Logger) *DashboardService {
	if recentLimit <= 0 {
		recentLimit = defaultRecentLimit
	}
	return &DashboardService{invoices: invoices, clients: clients, recentLimit: recentLimit, logger: logger}
}

// Stats sums invoice totals overall and per status. Amounts stay full
// precision; rounding is left to the render path.
func (s *DashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	stats := &ports.DashboardStats{}
	for _, inv := range s.invoices.Invoices(ctx) {
		stats.InvoiceCount++
		stats.TotalAmount += inv.Total
		switch inv.Status {
		case domain.StatusPaid:
			stats.Paid.Count++
			stats.Paid.Amount += inv.Total
		case domain.StatusPending:
			stats.Pending.Count++
			stats.Pending.Amount += inv.Total
		case domain.StatusOverdue:
			stats.Overdue.Count++
			stats.Overdue.Amount += inv.Total
		}
	}
	return stats, nil
}

// RecentInvoices returns the newest invoices by creation time. A
// non-positive limit falls back to the configured default; oversized limits
// are capped.
func (s *DashboardService) RecentInvoices(ctx context.Context, limit int) ([]ports.InvoiceSummary, error) {
	if limit <= 0 {
		limit = s.recentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	invoices := s.invoices.Invoices(ctx)
	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].CreatedAt.After(invoices[j].CreatedAt)
	})
	if len(invoices) > limit {
		invoices = invoices[:limit]
	}

	names := make(map[string]string)
	for _, c := range s.clients.Clients(ctx) {
		names[c.ID] = c.Name
	}

	out := make([]ports.InvoiceSummary, len(invoices))
	for i, inv := range invoices {
		out[i] = toSummary(inv, resolveClientName(names, inv.ClientID))
	}
	return out, nil
}
