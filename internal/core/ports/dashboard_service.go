package ports

import "context"

// StatusBucket aggregates the invoices in one status.
type StatusBucket struct {
	Count  int
	Amount float64
}

// DashboardStats mirrors the dashboard stat cards: overall revenue plus the
// paid / pending / overdue breakdowns. Amounts sum invoice totals at full
// precision; rounding happens at render time only.
type DashboardStats struct {
	InvoiceCount int
	TotalAmount  float64
	Paid         StatusBucket
	Pending      StatusBucket
	Overdue      StatusBucket
}

// DashboardService provides the read-only aggregates for the dashboard.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	// RecentInvoices returns the latest invoices by creation time, newest
	// first, capped at limit.
	RecentInvoices(ctx context.Context, limit int) ([]InvoiceSummary, error)
}
