package service

import (
	"context"
	"testing"

	"github.com/invoicehub/invoicing-system/internal/core/domain"
	"github.com/invoicehub/invoicing-system/internal/infrastructure/db/memory"
)

func newDashboardSvc() (*DashboardService, *memory.Store) {
	store := memory.New()
	return NewDashboardService(store, store, 0, discardLogger), store
}

func TestDashboardService_StatsFromSeed(t *testing.T) {
	svc, _ := newDashboardSvc()

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if stats.InvoiceCount != 3 {
		t.Errorf("invoice count = %d, want 3", stats.InvoiceCount)
	}
	if stats.TotalAmount != 1925 { // 1100 + 770 + 55
		t.Errorf("total amount = %v, want 1925", stats.TotalAmount)
	}
	if stats.Paid.Count != 1 || stats.Paid.Amount != 1100 {
		t.Errorf("paid bucket = %+v, want 1/1100", stats.Paid)
	}
	if stats.Pending.Count != 1 || stats.Pending.Amount != 770 {
		t.Errorf("pending bucket = %+v, want 1/770", stats.Pending)
	}
	if stats.Overdue.Count != 1 || stats.Overdue.Amount != 55 {
		t.Errorf("overdue bucket = %+v, want 1/55", stats.Overdue)
	}
}

func TestDashboardService_StatsFollowMutations(t *testing.T) {
	svc, store := newDashboardSvc()

	store.DeleteInvoice(context.Background(), "1") // drop the paid invoice
	store.AddInvoice(context.Background(), domain.Invoice{
		ClientID: "2",
		Items:    []domain.InvoiceItem{{Description: "Retainer", Quantity: 1, UnitPrice: 300}},
		Status:   domain.StatusPending,
	})

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if stats.Paid.Count != 0 {
		t.Errorf("paid count = %d, want 0", stats.Paid.Count)
	}
	if stats.Pending.Count != 2 || stats.Pending.Amount != 1070 {
		t.Errorf("pending bucket = %+v, want 2/1070", stats.Pending)
	}
	if stats.TotalAmount != 1125 { // 770 + 55 + 300
		t.Errorf("total amount = %v, want 1125", stats.TotalAmount)
	}
}

func TestDashboardService_RecentOrdersNewestFirst(t *testing.T) {
	svc, _ := newDashboardSvc()

	recent, err := svc.RecentInvoices(context.Background(), 0)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 invoices, got %d", len(recent))
	}
	// Seed creation times: INV-002 (May 5) > INV-001 (May 1) > INV-003 (Apr 15).
	want := []string{"INV-002", "INV-001", "INV-003"}
	for i, number := range want {
		if recent[i].InvoiceNumber != number {
			t.Errorf("recent[%d] = %q, want %q", i, recent[i].InvoiceNumber, number)
		}
	}
	if recent[0].ClientName != "Jane Smith" {
		t.Errorf("client name = %q, want Jane Smith", recent[0].ClientName)
	}
}

func TestDashboardService_RecentRespectsLimit(t *testing.T) {
	svc, store := newDashboardSvc()

	recent, err := svc.RecentInvoices(context.Background(), 2)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 invoices, got %d", len(recent))
	}

	// A freshly created invoice jumps to the front.
	store.AddInvoice(context.Background(), domain.Invoice{InvoiceNumber: "INV-NEW", ClientID: "1"})
	recent, _ = svc.RecentInvoices(context.Background(), 2)
	if recent[0].InvoiceNumber != "INV-NEW" {
		t.Errorf("recent[0] = %q, want INV-NEW", recent[0].InvoiceNumber)
	}

	// Oversized limits are capped, not honoured blindly.
	recent, _ = svc.RecentInvoices(context.Background(), 10000)
	if len(recent) != 4 {
		t.Errorf("expected all 4 invoices under the cap, got %d", len(recent))
	}
}
