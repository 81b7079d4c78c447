package memory

import (
	"context"
	"testing"

	"github.com/invoicehub/invoicing-system/internal/core/domain"
	"github.com/invoicehub/invoicing-system/internal/core/ports"
)

var ctx = context.Background()

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

func statusPtr(s domain.InvoiceStatus) *domain.InvoiceStatus { return &s }

// ---------------------------------------------------------------------------
// Seed state
// ---------------------------------------------------------------------------

func TestNew_SeedsFixedDataset(t *testing.T) {
	s := New()

	clients := s.Clients(ctx)
	if len(clients) != 2 {
		t.Fatalf("expected 2 seed clients, got %d", len(clients))
	}
	invoices := s.Invoices(ctx)
	if len(invoices) != 3 {
		t.Fatalf("expected 3 seed invoices, got %d", len(invoices))
	}

	inv, ok := s.InvoiceByID(ctx, "2")
	if !ok {
		t.Fatal("seed invoice 2 missing")
	}
	if inv.InvoiceNumber != "INV-002" || inv.Subtotal != 700 || inv.Total != 770 {
		t.Errorf("unexpected seed invoice 2: %+v", inv)
	}
	if len(inv.Items) != 2 {
		t.Errorf("seed invoice 2 should have 2 items, got %d", len(inv.Items))
	}
}

// ---------------------------------------------------------------------------
// AddInvoice
// ---------------------------------------------------------------------------

func TestAddInvoice_AssignsIdentityAndTimestamps(t *testing.T) {
	s := New()

	inv := s.AddInvoice(ctx, domain.Invoice{
		InvoiceNumber: "INV-100",
		ClientID:      "1",
		Items:         []domain.InvoiceItem{{Description: "Consulting", Quantity: 2, UnitPrice: 75}},
	})

	if inv.ID == "" {
		t.Fatal("expected a generated id")
	}
	if inv.CreatedAt.IsZero() || !inv.CreatedAt.Equal(inv.UpdatedAt) {
		t.Errorf("expected createdAt == updatedAt != zero, got %v / %v", inv.CreatedAt, inv.UpdatedAt)
	}
	if inv.Items[0].ID == "" {
		t.Error("expected a generated item id")
	}

	stored, ok := s.InvoiceByID(ctx, inv.ID)
	if !ok {
		t.Fatal("created invoice not readable back")
	}
	if stored.Subtotal != 150 {
		t.Errorf("subtotal = %v, want 150", stored.Subtotal)
	}
}

func TestAddInvoice_NormalizesCallerSuppliedDerivedFields(t *testing.T) {
	s := New()

	inv := s.AddInvoice(ctx, domain.Invoice{
		ClientID: "1",
		Items:    []domain.InvoiceItem{{Description: "X", Quantity: 2, UnitPrice: 10, Amount: 0}},
		Tax:      5,
		Subtotal: 12345, // lies, all lies
		Total:    99999,
	})

	if inv.Items[0].Amount != 20 {
		t.Errorf("item amount = %v, want 20", inv.Items[0].Amount)
	}
	if inv.Subtotal != 20 {
		t.Errorf("subtotal = %v, want 20", inv.Subtotal)
	}
	if inv.Total != 25 {
		t.Errorf("total = %v, want 25", inv.Total)
	}
}

func TestAddInvoice_IdentifiersUniqueAndNeverReused(t *testing.T) {
	s := New()

	seen := map[string]bool{}
	for _, inv := range s.Invoices(ctx) {
		seen[inv.ID] = true
	}

	var created []string
	for i := 0; i < 50; i++ {
		inv := s.AddInvoice(ctx, domain.Invoice{ClientID: "1"})
		if seen[inv.ID] {
			t.Fatalf("id %q reused", inv.ID)
		}
		seen[inv.ID] = true
		created = append(created, inv.ID)
	}

	// Deleting must not make an id eligible for reuse.
	s.DeleteInvoice(ctx, created[0])
	inv := s.AddInvoice(ctx, domain.Invoice{ClientID: "1"})
	if inv.ID == created[0] {
		t.Fatalf("deleted id %q was reassigned", created[0])
	}
}

// ---------------------------------------------------------------------------
// UpdateInvoice
// ---------------------------------------------------------------------------

func TestUpdateInvoice_MergesPartialFields(t *testing.T) {
	s := New()

	before, _ := s.InvoiceByID(ctx, "1")

	got := s.UpdateInvoice(ctx, "1", ports.InvoicePatch{
		Status: statusPtr(domain.StatusPending),
		Notes:  strPtr("resent"),
	})
	if got == nil {
		t.Fatal("expected updated invoice")
	}

	if got.Status != domain.StatusPending || got.Notes != "resent" {
		t.Errorf("patched fields not applied: %+v", got)
	}
	// Untouched fields survive the merge.
	if got.InvoiceNumber != before.InvoiceNumber || got.Subtotal != before.Subtotal || got.Total != before.Total {
		t.Errorf("unpatched fields changed: %+v", got)
	}
	if !got.UpdatedAt.After(before.UpdatedAt) {
		t.Errorf("updatedAt not refreshed: %v <= %v", got.UpdatedAt, before.UpdatedAt)
	}
	if !got.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("createdAt must never change: %v != %v", got.CreatedAt, before.CreatedAt)
	}
}

func TestUpdateInvoice_RecalculatesOnItemsChange(t *testing.T) {
	s := New()

	items := []domain.InvoiceItem{
		{Description: "Audit", Quantity: 3, UnitPrice: 200, Amount: 1}, // amount ignored
	}
	got := s.UpdateInvoice(ctx, "1", ports.InvoicePatch{Items: &items})
	if got == nil {
		t.Fatal("expected updated invoice")
	}

	if got.Items[0].Amount != 600 {
		t.Errorf("item amount = %v, want 600", got.Items[0].Amount)
	}
	if got.Items[0].ID == "" {
		t.Error("new item should get a generated id")
	}
	if got.Subtotal != 600 {
		t.Errorf("subtotal = %v, want 600", got.Subtotal)
	}
	if got.Total != 700 { // seed tax on invoice 1 is 100
		t.Errorf("total = %v, want 700", got.Total)
	}
}

func TestUpdateInvoice_RecalculatesOnTaxChange(t *testing.T) {
	s := New()

	got := s.UpdateInvoice(ctx, "1", ports.InvoicePatch{Tax: f64Ptr(0)})
	if got == nil {
		t.Fatal("expected updated invoice")
	}
	if got.Total != got.Subtotal {
		t.Errorf("total = %v, want subtotal %v with zero tax", got.Total, got.Subtotal)
	}
}

func TestUpdateInvoice_MissingIDIsSilentNoOp(t *testing.T) {
	s := New()

	got := s.UpdateInvoice(ctx, "no-such-id", ports.InvoicePatch{Notes: strPtr("x")})
	if got != nil {
		t.Fatalf("expected nil read-back, got %+v", got)
	}
	if len(s.Invoices(ctx)) != 3 {
		t.Errorf("collection changed: %d invoices", len(s.Invoices(ctx)))
	}
}

// ---------------------------------------------------------------------------
// DeleteInvoice
// ---------------------------------------------------------------------------

func TestDeleteInvoice_SeedScenario(t *testing.T) {
	s := New()

	s.DeleteInvoice(ctx, "2")

	invoices := s.Invoices(ctx)
	if len(invoices) != 2 {
		t.Fatalf("expected 2 invoices, got %d", len(invoices))
	}
	ids := map[string]bool{}
	for _, inv := range invoices {
		ids[inv.ID] = true
	}
	if !ids["1"] || !ids["3"] || ids["2"] {
		t.Errorf("unexpected ids after delete: %v", ids)
	}

	// A later update of the deleted id stays a no-op.
	if got := s.UpdateInvoice(ctx, "2", ports.InvoicePatch{Notes: strPtr("ghost")}); got != nil {
		t.Errorf("update of deleted id should no-op, got %+v", got)
	}
	if len(s.Invoices(ctx)) != 2 {
		t.Errorf("no-op update changed the collection")
	}
}

func TestDeleteInvoice_MissingIDIsNoOp(t *testing.T) {
	s := New()
	s.DeleteInvoice(ctx, "nope")
	if len(s.Invoices(ctx)) != 3 {
		t.Errorf("missing-id delete changed the collection")
	}
}

// ---------------------------------------------------------------------------
// Clients
// ---------------------------------------------------------------------------

func TestClientLifecycle(t *testing.T) {
	s := New()

	c := s.AddClient(ctx, domain.Client{Name: "New Co", Email: "new@example.com"})
	if c.ID == "" {
		t.Fatal("expected a generated id")
	}

	got := s.UpdateClient(ctx, c.ID, ports.ClientPatch{Phone: strPtr("555-000-1111")})
	if got == nil || got.Phone != "555-000-1111" || got.Name != "New Co" {
		t.Fatalf("unexpected merge result: %+v", got)
	}

	if got := s.UpdateClient(ctx, "missing", ports.ClientPatch{Name: strPtr("x")}); got != nil {
		t.Errorf("missing-id update should no-op, got %+v", got)
	}

	s.DeleteClient(ctx, c.ID)
	if _, ok := s.ClientByID(ctx, c.ID); ok {
		t.Error("client still present after delete")
	}
}

func TestDeleteClient_LeavesDanglingInvoiceReference(t *testing.T) {
	s := New()

	s.DeleteClient(ctx, "1")

	// Referential integrity is intentionally not enforced: the invoice keeps
	// its clientID and stays fully readable.
	inv, ok := s.InvoiceByID(ctx, "1")
	if !ok {
		t.Fatal("invoice should survive its client")
	}
	if inv.ClientID != "1" {
		t.Errorf("clientID rewritten to %q, want dangling \"1\"", inv.ClientID)
	}
}

// ---------------------------------------------------------------------------
// Subscription and isolation
// ---------------------------------------------------------------------------

func TestSubscribe_FiresAfterCommitOnly(t *testing.T) {
	s := New()

	var fires int
	var observed int
	s.Subscribe(func() {
		fires++
		observed = len(s.Invoices(ctx)) // listener must see the committed state
	})

	s.AddInvoice(ctx, domain.Invoice{ClientID: "1"})
	if fires != 1 || observed != 4 {
		t.Fatalf("after add: fires=%d observed=%d, want 1/4", fires, observed)
	}

	s.DeleteInvoice(ctx, "1")
	if fires != 2 || observed != 3 {
		t.Fatalf("after delete: fires=%d observed=%d, want 2/3", fires, observed)
	}

	// No-ops must not notify.
	s.UpdateInvoice(ctx, "missing", ports.InvoicePatch{})
	s.DeleteInvoice(ctx, "missing")
	s.DeleteClient(ctx, "missing")
	if fires != 2 {
		t.Errorf("no-op mutations notified listeners: fires=%d", fires)
	}
}

func TestReads_ReturnDefensiveCopies(t *testing.T) {
	s := New()

	invoices := s.Invoices(ctx)
	invoices[0].Items[0].Quantity = 9999
	invoices[0].Notes = "vandalised"

	fresh, _ := s.InvoiceByID(ctx, invoices[0].ID)
	if fresh.Items[0].Quantity == 9999 || fresh.Notes == "vandalised" {
		t.Error("mutating a read result leaked into the store")
	}
}
