package domain

import "testing"

func TestRecalculate_DerivesAmountsAndTotals(t *testing.T) {
	inv := Invoice{
		Items: []InvoiceItem{
			{ID: "a", Quantity: 2, UnitPrice: 10, Amount: 999}, // stale amount
			{ID: "b", Quantity: 3, UnitPrice: 5},
		},
		Tax:      5,
		Subtotal: -1, // garbage in, reconciled out
		Total:    -1,
	}

	inv.Recalculate()

	if inv.Items[0].Amount != 20 {
		t.Errorf("item a amount = %v, want 20", inv.Items[0].Amount)
	}
	if inv.Items[1].Amount != 15 {
		t.Errorf("item b amount = %v, want 15", inv.Items[1].Amount)
	}
	if inv.Subtotal != 35 {
		t.Errorf("subtotal = %v, want 35", inv.Subtotal)
	}
	if inv.Total != 40 {
		t.Errorf("total = %v, want 40", inv.Total)
	}
}

func TestRecalculate_Idempotent(t *testing.T) {
	inv := Invoice{
		Items: []InvoiceItem{{ID: "a", Quantity: 4, UnitPrice: 2.5}},
		Tax:   1,
	}

	inv.Recalculate()
	first := inv
	inv.Recalculate()

	if inv.Items[0].Amount != first.Items[0].Amount || inv.Subtotal != first.Subtotal || inv.Total != first.Total {
		t.Errorf("second Recalculate changed values: %+v vs %+v", inv, first)
	}
	if inv.Items[0].Amount != 10 {
		t.Errorf("amount = %v, want 10", inv.Items[0].Amount)
	}
}

func TestRecalculate_EmptyItems(t *testing.T) {
	inv := Invoice{Tax: 7, Subtotal: 100, Total: 200}

	inv.Recalculate()

	if inv.Subtotal != 0 {
		t.Errorf("subtotal = %v, want 0", inv.Subtotal)
	}
	if inv.Total != 7 {
		t.Errorf("total = %v, want 7 (tax only)", inv.Total)
	}
}

func TestRecalculate_NegativeValuesPassThrough(t *testing.T) {
	// Validation is a presentation concern; the computation rules accept
	// any numbers.
	inv := Invoice{Items: []InvoiceItem{{ID: "a", Quantity: -2, UnitPrice: 10}}}

	inv.Recalculate()

	if inv.Items[0].Amount != -20 {
		t.Errorf("amount = %v, want -20", inv.Items[0].Amount)
	}
	if inv.Total != -20 {
		t.Errorf("total = %v, want -20", inv.Total)
	}
}

func TestClone_DoesNotShareItems(t *testing.T) {
	inv := Invoice{Items: []InvoiceItem{{ID: "a", Quantity: 1, UnitPrice: 1}}}

	clone := inv.Clone()
	clone.Items[0].Quantity = 99

	if inv.Items[0].Quantity != 1 {
		t.Errorf("mutating the clone leaked into the original: %+v", inv.Items[0])
	}
}

func TestInvoiceStatus_IsValid(t *testing.T) {
	for _, s := range []InvoiceStatus{StatusDraft, StatusPending, StatusPaid, StatusOverdue} {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if InvoiceStatus("cancelled").IsValid() {
		t.Error("unknown status should not be valid")
	}
}
