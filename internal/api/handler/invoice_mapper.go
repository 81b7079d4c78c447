package handler

import (
	"fmt"

	"github.com/invoicehub/invoicing-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInvoiceInput(req createInvoiceRequest) ports.CreateInvoiceInput {
	return ports.CreateInvoiceInput{
		InvoiceNumber: req.InvoiceNumber,
		ClientID:      req.ClientID,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		Items:         toItemInputs(req.Items),
		Tax:           req.Tax,
		Status:        req.Status,
		Notes:         req.Notes,
	}
}

func toUpdateInvoiceInput(req updateInvoiceRequest) ports.UpdateInvoiceInput {
	input := ports.UpdateInvoiceInput{
		InvoiceNumber: req.InvoiceNumber,
		ClientID:      req.ClientID,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		Tax:           req.Tax,
		Status:        req.Status,
		Notes:         req.Notes,
	}
	if req.Items != nil {
		items := toItemInputs(*req.Items)
		input.Items = &items
	}
	return input
}

func toItemInputs(items []itemRequest) []ports.ItemInput {
	out := make([]ports.ItemInput, len(items))
	for i, it := range items {
		out[i] = ports.ItemInput{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
	}
	return out
}

// --- Service result → HTTP response ---

func toInvoiceResponse(d *ports.InvoiceDetail) invoiceResponse {
	items := make([]itemResponse, len(d.Items))
	for i, it := range d.Items {
		items[i] = itemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		}
	}
	return invoiceResponse{
		ID:            d.ID,
		InvoiceNumber: d.InvoiceNumber,
		ClientID:      d.ClientID,
		ClientName:    d.ClientName,
		IssueDate:     d.IssueDate,
		DueDate:       d.DueDate,
		Items:         items,
		Subtotal:      d.Subtotal,
		Tax:           d.Tax,
		Total:         d.Total,
		TotalDisplay:  formatAmount(d.Total),
		Status:        d.Status,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
		Links:         invoiceLinks{Self: "/v1/invoices/" + d.ID},
	}
}

func toInvoiceSummaryResponse(s ports.InvoiceSummary) invoiceSummaryResponse {
	return invoiceSummaryResponse{
		ID:            s.ID,
		InvoiceNumber: s.InvoiceNumber,
		ClientID:      s.ClientID,
		ClientName:    s.ClientName,
		IssueDate:     s.IssueDate,
		DueDate:       s.DueDate,
		Total:         s.Total,
		TotalDisplay:  formatAmount(s.Total),
		Status:        s.Status,
		CreatedAt:     s.CreatedAt.UTC(),
	}
}

func toListInvoicesResponse(r *ports.ListInvoicesResult) listInvoicesResponse {
	data := make([]invoiceSummaryResponse, len(r.Items))
	for i, s := range r.Items {
		data[i] = toInvoiceSummaryResponse(s)
	}
	return listInvoicesResponse{Data: data, Total: r.Total}
}

// formatAmount truncates monetary values to two decimals for display only;
// stored values keep full float precision.
func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
