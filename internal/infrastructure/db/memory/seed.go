package memory

import (
	"time"

	"github.com/invoicehub/invoicing-system/internal/core/domain"
)

// Seed dataset: populated on every process start in absence of persistence.
// Used for first-run demonstration and as fixtures in tests. The fixed "1",
// "2", "3" ids never collide with generated uuids.

func seedClients() []domain.Client {
	return []domain.Client{
		{
			ID:      "1",
			Name:    "John Doe",
			Email:   "john@example.com",
			Phone:   "555-123-4567",
			Address: "123 Main St, Anytown, CA 12345",
			Company: "Acme Inc.",
		},
		{
			ID:      "2",
			Name:    "Jane Smith",
			Email:   "jane@example.com",
			Phone:   "555-987-6543",
			Address: "456 Oak Ave, Somewhere, NY 67890",
			Company: "XYZ Corp",
		},
	}
}

func seedInvoices() []domain.Invoice {
	return []domain.Invoice{
		{
			ID:            "1",
			InvoiceNumber: "INV-001",
			ClientID:      "1",
			IssueDate:     "2023-05-01",
			DueDate:       "2023-05-15",
			Items: []domain.InvoiceItem{
				{ID: "1", Description: "Web Design", Quantity: 1, UnitPrice: 1000, Amount: 1000},
			},
			Subtotal:  1000,
			Tax:       100,
			Total:     1100,
			Status:    domain.StatusPaid,
			Notes:     "Thank you for your business!",
			CreatedAt: time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            "2",
			InvoiceNumber: "INV-002",
			ClientID:      "2",
			IssueDate:     "2023-05-05",
			DueDate:       "2023-05-19",
			Items: []domain.InvoiceItem{
				{ID: "1", Description: "Logo Design", Quantity: 1, UnitPrice: 500, Amount: 500},
				{ID: "2", Description: "Business Cards", Quantity: 100, UnitPrice: 2, Amount: 200},
			},
			Subtotal:  700,
			Tax:       70,
			Total:     770,
			Status:    domain.StatusPending,
			Notes:     "",
			CreatedAt: time.Date(2023, 5, 5, 14, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 5, 5, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:            "3",
			InvoiceNumber: "INV-003",
			ClientID:      "1",
			IssueDate:     "2023-04-15",
			DueDate:       "2023-04-29",
			Items: []domain.InvoiceItem{
				{ID: "1", Description: "Hosting (Monthly)", Quantity: 1, UnitPrice: 50, Amount: 50},
			},
			Subtotal:  50,
			Tax:       5,
			Total:     55,
			Status:    domain.StatusOverdue,
			Notes:     "Second reminder",
			CreatedAt: time.Date(2023, 4, 15, 9, 15, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 4, 15, 9, 15, 0, 0, time.UTC),
		},
	}
}
