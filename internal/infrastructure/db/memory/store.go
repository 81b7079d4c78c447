// Package memory implements the state store: a single in-memory owner of the
// client and invoice collections. State lives for the process lifetime and is
// re-seeded on every start; there is no persistence.
//
// The original single-threaded design relied on an event loop for atomicity.
// Here an exclusive writer lock gives the same guarantee: no mutation is ever
// observable half-applied, and derived totals are reconciled inside the same
// critical section as the mutation that touched them.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/invoicehub/invoicing-system/internal/core/domain"
	"github.com/invoicehub/invoicing-system/internal/core/ports"
)

// Store is the single source of truth for clients and invoices and the only
// writer of both collections. All operations are total functions over the
// current state: update/delete on a missing id is a silent no-op, and no
// operation validates fields, client references, or invoice-number
// uniqueness.
type Store struct {
	mu        sync.RWMutex
	clients   []domain.Client
	invoices  []domain.Invoice
	listeners []func()
}

// New returns a Store populated with the fixed seed dataset (two clients,
// three invoices).
func New() *Store {
	return &Store{
		clients:  seedClients(),
		invoices: seedInvoices(),
	}
}

// NewEmpty returns a Store with no seed data. Intended for tests.
func NewEmpty() *Store {
	return &Store{}
}

// Subscribe registers fn to run synchronously after every mutation commits.
// Listeners run on the mutating goroutine, after the write lock is released,
// so they can read the latest collections. Not safe to call concurrently
// with mutations; register subscribers during startup.
func (s *Store) Subscribe(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}

// --- Invoices ---

// Invoices returns a deep copy of the invoice collection in insertion order.
func (s *Store) Invoices(_ context.Context) []domain.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Invoice, len(s.invoices))
	for i, inv := range s.invoices {
		out[i] = inv.Clone()
	}
	return out
}

// InvoiceByID returns a copy of the invoice with the given id.
func (s *Store) InvoiceByID(_ context.Context, id string) (domain.Invoice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.invoiceIndex(id); idx >= 0 {
		return s.invoices[idx].Clone(), true
	}
	return domain.Invoice{}, false
}

// AddInvoice stores a new invoice. The store assigns the id and both
// timestamps, fills in ids for items that lack one, and reconciles the
// derived fields — any caller-supplied amount, subtotal, or total is
// overwritten. Identifiers are uuids and are never reused, even after
// deletion.
func (s *Store) AddInvoice(_ context.Context, inv domain.Invoice) domain.Invoice {
	inv = inv.Clone()
	now := time.Now().UTC()
	inv.ID = uuid.NewString()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	for i := range inv.Items {
		if inv.Items[i].ID == "" {
			inv.Items[i].ID = uuid.NewString()
		}
	}
	inv.Recalculate()

	s.mu.Lock()
	s.invoices = append(s.invoices, inv)
	s.mu.Unlock()
	s.notify()

	return inv.Clone()
}

// UpdateInvoice merges patch into the invoice with the given id, refreshes
// UpdatedAt, and reconciles derived totals. Returns a copy of the updated
// invoice for immediate read-back, or nil when the id does not exist — the
// collection is left unchanged and no listener fires.
func (s *Store) UpdateInvoice(_ context.Context, id string, patch ports.InvoicePatch) *domain.Invoice {
	s.mu.Lock()
	idx := s.invoiceIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}

	inv := &s.invoices[idx]
	if patch.InvoiceNumber != nil {
		inv.InvoiceNumber = *patch.InvoiceNumber
	}
	if patch.ClientID != nil {
		inv.ClientID = *patch.ClientID
	}
	if patch.IssueDate != nil {
		inv.IssueDate = *patch.IssueDate
	}
	if patch.DueDate != nil {
		inv.DueDate = *patch.DueDate
	}
	if patch.Items != nil {
		items := make([]domain.InvoiceItem, len(*patch.Items))
		copy(items, *patch.Items)
		for i := range items {
			if items[i].ID == "" {
				items[i].ID = uuid.NewString()
			}
		}
		inv.Items = items
	}
	if patch.Tax != nil {
		inv.Tax = *patch.Tax
	}
	if patch.Status != nil {
		inv.Status = *patch.Status
	}
	if patch.Notes != nil {
		inv.Notes = *patch.Notes
	}
	inv.UpdatedAt = time.Now().UTC()
	inv.Recalculate()

	out := inv.Clone()
	s.mu.Unlock()
	s.notify()

	return &out
}

// DeleteInvoice removes the invoice with the given id, if present. No
// cascade, no signal on a missing id.
func (s *Store) DeleteInvoice(_ context.Context, id string) {
	s.mu.Lock()
	idx := s.invoiceIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.invoices = append(s.invoices[:idx], s.invoices[idx+1:]...)
	s.mu.Unlock()
	s.notify()
}

// invoiceIndex must be called with the lock held.
func (s *Store) invoiceIndex(id string) int {
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			return i
		}
	}
	return -1
}

// --- Clients ---

// Clients returns a copy of the client collection in insertion order.
func (s *Store) Clients(_ context.Context) []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// ClientByID returns a copy of the client with the given id.
func (s *Store) ClientByID(_ context.Context, id string) (domain.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.clientIndex(id); idx >= 0 {
		return s.clients[idx], true
	}
	return domain.Client{}, false
}

// AddClient stores a new client under a store-assigned id.
func (s *Store) AddClient(_ context.Context, c domain.Client) domain.Client {
	c.ID = uuid.NewString()

	s.mu.Lock()
	s.clients = append(s.clients, c)
	s.mu.Unlock()
	s.notify()

	return c
}

// UpdateClient merges patch into the client with the given id. Returns a
// copy of the result, or nil when the id does not exist (silent no-op).
func (s *Store) UpdateClient(_ context.Context, id string, patch ports.ClientPatch) *domain.Client {
	s.mu.Lock()
	idx := s.clientIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}

	c := &s.clients[idx]
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.Company != nil {
		c.Company = *patch.Company
	}

	out := *c
	s.mu.Unlock()
	s.notify()

	return &out
}

// DeleteClient removes the client with the given id, if present. Invoices
// referencing it keep their clientID; the dangling reference is resolved to
// a fallback label at read time, never treated as an error.
func (s *Store) DeleteClient(_ context.Context, id string) {
	s.mu.Lock()
	idx := s.clientIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.clients = append(s.clients[:idx], s.clients[idx+1:]...)
	s.mu.Unlock()
	s.notify()
}

// clientIndex must be called with the lock held.
func (s *Store) clientIndex(id string) int {
	for i := range s.clients {
		if s.clients[i].ID == id {
			return i
		}
	}
	return -1
}

var _ ports.InvoiceStore = (*Store)(nil)
var _ ports.ClientStore = (*Store)(nil)
