package ports

import (
	"context"

	"github.com/invoicehub/invoicing-system/internal/core/domain"
)

// ClientPatch carries a partial client update. Nil fields are left untouched.
type ClientPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Company *string
}

// ClientStore defines the client side of the state store. Deleting a client
// never cascades: invoices keep their clientID and the dangling reference is
// resolved at read time.
type ClientStore interface {
	Clients(ctx context.Context) []domain.Client
	ClientByID(ctx context.Context, id string) (domain.Client, bool)
	AddClient(ctx context.Context, c domain.Client) domain.Client
	// UpdateClient merges patch and returns the result, or nil when the id
	// does not exist (silent no-op).
	UpdateClient(ctx context.Context, id string, patch ClientPatch) *domain.Client
	DeleteClient(ctx context.Context, id string)
}
