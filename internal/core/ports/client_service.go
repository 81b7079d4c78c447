package ports

import "context"

// CreateClientInput carries all data needed to create a client.
type CreateClientInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Company string
}

// UpdateClientInput is the service-level partial update.
type UpdateClientInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Company *string
}

// ClientDetail is the client view returned by the service.
type ClientDetail struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Address string
	Company string
}

// ClientService defines use-case operations for clients.
type ClientService interface {
	CreateClient(ctx context.Context, input CreateClientInput) (*ClientDetail, error)
	GetClient(ctx context.Context, id string) (*ClientDetail, error)
	ListClients(ctx context.Context) ([]ClientDetail, error)
	UpdateClient(ctx context.Context, id string, input UpdateClientInput) (*ClientDetail, error)
	DeleteClient(ctx context.Context, id string) error
}
