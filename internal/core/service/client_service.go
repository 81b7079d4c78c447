package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/invoicehub/invoicing-system/internal/core/domain"
	"github.com/invoicehub/invoicing-system/internal/core/ports"
)

type ClientService struct {
	clients ports.ClientStore
	logger  zerolog.Logger
}

func NewClientService(clients ports.ClientStore, logger zerolog.Logger) *ClientService {
	return &ClientService{clients: clients, logger: logger}
}

func (s *ClientService) CreateClient(ctx context.Context, input ports.CreateClientInput) (*ports.ClientDetail, error) {
	c := s.clients.AddClient(ctx, domain.Client{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		Company: input.Company,
	})

	s.logger.Info().Str("client_id", c.ID).Str("name", c.Name).Msg("client created")

	detail := toClientDetail(c)
	return &detail, nil
}

func (s *ClientService) GetClient(ctx context.Context, id string) (*ports.ClientDetail, error) {
	c, ok := s.clients.ClientByID(ctx, id)
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	detail := toClientDetail(c)
	return &detail, nil
}

func (s *ClientService) ListClients(ctx context.Context) ([]ports.ClientDetail, error) {
	clients := s.clients.Clients(ctx)
	out := make([]ports.ClientDetail, len(clients))
	for i, c := range clients {
		out[i] = toClientDetail(c)
	}
	return out, nil
}

// UpdateClient applies a partial update, reporting the store's silent
// no-op on a missing id as ErrClientNotFound.
func (s *ClientService) UpdateClient(ctx context.Context, id string, input ports.UpdateClientInput) (*ports.ClientDetail, error) {
	c := s.clients.UpdateClient(ctx, id, ports.ClientPatch{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		Company: input.Company,
	})
	if c == nil {
		return nil, domain.ErrClientNotFound
	}

	s.logger.Info().Str("client_id", id).Msg("client updated")

	detail := toClientDetail(*c)
	return &detail, nil
}

// DeleteClient removes a client. Invoices referencing it are intentionally
// left with a dangling clientID, resolved to a fallback label on read.
func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	if _, ok := s.clients.ClientByID(ctx, id); !ok {
		return domain.ErrClientNotFound
	}
	s.clients.DeleteClient(ctx, id)
	s.logger.Info().Str("client_id", id).Msg("client deleted")
	return nil
}

func toClientDetail(c domain.Client) ports.ClientDetail {
	return ports.ClientDetail{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
		Company: c.Company,
	}
}
