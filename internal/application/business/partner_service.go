package business

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ferrisys/backend/internal/domain/business"
	"github.com/ferrisys/backend/internal/domain/shared"
)

// PartnerService manages clients and providers. Records are soft-disabled
// rather than deleted so historical purchases and quotes keep their links.
type PartnerService struct {
	clients   business.ClientRepository
	providers business.ProviderRepository
	logger    *zap.Logger
}

// NewPartnerService creates a partner service
func NewPartnerService(
	clients business.ClientRepository,
	providers business.ProviderRepository,
	logger *zap.Logger,
) *PartnerService {
	return &PartnerService{clients: clients, providers: providers, logger: logger}
}

// SaveClient creates or updates a client
func (s *PartnerService) SaveClient(ctx context.Context, input SaveClientInput) (*business.Client, error) {
	var client *business.Client
	if input.ID != nil {
		existing, err := s.clients.FindByID(ctx, *input.ID)
		if err != nil {
			return nil, err
		}
		client = existing
		client.Name = input.Name
		client.Touch()
	} else {
		created, err := business.NewClient(input.Name)
		if err != nil {
			return nil, err
		}
		client = created
	}

	client.Contact = input.Contact
	client.Phone = input.Phone
	client.Address = input.Address
	client.NIT = input.NIT

	if err := s.clients.Save(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// ListClients returns clients matching the filter
func (s *PartnerService) ListClients(ctx context.Context, filter shared.Filter) ([]business.Client, int64, error) {
	return s.clients.FindAll(ctx, filter)
}

// DisableClient marks the client inactive
func (s *PartnerService) DisableClient(ctx context.Context, id uuid.UUID) error {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return err
	}
	client.Disable()
	if err := s.clients.Save(ctx, client); err != nil {
		return err
	}
	s.logger.Info("client disabled", zap.String("client_id", id.String()))
	return nil
}

// SaveProvider creates or updates a provider
func (s *PartnerService) SaveProvider(ctx context.Context, input SaveProviderInput) (*business.Provider, error) {
	var provider *business.Provider
	if input.ID != nil {
		existing, err := s.providers.FindByID(ctx, *input.ID)
		if err != nil {
			return nil, err
		}
		provider = existing
		provider.Name = input.Name
		provider.Touch()
	} else {
		created, err := business.NewProvider(input.Name)
		if err != nil {
			return nil, err
		}
		provider = created
	}

	provider.Contact = input.Contact
	provider.Phone = input.Phone
	provider.Address = input.Address
	provider.RUC = input.RUC

	if err := s.providers.Save(ctx, provider); err != nil {
		return nil, err
	}
	return provider, nil
}

// ListProviders returns providers matching the filter
func (s *PartnerService) ListProviders(ctx context.Context, filter shared.Filter) ([]business.Provider, int64, error) {
	return s.providers.FindAll(ctx, filter)
}

// DisableProvider marks the provider inactive
func (s *PartnerService) DisableProvider(ctx context.Context, id uuid.UUID) error {
	provider, err := s.providers.FindByID(ctx, id)
	if err != nil {
		return err
	}
	provider.Disable()
	if err := s.providers.Save(ctx, provider); err != nil {
		return err
	}
	s.logger.Info("provider disabled", zap.String("provider_id", id.String()))
	return nil
}
