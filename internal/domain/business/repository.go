package business

import (
	"context"

	"github.com/ferrisys/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientRepository persists clients
type ClientRepository interface {
	Save(ctx context.Context, client *Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, int64, error)
}

// ProviderRepository persists providers
type ProviderRepository interface {
	Save(ctx context.Context, provider *Provider) error
	FindByID(ctx context.Context, id uuid.UUID) (*Provider, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Provider, int64, error)
}

// CategoryRepository persists inventory categories
type CategoryRepository interface {
	Save(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, int64, error)
}

// ProductRepository persists products
type ProductRepository interface {
	Save(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, int64, error)
}

// PurchaseRepository persists purchases with their detail lines
type PurchaseRepository interface {
	Save(ctx context.Context, purchase *Purchase) error
	FindByID(ctx context.Context, id uuid.UUID) (*Purchase, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Purchase, int64, error)
}

// QuoteRepository persists quotes with their detail lines
type QuoteRepository interface {
	Save(ctx context.Context, quote *Quote) error
	FindByID(ctx context.Context, id uuid.UUID) (*Quote, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Quote, int64, error)
}
