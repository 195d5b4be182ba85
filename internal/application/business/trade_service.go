package business

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ferrisys/backend/internal/domain/business"
	"github.com/ferrisys/backend/internal/domain/shared"
)

// TradeService manages purchases and quotes. Totals are always recomputed
// from the submitted lines; client-supplied totals are ignored.
type TradeService struct {
	purchases business.PurchaseRepository
	quotes    business.QuoteRepository
	providers business.ProviderRepository
	clients   business.ClientRepository
	products  business.ProductRepository
	logger    *zap.Logger
}

// NewTradeService creates a trade service
func NewTradeService(
	purchases business.PurchaseRepository,
	quotes business.QuoteRepository,
	providers business.ProviderRepository,
	clients business.ClientRepository,
	products business.ProductRepository,
	logger *zap.Logger,
) *TradeService {
	return &TradeService{
		purchases: purchases,
		quotes:    quotes,
		providers: providers,
		clients:   clients,
		products:  products,
		logger:    logger,
	}
}

// SavePurchase creates or updates a purchase with its detail lines
func (s *TradeService) SavePurchase(ctx context.Context, input SavePurchaseInput) (*business.Purchase, error) {
	if _, err := s.providers.FindByID(ctx, input.ProviderID); err != nil {
		return nil, err
	}
	if err := s.checkProducts(ctx, input.Details); err != nil {
		return nil, err
	}

	purchase, err := business.NewPurchase(input.ProviderID, input.Date)
	if err != nil {
		return nil, err
	}
	if input.ID != nil {
		existing, err := s.purchases.FindByID(ctx, *input.ID)
		if err != nil {
			return nil, err
		}
		purchase.BaseEntity = existing.BaseEntity
		purchase.Status = existing.Status
	}
	purchase.Description = input.Description

	for _, d := range input.Details {
		if err := purchase.AddDetail(d.ProductID, d.Quantity, d.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err := s.purchases.Save(ctx, purchase); err != nil {
		return nil, err
	}
	s.logger.Info("purchase saved",
		zap.String("purchase_id", purchase.ID.String()),
		zap.String("total", purchase.Total.String()),
	)
	return purchase, nil
}

// ListPurchases returns purchases matching the filter
func (s *TradeService) ListPurchases(ctx context.Context, filter shared.Filter) ([]business.Purchase, int64, error) {
	return s.purchases.FindAll(ctx, filter)
}

// DisablePurchase marks the purchase inactive
func (s *TradeService) DisablePurchase(ctx context.Context, id uuid.UUID) error {
	purchase, err := s.purchases.FindByID(ctx, id)
	if err != nil {
		return err
	}
	purchase.Disable()
	return s.purchases.Save(ctx, purchase)
}

// SaveQuote creates or updates a quote with its detail lines
func (s *TradeService) SaveQuote(ctx context.Context, input SaveQuoteInput) (*business.Quote, error) {
	if _, err := s.clients.FindByID(ctx, input.ClientID); err != nil {
		return nil, err
	}
	if err := s.checkProducts(ctx, input.Details); err != nil {
		return nil, err
	}

	quote, err := business.NewQuote(input.ClientID, input.Date)
	if err != nil {
		return nil, err
	}
	if input.ID != nil {
		existing, err := s.quotes.FindByID(ctx, *input.ID)
		if err != nil {
			return nil, err
		}
		quote.BaseEntity = existing.BaseEntity
		quote.Status = existing.Status
	}
	quote.Description = input.Description

	for _, d := range input.Details {
		if err := quote.AddDetail(d.ProductID, d.Quantity, d.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err := s.quotes.Save(ctx, quote); err != nil {
		return nil, err
	}
	s.logger.Info("quote saved",
		zap.String("quote_id", quote.ID.String()),
		zap.String("total", quote.Total.String()),
	)
	return quote, nil
}

// ListQuotes returns quotes matching the filter
func (s *TradeService) ListQuotes(ctx context.Context, filter shared.Filter) ([]business.Quote, int64, error) {
	return s.quotes.FindAll(ctx, filter)
}

// DisableQuote marks the quote inactive
func (s *TradeService) DisableQuote(ctx context.Context, id uuid.UUID) error {
	quote, err := s.quotes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	quote.Disable()
	return s.quotes.Save(ctx, quote)
}

func (s *TradeService) checkProducts(ctx context.Context, details []DetailInput) error {
	for _, d := range details {
		if _, err := s.products.FindByID(ctx, d.ProductID); err != nil {
			return err
		}
	}
	return nil
}
