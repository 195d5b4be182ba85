package business

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "github.com/ferrisys/backend/internal/domain/business"
	"github.com/ferrisys/backend/internal/domain/shared"
	"github.com/ferrisys/backend/internal/infrastructure/persistence"
	"github.com/ferrisys/backend/internal/infrastructure/persistence/models"
)

type tradeFixture struct {
	partners  *PartnerService
	inventory *InventoryService
	trade     *TradeService
}

func newTradeFixture(t *testing.T) *tradeFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.ClientModel{},
		&models.ProviderModel{},
		&models.CategoryModel{},
		&models.ProductModel{},
		&models.PurchaseModel{},
		&models.PurchaseDetailModel{},
		&models.QuoteModel{},
		&models.QuoteDetailModel{},
	))

	clients := persistence.NewGormClientRepository(db)
	providers := persistence.NewGormProviderRepository(db)
	categories := persistence.NewGormCategoryRepository(db)
	products := persistence.NewGormProductRepository(db)
	purchases := persistence.NewGormPurchaseRepository(db)
	quotes := persistence.NewGormQuoteRepository(db)

	return &tradeFixture{
		partners:  NewPartnerService(clients, providers, zap.NewNop()),
		inventory: NewInventoryService(categories, products, zap.NewNop()),
		trade:     NewTradeService(purchases, quotes, providers, clients, products, zap.NewNop()),
	}
}

func (f *tradeFixture) seedProduct(t *testing.T, name string, price string) *domain.Product {
	t.Helper()
	product, err := f.inventory.SaveProduct(context.Background(), SaveProductInput{
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: 10,
	})
	require.NoError(t, err)
	return product
}

func TestSavePurchaseComputesTotal(t *testing.T) {
	f := newTradeFixture(t)
	ctx := context.Background()

	provider, err := f.partners.SaveProvider(ctx, SaveProviderInput{Name: "Aceros SA", RUC: "123"})
	require.NoError(t, err)
	hammer := f.seedProduct(t, "Martillo", "25.50")
	nails := f.seedProduct(t, "Clavos", "0.10")

	purchase, err := f.trade.SavePurchase(ctx, SavePurchaseInput{
		ProviderID:  provider.ID,
		Description: "reposición",
		Date:        time.Now(),
		Details: []DetailInput{
			{ProductID: hammer.ID, Quantity: 2, UnitPrice: hammer.Price},
			{ProductID: nails.ID, Quantity: 100, UnitPrice: nails.Price},
		},
	})
	require.NoError(t, err)

	// 2*25.50 + 100*0.10 = 61.00
	assert.True(t, purchase.Total.Equal(decimal.RequireFromString("61.00")),
		"got total %s", purchase.Total)
	assert.Len(t, purchase.Details, 2)

	listed, total, err := f.trade.ListPurchases(ctx, shared.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, listed, 1)
	assert.Len(t, listed[0].Details, 2)
}

func TestSavePurchaseValidatesReferences(t *testing.T) {
	f := newTradeFixture(t)
	ctx := context.Background()

	t.Run("unknown provider", func(t *testing.T) {
		_, err := f.trade.SavePurchase(ctx, SavePurchaseInput{
			ProviderID: uuid.New(),
			Date:       time.Now(),
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("unknown product in details", func(t *testing.T) {
		provider, err := f.partners.SaveProvider(ctx, SaveProviderInput{Name: "Aceros SA"})
		require.NoError(t, err)

		_, err = f.trade.SavePurchase(ctx, SavePurchaseInput{
			ProviderID: provider.ID,
			Date:       time.Now(),
			Details:    []DetailInput{{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.New(1, 0)}},
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestSavePurchaseUpdateReplacesDetails(t *testing.T) {
	f := newTradeFixture(t)
	ctx := context.Background()

	provider, err := f.partners.SaveProvider(ctx, SaveProviderInput{Name: "Aceros SA"})
	require.NoError(t, err)
	hammer := f.seedProduct(t, "Martillo", "25.50")

	created, err := f.trade.SavePurchase(ctx, SavePurchaseInput{
		ProviderID: provider.ID,
		Date:       time.Now(),
		Details:    []DetailInput{{ProductID: hammer.ID, Quantity: 4, UnitPrice: hammer.Price}},
	})
	require.NoError(t, err)

	updated, err := f.trade.SavePurchase(ctx, SavePurchaseInput{
		ID:         &created.ID,
		ProviderID: provider.ID,
		Date:       created.Date,
		Details:    []DetailInput{{ProductID: hammer.ID, Quantity: 1, UnitPrice: hammer.Price}},
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.Total.Equal(decimal.RequireFromString("25.50")))

	_, total, err := f.trade.ListPurchases(ctx, shared.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "update must not create a second purchase")
}

func TestQuoteLifecycle(t *testing.T) {
	f := newTradeFixture(t)
	ctx := context.Background()

	client, err := f.partners.SaveClient(ctx, SaveClientInput{Name: "Ferretería López", NIT: "900123"})
	require.NoError(t, err)
	hammer := f.seedProduct(t, "Martillo", "25.50")

	quote, err := f.trade.SaveQuote(ctx, SaveQuoteInput{
		ClientID: client.ID,
		Date:     time.Now(),
		Details:  []DetailInput{{ProductID: hammer.ID, Quantity: 3, UnitPrice: hammer.Price}},
	})
	require.NoError(t, err)
	assert.True(t, quote.Total.Equal(decimal.RequireFromString("76.50")))

	require.NoError(t, f.trade.DisableQuote(ctx, quote.ID))

	listed, _, err := f.trade.ListQuotes(ctx, shared.Filter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, domain.StatusInactive, listed[0].Status)
}

func TestDisableClientKeepsRecord(t *testing.T) {
	f := newTradeFixture(t)
	ctx := context.Background()

	client, err := f.partners.SaveClient(ctx, SaveClientInput{Name: "Ferretería López"})
	require.NoError(t, err)
	require.NoError(t, f.partners.DisableClient(ctx, client.ID))

	listed, total, err := f.partners.ListClients(ctx, shared.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, domain.StatusInactive, listed[0].Status)
}
