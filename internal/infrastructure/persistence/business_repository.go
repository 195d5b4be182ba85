package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ferrisys/backend/internal/domain/business"
	"github.com/ferrisys/backend/internal/domain/shared"
	"github.com/ferrisys/backend/internal/infrastructure/persistence/models"
)

func applySearch(query *gorm.DB, filter shared.Filter, columns ...string) *gorm.DB {
	if filter.Search == "" {
		return query
	}
	pattern := "%" + filter.Search + "%"
	where := ""
	args := make([]interface{}, 0, len(columns))
	for i, col := range columns {
		if i > 0 {
			where += " OR "
		}
		where += col + " LIKE ?"
		args = append(args, pattern)
	}
	return query.Where(where, args...)
}

func paginate[M any](ctx context.Context, db *gorm.DB, filter shared.Filter, searchColumns []string, sortFields map[string]bool, out *[]M) (int64, error) {
	filter = filter.Normalize()

	var model M
	query := db.WithContext(ctx).Model(&model)
	query = applySearch(query, filter, searchColumns...)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}

	sortField := ValidateSortField(filter.OrderBy, sortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	err := query.
		Order(sortField + " " + sortOrder).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(out).Error
	return total, err
}

// GormClientRepository implements business.ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// Save upserts a client
func (r *GormClientRepository) Save(ctx context.Context, client *business.Client) error {
	return r.db.WithContext(ctx).Save(models.ClientModelFromDomain(client)).Error
}

// FindByID finds a client by ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*business.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns clients matching the filter
func (r *GormClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]business.Client, int64, error) {
	var clientModels []models.ClientModel
	total, err := paginate(ctx, r.db, filter, []string{"name", "contact", "nit"}, ClientSortFields, &clientModels)
	if err != nil {
		return nil, 0, err
	}
	clients := make([]business.Client, len(clientModels))
	for i := range clientModels {
		clients[i] = *clientModels[i].ToDomain()
	}
	return clients, total, nil
}

// GormProviderRepository implements business.ProviderRepository using GORM
type GormProviderRepository struct {
	db *gorm.DB
}

// NewGormProviderRepository creates a new GormProviderRepository
func NewGormProviderRepository(db *gorm.DB) *GormProviderRepository {
	return &GormProviderRepository{db: db}
}

// Save upserts a provider
func (r *GormProviderRepository) Save(ctx context.Context, provider *business.Provider) error {
	return r.db.WithContext(ctx).Save(models.ProviderModelFromDomain(provider)).Error
}

// FindByID finds a provider by ID
func (r *GormProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*business.Provider, error) {
	var model models.ProviderModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns providers matching the filter
func (r *GormProviderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]business.Provider, int64, error) {
	var providerModels []models.ProviderModel
	total, err := paginate(ctx, r.db, filter, []string{"name", "contact", "ruc"}, ProviderSortFields, &providerModels)
	if err != nil {
		return nil, 0, err
	}
	providers := make([]business.Provider, len(providerModels))
	for i := range providerModels {
		providers[i] = *providerModels[i].ToDomain()
	}
	return providers, total, nil
}

// GormCategoryRepository implements business.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Save upserts a category
func (r *GormCategoryRepository) Save(ctx context.Context, category *business.Category) error {
	return r.db.WithContext(ctx).Save(models.CategoryModelFromDomain(category)).Error
}

// FindByID finds a category by ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*business.Category, error) {
	var model models.CategoryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns categories matching the filter
func (r *GormCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]business.Category, int64, error) {
	var categoryModels []models.CategoryModel
	total, err := paginate(ctx, r.db, filter, []string{"name"}, CategorySortFields, &categoryModels)
	if err != nil {
		return nil, 0, err
	}
	categories := make([]business.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = *categoryModels[i].ToDomain()
	}
	return categories, total, nil
}

// GormProductRepository implements business.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Save upserts a product
func (r *GormProductRepository) Save(ctx context.Context, product *business.Product) error {
	return r.db.WithContext(ctx).Save(models.ProductModelFromDomain(product)).Error
}

// FindByID finds a product by ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*business.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns products matching the filter
func (r *GormProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]business.Product, int64, error) {
	var productModels []models.ProductModel
	total, err := paginate(ctx, r.db, filter, []string{"name", "description"}, ProductSortFields, &productModels)
	if err != nil {
		return nil, 0, err
	}
	products := make([]business.Product, len(productModels))
	for i := range productModels {
		products[i] = *productModels[i].ToDomain()
	}
	return products, total, nil
}

// GormPurchaseRepository implements business.PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// Save upserts a purchase, replacing its detail lines
func (r *GormPurchaseRepository) Save(ctx context.Context, purchase *business.Purchase) error {
	model := models.PurchaseModelFromDomain(purchase)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_id = ?", purchase.ID).Delete(&models.PurchaseDetailModel{}).Error; err != nil {
			return err
		}
		return tx.Save(model).Error
	})
}

// FindByID finds a purchase with its detail lines
func (r *GormPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*business.Purchase, error) {
	var model models.PurchaseModel
	if err := r.db.WithContext(ctx).Preload("Details").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns purchases matching the filter, details included
func (r *GormPurchaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]business.Purchase, int64, error) {
	filter = filter.Normalize()

	query := r.db.WithContext(ctx).Model(&models.PurchaseModel{})
	query = applySearch(query, filter, "description")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := ValidateSortField(filter.OrderBy, PurchaseSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	var purchaseModels []models.PurchaseModel
	if err := query.
		Preload("Details").
		Order(sortField + " " + sortOrder).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&purchaseModels).Error; err != nil {
		return nil, 0, err
	}

	purchases := make([]business.Purchase, len(purchaseModels))
	for i := range purchaseModels {
		purchases[i] = *purchaseModels[i].ToDomain()
	}
	return purchases, total, nil
}

// GormQuoteRepository implements business.QuoteRepository using GORM
type GormQuoteRepository struct {
	db *gorm.DB
}

// NewGormQuoteRepository creates a new GormQuoteRepository
func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

// Save upserts a quote, replacing its detail lines
func (r *GormQuoteRepository) Save(ctx context.Context, quote *business.Quote) error {
	model := models.QuoteModelFromDomain(quote)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quote_id = ?", quote.ID).Delete(&models.QuoteDetailModel{}).Error; err != nil {
			return err
		}
		return tx.Save(model).Error
	})
}

// FindByID finds a quote with its detail lines
func (r *GormQuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*business.Quote, error) {
	var model models.QuoteModel
	if err := r.db.WithContext(ctx).Preload("Details").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns quotes matching the filter, details included
func (r *GormQuoteRepository) FindAll(ctx context.Context, filter shared.Filter) ([]business.Quote, int64, error) {
	filter = filter.Normalize()

	query := r.db.WithContext(ctx).Model(&models.QuoteModel{})
	query = applySearch(query, filter, "description")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := ValidateSortField(filter.OrderBy, QuoteSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	var quoteModels []models.QuoteModel
	if err := query.
		Preload("Details").
		Order(sortField + " " + sortOrder).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&quoteModels).Error; err != nil {
		return nil, 0, err
	}

	quotes := make([]business.Quote, len(quoteModels))
	for i := range quoteModels {
		quotes[i] = *quoteModels[i].ToDomain()
	}
	return quotes, total, nil
}

var (
	_ business.ClientRepository   = (*GormClientRepository)(nil)
	_ business.ProviderRepository = (*GormProviderRepository)(nil)
	_ business.CategoryRepository = (*GormCategoryRepository)(nil)
	_ business.ProductRepository  = (*GormProductRepository)(nil)
	_ business.PurchaseRepository = (*GormPurchaseRepository)(nil)
	_ business.QuoteRepository    = (*GormQuoteRepository)(nil)
)
