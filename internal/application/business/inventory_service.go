package business

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ferrisys/backend/internal/domain/business"
	"github.com/ferrisys/backend/internal/domain/shared"
)

// InventoryService manages categories and products
type InventoryService struct {
	categories business.CategoryRepository
	products   business.ProductRepository
	logger     *zap.Logger
}

// NewInventoryService creates an inventory service
func NewInventoryService(
	categories business.CategoryRepository,
	products business.ProductRepository,
	logger *zap.Logger,
) *InventoryService {
	return &InventoryService{categories: categories, products: products, logger: logger}
}

// SaveCategory creates or updates a category
func (s *InventoryService) SaveCategory(ctx context.Context, input SaveCategoryInput) (*business.Category, error) {
	var category *business.Category
	if input.ID != nil {
		existing, err := s.categories.FindByID(ctx, *input.ID)
		if err != nil {
			return nil, err
		}
		category = existing
		category.Name = input.Name
		category.Touch()
	} else {
		created, err := business.NewCategory(input.Name, input.Description)
		if err != nil {
			return nil, err
		}
		category = created
	}
	category.Description = input.Description

	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns categories matching the filter
func (s *InventoryService) ListCategories(ctx context.Context, filter shared.Filter) ([]business.Category, int64, error) {
	return s.categories.FindAll(ctx, filter)
}

// DisableCategory marks the category inactive
func (s *InventoryService) DisableCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	category.Disable()
	return s.categories.Save(ctx, category)
}

// SaveProduct creates or updates a product. The referenced category, when
// present, must exist.
func (s *InventoryService) SaveProduct(ctx context.Context, input SaveProductInput) (*business.Product, error) {
	if input.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	var product *business.Product
	if input.ID != nil {
		existing, err := s.products.FindByID(ctx, *input.ID)
		if err != nil {
			return nil, err
		}
		product = existing
		product.Name = input.Name
		product.Touch()
	} else {
		created, err := business.NewProduct(input.Name, input.Price)
		if err != nil {
			return nil, err
		}
		product = created
	}

	product.Description = input.Description
	product.CategoryID = input.CategoryID
	product.Price = input.Price
	product.Stock = input.Stock

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts returns products matching the filter
func (s *InventoryService) ListProducts(ctx context.Context, filter shared.Filter) ([]business.Product, int64, error) {
	return s.products.FindAll(ctx, filter)
}

// DisableProduct marks the product inactive
func (s *InventoryService) DisableProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	product.Disable()
	if err := s.products.Save(ctx, product); err != nil {
		return err
	}
	s.logger.Info("product disabled", zap.String("product_id", id.String()))
	return nil
}
