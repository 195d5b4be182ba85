package business

import (
	"strings"

	"github.com/ferrisys/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups products within the inventory module
type Category struct {
	shared.BaseEntity
	Name        string
	Description string
	Status      int
}

// Product is a sellable inventory item
type Product struct {
	shared.BaseEntity
	Name        string
	Description string
	CategoryID  *uuid.UUID
	Price       decimal.Decimal
	Stock       int
	Status      int
}

// NewCategory creates an active category
func NewCategory(name, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	return &Category{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: strings.TrimSpace(description),
		Status:      StatusActive,
	}, nil
}

// NewProduct creates an active product
func NewProduct(name string, price decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Price:      price,
		Status:     StatusActive,
	}, nil
}

// Disable marks the category inactive
func (c *Category) Disable() {
	c.Status = StatusInactive
	c.Touch()
}

// Disable marks the product inactive
func (p *Product) Disable() {
	p.Status = StatusInactive
	p.Touch()
}
