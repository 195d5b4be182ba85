package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ferrisys/backend/internal/domain/business"
)

// ClientModel is the GORM model for clients
type ClientModel struct {
	BaseModel
	Name    string `gorm:"size:255;not null;index"`
	Contact string `gorm:"size:255"`
	Phone   string `gorm:"size:50"`
	Address string `gorm:"size:500"`
	NIT     string `gorm:"size:50"`
	Status  int    `gorm:"not null;default:1;index"`
}

// TableName specifies the table name
func (ClientModel) TableName() string { return "clients" }

// ToDomain converts the model to a domain client
func (m *ClientModel) ToDomain() *business.Client {
	return &business.Client{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Contact:    m.Contact,
		Phone:      m.Phone,
		Address:    m.Address,
		NIT:        m.NIT,
		Status:     m.Status,
	}
}

// ClientModelFromDomain converts a domain client to the model
func ClientModelFromDomain(c *business.Client) *ClientModel {
	m := &ClientModel{
		Name:    c.Name,
		Contact: c.Contact,
		Phone:   c.Phone,
		Address: c.Address,
		NIT:     c.NIT,
		Status:  c.Status,
	}
	m.FromDomain(c.BaseEntity)
	return m
}

// ProviderModel is the GORM model for providers
type ProviderModel struct {
	BaseModel
	Name    string `gorm:"size:255;not null;index"`
	Contact string `gorm:"size:255"`
	Phone   string `gorm:"size:50"`
	Address string `gorm:"size:500"`
	RUC     string `gorm:"size:50"`
	Status  int    `gorm:"not null;default:1;index"`
}

// TableName specifies the table name
func (ProviderModel) TableName() string { return "providers" }

// ToDomain converts the model to a domain provider
func (m *ProviderModel) ToDomain() *business.Provider {
	return &business.Provider{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Contact:    m.Contact,
		Phone:      m.Phone,
		Address:    m.Address,
		RUC:        m.RUC,
		Status:     m.Status,
	}
}

// ProviderModelFromDomain converts a domain provider to the model
func ProviderModelFromDomain(p *business.Provider) *ProviderModel {
	m := &ProviderModel{
		Name:    p.Name,
		Contact: p.Contact,
		Phone:   p.Phone,
		Address: p.Address,
		RUC:     p.RUC,
		Status:  p.Status,
	}
	m.FromDomain(p.BaseEntity)
	return m
}

// CategoryModel is the GORM model for product categories
type CategoryModel struct {
	BaseModel
	Name        string `gorm:"size:255;not null;index"`
	Description string `gorm:"size:500"`
	Status      int    `gorm:"not null;default:1"`
}

// TableName specifies the table name
func (CategoryModel) TableName() string { return "categories" }

// ToDomain converts the model to a domain category
func (m *CategoryModel) ToDomain() *business.Category {
	return &business.Category{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		Status:      m.Status,
	}
}

// CategoryModelFromDomain converts a domain category to the model
func CategoryModelFromDomain(c *business.Category) *CategoryModel {
	m := &CategoryModel{
		Name:        c.Name,
		Description: c.Description,
		Status:      c.Status,
	}
	m.FromDomain(c.BaseEntity)
	return m
}

// ProductModel is the GORM model for products
type ProductModel struct {
	BaseModel
	Name        string          `gorm:"size:255;not null;index"`
	Description string          `gorm:"size:500"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	Status      int             `gorm:"not null;default:1;index"`
}

// TableName specifies the table name
func (ProductModel) TableName() string { return "products" }

// ToDomain converts the model to a domain product
func (m *ProductModel) ToDomain() *business.Product {
	return &business.Product{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		CategoryID:  m.CategoryID,
		Price:       m.Price,
		Stock:       m.Stock,
		Status:      m.Status,
	}
}

// ProductModelFromDomain converts a domain product to the model
func ProductModelFromDomain(p *business.Product) *ProductModel {
	m := &ProductModel{
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		Price:       p.Price,
		Stock:       p.Stock,
		Status:      p.Status,
	}
	m.FromDomain(p.BaseEntity)
	return m
}

// PurchaseModel is the GORM model for purchases
type PurchaseModel struct {
	BaseModel
	ProviderID  uuid.UUID             `gorm:"type:uuid;not null;index"`
	Description string                `gorm:"size:500"`
	Date        time.Time             `gorm:"not null"`
	Total       decimal.Decimal       `gorm:"type:decimal(12,2);not null"`
	Status      int                   `gorm:"not null;default:1;index"`
	Details     []PurchaseDetailModel `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (PurchaseModel) TableName() string { return "purchases" }

// PurchaseDetailModel is the GORM model for purchase lines
type PurchaseDetailModel struct {
	BaseModel
	PurchaseID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName specifies the table name
func (PurchaseDetailModel) TableName() string { return "purchase_details" }

// ToDomain converts the model to a domain purchase
func (m *PurchaseModel) ToDomain() *business.Purchase {
	details := make([]business.PurchaseDetail, len(m.Details))
	for i, d := range m.Details {
		details[i] = business.PurchaseDetail{
			BaseEntity: d.BaseModel.ToDomain(),
			PurchaseID: d.PurchaseID,
			ProductID:  d.ProductID,
			Quantity:   d.Quantity,
			UnitPrice:  d.UnitPrice,
		}
	}
	return &business.Purchase{
		BaseEntity:  m.BaseModel.ToDomain(),
		ProviderID:  m.ProviderID,
		Description: m.Description,
		Date:        m.Date,
		Total:       m.Total,
		Status:      m.Status,
		Details:     details,
	}
}

// PurchaseModelFromDomain converts a domain purchase to the model
func PurchaseModelFromDomain(p *business.Purchase) *PurchaseModel {
	m := &PurchaseModel{
		ProviderID:  p.ProviderID,
		Description: p.Description,
		Date:        p.Date,
		Total:       p.Total,
		Status:      p.Status,
	}
	m.FromDomain(p.BaseEntity)
	m.Details = make([]PurchaseDetailModel, len(p.Details))
	for i, d := range p.Details {
		dm := PurchaseDetailModel{
			PurchaseID: d.PurchaseID,
			ProductID:  d.ProductID,
			Quantity:   d.Quantity,
			UnitPrice:  d.UnitPrice,
		}
		dm.FromDomain(d.BaseEntity)
		m.Details[i] = dm
	}
	return m
}

// QuoteModel is the GORM model for quotes
type QuoteModel struct {
	BaseModel
	ClientID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	Description string            `gorm:"size:500"`
	Date        time.Time         `gorm:"not null"`
	Total       decimal.Decimal   `gorm:"type:decimal(12,2);not null"`
	Status      int               `gorm:"not null;default:1;index"`
	Details     []QuoteDetailModel `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (QuoteModel) TableName() string { return "quotes" }

// QuoteDetailModel is the GORM model for quote lines
type QuoteDetailModel struct {
	BaseModel
	QuoteID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName specifies the table name
func (QuoteDetailModel) TableName() string { return "quote_details" }

// ToDomain converts the model to a domain quote
func (m *QuoteModel) ToDomain() *business.Quote {
	details := make([]business.QuoteDetail, len(m.Details))
	for i, d := range m.Details {
		details[i] = business.QuoteDetail{
			BaseEntity: d.BaseModel.ToDomain(),
			QuoteID:    d.QuoteID,
			ProductID:  d.ProductID,
			Quantity:   d.Quantity,
			UnitPrice:  d.UnitPrice,
		}
	}
	return &business.Quote{
		BaseEntity:  m.BaseModel.ToDomain(),
		ClientID:    m.ClientID,
		Description: m.Description,
		Date:        m.Date,
		Total:       m.Total,
		Status:      m.Status,
		Details:     details,
	}
}

// QuoteModelFromDomain converts a domain quote to the model
func QuoteModelFromDomain(q *business.Quote) *QuoteModel {
	m := &QuoteModel{
		ClientID:    q.ClientID,
		Description: q.Description,
		Date:        q.Date,
		Total:       q.Total,
		Status:      q.Status,
	}
	m.FromDomain(q.BaseEntity)
	m.Details = make([]QuoteDetailModel, len(q.Details))
	for i, d := range q.Details {
		dm := QuoteDetailModel{
			QuoteID:   d.QuoteID,
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
		}
		dm.FromDomain(d.BaseEntity)
		m.Details[i] = dm
	}
	return m
}
