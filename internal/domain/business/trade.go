package business

import (
	"time"

	"github.com/ferrisys/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase is an order placed with a provider
type Purchase struct {
	shared.BaseEntity
	ProviderID  uuid.UUID
	Description string
	Date        time.Time
	Total       decimal.Decimal
	Status      int
	Details     []PurchaseDetail
}

// PurchaseDetail is a single line of a purchase
type PurchaseDetail struct {
	shared.BaseEntity
	PurchaseID uuid.UUID
	ProductID  uuid.UUID
	Quantity   int
	UnitPrice  decimal.Decimal
}

// Quote is a priced offer prepared for a client
type Quote struct {
	shared.BaseEntity
	ClientID    uuid.UUID
	Description string
	Date        time.Time
	Total       decimal.Decimal
	Status      int
	Details     []QuoteDetail
}

// QuoteDetail is a single line of a quote
type QuoteDetail struct {
	shared.BaseEntity
	QuoteID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// NewPurchase creates an active purchase for a provider
func NewPurchase(providerID uuid.UUID, date time.Time) (*Purchase, error) {
	if providerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROVIDER", "Purchase requires a provider")
	}
	return &Purchase{
		BaseEntity: shared.NewBaseEntity(),
		ProviderID: providerID,
		Date:       date,
		Total:      decimal.Zero,
		Status:     StatusActive,
		Details:    make([]PurchaseDetail, 0),
	}, nil
}

// NewQuote creates an active quote for a client
func NewQuote(clientID uuid.UUID, date time.Time) (*Quote, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Quote requires a client")
	}
	return &Quote{
		BaseEntity: shared.NewBaseEntity(),
		ClientID:   clientID,
		Date:       date,
		Total:      decimal.Zero,
		Status:     StatusActive,
		Details:    make([]QuoteDetail, 0),
	}, nil
}

// AddDetail appends a line and recalculates the total
func (p *Purchase) AddDetail(productID uuid.UUID, quantity int, unitPrice decimal.Decimal) error {
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Detail requires a product")
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Detail quantity must be positive")
	}
	p.Details = append(p.Details, PurchaseDetail{
		BaseEntity: shared.NewBaseEntity(),
		PurchaseID: p.ID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
	})
	p.recalculate()
	return nil
}

// AddDetail appends a line and recalculates the total
func (q *Quote) AddDetail(productID uuid.UUID, quantity int, unitPrice decimal.Decimal) error {
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Detail requires a product")
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Detail quantity must be positive")
	}
	q.Details = append(q.Details, QuoteDetail{
		BaseEntity: shared.NewBaseEntity(),
		QuoteID:    q.ID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
	})
	q.recalculate()
	return nil
}

func (p *Purchase) recalculate() {
	total := decimal.Zero
	for _, d := range p.Details {
		total = total.Add(d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity))))
	}
	p.Total = total
	p.Touch()
}

func (q *Quote) recalculate() {
	total := decimal.Zero
	for _, d := range q.Details {
		total = total.Add(d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity))))
	}
	q.Total = total
	q.Touch()
}

// Disable marks the purchase inactive
func (p *Purchase) Disable() {
	p.Status = StatusInactive
	p.Touch()
}

// Disable marks the quote inactive
func (q *Quote) Disable() {
	q.Status = StatusInactive
	q.Touch()
}
