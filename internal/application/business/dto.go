package business

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaveClientInput carries client fields; a nil ID creates a new record
type SaveClientInput struct {
	ID      *uuid.UUID
	Name    string
	Contact string
	Phone   string
	Address string
	NIT     string
}

// SaveProviderInput carries provider fields; a nil ID creates a new record
type SaveProviderInput struct {
	ID      *uuid.UUID
	Name    string
	Contact string
	Phone   string
	Address string
	RUC     string
}

// SaveCategoryInput carries category fields; a nil ID creates a new record
type SaveCategoryInput struct {
	ID          *uuid.UUID
	Name        string
	Description string
}

// SaveProductInput carries product fields; a nil ID creates a new record
type SaveProductInput struct {
	ID          *uuid.UUID
	Name        string
	Description string
	CategoryID  *uuid.UUID
	Price       decimal.Decimal
	Stock       int
}

// DetailInput is one line of a purchase or quote
type DetailInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// SavePurchaseInput carries purchase fields; a nil ID creates a new record.
// Details always replace the stored lines wholesale.
type SavePurchaseInput struct {
	ID          *uuid.UUID
	ProviderID  uuid.UUID
	Description string
	Date        time.Time
	Details     []DetailInput
}

// SaveQuoteInput carries quote fields; a nil ID creates a new record
type SaveQuoteInput struct {
	ID          *uuid.UUID
	ClientID    uuid.UUID
	Description string
	Date        time.Time
	Details     []DetailInput
}
