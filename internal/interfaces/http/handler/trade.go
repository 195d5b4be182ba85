package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appbusiness "github.com/ferrisys/backend/internal/application/business"
)

// TradeHandler serves purchases and quotes
type TradeHandler struct {
	BaseHandler
	trade *appbusiness.TradeService
}

// NewTradeHandler creates a trade handler
func NewTradeHandler(trade *appbusiness.TradeService) *TradeHandler {
	return &TradeHandler{trade: trade}
}

type detailRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func toDetailInputs(lines []detailRequest) []appbusiness.DetailInput {
	details := make([]appbusiness.DetailInput, 0, len(lines))
	for _, line := range lines {
		details = append(details, appbusiness.DetailInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	return details
}

type savePurchaseRequest struct {
	ID          *uuid.UUID      `json:"id"`
	ProviderID  uuid.UUID       `json:"provider_id" binding:"required"`
	Description string          `json:"description" binding:"max=500"`
	Date        time.Time       `json:"date"`
	Details     []detailRequest `json:"details" binding:"required,min=1,dive"`
}

// SavePurchase creates or updates a purchase with its detail lines
func (h *TradeHandler) SavePurchase(c *gin.Context) {
	var req savePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid purchase payload")
		return
	}
	purchase, err := h.trade.SavePurchase(c.Request.Context(), appbusiness.SavePurchaseInput{
		ID:          req.ID,
		ProviderID:  req.ProviderID,
		Description: req.Description,
		Date:        req.Date,
		Details:     toDetailInputs(req.Details),
	})
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, purchase)
}

// ListPurchases returns purchases with pagination
func (h *TradeHandler) ListPurchases(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	purchases, total, err := h.trade.ListPurchases(c.Request.Context(), filter)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, purchases, total, filter.Page, filter.PageSize)
}

// DisablePurchase marks a purchase inactive
func (h *TradeHandler) DisablePurchase(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.trade.DisablePurchase(c.Request.Context(), id); err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Purchase disabled"})
}

type saveQuoteRequest struct {
	ID          *uuid.UUID      `json:"id"`
	ClientID    uuid.UUID       `json:"client_id" binding:"required"`
	Description string          `json:"description" binding:"max=500"`
	Date        time.Time       `json:"date"`
	Details     []detailRequest `json:"details" binding:"required,min=1,dive"`
}

// SaveQuote creates or updates a quote with its detail lines
func (h *TradeHandler) SaveQuote(c *gin.Context) {
	var req saveQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid quote payload")
		return
	}
	quote, err := h.trade.SaveQuote(c.Request.Context(), appbusiness.SaveQuoteInput{
		ID:          req.ID,
		ClientID:    req.ClientID,
		Description: req.Description,
		Date:        req.Date,
		Details:     toDetailInputs(req.Details),
	})
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, quote)
}

// ListQuotes returns quotes with pagination
func (h *TradeHandler) ListQuotes(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	quotes, total, err := h.trade.ListQuotes(c.Request.Context(), filter)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, quotes, total, filter.Page, filter.PageSize)
}

// DisableQuote marks a quote inactive
func (h *TradeHandler) DisableQuote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.trade.DisableQuote(c.Request.Context(), id); err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Quote disabled"})
}
