package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appbusiness "github.com/ferrisys/backend/internal/application/business"
)

// InventoryHandler serves categories and products
type InventoryHandler struct {
	BaseHandler
	inventory *appbusiness.InventoryService
}

// NewInventoryHandler creates an inventory handler
func NewInventoryHandler(inventory *appbusiness.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

type saveCategoryRequest struct {
	ID          *uuid.UUID `json:"id"`
	Name        string     `json:"name" binding:"required,max=255"`
	Description string     `json:"description" binding:"max=500"`
}

// SaveCategory creates or updates a category
func (h *InventoryHandler) SaveCategory(c *gin.Context) {
	var req saveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid category payload")
		return
	}
	category, err := h.inventory.SaveCategory(c.Request.Context(), appbusiness.SaveCategoryInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, category)
}

// ListCategories returns categories with pagination
func (h *InventoryHandler) ListCategories(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	categories, total, err := h.inventory.ListCategories(c.Request.Context(), filter)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, categories, total, filter.Page, filter.PageSize)
}

// DisableCategory marks a category inactive
func (h *InventoryHandler) DisableCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.inventory.DisableCategory(c.Request.Context(), id); err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Category disabled"})
}

type saveProductRequest struct {
	ID          *uuid.UUID      `json:"id"`
	Name        string          `json:"name" binding:"required,max=255"`
	Description string          `json:"description" binding:"max=500"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" binding:"min=0"`
}

// SaveProduct creates or updates a product
func (h *InventoryHandler) SaveProduct(c *gin.Context) {
	var req saveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid product payload")
		return
	}
	product, err := h.inventory.SaveProduct(c.Request.Context(), appbusiness.SaveProductInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, product)
}

// ListProducts returns products with pagination
func (h *InventoryHandler) ListProducts(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	products, total, err := h.inventory.ListProducts(c.Request.Context(), filter)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, products, total, filter.Page, filter.PageSize)
}

// DisableProduct marks a product inactive
func (h *InventoryHandler) DisableProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.inventory.DisableProduct(c.Request.Context(), id); err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Product disabled"})
}
