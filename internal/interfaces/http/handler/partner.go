package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appbusiness "github.com/ferrisys/backend/internal/application/business"
)

// PartnerHandler serves clients and providers
type PartnerHandler struct {
	BaseHandler
	partners *appbusiness.PartnerService
}

// NewPartnerHandler creates a partner handler
func NewPartnerHandler(partners *appbusiness.PartnerService) *PartnerHandler {
	return &PartnerHandler{partners: partners}
}

type saveClientRequest struct {
	ID      *uuid.UUID `json:"id"`
	Name    string     `json:"name" binding:"required,max=255"`
	Contact string     `json:"contact" binding:"max=255"`
	Phone   string     `json:"phone" binding:"max=50"`
	Address string     `json:"address" binding:"max=500"`
	NIT     string     `json:"nit" binding:"max=50"`
}

// SaveClient creates or updates a client
func (h *PartnerHandler) SaveClient(c *gin.Context) {
	var req saveClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid client payload")
		return
	}
	client, err := h.partners.SaveClient(c.Request.Context(), appbusiness.SaveClientInput{
		ID:      req.ID,
		Name:    req.Name,
		Contact: req.Contact,
		Phone:   req.Phone,
		Address: req.Address,
		NIT:     req.NIT,
	})
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, client)
}

// ListClients returns clients with pagination
func (h *PartnerHandler) ListClients(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	clients, total, err := h.partners.ListClients(c.Request.Context(), filter)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, clients, total, filter.Page, filter.PageSize)
}

// DisableClient marks a client inactive
func (h *PartnerHandler) DisableClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.partners.DisableClient(c.Request.Context(), id); err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Client disabled"})
}

type saveProviderRequest struct {
	ID      *uuid.UUID `json:"id"`
	Name    string     `json:"name" binding:"required,max=255"`
	Contact string     `json:"contact" binding:"max=255"`
	Phone   string     `json:"phone" binding:"max=50"`
	Address string     `json:"address" binding:"max=500"`
	RUC     string     `json:"ruc" binding:"max=50"`
}

// SaveProvider creates or updates a provider
func (h *PartnerHandler) SaveProvider(c *gin.Context) {
	var req saveProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid provider payload")
		return
	}
	provider, err := h.partners.SaveProvider(c.Request.Context(), appbusiness.SaveProviderInput{
		ID:      req.ID,
		Name:    req.Name,
		Contact: req.Contact,
		Phone:   req.Phone,
		Address: req.Address,
		RUC:     req.RUC,
	})
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, provider)
}

// ListProviders returns providers with pagination
func (h *PartnerHandler) ListProviders(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	providers, total, err := h.partners.ListProviders(c.Request.Context(), filter)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, providers, total, filter.Page, filter.PageSize)
}

// DisableProvider marks a provider inactive
func (h *PartnerHandler) DisableProvider(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.partners.DisableProvider(c.Request.Context(), id); err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Provider disabled"})
}
