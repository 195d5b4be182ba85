package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ferrisys/backend/internal/domain/shared"
	"github.com/ferrisys/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common response helpers
type BaseHandler struct{}

// Success sends a 200 response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a 200 response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// BadRequest sends a 400 response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse("BAD_REQUEST", message))
}

// DomainError maps a service error to the appropriate status code
func (h *BaseHandler) DomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("NOT_FOUND", "Resource not found"))
	case errors.Is(err, shared.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("INVALID_CREDENTIALS", "Invalid username or password"))
	case errors.Is(err, shared.ErrAccountDeactivated):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("ACCOUNT_DEACTIVATED", "Account has been deactivated"))
	default:
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(domainErr.Code, domainErr.Message))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("INTERNAL_ERROR", "Internal server error"))
	}
}

// parseID parses the :id path parameter
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("BAD_REQUEST", "Invalid ID"))
		return uuid.Nil, false
	}
	return id, true
}

// parseFilter reads pagination and search parameters from the query string
func parseFilter(c *gin.Context) (shared.Filter, bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("BAD_REQUEST", "Invalid query parameters"))
		return shared.Filter{}, false
	}
	filter := shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}
	return filter.Normalize(), true
}
