package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appidentity "github.com/ferrisys/backend/internal/application/identity"
	"github.com/ferrisys/backend/internal/interfaces/http/dto"
	"github.com/ferrisys/backend/internal/interfaces/http/middleware"
)

// AuthHandler serves login, registration and logout
type AuthHandler struct {
	BaseHandler
	auth *appidentity.AuthService
}

// NewAuthHandler creates an auth handler
func NewAuthHandler(auth *appidentity.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"omitempty,email"`
	FullName string `json:"full_name" binding:"max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// Login authenticates a user and returns an access token
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Username and password are required")
		return
	}

	result, err := h.auth.Login(c.Request.Context(), appidentity.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, result)
}

// Register creates a new account
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid registration payload")
		return
	}

	user, err := h.auth.Register(c.Request.Context(), appidentity.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Created(c, user)
}

// Logout revokes the current access token
func (h *AuthHandler) Logout(c *gin.Context) {
	authn, ok := middleware.GetAuthentication(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("UNAUTHORIZED", "Authentication required"))
		return
	}
	if err := h.auth.Logout(c.Request.Context(), authn.TokenID, authn.ExpiresAt); err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Logged out"})
}
