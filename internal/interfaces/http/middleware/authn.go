package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ferrisys/backend/internal/application/entitlement"
	"github.com/ferrisys/backend/internal/domain/identity"
	"github.com/ferrisys/backend/internal/domain/shared"
	"github.com/ferrisys/backend/internal/infrastructure/auth"
	"github.com/ferrisys/backend/internal/interfaces/http/dto"
)

const (
	authenticationKey = "authentication"
	authHeaderKey     = "Authorization"
	bearerPrefix      = "Bearer "
)

// Authentication is the resolved security context attached to a request.
// It is built once per request; routes behind no guard may run without it.
type Authentication struct {
	PrincipalID uuid.UUID
	Username    string
	Authorities entitlement.AuthoritySet
	TokenID     string
	ExpiresAt   time.Time
}

// HasAuthority reports whether the principal holds the named authority
func (a *Authentication) HasAuthority(name string) bool {
	return a.Authorities.Has(name)
}

// GetAuthentication returns the authentication attached to the request, if any
func GetAuthentication(c *gin.Context) (*Authentication, bool) {
	v, ok := c.Get(authenticationKey)
	if !ok {
		return nil, false
	}
	a, ok := v.(*Authentication)
	return a, ok
}

// AuthenticationConfig wires the authentication middleware
type AuthenticationConfig struct {
	Tokens    *auth.TokenService
	Users     identity.UserRepository
	Composer  *entitlement.Composer
	Blacklist auth.TokenBlacklist // optional
	Logger    *zap.Logger
}

// Authentication resolves the bearer token on each request and attaches the
// security context. Requests without credentials pass through unauthenticated;
// route guards decide whether that is acceptable. A present but bad token is
// always rejected: expired tokens with 401, anything else malformed with 400.
func (cfg AuthenticationConfig) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Preflight requests never carry credentials
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		// A prior middleware instance already resolved this request
		if _, ok := GetAuthentication(c); ok {
			c.Next()
			return
		}

		header := c.GetHeader(authHeaderKey)
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(header, bearerPrefix)
		claims, err := cfg.Tokens.Validate(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					dto.NewErrorResponse("TOKEN_EXPIRED", "Token expired"))
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse("INVALID_TOKEN", "Invalid token"))
			return
		}

		if cfg.Blacklist != nil {
			revoked, err := cfg.Blacklist.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				// Blacklist outage must not lock everyone out
				cfg.Logger.Warn("token blacklist check failed", zap.Error(err))
			} else if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					dto.NewErrorResponse("TOKEN_REVOKED", "Token has been revoked"))
				return
			}
		}

		user, err := cfg.Users.FindByUsername(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					dto.NewErrorResponse("UNAUTHORIZED", "Authentication failed"))
				return
			}
			cfg.Logger.Error("principal lookup failed",
				zap.String("username", claims.Subject),
				zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse("INTERNAL_ERROR", "Internal server error"))
			return
		}
		if !user.IsActive() {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse("UNAUTHORIZED", "Authentication failed"))
			return
		}

		authorities, err := cfg.Composer.Compose(c.Request.Context(), user)
		if err != nil {
			cfg.Logger.Error("authority composition failed",
				zap.String("username", user.Username),
				zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse("INTERNAL_ERROR", "Internal server error"))
			return
		}

		c.Set(authenticationKey, &Authentication{
			PrincipalID: user.ID,
			Username:    user.Username,
			Authorities: authorities,
			TokenID:     claims.ID,
			ExpiresAt:   claims.ExpiresAt.Time,
		})
		c.Next()
	}
}
