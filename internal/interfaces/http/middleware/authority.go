package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ferrisys/backend/internal/application/entitlement"
	"github.com/ferrisys/backend/internal/interfaces/http/dto"
)

// RequireAuthority guards a route behind the named authorities. The request
// passes when the principal holds at least one of them; an unauthenticated
// request gets 401, an authenticated one without a match gets 403.
func RequireAuthority(names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authn, ok := GetAuthentication(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse("UNAUTHORIZED", "Authentication required"))
			return
		}
		if !authn.Authorities.HasAny(names...) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse("FORBIDDEN", "Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// RequireModule guards a route behind a feature module. The module must be
// entitled for the acting principal at request time, and the principal must
// hold the module authority or be an administrator. Re-evaluating here means
// a license pulled mid-session takes effect on the next request, not at the
// next login.
func RequireModule(evaluator *entitlement.Evaluator, slug string) gin.HandlerFunc {
	moduleAuthority := entitlement.ModuleAuthority(slug)
	return func(c *gin.Context) {
		authn, ok := GetAuthentication(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse("UNAUTHORIZED", "Authentication required"))
			return
		}

		enabled, err := evaluator.Enabled(c.Request.Context(), authn.PrincipalID, slug)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse("INTERNAL_ERROR", "Internal server error"))
			return
		}
		if !enabled {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse("MODULE_DISABLED", "Module is not available"))
			return
		}

		if !authn.Authorities.Has(moduleAuthority) && !authn.Authorities.Has(entitlement.AuthorityAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse("FORBIDDEN", "Insufficient permissions"))
			return
		}
		c.Next()
	}
}
