package rbac

import (
	"fabrika-platform/internal/auth"
	"fabrika-platform/internal/httperr"

	"github.com/gin-gonic/gin"
)

// RequireAnyRole allows access if the caller holds any of the provided roles.
// Rules:
// - superadmin bypasses all allow-lists
// - no identity in context is an authentication failure (401), a known
//   identity outside the allow-list is an authorization failure (403)
func RequireAnyRole(allowed ...string) gin.HandlerFunc {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		id, err := auth.IdentityFrom(c.Request.Context())
		if err != nil || id.Role == "" {
			httperr.Abort(c, httperr.AuthMissing("authentication required"))
			return
		}

		if IsSuperAdmin(id.Role) {
			c.Next()
			return
		}

		if _, ok := allowedSet[id.Role]; !ok {
			httperr.Abort(c, httperr.Forbidden("insufficient role"))
			return
		}
		c.Next()
	}
}
