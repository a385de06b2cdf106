package auth

import (
	"context"
	"time"

	"fabrika-platform/internal/httperr"
	"fabrika-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Refresher renews a session from a refresh token. Implementations must
// compare the presented token to the last value stored for the subject and
// persist the replacement before returning.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (Identity, TokenPair, error)
}

// RequireSession verifies the access-token cookie and injects the caller
// identity into the request context. When the access token is expired and a
// refresh token is present, it renews the pair transparently and attaches
// the new cookies to the response; the caller sees no interruption.
//
// It does not perform RBAC checks; those belong to internal/rbac.
func RequireSession(m *Manager, sessions Refresher, cookies CookieWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		access, refresh := TokensFromRequest(c.Request)
		if access == "" {
			httperr.Abort(c, httperr.AuthMissing("authentication required"))
			return
		}

		claims, err := m.Verify(access, TokenTypeAccess, time.Now())
		switch {
		case err == nil:
			proceed(c, claims.Identity())
			return

		case err == ErrTokenExpired && refresh != "" && sessions != nil:
			id, pair, rerr := sessions.Refresh(c.Request.Context(), refresh)
			if rerr != nil {
				logger.FromGin(c).Debug("session renewal failed", "err", rerr)
				httperr.Abort(c, httperr.AuthExpired("session expired, sign in again"))
				return
			}
			cookies.SetSession(c, pair)
			proceed(c, id)
			return

		case err == ErrTokenExpired:
			httperr.Abort(c, httperr.AuthExpired("session expired, sign in again"))
			return

		default:
			httperr.Abort(c, httperr.AuthInvalid("invalid session"))
			return
		}
	}
}

func proceed(c *gin.Context, id Identity) {
	c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), id))

	// Also store on gin context for the request logger.
	c.Set("caller_id", id.UserID)
	c.Set("company_id", id.CompanyID)

	c.Next()
}
