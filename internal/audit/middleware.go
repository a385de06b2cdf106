package audit

import (
	"net/http"

	"fabrika-platform/internal/auth"
	"fabrika-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Middleware records one audit event per entity request, after the handler
// chain completes. It runs outside the session middleware so it can observe
// the final status; events are only written when a caller identity exists
// (rejected anonymous requests carry no tenant to attribute them to).
// Append failures are logged and never affect the response.
func Middleware(svc *Service, entity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		id, err := auth.IdentityFrom(c.Request.Context())
		if err != nil {
			return
		}

		e := Event{
			CompanyID:   id.CompanyID,
			ActorUserID: id.UserID,
			ActorRole:   id.Role,
			Entity:      entity,
			Action:      actionForMethod(c.Request.Method),
			Method:      c.Request.Method,
			Path:        c.FullPath(),
			Status:      c.Writer.Status(),
			IPAddress:   c.ClientIP(),
		}
		if err := svc.Append(c.Request.Context(), e); err != nil {
			logger.FromGin(c).Warn("audit append failed", "entity", entity, "err", err)
		}
	}
}

func actionForMethod(method string) string {
	switch method {
	case http.MethodPost:
		return ActionCreate
	case http.MethodPut, http.MethodPatch:
		return ActionUpdate
	case http.MethodDelete:
		return ActionDelete
	default:
		return ActionRead
	}
}
