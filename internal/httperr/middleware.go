package httperr

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"fabrika-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Abort writes a taxonomy response and stops the chain. Use it from
// middlewares that must short-circuit before inner wrappers run.
func Abort(c *gin.Context, e *Error) {
	c.AbortWithStatusJSON(e.Status(), body(e, false))
}

// Translate maps errors attached by handlers (via c.Error) into taxonomy
// responses. Install it globally so it wraps every route; it only acts when
// the handler finished with errors and nothing was written yet.
func Translate(isProd bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		e := From(c.Errors.Last().Err)
		if e.Kind == KindInternal || e.Kind == KindUnavailable {
			logger.FromGin(c).Error("request failed", "err", e.Err)
		}
		c.JSON(e.Status(), body(e, !isProd))
	}
}

// Recovery converts handler panics into a single taxonomy 500. The stack is
// logged server-side always and echoed to the client only outside production.
func Recovery(isProd bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		stack := debug.Stack()
		logger.FromGin(c).Error("panic recovered", "panic", fmt.Sprint(rec))

		resp := gin.H{"success": false, "message": "internal server error"}
		if !isProd {
			resp["error"] = fmt.Sprint(rec)
			resp["stack"] = string(stack)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
	})
}

func body(e *Error, exposeCause bool) gin.H {
	resp := gin.H{"success": false, "message": e.Message}
	if len(e.Violations) > 0 {
		resp["errors"] = e.Violations
	}
	if exposeCause && e.Err != nil {
		resp["error"] = e.Err.Error()
	}
	return resp
}
