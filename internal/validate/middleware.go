package validate

import (
	"errors"
	"io"

	"fabrika-platform/internal/httperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const boundKey = "validate.bound"

// Bind returns middleware that decodes the JSON body into a fresh T and
// validates it against the struct's declared rules. On any violation it
// short-circuits with the aggregated list; the wrapped handler never runs
// with an invalid body. The bound value is stored for Bound[T].
func Bind[T any](v *validator.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := new(T)
		if err := c.ShouldBindJSON(req); err != nil {
			if errors.Is(err, io.EOF) {
				httperr.Abort(c, httperr.Validation([]string{"request body is required"}))
				return
			}
			httperr.Abort(c, httperr.Validation([]string{"request body must be valid JSON"}))
			return
		}

		if err := v.Struct(req); err != nil {
			httperr.Abort(c, httperr.Validation(Violations(err)))
			return
		}

		c.Set(boundKey, req)
		c.Next()
	}
}

// Bound returns the body bound by the matching Bind[T] middleware. Calling
// it on a route without that middleware is a programming error.
func Bound[T any](c *gin.Context) *T {
	v, ok := c.Get(boundKey)
	if !ok {
		panic("validate: no bound body on this route")
	}
	return v.(*T)
}
