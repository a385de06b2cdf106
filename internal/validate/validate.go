package validate

import (
	"fmt"
	"reflect"
	"strings"

	"fabrika-platform/internal/rbac"

	"github.com/go-playground/validator/v10"
)

// New builds the request-body validator shared by all routes. Field names in
// violation messages follow the json tag, not the Go field name.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// role must come from the closed enumeration.
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return rbac.Valid(fl.Field().String())
	})

	return v
}

// Violations flattens validator errors into the full list of violated field
// rules. One entry per failed rule; callers return them all at once.
func Violations(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"request body is invalid"}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "role":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), strings.Join(rbac.AllRoles(), ", "))
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
