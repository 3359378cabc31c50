package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// requestValidator plugs go-playground/validator into echo's c.Validate.
// Messages name fields by their json tag so clients see the names they sent.
type requestValidator struct {
	v *validator.Validate
}

// NewValidator returns the validator assigned to echo.Echo.Validator.
func NewValidator() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &requestValidator{v: v}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// Validate reports every failing field of i in one error, "a is required; b is required".
func (rv *requestValidator) Validate(i any) error {
	err := rv.v.Struct(i)
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}

	problems := make([]string, len(fields))
	for n, fe := range fields {
		problems[n] = describe(fe)
	}
	return errors.New(strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return fe.Field() + " is required"
	}
	return fe.Field() + " is invalid (" + fe.Tag() + ")"
}
