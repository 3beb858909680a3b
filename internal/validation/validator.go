// Package validation wraps the validator/v10 library with conversion to the
// tool error taxonomy, so an invalid spec exits with the validation status.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cardtraders/cardtraders-infra/internal/errors"
)

// Validator wraps go-playground/validator with domain error conversion.
type Validator struct {
	v *validator.Validate
}

// New creates a validator configured for our domain.
func New() *Validator {
	v := validator.New()

	// Report field names in lower case so the error message matches the
	// flag the operator typed, not the Go field.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.ToLower(fld.Name)
	})

	return &Validator{v: v}
}

// Validate validates a struct and returns a domain validation error naming
// each offending field.
func (val *Validator) Validate(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, errors.CodeValidation, "validation failed")
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Field()+" "+friendlyMessage(fe))
	}
	return errors.Validationf("validation failed: %s", strings.Join(msgs, "; "))
}

func friendlyMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must not exceed " + fe.Param() + " characters"
	case "url":
		return "must be a valid URL"
	case "startswith":
		return "must start with " + fe.Param()
	case "datetime":
		return "must match the format YYYY/MM/DD"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
