// Package forms validates and normalizes user-submitted form data before it
// reaches persistence. Invalid forms carry field-level errors and preserve
// the submitted values so handlers can re-render them.
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FormatValidationError formats validation errors into a user-friendly map
// keyed by lowercased field name. This prevents leaking internal struct
// names and provides cleaner error messages.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["form"] = "Invalid form submission"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "alphanum":
			errs[field] = "Only letters and digits are allowed"
		case "eqfield":
			errs[field] = "Passwords do not match"
		case "gte":
			errs[field] = fmt.Sprintf("Must be %s or greater", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}
