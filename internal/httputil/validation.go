package httputil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrValidation = errors.New("the request is not valid")

// validationErrorText returns a human readable description of a failed
// binding rule.
func validationErrorText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s characters", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
	case "url":
		return fmt.Sprintf("%s must be a URL", e.Field())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}

// validationError joins all failed binding rules into one error wrapping
// ErrValidation.
func validationError(errs validator.ValidationErrors) error {
	texts := make([]string, 0, len(errs))
	for _, e := range errs {
		texts = append(texts, validationErrorText(e))
	}

	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(texts, ", "))
}
