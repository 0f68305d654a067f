package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MessageFunc returns the message for a failed rule, or "" to use the built-in text.
type MessageFunc func(field, tag, param string) string

// FieldMessages converts validator.ValidationErrors into one message per field.
// The first failing rule of a field wins. Non-validation errors come back as ok=false.
func FieldMessages(err error, lookup MessageFunc) (map[string]string, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	messages := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Field()
		if _, exists := messages[field]; exists {
			continue
		}
		msg := ""
		if lookup != nil {
			msg = lookup(field, e.Tag(), e.Param())
		}
		if msg == "" {
			msg = formatSingleError(e)
		}
		messages[field] = msg
	}
	return messages, true
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	param := e.Param()

	switch e.Tag() {
	case "required":
		return "is required"

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("is too short (minimum %s characters)", param)
		}
		return fmt.Sprintf("must be at least %s", param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("is too long (maximum %s characters)", param)
		}
		return fmt.Sprintf("must be at most %s", param)

	case "email", "email_tld":
		return "is not a valid email address"

	case "oneof":
		return fmt.Sprintf("must be one of: %s", param)

	default:
		return fmt.Sprintf("is invalid (%s)", e.Tag())
	}
}
