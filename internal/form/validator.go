package form

import (
	"fmt"
	"slices"

	"go-form-template/internal/domain"
	"go-form-template/pkg/formdef"
	"go-form-template/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// structFields maps a form field to its FormValues struct field, as StructPartial expects.
var structFields = map[string]string{
	domain.FieldName:      "Name",
	domain.FieldEmail:     "Email",
	domain.FieldCategory:  "Category",
	domain.FieldMessage:   "Message",
	domain.FieldSubscribe: "Subscribe",
}

// Validator evaluates every field rule independently and reports messages in one locale.
type Validator struct {
	validate *validator.Validate
	locale   formdef.Locale
}

// NewValidator builds a Validator whose messages come from def's localeCode texts.
// The definition's category options must be exactly domain.Categories, in order.
func NewValidator(def *formdef.Definition, localeCode string) (*Validator, error) {
	categories := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		categories[i] = string(c)
	}
	if !slices.Equal(def.Categories, categories) {
		return nil, fmt.Errorf("form definition categories %v do not match %v", def.Categories, categories)
	}

	v := validation.New()
	if err := validation.RegisterEnum(v, "category", categories...); err != nil {
		return nil, fmt.Errorf("register category validator: %w", err)
	}

	return &Validator{validate: v, locale: def.Locale(localeCode)}, nil
}

// ValidateAll returns nil when every field passes.
func (fv *Validator) ValidateAll(values domain.FormValues) domain.FieldErrors {
	return fv.toFieldErrors(fv.validate.Struct(values))
}

// ValidateField checks one field of values. It returns the message and false when the field fails.
func (fv *Validator) ValidateField(values domain.FormValues, field string) (string, bool) {
	name, ok := structFields[field]
	if !ok {
		return "", true
	}
	errs := fv.toFieldErrors(fv.validate.StructPartial(values, name))
	if msg, failed := errs[field]; failed {
		return msg, false
	}
	return "", true
}

func (fv *Validator) toFieldErrors(err error) domain.FieldErrors {
	if err == nil {
		return nil
	}
	messages, ok := validation.FieldMessages(err, fv.message)
	if !ok {
		// only reachable for a programming error such as a nil or non-struct value
		return domain.FieldErrors{"form": err.Error()}
	}
	if len(messages) == 0 {
		return nil
	}
	return domain.FieldErrors(messages)
}

func (fv *Validator) message(field, _, _ string) string {
	return fv.locale.Message(field)
}
