package domain

import (
	"context"
	"errors"
	"sort"
	"strings"
)

// Field names, in display order.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldCategory  = "category"
	FieldMessage   = "message"
	FieldSubscribe = "subscribe"
)

// FormFields lists every field of the example form in display order.
var FormFields = []string{FieldName, FieldEmail, FieldCategory, FieldMessage, FieldSubscribe}

// Category is the topic selected on the example form
type Category string

const (
	CategoryBug      Category = "bug"
	CategoryFeature  Category = "feature"
	CategoryQuestion Category = "question"
	CategoryOther    Category = "other"
)

// Categories lists the selectable categories in display order.
var Categories = []Category{CategoryBug, CategoryFeature, CategoryQuestion, CategoryOther}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// FormValues holds the five inputs of the example form.
type FormValues struct {
	Name      string `json:"name" validate:"min=2"`
	Email     string `json:"email" validate:"email,email_tld"`
	Category  string `json:"category" validate:"category"`
	Message   string `json:"message" validate:"min=10"`
	Subscribe bool   `json:"subscribe"`
}

// DefaultFormValues returns the values a freshly mounted form starts with.
func DefaultFormValues() FormValues {
	return FormValues{}
}

// FieldError is a user-correctable problem with a single field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	list := fe.List()
	parts := make([]string, len(list))
	for i, e := range list {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// List returns the errors in form field order; unknown fields sort last by name.
func (fe FieldErrors) List() []FieldError {
	out := make([]FieldError, 0, len(fe))
	seen := make(map[string]bool, len(fe))
	for _, field := range FormFields {
		if msg, ok := fe[field]; ok {
			out = append(out, FieldError{Field: field, Message: msg})
			seen[field] = true
		}
	}
	var rest []string
	for field := range fe {
		if !seen[field] {
			rest = append(rest, field)
		}
	}
	sort.Strings(rest)
	for _, field := range rest {
		out = append(out, FieldError{Field: field, Message: fe[field]})
	}
	return out
}

// Phase is the state of the form's submit cycle.
type Phase string

const (
	PhaseEditing   Phase = "editing"
	PhaseSubmitted Phase = "submitted"
)

// FormState is everything the page shows for one mounted form.
type FormState struct {
	SessionID   string      `json:"session_id"`
	Phase       Phase       `json:"phase"`
	Values      FormValues  `json:"values"`
	Errors      FieldErrors `json:"errors,omitempty"`
	Snapshot    *FormValues `json:"snapshot,omitempty"`
	SubmitCount int         `json:"submit_count"`
}

// Clone returns a deep copy so callers never share the snapshot or error map.
func (s FormState) Clone() FormState {
	out := s
	if s.Snapshot != nil {
		snap := *s.Snapshot
		out.Snapshot = &snap
	}
	if s.Errors != nil {
		out.Errors = make(FieldErrors, len(s.Errors))
		for k, v := range s.Errors {
			out.Errors[k] = v
		}
	}
	return out
}

// ErrStateNotFound is returned by a StateStore for unknown or expired sessions.
var ErrStateNotFound = errors.New("form state not found")

// StateStore keeps form state for the lifetime of a browser session.
type StateStore interface {
	Get(ctx context.Context, sessionID string) (*FormState, error)
	Save(ctx context.Context, state *FormState) error
	Delete(ctx context.Context, sessionID string) error
}

// FormUsecase defines the operations of the example form
type FormUsecase interface {
	// Mount starts a fresh form under a newly allocated session id.
	// A non-empty previousID has its stored state discarded.
	Mount(ctx context.Context, previousID string) (*FormState, error)
	// Get returns the current state of a mounted form
	Get(ctx context.Context, sessionID string) (*FormState, error)
	// Edit changes a single field of the draft
	Edit(ctx context.Context, sessionID, field, value string) (*FormState, error)
	// Submit validates values and, if all fields pass, replaces the snapshot.
	// A rejected submission returns the updated state together with a 422 *apperror.AppError.
	Submit(ctx context.Context, sessionID string, values FormValues) (*FormState, error)
	// Validate checks values without touching any state
	Validate(ctx context.Context, values FormValues) FieldErrors
}
