// Package form holds the example form's state machine. A state starts in
// Editing, moves to Submitted only when every field passes at once, and goes
// back to Editing on the next edit while keeping the last snapshot.
package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go-form-template/internal/domain"
)

var (
	ErrUnknownField    = errors.New("unknown field")
	ErrInvalidCheckbox = errors.New("invalid checkbox value")
)

// Listener is called synchronously with a copy of the state after every mutation.
type Listener func(state domain.FormState)

// Controller applies edits and submissions to a FormState.
type Controller struct {
	validator *Validator

	mu        sync.RWMutex
	listeners []Listener
}

func NewController(validator *Validator) *Controller {
	return &Controller{validator: validator}
}

// Subscribe registers fn to run after every mutation.
func (c *Controller) Subscribe(fn Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Mount returns a fresh state with default values.
func (c *Controller) Mount(sessionID string) domain.FormState {
	state := domain.FormState{
		SessionID: sessionID,
		Phase:     domain.PhaseEditing,
		Values:    domain.DefaultFormValues(),
	}
	c.notify(state)
	return state
}

// Edit sets one field of the draft. Once a submit has been attempted the field
// is re-validated so its inline message follows the input.
func (c *Controller) Edit(state *domain.FormState, field, raw string) error {
	if err := setField(&state.Values, field, raw); err != nil {
		return err
	}

	state.Phase = domain.PhaseEditing
	if state.SubmitCount > 0 {
		msg, ok := c.validator.ValidateField(state.Values, field)
		if ok {
			delete(state.Errors, field)
			if len(state.Errors) == 0 {
				state.Errors = nil
			}
		} else {
			if state.Errors == nil {
				state.Errors = domain.FieldErrors{}
			}
			state.Errors[field] = msg
		}
	}

	c.notify(*state)
	return nil
}

// Submit replaces the draft with values and validates all fields. It reports
// whether the submission was accepted; on rejection the snapshot is unchanged.
func (c *Controller) Submit(state *domain.FormState, values domain.FormValues) bool {
	state.Values = values
	state.SubmitCount++

	errs := c.validator.ValidateAll(values)
	if len(errs) > 0 {
		state.Errors = errs
		state.Phase = domain.PhaseEditing
		c.notify(*state)
		return false
	}

	snapshot := values
	state.Errors = nil
	state.Snapshot = &snapshot
	state.Phase = domain.PhaseSubmitted
	c.notify(*state)
	return true
}

// Validate runs every rule against values without touching any state.
func (c *Controller) Validate(values domain.FormValues) domain.FieldErrors {
	return c.validator.ValidateAll(values)
}

func (c *Controller) notify(state domain.FormState) {
	c.mu.RLock()
	listeners := c.listeners
	c.mu.RUnlock()

	for _, fn := range listeners {
		fn(state.Clone())
	}
}

func setField(values *domain.FormValues, field, raw string) error {
	switch field {
	case domain.FieldName:
		values.Name = raw
	case domain.FieldEmail:
		values.Email = raw
	case domain.FieldCategory:
		values.Category = raw
	case domain.FieldMessage:
		values.Message = raw
	case domain.FieldSubscribe:
		checked, err := ParseCheckbox(raw)
		if err != nil {
			return err
		}
		values.Subscribe = checked
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// ParseCheckbox accepts the HTML "on" value as well as strconv booleans; empty means unchecked.
func ParseCheckbox(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "off":
		return false, nil
	case "on":
		return true, nil
	}
	checked, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidCheckbox, raw)
	}
	return checked, nil
}
