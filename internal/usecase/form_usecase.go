package usecase

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"net/http"
	"sync"

	"go-form-template/internal/domain"
	"go-form-template/internal/form"
	"go-form-template/pkg/apperror"
	"go-form-template/pkg/events"
	"go-form-template/pkg/ids"
)

// sessionLocks serializes read-modify-write cycles per session inside one process.
// Ids hash onto a fixed set of mutexes so the table never grows.
type sessionLocks [64]sync.Mutex

func (l *sessionLocks) lock(sessionID string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	mu := &l[h.Sum32()%uint32(len(l))]
	mu.Lock()
	return mu.Unlock
}

type formUsecase struct {
	locks      sessionLocks
	controller *form.Controller
	store      domain.StateStore
	events     *events.Logger
	log        *slog.Logger
	newID      func() (string, error)
}

// NewFormUsecase creates a new form usecase
func NewFormUsecase(controller *form.Controller, store domain.StateStore, eventLogger *events.Logger, log *slog.Logger) domain.FormUsecase {
	uc := &formUsecase{
		controller: controller,
		store:      store,
		events:     eventLogger,
		log:        log,
		newID:      ids.NewSessionID,
	}
	controller.Subscribe(func(state domain.FormState) {
		uc.log.Debug("Form state changed",
			"session_id", state.SessionID,
			"phase", state.Phase,
			"submit_count", state.SubmitCount,
			"error_fields", len(state.Errors),
		)
	})
	return uc
}

// Mount starts a fresh form under a new session id and discards the state of previousID
func (uc *formUsecase) Mount(ctx context.Context, previousID string) (*domain.FormState, error) {
	sessionID, err := uc.newID()
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("generate session id: %w", err))
	}

	if previousID != "" {
		unlock := uc.locks.lock(previousID)
		err := uc.store.Delete(ctx, previousID)
		unlock()
		if err != nil {
			uc.log.Warn("Failed to discard previous form session", "session_id", previousID, "error", err)
		}
	}

	state := uc.controller.Mount(sessionID)
	if err := uc.store.Save(ctx, &state); err != nil {
		return nil, apperror.Internal(fmt.Errorf("save mounted form: %w", err))
	}

	uc.events.Log(ctx, events.Event{Type: events.EventFormMounted, SessionID: sessionID})
	return &state, nil
}

// Get returns the stored state of a mounted form
func (uc *formUsecase) Get(ctx context.Context, sessionID string) (*domain.FormState, error) {
	state, err := uc.store.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrStateNotFound) {
		return nil, apperror.New(http.StatusNotFound, "Form session not found. Reload the form to start again.", err)
	}
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("load form state: %w", err))
	}
	return state, nil
}

// Edit changes a single draft field
func (uc *formUsecase) Edit(ctx context.Context, sessionID, field, value string) (*domain.FormState, error) {
	defer uc.locks.lock(sessionID)()

	state, err := uc.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := uc.controller.Edit(state, field, value); err != nil {
		if errors.Is(err, form.ErrUnknownField) || errors.Is(err, form.ErrInvalidCheckbox) {
			return nil, apperror.New(http.StatusBadRequest, err.Error(), err)
		}
		return nil, apperror.Internal(err)
	}

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, apperror.Internal(fmt.Errorf("save edited form: %w", err))
	}
	return state, nil
}

// Submit validates every field at once. A rejected submission still returns
// the updated state together with the field errors.
func (uc *formUsecase) Submit(ctx context.Context, sessionID string, values domain.FormValues) (*domain.FormState, error) {
	defer uc.locks.lock(sessionID)()

	state, err := uc.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	accepted := uc.controller.Submit(state, values)

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, apperror.Internal(fmt.Errorf("save submitted form: %w", err))
	}

	if !accepted {
		list := state.Errors.List()
		fields := make([]string, len(list))
		for i, fe := range list {
			fields[i] = fe.Field
		}
		uc.events.Log(ctx, events.Event{Type: events.EventSubmissionRejected, SessionID: sessionID, Fields: fields})
		return state, apperror.Unprocessable("Please correct the highlighted fields.", state.Errors, state.Errors)
	}

	uc.log.Debug("Form submitted",
		"session_id", sessionID,
		"name", values.Name,
		"email", values.Email,
		"category", values.Category,
		"message", values.Message,
		"subscribe", values.Subscribe,
	)
	uc.events.Log(ctx, events.Event{
		Type:      events.EventSubmissionAccepted,
		SessionID: sessionID,
		Details:   map[string]interface{}{"category": values.Category, "subscribe": values.Subscribe},
	})
	return state, nil
}

// Validate checks values without touching any session
func (uc *formUsecase) Validate(ctx context.Context, values domain.FormValues) domain.FieldErrors {
	return uc.controller.Validate(values)
}
