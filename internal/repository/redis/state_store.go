package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-form-template/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "form:state:"

// Client is the subset of go-redis used by StateStore.
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// StateStore keeps form states in Redis with a TTL so they expire like a browser session.
type StateStore struct {
	client Client
	ttl    time.Duration
}

func NewStateStore(client Client, ttl time.Duration) *StateStore {
	return &StateStore{client: client, ttl: ttl}
}

func key(sessionID string) string {
	return keyPrefix + sessionID
}

func (s *StateStore) Get(ctx context.Context, sessionID string) (*domain.FormState, error) {
	raw, err := s.client.Get(ctx, key(sessionID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get form state: %w", err)
	}

	var state domain.FormState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode form state: %w", err)
	}
	return &state, nil
}

func (s *StateStore) Save(ctx context.Context, state *domain.FormState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode form state: %w", err)
	}
	if err := s.client.Set(ctx, key(state.SessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set form state: %w", err)
	}
	return nil
}

func (s *StateStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, key(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete form state: %w", err)
	}
	return nil
}
