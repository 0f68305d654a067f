package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"go-form-template/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStateStore(time.Minute)

	snap := domain.FormValues{Name: "Taro"}
	require.NoError(t, store.Save(ctx, &domain.FormState{SessionID: "a", Phase: domain.PhaseSubmitted, Snapshot: &snap}))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseSubmitted, got.Phase)
	assert.Equal(t, "Taro", got.Snapshot.Name)

	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrStateNotFound)
}

func TestStoredStateIsCopied(t *testing.T) {
	ctx := context.Background()
	store := NewStateStore(time.Minute)

	snap := domain.FormValues{Name: "Taro"}
	state := &domain.FormState{SessionID: "a", Snapshot: &snap, Errors: domain.FieldErrors{"name": "x"}}
	require.NoError(t, store.Save(ctx, state))

	snap.Name = "changed"
	state.Errors["email"] = "y"

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Taro", got.Snapshot.Name)
	assert.Equal(t, domain.FieldErrors{"name": "x"}, got.Errors)

	got.Snapshot.Name = "again"
	again, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Taro", again.Snapshot.Name)
}

func TestExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewStateStore(time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, &domain.FormState{SessionID: "a"}))
	require.NoError(t, store.Save(ctx, &domain.FormState{SessionID: "b"}))

	now = now.Add(2 * time.Minute)
	require.NoError(t, store.Save(ctx, &domain.FormState{SessionID: "c"}))

	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrStateNotFound)
	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewStateStore(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i%5))
			_ = store.Save(ctx, &domain.FormState{SessionID: id, SubmitCount: i})
			_, _ = store.Get(ctx, id)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 5, store.Len())
}
