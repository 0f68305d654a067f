package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-form-template/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	t.Run("Should be ok without probes", func(t *testing.T) {
		status, ok := usecase.NewHealthUsecase(nil).Check(context.Background())
		assert.True(t, ok)
		assert.Equal(t, map[string]string{"status": "ok"}, status)
	})

	t.Run("Should report a failing probe", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(map[string]usecase.Probe{
			"redis": func(ctx context.Context) error { return errors.New("down") },
			"other": func(ctx context.Context) error { return nil },
		})
		status, ok := uc.Check(context.Background())
		assert.False(t, ok)
		assert.Equal(t, map[string]string{"status": "degraded", "redis": "unavailable", "other": "ok"}, status)
	})
}
