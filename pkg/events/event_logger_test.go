package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogWritesStructuredFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewLogger(zap.New(core), "form-template", "test")

	l.Log(context.Background(), Event{
		Type:      EventSubmissionRejected,
		SessionID: "FRM-1",
		Fields:    []string{"name", "email"},
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.InfoLevel, entry.Level)

	ctx := entry.ContextMap()
	assert.Equal(t, "submission_rejected", ctx["event"])
	assert.Equal(t, "FRM-1", ctx["session_id"])
	assert.Equal(t, "form-template", ctx["service"])
	assert.Equal(t, []interface{}{"name", "email"}, ctx["fields"])
}

func TestLogWarnsOnAbuseEvents(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewLogger(zap.New(core), "svc", "test")

	l.Log(context.Background(), Event{Type: EventRateLimitTriggered, IP: "10.0.0.1"})

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestDefaultIsSafeBeforeInit(t *testing.T) {
	defaultLogger = nil
	assert.NotPanics(t, func() {
		Default().Log(context.Background(), Event{Type: EventFormMounted})
	})

	var nilLogger *Logger
	assert.NotPanics(t, func() {
		nilLogger.Log(context.Background(), Event{Type: EventFormMounted})
	})
	assert.NoError(t, nilLogger.Sync())
}

func TestBuildConfigByEnvironment(t *testing.T) {
	prod := buildConfig(true)
	assert.Equal(t, "json", prod.Encoding)
	assert.False(t, prod.Development)
	assert.Equal(t, zapcore.InfoLevel, prod.Level.Level())

	dev := buildConfig(false)
	assert.Equal(t, "console", dev.Encoding)
	assert.True(t, dev.Development)
	assert.Equal(t, zapcore.DebugLevel, dev.Level.Level())
}
