package events

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of form event
type EventType string

const (
	EventFormMounted        EventType = "form_mounted"
	EventSubmissionAccepted EventType = "submission_accepted"
	EventSubmissionRejected EventType = "submission_rejected"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventCSRFRejected       EventType = "csrf_rejected"
)

// Event is one structured form event. Field values are never logged, only field names.
type Event struct {
	Timestamp time.Time              `json:"timestamp"`
	Type      EventType              `json:"event"`
	SessionID string                 `json:"session_id,omitempty"`
	IP        string                 `json:"ip,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Fields    []string               `json:"fields,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Logger writes form events through zap
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var defaultLogger *Logger

// NewLogger wraps an existing zap logger.
func NewLogger(zl *zap.Logger, serviceName, environment string) *Logger {
	return &Logger{zapLogger: zl, serviceName: serviceName, environment: environment}
}

// Init builds a zap logger writing to stdout and makes it the default.
// Outside production it uses zap's development config with debug level and console output.
func Init(serviceName, environment string, production bool) *Logger {
	config := buildConfig(production)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	zl, err := config.Build(zap.AddCaller())
	if err != nil {
		zl, _ = zap.NewProduction()
	}

	defaultLogger = NewLogger(zl, serviceName, environment)
	return defaultLogger
}

func buildConfig(production bool) zap.Config {
	if production {
		return zap.NewProductionConfig()
	}
	return zap.NewDevelopmentConfig()
}

// Default returns the logger set by Init, or a no-op logger.
func Default() *Logger {
	if defaultLogger == nil {
		return NewLogger(zap.NewNop(), "", "")
	}
	return defaultLogger
}

// Log writes event at a level derived from its type.
func (l *Logger) Log(_ context.Context, event Event) {
	if l == nil || l.zapLogger == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	fields := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("event", string(event.Type)),
		zap.Time("event_time", event.Timestamp),
	}
	if event.SessionID != "" {
		fields = append(fields, zap.String("session_id", event.SessionID))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Fields) > 0 {
		fields = append(fields, zap.Strings("fields", event.Fields))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}

	switch event.Type {
	case EventRateLimitTriggered, EventCSRFRejected:
		l.zapLogger.Warn("form event", fields...)
	default:
		l.zapLogger.Info("form event", fields...)
	}
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	if l == nil || l.zapLogger == nil {
		return nil
	}
	return l.zapLogger.Sync()
}
