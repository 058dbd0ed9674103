package observability

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a key-value pair carried on the context and attached to every log line.
type Field struct {
	Key   string
	Value interface{}
}

// MetricField is a key-value pair emitted by Metrics.
type MetricField struct {
	Key   string
	Value interface{}
}

type contextKey string

const fieldsKey contextKey = "observability_fields"

// WithFields returns a copy of ctx carrying the given fields in addition to any already present.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	existing := fieldsFromContext(ctx)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, fieldsKey, merged)
}

func fieldsFromContext(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}
	if fields, ok := ctx.Value(fieldsKey).([]Field); ok {
		return fields
	}
	return nil
}

// Logger wraps zap and enriches each entry with the fields stored on the context.
type Logger struct {
	zapLogger *zap.Logger
}

// NewLogger creates a production logger.
func NewLogger() *Logger {
	zapLogger, _ := zap.NewProduction()
	zapLogger = zapLogger.WithOptions(zap.AddCallerSkip(1))
	zapLogger = zapLogger.WithOptions(zap.AddStacktrace(zapcore.ErrorLevel))
	return &Logger{zapLogger: zapLogger}
}

// NewNopLogger returns a logger that discards everything. Used by tests.
func NewNopLogger() *Logger {
	return &Logger{zapLogger: zap.NewNop()}
}

func (l *Logger) loggerFromContext(ctx context.Context) *zap.Logger {
	fields := fieldsFromContext(ctx)
	zapFields := make([]zapcore.Field, len(fields))
	for i, f := range fields {
		zapFields[i] = zap.Any(f.Key, f.Value)
	}
	return l.zapLogger.With(zapFields...)
}

func (l *Logger) Info(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Info(msg)
}

// InfoWithError logs at info level with an attached error, for failures that are expected.
func (l *Logger) InfoWithError(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Info(msg, zap.Error(err))
}

func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Error(msg, zap.Error(err))
}

func (l *Logger) Warn(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Warn(msg)
}

func (l *Logger) Debug(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Debug(msg)
}

func (l *Logger) Fatal(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Fatal(msg, zap.Error(err))
}

// Metrics logs a metrics line. Explicit fields override context fields with the same key.
func (l *Logger) Metrics(ctx context.Context, fields ...MetricField) {
	byKey := make(map[string]zapcore.Field)
	for _, f := range fieldsFromContext(ctx) {
		byKey[f.Key] = zap.Any(f.Key, f.Value)
	}
	for _, f := range fields {
		byKey[f.Key] = zap.Any(f.Key, f.Value)
	}
	merged := make([]zapcore.Field, 0, len(byKey))
	for _, f := range byKey {
		merged = append(merged, f)
	}
	l.zapLogger.Info("Metrics", merged...)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}
