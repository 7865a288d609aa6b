package logger

import "context"

type noopLogger struct{}

// NewNop returns a logger that discards everything. Intended for tests.
func NewNop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(ctx context.Context, msg string, fields ...Field)            {}
func (noopLogger) Info(ctx context.Context, msg string, fields ...Field)             {}
func (noopLogger) Warn(ctx context.Context, msg string, fields ...Field)             {}
func (noopLogger) Error(ctx context.Context, msg string, err error, fields ...Field) {}
func (noopLogger) Fatal(ctx context.Context, msg string, err error, fields ...Field) {}
func (l noopLogger) With(fields ...Field) Logger                                     { return l }
