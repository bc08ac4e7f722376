package middleware

import (
	"context"
	"log/slog"
	"testing"
)

type logRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

type captureHandler struct {
	records []logRecord
}

func (h *captureHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

//nolint:varnamelen // r is conventional for slog.Record.
func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	rec := logRecord{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   make(map[string]any),
	}

	r.Attrs(func(a slog.Attr) bool {
		rec.Attrs[a.Key] = a.Value.Any()

		return true
	})

	h.records = append(h.records, rec)

	return nil
}

func (h *captureHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(_ string) slog.Handler      { return h }

// captureLogs replaces the default slog logger for the duration of the test.
func captureLogs(t *testing.T) *captureHandler {
	t.Helper()

	oldDefault := slog.Default()

	h := &captureHandler{}
	slog.SetDefault(slog.New(h))

	t.Cleanup(func() { slog.SetDefault(oldDefault) })

	return h
}
