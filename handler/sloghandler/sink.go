package sloghandler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/nlogd/core"
)

// Sink forwards dispatched records to a *slog.Logger. Public context keys
// become attributes in sorted order; metadata keys are dropped.
type Sink struct {
	logger *slog.Logger
}

// NewSink creates a Sink writing to l, or to slog.Default() when l is nil.
func NewSink(l *slog.Logger) *Sink {
	if l == nil {
		l = slog.Default()
	}
	return &Sink{logger: l}
}

// Log implements handler.Sink.
func (s *Sink) Log(message string, ctx core.Context) error {
	record := core.NewRecord(message, ctx)
	keys := record.PublicKeys()
	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, ctx[k]))
	}
	s.logger.LogAttrs(context.Background(), ToSlog(record.Level), record.Formatted(), attrs...)
	return nil
}
