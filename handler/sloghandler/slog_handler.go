package sloghandler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/nlogd/core"
)

// Dispatcher is the part of *logger.Logger that SlogHandler needs.
type Dispatcher interface {
	Log(level core.Level, message any, ctx core.Context)
}

// SlogHandler is an adapter that implements slog.Handler on top of a
// Dispatcher. This allows the dispatcher to be used as a drop-in backend
// for log/slog.
type SlogHandler struct {
	dispatcher Dispatcher
	minLevel   core.Level
	attrs      core.Context
	group      string
}

// NewSlogHandler creates a slog.Handler passing records at minLevel or
// more severe to d.
func NewSlogHandler(d Dispatcher, minLevel core.Level) *SlogHandler {
	return &SlogHandler{
		dispatcher: d,
		minLevel:   minLevel,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return FromSlog(level) <= s.minLevel
}

// Handle converts the record's attributes into a context and dispatches
// the message. Dispatch failures never surface, so Handle returns nil.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	ctx := make(core.Context, len(s.attrs)+record.NumAttrs())
	for k, v := range s.attrs {
		ctx[k] = v
	}
	record.Attrs(func(a slog.Attr) bool {
		addAttr(ctx, s.group, a)
		return true
	})
	s.dispatcher.Log(FromSlog(record.Level), record.Message, ctx)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	newAttrs := s.attrs.Clone()
	for _, a := range attrs {
		addAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{
		dispatcher: s.dispatcher,
		minLevel:   s.minLevel,
		attrs:      newAttrs,
		group:      s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	return &SlogHandler{
		dispatcher: s.dispatcher,
		minLevel:   s.minLevel,
		attrs:      s.attrs,
		group:      joinKey(s.group, name),
	}
}

func joinKey(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

// addAttr stores a into ctx under its dotted key. Groups are flattened;
// a group with an empty key is inlined and an empty attribute is skipped.
func addAttr(ctx core.Context, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix = joinKey(group, a.Key)
		}
		for _, ga := range a.Value.Group() {
			addAttr(ctx, prefix, ga)
		}
		return
	}

	key := joinKey(group, a.Key)
	switch a.Value.Kind() {
	case slog.KindString:
		ctx[key] = a.Value.String()
	case slog.KindInt64:
		ctx[key] = a.Value.Int64()
	case slog.KindUint64:
		ctx[key] = a.Value.Uint64()
	case slog.KindFloat64:
		ctx[key] = a.Value.Float64()
	case slog.KindBool:
		ctx[key] = a.Value.Bool()
	case slog.KindTime:
		ctx[key] = a.Value.Time()
	case slog.KindDuration:
		ctx[key] = a.Value.Duration()
	default:
		ctx[key] = a.Value.Any()
	}
}
