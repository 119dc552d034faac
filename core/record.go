package core

import (
	"math"
	"sort"
	"time"
)

// Record is the view of a dispatched message that formatters work on.
// It is rebuilt by sinks from the message and context they receive.
type Record struct {
	Time    time.Time
	Level   Level
	Message string
	Context Context
}

// NewRecord builds a Record from a dispatched message and its context.
// Time and level come from the dispatcher metadata when present; the
// time is rounded to the microsecond and reported in UTC.
func NewRecord(message string, ctx Context) *Record {
	r := &Record{Message: message, Context: ctx}
	if l, ok := ctx.Level(); ok {
		r.Level = l
	} else {
		r.Level = InfoLevel
	}
	if f, ok := ctx[KeyMicrotime].(float64); ok {
		sec, frac := math.Modf(f)
		r.Time = time.Unix(int64(sec), int64(frac*1e9)).Round(time.Microsecond).UTC()
	} else {
		r.Time = time.Now()
	}
	return r
}

// Formatted returns the interpolated message when the dispatcher supplied
// one, otherwise the raw message.
func (r *Record) Formatted() string {
	if s, ok := r.Context[KeyFormatted].(string); ok {
		return s
	}
	return r.Message
}

// PublicKeys returns the sorted non-metadata context keys.
func (r *Record) PublicKeys() []string {
	keys := make([]string, 0, len(r.Context))
	for k := range r.Context {
		if len(k) > 0 && k[0] == '_' {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
