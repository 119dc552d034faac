package multihandler

import (
	"io"

	"go.uber.org/multierr"

	"github.com/philipp01105/nlogd/core"
	"github.com/philipp01105/nlogd/handler"
)

// MultiHandler dispatches to multiple sinks. Every child receives the
// record even when an earlier one fails.
type MultiHandler struct {
	sinks []handler.Sink
}

// NewMultiHandler creates a fan-out sink over the non-nil sinks given
func NewMultiHandler(sinks ...handler.Sink) *MultiHandler {
	filtered := make([]handler.Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			filtered = append(filtered, s)
		}
	}
	return &MultiHandler{sinks: filtered}
}

// Log passes the record to every child, each with its own copy of the
// context, and returns the combined errors.
func (m *MultiHandler) Log(message string, ctx core.Context) error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, handler.Invoke(s, message, ctx.Clone()))
	}
	return err
}

// Close closes every child implementing io.Closer
func (m *MultiHandler) Close() error {
	var err error
	for _, s := range m.sinks {
		if c, ok := s.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}
