package handler

import (
	"errors"
	"fmt"

	"github.com/philipp01105/nlogd/core"
)

// ErrSinkPanic is wrapped by the error Invoke returns when a sink panics.
var ErrSinkPanic = errors.New("sink panicked")

// Sink consumes a dispatched message and its context.
type Sink interface {
	// Log receives the raw message and the enriched context
	Log(message string, ctx core.Context) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(message string, ctx core.Context) error

// Log calls f(message, ctx).
func (f SinkFunc) Log(message string, ctx core.Context) error {
	return f(message, ctx)
}

// Invoke calls s.Log, converting a panic into an error wrapping ErrSinkPanic.
func Invoke(s Sink, message string, ctx core.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSinkPanic, r)
		}
	}()
	return s.Log(message, ctx)
}
