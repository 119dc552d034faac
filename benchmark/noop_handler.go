// Package benchmark compares the dispatcher against zap, zerolog,
// logrus and log/slog under equal conditions, and measures the cost of
// forwarding through each adapter.
package benchmark

import (
	"github.com/philipp01105/nlogd/core"
	"github.com/philipp01105/nlogd/handler"
)

type noopSink struct{}

func newNoopSink() handler.Sink {
	return noopSink{}
}

func (noopSink) Log(message string, ctx core.Context) error {
	_ = len(message) + len(ctx)
	return nil
}
