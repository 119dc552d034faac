// Package handler provides the Sink contract, the registry that routes
// records to sinks by exact level, and small building blocks for sinks.
//
// A Sink receives the message and the context the dispatcher built for
// it. Sinks are named; names are case-insensitive and unique, and a
// sink is only reachable at the levels it was registered under. The
// Registry keeps, per level, the registrations in first-registration
// order so fan-out order is stable and predictable. Re-registering a
// name replaces the sink in place at the levels given and leaves the
// name's other levels untouched.
//
// Invoke calls a sink and turns a panic into an error wrapping
// ErrSinkPanic, so a misbehaving sink cannot unwind the caller.
//
// Adapters for existing logging stacks live in subpackages:
//
//   - consolehandler writes formatted records to any io.Writer.
//   - sloghandler forwards to a *slog.Logger and also exposes the
//     dispatcher as a slog.Handler.
//   - zaphandler, zerologhandler and logrushandler forward to zap,
//     zerolog and logrus loggers.
//   - celhandler forwards only the records matching a CEL expression.
//   - multihandler fans one registration out to several sinks.
//
// Stats tracks delivered, failed and dropped counts with atomic
// counters and can be queried at runtime for monitoring.
package handler
