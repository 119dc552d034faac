// Package sloghandler bridges the dispatcher and log/slog in both
// directions.
//
// Sink forwards dispatched records to a *slog.Logger, so any
// slog.Handler can be registered as a sink. SlogHandler goes the other
// way: it implements slog.Handler on top of a dispatcher, letting code
// written against log/slog route through registered sinks and
// processors.
//
// Levels map onto slog as follows; the extra syslog severities sit
// between the slog constants:
//
//	emergency  slog.LevelError+12
//	alert      slog.LevelError+8
//	critical   slog.LevelError+4
//	error      slog.LevelError
//	warning    slog.LevelWarn
//	notice     slog.LevelInfo+2
//	info       slog.LevelInfo
//	debug      slog.LevelDebug
package sloghandler
