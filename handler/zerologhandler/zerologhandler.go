// Package zerologhandler provides a sink that forwards records to a
// zerolog.Logger.
//
// Emergency maps to zerolog's panic level and alert and critical to its
// fatal level. Events are emitted with WithLevel, which records the
// level without panicking or exiting.
package zerologhandler

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/nlogd/core"
)

var levels = [...]zerolog.Level{
	core.EmergencyLevel: zerolog.PanicLevel,
	core.AlertLevel:     zerolog.FatalLevel,
	core.CriticalLevel:  zerolog.FatalLevel,
	core.ErrorLevel:     zerolog.ErrorLevel,
	core.WarningLevel:   zerolog.WarnLevel,
	core.NoticeLevel:    zerolog.InfoLevel,
	core.InfoLevel:      zerolog.InfoLevel,
	core.DebugLevel:     zerolog.DebugLevel,
}

// ToZerolog converts a core.Level to a zerolog.Level. Invalid levels map to info.
func ToZerolog(level core.Level) zerolog.Level {
	if !level.Valid() {
		return zerolog.InfoLevel
	}
	return levels[level]
}

// ZerologHandler forwards records to a zerolog logger
type ZerologHandler struct {
	logger zerolog.Logger
}

// New creates a ZerologHandler writing to l
func New(l zerolog.Logger) *ZerologHandler {
	return &ZerologHandler{logger: l}
}

// Log implements handler.Sink.
func (h *ZerologHandler) Log(message string, ctx core.Context) error {
	record := core.NewRecord(message, ctx)
	e := h.logger.WithLevel(ToZerolog(record.Level))
	if e == nil {
		return nil
	}
	e = e.Str("severity", record.Level.String())
	for _, k := range record.PublicKeys() {
		e = e.Interface(k, ctx[k])
	}
	e.Msg(record.Formatted())
	return nil
}
