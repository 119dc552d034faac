// Package zaphandler provides a sink that forwards records to a
// *zap.Logger.
//
// zap has no emergency, alert, critical or notice levels. The three most
// severe map to zap's error level and notice maps to info; the original
// severity is kept in a "severity" field. DPanic, Panic and Fatal are
// never used, so forwarding never stops the process.
package zaphandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nlogd/core"
)

var levels = [...]zapcore.Level{
	core.EmergencyLevel: zapcore.ErrorLevel,
	core.AlertLevel:     zapcore.ErrorLevel,
	core.CriticalLevel:  zapcore.ErrorLevel,
	core.ErrorLevel:     zapcore.ErrorLevel,
	core.WarningLevel:   zapcore.WarnLevel,
	core.NoticeLevel:    zapcore.InfoLevel,
	core.InfoLevel:      zapcore.InfoLevel,
	core.DebugLevel:     zapcore.DebugLevel,
}

// ToZap converts a core.Level to a zapcore.Level. Invalid levels map to info.
func ToZap(level core.Level) zapcore.Level {
	if !level.Valid() {
		return zapcore.InfoLevel
	}
	return levels[level]
}

// ZapHandler forwards records to a zap logger
type ZapHandler struct {
	logger *zap.Logger
}

// New creates a ZapHandler writing to l. A nil logger is replaced by a no-op one.
func New(l *zap.Logger) *ZapHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapHandler{logger: l}
}

// Log implements handler.Sink.
func (h *ZapHandler) Log(message string, ctx core.Context) error {
	record := core.NewRecord(message, ctx)
	ce := h.logger.Check(ToZap(record.Level), record.Formatted())
	if ce == nil {
		return nil
	}

	keys := record.PublicKeys()
	fields := make([]zapcore.Field, 0, len(keys)+1)
	fields = append(fields, zap.Stringer("severity", record.Level))
	for _, k := range keys {
		fields = append(fields, zap.Any(k, ctx[k]))
	}
	ce.Write(fields...)
	return nil
}

// Close flushes buffered entries.
func (h *ZapHandler) Close() error {
	return h.logger.Sync()
}
