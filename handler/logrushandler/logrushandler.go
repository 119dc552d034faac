// Package logrushandler provides a sink that forwards records to a
// logrus logger.
//
// Emergency and alert map to logrus' fatal level, emitted through
// Entry.Log so the process does not exit. logrus' panic level is never
// used.
package logrushandler

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/nlogd/core"
)

var levels = [...]logrus.Level{
	core.EmergencyLevel: logrus.FatalLevel,
	core.AlertLevel:     logrus.FatalLevel,
	core.CriticalLevel:  logrus.ErrorLevel,
	core.ErrorLevel:     logrus.ErrorLevel,
	core.WarningLevel:   logrus.WarnLevel,
	core.NoticeLevel:    logrus.InfoLevel,
	core.InfoLevel:      logrus.InfoLevel,
	core.DebugLevel:     logrus.DebugLevel,
}

// ToLogrus converts a core.Level to a logrus.Level. Invalid levels map to info.
func ToLogrus(level core.Level) logrus.Level {
	if !level.Valid() {
		return logrus.InfoLevel
	}
	return levels[level]
}

// LogrusHandler forwards records to a logrus logger
type LogrusHandler struct {
	logger *logrus.Logger
}

// New creates a LogrusHandler writing to l, or to logrus.StandardLogger() when l is nil.
func New(l *logrus.Logger) *LogrusHandler {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &LogrusHandler{logger: l}
}

// Log implements handler.Sink.
func (h *LogrusHandler) Log(message string, ctx core.Context) error {
	record := core.NewRecord(message, ctx)
	level := ToLogrus(record.Level)
	if !h.logger.IsLevelEnabled(level) {
		return nil
	}

	keys := record.PublicKeys()
	fields := make(logrus.Fields, len(keys)+1)
	for _, k := range keys {
		fields[k] = ctx[k]
	}
	fields["severity"] = record.Level.String()
	h.logger.WithFields(fields).WithTime(record.Time).Log(level, record.Formatted())
	return nil
}
