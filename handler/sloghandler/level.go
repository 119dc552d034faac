package sloghandler

import (
	"log/slog"

	"github.com/philipp01105/nlogd/core"
)

var coreToSlog = [...]slog.Level{
	core.EmergencyLevel: slog.LevelError + 12,
	core.AlertLevel:     slog.LevelError + 8,
	core.CriticalLevel:  slog.LevelError + 4,
	core.ErrorLevel:     slog.LevelError,
	core.WarningLevel:   slog.LevelWarn,
	core.NoticeLevel:    slog.LevelInfo + 2,
	core.InfoLevel:      slog.LevelInfo,
	core.DebugLevel:     slog.LevelDebug,
}

// ToSlog converts a core.Level to a slog.Level. Invalid levels map to info.
func ToSlog(level core.Level) slog.Level {
	if !level.Valid() {
		return slog.LevelInfo
	}
	return coreToSlog[level]
}

// FromSlog converts a slog.Level to the closest core.Level at or below it
// in severity.
func FromSlog(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError+12:
		return core.EmergencyLevel
	case level >= slog.LevelError+8:
		return core.AlertLevel
	case level >= slog.LevelError+4:
		return core.CriticalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo+2:
		return core.NoticeLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
