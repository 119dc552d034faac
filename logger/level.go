package logger

import (
	"github.com/philipp01105/nlogd/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	EmergencyLevel = core.EmergencyLevel
	AlertLevel     = core.AlertLevel
	CriticalLevel  = core.CriticalLevel
	ErrorLevel     = core.ErrorLevel
	WarningLevel   = core.WarningLevel
	NoticeLevel    = core.NoticeLevel
	InfoLevel      = core.InfoLevel
	DebugLevel     = core.DebugLevel
)

// ParseLevel converts a level name to a Level, case-insensitively
func ParseLevel(s string) (Level, bool) {
	return core.ParseLevel(s)
}

// LevelsAtOrAbove returns the levels from emergency down to level
func LevelsAtOrAbove(level Level) []Level {
	return core.LevelsAtOrAbove(level)
}
