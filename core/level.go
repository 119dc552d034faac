package core

import (
	"strings"
)

// Level is a syslog severity. Lower values are more severe.
type Level int8

const (
	// EmergencyLevel means the system is unusable
	EmergencyLevel Level = iota
	// AlertLevel means action must be taken immediately
	AlertLevel
	// CriticalLevel for critical conditions such as a component being unavailable
	CriticalLevel
	// ErrorLevel for runtime errors that do not require immediate action
	ErrorLevel
	// WarningLevel for exceptional occurrences that are not errors
	WarningLevel
	// NoticeLevel for normal but significant events
	NoticeLevel
	// InfoLevel for interesting events
	InfoLevel
	// DebugLevel for detailed debug information
	DebugLevel
)

// levelNames is indexed by Level and holds the canonical lowercase names.
var levelNames = [...]string{
	EmergencyLevel: "emergency",
	AlertLevel:     "alert",
	CriticalLevel:  "critical",
	ErrorLevel:     "error",
	WarningLevel:   "warning",
	NoticeLevel:    "notice",
	InfoLevel:      "info",
	DebugLevel:     "debug",
}

// String returns the lowercase name of the level
func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return "unknown"
}

// Valid reports whether l is one of the eight known levels
func (l Level) Valid() bool {
	return l >= EmergencyLevel && l <= DebugLevel
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive.
// The second result is false when the name is not a known level.
func ParseLevel(s string) (Level, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range levelNames {
		if name == s {
			return Level(i), true
		}
	}
	return 0, false
}

// Levels returns all levels ordered from most to least severe.
func Levels() []Level {
	out := make([]Level, len(levelNames))
	for i := range levelNames {
		out[i] = Level(i)
	}
	return out
}

// LevelNames returns the level names in table order.
func LevelNames() []string {
	out := make([]string, len(levelNames))
	copy(out, levelNames[:])
	return out
}

// LevelsAtOrAbove returns the levels from EmergencyLevel down to and
// including target. An unknown target yields the entire table rather
// than an empty list.
func LevelsAtOrAbove(target Level) []Level {
	var out []Level
	for _, l := range Levels() {
		out = append(out, l)
		if l == target {
			return out
		}
	}
	return out
}

// LevelsAtOrAboveName is LevelsAtOrAbove taking a level name. Unknown
// names yield the entire table.
func LevelsAtOrAboveName(name string) []Level {
	l, ok := ParseLevel(name)
	if !ok {
		return Levels()
	}
	return LevelsAtOrAbove(l)
}

// ValidLevels returns the valid entries of levels, in input order. An
// empty input means every level.
func ValidLevels(levels []Level) []Level {
	if len(levels) == 0 {
		return Levels()
	}
	out := make([]Level, 0, len(levels))
	for _, l := range levels {
		if l.Valid() {
			out = append(out, l)
		}
	}
	return out
}

// MarshalText implements encoding.TextMarshaler so levels serialize by name.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
