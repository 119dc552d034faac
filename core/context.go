package core

import (
	"strings"
)

// Metadata keys filled in by the dispatcher. They are only added when the
// context does not already carry a value under the same key.
const (
	KeyPID         = "_pid"
	KeyDate        = "_date"
	KeyTime        = "_time"
	KeyMicrotime   = "_microtime"
	KeyLevel       = "_level"
	KeyLevelString = "_level_string"
	KeySeverity    = "_severity"
	KeyMessage     = "_message"
	KeyFormatted   = "_formatted"
	KeyHandler     = "_handler"
)

// Context is the key/value metadata accompanying a log message.
type Context map[string]any

// Clone returns a shallow copy. A nil Context clones to an empty one.
func (c Context) Clone() Context {
	out := make(Context, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Union returns a new Context holding every key of c plus the keys of
// other that c lacks. Values in c win on collision.
func (c Context) Union(other Context) Context {
	out := c.Clone()
	for k, v := range other {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	return out
}

// Public returns a copy without the underscore-prefixed metadata keys.
func (c Context) Public() Context {
	out := make(Context, len(c))
	for k, v := range c {
		if strings.HasPrefix(k, "_") {
			continue
		}
		out[k] = v
	}
	return out
}

// Level returns the level stored under KeyLevel, if any.
func (c Context) Level() (Level, bool) {
	switch v := c[KeyLevel].(type) {
	case Level:
		return v, v.Valid()
	case string:
		return ParseLevel(v)
	default:
		return 0, false
	}
}

// String returns the value under key coerced with Stringify, or "" when absent.
func (c Context) String(key string) string {
	v, ok := c[key]
	if !ok {
		return ""
	}
	return Stringify(v)
}

// Fields builds a Context from typed fields. Later fields win.
func Fields(fields ...Field) Context {
	out := make(Context, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value()
	}
	return out
}
