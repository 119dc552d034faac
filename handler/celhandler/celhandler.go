// Package celhandler provides a sink that forwards a record to another
// sink only when a CEL expression evaluates to true for it.
//
// The expression sees four variables:
//
//	level     int     the numeric level, 0 (emergency) to 7 (debug)
//	severity  string  the level name
//	message   string  the interpolated message
//	context   map     the full record context, metadata included
//
// For example, `level <= 3 || has(context.user) && context.user == "root"`.
// A record for which evaluation fails or yields a non-bool is dropped.
package celhandler

import (
	"io"
	"strings"
	"time"

	"github.com/google/cel-go/cel"

	"github.com/philipp01105/nlogd/core"
	"github.com/philipp01105/nlogd/handler"
)

// CELHandler filters records with a compiled CEL program
type CELHandler struct {
	prog    cel.Program
	enabled bool
	next    handler.Sink
}

// New compiles expr and returns a handler forwarding matching records to
// next. An empty expression matches every record.
func New(expr string, next handler.Sink) (*CELHandler, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return &CELHandler{next: next}, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("level", cel.IntType),
		cel.Variable("severity", cel.StringType),
		cel.Variable("message", cel.StringType),
		cel.Variable("context", cel.MapType(cel.StringType, cel.DynType)),
	)
	if err != nil {
		return nil, err
	}
	ast, iss := env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return nil, iss.Err()
	}
	checked, iss2 := env.Check(ast)
	if iss2 != nil && iss2.Err() != nil {
		return nil, iss2.Err()
	}
	prog, err := env.Program(checked)
	if err != nil {
		return nil, err
	}
	return &CELHandler{prog: prog, enabled: true, next: next}, nil
}

// Match reports whether the record passes the filter.
func (h *CELHandler) Match(message string, ctx core.Context) bool {
	if !h.enabled {
		return true
	}
	record := core.NewRecord(message, ctx)
	vars := make(map[string]any, len(ctx))
	for k, v := range ctx {
		vars[k] = celValue(v)
	}
	out, _, err := h.prog.Eval(map[string]any{
		"level":    int64(record.Level),
		"severity": record.Level.String(),
		"message":  record.Formatted(),
		"context":  vars,
	})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}

// Log implements handler.Sink.
func (h *CELHandler) Log(message string, ctx core.Context) error {
	if h.next == nil || !h.Match(message, ctx) {
		return nil
	}
	return h.next.Log(message, ctx)
}

// Close closes the wrapped sink if it implements io.Closer.
func (h *CELHandler) Close() error {
	if c, ok := h.next.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// celValue converts a context value to a type CEL understands natively.
func celValue(v any) any {
	switch x := v.(type) {
	case nil, string, bool, int64, uint64, float64, []byte, time.Time, time.Duration:
		return x
	case core.Level:
		return int64(x)
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return uint64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case float32:
		return float64(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = celValue(e)
		}
		return out
	case []string:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = e
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = celValue(e)
		}
		return out
	case core.Context:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = celValue(e)
		}
		return out
	default:
		return core.Stringify(x)
	}
}
