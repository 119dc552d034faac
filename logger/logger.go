package logger

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/philipp01105/nlogd/core"
	"github.com/philipp01105/nlogd/formatter"
	"github.com/philipp01105/nlogd/handler"
	"github.com/philipp01105/nlogd/processor"
)

// ErrorHook receives sink failures. name is the display name the sink
// was registered under.
type ErrorHook func(name string, err error)

// dispatcher is the state shared by a Logger and the children created
// with With.
type dispatcher struct {
	handlers   *handler.Registry
	processors *processor.Chain
	stats      *handler.Stats
	// sending is set for the duration of a fan-out
	sending   atomic.Bool
	utc       atomic.Bool
	clock     core.Clock
	pid       int
	errorHook ErrorHook
}

// Logger is the dispatcher: it enriches records through the processor
// chain and fans them out to the sinks registered at the record's level.
//
// Dispatch is synchronous. While a fan-out is in flight every other Log
// call on the same dispatcher is dropped, whether it comes from a sink
// logging re-entrantly or from another goroutine. Callers that need all
// concurrent records delivered must serialize Log calls themselves.
type Logger struct {
	d      *dispatcher
	fields core.Context
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handlers   []registration
	processors []processor.Entry
	utc        bool
	clock      core.Clock
	errorHook  ErrorHook
	fields     core.Context
}

type registration struct {
	name   string
	sink   handler.Sink
	levels []core.Level
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		clock: core.SystemClock, // Default clock
	}
}

// WithHandler registers sink under name at levels (all levels when none are given)
func (b *Builder) WithHandler(name string, sink handler.Sink, levels ...core.Level) *Builder {
	b.handlers = append(b.handlers, registration{name: name, sink: sink, levels: levels})
	return b
}

// WithProcessor appends a processor to the chain
func (b *Builder) WithProcessor(name string, p processor.Processor) *Builder {
	b.processors = append(b.processors, processor.Entry{Name: name, Processor: p})
	return b
}

// WithUTC selects UTC instead of local time for timestamp metadata
func (b *Builder) WithUTC(utc bool) *Builder {
	b.utc = utc
	return b
}

// WithClock sets the time source for timestamp metadata
func (b *Builder) WithClock(clock core.Clock) *Builder {
	if clock != nil {
		b.clock = clock
	}
	return b
}

// WithErrorHook sets the function that receives sink failures
func (b *Builder) WithErrorHook(hook ErrorHook) *Builder {
	b.errorHook = hook
	return b
}

// WithFields adds default context to all records
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	if b.fields == nil {
		b.fields = core.Context{}
	}
	for k, v := range core.Fields(fields...) {
		b.fields[k] = v
	}
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	d := &dispatcher{
		handlers:   handler.NewRegistry(),
		processors: processor.NewChain(),
		stats:      handler.NewStats(),
		clock:      b.clock,
		pid:        os.Getpid(),
		errorHook:  b.errorHook,
	}
	d.utc.Store(b.utc)
	for _, r := range b.handlers {
		d.handlers.Register(r.name, r.sink, r.levels...)
	}
	for _, p := range b.processors {
		d.processors.Register(p.Name, p.Processor)
	}
	return &Logger{d: d, fields: b.fields.Clone()}
}

// New creates a Logger with no sinks and no processors
func New() *Logger {
	return NewBuilder().Build()
}

// With creates a child Logger carrying additional default context. The
// child shares sinks, processors and the recursion guard with its parent.
func (l *Logger) With(fields ...core.Field) *Logger {
	if l == nil {
		return nil
	}
	merged := l.fields.Clone()
	for k, v := range core.Fields(fields...) {
		merged[k] = v
	}
	return &Logger{d: l.d, fields: merged}
}

// Log dispatches message at level.
//
// message may be a string, a core.Loggable, a list, or any value with a
// text form (see core.MessageOf). ctx is never modified. Sink failures
// are contained: Log never returns an error and a sink's error or panic
// never reaches the caller.
func (l *Logger) Log(level core.Level, message any, ctx core.Context) {
	if l == nil {
		return
	}
	d := l.d
	if d.sending.Load() {
		d.stats.IncrementReentrant()
		return
	}
	if !d.handlers.Has(level) {
		d.stats.IncrementUnrouted()
		return
	}

	ctx = ctx.Union(l.fields)
	msg := core.MessageOf(message)
	if s, ok := msg.(core.Structured); ok {
		ctx = s.LogContext().Union(ctx)
		msg = core.Scalar(s.LogMessage())
	}

	ctx = d.processors.Apply(ctx)

	var text string
	switch m := msg.(type) {
	case core.Sequence:
		// Each element re-enters Log with the already processed context,
		// so processors run a second time per element. This mirrors the
		// existing behavior and is kept until the intended semantics are
		// decided.
		for _, element := range m {
			l.Log(level, element, ctx)
		}
		return
	case core.Scalar:
		text = string(m)
	}

	ctx = ctx.Union(d.metadata(level, text, ctx))

	if !d.sending.CompareAndSwap(false, true) {
		d.stats.IncrementReentrant()
		return
	}
	defer d.sending.Store(false)

	for _, e := range d.handlers.At(level) {
		sinkCtx := ctx.Clone()
		sinkCtx[core.KeyHandler] = e.Name
		if err := handler.Invoke(e.Sink, text, sinkCtx); err != nil {
			d.stats.IncrementFailed()
			if d.errorHook != nil {
				d.errorHook(e.Name, err)
			}
			continue
		}
		d.stats.IncrementDelivered(level)
	}
}

// metadata computes the dispatcher's record metadata. The formatted
// message is rendered against ctx as it stands before the merge.
func (d *dispatcher) metadata(level core.Level, message string, ctx core.Context) core.Context {
	now := d.clock()
	if d.utc.Load() {
		now = now.UTC()
	} else {
		now = now.Local()
	}
	return core.Context{
		core.KeyDate:        now.Format("2006-01-02"),
		core.KeyTime:        now.Format("15:04:05.000"),
		core.KeyMicrotime:   float64(now.UnixNano()) / 1e9,
		core.KeyPID:         d.pid,
		core.KeyLevel:       level,
		core.KeyLevelString: level.String(),
		core.KeySeverity:    level.String(),
		core.KeyMessage:     message,
		core.KeyFormatted:   formatter.Interpolate(message, ctx),
	}
}

// mergeContexts folds optional contexts left to right; later keys win.
func mergeContexts(ctxs []core.Context) core.Context {
	switch len(ctxs) {
	case 0:
		return nil
	case 1:
		return ctxs[0]
	}
	out := core.Context{}
	for _, c := range ctxs {
		for k, v := range c {
			out[k] = v
		}
	}
	return out
}

// Emergency logs that the system is unusable
func (l *Logger) Emergency(message any, ctx ...core.Context) {
	l.Log(core.EmergencyLevel, message, mergeContexts(ctx))
}

// Alert logs that action must be taken immediately
func (l *Logger) Alert(message any, ctx ...core.Context) {
	l.Log(core.AlertLevel, message, mergeContexts(ctx))
}

// Critical logs a critical condition
func (l *Logger) Critical(message any, ctx ...core.Context) {
	l.Log(core.CriticalLevel, message, mergeContexts(ctx))
}

// Error logs a runtime error
func (l *Logger) Error(message any, ctx ...core.Context) {
	l.Log(core.ErrorLevel, message, mergeContexts(ctx))
}

// Warning logs an exceptional occurrence that is not an error
func (l *Logger) Warning(message any, ctx ...core.Context) {
	l.Log(core.WarningLevel, message, mergeContexts(ctx))
}

// Notice logs a normal but significant event
func (l *Logger) Notice(message any, ctx ...core.Context) {
	l.Log(core.NoticeLevel, message, mergeContexts(ctx))
}

// Info logs an interesting event
func (l *Logger) Info(message any, ctx ...core.Context) {
	l.Log(core.InfoLevel, message, mergeContexts(ctx))
}

// Debug logs detailed debug information
func (l *Logger) Debug(message any, ctx ...core.Context) {
	l.Log(core.DebugLevel, message, mergeContexts(ctx))
}

// RegisterHandler registers sink under name at levels (all levels when
// none are given). Invalid levels are ignored.
func (l *Logger) RegisterHandler(name string, sink handler.Sink, levels ...core.Level) *Logger {
	l.d.handlers.Register(name, sink, levels...)
	return l
}

// UnregisterHandler removes name from levels (all levels when none are
// given) and returns the number of level registrations removed.
func (l *Logger) UnregisterHandler(name string, levels ...core.Level) int {
	return l.d.handlers.Unregister(name, levels...)
}

// UnregisterHandlers is UnregisterHandler for several names; the counts are summed.
func (l *Logger) UnregisterHandlers(names []string, levels ...core.Level) int {
	return l.d.handlers.UnregisterAll(names, levels...)
}

// RegisterProcessor adds p to the chain, or replaces the processor
// registered under name in place.
func (l *Logger) RegisterProcessor(name string, p processor.Processor) *Logger {
	l.d.processors.Register(name, p)
	return l
}

// UnregisterProcessor removes name from the chain
func (l *Logger) UnregisterProcessor(name string) *Logger {
	l.d.processors.Unregister(name)
	return l
}

// HandlerNames returns the registered handler display names
func (l *Logger) HandlerNames() []string {
	return l.d.handlers.Names()
}

// HandlerLevels returns the levels name is registered at, most severe first.
// Names are case-insensitive.
func (l *Logger) HandlerLevels(name string) []core.Level {
	return l.d.handlers.LevelsOf(name)
}

// ProcessorNames returns the processor names in chain order
func (l *Logger) ProcessorNames() []string {
	return l.d.processors.Names()
}

// Levels returns the severity table
func (l *Logger) Levels() []core.Level {
	return core.Levels()
}

// LevelsAtOrAbove returns the levels from emergency down to level. An
// unknown level yields the whole table.
func (l *Logger) LevelsAtOrAbove(level core.Level) []core.Level {
	return core.LevelsAtOrAbove(level)
}

// SetUTC selects UTC or local time for timestamp metadata
func (l *Logger) SetUTC(utc bool) {
	l.d.utc.Store(utc)
}

// UTC reports whether timestamp metadata uses UTC
func (l *Logger) UTC() bool {
	return l.d.utc.Load()
}

// Sending reports whether a fan-out is currently in flight
func (l *Logger) Sending() bool {
	return l.d.sending.Load()
}

// Stats returns a snapshot of the dispatch statistics
func (l *Logger) Stats() handler.Snapshot {
	return l.d.stats.GetSnapshot()
}

// DumpConfig renders the dispatcher configuration as aligned key/value lines.
func (l *Logger) DumpConfig() string {
	var pairs [][2]string
	pairs = append(pairs,
		[2]string{"Currently sending", yesNo(l.Sending())},
		[2]string{"UTC Logging", yesNo(l.UTC())},
	)
	for _, e := range l.d.processors.Entries() {
		pairs = append(pairs, [2]string{"Processor named " + e.Name, fmt.Sprintf("%T", e.Processor)})
	}
	for _, level := range core.Levels() {
		entries := l.d.handlers.At(level)
		value := "None"
		if len(entries) > 0 {
			types := make([]string, len(entries))
			for i, e := range entries {
				types[i] = fmt.Sprintf("%T", e.Sink)
			}
			value = strings.Join(types, ", ")
		}
		pairs = append(pairs, [2]string{"Handler at " + level.String(), value})
	}
	return formatPairs(pairs)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// formatPairs pads keys to a common width and writes one "key: value" line per pair
func formatPairs(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		if len(p[0]) > width {
			width = len(p[0])
		}
	}
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(p[0])
		b.WriteString(strings.Repeat(" ", width-len(p[0])))
		b.WriteString(": ")
		b.WriteString(p[1])
		b.WriteByte('\n')
	}
	return b.String()
}

// Close closes every registered sink implementing io.Closer
func (l *Logger) Close() error {
	return l.d.handlers.Close()
}
