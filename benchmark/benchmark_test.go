package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/philipp01105/nlogd/core"
	"github.com/philipp01105/nlogd/formatter"
	"github.com/philipp01105/nlogd/handler"
	"github.com/philipp01105/nlogd/handler/celhandler"
	"github.com/philipp01105/nlogd/handler/logrushandler"
	"github.com/philipp01105/nlogd/handler/sloghandler"
	"github.com/philipp01105/nlogd/handler/zaphandler"
	"github.com/philipp01105/nlogd/handler/zerologhandler"
	"github.com/philipp01105/nlogd/logger"
	"github.com/philipp01105/nlogd/processor"
)

var requestCtx = core.Context{
	"method": "GET",
	"path":   "/api/users",
	"status": 200,
}

// Benchmark dispatch into a no-op sink (dispatcher overhead only)
func BenchmarkDispatch_Noop(b *testing.B) {
	l := logger.NewBuilder().WithHandler("noop", newNoopSink()).Build()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("request {method} {path}", requestCtx)
	}
}

// Benchmark fan-out to several sinks at the same level
func BenchmarkDispatch_FanOut(b *testing.B) {
	bld := logger.NewBuilder()
	for _, name := range []string{"a", "b", "c", "d"} {
		bld.WithHandler(name, newNoopSink())
	}
	l := bld.Build()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("fan out", requestCtx)
	}
}

// Benchmark a record carrying a list of messages
func BenchmarkDispatch_Sequence(b *testing.B) {
	l := logger.NewBuilder().WithHandler("noop", newNoopSink()).Build()
	messages := []string{"first", "second", "third"}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info(messages, requestCtx)
	}
}

// Benchmark the processor chain with the built-in processors
func BenchmarkDispatch_Processors(b *testing.B) {
	l := logger.NewBuilder().
		WithHandler("noop", newNoopSink()).
		WithProcessor("static", processor.Static(core.Context{"service": "api"})).
		WithProcessor("redact", processor.Redact("password")).
		WithProcessor("uuid", processor.UUID("request_id")).
		Build()
	ctx := core.Context{"password": "hunter2"}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("login", ctx)
	}
}

// Benchmark the cost of each adapter when the dispatcher forwards to it
func BenchmarkBridge(b *testing.B) {
	sinks := map[string]handler.Sink{
		"zap":     zaphandler.New(newZap(zap.DebugLevel, nil)),
		"zerolog": zerologhandler.New(newZerolog(zerolog.DebugLevel)),
		"logrus":  logrushandler.New(newLogrus(logrus.DebugLevel)),
		"slog":    sloghandler.NewSink(slog.New(newSlog(slog.LevelDebug))),
	}
	for name, sink := range sinks {
		b.Run(name, func(b *testing.B) {
			l := logger.NewBuilder().WithHandler(name, sink).Build()
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				l.Info("request handled", requestCtx)
			}
		})
	}
}

// Benchmark slog routed through the dispatcher as its backend
func BenchmarkSlogBackend(b *testing.B) {
	l := logger.NewBuilder().WithHandler("noop", newNoopSink()).Build()
	sl := slog.New(sloghandler.NewSlogHandler(l, core.DebugLevel))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sl.Info("request handled", "method", "GET", "status", 200)
	}
}

// Benchmark the CEL filter with a matching and a rejecting expression
func BenchmarkCELFilter(b *testing.B) {
	for name, expr := range map[string]string{
		"match":  `context.status == 200`,
		"reject": `context.status >= 500`,
	} {
		b.Run(name, func(b *testing.B) {
			h, err := celhandler.New(expr, newNoopSink())
			if err != nil {
				b.Fatal(err)
			}
			l := logger.NewBuilder().WithHandler("cel", h).Build()
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				l.Info("request handled", requestCtx)
			}
		})
	}
}

// Benchmark the text and JSON formatters on a dispatched record
func BenchmarkFormatters(b *testing.B) {
	ctx := requestCtx.Union(core.Context{
		core.KeyLevel:     core.InfoLevel,
		core.KeyFormatted: "request handled",
	})
	for name, f := range map[string]formatter.WriterFormatter{
		"text": formatter.NewTextFormatter(formatter.Config{}),
		"json": formatter.NewJSONFormatter(formatter.Config{}),
	} {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				f.FormatTo(core.NewRecord("request handled", ctx), io.Discard)
			}
		})
	}
}
