package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nlogd/core"
	"github.com/philipp01105/nlogd/formatter"
	"github.com/philipp01105/nlogd/handler"
	"github.com/philipp01105/nlogd/handler/celhandler"
	"github.com/philipp01105/nlogd/handler/consolehandler"
	"github.com/philipp01105/nlogd/handler/logrushandler"
	"github.com/philipp01105/nlogd/handler/sloghandler"
	"github.com/philipp01105/nlogd/handler/zaphandler"
	"github.com/philipp01105/nlogd/handler/zerologhandler"
	"github.com/philipp01105/nlogd/logger"
	"github.com/philipp01105/nlogd/processor"
)

type sinkBuilder func(h HandlerConfig, w io.Writer) handler.Sink

var sinkBuilders = map[string]sinkBuilder{
	"console": func(h HandlerConfig, w io.Writer) handler.Sink {
		fc := formatter.Config{IncludeHandler: h.IncludeHandler}
		var f formatter.Formatter = formatter.NewTextFormatter(fc)
		if isJSON(h.Format) {
			f = formatter.NewJSONFormatter(fc)
		}
		return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: w, Formatter: f})
	},
	"slog": func(h HandlerConfig, w io.Writer) handler.Sink {
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		var sh slog.Handler = slog.NewTextHandler(w, opts)
		if isJSON(h.Format) {
			sh = slog.NewJSONHandler(w, opts)
		}
		return sloghandler.NewSink(slog.New(sh))
	},
	"zap": func(h HandlerConfig, w io.Writer) handler.Sink {
		var enc zapcore.Encoder
		if isJSON(h.Format) {
			enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		} else {
			enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		}
		return zaphandler.New(zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zap.DebugLevel)))
	},
	"zerolog": func(h HandlerConfig, w io.Writer) handler.Sink {
		out := w
		if !isJSON(h.Format) {
			out = zerolog.ConsoleWriter{Out: w, NoColor: true}
		}
		return zerologhandler.New(zerolog.New(out).With().Timestamp().Logger().Level(zerolog.DebugLevel))
	},
	"logrus": func(h HandlerConfig, w io.Writer) handler.Sink {
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(logrus.DebugLevel)
		if isJSON(h.Format) {
			l.SetFormatter(&logrus.JSONFormatter{})
		} else {
			l.SetFormatter(&logrus.TextFormatter{DisableColors: true})
		}
		return logrushandler.New(l)
	},
}

var clocks = map[string]func() core.Clock{
	"":       func() core.Clock { return core.SystemClock },
	"system": func() core.Clock { return core.SystemClock },
	"coarse": core.CoarseClock,
}

type processorBuilder func(p ProcessorConfig) processor.Processor

var processorBuilders = map[string]processorBuilder{
	"static": func(p ProcessorConfig) processor.Processor {
		fields := make(core.Context, len(p.Fields))
		for k, v := range p.Fields {
			fields[k] = normalize(v)
		}
		return processor.Static(fields)
	},
	"uuid": func(p ProcessorConfig) processor.Processor {
		return processor.UUID(p.Key)
	},
	"hostname": func(p ProcessorConfig) processor.Processor {
		return processor.Hostname(p.Key)
	},
	"redact": func(p ProcessorConfig) processor.Processor {
		return processor.Redact(p.Keys...)
	},
}

func isJSON(format string) bool {
	return strings.EqualFold(format, "json")
}

// normalize turns the map[interface{}]interface{} values yaml.v2 produces
// into map[string]any so they render as JSON objects.
func normalize(v interface{}) interface{} {
	switch x := v.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []interface{}:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	default:
		return v
	}
}

// Options customizes BuildWith
type Options struct {
	// Outputs maps output names to writers, in addition to stdout and stderr
	Outputs map[string]io.Writer
	// ErrorHook receives sink failures
	ErrorHook logger.ErrorHook
}

// Build validates cfg and returns a Logger wired to stdout and stderr.
// A nil cfg builds Default().
func Build(cfg *Config) (*logger.Logger, error) {
	return BuildWith(cfg, Options{})
}

// BuildWith is Build with extra named outputs and an error hook.
func BuildWith(cfg *Config, opts Options) (*logger.Logger, error) {
	if cfg == nil {
		cfg = Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := logger.NewBuilder().
		WithUTC(cfg.UTCTime).
		WithClock(clocks[strings.ToLower(cfg.Clock)]()).
		WithErrorHook(opts.ErrorHook)

	for _, p := range cfg.Processors {
		b.WithProcessor(p.Name, processorBuilders[strings.ToLower(p.Type)](p))
	}

	for _, h := range cfg.Handlers {
		w, err := output(h.Output, opts.Outputs)
		if err != nil {
			return nil, fmt.Errorf("handler %q: %w", h.Name, err)
		}
		levels := h.ResolveLevels()
		if levels != nil && len(levels) == 0 {
			// no known level: nothing would ever be routed to it
			continue
		}
		sink := sinkBuilders[strings.ToLower(h.Type)](h, w)
		if h.Filter != "" {
			filtered, err := celhandler.New(h.Filter, sink)
			if err != nil {
				return nil, fmt.Errorf("config: handler %q: filter: %w", h.Name, err)
			}
			sink = filtered
		}
		b.WithHandler(h.Name, sink, levels...)
	}
	return b.Build(), nil
}

func output(name string, outputs map[string]io.Writer) (io.Writer, error) {
	if w, ok := outputs[name]; ok {
		return w, nil
	}
	switch strings.ToLower(name) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOutput, name)
	}
}
