package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"

	"github.com/philipp01105/nlogd/core"
)

var (
	// ErrUnknownHandlerType is returned for a handler type Build cannot construct
	ErrUnknownHandlerType = errors.New("config: unknown handler type")
	// ErrUnknownProcessorType is returned for a processor type Build cannot construct
	ErrUnknownProcessorType = errors.New("config: unknown processor type")
	// ErrInvalidLevel is returned by ParseLevel for a name that is not in the severity table
	ErrInvalidLevel = errors.New("config: invalid level")
	// ErrUnknownClock is returned for a clock other than system or coarse
	ErrUnknownClock = errors.New("config: unknown clock")
	// ErrUnknownOutput is returned for an output that is neither stdout, stderr nor a provided writer
	ErrUnknownOutput = errors.New("config: unknown output")
)

// File is the top-level layout of a configuration file
type File struct {
	Logger Config `yaml:"logger"`
}

// Config describes a dispatcher
type Config struct {
	UTCTime bool `yaml:"utc_time"`
	// Clock is system (default) or coarse. The coarse clock caches the
	// time and refreshes it every 500µs, trading timestamp precision for
	// cheaper reads.
	Clock      string            `yaml:"clock"`
	Handlers   []HandlerConfig   `yaml:"handlers"`
	Processors []ProcessorConfig `yaml:"processors"`
}

// HandlerConfig describes one registered sink
type HandlerConfig struct {
	Name string `yaml:"name"`
	// Type is one of console, slog, zap, zerolog, logrus
	Type string `yaml:"type"`
	// Output is stdout (default), stderr, or a writer name passed to BuildWith
	Output string `yaml:"output"`
	// Format is text (default) or json
	Format string `yaml:"format"`
	// Levels lists the exact levels to register at
	Levels []string `yaml:"levels"`
	// MinLevel registers at this level and every more severe one; ignored when Levels is set
	MinLevel string `yaml:"min_level"`
	// Filter is an optional CEL expression
	Filter string `yaml:"filter"`
	// IncludeHandler adds the handler name to console output
	IncludeHandler bool `yaml:"include_handler"`
}

// ProcessorConfig describes one processor in the chain
type ProcessorConfig struct {
	Name string `yaml:"name"`
	// Type is one of static, uuid, hostname, redact
	Type string `yaml:"type"`
	// Key is the context key uuid and hostname write to
	Key string `yaml:"key"`
	// Keys are the context keys redact masks
	Keys []string `yaml:"keys"`
	// Fields are the values static fills in
	Fields map[string]interface{} `yaml:"fields"`
}

// Default returns a configuration with a single text console handler on
// stdout for every level.
func Default() *Config {
	return &Config{
		Handlers: []HandlerConfig{{Name: "console", Type: "console"}},
	}
}

// Load reads and parses a configuration file
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse parses YAML configuration data
func Parse(raw []byte) (*Config, error) {
	var f File
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return &f.Logger, nil
}

// ResolveLevels resolves the levels the handler registers at. Unknown
// names in Levels are dropped, so a list with no known name resolves to an
// empty non-nil slice. An unknown MinLevel resolves to the whole table. A
// nil result means every level.
func (h HandlerConfig) ResolveLevels() []core.Level {
	if len(h.Levels) > 0 {
		out := make([]core.Level, 0, len(h.Levels))
		for _, name := range h.Levels {
			if l, ok := core.ParseLevel(name); ok {
				out = append(out, l)
			}
		}
		return out
	}
	if h.MinLevel != "" {
		return core.LevelsAtOrAboveName(h.MinLevel)
	}
	return nil
}

// ParseLevel is core.ParseLevel returning ErrInvalidLevel for unknown names.
// Handler level lists never fail on unknown names; this is for inputs
// naming a single level that must exist, such as a level to emit at.
func ParseLevel(name string) (core.Level, error) {
	l, ok := core.ParseLevel(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
	}
	return l, nil
}

// Validate checks names, types and formats and returns every problem found.
// Level names are not checked: unknown ones are ignored by ResolveLevels.
func (c *Config) Validate() error {
	var errs error
	for i, h := range c.Handlers {
		if strings.TrimSpace(h.Name) == "" {
			errs = multierr.Append(errs, fmt.Errorf("config: handler %d has no name", i))
		}
		if _, ok := sinkBuilders[strings.ToLower(h.Type)]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q (handler %q)", ErrUnknownHandlerType, h.Type, h.Name))
		}
		switch strings.ToLower(h.Format) {
		case "", "text", "json":
		default:
			errs = multierr.Append(errs, fmt.Errorf("config: handler %q: unknown format %q", h.Name, h.Format))
		}
	}
	if _, ok := clocks[strings.ToLower(c.Clock)]; !ok {
		errs = multierr.Append(errs, fmt.Errorf("%w: %q", ErrUnknownClock, c.Clock))
	}
	for i, p := range c.Processors {
		if strings.TrimSpace(p.Name) == "" {
			errs = multierr.Append(errs, fmt.Errorf("config: processor %d has no name", i))
		}
		if _, ok := processorBuilders[strings.ToLower(p.Type)]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q (processor %q)", ErrUnknownProcessorType, p.Type, p.Name))
		}
	}
	return errs
}
