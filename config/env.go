package config

import (
	"os"
	"strconv"
)

// FromEnv overlays NLOG_* environment variables onto cfg.
//
// NLOG_UTC_TIME sets UTCTime and NLOG_CLOCK sets Clock. NLOG_MIN_LEVEL
// sets MinLevel on every handler that does not list explicit levels.
func FromEnv(cfg *Config) {
	if v := os.Getenv("NLOG_UTC_TIME"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UTCTime = b
		}
	}
	if v := os.Getenv("NLOG_CLOCK"); v != "" {
		cfg.Clock = v
	}
	if v := os.Getenv("NLOG_MIN_LEVEL"); v != "" {
		for i := range cfg.Handlers {
			if len(cfg.Handlers[i].Levels) == 0 {
				cfg.Handlers[i].MinLevel = v
			}
		}
	}
}
