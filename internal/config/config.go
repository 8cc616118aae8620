// Package config sets up the logger and reads the optional config file.
package config

import (
	"github.com/retroenv/nesbankdisasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Log levels that can be set in the config file.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelError = "error"
)

// CreateLogger creates the logger for the program options. Debug output
// takes precedence over quiet mode, which only reports errors.
func CreateLogger(opts options.Program) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case opts.Debug:
		cfg.Level = log.DebugLevel
	case opts.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// applyLogLevel maps a config file log level to the debug and quiet options.
// It does nothing if either option was passed on the command line.
func applyLogLevel(level string, opts *options.Program, changed func(flag string) bool) {
	if level == "" || changed("debug") || changed("quiet") {
		return
	}

	opts.Debug = level == LogLevelDebug
	opts.Quiet = level == LogLevelError
}
