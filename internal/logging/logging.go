// Package logging builds the zerolog logger shared by the stylerun binaries.
package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "STYLERUN_LOG_LEVEL"
	EnvLogTimestamp = "STYLERUN_LOG_TIMESTAMP"
	EnvLogNoColor   = "STYLERUN_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

type Options struct {
	App       string
	Out       io.Writer
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
}

// DefaultOptions returns the options for profile writing to out.
func DefaultOptions(profile Profile, out io.Writer) Options {
	opts := Options{App: "stylerun", Out: out}
	switch profile {
	case ProfileTest:
		opts.Level = zerolog.DebugLevel
		opts.Timestamp = false
		opts.NoColor = true
	default:
		opts.Level = zerolog.InfoLevel
		opts.Timestamp = true
	}
	return opts
}

// Configure builds a console logger from opts and installs it as the zerolog
// global logger.
func Configure(opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	w := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    opts.NoColor,
		TimeFormat: time.RFC3339,
	}
	if !opts.Timestamp {
		w.PartsExclude = []string{zerolog.TimestampFieldName}
	}

	ctx := zerolog.New(w).Level(opts.Level).With()
	if opts.Timestamp {
		ctx = ctx.Timestamp()
	}
	if opts.App != "" {
		ctx = ctx.Str("app", opts.App)
	}
	logger := ctx.Logger()
	log.Logger = logger
	return logger
}

// ApplyEnv overrides opts from the STYLERUN_LOG_* environment variables.
// Unset or unparseable values leave the option alone.
func ApplyEnv(opts *Options) {
	applyEnv(opts, os.Getenv)
}

func applyEnv(opts *Options, getenv func(string) string) {
	if lvl, ok := ParseLevel(getenv(EnvLogLevel)); ok {
		opts.Level = lvl
	}
	if v, ok := parseBool(getenv(EnvLogTimestamp)); ok {
		opts.Timestamp = v
	}
	if v, ok := parseBool(getenv(EnvLogNoColor)); ok {
		opts.NoColor = v
	}
}

// ParseLevel maps a level name to a zerolog level. ok is false for empty or
// unknown names.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

// OpenFile opens path for appending log lines. The terminal UI owns stdout,
// so the editor logs here instead.
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
