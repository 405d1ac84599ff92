// Package logging configures the process-wide zerolog logger, following
// the teacher's env-override-over-profile-default shape.
package logging

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

const (
	EnvLogLevel     = "APPCONSOLE_LOG_LEVEL"
	EnvLogTimestamp = "APPCONSOLE_LOG_TIMESTAMP"
	EnvLogNoColor   = "APPCONSOLE_LOG_NOCOLOR"
	EnvLogBypass    = "APPCONSOLE_LOG_BYPASS"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

type config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
	Bypass    bool
}

var configureOnce sync.Once

// Logger is the process-wide logger, valid after Configure runs.
var Logger zerolog.Logger

// ConfigureRuntime configures Logger for normal process operation.
func ConfigureRuntime() zerolog.Logger {
	return Configure(ProfileRuntime)
}

// ConfigureTests configures Logger for test runs: debug level, no
// timestamps, deterministic output.
func ConfigureTests() zerolog.Logger {
	return Configure(ProfileTest)
}

// Configure builds the process-wide logger once; subsequent calls are
// no-ops and return the already-configured Logger.
func Configure(profile Profile) zerolog.Logger {
	configureOnce.Do(func() {
		cfg := defaultConfig(profile)
		applyEnvOverrides(&cfg)
		Logger = build(cfg)
	})
	return Logger
}

func build(cfg config) zerolog.Logger {
	if cfg.Bypass {
		return zerolog.Nop()
	}
	out := colorable.NewColorableStdout()
	useColor := !cfg.NoColor && isatty.IsTerminal(os.Stdout.Fd())
	writer := zerolog.ConsoleWriter{Out: out, NoColor: !useColor, TimeFormat: time.RFC3339}
	logger := zerolog.New(writer).Level(cfg.Level)
	if cfg.Timestamp {
		logger = logger.With().Timestamp().Logger()
	}
	return logger
}

func defaultConfig(profile Profile) config {
	switch profile {
	case ProfileTest:
		return config{Level: zerolog.DebugLevel, Timestamp: false}
	default:
		return config{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

func applyEnvOverrides(cfg *config) {
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogBypass)); ok {
		cfg.Bypass = v
	}
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace", "diagnostics":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none", "inactive":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
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
