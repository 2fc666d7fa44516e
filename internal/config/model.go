package config

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// CalendarDays is the highest day number probed by discovery by default.
const CalendarDays = 26

// DayPlaceholder marks where the day number goes in Inputs.Pattern.
const DayPlaceholder = "{day}"

// Environment variables that override file configuration.
const (
	EnvConfigPath   = "AOCRUNNER_CONFIG"
	EnvInputDir     = "AOCRUNNER_INPUT_DIR"
	EnvLogLevel     = "AOCRUNNER_LOG_LEVEL"
	EnvLogFormat    = "AOCRUNNER_LOG_FORMAT"
	EnvWorkers      = "AOCRUNNER_WORKERS"
	EnvSmartSwitch  = "AOCRUNNER_SMART_INPUT_SWITCHING"
	DefaultFileName = "aocrunner.hcl"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads every given path in order, each one overriding the values
	// set by the previous, on top of Default().
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Inputs locates the puzzle input files.
type Inputs struct {
	Dir     string
	Pattern string
	Example string
}

// Model is the complete runtime configuration.
type Model struct {
	Inputs              Inputs
	SmartInputSwitching bool
	MaxDays             int
	Workers             int
	LogLevel            string
	LogFormat           string
	WatchDebounce       time.Duration
}

// Default returns the configuration used when nothing overrides it.
func Default() *Model {
	return &Model{
		Inputs: Inputs{
			Dir:     "inputs",
			Pattern: "Input" + DayPlaceholder + ".txt",
			Example: "Example.txt",
		},
		SmartInputSwitching: true,
		MaxDays:             CalendarDays,
		Workers:             runtime.NumCPU(),
		LogLevel:            "warn",
		LogFormat:           "text",
		WatchDebounce:       300 * time.Millisecond,
	}
}

// ApplyEnv overrides fields from environment variables found through lookup.
func (m *Model) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvInputDir); ok && v != "" {
		m.Inputs.Dir = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		m.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		m.LogFormat = strings.ToLower(v)
	}
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		m.Workers = n
	}
	if v, ok := lookup(EnvSmartSwitch); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSmartSwitch, err)
		}
		m.SmartInputSwitching = b
	}
	return nil
}

// Validate reports every invalid field at once.
func (m *Model) Validate() error {
	var errs []error
	if m.Inputs.Dir == "" {
		errs = append(errs, errors.New("inputs.dir cannot be empty"))
	}
	if !strings.Contains(m.Inputs.Pattern, DayPlaceholder) {
		errs = append(errs, fmt.Errorf("inputs.pattern %q must contain %s", m.Inputs.Pattern, DayPlaceholder))
	}
	if m.Inputs.Example == "" {
		errs = append(errs, errors.New("inputs.example cannot be empty"))
	}
	if m.MaxDays < 1 {
		errs = append(errs, fmt.Errorf("max_days must be positive, got %d", m.MaxDays))
	}
	if m.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", m.Workers))
	}
	switch m.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", m.LogLevel))
	}
	if m.LogFormat != "text" && m.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", m.LogFormat))
	}
	if m.WatchDebounce < 0 {
		errs = append(errs, errors.New("watch debounce cannot be negative"))
	}
	return errors.Join(errs...)
}
