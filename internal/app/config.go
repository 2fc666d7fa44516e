package app

import (
	"fmt"
	"io"
	"os"
)

// Mode selects what App.Run does.
type Mode int

const (
	// ModeBuild reads commands from the input stream until told to exit.
	ModeBuild Mode = iota
	// ModeDebugDay runs both parts of the latest day once.
	ModeDebugDay
	// ModeDebugDayPart runs the latest part of the latest day once.
	ModeDebugDayPart
	// ModeWatch re-runs the latest day whenever its input changes.
	ModeWatch
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeBuild:
		return "build"
	case ModeDebugDay:
		return "debug-day"
	case ModeDebugDayPart:
		return "debug-day-part"
	case ModeWatch:
		return "watch"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Config holds everything the entrypoint decides before the App is built.
type Config struct {
	Mode Mode
	// ConfigPaths are configuration files merged in order.
	ConfigPaths []string
	// LookupEnv resolves environment overrides. Nil uses os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Streams are the process streams the App talks to.
type Streams struct {
	In  io.Reader // interactive commands
	Out io.Writer // progress and results
	Err io.Writer // structured logs
}

func (c *Config) lookupEnv() func(string) (string, bool) {
	if c.LookupEnv != nil {
		return c.LookupEnv
	}
	return os.LookupEnv
}
