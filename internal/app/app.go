package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/aocrunner/internal/config"
	"github.com/specialistvlad/aocrunner/internal/ctxlog"
	"github.com/specialistvlad/aocrunner/internal/executor"
	"github.com/specialistvlad/aocrunner/internal/input"
	"github.com/specialistvlad/aocrunner/internal/puzzle"
	"github.com/specialistvlad/aocrunner/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and the
// days discovered at startup. It replaces any process-wide state.
type App struct {
	mode     Mode
	in       io.Reader
	out      io.Writer
	logger   *slog.Logger
	settings *config.Model
	inputs   *input.Provider
	pool     *executor.Pool
	days     []*puzzle.Day
}

// NewApp is the constructor for the main application. It loads the
// configuration, registers the solution modules (coreModules unless others
// are given) and discovers the available days. It fails with
// puzzle.ErrNoDays when not even day 1 is registered.
func NewApp(ctx context.Context, streams Streams, appConfig *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	settings := config.Default()
	if loader != nil && len(appConfig.ConfigPaths) > 0 {
		loaded, err := loader.Load(ctx, appConfig.ConfigPaths...)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		settings = loaded
	}
	if err := settings.ApplyEnv(appConfig.lookupEnv()); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(settings.LogLevel, settings.LogFormat, streams.Err)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.", "mode", appConfig.Mode.String())

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	reg.RegisterModules(modules...)
	if err := reg.Validate(ctx, settings.MaxDays); err != nil {
		return nil, err
	}
	logger.Info("Routines registered.", "count", reg.Len(), "keys", idStrings(reg))

	inputs := input.NewProvider(input.Paths{
		Dir:     settings.Inputs.Dir,
		Pattern: settings.Inputs.Pattern,
		Example: settings.Inputs.Example,
	}, settings.SmartInputSwitching)
	pool := executor.NewPool(settings.Workers)
	out := &syncWriter{w: streams.Out}

	days, err := puzzle.Discover(ctx, reg, settings.MaxDays, puzzle.Options{
		Inputs:   inputs,
		Out:      out,
		Parallel: pool,
	})
	if err != nil {
		return nil, err
	}

	return &App{
		mode:     appConfig.Mode,
		in:       streams.In,
		out:      out,
		logger:   logger,
		settings: settings,
		inputs:   inputs,
		pool:     pool,
		days:     days,
	}, nil
}

// Days returns the discovered days. This is primarily for testing.
func (a *App) Days() []*puzzle.Day {
	return a.days
}

// Settings returns the resolved configuration.
func (a *App) Settings() *config.Model {
	return a.settings
}

func (a *App) latestDay() *puzzle.Day {
	return a.days[len(a.days)-1]
}

func idStrings(reg *registry.Registry) string {
	keys := reg.Keys()
	names := make([]string, len(keys))
	for i, id := range keys {
		names[i] = id.String()
	}
	return strings.Join(names, ",")
}
