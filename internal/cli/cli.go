package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/aocrunner/internal/app"
	"github.com/specialistvlad/aocrunner/internal/config"
	"github.com/spf13/cobra"
)

const longHelp = `aocrunner - runs and times advent calendar puzzle solutions.

Without arguments it starts the interactive build loop. Type a command per line:
  <empty> | all        run every day in parallel
  b | all b            run every day sequentially
  <day>                run both parts of a day
  <day>,<part>         run one part (also <day>.<part> or "<day> <part>")
  exit | close | stop  quit

Configuration is read from aocrunner.hcl (or $AOCRUNNER_CONFIG) and the
AOCRUNNER_* environment variables, which may also be set in a .env file.`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// At most one argument is accepted.
func Parse(args []string, output io.Writer, lookupEnv func(string) (string, bool)) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	if len(args) > 1 {
		return nil, false, &ExitError{Code: ExitUsage, Message: "Invalid program arguments!"}
	}

	var (
		debugDay     bool
		debugDayPart bool
		watch        bool
		parsed       *app.Config
	)

	cmd := &cobra.Command{
		Use:           "aocrunner [--debug-day | --debug-day-part | --watch]",
		Short:         "Run and time advent calendar puzzle solutions.",
		Long:          longHelp,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(*cobra.Command, []string) error {
			mode := app.ModeBuild
			switch {
			case debugDay:
				mode = app.ModeDebugDay
			case debugDayPart:
				mode = app.ModeDebugDayPart
			case watch:
				mode = app.ModeWatch
			}
			parsed = &app.Config{
				Mode:        mode,
				ConfigPaths: configPaths(lookupEnv),
				LookupEnv:   lookupEnv,
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&debugDay, "debug-day", false, "Run both parts of the latest day once and exit.")
	cmd.Flags().BoolVar(&debugDayPart, "debug-day-part", false, "Run the latest part of the latest day once and exit.")
	cmd.Flags().BoolVar(&watch, "watch", false, "Run the latest day and re-run it whenever its input changes.")
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if parsed == nil {
		slog.Debug("Help requested, exiting.")
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "mode", parsed.Mode.String(), "config_paths", parsed.ConfigPaths)
	return parsed, false, nil
}

// configPaths returns $AOCRUNNER_CONFIG when set, else the default file if
// it exists in the working directory.
func configPaths(lookupEnv func(string) (string, bool)) []string {
	if p, ok := lookupEnv(config.EnvConfigPath); ok && p != "" {
		return []string{p}
	}
	if _, err := os.Stat(config.DefaultFileName); err == nil {
		return []string{config.DefaultFileName}
	}
	return nil
}
