package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/specialistvlad/aocrunner/internal/app"
	"github.com/specialistvlad/aocrunner/internal/cli"
	"github.com/specialistvlad/aocrunner/internal/hcl"
)

// main is the entrypoint for the aocrunner application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded.", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	streams := app.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	if err := run(ctx, streams, os.Args[1:], os.LookupEnv); err != nil {
		exitErr := cli.FromError(err)
		fmt.Fprintln(os.Stderr, exitErr.Message)
		stop()
		os.Exit(exitErr.Code)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, streams app.Streams, args []string, lookupEnv func(string) (string, bool)) error {
	appConfig, shouldExit, err := cli.Parse(args, streams.Out, lookupEnv)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete HCL loader to pass to the app.
	loader := hcl.NewLoader()
	runner, err := app.NewApp(ctx, streams, appConfig, loader)
	if err != nil {
		return err
	}
	return runner.Run(ctx)
}
