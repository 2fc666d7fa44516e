package app

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/specialistvlad/aocrunner/internal/ctxlog"
	"github.com/specialistvlad/aocrunner/internal/dayid"
	"github.com/specialistvlad/aocrunner/internal/executor"
	"github.com/specialistvlad/aocrunner/internal/puzzle"
)

// Run executes the configured mode. Fatal conditions (no usable input, a
// malformed routine) end the run with an error; the build loop returns nil
// when told to exit or when its input stream ends.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "days", len(a.days))

	switch a.mode {
	case ModeDebugDay:
		return a.execute(ctx, request{day: a.latestDay(), parallel: true})
	case ModeDebugDayPart:
		day := a.latestDay()
		part := day.LatestPart()
		return a.execute(ctx, request{day: day, part: &part})
	case ModeWatch:
		return a.runWatch(ctx)
	default:
		return a.runBuild(ctx)
	}
}

// request describes one batch: all days when day is nil, the whole day when
// part is nil, otherwise a single part.
type request struct {
	day      *puzzle.Day
	part     *dayid.Part
	parallel bool
}

// execute runs a batch to completion and prints the results block.
func (a *App) execute(ctx context.Context, req request) error {
	ctx = ctxlog.With(ctx, "run_id", uuid.NewString())
	logger := ctxlog.FromContext(ctx)
	logger.Info("Run started.", "parallel", req.parallel)

	var err error
	switch {
	case req.day == nil:
		err = a.runAll(ctx, req.parallel)
	case req.part == nil:
		err = req.day.Run(ctx, req.parallel)
	default:
		err = req.day.RunPart(ctx, *req.part)
	}
	if err != nil {
		return err
	}

	logger.Info("Run finished.")
	return a.printResults(req)
}

// runAll runs every day, fanning days out over the worker pool when parallel
// is set. Each day then also runs its two parts in parallel.
func (a *App) runAll(ctx context.Context, parallel bool) error {
	jobs := make([]executor.Job, len(a.days))
	for i, day := range a.days {
		jobs[i] = executor.Job{
			Name: fmt.Sprintf("day%d", day.ID()),
			Run:  func(ctx context.Context) error { return day.Run(ctx, parallel) },
		}
	}
	if parallel {
		return a.pool.Execute(ctx, jobs...)
	}
	return executor.Sequential{}.Execute(ctx, jobs...)
}

func (a *App) printResults(req request) error {
	var w io.Writer = a.out
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Results:")
	fmt.Fprintln(w, puzzle.Separator)

	days := a.days
	if req.day != nil {
		days = []*puzzle.Day{req.day}
	}
	for _, day := range days {
		if err := day.PrintSummary(w, req.part); err != nil {
			return err
		}
	}
	fmt.Fprintln(w)
	return nil
}
