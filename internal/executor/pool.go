package executor

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/specialistvlad/aocrunner/internal/ctxlog"
	"golang.org/x/sync/errgroup"
)

// Pool fans jobs out over at most Workers goroutines.
type Pool struct {
	workers int
}

// NewPool creates a Pool. A non-positive worker count uses runtime.NumCPU().
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{workers: workers}
}

// Workers returns the configured concurrency limit.
func (p *Pool) Workers() int {
	return p.workers
}

// Execute implements Executor. The first job error cancels the context passed
// to jobs that have not started yet and is returned after all jobs finish.
func (p *Pool) Execute(ctx context.Context, jobs ...Job) error {
	logger := ctxlog.FromContext(ctx)
	if len(jobs) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	var started atomic.Int32
	for _, job := range jobs {
		g.Go(func() error {
			workerID := started.Add(1)
			jobLogger := logger.With("workerID", workerID, "job", job.Name)
			if gctx.Err() != nil {
				jobLogger.Debug("Job skipped, batch already cancelled.")
				return gctx.Err()
			}

			jobLogger.Debug("Worker picked up job.")
			if err := job.Run(ctxlog.WithLogger(gctx, jobLogger)); err != nil {
				jobLogger.Error("Job failed.", "error", err)
				return err
			}
			jobLogger.Debug("Job finished.")
			return nil
		})
	}

	logger.Debug("Waiting for jobs to finish.", "jobs", len(jobs), "workers", p.workers)
	return g.Wait()
}
