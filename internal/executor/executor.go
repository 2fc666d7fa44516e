// Package executor runs batches of independent jobs, either one after
// another or fanned out over a bounded set of workers. Execute always
// returns only after every started job has finished.
package executor

import "context"

// Job is a single named unit of work.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Executor is responsible for running a batch of jobs to completion.
type Executor interface {
	Execute(ctx context.Context, jobs ...Job) error
}

// Sequential runs jobs in order and stops at the first failure.
type Sequential struct{}

// Execute implements Executor.
func (Sequential) Execute(ctx context.Context, jobs ...Job) error {
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := job.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}
