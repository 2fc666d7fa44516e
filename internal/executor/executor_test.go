package executor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestPoolRunsAllJobsBeforeReturning(t *testing.T) {
	defer goleak.VerifyNone(t)

	var done atomic.Int32
	jobs := make([]Job, 8)
	for i := range jobs {
		jobs[i] = Job{Name: "sleeper", Run: func(context.Context) error {
			time.Sleep(10 * time.Millisecond)
			done.Add(1)
			return nil
		}}
	}

	require.NoError(t, NewPool(4).Execute(context.Background(), jobs...))
	assert.EqualValues(t, 8, done.Load())
}

func TestPoolRunsJobsConcurrently(t *testing.T) {
	defer goleak.VerifyNone(t)

	// Both jobs block until the other has started, so a serial pool would deadlock.
	var wg sync.WaitGroup
	wg.Add(2)
	job := Job{Name: "rendezvous", Run: func(context.Context) error {
		wg.Done()
		wg.Wait()
		return nil
	}}

	errCh := make(chan error, 1)
	go func() { errCh <- NewPool(2).Execute(context.Background(), job, job) }()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("jobs did not run concurrently")
	}
}

func TestPoolReturnsFirstError(t *testing.T) {
	defer goleak.VerifyNone(t)

	boom := errors.New("boom")
	err := NewPool(1).Execute(context.Background(),
		Job{Name: "fails", Run: func(context.Context) error { return boom }},
		Job{Name: "skipped", Run: func(context.Context) error { return nil }},
	)
	assert.ErrorIs(t, err, boom)
}

func TestNewPoolDefaultsWorkers(t *testing.T) {
	assert.Positive(t, NewPool(0).Workers())
	assert.Equal(t, 3, NewPool(3).Workers())
}

func TestSequentialRunsInOrder(t *testing.T) {
	var order []string
	record := func(name string) Job {
		return Job{Name: name, Run: func(context.Context) error {
			order = append(order, name)
			return nil
		}}
	}

	require.NoError(t, Sequential{}.Execute(context.Background(), record("a"), record("b"), record("c")))
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestSequentialStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	ran := false
	err := Sequential{}.Execute(context.Background(),
		Job{Name: "fails", Run: func(context.Context) error { return boom }},
		Job{Name: "never", Run: func(context.Context) error { ran = true; return nil }},
	)
	assert.ErrorIs(t, err, boom)
	assert.False(t, ran)
}
