// Package scheduler bounds how many mod folders are walked at the same time.
//
// Tasks start in submission order. With the default limit of one, every scan
// in the process runs alone.
package scheduler

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/arthur-debert/modcontent/pkg/errors"
	"github.com/arthur-debert/modcontent/pkg/logging"
)

// Task is one unit of scheduled work
type Task func(ctx context.Context) error

// Queue runs tasks with at most Limit of them active at once
type Queue struct {
	sem     *semaphore.Weighted
	limit   int
	pending atomic.Int64
	running atomic.Int64
	logger  zerolog.Logger
}

// New creates a queue. A limit below one means one.
func New(limit int) *Queue {
	if limit < 1 {
		limit = 1
	}
	return &Queue{
		sem:    semaphore.NewWeighted(int64(limit)),
		limit:  limit,
		logger: logging.GetLogger("scheduler"),
	}
}

// Limit returns the number of tasks allowed to run at once
func (q *Queue) Limit() int {
	return q.limit
}

// Pending returns the number of tasks waiting for their turn
func (q *Queue) Pending() int {
	return int(q.pending.Load())
}

// Running returns the number of tasks currently executing
func (q *Queue) Running() int {
	return int(q.running.Load())
}

// Do waits for a free slot, then runs task in the calling goroutine.
// Waiting stops early when ctx is done. A task's failure or panic never
// affects the tasks queued behind it; a panic is returned as ErrInternal.
func (q *Queue) Do(ctx context.Context, task Task) (err error) {
	q.pending.Add(1)
	waitErr := q.sem.Acquire(ctx, 1)
	q.pending.Add(-1)
	if waitErr != nil {
		q.logger.Debug().Err(waitErr).Msg("Gave up waiting for scan slot")
		return waitErr
	}

	q.running.Add(1)
	defer func() {
		q.running.Add(-1)
		q.sem.Release(1)
	}()
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error().Interface("panic", r).Msg("Scheduled task panicked")
			err = errors.Newf(errors.ErrInternal, "scheduled task panicked: %v", r)
		}
	}()

	q.logger.Trace().
		Int("pending", q.Pending()).
		Int("running", q.Running()).
		Msg("Task started")

	return task(ctx)
}

// Run is Do for tasks producing a value
func Run[T any](ctx context.Context, q *Queue, task func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := q.Do(ctx, func(ctx context.Context) error {
		v, err := task(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
