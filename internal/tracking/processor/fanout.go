package processor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"affiliate-server/internal/observability"
)

// RetryPolicy bounds how often a side-effect task is attempted.
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
}

var (
	// once is for writes that are not safe to repeat, such as counter increments.
	once = RetryPolicy{Attempts: 1}
	// retried is for writes guarded by a condition or consumed idempotently downstream.
	retried = RetryPolicy{Attempts: 3, Backoff: 200 * time.Millisecond}
)

// task is one named side effect of a recorded click or conversion.
type task struct {
	name   string
	policy RetryPolicy
	run    func(ctx context.Context) error
}

// fanout runs tasks concurrently and waits for all of them. A failing task never
// affects the others.
type fanout struct {
	logger *observability.Logger
	sleep  func(ctx context.Context, d time.Duration)
}

func newFanout(logger *observability.Logger) fanout {
	return fanout{logger: logger, sleep: sleepCtx}
}

// run returns the joined final errors, tagged with task names.
func (f fanout) run(ctx context.Context, tasks []task) error {
	errs := make([]error, len(tasks))

	var wg sync.WaitGroup
	for i, t := range tasks {
		wg.Add(1)
		go func(i int, t task) {
			defer wg.Done()
			errs[i] = f.attempt(ctx, t)
		}(i, t)
	}
	wg.Wait()

	return errors.Join(errs...)
}

func (f fanout) attempt(ctx context.Context, t task) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "task", Value: t.name})

	attempts := t.policy.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 1; i <= attempts; i++ {
		if err = t.run(ctx); err == nil {
			return nil
		}
		if i < attempts {
			f.logger.Warn(ctx, fmt.Sprintf("task %s failed on attempt %d, retrying: %v", t.name, i, err))
			f.sleep(ctx, t.policy.Backoff*time.Duration(i))
		}
	}

	f.logger.Error(ctx, fmt.Sprintf("task %s failed after %d attempts", t.name, attempts), err)
	return fmt.Errorf("%s: %w", t.name, err)
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
