// Package pool runs fallible tasks on a bounded set of goroutines and
// delivers their outcomes as [expected.Result] values.
package pool

import (
	"context"
	"fmt"
	"runtime"

	"github.com/WinPooh32/expected"
	"github.com/WinPooh32/expected/internal/xslices"
	"golang.org/x/sync/errgroup"
)

// Task is one unit of fallible work.
type Task[T any] func(ctx context.Context) (T, error)

// Run executes tasks on jobs goroutines and streams one Result per task.
// If jobs is not positive, the number of CPU cores is used. Task errors
// become failure Results and do not stop the other tasks; delivery order is
// not specified. The channel is closed after the last send. When the context
// is canceled before every task has run, the final element is a single
// failure Result wrapping the context error.
func Run[T any](ctx context.Context, jobs int, tasks []Task[T]) <-chan expected.Result[T, error] {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	resC := make(chan expected.Result[T, error], jobs)

	go func() {
		defer close(resC)

		eg, ctx := errgroup.WithContext(ctx)

		for lo, hi := range xslices.Ranges(len(tasks), jobs) {
			eg.Go(func() error {
				return runPart(ctx, resC, tasks[lo:hi])
			})
		}

		if err := eg.Wait(); err != nil {
			resC <- expected.Err[T](err)
			return
		}
	}()

	return resC
}

// Collect executes tasks on jobs goroutines and returns their Results in
// task order. If jobs is not positive, the number of CPU cores is used. Task
// errors become failure Results and do not stop the other tasks. The
// returned error is non-nil only when the context is canceled before every
// task has run, in which case the results are nil.
func Collect[T any](ctx context.Context, jobs int, tasks []Task[T]) ([]expected.Result[T, error], error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	res := make([]expected.Result[T, error], len(tasks))

	eg, ctx := errgroup.WithContext(ctx)

	for lo, hi := range xslices.Ranges(len(tasks), jobs) {
		eg.Go(func() error {
			return collectPart(ctx, res, tasks, lo, hi)
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("collect results: %w", err)
	}

	return res, nil
}

func runPart[T any](ctx context.Context, resC chan<- expected.Result[T, error], tasks []Task[T]) error {
	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("context is done: %w", err)
		}

		select {
		case resC <- expected.From(task(ctx)):
		case <-ctx.Done():
			return fmt.Errorf("context is done: %w", ctx.Err())
		}
	}

	return nil
}

// collectPart fills the [lo, hi) slots of res. Parts never overlap, so the
// workers share res without locks.
func collectPart[T any](ctx context.Context, res []expected.Result[T, error], tasks []Task[T], lo, hi int) error {
	for i := lo; i < hi; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("context is done: %w", err)
		}

		res[i] = expected.From(tasks[i](ctx))
	}

	return nil
}
