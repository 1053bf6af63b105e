package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Workers runs a set of workers concurrently.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add registers w. It must not be called while Run is in progress.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

func (w *Workers) Len() int {
	return len(w.workers)
}

func (w *Workers) Name() string {
	return "workers"
}

// Run starts every worker and waits for all of them to return. Context
// cancellation is not reported as an error; other failures are joined.
func (w *Workers) Run(ctx context.Context) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, worker := range w.workers {
		wg.Go(func() {
			if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", worker.Name(), err))
				mu.Unlock()
			}
		})
	}

	wg.Wait()
	return errors.Join(errs...)
}
