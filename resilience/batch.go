package resilience

import (
	"context"
	"sync"
)

// BatchOptions configures Batch's concurrency bound, retry behavior per
// item, and early-exit policy.
type BatchOptions struct {
	Concurrency  int
	Retry        *RetryOptions
	StopOnError  bool
}

// BatchItemResult pairs one item's index with its outcome.
type BatchItemResult struct {
	Index int
	Err   error
}

// Batch runs one operation per index in [0, n) with bounded concurrency
// (default 3, per spec §4.2), optionally retrying each item and optionally
// stopping at the first error. It returns one BatchItemResult per item,
// in index order, regardless of completion order.
func Batch(ctx context.Context, n int, opts BatchOptions, fn func(ctx context.Context, index int) error) []BatchItemResult {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 3
	}

	results := make([]BatchItemResult, n)
	sem := make(chan struct{}, opts.Concurrency)
	var wg sync.WaitGroup

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var stopMu sync.Mutex
	stopped := false

	for i := 0; i < n; i++ {
		stopMu.Lock()
		if stopped {
			stopMu.Unlock()
			results[i] = BatchItemResult{Index: i, Err: context.Canceled}
			continue
		}
		stopMu.Unlock()

		wg.Add(1)
		sem <- struct{}{}
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			var err error
			if opts.Retry != nil {
				res := Retry(runCtx, *opts.Retry, func(ctx context.Context) error {
					return fn(ctx, idx)
				})
				err = res.Err
			} else {
				err = fn(runCtx, idx)
			}

			results[idx] = BatchItemResult{Index: idx, Err: err}

			if err != nil && opts.StopOnError {
				stopMu.Lock()
				stopped = true
				stopMu.Unlock()
				cancel()
			}
		}(i)
	}

	wg.Wait()
	return results
}
