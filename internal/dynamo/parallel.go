package dynamo

import (
	"context"
	"sync"
)

// Ensemble runs the same model/integrator/controller combination from
// the same initial state numRuns times, setting Config.Seed to
// seedStart+i for run i. Simulator.Run does not read Config.Seed and
// no model, integrator or controller here draws random numbers, so
// every run of an ensemble produces the same result.
type Ensemble struct {
	base      *Simulator
	numRuns   int
	seedStart int64
}

func NewEnsemble(s *Simulator, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{base: s, numRuns: numRuns, seedStart: seedStart}
}

// Run dispatches the ensemble across ParallelFor's worker chunks rather
// than one goroutine per run, so a large numRuns doesn't oversubscribe
// the scheduler the way a goroutine-per-run Ensemble would.
func (e *Ensemble) Run(ctx context.Context, x0 State, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	ParallelFor(e.numRuns, 1, func(start, end int) {
		for idx := start; idx < end; idx++ {
			cfgCopy := cfg
			cfgCopy.Seed = e.seedStart + int64(idx)

			s := New(e.base.dyn, e.base.integrator, e.base.controller)
			for _, m := range e.base.metrics {
				s.AddMetric(m)
			}

			results[idx], errs[idx] = s.Run(ctx, x0, cfgCopy)
		}
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// ParallelFor splits [0, n) into at most numWorkers contiguous chunks
// and runs fn over each chunk on its own goroutine, falling back to a
// single synchronous call when n is too small to be worth splitting.
func ParallelFor(n, minChunk int, fn func(start, end int)) {
	const numWorkers = 4
	if n <= minChunk || numWorkers <= 1 {
		fn(0, n)
		return
	}

	workers := numWorkers
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
