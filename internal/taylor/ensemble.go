package taylor

import (
	"sync"

	"github.com/san-kum/taylorint/internal/series"
)

// EnsembleRun is one member of an [Ensemble]: an initial state paired
// with the Config to integrate it under.
type EnsembleRun[U series.Numeric] struct {
	X0  []U
	Cfg Config
}

// Ensemble runs several independent steps-mode integrations of the
// same field concurrently, grounded on dynamo.Ensemble's join
// pattern. Each run owns its own working storage; the field itself
// must be a pure function of its arguments, per spec.md §5.
type Ensemble[U series.Numeric] struct {
	field     VectorField[U]
	fieldName string
	registry  *Registry[U]
	dim       int
	p         any
}

// NewEnsemble returns an Ensemble over field, sharing one registry
// across all member runs.
func NewEnsemble[U series.Numeric](field VectorField[U], fieldName string, registry *Registry[U], dim int, p any) *Ensemble[U] {
	return &Ensemble[U]{field: field, fieldName: fieldName, registry: registry, dim: dim, p: p}
}

// Run integrates every member of runs on its own goroutine and joins
// before returning. The first validation or field error encountered
// is returned; all other results are discarded.
func (e *Ensemble[U]) Run(runs []EnsembleRun[U]) ([]Result[U], error) {
	results := make([]Result[U], len(runs))
	errs := make([]error, len(runs))

	var wg sync.WaitGroup
	for i, r := range runs {
		wg.Add(1)
		go func(idx int, run EnsembleRun[U]) {
			defer wg.Done()
			res, err := Steps(e.field, e.fieldName, e.registry, e.dim, run.X0, run.Cfg, e.p)
			results[idx], errs[idx] = res, err
		}(i, r)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
