package optim

import "math"

// TaylorTrial is one candidate (order, abstol) pair evaluated by
// TaylorTune, together with the step count it produced. StepsTaken is
// the quantity minimized: the fewest accepted steps that still meet
// the tolerance the candidate itself specifies.
type TaylorTrial struct {
	Order      int
	AbsTol     float64
	StepsTaken int
	Err        error
}

// TaylorTune grid-searches (order, abstol) pairs for the Taylor
// engine, the hyperparameter analogue of GridSearch retargeted from
// controller gains to integrator parameters.
type TaylorTune struct {
	orders  []int
	abstols []float64
}

func NewTaylorTune(orders []int, abstols []float64) *TaylorTune {
	return &TaylorTune{orders: orders, abstols: abstols}
}

// Search runs runTrial for every (order, abstol) combination and
// returns the combination with the fewest steps taken, skipping
// trials that error (e.g. max-steps exhausted).
func (t *TaylorTune) Search(runTrial func(order int, abstol float64) (steps int, err error)) (TaylorTrial, bool) {
	best := TaylorTrial{StepsTaken: math.MaxInt}
	found := false

	for _, order := range t.orders {
		for _, abstol := range t.abstols {
			steps, err := runTrial(order, abstol)
			if err != nil {
				continue
			}
			if steps < best.StepsTaken {
				best = TaylorTrial{Order: order, AbsTol: abstol, StepsTaken: steps}
				found = true
			}
		}
	}

	return best, found
}
