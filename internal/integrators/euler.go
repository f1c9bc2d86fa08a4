package integrators

import "github.com/san-kum/taylorint/internal/dynamo"

// Euler is a first-order fixed-step integrator, kept mainly as the
// floor of compare's accepted-step/energy-drift table: a Taylor run at
// any reasonable order accepts far fewer steps for the same accuracy.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t float64, dt float64) dynamo.State {
	dx := dyn.Derive(x, u, t)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
