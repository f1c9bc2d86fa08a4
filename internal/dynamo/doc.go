// Package dynamo provides the classical-baseline simulation primitives
// that compare, ensemble, and tune-controller drive: the
// fixed/adaptive-step counterpart to the Taylor engine in
// internal/taylor, used to measure how many steps and how much energy
// drift Euler/RK4/RK45 need against a series-based jet integration of
// the same model.
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: numerical integrator interface
//   - [Controller]: feedback controller interface
//   - [Simulator]: orchestrates simulation runs
//
// # Example
//
//	dyn := physics.NewPendulum()
//	integ := integrators.NewRK4()
//	sim := dynamo.New(dyn, integ, control.NewNone(dyn.ControlDim()))
//	result, _ := sim.Run(ctx, x0, cfg)
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. For parallel simulations,
// use the [Ensemble] type, which gives each run its own Simulator.
package dynamo
