// Package physics provides dynamical system models for simulation.
//
// Each model implements the [dynamo.System] interface, defining the
// differential equations governing the system's evolution:
//
//   - [Pendulum]: damped, driven simple pendulum
//   - [DoublePendulum]: chaotic coupled pendulum
//   - [Lorenz]: butterfly attractor
//   - [SpringMass]: damped mass-spring oscillator
//
// Many models also implement [dynamo.Configurable] for runtime parameter
// adjustment and [dynamo.Hamiltonian] for energy calculation.
//
// # Energy Conservation
//
// For Hamiltonian systems, use [dynamo.Hamiltonian] to monitor energy drift:
//
//	dyn := physics.NewPendulum()
//	if h, ok := dyn.(dynamo.Hamiltonian); ok {
//	    energy := h.Energy(state)
//	}
package physics
