package taylorfields

import (
	"github.com/san-kum/taylorint/internal/series"
	"github.com/san-kum/taylorint/internal/taylor"
)

// PendulumParams mirrors physics.Pendulum's fields; it is the p
// payload this field expects.
type PendulumParams struct {
	Mass    float64
	Length  float64
	Damping float64
	Gravity float64
}

// DefaultPendulumParams matches physics.NewPendulum's defaults.
func DefaultPendulumParams() PendulumParams {
	return PendulumParams{Mass: 1.0, Length: 1.0, Damping: 0.1, Gravity: 9.81}
}

// Pendulum is the damped simple pendulum, series-typed: state
// (theta, omega), undriven (no control input, unlike physics.Pendulum
// which accepts a torque — the Taylor engine's vector-field contract
// carries no actuation channel).
func Pendulum(dx, x []series.Series[float64], p any, t series.Series[float64]) {
	params, ok := p.(PendulumParams)
	if !ok {
		params = DefaultPendulumParams()
	}

	theta := x[0]
	omega := x[1]

	dx[0] = omega

	sinTheta := series.Sin(theta)
	damping := omega.ScaleConst(params.Damping)
	gravity := sinTheta.ScaleConst(params.Mass * params.Gravity * params.Length)
	numerator := damping.Add(gravity).Neg()
	dx[1] = numerator.ScaleConst(1.0 / (params.Mass * params.Length * params.Length))
}

var PendulumVectorField = taylor.VectorField[float64](Pendulum)
