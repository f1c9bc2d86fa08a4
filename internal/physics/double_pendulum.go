package physics

import (
	"math"

	"github.com/san-kum/taylorint/internal/dynamo"
)

type DoublePendulum struct {
	M1, M2  float64
	L1, L2  float64
	Gravity float64
}

func NewDoublePendulum() *DoublePendulum {
	return &DoublePendulum{
		M1:      1.0,
		M2:      1.0,
		L1:      1.0,
		L2:      1.0,
		Gravity: 9.81,
	}
}

func (d *DoublePendulum) StateDim() int {
	return 4
}

func (d *DoublePendulum) ControlDim() int {
	return 1
}

func (d *DoublePendulum) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	theta1, omega1 := x[0], x[1]
	theta2, omega2 := x[2], x[3]

	delta := theta2 - theta1
	sinD, cosD := math.Sin(delta), math.Cos(delta)

	den1 := (d.M1 + d.M2) * d.L1 - d.M2*d.L1*cosD*cosD
	den2 := (d.L2 / d.L1) * den1

	alpha1 := (d.M2*d.L1*omega1*omega1*sinD*cosD +
		d.M2*d.Gravity*math.Sin(theta2)*cosD +
		d.M2*d.L2*omega2*omega2*sinD -
		(d.M1+d.M2)*d.Gravity*math.Sin(theta1)) / den1

	alpha2 := (-d.M2*d.L2*omega2*omega2*sinD*cosD +
		(d.M1+d.M2)*(d.Gravity*math.Sin(theta1)*cosD-
			d.L1*omega1*omega1*sinD-
			d.Gravity*math.Sin(theta2))) / den2

	return dynamo.State{omega1, alpha1, omega2, alpha2}
}

func (d *DoublePendulum) Energy(x dynamo.State) float64 {
	theta1, omega1 := x[0], x[1]
	theta2, omega2 := x[2], x[3]

	v1sq := d.L1 * d.L1 * omega1 * omega1
	v2sq := d.L1*d.L1*omega1*omega1 + d.L2*d.L2*omega2*omega2 +
		2*d.L1*d.L2*omega1*omega2*math.Cos(theta1-theta2)

	ke := 0.5*d.M1*v1sq + 0.5*d.M2*v2sq

	y1 := -d.L1 * math.Cos(theta1)
	y2 := y1 - d.L2*math.Cos(theta2)
	pe := d.M1*d.Gravity*y1 + d.M2*d.Gravity*y2

	return ke + pe
}
