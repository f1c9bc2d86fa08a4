package taylorfields

import (
	"github.com/san-kum/taylorint/internal/series"
	"github.com/san-kum/taylorint/internal/taylor"
)

// HarmonicOscillator is ẍ = -x written as a first-order system
// (x, y=ẋ): dx/dt = y, dy/dt = -x. Its solution from (1,0) traces the
// unit circle, the invariant spec.md §8's scenario 2 checks.
func HarmonicOscillator(dx, x []series.Series[float64], p any, t series.Series[float64]) {
	dx[0] = x[1]
	dx[1] = x[0].Neg()
}

var HarmonicOscillatorVectorField = taylor.VectorField[float64](HarmonicOscillator)
