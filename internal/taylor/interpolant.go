package taylor

import "github.com/san-kum/taylorint/internal/series"

// Interpolant is dense mode's output: one jet per accepted step,
// each centered at the step's start time and valid over that step's
// half-open interval in the direction of integration.
type Interpolant[U series.Numeric] struct {
	times []float64
	jets  [][]series.Series[U]
	sign  float64
}

// Times returns the knot times (length len(Jets())+1).
func (in *Interpolant[U]) Times() []float64 {
	return in.times
}

// Jets returns the per-step jets, one per segment.
func (in *Interpolant[U]) Jets() [][]series.Series[U] {
	return in.jets
}

// Evaluate returns the state at time t by locating the segment whose
// half-open interval contains t and evaluating its jet at t minus the
// segment's start time.
func (in *Interpolant[U]) Evaluate(t float64) []U {
	k := in.locate(t)
	offset := t - in.times[k]
	jet := in.jets[k]
	out := make([]U, len(jet))
	for j, s := range jet {
		out[j] = s.Evaluate(series.FromFloat64[U](offset))
	}
	return out
}

func (in *Interpolant[U]) locate(t float64) int {
	last := len(in.jets) - 1
	for k := 0; k < last; k++ {
		if inHalfOpenInterval(t, in.times[k], in.times[k+1], in.sign) {
			return k
		}
	}
	return last
}
