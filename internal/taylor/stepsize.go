package taylor

import (
	"math"

	"github.com/san-kum/taylorint/internal/series"
)

// StepSize implements spec.md §4.2: the primary rule takes, over each
// component and k in {N-1, N}, (epsilon/|x[k]|)^(1/k), skipping any
// zero coefficient, and returns the minimum. If every component's
// primary rule underflows to +Inf (both trailing coefficients
// vanish), the Jorba–Zoo fallback takes the maximum over k = 1..N-2
// of (1/|x[k]|)^(1/k), then the maximum over components. A fully
// degenerate series (every coefficient zero) yields 0 from the
// fallback; callers must treat a non-finite or non-positive result as
// terminal.
func StepSize[U series.Numeric](epsilon float64, components ...series.Series[U]) float64 {
	h := math.Inf(1)
	for _, c := range components {
		if v := primaryComponent(c, epsilon); v < h {
			h = v
		}
	}
	if !math.IsInf(h, 1) {
		return h
	}

	fallback := 0.0
	for _, c := range components {
		if v := fallbackComponent(c); v > fallback {
			fallback = v
		}
	}
	return fallback
}

func primaryComponent[U series.Numeric](s series.Series[U], epsilon float64) float64 {
	n := s.Order()
	h := math.Inf(1)
	for _, k := range [2]int{n - 1, n} {
		if k <= 0 {
			continue
		}
		norm := series.Abs(s.Coeff(k))
		if norm == 0 {
			continue
		}
		if cand := math.Pow(epsilon/norm, 1.0/float64(k)); cand < h {
			h = cand
		}
	}
	return h
}

func fallbackComponent[U series.Numeric](s series.Series[U]) float64 {
	n := s.Order()
	h := 0.0
	for k := 1; k <= n-2; k++ {
		norm := series.Abs(s.Coeff(k))
		if norm == 0 {
			continue
		}
		if cand := math.Pow(1.0/norm, 1.0/float64(k)); cand > h {
			h = cand
		}
	}
	return h
}
