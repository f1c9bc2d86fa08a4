package taylorfields

import (
	"github.com/san-kum/taylorint/internal/series"
	"github.com/san-kum/taylorint/internal/taylor"
)

// Logistic is f(x) = x^2, the scenario spec.md §8 uses to pin down
// jet-coefficient correctness: x(t) = x0/(1 - x0*t) from x(0) = x0.
func Logistic(dx, x []series.Series[float64], p any, t series.Series[float64]) {
	dx[0] = x[0].Mul(x[0])
}

// LogisticVectorField is the Logistic equation exposed as a
// taylor.VectorField for callers that want a named value rather than
// a bare function (registries, CLI lookups).
var LogisticVectorField = taylor.VectorField[float64](Logistic)

// LogisticSpecialized is a hand-specialized jet builder for Logistic,
// registered under parse_eqs as a performance alternative to the
// generic builder. It must produce bit-identical coefficients to
// taylor.BuildJetInPlace over the same field, and does: both reduce
// to the same Cauchy product, just without the generic builder's
// per-order truncation-copy overhead.
func LogisticSpecialized(t series.Series[float64], x, dx, xaux []series.Series[float64], p any) {
	n := x[0].Order()
	for ord := 0; ord < n; ord++ {
		var acc float64
		for j := 0; j <= ord; j++ {
			acc += x[0].Coeff(j) * x[0].Coeff(ord-j)
		}
		x[0].SetCoeff(ord+1, acc/float64(ord+1))
	}
}
