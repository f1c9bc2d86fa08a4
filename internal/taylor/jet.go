package taylor

import "github.com/san-kum/taylorint/internal/series"

// BuildJet extends x from a series known only to order 0 into a full
// order-N jet via the Picard recursion x_{k+1} = f(x,p,t)_k/(k+1).
// x, t, p are borrowed; x is mutated in place and also returned for
// chaining. Order 0 is a no-op.
func BuildJet[U series.Numeric](f ScalarField[U], t series.Series[float64], x series.Series[U], p any) series.Series[U] {
	n := x.Order()
	for ord := 0; ord < n; ord++ {
		taux := t.Truncate(ord)
		xaux := x.Truncate(ord)
		dx := f(xaux, p, taux)
		x.SetCoeff(ord+1, series.DivByInt(dx.Coeff(ord), ord+1))
	}
	return x
}

// BuildJetInPlace is the vector-field counterpart of [BuildJet]. x,
// dx, and xaux must all have the same length and order; dx and xaux
// are scratch buffers owned by the caller and reused across steps —
// BuildJetInPlace performs no allocation beyond what f itself does.
func BuildJetInPlace[U series.Numeric](f VectorField[U], t series.Series[float64], x, dx, xaux []series.Series[U], p any) {
	n := x[0].Order()
	for ord := 0; ord < n; ord++ {
		taux := series.FromCoeffs(t.Coeffs()[:ord+1])
		for j := range x {
			xaux[j] = series.FromCoeffs(x[j].Coeffs()[:ord+1])
		}
		f(dx, xaux, p, taux)
		for j := range x {
			x[j].SetCoeff(ord+1, series.DivByInt(dx[j].Coeff(ord), ord+1))
		}
	}
}
