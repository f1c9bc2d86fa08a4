// Package taylor builds Taylor-series jets of the solution of
// ẋ = f(x, p, t) and drives them forward in time.
//
// The three cooperating pieces are the jet builder ([BuildJet],
// [BuildJetInPlace]), the step-size selector ([StepSize]), and the
// driver ([Steps], [Dense], [Range]). All three share the
// [series.Series] truncated power-series type as their coefficient
// representation; this package never does arithmetic on a coefficient
// directly, only through that algebra.
package taylor
