package series

import (
	"math"
	"testing"
)

func TestSinCosOfConstant(t *testing.T) {
	u := Constant(0.5, 6)
	s, c := SinCos(u)
	if math.Abs(s.Coeff(0)-math.Sin(0.5)) > 1e-12 {
		t.Errorf("sin coeff 0: got %v", s.Coeff(0))
	}
	if math.Abs(c.Coeff(0)-math.Cos(0.5)) > 1e-12 {
		t.Errorf("cos coeff 0: got %v", c.Coeff(0))
	}
}

func TestSinCosPythagoreanIdentity(t *testing.T) {
	u := FromCoeffs([]float64{0.3, 1, 0, 0, 0})
	s, c := SinCos(u)
	sum := s.Mul(s).Add(c.Mul(c))
	if math.Abs(sum.Coeff(0)-1) > 1e-12 {
		t.Errorf("sin^2+cos^2 coeff 0: got %v", sum.Coeff(0))
	}
	for k := 1; k <= sum.Order(); k++ {
		if math.Abs(sum.Coeff(k)) > 1e-9 {
			t.Errorf("sin^2+cos^2 coeff %d: got %v want 0", k, sum.Coeff(k))
		}
	}
}

func TestSinOfLinearMatchesDerivatives(t *testing.T) {
	// u(t) = t, so sin(u) = sin(t); k-th coefficient is sin^(k)(0)/k!.
	u := FromCoeffs([]float64{0, 1, 0, 0, 0, 0})
	s := Sin(u)
	want := []float64{0, 1, 0, -1.0 / 6.0, 0, 1.0 / 120.0}
	for k, w := range want {
		if math.Abs(s.Coeff(k)-w) > 1e-9 {
			t.Errorf("coeff %d: got %v want %v", k, s.Coeff(k), w)
		}
	}
}
