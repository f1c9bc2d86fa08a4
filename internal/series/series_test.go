package series

import (
	"math"
	"testing"
)

func TestAddSub(t *testing.T) {
	a := FromCoeffs([]float64{1, 2, 3})
	b := FromCoeffs([]float64{0, 1, 1})

	sum := a.Add(b)
	if got := sum.Coeffs(); got[0] != 1 || got[1] != 3 || got[2] != 4 {
		t.Errorf("Add: got %v", got)
	}

	diff := a.Sub(b)
	if got := diff.Coeffs(); got[0] != 1 || got[1] != 1 || got[2] != 2 {
		t.Errorf("Sub: got %v", got)
	}
}

func TestMulCauchyProduct(t *testing.T) {
	// (1 + t)(1 + t) = 1 + 2t + t^2, truncated at order 2.
	a := FromCoeffs([]float64{1, 1, 0})
	b := FromCoeffs([]float64{1, 1, 0})

	got := a.Mul(b).Coeffs()
	want := []float64{1, 2, 1}
	for k := range want {
		if got[k] != want[k] {
			t.Errorf("Mul coeff %d: got %v want %v", k, got[k], want[k])
		}
	}
}

func TestMulTruncation(t *testing.T) {
	// (1 + t + t^2)^2 = 1 + 2t + 3t^2 + 2t^3 + t^4, order-2 truncation
	// must drop everything above t^2.
	a := FromCoeffs([]float64{1, 1, 1})
	got := a.Mul(a).Coeffs()
	want := []float64{1, 2, 3}
	for k := range want {
		if got[k] != want[k] {
			t.Errorf("coeff %d: got %v want %v", k, got[k], want[k])
		}
	}
}

func TestDivInt(t *testing.T) {
	a := FromCoeffs([]float64{2, 4, 9})
	got := a.DivInt(2).Coeffs()
	want := []float64{1, 2, 4.5}
	for k := range want {
		if got[k] != want[k] {
			t.Errorf("coeff %d: got %v want %v", k, got[k], want[k])
		}
	}
}

func TestEvaluateHorner(t *testing.T) {
	// 1 + 2t + 3t^2 at t=2 -> 1 + 4 + 12 = 17
	s := FromCoeffs([]float64{1, 2, 3})
	if got := s.Evaluate(2.0); got != 17 {
		t.Errorf("Evaluate: got %v want 17", got)
	}
}

func TestComplexCoefficients(t *testing.T) {
	a := FromCoeffs([]complex128{1 + 0i, 0 + 1i})
	b := FromCoeffs([]complex128{1 + 0i, 0 - 1i})
	got := a.Mul(b).Coeffs()
	// (1+i t)(1-i t) = 1 + 1*t^2 truncated to order 1 -> just constant 1
	if real(got[0]) != 1 || imag(got[0]) != 0 {
		t.Errorf("constant term: got %v", got[0])
	}
}

func TestAbs(t *testing.T) {
	if Abs(-3.0) != 3.0 {
		t.Errorf("Abs(float64): got %v", Abs(-3.0))
	}
	if math.Abs(Abs(complex(3, 4))-5.0) > 1e-12 {
		t.Errorf("Abs(complex128): got %v want 5", Abs(complex(3, 4)))
	}
}

func TestTailAndPenultimateNorm(t *testing.T) {
	s := FromCoeffs([]float64{1, 2, -5})
	if s.TailNorm() != 5 {
		t.Errorf("TailNorm: got %v want 5", s.TailNorm())
	}
	if s.PenultimateNorm() != 2 {
		t.Errorf("PenultimateNorm: got %v want 2", s.PenultimateNorm())
	}
}

func TestConstant(t *testing.T) {
	s := Constant(3.5, 4)
	if s.Order() != 4 {
		t.Errorf("Order: got %d want 4", s.Order())
	}
	if s.Coeff(0) != 3.5 {
		t.Errorf("Coeff(0): got %v want 3.5", s.Coeff(0))
	}
	for k := 1; k <= 4; k++ {
		if s.Coeff(k) != 0 {
			t.Errorf("Coeff(%d): got %v want 0", k, s.Coeff(k))
		}
	}
}

func TestOrderMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on order mismatch")
		}
	}()
	a := New[float64](2)
	b := New[float64](3)
	a.Add(b)
}
