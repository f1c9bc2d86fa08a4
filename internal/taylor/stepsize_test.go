package taylor

import (
	"math"
	"testing"

	"github.com/san-kum/taylorint/internal/series"
)

func TestStepSizePrimaryRule(t *testing.T) {
	// order 4 series with nonzero coefficients at k=3,4
	s := series.FromCoeffs([]float64{1, 0, 0, 2, 4})
	h := StepSize(1e-10, s)

	wantA := math.Pow(1e-10/2, 1.0/3.0)
	wantB := math.Pow(1e-10/4, 1.0/4.0)
	want := math.Min(wantA, wantB)
	if math.Abs(h-want) > 1e-12 {
		t.Errorf("StepSize: got %v want %v", h, want)
	}
}

func TestStepSizeFallbackOnZeroTail(t *testing.T) {
	// order 4, tail coefficients (k=3,4) are zero, earlier ones are not.
	s := series.FromCoeffs([]float64{1, 2, 3, 0, 0})
	h := StepSize(1e-10, s)
	if math.IsInf(h, 1) || h <= 0 {
		t.Fatalf("expected a finite positive fallback step, got %v", h)
	}
	want := math.Max(1.0/2, math.Pow(1.0/3, 0.5))
	if math.Abs(h-want) > 1e-12 {
		t.Errorf("fallback StepSize: got %v want %v", h, want)
	}
}

func TestStepSizeDegenerateAllZero(t *testing.T) {
	s := series.New[float64](4)
	h := StepSize(1e-10, s)
	if h != 0 {
		t.Errorf("expected 0 for an identically-zero series, got %v", h)
	}
}

func TestStepSizeVectorTakesMinimum(t *testing.T) {
	a := series.FromCoeffs([]float64{1, 0, 0, 10, 10})
	b := series.FromCoeffs([]float64{1, 0, 0, 0.1, 0.1})
	h := StepSize(1e-10, a, b)
	ha := primaryComponent(a, 1e-10)
	if math.Abs(h-ha) > 1e-12 {
		t.Errorf("expected vector StepSize to take the tighter component: got %v want %v", h, ha)
	}
}
