package taylor

import (
	"math"
	"testing"

	"github.com/san-kum/taylorint/internal/series"
)

func logisticField(dx, x []series.Series[float64], p any, t series.Series[float64]) {
	dx[0] = x[0].Mul(x[0])
}

func TestStepsOrderZeroIdempotence(t *testing.T) {
	cfg := Config{T0: 0, TMax: 0, Order: 1, AbsTol: 1e-12, MaxSteps: 10, ParseEqs: false}
	res, err := Steps(VectorField[float64](logisticField), "", nil, 1, []float64{3.0}, cfg, nil)
	if err != nil {
		t.Fatalf("Steps: %v", err)
	}
	if len(res.Times) != 1 || res.States[0][0] != 3.0 {
		t.Errorf("expected a single trivial sample, got %d samples: %v", len(res.Times), res.States)
	}
}

func TestStepsMonotoneProgress(t *testing.T) {
	cfg := Config{T0: 0, TMax: 0.3, Order: 15, AbsTol: 1e-15, MaxSteps: 200, ParseEqs: false}
	res, err := Steps(VectorField[float64](logisticField), "", nil, 1, []float64{3.0}, cfg, nil)
	if err != nil {
		t.Fatalf("Steps: %v", err)
	}
	for i := 1; i < len(res.Times); i++ {
		if res.Times[i] < res.Times[i-1] {
			t.Fatalf("time not monotone at index %d: %v then %v", i, res.Times[i-1], res.Times[i])
		}
	}
	if res.Times[len(res.Times)-1] > 0.3 {
		t.Errorf("final time exceeded horizon: %v", res.Times[len(res.Times)-1])
	}
}

func TestStepsLogisticBlowupScenario(t *testing.T) {
	cfg := Config{T0: 0, TMax: 0.3, Order: 25, AbsTol: 1e-20, MaxSteps: 100, ParseEqs: false}
	res, err := Steps(VectorField[float64](logisticField), "", nil, 1, []float64{3.0}, cfg, nil)
	if err != nil {
		t.Fatalf("Steps: %v", err)
	}
	nsteps := len(res.Times) - 1
	if nsteps > 100 {
		t.Errorf("nsteps exceeded budget: %d", nsteps)
	}
	tf := res.Times[len(res.Times)-1]
	if tf > 0.3+1e-12 {
		t.Errorf("final time exceeded horizon: %v", tf)
	}
	want := 3.0 / (1 - 3.0*tf)
	got := res.States[len(res.States)-1][0]
	if math.Abs(got-want) > 1e-14 {
		t.Errorf("final state: got %v want %v", got, want)
	}
}

func TestStepsStepLimitTermination(t *testing.T) {
	cfg := Config{T0: 0, TMax: 0.3, Order: 25, AbsTol: 1e-20, MaxSteps: 3, ParseEqs: false}
	res, err := Steps(VectorField[float64](logisticField), "", nil, 1, []float64{3.0}, cfg, nil)
	if err != nil {
		t.Fatalf("Steps: %v", err)
	}
	if len(res.Times) != 4 {
		t.Errorf("expected exactly 4 samples, got %d", len(res.Times))
	}
	if res.Warning == "" {
		t.Error("expected a step-limit warning")
	}
}

func TestStepsDegenerateTailFallback(t *testing.T) {
	zeroField := func(dx, x []series.Series[float64], p any, t series.Series[float64]) {
		dx[0] = series.New[float64](x[0].Order())
	}
	cfg := Config{T0: 0, TMax: 1, Order: 10, AbsTol: 1e-20, MaxSteps: 50, ParseEqs: false}
	res, err := Steps(VectorField[float64](zeroField), "", nil, 1, []float64{1.0}, cfg, nil)
	if err != nil {
		t.Fatalf("Steps: %v", err)
	}
	final := res.States[len(res.States)-1][0]
	if final != 1.0 {
		t.Errorf("expected stationary final state 1.0, got %v", final)
	}
}

func TestDenseConsistencyWithSteps(t *testing.T) {
	cfg := Config{T0: 0, TMax: 0.3, Order: 20, AbsTol: 1e-18, MaxSteps: 100, ParseEqs: false, Dense: true}
	res, interp, err := Dense(VectorField[float64](logisticField), "", nil, 1, []float64{3.0}, cfg, nil)
	if err != nil {
		t.Fatalf("Dense: %v", err)
	}
	for k := 1; k < len(res.Times); k++ {
		got := interp.Evaluate(res.Times[k])[0]
		want := res.States[k][0]
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("dense interpolant at knot %d: got %v want %v", k, got, want)
		}
	}
}

func TestRangeConsistencyWithSteps(t *testing.T) {
	cfg := Config{T0: 0, TMax: 0.3, Order: 20, AbsTol: 1e-18, MaxSteps: 100, ParseEqs: false}
	res, err := Steps(VectorField[float64](logisticField), "", nil, 1, []float64{3.0}, cfg, nil)
	if err != nil {
		t.Fatalf("Steps: %v", err)
	}
	trange := res.Times
	rangeOut, _, err := Range(VectorField[float64](logisticField), "", nil, 1, []float64{3.0}, trange, cfg, nil)
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	for i := range trange {
		if math.Abs(rangeOut[i][0]-res.States[i][0]) > 1e-9 {
			t.Errorf("range[%d]: got %v want %v", i, rangeOut[i][0], res.States[i][0])
		}
	}
}

func TestDirectionSymmetry(t *testing.T) {
	harmonic := VectorField[float64](func(dx, x []series.Series[float64], p any, t series.Series[float64]) {
		dx[0] = x[1]
		dx[1] = x[0].Neg()
	})

	fwdCfg := Config{T0: 0, TMax: 2 * math.Pi, Order: 24, AbsTol: 1e-18, MaxSteps: 200, ParseEqs: false}
	fwd, err := Steps(harmonic, "", nil, 2, []float64{1, 0}, fwdCfg, nil)
	if err != nil {
		t.Fatalf("forward Steps: %v", err)
	}
	finalFwd := fwd.States[len(fwd.States)-1]

	backCfg := fwdCfg
	backCfg.T0 = 2 * math.Pi
	backCfg.TMax = 0
	back, err := Steps(harmonic, "", nil, 2, finalFwd, backCfg, nil)
	if err != nil {
		t.Fatalf("backward Steps: %v", err)
	}
	finalBack := back.States[len(back.States)-1]

	tol := 1e-6
	if math.Abs(finalBack[0]-1) > tol || math.Abs(finalBack[1]-0) > tol {
		t.Errorf("direction symmetry: got %v want [1,0]", finalBack)
	}
}

func TestRangeValidationRejectsNonMonotone(t *testing.T) {
	cfg := Config{T0: 0, TMax: 1, Order: 10, AbsTol: 1e-12, MaxSteps: 50, ParseEqs: false}
	_, _, err := Range(VectorField[float64](logisticField), "", nil, 1, []float64{1.0}, []float64{0, 0.5, 0.2, 1}, cfg, nil)
	if err == nil {
		t.Error("expected a validation error for non-monotone trange")
	}
}

func TestConfigValidation(t *testing.T) {
	cases := []Config{
		{Order: 0, AbsTol: 1e-10, MaxSteps: 10},
		{Order: 5, AbsTol: 0, MaxSteps: 10},
		{Order: 5, AbsTol: 1e-10, MaxSteps: 0},
	}
	for i, cfg := range cases {
		if _, err := Steps(VectorField[float64](logisticField), "", nil, 1, []float64{1.0}, cfg, nil); err == nil {
			t.Errorf("case %d: expected a validation error", i)
		}
	}
}
