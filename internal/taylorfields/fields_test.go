package taylorfields

import (
	"math"
	"testing"

	"github.com/san-kum/taylorint/internal/taylor"
)

func TestLogisticMatchesClosedForm(t *testing.T) {
	cfg := taylor.Config{T0: 0, TMax: 0.2, Order: 20, AbsTol: 1e-18, MaxSteps: 100}
	res, err := taylor.Steps(LogisticVectorField, "", nil, Dims[NameLogistic], []float64{2.0}, cfg, nil)
	if err != nil {
		t.Fatalf("Steps: %v", err)
	}
	tf := res.Times[len(res.Times)-1]
	want := 2.0 / (1 - 2.0*tf)
	got := res.States[len(res.States)-1][0]
	if math.Abs(got-want) > 1e-10 {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestLogisticSpecializationMatchesGeneric(t *testing.T) {
	cfg := taylor.Config{T0: 0, TMax: 0.2, Order: 20, AbsTol: 1e-18, MaxSteps: 100, ParseEqs: true}
	registry := NewRegistry()

	specialized, err := taylor.Steps(LogisticVectorField, NameLogistic, registry, Dims[NameLogistic], []float64{2.0}, cfg, nil)
	if err != nil {
		t.Fatalf("specialized Steps: %v", err)
	}
	cfg.ParseEqs = false
	generic, err := taylor.Steps(LogisticVectorField, NameLogistic, registry, Dims[NameLogistic], []float64{2.0}, cfg, nil)
	if err != nil {
		t.Fatalf("generic Steps: %v", err)
	}
	if len(specialized.States) != len(generic.States) {
		t.Fatalf("step counts differ: specialized %d generic %d", len(specialized.States), len(generic.States))
	}
	for i := range specialized.States {
		if math.Abs(specialized.States[i][0]-generic.States[i][0]) > 1e-12 {
			t.Errorf("state %d diverged: specialized %v generic %v", i, specialized.States[i][0], generic.States[i][0])
		}
	}
}

func TestHarmonicOscillatorInvariant(t *testing.T) {
	cfg := taylor.Config{T0: 0, TMax: 4 * math.Pi, Order: 24, AbsTol: 1e-18, MaxSteps: 500}
	res, err := taylor.Steps(HarmonicOscillatorVectorField, "", nil, Dims[NameHarmonic], []float64{1, 0}, cfg, nil)
	if err != nil {
		t.Fatalf("Steps: %v", err)
	}
	for i, s := range res.States {
		inv := s[0]*s[0] + s[1]*s[1]
		if math.Abs(inv-1) > 1e-10 {
			t.Errorf("step %d: invariant %v, want ~1", i, inv)
		}
	}
}

func TestPendulumSmallAngleMatchesHarmonicApproximation(t *testing.T) {
	params := PendulumParams{Mass: 1, Length: 1, Damping: 0, Gravity: 1}
	cfg := taylor.Config{T0: 0, TMax: 0.5, Order: 20, AbsTol: 1e-18, MaxSteps: 100}
	res, err := taylor.Steps(PendulumVectorField, "", nil, Dims[NamePendulum], []float64{0.01, 0}, cfg, params)
	if err != nil {
		t.Fatalf("Steps: %v", err)
	}
	// small-angle: theta(t) ~ theta0*cos(sqrt(g/L) t)
	tf := res.Times[len(res.Times)-1]
	want := 0.01 * math.Cos(tf)
	got := res.States[len(res.States)-1][0]
	if math.Abs(got-want) > 1e-4 {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestLorenzProducesFiniteTrajectory(t *testing.T) {
	cfg := taylor.Config{T0: 0, TMax: 0.1, Order: 15, AbsTol: 1e-15, MaxSteps: 200}
	res, err := taylor.Steps(LorenzVectorField, "", nil, Dims[NameLorenz], []float64{1, 1, 1}, cfg, nil)
	if err != nil {
		t.Fatalf("Steps: %v", err)
	}
	final := res.States[len(res.States)-1]
	for _, v := range final {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("non-finite final state: %v", final)
		}
	}
}
