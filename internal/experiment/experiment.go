package experiment

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/taylorint/internal/dynamo"
)

// Config describes a single classical-baseline run: the model,
// integrator, and controller to wire together, plus the initial
// state and simulation horizon to run them over.
type Config struct {
	Model      string
	Integrator string
	Controller string
	InitState  []float64
	Dt         float64
	Duration   float64
	Seed       int64
	Params     map[string]float64
}

// Experiment wires a model/integrator/controller triple into a
// dynamo.Simulator and runs it. It is the classical-baseline
// counterpart of a taylor.Steps/Dense/Range call.
type Experiment struct {
	cfg        Config
	simulator  *dynamo.Simulator
	randSource *rand.Rand
}

func New(cfg Config) *Experiment {
	return &Experiment{
		cfg:        cfg,
		randSource: rand.New(rand.NewSource(cfg.Seed)),
	}
}

func (e *Experiment) Setup(dyn dynamo.System, integrator dynamo.Integrator, controller dynamo.Controller, metrics []dynamo.Metric) error {
	e.simulator = dynamo.New(dyn, integrator, controller)
	for _, m := range metrics {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*dynamo.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	x0 := make(dynamo.State, len(e.cfg.InitState))
	copy(x0, e.cfg.InitState)

	simCfg := dynamo.Config{
		Dt:            e.cfg.Dt,
		Duration:      e.cfg.Duration,
		Seed:          e.cfg.Seed,
		Tolerance:     1e-6,
		MaxDt:         0.1,
		MinDt:         1e-8,
		ValidateState: true,
	}

	return e.simulator.Run(ctx, x0, simCfg)
}

// GetSimulator returns the underlying simulator, e.g. for the
// ensemble command to hand to dynamo.NewEnsemble.
func (e *Experiment) GetSimulator() *dynamo.Simulator {
	return e.simulator
}
