package experiment

import (
	"fmt"

	"github.com/san-kum/taylorint/internal/control"
	"github.com/san-kum/taylorint/internal/dynamo"
	"github.com/san-kum/taylorint/internal/integrators"
	"github.com/san-kum/taylorint/internal/metrics"
	"github.com/san-kum/taylorint/internal/physics"
)

// Registry resolves the classical-baseline models, integrators, and
// controllers an Experiment can be built from, by name. It is the
// counterpart of taylor.Registry, which resolves jet builders instead.
type Registry struct {
	models      map[string]func() dynamo.System
	integrators map[string]func() dynamo.Integrator
	controllers map[string]func(map[string]float64) dynamo.Controller
}

func NewRegistry() *Registry {
	r := &Registry{
		models:      make(map[string]func() dynamo.System),
		integrators: make(map[string]func() dynamo.Integrator),
		controllers: make(map[string]func(map[string]float64) dynamo.Controller),
	}

	r.models["pendulum"] = func() dynamo.System { return physics.NewPendulum() }
	r.models["double_pendulum"] = func() dynamo.System { return physics.NewDoublePendulum() }
	r.models["spring_mass"] = func() dynamo.System { return physics.NewSpringMass() }
	r.models["lorenz"] = func() dynamo.System { return physics.NewLorenz() }

	r.integrators["euler"] = func() dynamo.Integrator { return integrators.NewEuler() }
	r.integrators["rk4"] = func() dynamo.Integrator { return integrators.NewRK4() }
	r.integrators["rk45"] = func() dynamo.Integrator { return integrators.NewRK45() }

	r.controllers["none"] = func(params map[string]float64) dynamo.Controller {
		dim := int(params["dim"])
		if dim == 0 {
			dim = 1
		}
		return control.NewNone(dim)
	}
	r.controllers["pid"] = func(params map[string]float64) dynamo.Controller {
		kp := params["kp"]
		ki := params["ki"]
		kd := params["kd"]
		target := params["target"]
		return control.NewPID(kp, ki, kd, target)
	}

	return r
}

func (r *Registry) GetModel(name string) (dynamo.System, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetIntegrator(name string) (dynamo.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetController(name string, params map[string]float64) (dynamo.Controller, error) {
	fn, ok := r.controllers[name]
	if !ok {
		return nil, fmt.Errorf("unknown controller: %s", name)
	}
	return fn(params), nil
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	return names
}

func (r *Registry) DefaultMetrics(model string) []dynamo.Metric {
	return []dynamo.Metric{
		metrics.NewEnergy(1.0, 1.0, 9.81),
		metrics.NewStability(10.0),
		metrics.NewControlEffort(),
	}
}
