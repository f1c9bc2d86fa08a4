package livetui

import (
	"fmt"

	"github.com/san-kum/taylorint/internal/dynamo"
)

// stateLabels mirrors internal/tui/interactive.go's per-model
// component labels, trimmed to the models this repo carries.
var stateLabels = map[string][]string{
	"pendulum":        {"θ", "ω"},
	"double_pendulum": {"θ₁", "ω₁", "θ₂", "ω₂"},
	"spring_mass":     {"x", "v"},
	"lorenz":          {"x", "y", "z"},
	"logistic":        {"x"},
	"harmonic":        {"x", "y"},
}

// Labels returns the component labels for a model name, falling back
// to generic x0..xn-1 for anything unregistered.
func Labels(model string, dim int) []string {
	if l, ok := stateLabels[model]; ok && len(l) == dim {
		return l
	}
	labels := make([]string, dim)
	for i := range labels {
		labels[i] = fmt.Sprintf("x%d", i)
	}
	return labels
}

// FromTaylorResult builds a Run from a float64-valued Taylor result.
func FromTaylorResult(model string, times []float64, states [][]float64) Run {
	dim := 0
	if len(states) > 0 {
		dim = len(states[0])
	}
	return Run{ModelName: model, Times: times, States: states, Labels: Labels(model, dim)}
}

// FromDynamoResult builds a Run from a classical-baseline result.
func FromDynamoResult(model string, result *dynamo.Result) Run {
	states := make([][]float64, len(result.States))
	for i, s := range result.States {
		states[i] = []float64(s)
	}
	dim := 0
	if len(states) > 0 {
		dim = len(states[0])
	}
	return Run{ModelName: model, Times: result.Times, States: states, Labels: Labels(model, dim)}
}
