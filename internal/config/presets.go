package config

var Presets = map[string]map[string]*Config{
	"pendulum": {
		"small": {
			Model: "pendulum", Integrator: "rk4", Dt: 0.01, Duration: 20.0,
			InitState: InitStateConfig{Theta: 0.2, Omega: 0.0},
			Taylor:    TaylorConfig{Order: 20, AbsTol: 1e-20, MaxSteps: 500, ParseEqs: true},
		},
		"large": {
			Model: "pendulum", Integrator: "rk4", Dt: 0.01, Duration: 20.0,
			InitState: InitStateConfig{Theta: 2.5, Omega: 0.0},
			Taylor:    TaylorConfig{Order: 24, AbsTol: 1e-20, MaxSteps: 500, ParseEqs: true},
		},
		"spinning": {
			Model: "pendulum", Integrator: "rk4", Dt: 0.01, Duration: 30.0,
			InitState: InitStateConfig{Theta: 0.1, Omega: 8.0},
			Taylor:    TaylorConfig{Order: 24, AbsTol: 1e-18, MaxSteps: 800, ParseEqs: true},
		},
	},
	"double_pendulum": {
		"symmetric": {
			Model: "double_pendulum", Integrator: "rk4", Dt: 0.005, Duration: 30.0,
			InitState: InitStateConfig{Theta: 1.5, Theta2: 1.5, Omega: 0.0, Omega2: 0.0},
		},
		"chaos": {
			Model: "double_pendulum", Integrator: "rk4", Dt: 0.005, Duration: 60.0,
			InitState: InitStateConfig{Theta: 3.0, Theta2: 3.0, Omega: 0.0, Omega2: 0.0},
		},
		"gentle": {
			Model: "double_pendulum", Integrator: "rk4", Dt: 0.01, Duration: 30.0,
			InitState: InitStateConfig{Theta: 0.3, Theta2: 0.3, Omega: 0.0, Omega2: 0.0},
		},
	},
	"spring_mass": {
		"bounce": {
			Model: "spring_mass", Integrator: "rk4", Dt: 0.01, Duration: 20.0,
			InitState: InitStateConfig{Pos: 2.0, Vel: 0.0},
		},
		"fast": {
			Model: "spring_mass", Integrator: "rk4", Dt: 0.01, Duration: 10.0,
			InitState: InitStateConfig{Pos: 1.0, Vel: 5.0},
		},
	},
	"lorenz": {
		"classic": {
			Model: "lorenz", Integrator: "rk4", Dt: 0.005, Duration: 30.0,
			InitState: InitStateConfig{X: 1.0, Y: 1.0, Z: 1.0},
			Taylor:    TaylorConfig{Order: 18, AbsTol: 1e-15, MaxSteps: 2000, ParseEqs: true},
		},
	},
	"logistic": {
		"blowup": {
			Model: "logistic", InitState: InitStateConfig{Theta: 3.0},
			Taylor: TaylorConfig{Order: 25, AbsTol: 1e-20, MaxSteps: 100, ParseEqs: true},
		},
	},
	"harmonic": {
		"unit-circle": {
			Model: "harmonic", InitState: InitStateConfig{Theta: 1.0, Omega: 0.0},
			Taylor: TaylorConfig{Order: 28, AbsTol: 1e-20, MaxSteps: 500, ParseEqs: true},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
