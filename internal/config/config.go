package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 10.0
	DefaultTheta    = 0.5
	DefaultY        = 5.0
	DefaultKp       = 10.0
	DefaultKi       = 0.1
	DefaultKd       = 5.0

	DefaultOrder    = 20
	DefaultAbsTol   = 1e-20
	DefaultMaxSteps = 500
)

// Config configures both the Taylor engine (Order, AbsTol, MaxSteps,
// Dense, ParseEqs) and the classical baseline it is compared against
// (Integrator, Controller, Dt).
type Config struct {
	Model            string           `yaml:"model"`
	Integrator       string           `yaml:"integrator"`
	Controller       string           `yaml:"controller"`
	Dt               float64          `yaml:"dt"`
	Duration         float64          `yaml:"duration"`
	Seed             int64            `yaml:"seed"`
	InitState        InitStateConfig  `yaml:"init_state"`
	ControllerParams ControllerConfig `yaml:"controller_params"`
	Taylor           TaylorConfig     `yaml:"taylor"`
}

// TaylorConfig carries the driver parameters from spec.md §6's
// parameter table that have no analogue in the classical baseline.
type TaylorConfig struct {
	Order    int     `yaml:"order"`
	AbsTol   float64 `yaml:"abstol"`
	MaxSteps int     `yaml:"max_steps"`
	ParseEqs bool    `yaml:"parse_eqs"`
	Dense    bool    `yaml:"dense"`
	TRange   []float64 `yaml:"trange"`
}

type InitStateConfig struct {
	Theta  float64 `yaml:"theta"`
	Omega  float64 `yaml:"omega"`
	Theta2 float64 `yaml:"theta2"`
	Omega2 float64 `yaml:"omega2"`
	Pos    float64 `yaml:"pos"`
	Vel    float64 `yaml:"vel"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`
}

type ControllerConfig struct {
	Kp     float64 `yaml:"kp"`
	Ki     float64 `yaml:"ki"`
	Kd     float64 `yaml:"kd"`
	Target float64 `yaml:"target"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      "pendulum",
		Integrator: "rk4",
		Controller: "none",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		InitState: InitStateConfig{
			Theta: DefaultTheta,
		},
		ControllerParams: ControllerConfig{
			Kp: DefaultKp,
			Ki: DefaultKi,
			Kd: DefaultKd,
		},
		Taylor: TaylorConfig{
			Order:    DefaultOrder,
			AbsTol:   DefaultAbsTol,
			MaxSteps: DefaultMaxSteps,
			ParseEqs: true,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetInitState returns the classical baseline's initial state vector
// for the surviving models.
func (c *Config) GetInitState() []float64 {
	switch c.Model {
	case "double_pendulum":
		return []float64{c.InitState.Theta, c.InitState.Omega, c.InitState.Theta2, c.InitState.Omega2}
	case "spring_mass":
		return []float64{c.InitState.Pos, c.InitState.Vel}
	case "lorenz":
		return []float64{c.InitState.X, c.InitState.Y, c.InitState.Z}
	default:
		return []float64{c.InitState.Theta, c.InitState.Omega}
	}
}

// GetTaylorInitState returns the Taylor engine's initial state for
// the taylorfields-registered models.
func (c *Config) GetTaylorInitState() []float64 {
	switch c.Model {
	case "logistic":
		return []float64{c.InitState.Theta}
	case "lorenz":
		return []float64{c.InitState.X, c.InitState.Y, c.InitState.Z}
	default:
		return []float64{c.InitState.Theta, c.InitState.Omega}
	}
}

func (c *Config) GetControllerParams(controlDim int) map[string]float64 {
	return map[string]float64{
		"dim":    float64(controlDim),
		"kp":     c.ControllerParams.Kp,
		"ki":     c.ControllerParams.Ki,
		"kd":     c.ControllerParams.Kd,
		"target": c.ControllerParams.Target,
	}
}
