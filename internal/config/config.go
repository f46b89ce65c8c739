// Package config holds the yaml run configuration for the pendulum CLI and
// maps it onto dynamics parameters.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/PabRod/pendulum/dynamics"
	"github.com/PabRod/pendulum/pivot"
	"github.com/PabRod/pendulum/solver"
)

// Model names accepted in configs and on the command line.
const (
	ModelSimple = "simple"
	ModelDouble = "double"
)

const (
	DefaultSamples  = 1000
	DefaultDuration = 10.0
)

type Config struct {
	Model      string  `yaml:"model"`
	Integrator string  `yaml:"integrator"`
	T0         float64 `yaml:"t0"`
	T1         float64 `yaml:"t1"`
	Samples    int     `yaml:"samples"`

	InitState InitStateConfig `yaml:"init_state"`
	Physical  PhysicalConfig  `yaml:"physical"`
	Pivot     PivotConfig     `yaml:"pivot"`
}

type InitStateConfig struct {
	Theta  float64 `yaml:"theta"`
	Omega  float64 `yaml:"omega"`
	Theta2 float64 `yaml:"theta2"`
	Omega2 float64 `yaml:"omega2"`
}

type PhysicalConfig struct {
	Length  float64   `yaml:"length"`  // simple pendulum
	Lengths []float64 `yaml:"lengths"` // double pendulum, exactly 2
	Masses  []float64 `yaml:"masses"`  // double pendulum, exactly 2
	Gravity float64   `yaml:"gravity"`
	Damping float64   `yaml:"damping"`
	Step    float64   `yaml:"step"` // finite-difference step h
}

// PivotConfig selects a pivot trajectory. Preset names cover the analytic
// motions from the bundled examples; CSV points at empirical (t, x, y) data
// resolved by the caller.
type PivotConfig struct {
	Preset         string  `yaml:"preset"` // "", freefall, step, shake
	CSV            string  `yaml:"csv"`
	IsAcceleration bool    `yaml:"is_acceleration"`
	Amplitude      float64 `yaml:"amplitude"`
	Speed          float64 `yaml:"speed"`
	Frequency      float64 `yaml:"frequency"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      ModelSimple,
		Integrator: "rk45",
		T0:         0,
		T1:         DefaultDuration,
		Samples:    DefaultSamples,
		InitState:  InitStateConfig{Theta: 0.5, Theta2: 0.5},
		Physical: PhysicalConfig{
			Length:  dynamics.DefaultLength,
			Gravity: dynamics.DefaultGravity,
			Step:    dynamics.DefaultStep,
		},
		Pivot: PivotConfig{Amplitude: 1, Speed: 5, Frequency: 1},
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

// TimeGrid returns the requested sample times.
func (c *Config) TimeGrid() []float64 {
	return solver.Linspace(c.T0, c.T1, c.Samples)
}

// InitialState returns the initial condition for the configured model.
func (c *Config) InitialState() dynamics.State {
	if c.Model == ModelDouble {
		return dynamics.State{c.InitState.Theta, c.InitState.Omega, c.InitState.Theta2, c.InitState.Omega2}
	}
	return dynamics.State{c.InitState.Theta, c.InitState.Omega}
}

// SimpleParams maps the config onto simple-pendulum parameters.
func (c *Config) SimpleParams() (dynamics.SimpleParams, error) {
	p := dynamics.SimpleParams{
		Length:  c.Physical.Length,
		Gravity: c.Physical.Gravity,
		Damping: c.Physical.Damping,
		Step:    c.Physical.Step,
	}

	px, py, isAccel, err := c.pivotMotion()
	if err != nil {
		return p, err
	}
	p.PivotX, p.PivotY, p.PivotIsAcceleration = px, py, isAccel
	return p, nil
}

// DoubleParams maps the config onto double-pendulum parameters.
func (c *Config) DoubleParams() (dynamics.DoubleParams, error) {
	p := dynamics.DefaultDoubleParams()
	p.Gravity = c.Physical.Gravity
	p.Step = c.Physical.Step

	if len(c.Physical.Lengths) > 0 {
		if err := p.SetLengths(c.Physical.Lengths...); err != nil {
			return p, err
		}
	}
	if len(c.Physical.Masses) > 0 {
		if err := p.SetMasses(c.Physical.Masses...); err != nil {
			return p, err
		}
	}

	px, py, isAccel, err := c.pivotMotion()
	if err != nil {
		return p, err
	}
	p.PivotX, p.PivotY, p.PivotIsAcceleration = px, py, isAccel
	return p, nil
}

// System builds the configured dynamics. Empirical CSV pivots are resolved
// by the caller and injected into the params instead.
func (c *Config) System() (dynamics.System, error) {
	switch c.Model {
	case ModelSimple:
		p, err := c.SimpleParams()
		if err != nil {
			return nil, err
		}
		return dynamics.NewSimple(p)
	case ModelDouble:
		p, err := c.DoubleParams()
		if err != nil {
			return nil, err
		}
		return dynamics.NewDouble(p)
	default:
		return nil, fmt.Errorf("unknown model: %s", c.Model)
	}
}

func (c *Config) pivotMotion() (px, py pivot.Motion, isAccel bool, err error) {
	g := c.Physical.Gravity

	switch c.Pivot.Preset {
	case "":
		return pivot.Motion{}, pivot.Motion{}, c.Pivot.IsAcceleration, nil

	case "freefall":
		// Pivot in free fall; gravity vanishes in the pivot frame.
		py = pivot.Function(func(t float64) float64 { return -g / 2 * t * t })
		return pivot.Motion{}, py, false, nil

	case "step":
		// One smooth sideways step of the pivot.
		amp, speed := c.Pivot.Amplitude, c.Pivot.Speed
		px = pivot.Function(func(t float64) float64 {
			return amp * (0.5 + math.Atan(speed*t)/math.Pi)
		})
		return px, pivot.Motion{}, false, nil

	case "shake":
		// Horizontal sinusoidal shaking.
		amp, freq := c.Pivot.Amplitude, c.Pivot.Frequency
		px = pivot.Function(func(t float64) float64 {
			return amp * math.Sin(2*math.Pi*freq*t)
		})
		return px, pivot.Motion{}, false, nil

	default:
		return px, py, false, fmt.Errorf("unknown pivot preset: %s", c.Pivot.Preset)
	}
}
