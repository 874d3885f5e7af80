package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-bispec/quat"
	"github.com/cwbudde/algo-bispec/signal"
)

// Scenario describes the synthesized input signal and estimation parameters.
type Scenario struct {
	Samples int     `yaml:"samples"`
	Dt      float64 `yaml:"dt"`

	Signal    string  `yaml:"signal"` // tone, noise, or mixed
	Freq      float64 `yaml:"freq"`
	Amplitude float64 `yaml:"amplitude"`
	Chi       float64 `yaml:"chi"`
	Theta     float64 `yaml:"theta"`
	Seed      int64   `yaml:"seed"`
	NoiseAmp  float64 `yaml:"noise_amplitude"`

	Bandwidth  float64 `yaml:"bandwidth"`
	Tolerance  float64 `yaml:"tolerance"`
	PlotHeight int     `yaml:"plot_height"`
}

func defaultScenario() Scenario {
	return Scenario{
		Samples:    512,
		Dt:         1.0,
		Signal:     "tone",
		Freq:       0.1,
		Amplitude:  1.0,
		Chi:        0.25,
		Theta:      0.5,
		Seed:       1,
		NoiseAmp:   0.1,
		Bandwidth:  2.5,
		Tolerance:  0.0,
		PlotHeight: 10,
	}
}

func loadScenario(path string) (Scenario, error) {
	s := defaultScenario()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read scenario: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse scenario: %w", err)
	}

	return s, nil
}

func (s Scenario) validate() error {
	if s.Samples < 2 {
		return fmt.Errorf("samples must be >= 2: %d", s.Samples)
	}

	if s.Dt <= 0 {
		return fmt.Errorf("dt must be > 0: %f", s.Dt)
	}

	switch s.Signal {
	case "tone", "noise", "mixed":
	default:
		return fmt.Errorf("unknown signal type %q (want tone, noise, or mixed)", s.Signal)
	}

	return nil
}

func (s Scenario) synthesize() ([]float64, []quat.Q, error) {
	t := signal.TimeAxis(s.Samples, s.Dt)

	switch s.Signal {
	case "tone":
		return t, signal.Tone(s.Samples, s.Dt, s.Freq, s.Amplitude, s.Chi, s.Theta), nil
	case "noise":
		return t, signal.UnpolarizedNoise(s.Samples, s.Seed, s.NoiseAmp), nil
	case "mixed":
		tone := signal.Tone(s.Samples, s.Dt, s.Freq, s.Amplitude, s.Chi, s.Theta)
		noise := signal.UnpolarizedNoise(s.Samples, s.Seed, s.NoiseAmp)

		x, err := quat.AddSlices(tone, noise)
		if err != nil {
			return nil, nil, err
		}

		return t, x, nil
	}

	return nil, nil, fmt.Errorf("unknown signal type %q", s.Signal)
}
