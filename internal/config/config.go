// ABOUTME: Immutable run configuration for synthesis and output
// ABOUTME: Validates parameter ranges and loads named YAML presets
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/soundgen/soundgen-go/pkg/synth"
	"gopkg.in/yaml.v3"
)

// Parameter bounds. Frequencies above 30 kHz alias at common sample rates;
// amplitude below 100/32767 percent quantizes every sample to zero.
const (
	MinFrequency = 1.0
	MaxFrequency = 30000.0
	MaxAmplitude = 100.0
	MaxOvertones = 127
)

// MinAmplitude is the smallest amplitude percentage that still produces a
// non-zero full-scale sample.
var MinAmplitude = 100.0 / float64(math.MaxInt16)

// Config carries every synthesis parameter for one run. It is built once by
// the entry point and passed by value; nothing mutates it after validation.
type Config struct {
	SampleRate  uint32
	DurationMs  uint32
	Amplitude   float64 // percentage of full scale
	Overtones   int
	Shape       synth.Shape
	Frequencies []float64 // fundamental pitches, overtones expanded later
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		SampleRate: 44100,
		DurationMs: 1000,
		Amplitude:  33.333333,
		Overtones:  0,
		Shape:      synth.ShapeSine,
	}
}

// Validate checks every parameter range. A nil return means synthesis can
// run without further input checks.
func (c Config) Validate() error {
	if c.SampleRate == 0 {
		return fmt.Errorf("sample rate must be at least 1 Hz")
	}
	if c.DurationMs == 0 {
		return fmt.Errorf("duration must be at least 1 ms")
	}
	if c.Amplitude < MinAmplitude || c.Amplitude > MaxAmplitude {
		return fmt.Errorf("amplitude must be in the range [%f, %f], got %f", MinAmplitude, MaxAmplitude, c.Amplitude)
	}
	if c.Overtones < 0 || c.Overtones > MaxOvertones {
		return fmt.Errorf("overtones must be in the range [0, %d], got %d", MaxOvertones, c.Overtones)
	}
	if len(c.Frequencies) == 0 {
		return fmt.Errorf("at least one frequency is required")
	}
	for _, f := range c.Frequencies {
		if f < MinFrequency || f > MaxFrequency {
			return fmt.Errorf("frequency must be in the range [%g, %g], got %g", MinFrequency, MaxFrequency, f)
		}
	}
	return nil
}

// Preset is a named, partial configuration loaded from a YAML presets file.
// Unset fields keep the values already in the Config it is applied to.
type Preset struct {
	Frequencies []float64 `yaml:"frequencies"`
	Shape       string    `yaml:"shape"`
	Overtones   *int      `yaml:"overtones"`
	Amplitude   *float64  `yaml:"amplitude"`
	DurationMs  *uint32   `yaml:"durationMs"`
}

// LoadPresets reads a YAML file mapping preset names to presets.
func LoadPresets(path string) (map[string]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}

	presets := make(map[string]Preset)
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("failed to parse presets file %s: %w", path, err)
	}
	return presets, nil
}

// Apply overlays a preset's set fields onto c and returns the result.
func (c Config) Apply(p Preset) (Config, error) {
	if len(p.Frequencies) > 0 {
		c.Frequencies = p.Frequencies
	}
	if p.Shape != "" {
		shape, err := synth.ParseShape(p.Shape)
		if err != nil {
			return Config{}, err
		}
		c.Shape = shape
	}
	if p.Overtones != nil {
		c.Overtones = *p.Overtones
	}
	if p.Amplitude != nil {
		c.Amplitude = *p.Amplitude
	}
	if p.DurationMs != nil {
		c.DurationMs = *p.DurationMs
	}
	return c, nil
}
