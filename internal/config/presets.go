package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/pendulum/internal/dynamo"
)

// Preset overrides the initial conditions and step limit of a config.
type Preset struct {
	Theta0  float64
	Omega0  float64
	MaxStep float64
}

var Presets = map[string]Preset{
	"reference": {Theta0: DefaultTheta0},
	"small":     {Theta0: 0.2},
	"large":     {Theta0: 2.5},
	"spinning":  {Theta0: 0.1, Omega0: 8.0},
	"steady":    {Theta0: DefaultTheta0, MaxStep: 1.0 / 30.0},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) ApplyPreset(name string) error {
	p, ok := GetPreset(name)
	if !ok {
		return fmt.Errorf("%w: unknown preset %q (available: %v)", dynamo.ErrInvalidConfig, name, ListPresets())
	}
	c.Physics.Theta0 = p.Theta0
	c.Physics.Omega0 = p.Omega0
	c.Physics.MaxStep = p.MaxStep
	return nil
}
