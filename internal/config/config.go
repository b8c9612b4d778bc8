package config

import (
	"fmt"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pendulum/internal/dynamo"
	"github.com/san-kum/pendulum/internal/integrators"
	"github.com/san-kum/pendulum/internal/kinematics"
)

const (
	DefaultTitle    = "Pendulum"
	DefaultWidth    = 600
	DefaultHeight   = 440
	DefaultBorder   = 10
	DefaultFontSize = 24

	// cm, cm/s²
	DefaultLength  = 200.0
	DefaultGravity = 981.0

	DefaultPivotX        = 300
	DefaultPivotY        = 220
	DefaultVelocityScale = 10.0
	DefaultBobRadius     = 5.0
	DefaultArcRadius     = 50.0
	DefaultAxisLength    = 100

	DefaultTraceDt    = 1.0 / 120.0
	DefaultTraceSteps = 1000

	// DefaultTheta0 is the starting angle, -0.65π rad.
	DefaultTheta0 = -1.0 * math.Pi * 0.65
)

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Physics PhysicsConfig `yaml:"physics"`
	Display DisplayConfig `yaml:"display"`
	Trace   TraceConfig   `yaml:"trace"`
}

type WindowConfig struct {
	Title    string `yaml:"title"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Border   int    `yaml:"border"`
	FontSize int    `yaml:"font_size"`
	VSync    bool   `yaml:"vsync"`
}

type PhysicsConfig struct {
	Length     float64 `yaml:"length"`
	Gravity    float64 `yaml:"gravity"`
	Theta0     float64 `yaml:"theta0"`
	Omega0     float64 `yaml:"omega0"`
	MaxStep    float64 `yaml:"max_step"`
	Integrator string  `yaml:"integrator"`
}

type DisplayConfig struct {
	PivotX        int     `yaml:"pivot_x"`
	PivotY        int     `yaml:"pivot_y"`
	VelocityScale float64 `yaml:"velocity_scale"`
	BobRadius     float64 `yaml:"bob_radius"`
	ArcRadius     float64 `yaml:"arc_radius"`
	AxisLength    int     `yaml:"axis_length"`
}

type TraceConfig struct {
	Dt    float64 `yaml:"dt"`
	Steps int     `yaml:"steps"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:    DefaultTitle,
			Width:    DefaultWidth,
			Height:   DefaultHeight,
			Border:   DefaultBorder,
			FontSize: DefaultFontSize,
			VSync:    true,
		},
		Physics: PhysicsConfig{
			Length:     DefaultLength,
			Gravity:    DefaultGravity,
			Theta0:     DefaultTheta0,
			Integrator: integrators.SemiImplicit,
		},
		Display: DisplayConfig{
			PivotX:        DefaultPivotX,
			PivotY:        DefaultPivotY,
			VelocityScale: DefaultVelocityScale,
			BobRadius:     DefaultBobRadius,
			ArcRadius:     DefaultArcRadius,
			AxisLength:    DefaultAxisLength,
		},
		Trace: TraceConfig{
			Dt:    DefaultTraceDt,
			Steps: DefaultTraceSteps,
		},
	}
}

// Load reads a YAML file over the defaults; keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", dynamo.ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Window.Border < 0:
		return fmt.Errorf("%w: border %d", dynamo.ErrInvalidConfig, c.Window.Border)
	case c.Window.FontSize <= 0:
		return fmt.Errorf("%w: font size %d", dynamo.ErrInvalidConfig, c.Window.FontSize)
	case c.Physics.Length <= 0:
		return fmt.Errorf("%w: length must be positive, got %f", dynamo.ErrInvalidConfig, c.Physics.Length)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %f", dynamo.ErrInvalidConfig, c.Physics.Gravity)
	case c.Physics.MaxStep < 0:
		return fmt.Errorf("%w: max_step must not be negative, got %f", dynamo.ErrInvalidConfig, c.Physics.MaxStep)
	case !slices.Contains(integrators.Names(), c.Physics.Integrator):
		return fmt.Errorf("%w: integrator %q", dynamo.ErrInvalidConfig, c.Physics.Integrator)
	case c.Display.VelocityScale == 0:
		return fmt.Errorf("%w: velocity_scale must not be zero", dynamo.ErrInvalidConfig)
	case c.Trace.Dt <= 0 || c.Trace.Steps <= 0:
		return fmt.Errorf("%w: trace dt %f steps %d", dynamo.ErrInvalidConfig, c.Trace.Dt, c.Trace.Steps)
	}
	return nil
}

func (c *Config) InitState() dynamo.State {
	return dynamo.State{c.Physics.Theta0, c.Physics.Omega0}
}

func (c *Config) Projector() kinematics.Projector {
	return kinematics.Projector{
		Pivot:         kinematics.Point{X: c.Display.PivotX, Y: c.Display.PivotY},
		Length:        c.Physics.Length,
		VelocityScale: c.Display.VelocityScale,
	}
}
