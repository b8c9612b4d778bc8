// Package gui runs the pendulum in a raylib window.
package gui

import (
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/pendulum/internal/assets"
	"github.com/san-kum/pendulum/internal/config"
	"github.com/san-kum/pendulum/internal/dynamo"
	"github.com/san-kum/pendulum/internal/integrators"
	"github.com/san-kum/pendulum/internal/physics"
	"github.com/san-kum/pendulum/internal/scene"
	"github.com/san-kum/pendulum/internal/sim"
)

func init() {
	// raylib must be driven from the main thread
	runtime.LockOSThread()
}

type App struct {
	Cfg    *config.Config
	Log    *log.Logger
	Model  *physics.Pendulum
	Sim    *sim.Simulation
	Frames *sim.FrameTimer

	gfx renderer
}

// initWindow opens the fixed-size window with vsync and multisampling hints,
// routes raylib's own logging through logger and disables the default exit
// key so Escape is handled with the rest of the input.
func initWindow(cfg config.WindowConfig, logger *log.Logger) error {
	rl.SetTraceLogCallback(func(level int, msg string) {
		switch rl.TraceLogLevel(level) {
		case rl.LogWarning:
			logger.Warn(msg, "source", "raylib")
		case rl.LogError, rl.LogFatal:
			logger.Error(msg, "source", "raylib")
		default:
			logger.Debug(msg, "source", "raylib")
		}
	})

	flags := uint32(rl.FlagMsaa4xHint)
	if cfg.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return fmt.Errorf("%w: %dx%d %q", dynamo.ErrWindowInit, cfg.Width, cfg.Height, cfg.Title)
	}
	rl.SetExitKey(0)
	return nil
}

// loadFont loads the embedded TTF at size with the overlay codepoints and
// enables bilinear filtering.
func loadFont(size int) (rl.Font, error) {
	font := rl.LoadFontFromMemory(assets.FontFileType, assets.Font, int32(size), assets.Codepoints())
	if !rl.IsFontValid(font) {
		return font, fmt.Errorf("%w: embedded font at %dpt", dynamo.ErrFontLoad, size)
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font, nil
}

// NewApp wires the simulation to gfx. clock may be nil for time.Now.
func NewApp(cfg *config.Config, logger *log.Logger, gfx renderer, clock sim.Clock) (*App, error) {
	integ, err := integrators.New(cfg.Physics.Integrator)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = time.Now
	}
	model := &physics.Pendulum{Length: cfg.Physics.Length, Gravity: cfg.Physics.Gravity}

	return &App{
		Cfg:   cfg,
		Log:   logger,
		Model: model,
		Sim: sim.NewSimulation(model, integ, cfg.InitState(),
			sim.WithClock(clock),
			sim.WithMaxStep(cfg.Physics.MaxStep),
		),
		Frames: sim.NewFrameTimer(clock),
		gfx:    gfx,
	}, nil
}

// Run opens the window and blocks until it is closed or Escape is pressed.
// Any initialization or frame error closes the window and is returned.
func Run(cfg *config.Config, logger *log.Logger) error {
	if err := assets.CheckGlyphs(assets.Codepoints()); err != nil {
		return err
	}

	if err := initWindow(cfg.Window, logger); err != nil {
		return err
	}
	defer rl.CloseWindow()

	font, err := loadFont(cfg.Window.FontSize)
	if err != nil {
		return err
	}
	defer rl.UnloadFont(font)

	app, err := NewApp(cfg, logger, raylibRenderer{font: font, size: float32(cfg.Window.FontSize)}, nil)
	if err != nil {
		return err
	}

	logger.Info("window ready",
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
		"integrator", cfg.Physics.Integrator,
		"theta0", cfg.Physics.Theta0,
	)
	return app.RunLoop()
}

func (a *App) RunLoop() error {
	for {
		a.Frames.Begin()
		if quitRequested() {
			a.Log.Info("quit requested", "simulated", a.Sim.Time(), "theta", a.Sim.Theta(), "omega", a.Sim.Omega())
			return nil
		}
		if err := a.Frame(); err != nil {
			return err
		}
		a.Frames.End()
	}
}

// quitRequested reports a window close request or an Escape press.
func quitRequested() bool {
	return rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyEscape)
}

// Frame steps the simulation by the elapsed wall-clock time, draws the scene
// and presents it. The integration point is marked before presenting, which
// waits for vsync.
func (a *App) Frame() error {
	a.gfx.Begin()

	a.Sim.Advance()
	theta, omega := a.Sim.Theta(), a.Sim.Omega()
	readout := scene.Readout{
		Omega: omega,
		Theta: theta,
		Speed: a.Model.LinearSpeed(omega),
		FPS:   a.Frames.FPS(),
	}
	err := draw(a.gfx, scene.Compose(a.Cfg, theta, omega, readout, a.gfx))

	a.Sim.Mark()
	a.gfx.End()
	return err
}
