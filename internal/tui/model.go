// Package tui runs the pendulum in the terminal with Bubble Tea, drawing the
// same scene as the window on a Braille canvas.
package tui

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/pendulum/internal/config"
	"github.com/san-kum/pendulum/internal/integrators"
	"github.com/san-kum/pendulum/internal/metrics"
	"github.com/san-kum/pendulum/internal/physics"
	"github.com/san-kum/pendulum/internal/scene"
	"github.com/san-kum/pendulum/internal/sim"
)

const (
	frameInterval = time.Second / 60
	panelWidth    = 34
	historyLen    = 120
	minCols       = 10
	minRows       = 5
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	border = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238"))
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type Model struct {
	cfg     *config.Config
	model   *physics.Pendulum
	sim     *sim.Simulation
	frames  *sim.FrameTimer
	energy  *metrics.EnergyDrift
	history []float64

	width  int
	height int
}

// New builds the terminal model from cfg. clock may be nil for time.Now.
func New(cfg *config.Config, clock sim.Clock) (*Model, error) {
	integ, err := integrators.New(cfg.Physics.Integrator)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = time.Now
	}
	p := &physics.Pendulum{Length: cfg.Physics.Length, Gravity: cfg.Physics.Gravity}
	s := sim.NewSimulation(p, integ, cfg.InitState(),
		sim.WithClock(clock),
		sim.WithMaxStep(cfg.Physics.MaxStep),
	)
	m := &Model{
		cfg:     cfg,
		model:   p,
		sim:     s,
		frames:  sim.NewFrameTimer(clock),
		energy:  metrics.NewEnergyDrift(p),
		history: make([]float64, 0, historyLen),
		width:   80,
		height:  24,
	}
	m.observe()
	m.frames.Begin()
	return m, nil
}

func (m *Model) Init() tea.Cmd { return tick() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.Frame()
		return m, tick()
	}
	return m, nil
}

// Frame advances the simulation by the time elapsed since the previous frame.
// A terminal frame spans tick to tick, so the timer is closed and reopened here.
func (m *Model) Frame() {
	m.frames.End()
	m.frames.Begin()
	m.sim.Advance()
	m.sim.Mark()
	m.observe()
}

func (m *Model) observe() {
	m.energy.Observe(m.sim.State(), m.sim.Time())
	if len(m.history) == historyLen {
		m.history = m.history[1:]
	}
	m.history = append(m.history, m.energy.Current())
}

func (m *Model) Readout() scene.Readout {
	omega := m.sim.Omega()
	return scene.Readout{
		Omega: omega,
		Theta: m.sim.Theta(),
		Speed: m.model.LinearSpeed(omega),
		FPS:   m.frames.FPS(),
	}
}

// cellMeasurer sizes overlay text in terminal cells.
type cellMeasurer struct{}

func (cellMeasurer) Measure(text string) scene.Size {
	return scene.Size{W: utf8.RuneCountInString(text), H: 1}
}

func (m *Model) canvasSize() (cols, rows int) {
	cols = m.width - panelWidth - 4
	rows = m.height - 2
	return max(cols, minCols), max(rows, minRows)
}

func (m *Model) View() string {
	r := m.Readout()
	s := scene.Compose(m.cfg, m.sim.Theta(), m.sim.Omega(), r, cellMeasurer{})

	cols, rows := m.canvasSize()
	c := NewCanvas(cols, rows)
	Fit(c, m.cfg.Window.Width, m.cfg.Window.Height).Draw(c, s)

	left := border.Render(cyan.Render(c.String()))
	right := border.Width(panelWidth).Render(m.panel(r))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m *Model) panel(r scene.Readout) string {
	var b strings.Builder
	b.WriteString(white.Bold(true).Render(m.cfg.Window.Title))
	b.WriteString("\n\n")
	for _, line := range r.Overlays() {
		b.WriteString(white.Render(line))
		b.WriteByte('\n')
	}
	b.WriteString(dim.Render("t: " + formatSeconds(m.sim.Time())))
	b.WriteString("\n\n")
	if len(m.history) > 1 {
		b.WriteString(asciigraph.Plot(m.history,
			asciigraph.Height(6),
			asciigraph.Width(panelWidth-12),
			asciigraph.Precision(3),
			asciigraph.Caption("energy"),
		))
		b.WriteString("\n\n")
	}
	b.WriteString(dim.Render("q/esc quit"))
	return b.String()
}

func formatSeconds(t float64) string {
	return time.Duration(t * float64(time.Second)).Truncate(10 * time.Millisecond).String()
}

// Run blocks until the user quits.
func Run(cfg *config.Config, logger *log.Logger) error {
	m, err := New(cfg, nil)
	if err != nil {
		return err
	}
	logger.Info("terminal view ready", "integrator", cfg.Physics.Integrator, "theta0", cfg.Physics.Theta0)

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	logger.Info("terminal view closed", "simulated", m.sim.Time(), "energy_drift", m.energy.Value())
	return nil
}
