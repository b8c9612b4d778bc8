package tui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/pendulum/internal/config"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestModel(t *testing.T) (*Model, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	m, err := New(config.DefaultConfig(), clock.Now)
	if err != nil {
		t.Fatal(err)
	}
	return m, clock
}

func TestQuitKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}
	for _, k := range keys {
		m, _ := newTestModel(t)
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%q: no command", k.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q did not quit", k.String())
		}
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd != nil {
		t.Error("unexpected command for unbound key")
	}
}

func TestTickAdvances(t *testing.T) {
	m, clock := newTestModel(t)
	if fps := m.Readout().FPS; math.Abs(fps-1e9) > 1 {
		t.Errorf("initial fps = %v, want 1e9", fps)
	}

	clock.t = clock.t.Add(10 * time.Millisecond)
	_, cmd := m.Update(tickMsg(clock.t))
	if cmd == nil {
		t.Error("tick did not schedule the next frame")
	}

	r := m.Readout()
	if math.Abs(r.Omega-0.0437038700) > 1e-9 {
		t.Errorf("omega = %v", r.Omega)
	}
	if math.Abs(r.Theta-(-2.0415981861)) > 1e-9 {
		t.Errorf("theta = %v", r.Theta)
	}
	if math.Abs(r.FPS-100) > 1e-9 {
		t.Errorf("fps = %v, want 100", r.FPS)
	}
	if len(m.history) != 2 {
		t.Errorf("history len = %d, want 2", len(m.history))
	}
}

func TestHistoryBounded(t *testing.T) {
	m, clock := newTestModel(t)
	for i := 0; i < historyLen+10; i++ {
		clock.t = clock.t.Add(frameInterval)
		m.Frame()
	}
	if len(m.history) != historyLen {
		t.Errorf("history len = %d, want %d", len(m.history), historyLen)
	}
}

func TestWindowSizeAndView(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if cols, rows := m.canvasSize(); cols != 62 || rows != 28 {
		t.Errorf("canvas = %dx%d, want 62x28", cols, rows)
	}

	view := m.View()
	for _, want := range []string{"ω: 0.000 rad/s", "θ: -2.042 rad", "v: 0.000 m/s", "FPS:"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m.Update(tea.WindowSizeMsg{Width: 20, Height: 4})
	if cols, rows := m.canvasSize(); cols != minCols || rows != minRows {
		t.Errorf("canvas = %dx%d, want minimum", cols, rows)
	}
}
