package sim

import (
	"time"

	"github.com/san-kum/pendulum/internal/dynamo"
)

// Clock returns the current time. Tests substitute a fake.
type Clock func() time.Time

// Simulation is the real-time simulation state owned by a render loop:
// the pendulum state plus the timestamp of the last integration point.
type Simulation struct {
	dyn      dynamo.System
	integ    dynamo.Integrator
	state    dynamo.State
	t        float64
	lastTick time.Time
	maxStep  float64
	now      Clock
}

type Option func(*Simulation)

// WithClock replaces time.Now.
func WithClock(c Clock) Option {
	return func(s *Simulation) { s.now = c }
}

// WithMaxStep clamps every elapsed interval to d seconds. Zero disables it.
func WithMaxStep(d float64) Option {
	return func(s *Simulation) { s.maxStep = d }
}

// NewSimulation starts the clock at construction time.
func NewSimulation(dyn dynamo.System, integ dynamo.Integrator, x0 dynamo.State, opts ...Option) *Simulation {
	s := &Simulation{
		dyn:   dyn,
		integ: integ,
		state: x0.Clone(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lastTick = s.now()
	return s
}

// Advance integrates over the wall-clock time elapsed since the last Mark
// (or construction) and returns the step used, in seconds. A clock that went
// backwards yields a zero step.
func (s *Simulation) Advance() float64 {
	dt := s.now().Sub(s.lastTick).Seconds()
	if dt < 0 {
		dt = 0
	}
	if s.maxStep > 0 && dt > s.maxStep {
		dt = s.maxStep
	}
	s.Step(dt)
	return dt
}

// Step integrates by exactly dt seconds without touching the clock.
func (s *Simulation) Step(dt float64) {
	s.state = s.integ.Step(s.dyn, s.state, s.t, dt)
	s.t += dt
}

// Mark records the current time as the integration point the next Advance
// measures from. The window loop calls it right before presenting.
func (s *Simulation) Mark() {
	s.lastTick = s.now()
}

func (s *Simulation) Theta() float64 { return s.state[0] }
func (s *Simulation) Omega() float64 { return s.state[1] }

// Time is the accumulated simulated time in seconds.
func (s *Simulation) Time() float64 { return s.t }

func (s *Simulation) State() dynamo.State { return s.state.Clone() }
