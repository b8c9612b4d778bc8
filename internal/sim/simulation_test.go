package sim_test

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pendulum/internal/dynamo"
	"github.com/san-kum/pendulum/internal/integrators"
	"github.com/san-kum/pendulum/internal/physics"
	"github.com/san-kum/pendulum/internal/sim"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time      { return c.t }
func (c *fakeClock) Add(d time.Duration) { c.t = c.t.Add(d) }

var _ = Describe("Simulation", func() {
	var (
		clock  *fakeClock
		p      *physics.Pendulum
		theta0 float64
	)

	BeforeEach(func() {
		clock = &fakeClock{t: time.Unix(1700000000, 0)}
		p = physics.NewPendulum()
		theta0 = -0.65 * math.Pi
	})

	newSim := func(opts ...sim.Option) *sim.Simulation {
		opts = append([]sim.Option{sim.WithClock(clock.Now)}, opts...)
		return sim.NewSimulation(p, integrators.NewSemiImplicitEuler(), dynamo.State{theta0, 0}, opts...)
	}

	It("does not move when no time elapsed", func() {
		s := newSim()
		Expect(s.Advance()).To(Equal(0.0))
		Expect(s.Theta()).To(Equal(theta0))
		Expect(s.Omega()).To(Equal(0.0))
	})

	It("integrates over the elapsed wall-clock time", func() {
		s := newSim()
		clock.Add(10 * time.Millisecond)

		Expect(s.Advance()).To(BeNumerically("~", 0.01, 1e-12))
		Expect(s.Omega()).To(BeNumerically("~", 0.043704, 5e-7))
		Expect(s.Theta()).To(BeNumerically("~", -2.041598, 5e-7))
		Expect(s.Time()).To(BeNumerically("~", 0.01, 1e-12))
	})

	It("measures from the last mark, not the last advance", func() {
		s := newSim()
		clock.Add(5 * time.Millisecond)
		Expect(s.Advance()).To(BeNumerically("~", 0.005, 1e-12))

		clock.Add(3 * time.Millisecond)
		s.Mark()
		clock.Add(2 * time.Millisecond)
		Expect(s.Advance()).To(BeNumerically("~", 0.002, 1e-12))
	})

	It("clamps long stalls when a max step is configured", func() {
		s := newSim(sim.WithMaxStep(0.05))
		clock.Add(3 * time.Second)
		Expect(s.Advance()).To(Equal(0.05))
	})

	It("passes long stalls through unchanged by default", func() {
		s := newSim()
		clock.Add(3 * time.Second)
		Expect(s.Advance()).To(Equal(3.0))
		Expect(s.State().IsValid()).To(BeTrue())
	})

	It("treats a clock that went backwards as no elapsed time", func() {
		s := newSim()
		clock.Add(-time.Second)
		Expect(s.Advance()).To(Equal(0.0))
		Expect(s.Theta()).To(Equal(theta0))
	})

	It("returns a copy of its state", func() {
		s := newSim()
		x := s.State()
		x[0] = 42
		Expect(s.Theta()).To(Equal(theta0))
	})
})

var _ = Describe("FrameTimer", func() {
	It("reports one tick before the first frame completes", func() {
		ft := sim.NewFrameTimer(time.Now)
		Expect(ft.Previous()).To(Equal(time.Nanosecond))
		Expect(ft.FPS()).To(BeNumerically("~", 1e9, 1))
	})

	It("reports the previous frame's rate", func() {
		clock := &fakeClock{t: time.Unix(0, 0)}
		ft := sim.NewFrameTimer(clock.Now)

		ft.Begin()
		clock.Add(20 * time.Millisecond)
		ft.End()
		Expect(ft.FPS()).To(BeNumerically("~", 50, 1e-9))

		ft.Begin()
		Expect(ft.FPS()).To(BeNumerically("~", 50, 1e-9))
	})

	It("keeps the rate finite for zero-length frames", func() {
		clock := &fakeClock{t: time.Unix(0, 0)}
		ft := sim.NewFrameTimer(clock.Now)
		ft.Begin()
		ft.End()
		Expect(math.IsInf(ft.FPS(), 0)).To(BeFalse())
	})
})
