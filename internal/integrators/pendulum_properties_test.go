package integrators_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pendulum/internal/dynamo"
	"github.com/san-kum/pendulum/internal/integrators"
	"github.com/san-kum/pendulum/internal/physics"
)

var _ = Describe("SemiImplicitEuler on the pendulum", func() {
	var (
		p     *physics.Pendulum
		integ *integrators.SemiImplicitEuler
	)

	theta0 := -0.65 * math.Pi

	BeforeEach(func() {
		p = physics.NewPendulum()
		integ = integrators.NewSemiImplicitEuler()
	})

	DescribeTable("leaves the state unchanged when no time elapsed",
		func(theta float64) {
			x := integ.Step(p, dynamo.State{theta, 0}, 0, 0)
			Expect(x[0]).To(Equal(theta))
			Expect(x[1]).To(Equal(0.0))
		},
		Entry("just above -pi", -math.Pi+1e-9),
		Entry("negative", -2.0),
		Entry("zero", 0.0),
		Entry("positive", 1.3),
		Entry("pi", math.Pi),
	)

	It("keeps the hanging rest position as a fixed point", func() {
		x := dynamo.State{0, 0}
		for _, dt := range []float64{0.001, 1.0 / 120, 0.5, 10, 1e6} {
			x = integ.Step(p, x, 0, dt)
			Expect(x).To(Equal(dynamo.State{0, 0}))
		}
	})

	It("matches the closed form after one step of 10 ms", func() {
		x := integ.Step(p, dynamo.State{theta0, 0}, 0, 0.01)

		omega1 := (-981.0 / 200.0) * math.Sin(theta0) * 0.01
		Expect(x[1]).To(BeNumerically("~", omega1, 1e-15))
		Expect(x[0]).To(BeNumerically("~", theta0+omega1*0.01, 1e-15))

		Expect(x[1]).To(BeNumerically("~", 0.043704, 5e-7))
		Expect(x[0]).To(BeNumerically("~", -2.041598, 5e-7))
	})

	It("keeps the energy bounded over 1000 steps at 120 Hz", func() {
		x := dynamo.State{theta0, 0}
		e0 := p.Energy(x)
		maxDrift := 0.0
		for i := 0; i < 1000; i++ {
			x = integ.Step(p, x, float64(i)/120, 1.0/120)
			maxDrift = math.Max(maxDrift, math.Abs(p.Energy(x)-e0))
		}
		Expect(maxDrift).To(BeNumerically("<", 0.1))
	})

	It("drifts far less than explicit Euler", func() {
		explicit := integrators.NewEuler()
		xs, xe := dynamo.State{theta0, 0}, dynamo.State{theta0, 0}
		e0 := p.Energy(xs)
		for i := 0; i < 1000; i++ {
			xs = integ.Step(p, xs, 0, 1.0/120)
			xe = explicit.Step(p, xe, 0, 1.0/120)
		}
		Expect(math.Abs(p.Energy(xe) - e0)).To(BeNumerically(">", 10*math.Abs(p.Energy(xs)-e0)))
	})
})
