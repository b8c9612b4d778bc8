package physics

import (
	"math"

	"github.com/san-kum/pendulum/internal/dynamo"
)

const (
	// DefaultLength is the arm length in cm.
	DefaultLength = 200.0
	// DefaultGravity is the gravitational acceleration in cm/s².
	DefaultGravity = 981.0
)

// Pendulum is an undamped simple pendulum. State is {theta, omega} with theta
// measured from the downward vertical.
type Pendulum struct {
	Length  float64
	Gravity float64
}

func NewPendulum() *Pendulum {
	return &Pendulum{
		Length:  DefaultLength,
		Gravity: DefaultGravity,
	}
}

func (p *Pendulum) StateDim() int {
	return 2
}

func (p *Pendulum) Derive(x dynamo.State, t float64) dynamo.State {
	theta := x[0]
	omega := x[1]

	alpha := -p.Gravity / p.Length * math.Sin(theta)

	return dynamo.State{omega, alpha}
}

// Energy returns the mass-normalized energy 0.5*omega^2 - (g/l)*cos(theta),
// in 1/s². It is conserved by the exact flow.
func (p *Pendulum) Energy(x dynamo.State) float64 {
	return 0.5*x[1]*x[1] - p.Gravity/p.Length*math.Cos(x[0])
}

// LinearSpeed converts an angular velocity into the bob's speed in m/s.
func (p *Pendulum) LinearSpeed(omega float64) float64 {
	return omega * p.Length / 100.0
}

// SmallAnglePeriod is 2π√(l/g), the period in the linear limit.
func (p *Pendulum) SmallAnglePeriod() float64 {
	return 2 * math.Pi * math.Sqrt(p.Length/p.Gravity)
}

// Period returns the exact period of a libration released from rest at
// amplitude theta0, using the arithmetic-geometric mean form of the complete
// elliptic integral K(sin(theta0/2)). It returns +Inf for |theta0| >= π,
// where the motion no longer librates.
func (p *Pendulum) Period(theta0 float64) float64 {
	k := math.Sin(math.Abs(theta0) / 2)
	if math.Abs(theta0) >= math.Pi || k >= 1 {
		return math.Inf(1)
	}
	a, b := 1.0, math.Sqrt(1-k*k)
	for i := 0; i < 64 && math.Abs(a-b) > 1e-15*a; i++ {
		a, b = (a+b)/2, math.Sqrt(a*b)
	}
	// T = T0 * 2K/π and K = π/(2·agm)
	return p.SmallAnglePeriod() / a
}
