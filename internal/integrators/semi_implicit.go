package integrators

import "github.com/san-kum/pendulum/internal/dynamo"

// SemiImplicitEuler advances the velocity half of the state with the
// derivative taken at x, then the position half with the updated velocity.
//
//	omega' = omega + a(theta) * dt
//	theta' = theta + omega' * dt
type SemiImplicitEuler struct{}

func NewSemiImplicitEuler() *SemiImplicitEuler {
	return &SemiImplicitEuler{}
}

func (s *SemiImplicitEuler) Step(dyn dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	n := len(x)
	half := n / 2

	result := make(dynamo.State, n)
	dx := dyn.Derive(x, t)

	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + dx[half+i]*dt
		result[i] = x[i] + result[half+i]*dt
	}

	return result
}
