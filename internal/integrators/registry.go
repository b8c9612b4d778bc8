package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/pendulum/internal/dynamo"
)

const (
	SemiImplicit = "semi-implicit"
	Explicit     = "euler"
	RungeKutta4  = "rk4"
)

var factories = map[string]func() dynamo.Integrator{
	SemiImplicit: func() dynamo.Integrator { return NewSemiImplicitEuler() },
	Explicit:     func() dynamo.Integrator { return NewEuler() },
	RungeKutta4:  func() dynamo.Integrator { return NewRK4() },
}

// New returns a fresh integrator for name.
func New(name string) (dynamo.Integrator, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", dynamo.ErrUnknownIntegrator, name, Names())
	}
	return f(), nil
}

func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
