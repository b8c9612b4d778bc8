package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation and rendering.
var (
	// ErrInvalidState indicates a state vector with NaN or Inf values.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrNegativeStep indicates a negative time step was requested.
	ErrNegativeStep = errors.New("dynamo: negative time step")

	// ErrUnknownIntegrator indicates an integrator name with no implementation.
	ErrUnknownIntegrator = errors.New("dynamo: unknown integrator")

	// ErrInvalidConfig indicates a configuration value outside its valid range.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")

	// ErrWindowInit indicates the window or rendering surface could not be created.
	ErrWindowInit = errors.New("dynamo: window initialization failed")

	// ErrFontLoad indicates the embedded font could not be parsed or loaded.
	ErrFontLoad = errors.New("dynamo: font load failed")
)

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int
	Time    float64
	State   State
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
