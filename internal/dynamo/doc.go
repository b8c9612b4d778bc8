// Package dynamo provides the core simulation primitives shared by the
// pendulum model, the integrators and the render loops.
//
//   - [State]: vector representing system state, positions first, velocities second
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator
//   - [Hamiltonian]: systems that can report their total energy
//
// # Example
//
//	dyn := physics.NewPendulum()
//	integ := integrators.NewSemiImplicitEuler()
//	x := integ.Step(dyn, dynamo.State{theta, omega}, t, dt)
//
// # Thread Safety
//
// Integrators keep scratch buffers and are NOT safe for concurrent use.
package dynamo
