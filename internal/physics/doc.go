// Package physics provides the simple pendulum model.
//
// [Pendulum] implements [dynamo.System] and [dynamo.Hamiltonian]. Units are
// centimetres and seconds, so g/l is in 1/s²:
//
//	p := physics.NewPendulum()
//	dx := p.Derive(dynamo.State{theta, omega}, 0) // {omega, -g/l*sin(theta)}
package physics
