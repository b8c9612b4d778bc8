// Package analysis measures fixed-step trajectories of the pendulum.
//
//   - [Period]: mean spacing of upward crossings through the series mean
//   - [DominantFrequency]: largest non-DC bin of the power spectrum
//   - [PhasePortrait]: θ-ω trajectory rendered as text
//
// Period and DominantFrequency are independent estimates; for a librating
// pendulum both should agree with the exact period of the physics model:
//
//	T, ok := analysis.Period(res.Times, omega)
//	f := analysis.DominantFrequency(omega, dt)
package analysis
