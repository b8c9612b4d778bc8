// Package kinematics converts pendulum state into screen-space geometry.
// Screen y grows downward, so theta = 0 places the bob straight below the
// pivot.
package kinematics

import "math"

// ReferenceAngle is the display angle, in degrees, of the downward vertical.
const ReferenceAngle = 90

type Point struct {
	X, Y int
}

// Projector holds the fixed geometry of the drawing: pivot, arm length in
// pixels and the divisor applied to omega for the velocity arrow.
type Projector struct {
	Pivot         Point
	Length        float64
	VelocityScale float64
}

// Bob returns the bob position for angle theta.
func (p Projector) Bob(theta float64) Point {
	return Point{
		X: p.Pivot.X + round(math.Sin(theta)*p.Length),
		Y: p.Pivot.Y + round(math.Cos(theta)*p.Length),
	}
}

// VelocityTip returns the end of the velocity arrow drawn from the bob,
// along the tangent of the swing.
func (p Projector) VelocityTip(theta, omega float64) Point {
	bob := p.Bob(theta)
	scaled := p.Length * omega / p.VelocityScale
	return Point{
		X: bob.X + round(math.Cos(theta)*scaled),
		Y: bob.Y - round(math.Sin(theta)*scaled),
	}
}

// DisplayAngle converts theta into the clockwise-from-+x degrees used by the
// arc primitives. The degree value is truncated toward zero.
func DisplayAngle(theta float64) int {
	return ReferenceAngle - int(theta*180/math.Pi)
}

// Sweep orders the arc bounds between angle and the reference angle so the
// arc is always drawn the short way.
func Sweep(angle int) (start, end int) {
	return min(angle, ReferenceAngle), max(angle, ReferenceAngle)
}

// ArcSweep is Sweep(DisplayAngle(theta)).
func ArcSweep(theta float64) (start, end int) {
	return Sweep(DisplayAngle(theta))
}

func round(v float64) int {
	return int(math.Round(v))
}
