package kinematics

import (
	"math"
	"testing"
)

var reference = Projector{Pivot: Point{300, 220}, Length: 200, VelocityScale: 10}

func TestBobAtRest(t *testing.T) {
	if got := reference.Bob(0); got != (Point{300, 420}) {
		t.Errorf("Bob(0) = %v, want {300 420}", got)
	}
	if got := reference.Bob(math.Pi / 2); got != (Point{500, 220}) {
		t.Errorf("Bob(pi/2) = %v, want {500 220}", got)
	}
}

func TestBobStaysOnCircle(t *testing.T) {
	for i := -720; i <= 720; i++ {
		theta := float64(i) * math.Pi / 180
		b := reference.Bob(theta)
		dx := float64(b.X - reference.Pivot.X)
		dy := float64(b.Y - reference.Pivot.Y)
		// each coordinate is rounded by at most half a pixel
		if r := math.Hypot(dx, dy); math.Abs(r-reference.Length) > math.Sqrt2/2 {
			t.Fatalf("theta=%f: radius %f, want %f", theta, r, reference.Length)
		}
	}
}

func TestVelocityTip(t *testing.T) {
	tests := []struct {
		name         string
		theta, omega float64
		want         Point
	}{
		{"at rest", 0.3, 0, reference.Bob(0.3)},
		{"bottom swinging", 0, 1, Point{320, 420}},
		{"bottom swinging back", 0, -2, Point{260, 420}},
		{"horizontal", math.Pi / 2, 1, Point{500, 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reference.VelocityTip(tt.theta, tt.omega); got != tt.want {
				t.Errorf("VelocityTip(%f, %f) = %v, want %v", tt.theta, tt.omega, got, tt.want)
			}
		})
	}
}

func TestVelocityTipIsTangent(t *testing.T) {
	theta, omega := -0.65*math.Pi, 10.0
	bob := reference.Bob(theta)
	tip := reference.VelocityTip(theta, omega)

	arm := [2]float64{float64(bob.X - reference.Pivot.X), float64(bob.Y - reference.Pivot.Y)}
	vel := [2]float64{float64(tip.X - bob.X), float64(tip.Y - bob.Y)}
	cos := (arm[0]*vel[0] + arm[1]*vel[1]) / (math.Hypot(arm[0], arm[1]) * math.Hypot(vel[0], vel[1]))
	if math.Abs(cos) > 0.02 {
		t.Errorf("velocity not perpendicular to arm, cos = %f", cos)
	}
}

func TestDisplayAngle(t *testing.T) {
	tests := []struct {
		theta float64
		want  int
	}{
		{0, 90},
		{math.Pi / 4, 45},
		{-math.Pi / 4, 135},
		{-0.65 * math.Pi, 207},
		{0.01, 90},
		{-0.01, 90},
	}

	for _, tt := range tests {
		if got := DisplayAngle(tt.theta); got != tt.want {
			t.Errorf("DisplayAngle(%f) = %d, want %d", tt.theta, got, tt.want)
		}
	}
}

func TestSweep(t *testing.T) {
	tests := []struct {
		angle      int
		start, end int
	}{
		{45, 45, 90},
		{135, 90, 135},
		{90, 90, 90},
		{-30, -30, 90},
		{300, 90, 300},
	}

	for _, tt := range tests {
		start, end := Sweep(tt.angle)
		if start != tt.start || end != tt.end {
			t.Errorf("Sweep(%d) = (%d, %d), want (%d, %d)", tt.angle, start, end, tt.start, tt.end)
		}
	}
}

func TestArcSweep(t *testing.T) {
	start, end := ArcSweep(-0.65 * math.Pi)
	if start != 90 || end != 207 {
		t.Errorf("ArcSweep(-0.65pi) = (%d, %d), want (90, 207)", start, end)
	}
}
