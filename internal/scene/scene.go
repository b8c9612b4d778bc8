// Package scene builds the display list for one frame of the pendulum view.
// Backends (raylib window, terminal canvas) only translate the items, in
// order, into draw calls.
package scene

import (
	"fmt"
	"image/color"

	"github.com/san-kum/pendulum/internal/config"
	"github.com/san-kum/pendulum/internal/kinematics"
)

var (
	Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Ink        = color.RGBA{A: 255}
	Velocity   = color.RGBA{R: 255, A: 255}
	Accent     = color.RGBA{B: 255, A: 100}
)

type Item interface {
	item()
}

type Line struct {
	From, To kinematics.Point
	Color    color.RGBA
}

// Circle is an outline.
type Circle struct {
	Center kinematics.Point
	Radius float64
	Color  color.RGBA
}

// Sector is a filled pie slice. Angles are degrees, clockwise from +x, with
// Start <= End.
type Sector struct {
	Center     kinematics.Point
	Radius     float64
	Start, End int
	Color      color.RGBA
}

// Text is anchored at its top-left corner.
type Text struct {
	Value string
	Pos   kinematics.Point
	Color color.RGBA
}

func (Line) item()   {}
func (Circle) item() {}
func (Sector) item() {}
func (Text) item()   {}

type Scene struct {
	Background color.RGBA
	Items      []Item
}

// Readout holds the values printed in the overlays.
type Readout struct {
	Omega float64
	Theta float64
	Speed float64
	FPS   float64
}

// Overlays formats the four overlay strings: angular velocity, angle and
// linear speed (top-left, in order) followed by the frame rate.
func (r Readout) Overlays() [4]string {
	return [4]string{
		fmt.Sprintf("ω: %.3f rad/s", r.Omega),
		fmt.Sprintf("θ: %.3f rad", r.Theta),
		fmt.Sprintf("v: %.3f m/s", r.Speed),
		fmt.Sprintf("FPS: %.2f", r.FPS),
	}
}

type Size struct {
	W, H int
}

// Measurer reports the rendered size of a string in the overlay font.
type Measurer interface {
	Measure(text string) Size
}

// Layout places the overlays: the first three stacked from the top-left
// border, each directly below the previous one, and the last one against
// the bottom-right border.
func Layout(width, height, border int, sizes [4]Size) [4]kinematics.Point {
	var pos [4]kinematics.Point
	y := border
	for i := 0; i < 3; i++ {
		pos[i] = kinematics.Point{X: border, Y: y}
		y += sizes[i].H
	}
	pos[3] = kinematics.Point{
		X: width - border - sizes[3].W,
		Y: height - border - sizes[3].H,
	}
	return pos
}

// Compose builds the frame for the given state and readout.
func Compose(cfg *config.Config, theta, omega float64, r Readout, m Measurer) Scene {
	proj := cfg.Projector()
	pivot := proj.Pivot
	bob := proj.Bob(theta)
	tip := proj.VelocityTip(theta, omega)
	start, end := kinematics.ArcSweep(theta)
	axis := cfg.Display.AxisLength

	items := []Item{
		Line{From: pivot, To: bob, Color: Ink},
		Circle{Center: bob, Radius: cfg.Display.BobRadius, Color: Ink},
		Line{From: bob, To: tip, Color: Velocity},
		Sector{Center: pivot, Radius: cfg.Display.ArcRadius, Start: start, End: end, Color: Accent},
		Line{From: pivot, To: kinematics.Point{X: pivot.X, Y: pivot.Y + axis}, Color: Accent},
		Line{From: pivot, To: kinematics.Point{X: pivot.X + axis, Y: pivot.Y}, Color: Accent},
	}

	texts := r.Overlays()
	var sizes [4]Size
	for i, s := range texts {
		sizes[i] = m.Measure(s)
	}
	pos := Layout(cfg.Window.Width, cfg.Window.Height, cfg.Window.Border, sizes)
	for i, s := range texts {
		items = append(items, Text{Value: s, Pos: pos[i], Color: Ink})
	}

	return Scene{Background: Background, Items: items}
}
