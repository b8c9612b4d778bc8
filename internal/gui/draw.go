package gui

import (
	"fmt"
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/pendulum/internal/dynamo"
	"github.com/san-kum/pendulum/internal/kinematics"
	"github.com/san-kum/pendulum/internal/scene"
)

// renderer is the drawing surface a frame is issued to. Begin and End
// bracket one frame; End presents it.
type renderer interface {
	scene.Measurer
	Begin()
	End()
	Clear(c color.RGBA)
	Line(from, to kinematics.Point, c color.RGBA)
	CircleOutline(center kinematics.Point, radius float64, c color.RGBA)
	Sector(center kinematics.Point, radius float64, start, end int, c color.RGBA)
	Text(s string, pos kinematics.Point, c color.RGBA)
	FontValid() bool
}

type raylibRenderer struct {
	font rl.Font
	size float32
}

func (r raylibRenderer) Begin() { rl.BeginDrawing() }
func (r raylibRenderer) End()   { rl.EndDrawing() }

func (r raylibRenderer) Clear(c color.RGBA) { rl.ClearBackground(c) }

func (r raylibRenderer) Line(from, to kinematics.Point, c color.RGBA) {
	rl.DrawLineV(vec(from), vec(to), c)
}

func (r raylibRenderer) CircleOutline(center kinematics.Point, radius float64, c color.RGBA) {
	rl.DrawCircleLinesV(vec(center), float32(radius), c)
}

func (r raylibRenderer) Sector(center kinematics.Point, radius float64, start, end int, c color.RGBA) {
	rl.DrawCircleSector(vec(center), float32(radius), float32(start), float32(end), 0, c)
}

func (r raylibRenderer) Text(s string, pos kinematics.Point, c color.RGBA) {
	rl.DrawTextEx(r.font, s, vec(pos), r.size, 0, c)
}

func (r raylibRenderer) FontValid() bool { return rl.IsFontValid(r.font) }

func (r raylibRenderer) Measure(text string) scene.Size {
	v := rl.MeasureTextEx(r.font, text, r.size, 0)
	return scene.Size{W: int(math.Ceil(float64(v.X))), H: int(math.Ceil(float64(v.Y)))}
}

func vec(p kinematics.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

// draw issues the items of s in order. Any failure is fatal to the frame.
func draw(r renderer, s scene.Scene) error {
	r.Clear(s.Background)

	for _, it := range s.Items {
		switch it := it.(type) {
		case scene.Line:
			r.Line(it.From, it.To, it.Color)
		case scene.Circle:
			r.CircleOutline(it.Center, it.Radius, it.Color)
		case scene.Sector:
			// an empty sweep has nothing to fill
			if it.Start == it.End {
				continue
			}
			r.Sector(it.Center, it.Radius, it.Start, it.End, it.Color)
		case scene.Text:
			if !r.FontValid() {
				return fmt.Errorf("%w: font texture no longer valid", dynamo.ErrFontLoad)
			}
			r.Text(it.Value, it.Pos, it.Color)
		default:
			return fmt.Errorf("gui: unsupported scene item %T", it)
		}
	}
	return nil
}
