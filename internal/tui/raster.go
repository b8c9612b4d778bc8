package tui

import (
	"math"

	"github.com/san-kum/pendulum/internal/kinematics"
	"github.com/san-kum/pendulum/internal/scene"
)

// Raster maps window pixel coordinates onto canvas sub-pixels, keeping the
// aspect ratio of the window.
type Raster struct {
	Scale float64
}

// Fit returns the raster that fits a w x h pixel window into c.
func Fit(c *Canvas, w, h int) Raster {
	sx := float64(c.Width*2) / float64(w)
	sy := float64(c.Height*4) / float64(h)
	return Raster{Scale: math.Min(sx, sy)}
}

func (r Raster) point(p kinematics.Point) (int, int) {
	return int(math.Round(float64(p.X) * r.Scale)), int(math.Round(float64(p.Y) * r.Scale))
}

func (r Raster) length(v float64) int {
	return int(math.Round(v * r.Scale))
}

// Draw rasterizes the shapes of s onto c in order. Texts are not drawn: the
// terminal view prints them beside the canvas.
func (r Raster) Draw(c *Canvas, s scene.Scene) {
	for _, it := range s.Items {
		switch it := it.(type) {
		case scene.Line:
			x0, y0 := r.point(it.From)
			x1, y1 := r.point(it.To)
			c.DrawLine(x0, y0, x1, y1)
		case scene.Circle:
			x, y := r.point(it.Center)
			c.DrawCircle(x, y, r.length(it.Radius))
		case scene.Sector:
			if it.Start == it.End {
				continue
			}
			x, y := r.point(it.Center)
			c.FillSector(x, y, r.length(it.Radius), it.Start, it.End)
		}
	}
}
