// Package radar renders a top-down plot of the course: x across, depth down.
package radar

import (
	"math"

	"github.com/vovakirdan/space-course/internal/core"
	"github.com/vovakirdan/space-course/internal/course"
	"github.com/vovakirdan/space-course/internal/registry"
)

// Plotted world window.
const (
	minX = -6.0
	maxX = 6.0
	minZ = -50.0 // Top row
	maxZ = 10.0  // Bottom row
)

func init() {
	registry.Register("radar", func() registry.View { return New() })
}

// View is the top-down renderer.
type View struct{}

// New creates a radar view.
func New() *View {
	return &View{}
}

// ID implements registry.View.
func (v *View) ID() string { return "radar" }

// Title implements registry.View.
func (v *View) Title() string { return "Radar" }

// Render implements registry.View.
// Obstacles that overlap the craft's height band are drawn in red.
func (v *View) Render(r course.FrameResult, dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w < 3 || h < 3 {
		return
	}
	dst.DrawBox(core.NewRect(0, 0, w, h), core.ColorDarkGray)

	p := plot{x0: 1, y0: 1, w: w - 2, h: h - 2}

	_, craftRow := p.cell(0, r.Craft.Position.Z)
	dst.DrawHLine(p.x0, craftRow, p.w, '·', core.ColorDarkGray)

	for _, o := range r.Obstacles {
		col, row := p.cell(o.Position.X, o.Position.Z)
		halfCols := int(math.Round(o.Radius * float64(p.w-1) / (maxX - minX)))

		glyph := '*'
		if o.Kind == course.Planet {
			glyph = 'O'
		}
		color := core.ColorGray
		if math.Abs(o.Position.Y-r.Craft.Position.Y) < o.Radius+r.Craft.Radius {
			color = core.ColorBrightRed
		}
		for x := col - halfCols; x <= col+halfCols; x++ {
			if x >= p.x0 && x < p.x0+p.w {
				dst.SetColored(x, row, glyph, color)
			}
		}
	}

	col, row := p.cell(r.Craft.Position.X, r.Craft.Position.Z)
	glyph, color := 'A', core.ColorBrightCyan
	if r.State == course.StateGameOver {
		glyph, color = 'X', core.ColorBrightRed
	}
	dst.SetColored(col, row, glyph, color)
}

// plot maps world x/z onto the inner area of the frame.
type plot struct {
	x0, y0, w, h int
}

func (p plot) cell(x, z float64) (col, row int) {
	fx := (core.ClampF(x, minX, maxX) - minX) / (maxX - minX)
	fz := (core.ClampF(z, minZ, maxZ) - minZ) / (maxZ - minZ)
	col = p.x0 + int(math.Round(fx*float64(p.w-1)))
	row = p.y0 + int(math.Round(fz*float64(p.h-1)))
	return col, row
}
