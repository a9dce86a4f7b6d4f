// Package chase renders the course from a camera behind the craft.
package chase

import (
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/space-course/internal/core"
	"github.com/vovakirdan/space-course/internal/course"
	"github.com/vovakirdan/space-course/internal/registry"
)

const (
	cameraZ    = 5.0
	fovDegrees = 75.0
	nearPlane  = 0.5
	cellAspect = 2.0 // Terminal cells are about twice as tall as wide

	starCount = 60
	starSeed  = 7

	bankThreshold = 0.15
	discMinRows   = 0.75 // Smaller projections are drawn as a single glyph
)

func init() {
	registry.Register("chase", func() registry.View { return New() })
}

type star struct {
	angle float64
	r0    float64
	speed float64 // Fraction of the half-screen per frame
}

// View is the default perspective renderer.
type View struct {
	stars []star
}

// New creates a chase view with a fixed starfield.
func New() *View {
	rng := rand.New(rand.NewSource(starSeed))
	stars := make([]star, starCount)
	for i := range stars {
		stars[i] = star{
			angle: rng.Float64() * 2 * math.Pi,
			r0:    rng.Float64(),
			speed: 0.002 + rng.Float64()*0.006,
		}
	}
	return &View{stars: stars}
}

// ID implements registry.View.
func (v *View) ID() string { return "chase" }

// Title implements registry.View.
func (v *View) Title() string { return "Chase Camera" }

// Render implements registry.View.
func (v *View) Render(r course.FrameResult, dst *core.Screen) {
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	cam := newCamera(dst.Width(), dst.Height())

	v.drawStars(cam, r.Frame, dst)

	obstacles := append([]course.Obstacle(nil), r.Obstacles...)
	sort.SliceStable(obstacles, func(i, j int) bool {
		return obstacles[i].Position.Z < obstacles[j].Position.Z
	})

	// Far to near, with the craft slotted in at its own depth
	craftDrawn := false
	for _, o := range obstacles {
		if !craftDrawn && o.Position.Z > r.Craft.Position.Z {
			drawCraft(cam, r, dst)
			craftDrawn = true
		}
		drawObstacle(cam, o, o.ID == r.Hit, dst)
	}
	if !craftDrawn {
		drawCraft(cam, r, dst)
	}
}

type camera struct {
	cx, cy float64
	focal  float64 // Rows per world unit at distance 1
}

func newCamera(w, h int) camera {
	half := fovDegrees * math.Pi / 360
	return camera{
		cx:    float64(w) / 2,
		cy:    float64(h) / 2,
		focal: (float64(h) / 2) / math.Tan(half),
	}
}

// project maps a world point to fractional cell coordinates and the
// rows-per-unit scale at its depth.
func (c camera) project(p core.Vec3) (x, y, scale float64, ok bool) {
	d := cameraZ - p.Z
	if d < nearPlane {
		return 0, 0, 0, false
	}
	scale = c.focal / d
	return c.cx + p.X*scale*cellAspect, c.cy - p.Y*scale, scale, true
}

func (v *View) drawStars(cam camera, frame uint64, dst *core.Screen) {
	for _, s := range v.stars {
		r := math.Mod(s.r0+float64(frame)*s.speed, 1)
		x := cam.cx + math.Cos(s.angle)*r*cam.cx
		y := cam.cy + math.Sin(s.angle)*r*cam.cy

		glyph, color := '.', core.ColorDarkGray
		if r > 0.6 {
			glyph, color = '+', core.ColorGray
		}
		dst.SetColored(cell(x), cell(y), glyph, color)
	}
}

func drawObstacle(cam camera, o course.Obstacle, hit bool, dst *core.Screen) {
	x, y, scale, ok := cam.project(o.Position)
	if !ok {
		return
	}

	glyph, color := '*', core.ColorOrange
	if o.Kind == course.Planet {
		glyph = 'O'
		color = planetColors[o.ID%uint64(len(planetColors))]
	}
	if hit {
		color = core.ColorBrightRed
	}

	ry := o.Radius * scale
	if ry < discMinRows {
		dst.SetColored(cell(x), cell(y), glyph, color)
		return
	}
	if o.Kind == course.Asteroid {
		glyph = '@'
	}
	dst.DrawEllipse(x, y, ry*cellAspect, ry, glyph, color)
}

var planetColors = []core.Color{
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorGreen,
}

// Menu idle animation, cycled every eight frames.
var menuSpin = []string{"<A>", "/A-", "-A-", "-A\\"}

func drawCraft(cam camera, r course.FrameResult, dst *core.Screen) {
	x, y, _, ok := cam.project(r.Craft.Position)
	if !ok {
		return
	}

	sprite, color := craftSprite(r.Craft.Tilt), core.ColorBrightCyan
	switch r.State {
	case course.StateMenu:
		sprite = menuSpin[(r.Frame/8)%uint64(len(menuSpin))]
	case course.StateGameOver:
		sprite, color = "xXx", core.ColorBrightRed
	}
	dst.DrawTextColored(cell(x)-1, cell(y), sprite, color)
}

// craftSprite picks the craft sprite for a bank angle. Positive tilt banks left.
func craftSprite(tilt float64) string {
	switch {
	case tilt > bankThreshold:
		return "/A-"
	case tilt < -bankThreshold:
		return "-A\\"
	default:
		return "<A>"
	}
}

func cell(v float64) int {
	return int(math.Floor(v))
}
