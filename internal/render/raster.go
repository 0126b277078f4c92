// Package render rasterizes an animation frame into a core.Screen.
package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-animator/internal/anim"
	"github.com/vovakirdan/tui-animator/internal/core"
)

// CellAspect is the height of a terminal cell relative to its width.
const CellAspect = 2.0

// shadeRamp runs from darkest to lightest.
var shadeRamp = []rune(".:-=+*#%@")

// DefaultGlyphs are the runes drawn for each kind when none are configured.
func DefaultGlyphs() map[anim.Kind]rune {
	return map[anim.Kind]rune{
		anim.KindRectangle: '█',
		anim.KindEllipse:   '●',
		anim.KindCross:     '✚',
	}
}

// Raster maps canvas units to screen cells and draws shapes in model order,
// so later shapes paint over earlier ones.
type Raster struct {
	UnitW, UnitH float64 // Canvas units covered by one cell
	OriginX      float64 // Canvas coordinate drawn at cell column 0
	OriginY      float64 // Canvas coordinate drawn at cell row 0
	Glyphs       map[anim.Kind]rune
	Shade        bool // Pick glyphs by lightness instead of by kind
}

// New returns a raster drawing one canvas unit per cell from the canvas origin.
func New(c anim.Canvas) *Raster {
	return &Raster{
		UnitW:   1,
		UnitH:   1,
		OriginX: float64(c.X),
		OriginY: float64(c.Y),
		Glyphs:  DefaultGlyphs(),
	}
}

// Fit returns a raster that scales the canvas to fit a w x h cell area,
// keeping its proportions on cells twice as tall as they are wide.
func Fit(c anim.Canvas, w, h int) *Raster {
	r := New(c)
	if c.W <= 0 || c.H <= 0 || w <= 0 || h <= 0 {
		return r
	}
	unit := math.Max(float64(c.W)/float64(w), float64(c.H)/(float64(h)*CellAspect))
	r.UnitW, r.UnitH = unit, unit*CellAspect
	return r
}

// Stats reports what a Draw call did.
type Stats struct {
	Drawn   int
	Skipped map[string]error // Shape name to the reason it was not drawn
}

// Draw clears dst and paints every shape of m as it is at tick. Shapes whose
// timeline is broken or does not cover tick are skipped and reported.
func (r *Raster) Draw(dst *core.Screen, m *anim.Model, tick int) Stats {
	dst.Clear()
	st := Stats{Skipped: make(map[string]error)}

	for _, s := range m.Shapes() {
		p, err := r.painterFor(dst, s, tick)
		if err != nil {
			st.Skipped[s.Name()] = err
			continue
		}
		if p == nil {
			continue
		}
		if err := s.Accept(p); err != nil {
			st.Skipped[s.Name()] = err
			continue
		}
		st.Drawn++
	}
	return st
}

func (r *Raster) painterFor(dst *core.Screen, s *anim.Shape, tick int) (*painter, error) {
	pos, err := s.Position(tick)
	if err != nil {
		return nil, err
	}
	dim, err := s.Dimensions(tick)
	if err != nil {
		return nil, err
	}
	col, err := s.Color(tick)
	if err != nil {
		return nil, err
	}

	area := core.RectF{
		X: pos.X - r.OriginX,
		Y: pos.Y - r.OriginY,
		W: dim.W,
		H: dim.H,
	}.Scale(r.UnitW, r.UnitH)
	box := area.Snap()
	if !box.Intersects(dst.Bounds()) {
		return nil, nil
	}

	return &painter{
		dst:  dst,
		area: area,
		box:  box,
		cell: core.Cell{
			Rune:    r.glyph(s.Kind(), col),
			Color:   core.NewRGB(col.R, col.G, col.B),
			Painted: true,
		},
	}, nil
}

func (r *Raster) glyph(k anim.Kind, c anim.Color) rune {
	if r.Shade {
		return Shade(c)
	}
	if g, ok := r.Glyphs[k]; ok {
		return g
	}
	return DefaultGlyphs()[k]
}

// Shade picks a rune from a dark-to-light ramp by the perceived lightness of c.
func Shade(c anim.Color) rune {
	l, _, _ := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Lab()
	i := int(math.Round(core.ClampF(l, 0, 1) * float64(len(shadeRamp)-1)))
	return shadeRamp[i]
}

// painter draws one shape at one tick. It is the kind dispatch target.
type painter struct {
	dst  *core.Screen
	area core.RectF // exact bounds in cell space
	box  core.Rect  // cells covering area
	cell core.Cell
}

var _ anim.Visitor = (*painter)(nil)

func (p *painter) VisitRectangle(*anim.Shape) error {
	p.dst.DrawRect(p.box, p.cell)
	return nil
}

// VisitEllipse fills the cells whose centers fall inside the ellipse
// inscribed in the shape's bounds. A shape too thin to contain any cell
// center still gets its middle cell.
func (p *painter) VisitEllipse(*anim.Shape) error {
	rx, ry := p.area.W/2, p.area.H/2
	cx, cy := p.area.X+rx, p.area.Y+ry
	invRxSq, invRySq := 1/(rx*rx), 1/(ry*ry)

	filled := false
	for y := p.box.Y; y < p.box.Bottom(); y++ {
		dy := float64(y) + 0.5 - cy
		for x := p.box.X; x < p.box.Right(); x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx*invRxSq+dy*dy*invRySq <= 1 {
				p.dst.SetCell(x, y, p.cell)
				filled = true
			}
		}
	}
	if !filled {
		p.dst.SetCell(int(math.Floor(cx)), int(math.Floor(cy)), p.cell)
	}
	return nil
}

// VisitCross draws a plus sign: the middle third of the bounds in each direction.
func (p *painter) VisitCross(*anim.Shape) error {
	a := p.area
	vertical := core.RectF{X: a.X + a.W/3, Y: a.Y, W: a.W / 3, H: a.H}
	horizontal := core.RectF{X: a.X, Y: a.Y + a.H/3, W: a.W, H: a.H / 3}
	p.dst.DrawRect(vertical.Snap(), p.cell)
	p.dst.DrawRect(horizontal.Snap(), p.cell)
	return nil
}
