// Package svg provides a view that writes the animation as a self-playing
// SVG document with one <animate> element per changing attribute per motion.
package svg

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/tui-animator/internal/anim"
	"github.com/vovakirdan/tui-animator/internal/registry"
)

func init() {
	registry.Register("svg", func() registry.View { return View{} })
}

// View renders SVG documents.
type View struct{}

func (View) ID() string    { return "svg" }
func (View) Title() string { return "Animated SVG" }

// Render writes m as SVG, timing motions at opts.TicksPerSecond.
// Shapes without motions are left out. A shape whose timeline is broken
// fails the whole document.
func (View) Render(w io.Writer, m *anim.Model, opts registry.Options) error {
	if opts.TicksPerSecond <= 0 {
		return fmt.Errorf("svg: ticks per second must be positive, got %d", opts.TicksPerSecond)
	}

	bw := bufio.NewWriter(w)
	c := m.Canvas()
	fmt.Fprintf(bw, `<svg width="%d" height="%d" viewBox="%d %d %d %d" version="1.1" xmlns="http://www.w3.org/2000/svg">`+"\n",
		c.W, c.H, c.X, c.Y, c.W, c.H)

	e := &emitter{w: bw, msPerTick: 1000 / float64(opts.TicksPerSecond)}
	for _, s := range m.Shapes() {
		if err := s.Check(); err != nil {
			if errors.Is(err, anim.ErrEmpty) {
				continue
			}
			return fmt.Errorf("svg: %w", err)
		}
		if err := s.Accept(e); err != nil {
			return fmt.Errorf("svg: %w", err)
		}
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// attr is one animatable SVG attribute derived from a shape's state.
type attr struct {
	name  string
	value func(anim.Position, anim.Dimensions) float64
}

var (
	rectAttrs = []attr{
		{"x", func(p anim.Position, _ anim.Dimensions) float64 { return p.X }},
		{"y", func(p anim.Position, _ anim.Dimensions) float64 { return p.Y }},
		{"width", func(_ anim.Position, d anim.Dimensions) float64 { return d.W }},
		{"height", func(_ anim.Position, d anim.Dimensions) float64 { return d.H }},
	}
	ellipseAttrs = []attr{
		{"cx", func(p anim.Position, d anim.Dimensions) float64 { return p.X + d.W/2 }},
		{"cy", func(p anim.Position, d anim.Dimensions) float64 { return p.Y + d.H/2 }},
		{"rx", func(_ anim.Position, d anim.Dimensions) float64 { return d.W / 2 }},
		{"ry", func(_ anim.Position, d anim.Dimensions) float64 { return d.H / 2 }},
	}
	// A cross is two bars, each a third of the bounds thick.
	crossVertical = []attr{
		{"x", func(p anim.Position, d anim.Dimensions) float64 { return p.X + d.W/3 }},
		{"y", func(p anim.Position, _ anim.Dimensions) float64 { return p.Y }},
		{"width", func(_ anim.Position, d anim.Dimensions) float64 { return d.W / 3 }},
		{"height", func(_ anim.Position, d anim.Dimensions) float64 { return d.H }},
	}
	crossHorizontal = []attr{
		{"x", func(p anim.Position, _ anim.Dimensions) float64 { return p.X }},
		{"y", func(p anim.Position, d anim.Dimensions) float64 { return p.Y + d.H/3 }},
		{"width", func(_ anim.Position, d anim.Dimensions) float64 { return d.W }},
		{"height", func(_ anim.Position, d anim.Dimensions) float64 { return d.H / 3 }},
	}
)

// emitter writes one SVG element per shape.
type emitter struct {
	w         *bufio.Writer
	msPerTick float64
}

var _ anim.Visitor = (*emitter)(nil)

func (e *emitter) VisitRectangle(s *anim.Shape) error {
	e.element(s, "rect", rectAttrs, true, "  ")
	return nil
}

func (e *emitter) VisitEllipse(s *anim.Shape) error {
	e.element(s, "ellipse", ellipseAttrs, true, "  ")
	return nil
}

// VisitCross groups the two bars so that they share fill and visibility.
func (e *emitter) VisitCross(s *anim.Shape) error {
	ms := s.Motions()
	first := ms[0]
	fmt.Fprintf(e.w, `  <g id="%s" fill="%s" visibility="hidden">`+"\n", escape(s.Name()), first.StartColor())
	e.visibility(first, "    ")
	e.colors(ms, "    ")
	e.element(s, "rect", crossVertical, false, "    ")
	e.element(s, "rect", crossHorizontal, false, "    ")
	e.w.WriteString("  </g>\n")
	return nil
}

// element writes a shape element with its geometry animations. Top-level
// elements also carry id, fill and visibility; parts of a group inherit them.
func (e *emitter) element(s *anim.Shape, tag string, attrs []attr, top bool, indent string) {
	ms := s.Motions()
	first := ms[0]

	var open strings.Builder
	fmt.Fprintf(&open, "%s<%s", indent, tag)
	if top {
		fmt.Fprintf(&open, ` id="%s"`, escape(s.Name()))
	}
	for _, a := range attrs {
		fmt.Fprintf(&open, ` %s="%s"`, a.name, anim.FormatNum(a.value(first.StartPosition(), first.StartDimensions())))
	}
	if top {
		fmt.Fprintf(&open, ` fill="%s" visibility="hidden"`, first.StartColor())
	}
	open.WriteString(">\n")
	e.w.WriteString(open.String())

	inner := indent + "  "
	if top {
		e.visibility(first, inner)
	}
	for _, mo := range ms {
		for _, a := range attrs {
			from := a.value(mo.StartPosition(), mo.StartDimensions())
			to := a.value(mo.EndPosition(), mo.EndDimensions())
			if from == to {
				continue
			}
			e.animate(mo, a.name, anim.FormatNum(from), anim.FormatNum(to), inner)
		}
	}
	if top {
		e.colors(ms, inner)
	}
	fmt.Fprintf(e.w, "%s</%s>\n", indent, tag)
}

// visibility reveals the element when its first motion starts.
func (e *emitter) visibility(first *anim.Motion, indent string) {
	fmt.Fprintf(e.w, `%s<set attributeName="visibility" to="visible" begin="%sms" fill="freeze"/>`+"\n",
		indent, e.ms(first.StartTick()))
}

func (e *emitter) colors(ms []*anim.Motion, indent string) {
	for _, mo := range ms {
		if mo.StartColor() == mo.EndColor() {
			continue
		}
		e.animate(mo, "fill", mo.StartColor().String(), mo.EndColor().String(), indent)
	}
}

func (e *emitter) animate(mo *anim.Motion, name, from, to, indent string) {
	fmt.Fprintf(e.w,
		`%s<animate attributeType="xml" begin="%sms" dur="%sms" attributeName="%s" from="%s" to="%s" fill="freeze"/>`+"\n",
		indent, e.ms(mo.StartTick()), e.ms(mo.EndTick()-mo.StartTick()), name, from, to)
}

func (e *emitter) ms(ticks int) string {
	return anim.FormatNum(float64(ticks) * e.msPerTick)
}

func escape(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s)) //nolint:errcheck // strings.Builder never fails
	return b.String()
}
