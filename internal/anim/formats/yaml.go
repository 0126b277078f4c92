package formats

import (
	"fmt"

	"github.com/vovakirdan/tui-animator/internal/anim"
	"gopkg.in/yaml.v3"
)

// YAMLAnimation represents the YAML structure for an animation file.
type YAMLAnimation struct {
	Title  string      `yaml:"title,omitempty"`
	Canvas YAMLCanvas  `yaml:"canvas"`
	Shapes []YAMLShape `yaml:"shapes"`
}

// YAMLCanvas represents the canvas bounds.
type YAMLCanvas struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLShape represents a shape and its motions.
type YAMLShape struct {
	Name    string       `yaml:"name"`
	Kind    string       `yaml:"kind"`
	Motions []YAMLMotion `yaml:"motions,omitempty"`
}

// YAMLMotion represents one motion. Omitted "to" attributes repeat "from".
type YAMLMotion struct {
	From YAMLFrame `yaml:"from"`
	To   YAMLEnd   `yaml:"to"`
}

// YAMLFrame represents a fully specified keyframe.
type YAMLFrame struct {
	T int     `yaml:"t"`
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
	R int     `yaml:"r"`
	G int     `yaml:"g"`
	B int     `yaml:"b"`
}

// YAMLEnd represents the closing keyframe. Only T is required.
type YAMLEnd struct {
	T *int     `yaml:"t"`
	X *float64 `yaml:"x,omitempty"`
	Y *float64 `yaml:"y,omitempty"`
	W *float64 `yaml:"w,omitempty"`
	H *float64 `yaml:"h,omitempty"`
	R *int     `yaml:"r,omitempty"`
	G *int     `yaml:"g,omitempty"`
	B *int     `yaml:"b,omitempty"`
}

// ParseYAML parses a YAML animation document.
func ParseYAML(data []byte, in anim.Ingester) error {
	var doc YAMLAnimation
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}

	c := doc.Canvas
	if err := in.SetBounds(c.X, c.Y, c.W, c.H); err != nil {
		return fmt.Errorf("canvas: %w", err)
	}

	for _, s := range doc.Shapes {
		if err := in.DeclareShape(s.Name, s.Kind); err != nil {
			return fmt.Errorf("shape %q: %w", s.Name, err)
		}
		for i, mo := range s.Motions {
			if mo.To.T == nil {
				return fmt.Errorf("shape %q motion %d: to.t is required", s.Name, i+1)
			}
			m, err := anim.NewMotion(mo.options())
			if err == nil {
				err = in.AddMotionValue(s.Name, m)
			}
			if err != nil {
				return fmt.Errorf("shape %q motion %d: %w", s.Name, i+1, err)
			}
		}
	}
	return nil
}

// options describes the motion for anim.NewMotion. An end group (position,
// dimensions or color) with no attribute given is left nil so that it takes
// the start value; a partly given group fills the rest from "from".
func (mo YAMLMotion) options() anim.MotionOptions {
	f, to := mo.From, mo.To
	opts := anim.MotionOptions{
		StartTick:       anim.Ptr(f.T),
		EndTick:         to.T,
		StartPosition:   &anim.Position{X: f.X, Y: f.Y},
		StartDimensions: &anim.Dimensions{W: f.W, H: f.H},
		StartColor:      &anim.Color{R: f.R, G: f.G, B: f.B},
	}
	if to.X != nil || to.Y != nil {
		opts.EndPosition = &anim.Position{X: anim.Or(to.X, f.X), Y: anim.Or(to.Y, f.Y)}
	}
	if to.W != nil || to.H != nil {
		opts.EndDimensions = &anim.Dimensions{W: anim.Or(to.W, f.W), H: anim.Or(to.H, f.H)}
	}
	if to.R != nil || to.G != nil || to.B != nil {
		opts.EndColor = &anim.Color{R: anim.Or(to.R, f.R), G: anim.Or(to.G, f.G), B: anim.Or(to.B, f.B)}
	}
	return opts
}

// YAMLTitle extracts the optional title of a YAML document.
func YAMLTitle(data []byte) string {
	var doc struct {
		Title string `yaml:"title"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return ""
	}
	return doc.Title
}

// MarshalYAML encodes a model as a YAML document. Every attribute of "to" is
// written out.
func MarshalYAML(m *anim.Model, title string) ([]byte, error) {
	c := m.Canvas()
	doc := YAMLAnimation{
		Title:  title,
		Canvas: YAMLCanvas{X: c.X, Y: c.Y, W: c.W, H: c.H},
	}
	for _, s := range m.Shapes() {
		ys := YAMLShape{Name: s.Name(), Kind: s.Kind().String()}
		for _, mo := range s.Motions() {
			sp, ep := mo.StartPosition(), mo.EndPosition()
			sd, ed := mo.StartDimensions(), mo.EndDimensions()
			sc, ec := mo.StartColor(), mo.EndColor()
			ys.Motions = append(ys.Motions, YAMLMotion{
				From: YAMLFrame{
					T: mo.StartTick(), X: sp.X, Y: sp.Y, W: sd.W, H: sd.H,
					R: sc.R, G: sc.G, B: sc.B,
				},
				To: YAMLEnd{
					T: anim.Ptr(mo.EndTick()), X: anim.Ptr(ep.X), Y: anim.Ptr(ep.Y),
					W: anim.Ptr(ed.W), H: anim.Ptr(ed.H),
					R: anim.Ptr(ec.R), G: anim.Ptr(ec.G), B: anim.Ptr(ec.B),
				},
			})
		}
		doc.Shapes = append(doc.Shapes, ys)
	}
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return out, nil
}
