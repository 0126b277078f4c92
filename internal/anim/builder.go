package anim

// Ingester is the contract a format parser drives to describe an animation.
// DeclareShape for a name must precede any AddMotion or AddMotionValue for
// that name. AddMotionValue takes a motion the parser built itself, for
// formats that leave end values to default.
type Ingester interface {
	SetBounds(x, y, w, h int) error
	DeclareShape(name, kind string) error
	AddMotion(name string,
		t1 int, x1, y1, w1, h1 float64, r1, g1, b1 int,
		t2 int, x2, y2, w2, h2 float64, r2, g2, b2 int) error
	AddMotionValue(name string, m *Motion) error
}

// Builder is an Ingester that assembles a Model.
type Builder struct {
	model *Model
}

var _ Ingester = (*Builder)(nil)

// NewBuilder returns a builder over an empty model.
func NewBuilder() *Builder {
	return &Builder{model: &Model{byName: make(map[string]*Shape)}}
}

// SetBounds sets the canvas metadata.
func (b *Builder) SetBounds(x, y, w, h int) error {
	if w < 0 || h < 0 {
		return newError(CodeValidation, "canvas size %dx%d is negative", w, h)
	}
	b.model.canvas = Canvas{X: x, Y: y, W: w, H: h}
	return nil
}

// DeclareShape adds an empty shape of the named kind.
func (b *Builder) DeclareShape(name, kind string) error {
	k, err := ParseKind(kind)
	if err != nil {
		return err
	}
	s, err := NewShape(name, k)
	if err != nil {
		return err
	}
	return b.model.AddShape(s)
}

// AddMotion adds the motion given in flattened keyframe form to the named shape.
func (b *Builder) AddMotion(name string,
	t1 int, x1, y1, w1, h1 float64, r1, g1, b1 int,
	t2 int, x2, y2, w2, h2 float64, r2, g2, b2 int) error {
	m, err := NewMotion(MotionOptions{
		StartTick:       Ptr(t1),
		EndTick:         Ptr(t2),
		StartPosition:   &Position{X: x1, Y: y1},
		EndPosition:     &Position{X: x2, Y: y2},
		StartDimensions: &Dimensions{W: w1, H: h1},
		EndDimensions:   &Dimensions{W: w2, H: h2},
		StartColor:      &Color{R: r1, G: g1, B: b1},
		EndColor:        &Color{R: r2, G: g2, B: b2},
	})
	if err != nil {
		return err
	}
	return b.model.AddMotion(name, m)
}

// AddMotionValue adds an already built motion to the named shape.
func (b *Builder) AddMotionValue(name string, m *Motion) error {
	return b.model.AddMotion(name, m)
}

// Build returns the assembled model. The builder must not be used afterwards.
func (b *Builder) Build() *Model {
	return b.model
}
