package anim

import "slices"

// Canvas is the drawable area handed through to renderers.
type Canvas struct {
	X, Y int // Top-left corner
	W, H int
}

// Model owns an insertion-ordered set of uniquely named shapes.
// Shapes go in and come out as copies, so callers never alias its state.
// A Model is not safe for concurrent mutation.
type Model struct {
	canvas Canvas
	shapes []*Shape
	byName map[string]*Shape
}

// NewModel creates a model holding copies of the given shapes.
func NewModel(canvas Canvas, shapes ...*Shape) (*Model, error) {
	m := &Model{
		canvas: canvas,
		byName: make(map[string]*Shape, len(shapes)),
	}
	for _, s := range shapes {
		if err := m.AddShape(s); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Model) Canvas() Canvas { return m.canvas }
func (m *Model) LeftmostX() int { return m.canvas.X }
func (m *Model) TopmostY() int  { return m.canvas.Y }
func (m *Model) Width() int     { return m.canvas.W }
func (m *Model) Height() int    { return m.canvas.H }

// AddShape stores a copy of s.
func (m *Model) AddShape(s *Shape) error {
	if s == nil {
		return newError(CodeAbsent, "shape is absent")
	}
	if _, ok := m.byName[s.name]; ok {
		return newError(CodeDuplicate, "shape %q already exists", s.name)
	}
	c := s.Clone()
	m.shapes = append(m.shapes, c)
	m.byName[c.name] = c
	return nil
}

// RemoveShape removes the named shape.
func (m *Model) RemoveShape(name string) error {
	if _, err := m.lookup(name); err != nil {
		return err
	}
	delete(m.byName, name)
	m.shapes = slices.DeleteFunc(m.shapes, func(s *Shape) bool { return s.name == name })
	return nil
}

// AddMotion adds a motion to the named shape.
func (m *Model) AddMotion(name string, motion *Motion) error {
	s, err := m.lookup(name)
	if err != nil {
		return err
	}
	if motion == nil {
		return newError(CodeAbsent, "shape %q: motion is absent", name)
	}
	return s.AddMotion(motion)
}

// RemoveMotion removes a motion from the named shape.
func (m *Model) RemoveMotion(name string, motion *Motion) error {
	s, err := m.lookup(name)
	if err != nil {
		return err
	}
	if motion == nil {
		return newError(CodeAbsent, "shape %q: motion is absent", name)
	}
	return s.RemoveMotion(motion)
}

func (m *Model) lookup(name string) (*Shape, error) {
	if name == "" {
		return nil, newError(CodeAbsent, "shape name is absent")
	}
	s, ok := m.byName[name]
	if !ok {
		return nil, newError(CodeNotFound, "no shape named %q", name)
	}
	return s, nil
}

// NumTicks returns the exclusive frame count of the animation: 0 when no shape
// has any motion, otherwise one past the latest end tick. Any shape failing the
// integrity check makes the length unknowable and its error is returned.
func (m *Model) NumTicks() (int, error) {
	if !slices.ContainsFunc(m.shapes, func(s *Shape) bool { return s.Len() > 0 }) {
		return 0, nil
	}
	last := 0
	for _, s := range m.shapes {
		end, err := s.EndTick()
		if err != nil {
			return 0, err
		}
		last = max(last, end)
	}
	return last + 1, nil
}

// Shapes returns copies of all shapes in insertion order.
func (m *Model) Shapes() []*Shape {
	out := make([]*Shape, len(m.shapes))
	for i, s := range m.shapes {
		out[i] = s.Clone()
	}
	return out
}

// Shape returns a copy of the named shape.
func (m *Model) Shape(name string) (*Shape, error) {
	s, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

// Len returns the number of shapes.
func (m *Model) Len() int { return len(m.shapes) }

// Clone returns an independent copy of the model.
func (m *Model) Clone() *Model {
	c := &Model{
		canvas: m.canvas,
		shapes: make([]*Shape, len(m.shapes)),
		byName: make(map[string]*Shape, len(m.shapes)),
	}
	for i, s := range m.shapes {
		cs := s.Clone()
		c.shapes[i] = cs
		c.byName[cs.name] = cs
	}
	return c
}
