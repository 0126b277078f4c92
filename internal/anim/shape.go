package anim

import (
	"slices"
	"sort"
	"strings"
	"unicode"
)

// Kind is the closed set of drawable shape kinds.
// Kind never affects timeline mechanics, only how a renderer draws the bounding box.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindRectangle
	KindEllipse
	KindCross
)

// String returns the name used by the text format.
func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindEllipse:
		return "ellipse"
	case KindCross:
		return "cross"
	default:
		return "unknown"
	}
}

// ParseKind converts a kind name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rectangle", "rect":
		return KindRectangle, nil
	case "ellipse", "oval":
		return KindEllipse, nil
	case "cross", "plus":
		return KindCross, nil
	default:
		return KindUnknown, newError(CodeValidation, "unknown shape kind %q", s)
	}
}

// Kinds returns every drawable kind.
func Kinds() []Kind {
	return []Kind{KindRectangle, KindEllipse, KindCross}
}

// Visitor receives a shape dispatched on its kind.
type Visitor interface {
	VisitRectangle(s *Shape) error
	VisitEllipse(s *Shape) error
	VisitCross(s *Shape) error
}

// Shape is a named shape of one Kind together with its motion timeline.
// Build shapes with NewShape; a zero Shape has no name or kind.
//
// Motions are indexed by start tick. The timeline may be inconsistent while it is
// being edited; queries run the integrity check first and refuse to answer until
// the motions tile a contiguous range without teleporting.
type Shape struct {
	kind    Kind
	name    string
	motions map[int]*Motion

	// Derived from motions, reset on every mutation.
	sorted   []*Motion
	checked  bool
	checkErr error
}

// NewShape creates a shape with an empty timeline.
func NewShape(name string, kind Kind) (*Shape, error) {
	if name == "" {
		return nil, newError(CodeAbsent, "shape name is absent")
	}
	if strings.ContainsFunc(name, unicode.IsSpace) || strings.ContainsRune(name, '#') {
		return nil, newError(CodeValidation, "shape name %q must be one word without '#'", name)
	}
	if kind == KindUnknown || kind > KindCross {
		return nil, newError(CodeValidation, "shape %q has unknown kind %d", name, kind)
	}
	return &Shape{
		kind:    kind,
		name:    name,
		motions: make(map[int]*Motion),
	}, nil
}

// Name returns the shape's unique name.
func (s *Shape) Name() string { return s.name }

// Kind returns the shape's kind.
func (s *Shape) Kind() Kind { return s.kind }

// Len returns the number of motions on the timeline.
func (s *Shape) Len() int { return len(s.motions) }

// Accept dispatches the shape to the visitor method for its kind.
func (s *Shape) Accept(v Visitor) error {
	switch s.kind {
	case KindRectangle:
		return v.VisitRectangle(s)
	case KindEllipse:
		return v.VisitEllipse(s)
	case KindCross:
		return v.VisitCross(s)
	default:
		return newError(CodeValidation, "shape %q has unknown kind %d", s.name, s.kind)
	}
}

// AddMotion places m on the timeline. The half-open range [start, end) of m must
// not intersect that of any motion already present. On error the timeline is unchanged.
func (s *Shape) AddMotion(m *Motion) error {
	if m == nil {
		return newError(CodeAbsent, "shape %q: motion is absent", s.name)
	}
	for _, existing := range s.ordered() {
		if m.startTick < existing.endTick && existing.startTick < m.endTick {
			return newError(CodeOverlap, "shape %q: motion [%d, %d) overlaps motion [%d, %d)",
				s.name, m.startTick, m.endTick, existing.startTick, existing.endTick)
		}
	}
	if s.motions == nil {
		s.motions = make(map[int]*Motion)
	}
	s.motions[m.startTick] = m
	s.invalidate()
	return nil
}

// RemoveMotion removes the motion at m's start tick, provided it equals m field by field.
func (s *Shape) RemoveMotion(m *Motion) error {
	if m == nil {
		return newError(CodeAbsent, "shape %q: motion is absent", s.name)
	}
	existing, ok := s.motions[m.startTick]
	if !ok || !existing.Equal(m) {
		return newError(CodeNotFound, "shape %q: no motion %s", s.name, m)
	}
	delete(s.motions, m.startTick)
	s.invalidate()
	return nil
}

func (s *Shape) invalidate() {
	s.sorted = nil
	s.checked = false
	s.checkErr = nil
}

// ordered returns the cached start-ordered motions. Callers must not modify the slice.
func (s *Shape) ordered() []*Motion {
	if s.sorted == nil && len(s.motions) > 0 {
		sorted := make([]*Motion, 0, len(s.motions))
		for _, m := range s.motions {
			sorted = append(sorted, m)
		}
		slices.SortFunc(sorted, Compare)
		s.sorted = sorted
	}
	return s.sorted
}

// Motions returns the motions ordered by start tick. No integrity check is made.
func (s *Shape) Motions() []*Motion {
	return slices.Clone(s.ordered())
}

// Check runs the integrity check: the timeline must be non-empty, gap-free and
// continuous at every boundary. The result is cached until the next mutation.
func (s *Shape) Check() error {
	if !s.checked {
		s.checkErr = s.integrity()
		s.checked = true
	}
	return s.checkErr
}

func (s *Shape) integrity() error {
	ms := s.ordered()
	if len(ms) == 0 {
		return newError(CodeEmpty, "shape %q: motion set is empty", s.name)
	}
	for i := 0; i+1 < len(ms); i++ {
		prev, next := ms[i], ms[i+1]
		if next.startTick != prev.endTick {
			return newError(CodeGap, "shape %q: gap between tick %d and tick %d",
				s.name, prev.endTick, next.startTick)
		}
		switch {
		case !prev.endPos.Equal(next.startPos):
			return newError(CodeTeleport, "shape %q: position jumps from %s to %s at tick %d",
				s.name, prev.endPos, next.startPos, next.startTick)
		case !prev.endDim.Equal(next.startDim):
			return newError(CodeTeleport, "shape %q: dimensions jump from %s to %s at tick %d",
				s.name, prev.endDim, next.startDim, next.startTick)
		case !prev.endCol.Equal(next.startCol):
			return newError(CodeTeleport, "shape %q: color jumps from %s to %s at tick %d",
				s.name, prev.endCol, next.startCol, next.startTick)
		}
	}
	return nil
}

// StartTick returns the first tick of the timeline.
func (s *Shape) StartTick() (int, error) {
	if err := s.Check(); err != nil {
		return 0, err
	}
	return s.sorted[0].startTick, nil
}

// EndTick returns the last tick of the timeline.
func (s *Shape) EndTick() (int, error) {
	if err := s.Check(); err != nil {
		return 0, err
	}
	return s.sorted[len(s.sorted)-1].endTick, nil
}

// Position returns the shape's position at tick.
func (s *Shape) Position(tick int) (Position, error) {
	m, err := s.motionAt(tick)
	if err != nil {
		return Position{}, err
	}
	return m.PositionAt(tick)
}

// Dimensions returns the shape's dimensions at tick.
func (s *Shape) Dimensions(tick int) (Dimensions, error) {
	m, err := s.motionAt(tick)
	if err != nil {
		return Dimensions{}, err
	}
	return m.DimensionsAt(tick)
}

// Color returns the shape's color at tick.
func (s *Shape) Color(tick int) (Color, error) {
	m, err := s.motionAt(tick)
	if err != nil {
		return Color{}, err
	}
	return m.ColorAt(tick)
}

// motionAt finds the motion answering for tick. On a boundary shared by two
// motions the later one answers; continuity guarantees both agree.
func (s *Shape) motionAt(tick int) (*Motion, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}
	ms := s.sorted
	first, last := ms[0].startTick, ms[len(ms)-1].endTick
	if tick < first || tick > last {
		return nil, newError(CodeRange, "shape %q: tick %d outside [%d, %d]", s.name, tick, first, last)
	}
	i := sort.Search(len(ms), func(i int) bool { return ms[i].startTick > tick }) - 1
	if i < 0 || !ms[i].Covers(tick) {
		return nil, newError(CodeRange, "shape %q: tick %d falls in a gap", s.name, tick)
	}
	return ms[i], nil
}

// Clone returns an independent copy. Motions are immutable and shared.
func (s *Shape) Clone() *Shape {
	c := &Shape{
		kind:    s.kind,
		name:    s.name,
		motions: make(map[int]*Motion, len(s.motions)),
	}
	for t, m := range s.motions {
		c.motions[t] = m
	}
	return c
}

// Equal reports whether both shapes have the same kind, name and motions.
func (s *Shape) Equal(other *Shape) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.kind != other.kind || s.name != other.name || len(s.motions) != len(other.motions) {
		return false
	}
	for t, m := range s.motions {
		if !m.Equal(other.motions[t]) {
			return false
		}
	}
	return true
}
