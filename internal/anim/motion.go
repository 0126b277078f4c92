// Package anim holds the animation model: motions, shape timelines and the
// registry of named shapes. It is pure and synchronous, with no dependencies
// outside the standard library, so every renderer and player can share it.
package anim

import (
	"cmp"
	"fmt"
	"strings"
)

// MotionOptions describes a Motion before validation.
// Start fields are required. A nil end field takes the value of its start field.
type MotionOptions struct {
	StartTick       *int
	EndTick         *int
	StartPosition   *Position
	EndPosition     *Position
	StartDimensions *Dimensions
	EndDimensions   *Dimensions
	StartColor      *Color
	EndColor        *Color
}

// Ptr returns a pointer to v. Handy for filling MotionOptions.
func Ptr[T any](v T) *T {
	return &v
}

// Motion is a linear transition of position, dimensions and color between two ticks.
// Motions are immutable once built.
type Motion struct {
	startTick, endTick int
	startPos, endPos   Position
	startDim, endDim   Dimensions
	startCol, endCol   Color
}

// NewMotion validates opts and builds a Motion. Either every field is valid
// and a Motion is returned, or nothing is built.
func NewMotion(opts MotionOptions) (*Motion, error) {
	var missing []string
	if opts.StartTick == nil {
		missing = append(missing, "start tick")
	}
	if opts.EndTick == nil {
		missing = append(missing, "end tick")
	}
	if opts.StartPosition == nil {
		missing = append(missing, "start position")
	}
	if opts.StartDimensions == nil {
		missing = append(missing, "start dimensions")
	}
	if opts.StartColor == nil {
		missing = append(missing, "start color")
	}
	if len(missing) > 0 {
		return nil, newError(CodeValidation, "motion missing %s", strings.Join(missing, ", "))
	}

	m := &Motion{
		startTick: *opts.StartTick,
		endTick:   *opts.EndTick,
		startPos:  *opts.StartPosition,
		startDim:  *opts.StartDimensions,
		startCol:  *opts.StartColor,
	}
	m.endPos = Or(opts.EndPosition, m.startPos)
	m.endDim = Or(opts.EndDimensions, m.startDim)
	m.endCol = Or(opts.EndColor, m.startCol)

	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Or returns *p, or def when p is nil.
func Or[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func (m *Motion) validate() error {
	switch {
	case m.startTick < 0:
		return newError(CodeValidation, "start tick %d is negative", m.startTick)
	case m.endTick < 1:
		return newError(CodeValidation, "end tick %d is below 1", m.endTick)
	case m.startTick >= m.endTick:
		return newError(CodeValidation, "start tick %d is not before end tick %d", m.startTick, m.endTick)
	case !m.startPos.Finite() || !m.endPos.Finite():
		return newError(CodeValidation, "position is not finite %s -> %s", m.startPos, m.endPos)
	case !m.startDim.Finite() || !m.endDim.Finite():
		return newError(CodeValidation, "dimensions are not finite %s -> %s", m.startDim, m.endDim)
	case !m.startDim.Valid() || !m.endDim.Valid():
		return newError(CodeValidation, "negative dimensions %s -> %s", m.startDim, m.endDim)
	case !m.startCol.Valid() || !m.endCol.Valid():
		return newError(CodeValidation, "color channel outside 0-255 in %s -> %s", m.startCol, m.endCol)
	}
	return nil
}

func (m *Motion) StartTick() int              { return m.startTick }
func (m *Motion) EndTick() int                { return m.endTick }
func (m *Motion) StartPosition() Position     { return m.startPos }
func (m *Motion) EndPosition() Position       { return m.endPos }
func (m *Motion) StartDimensions() Dimensions { return m.startDim }
func (m *Motion) EndDimensions() Dimensions   { return m.endDim }
func (m *Motion) StartColor() Color           { return m.startCol }
func (m *Motion) EndColor() Color             { return m.endCol }

// Covers reports whether tick lies within [start, end].
func (m *Motion) Covers(tick int) bool {
	return tick >= m.startTick && tick <= m.endTick
}

// PositionAt interpolates the position at tick.
func (m *Motion) PositionAt(tick int) (Position, error) {
	if err := m.checkTick(tick); err != nil {
		return Position{}, err
	}
	return Position{
		X: m.lerp(m.startPos.X, m.endPos.X, tick),
		Y: m.lerp(m.startPos.Y, m.endPos.Y, tick),
	}, nil
}

// DimensionsAt interpolates the dimensions at tick.
func (m *Motion) DimensionsAt(tick int) (Dimensions, error) {
	if err := m.checkTick(tick); err != nil {
		return Dimensions{}, err
	}
	return Dimensions{
		W: m.lerp(m.startDim.W, m.endDim.W, tick),
		H: m.lerp(m.startDim.H, m.endDim.H, tick),
	}, nil
}

// ColorAt interpolates the color at tick, rounding each channel to the nearest integer.
func (m *Motion) ColorAt(tick int) (Color, error) {
	if err := m.checkTick(tick); err != nil {
		return Color{}, err
	}
	return Color{
		R: m.lerpChannel(m.startCol.R, m.endCol.R, tick),
		G: m.lerpChannel(m.startCol.G, m.endCol.G, tick),
		B: m.lerpChannel(m.startCol.B, m.endCol.B, tick),
	}, nil
}

func (m *Motion) checkTick(tick int) error {
	if !m.Covers(tick) {
		return newError(CodeRange, "tick %d outside motion [%d, %d]", tick, m.startTick, m.endTick)
	}
	return nil
}

// lerp returns the stored endpoint values unchanged at the boundary ticks.
func (m *Motion) lerp(from, to float64, tick int) float64 {
	switch tick {
	case m.startTick:
		return from
	case m.endTick:
		return to
	}
	return from + (to-from)*float64(tick-m.startTick)/float64(m.endTick-m.startTick)
}

func (m *Motion) lerpChannel(from, to int, tick int) int {
	return int(m.lerp(float64(from), float64(to), tick) + 0.5)
}

// Equal reports whether two motions carry the same eight fields.
func (m *Motion) Equal(other *Motion) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.startTick == other.startTick &&
		m.endTick == other.endTick &&
		m.startPos.Equal(other.startPos) &&
		m.endPos.Equal(other.endPos) &&
		m.startDim.Equal(other.startDim) &&
		m.endDim.Equal(other.endDim) &&
		m.startCol.Equal(other.startCol) &&
		m.endCol.Equal(other.endCol)
}

// Compare orders motions by start tick.
func Compare(a, b *Motion) int {
	return cmp.Compare(a.startTick, b.startTick)
}

// String renders the motion as its two keyframes: "t x y w h r g b    t x y w h r g b".
func (m *Motion) String() string {
	return fmt.Sprintf("%s    %s",
		keyframe(m.startTick, m.startPos, m.startDim, m.startCol),
		keyframe(m.endTick, m.endPos, m.endDim, m.endCol))
}

func keyframe(t int, p Position, d Dimensions, c Color) string {
	return fmt.Sprintf("%d %s %s %s %s %d %d %d",
		t, FormatNum(p.X), FormatNum(p.Y), FormatNum(d.W), FormatNum(d.H), c.R, c.G, c.B)
}
