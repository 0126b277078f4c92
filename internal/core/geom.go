// Package core provides the terminal-independent building blocks of the
// player: a cell buffer, screen geometry, playback state and input actions.
// It contains no external dependencies (especially no Bubble Tea) so that
// rasterizing a frame stays pure and testable.
package core

import "math"

// Rect is an axis-aligned block of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// RectF is a rectangle in continuous coordinates, such as canvas units.
type RectF struct {
	X, Y, W, H float64
}

// Scale divides the rectangle by the size of one cell, moving it into cell space.
func (r RectF) Scale(unitW, unitH float64) RectF {
	return RectF{X: r.X / unitW, Y: r.Y / unitH, W: r.W / unitW, H: r.H / unitH}
}

// Snap returns the smallest block of whole cells covering the rectangle.
// A rectangle with zero width or height covers no cells.
func (r RectF) Snap() Rect {
	if r.W <= 0 || r.H <= 0 {
		return Rect{X: int(math.Floor(r.X)), Y: int(math.Floor(r.Y))}
	}
	x0, y0 := math.Floor(r.X), math.Floor(r.Y)
	x1, y1 := math.Ceil(r.X+r.W), math.Ceil(r.Y+r.H)
	return Rect{X: int(x0), Y: int(y0), W: int(x1 - x0), H: int(y1 - y0)}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
