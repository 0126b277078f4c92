package anim

import (
	"fmt"
	"math"
	"strconv"
)

// Epsilon is the tolerance used when comparing real-valued attributes.
const Epsilon = 1e-6

// Position is a point on the canvas. Y grows downward.
type Position struct {
	X, Y float64
}

// Equal reports whether both coordinates agree within Epsilon.
func (p Position) Equal(other Position) bool {
	return near(p.X, other.X) && near(p.Y, other.Y)
}

// Finite reports whether both coordinates are real numbers.
func (p Position) Finite() bool {
	return finite(p.X) && finite(p.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%s,%s)", FormatNum(p.X), FormatNum(p.Y))
}

// Dimensions is the width and height of a shape's bounding box.
type Dimensions struct {
	W, H float64
}

// Equal reports whether both extents agree within Epsilon.
func (d Dimensions) Equal(other Dimensions) bool {
	return near(d.W, other.W) && near(d.H, other.H)
}

// Finite reports whether both extents are real numbers.
func (d Dimensions) Finite() bool {
	return finite(d.W) && finite(d.H)
}

// Valid reports whether neither extent is negative.
func (d Dimensions) Valid() bool {
	return d.W >= 0 && d.H >= 0
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%sx%s", FormatNum(d.W), FormatNum(d.H))
}

// Color is an RGB triple with 0-255 channels.
type Color struct {
	R, G, B int
}

// RGB is a convenience constructor for Color.
func RGB(r, g, b int) Color {
	return Color{R: r, G: g, B: b}
}

// Equal compares channels exactly.
func (c Color) Equal(other Color) bool {
	return c == other
}

// Valid reports whether every channel is in 0-255.
func (c Color) Valid() bool {
	return inByte(c.R) && inByte(c.G) && inByte(c.B)
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func inByte(v int) bool {
	return v >= 0 && v <= 255
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// FormatNum prints whole numbers without a fraction so text output stays
// identical to the usual integer input.
func FormatNum(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
