package core

import (
	"strings"
	"testing"
)

var red = Cell{Rune: '█', Color: NewRGB(255, 0, 0), Painted: true}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("NewScreen() = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	if s.Bounds() != (Rect{W: 80, H: 24}) {
		t.Errorf("Bounds() = %+v", s.Bounds())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Painted {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-4, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("NewScreen(-4, -1) = %dx%d, expected 0x0", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("String() = %q, expected empty", s.String())
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(4, 3)

	s.SetCell(1, 1, red)
	if got := s.GetCell(1, 1); got != red {
		t.Errorf("GetCell(1, 1) = %+v, expected %+v", got, red)
	}
	if s.Get(1, 1) != '█' {
		t.Errorf("Get(1, 1) = %q, expected '█'", s.Get(1, 1))
	}

	// Out of bounds writes are dropped
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		s.SetCell(p[0], p[1], red)
	}
	if strings.Count(s.String(), "█") != 1 {
		t.Errorf("String() = %q, expected a single painted cell", s.String())
	}
	if s.GetCell(9, 9).Painted {
		t.Error("out of bounds GetCell should be unpainted")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(Rect{X: 1, Y: 1, W: 3, H: 2}, red)

	expected := "      \n ███  \n ███  \n      "
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenDrawRectClips(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawRect(Rect{X: -2, Y: -2, W: 10, H: 10}, red)

	for y := range 3 {
		for x := range 4 {
			if !s.GetCell(x, y).Painted {
				t.Errorf("DrawRect should cover (%d, %d)", x, y)
			}
		}
	}

	// Entirely off screen is a no-op
	s.Clear()
	s.DrawRect(Rect{X: 10, Y: 0, W: 2, H: 2}, red)
	if strings.Contains(s.String(), "█") {
		t.Error("off screen DrawRect should not paint")
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill(Cell{Rune: '#'})
	if s.String() != "###\n###" {
		t.Errorf("after Fill, String() = %q", s.String())
	}

	s.Clear()
	if s.String() != "   \n   " {
		t.Errorf("after Clear, String() = %q", s.String())
	}
}

func TestScreenBackground(t *testing.T) {
	s := NewScreen(3, 2)
	s.SetCell(0, 0, red)
	s.SetBackground('.')

	if s.String() != "...\n..." {
		t.Errorf("String() = %q, expected dotted background", s.String())
	}
	if s.Get(-1, 0) != '.' {
		t.Error("out of bounds Get should return the background")
	}
	if s.Row(5) != "..." {
		t.Errorf("out of bounds Row = %q, expected background", s.Row(5))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(Rect{W: 2, H: 2}, red)
	s.DrawRect(Rect{X: 8, Y: 8, W: 2, H: 2}, red)

	// Smaller keeps the top-left content
	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("after Resize, screen is %dx%d, expected 4x3", s.Width(), s.Height())
	}
	if s.Row(0) != "██  " || s.Row(2) != "    " {
		t.Errorf("rows after shrink = %q, %q", s.Row(0), s.Row(2))
	}

	// Larger keeps it too and pads with background
	s.Resize(6, 4)
	if s.Row(1) != "██    " || s.Row(3) != "      " {
		t.Errorf("rows after grow = %q, %q", s.Row(1), s.Row(3))
	}
}

func TestNewRGBClamps(t *testing.T) {
	if got := NewRGB(-5, 128, 300); got != (RGB{R: 0, G: 128, B: 255}) {
		t.Errorf("NewRGB() = %+v, expected {0 128 255}", got)
	}
	r, g, b := NewRGB(255, 0, 51).Floats()
	if r != 1 || g != 0 || b != 0.2 {
		t.Errorf("Floats() = %v, %v, %v, expected 1, 0, 0.2", r, g, b)
	}
}
