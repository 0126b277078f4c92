package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-animator/internal/anim"
	"github.com/vovakirdan/tui-animator/internal/core"
)

// still declares a shape that holds x y w h and color over [0, 10].
func still(t *testing.T, b *anim.Builder, name, kind string, x, y, w, h float64, c anim.Color) {
	t.Helper()
	require.NoError(t, b.DeclareShape(name, kind))
	require.NoError(t, b.AddMotion(name,
		0, x, y, w, h, c.R, c.G, c.B,
		10, x, y, w, h, c.R, c.G, c.B))
}

func painted(s *core.Screen) []string {
	rows := make([]string, s.Height())
	for y := range rows {
		var row []rune
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Painted {
				row = append(row, '#')
			} else {
				row = append(row, '.')
			}
		}
		rows[y] = string(row)
	}
	return rows
}

func TestDrawRectangle(t *testing.T) {
	b := anim.NewBuilder()
	require.NoError(t, b.SetBounds(10, 20, 8, 4))
	still(t, b, "r", "rectangle", 12, 21, 3, 2, anim.RGB(255, 0, 0))

	scr := core.NewScreen(8, 4)
	st := New(b.Build().Canvas()).Draw(scr, b.Build(), 5)

	assert.Equal(t, 1, st.Drawn)
	assert.Empty(t, st.Skipped)
	assert.Equal(t, []string{
		"........",
		"..###...",
		"..###...",
		"........",
	}, painted(scr))

	cell := scr.GetCell(2, 1)
	assert.Equal(t, '█', cell.Rune)
	assert.Equal(t, core.RGB{R: 255}, cell.Color)
}

func TestDrawEllipse(t *testing.T) {
	b := anim.NewBuilder()
	still(t, b, "e", "ellipse", 0, 0, 5, 5, anim.RGB(0, 0, 255))

	scr := core.NewScreen(5, 5)
	New(anim.Canvas{}).Draw(scr, b.Build(), 0)

	assert.Equal(t, []string{
		".###.",
		"#####",
		"#####",
		"#####",
		".###.",
	}, painted(scr))
	assert.Equal(t, '●', scr.Get(2, 2))
}

func TestDrawThinEllipseKeepsOneCell(t *testing.T) {
	b := anim.NewBuilder()
	still(t, b, "e", "ellipse", 1.2, 1.2, 0.1, 0.1, anim.RGB(0, 0, 0))

	scr := core.NewScreen(3, 3)
	New(anim.Canvas{}).Draw(scr, b.Build(), 0)

	assert.True(t, scr.GetCell(1, 1).Painted)
}

func TestDrawCross(t *testing.T) {
	b := anim.NewBuilder()
	still(t, b, "x", "cross", 0, 0, 3, 3, anim.RGB(0, 255, 0))

	scr := core.NewScreen(3, 3)
	New(anim.Canvas{}).Draw(scr, b.Build(), 10)

	assert.Equal(t, []string{
		".#.",
		"###",
		".#.",
	}, painted(scr))
}

func TestDrawOrderAndColor(t *testing.T) {
	b := anim.NewBuilder()
	still(t, b, "below", "rectangle", 0, 0, 4, 1, anim.RGB(255, 0, 0))
	still(t, b, "above", "rectangle", 2, 0, 2, 1, anim.RGB(0, 0, 255))

	scr := core.NewScreen(4, 1)
	New(anim.Canvas{}).Draw(scr, b.Build(), 3)

	assert.Equal(t, core.RGB{R: 255}, scr.GetCell(1, 0).Color)
	assert.Equal(t, core.RGB{B: 255}, scr.GetCell(2, 0).Color)
}

func TestDrawFollowsMotion(t *testing.T) {
	b := anim.NewBuilder()
	require.NoError(t, b.DeclareShape("r", "rect"))
	require.NoError(t, b.AddMotion("r",
		0, 0, 0, 1, 1, 0, 0, 0,
		4, 4, 0, 1, 1, 0, 0, 0))
	m := b.Build()

	scr := core.NewScreen(5, 1)
	r := New(anim.Canvas{})
	for tick := 0; tick <= 4; tick++ {
		r.Draw(scr, m, tick)
		assert.True(t, scr.GetCell(tick, 0).Painted, "tick %d", tick)
	}
}

func TestDrawSkipsBrokenShapes(t *testing.T) {
	b := anim.NewBuilder()
	still(t, b, "ok", "rectangle", 0, 0, 1, 1, anim.RGB(1, 2, 3))
	require.NoError(t, b.DeclareShape("gappy", "rectangle"))
	require.NoError(t, b.AddMotion("gappy", 0, 0, 0, 1, 1, 0, 0, 0, 2, 0, 0, 1, 1, 0, 0, 0))
	require.NoError(t, b.AddMotion("gappy", 5, 0, 0, 1, 1, 0, 0, 0, 8, 0, 0, 1, 1, 0, 0, 0))
	require.NoError(t, b.DeclareShape("late", "ellipse"))
	require.NoError(t, b.AddMotion("late", 20, 0, 0, 1, 1, 0, 0, 0, 30, 0, 0, 1, 1, 0, 0, 0))
	require.NoError(t, b.DeclareShape("bare", "cross"))

	scr := core.NewScreen(2, 2)
	st := New(anim.Canvas{}).Draw(scr, b.Build(), 1)

	assert.Equal(t, 1, st.Drawn)
	require.Len(t, st.Skipped, 3)
	assert.ErrorIs(t, st.Skipped["gappy"], anim.ErrGap)
	assert.ErrorIs(t, st.Skipped["late"], anim.ErrRange)
	assert.ErrorIs(t, st.Skipped["bare"], anim.ErrEmpty)
}

func TestDrawOffscreenIsNotCounted(t *testing.T) {
	b := anim.NewBuilder()
	still(t, b, "far", "rectangle", 100, 100, 2, 2, anim.RGB(1, 2, 3))

	scr := core.NewScreen(10, 10)
	st := New(anim.Canvas{}).Draw(scr, b.Build(), 0)

	assert.Zero(t, st.Drawn)
	assert.Empty(t, st.Skipped)
}

func TestFit(t *testing.T) {
	r := Fit(anim.Canvas{X: 5, Y: 5, W: 100, H: 50}, 50, 25)
	assert.InDelta(t, 2.0, r.UnitW, 1e-9)
	assert.InDelta(t, 4.0, r.UnitH, 1e-9)
	assert.InDelta(t, 5.0, r.OriginX, 1e-9)

	tall := Fit(anim.Canvas{W: 10, H: 100}, 80, 25)
	assert.InDelta(t, 2.0, tall.UnitW, 1e-9, "height bound")
	assert.InDelta(t, 4.0, tall.UnitH, 1e-9)

	degenerate := Fit(anim.Canvas{}, 80, 24)
	assert.InDelta(t, 1.0, degenerate.UnitW, 1e-9)
}

func TestShade(t *testing.T) {
	assert.Equal(t, '.', Shade(anim.RGB(0, 0, 0)))
	assert.Equal(t, '@', Shade(anim.RGB(255, 255, 255)))

	b := anim.NewBuilder()
	still(t, b, "r", "rectangle", 0, 0, 1, 1, anim.RGB(255, 255, 255))
	scr := core.NewScreen(1, 1)
	r := New(anim.Canvas{})
	r.Shade = true
	r.Draw(scr, b.Build(), 0)
	assert.Equal(t, '@', scr.Get(0, 0))
}
