package ascii

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-animator/internal/anim"
	"github.com/vovakirdan/tui-animator/internal/registry"
)

// slider is a 4x4 square on an 8x8 canvas moving right by one unit per tick.
func slider(t *testing.T) *anim.Model {
	t.Helper()
	b := anim.NewBuilder()
	require.NoError(t, b.SetBounds(0, 0, 8, 8))
	require.NoError(t, b.DeclareShape("sq", "rectangle"))
	require.NoError(t, b.AddMotion("sq",
		0, 0, 0, 4, 4, 255, 255, 255,
		4, 4, 0, 4, 4, 255, 255, 255))
	return b.Build()
}

func opts(tick int) registry.Options {
	o := registry.DefaultOptions()
	o.Tick = tick
	o.Width, o.Height = 8, 4
	return o
}

func TestRenderSingleFrame(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, View{}.Render(&buf, slider(t), opts(4)))

	assert.Equal(t, "-- tick 4 --\n"+
		"    ████\n"+
		"    ████\n"+
		"\n"+
		"\n", buf.String())
}

func TestRenderAllFrames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, View{}.Render(&buf, slider(t), opts(-1)))

	out := buf.String()
	assert.Equal(t, 5, strings.Count(out, "-- tick "))
	assert.True(t, strings.HasPrefix(out, "-- tick 0 --\n████\n"))
	assert.Contains(t, out, "-- tick 2 --\n  ████\n")
}

func TestRenderShade(t *testing.T) {
	o := opts(0)
	o.Shade = true

	var buf bytes.Buffer
	require.NoError(t, View{}.Render(&buf, slider(t), o))
	assert.Contains(t, buf.String(), "\n@@@@\n")
}

func TestRenderErrors(t *testing.T) {
	err := View{}.Render(&bytes.Buffer{}, slider(t), opts(5))
	assert.Error(t, err, "tick past the end")

	b := anim.NewBuilder()
	require.NoError(t, b.DeclareShape("a", "ellipse"))
	require.NoError(t, b.AddMotion("a", 0, 0, 0, 1, 1, 0, 0, 0, 2, 0, 0, 1, 1, 0, 0, 0))
	require.NoError(t, b.AddMotion("a", 2, 5, 5, 1, 1, 0, 0, 0, 4, 5, 5, 1, 1, 0, 0, 0))
	err = View{}.Render(&bytes.Buffer{}, b.Build(), opts(-1))
	assert.ErrorIs(t, err, anim.ErrTeleport)
}

func TestRenderEmptyModel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, View{}.Render(&buf, anim.NewBuilder().Build(), opts(-1)))
	assert.Empty(t, buf.String())
}
