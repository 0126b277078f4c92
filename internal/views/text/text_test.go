package text

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-animator/internal/anim"
	"github.com/vovakirdan/tui-animator/internal/anim/formats"
	"github.com/vovakirdan/tui-animator/internal/registry"
)

func sample(t *testing.T) *anim.Model {
	t.Helper()
	b := anim.NewBuilder()
	require.NoError(t, b.SetBounds(0, 0, 100, 50))
	require.NoError(t, b.DeclareShape("sq", "rectangle"))
	require.NoError(t, b.AddMotion("sq", 0, 0, 0, 10, 10, 255, 0, 0, 20, 90, 40, 10, 10, 0, 0, 255))
	return b.Build()
}

func TestTextView(t *testing.T) {
	v, err := registry.Create("text")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, v.Render(&buf, sample(t), registry.DefaultOptions()))

	assert.Equal(t,
		"canvas 0 0 100 50\n"+
			"shape sq rectangle\n"+
			"motion sq 0 0 0 10 10 255 0 0    20 90 40 10 10 0 0 255\n",
		buf.String())
}

func TestYAMLViewParsesBack(t *testing.T) {
	v, err := registry.Create("yaml")
	require.NoError(t, err)

	opts := registry.DefaultOptions()
	opts.Title = "Slide"
	var buf bytes.Buffer
	require.NoError(t, v.Render(&buf, sample(t), opts))

	assert.Contains(t, buf.String(), "title: Slide")
	m, err := formats.ParseBytes(buf.Bytes(), ".yaml")
	require.NoError(t, err)

	want, _ := sample(t).Shape("sq")
	got, err := m.Shape("sq")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}
