package formats

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/tui-animator/internal/anim"
)

const sampleText = `# two shapes
canvas 200 70 360 360

shape R rectangle
shape C ellipse

motion R 1 200 200 50 100 255 0 0    10 200 200 50 100 255 0 0
motion R 10 200 200 50 100 255 0 0   50 300 300 50 100 255 0 0
motion C 6 440 70 120 60 0 0 255     20 440 70 120 60 0 0 255  # idle
motion C 20 440 70 120 60 0 0 255    50 440 250 120 60 0 170 85
`

const sampleYAML = `title: Two shapes
canvas: {x: 200, y: 70, w: 360, h: 360}
shapes:
  - name: R
    kind: rectangle
    motions:
      - from: {t: 1, x: 200, y: 200, w: 50, h: 100, r: 255}
        to: {t: 10}
      - from: {t: 10, x: 200, y: 200, w: 50, h: 100, r: 255}
        to: {t: 50, x: 300, y: 300}
  - name: C
    kind: ellipse
    motions:
      - from: {t: 6, x: 440, y: 70, w: 120, h: 60, b: 255}
        to: {t: 20}
      - from: {t: 20, x: 440, y: 70, w: 120, h: 60, b: 255}
        to: {t: 50, y: 250, g: 170, b: 85}
`

func TestTextAndYAMLAgree(t *testing.T) {
	fromText, err := ParseBytes([]byte(sampleText), ".txt")
	require.NoError(t, err)
	fromYAML, err := ParseBytes([]byte(sampleYAML), ".yaml")
	require.NoError(t, err)

	assert.Equal(t, anim.Canvas{X: 200, Y: 70, W: 360, H: 360}, fromText.Canvas())
	assert.Equal(t, fromText.Canvas(), fromYAML.Canvas())
	assertSameShapes(t, fromText, fromYAML)

	n, err := fromYAML.NumTicks()
	require.NoError(t, err)
	assert.Equal(t, 51, n)

	c, err := fromYAML.Shape("C")
	require.NoError(t, err)
	col, err := c.Color(50)
	require.NoError(t, err)
	assert.Equal(t, anim.Color{G: 170, B: 85}, col)
}

func TestTextRoundTrip(t *testing.T) {
	m, err := ParseBytes([]byte(sampleText), ".anim")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, m))

	again, err := ParseBytes(buf.Bytes(), ".txt")
	require.NoError(t, err)
	assert.Equal(t, m.Canvas(), again.Canvas())
	assertSameShapes(t, m, again)
}

func TestYAMLRoundTrip(t *testing.T) {
	m, err := ParseBytes([]byte(sampleText), ".txt")
	require.NoError(t, err)

	data, err := MarshalYAML(m, "Round trip")
	require.NoError(t, err)
	assert.Equal(t, "Round trip", YAMLTitle(data))

	again, err := ParseBytes(data, ".yml")
	require.NoError(t, err)
	assert.Equal(t, m.Canvas(), again.Canvas())
	assertSameShapes(t, m, again)
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		line   string
		target error
	}{
		{"unknown directive", "canvas 0 0 1 1\nbogus 1", "line 2", nil},
		{"short canvas", "canvas 0 0 1", "line 1", nil},
		{"bad number", "canvas 0 0 x 1", "line 1", nil},
		{"negative canvas", "canvas 0 0 -1 1", "line 1", anim.ErrValidation},
		{"unknown kind", "shape S hexagon", "line 1", anim.ErrValidation},
		{"duplicate shape", "shape S rect\nshape S oval", "line 2", anim.ErrDuplicate},
		{"undeclared shape", "motion S 0 0 0 1 1 0 0 0 5 0 0 1 1 0 0 0", "line 1", anim.ErrNotFound},
		{"short motion", "shape S rect\nmotion S 0 0 0 1 1 0 0 0 5", "line 2", nil},
		{"NaN position", "shape S rect\nmotion S 0 NaN 0 1 1 0 0 0 5 0 0 1 1 0 0 0", "line 2", anim.ErrValidation},
		{"infinite width", "shape S rect\nmotion S 0 0 0 1 1 0 0 0 5 0 0 +Inf 1 0 0 0", "line 2", anim.ErrValidation},
		{"spaced shape name", "shape big box rect", "line 1", nil},
		{"real color", "shape S rect\nmotion S 0 0 0 1 1 0.5 0 0 5 0 0 1 1 0 0 0", "line 2", nil},
		{"overlap", "shape S rect\nmotion S 0 0 0 1 1 0 0 0 5 0 0 1 1 0 0 0\nmotion S 4 0 0 1 1 0 0 0 9 0 0 1 1 0 0 0", "line 3", anim.ErrOverlap},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseBytes([]byte(tc.input), ".txt")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.line)
			if tc.target != nil {
				assert.ErrorIs(t, err, tc.target)
			}
		})
	}
}

func TestParseYAMLErrors(t *testing.T) {
	_, err := ParseBytes([]byte("shapes: [\n"), ".yaml")
	assert.ErrorContains(t, err, "yaml unmarshal")

	missingEnd := "shapes:\n  - name: S\n    kind: cross\n    motions:\n      - from: {t: 0, w: 1, h: 1}\n"
	_, err = ParseBytes([]byte(missingEnd), ".yaml")
	assert.ErrorContains(t, err, "to.t is required")

	spaced := "shapes:\n  - name: big box\n    kind: rectangle\n"
	_, err = ParseBytes([]byte(spaced), ".yaml")
	assert.ErrorIs(t, err, anim.ErrValidation)

	hashed := "shapes:\n  - name: 'a#b'\n    kind: rectangle\n"
	_, err = ParseBytes([]byte(hashed), ".yaml")
	assert.ErrorIs(t, err, anim.ErrValidation)

	backwards := "shapes:\n  - name: S\n    kind: cross\n    motions:\n      - from: {t: 5}\n        to: {t: 1}\n"
	_, err = ParseBytes([]byte(backwards), ".yaml")
	assert.ErrorIs(t, err, anim.ErrValidation)
}

func TestTextRoundTripPunctuatedNames(t *testing.T) {
	doc := `canvas: {x: 0, y: 0, w: 10, h: 10}
shapes:
  - name: box-1.a_b
    kind: cross
    motions:
      - from: {t: 0, x: 1.5, y: 2, w: 3, h: 4, r: 9}
        to: {t: 4, x: 2.25}
`
	m, err := ParseBytes([]byte(doc), ".yaml")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, m))
	again, err := ParseBytes(buf.Bytes(), ".txt")
	require.NoError(t, err, buf.String())
	assertSameShapes(t, m, again)
}

// recorder is an Ingester that keeps the motions it is given.
type recorder struct {
	flat   int
	values []*anim.Motion
}

func (r *recorder) SetBounds(x, y, w, h int) error       { return nil }
func (r *recorder) DeclareShape(name, kind string) error { return nil }
func (r *recorder) AddMotion(string, int, float64, float64, float64, float64, int, int, int,
	int, float64, float64, float64, float64, int, int, int) error {
	r.flat++
	return nil
}
func (r *recorder) AddMotionValue(name string, m *anim.Motion) error {
	r.values = append(r.values, m)
	return nil
}

func TestParseYAMLDefaultsEndGroups(t *testing.T) {
	var rec recorder
	require.NoError(t, ParseYAML([]byte(sampleYAML), &rec))
	assert.Zero(t, rec.flat)
	require.Len(t, rec.values, 4)

	// to: {t: 10} keeps every start value
	idle := rec.values[0]
	assert.Equal(t, idle.StartPosition(), idle.EndPosition())
	assert.Equal(t, idle.StartDimensions(), idle.EndDimensions())
	assert.Equal(t, idle.StartColor(), idle.EndColor())

	// to: {t: 50, y: 250, g: 170, b: 85} fills x and r from "from"
	last := rec.values[3]
	assert.Equal(t, anim.Position{X: 440, Y: 250}, last.EndPosition())
	assert.Equal(t, anim.Dimensions{W: 120, H: 60}, last.EndDimensions())
	assert.Equal(t, anim.Color{R: 0, G: 170, B: 85}, last.EndColor())
}

func TestParseUnsupportedExtension(t *testing.T) {
	_, err := ParseBytes([]byte(sampleText), ".json")
	assert.ErrorContains(t, err, "unsupported extension")

	assert.True(t, Supported(".YML"))
	assert.False(t, Supported(".svg"))
	assert.Equal(t, "yaml", Name(".yml"))
	assert.Equal(t, "text", Name(".anim"))
	assert.Equal(t, ".yaml", Ext("yaml"))
	assert.Equal(t, ".txt", Ext("text"))
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	m, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())

	_, err = ParseFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorContains(t, err, "reading file")
}

func assertSameShapes(t *testing.T, want, got *anim.Model) {
	t.Helper()
	ws, gs := want.Shapes(), got.Shapes()
	require.Len(t, gs, len(ws))
	for i := range ws {
		assert.True(t, ws[i].Equal(gs[i]), "shape %s differs", ws[i].Name())
	}
}
