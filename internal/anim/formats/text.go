package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-animator/internal/anim"
)

// ParseText parses the line-oriented text format:
//
//	# comment
//	canvas X Y W H
//	shape NAME KIND
//	motion NAME  T X Y W H R G B  T X Y W H R G B
//
// A shape must be declared before its motions.
func ParseText(data []byte, in anim.Ingester) error {
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if err := parseDirective(fields, in); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scanning: %w", err)
	}
	return nil
}

func parseDirective(fields []string, in anim.Ingester) error {
	switch keyword, args := fields[0], fields[1:]; keyword {
	case "canvas":
		if len(args) != 4 {
			return fmt.Errorf("canvas: expected 4 values, got %d", len(args))
		}
		v, err := ints(args)
		if err != nil {
			return fmt.Errorf("canvas: %w", err)
		}
		return in.SetBounds(v[0], v[1], v[2], v[3])

	case "shape":
		if len(args) != 2 {
			return fmt.Errorf("shape: expected NAME KIND, got %d values", len(args))
		}
		return in.DeclareShape(args[0], args[1])

	case "motion":
		if len(args) != 17 {
			return fmt.Errorf("motion: expected NAME and 16 values, got %d values", len(args))
		}
		from, err := parseKeyframe(args[1:9])
		if err != nil {
			return fmt.Errorf("motion %s: %w", args[0], err)
		}
		to, err := parseKeyframe(args[9:17])
		if err != nil {
			return fmt.Errorf("motion %s: %w", args[0], err)
		}
		return in.AddMotion(args[0],
			from.T, from.X, from.Y, from.W, from.H, from.R, from.G, from.B,
			to.T, to.X, to.Y, to.W, to.H, to.R, to.G, to.B)

	default:
		return fmt.Errorf("unknown directive %q", keyword)
	}
}

// keyframe is one end of a motion as it appears in a document.
type keyframe struct {
	T          int
	X, Y, W, H float64
	R, G, B    int
}

func parseKeyframe(f []string) (keyframe, error) {
	var k keyframe
	var err error
	if k.T, err = strconv.Atoi(f[0]); err != nil {
		return k, fmt.Errorf("tick %q: %w", f[0], err)
	}
	reals := []*float64{&k.X, &k.Y, &k.W, &k.H}
	for i, dst := range reals {
		if *dst, err = strconv.ParseFloat(f[1+i], 64); err != nil {
			return k, fmt.Errorf("value %q: %w", f[1+i], err)
		}
	}
	rgb, err := ints(f[5:8])
	if err != nil {
		return k, fmt.Errorf("color: %w", err)
	}
	k.R, k.G, k.B = rgb[0], rgb[1], rgb[2]
	return k, nil
}

func ints(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", a, err)
		}
		out[i] = v
	}
	return out, nil
}

// WriteText encodes a model in the text format. Parsing the output with
// ParseText yields an equal model.
func WriteText(w io.Writer, m *anim.Model) error {
	bw := bufio.NewWriter(w)
	c := m.Canvas()
	fmt.Fprintf(bw, "canvas %d %d %d %d\n", c.X, c.Y, c.W, c.H)
	for _, s := range m.Shapes() {
		fmt.Fprintf(bw, "shape %s %s\n", s.Name(), s.Kind())
		for _, mo := range s.Motions() {
			fmt.Fprintf(bw, "motion %s %s\n", s.Name(), mo)
		}
	}
	return bw.Flush()
}
