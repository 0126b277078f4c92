// Package ascii provides a view that prints rasterized frames as plain text.
package ascii

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/tui-animator/internal/anim"
	"github.com/vovakirdan/tui-animator/internal/core"
	"github.com/vovakirdan/tui-animator/internal/registry"
	"github.com/vovakirdan/tui-animator/internal/render"
)

// Frame size used when the options leave it unset.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

func init() {
	registry.Register("ascii", func() registry.View { return View{} })
}

// View prints one text frame per tick.
type View struct{}

func (View) ID() string    { return "ascii" }
func (View) Title() string { return "ASCII frames" }

// Render writes the frame at opts.Tick, or every frame when opts.Tick is negative.
// Each frame is preceded by a header line naming its tick.
func (View) Render(w io.Writer, m *anim.Model, opts registry.Options) error {
	for _, s := range m.Shapes() {
		if err := s.Check(); err != nil && !errors.Is(err, anim.ErrEmpty) {
			return fmt.Errorf("ascii: %w", err)
		}
	}

	n, err := m.NumTicks()
	if err != nil {
		return fmt.Errorf("ascii: %w", err)
	}
	first, last := 0, n-1
	if opts.Tick >= 0 {
		if opts.Tick >= n {
			return fmt.Errorf("ascii: tick %d is past the end (%d ticks)", opts.Tick, n)
		}
		first, last = opts.Tick, opts.Tick
	}

	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	scr := core.NewScreen(width, height)
	r := render.Fit(m.Canvas(), width, height)
	r.Shade = opts.Shade

	bw := bufio.NewWriter(w)
	for tick := first; tick <= last; tick++ {
		r.Draw(scr, m, tick)
		fmt.Fprintf(bw, "-- tick %d --\n", tick)
		for y := range height {
			bw.WriteString(strings.TrimRight(scr.Row(y), " "))
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
