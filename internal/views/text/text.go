// Package text provides the document views: the model written back out in
// one of the input formats, so that it can be edited and parsed again.
package text

import (
	"fmt"
	"io"

	"github.com/vovakirdan/tui-animator/internal/anim"
	"github.com/vovakirdan/tui-animator/internal/anim/formats"
	"github.com/vovakirdan/tui-animator/internal/registry"
)

func init() {
	registry.Register("text", func() registry.View { return TextView{} })
	registry.Register("yaml", func() registry.View { return YAMLView{} })
}

// TextView writes the line-oriented text format.
type TextView struct{}

func (TextView) ID() string    { return "text" }
func (TextView) Title() string { return "Text document" }

// Render writes m in the text format. Options are ignored.
func (TextView) Render(w io.Writer, m *anim.Model, _ registry.Options) error {
	return formats.WriteText(w, m)
}

// YAMLView writes the YAML format.
type YAMLView struct{}

func (YAMLView) ID() string    { return "yaml" }
func (YAMLView) Title() string { return "YAML document" }

// Render writes m as YAML, carrying opts.Title as the document title.
func (YAMLView) Render(w io.Writer, m *anim.Model, opts registry.Options) error {
	data, err := formats.MarshalYAML(m, opts.Title)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing yaml: %w", err)
	}
	return nil
}
