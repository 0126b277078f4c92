// Package formats provides pluggable animation file parsers.
// Parsers describe what they read through an anim.Ingester and never touch
// a Model directly.
package formats

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-animator/internal/anim"
)

// Extensions returns supported file extensions.
func Extensions() []string {
	return []string{".txt", ".anim", ".yaml", ".yml"}
}

// Supported reports whether a file with the given extension can be parsed.
func Supported(ext string) bool {
	return slices.Contains(Extensions(), strings.ToLower(ext))
}

// Name returns the format name for an extension, as stored in the catalog.
func Name(ext string) string {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return "yaml"
	case ".txt", ".anim":
		return "text"
	default:
		return ""
	}
}

// Ext returns the canonical extension for a format name. Unknown names map
// to the text format.
func Ext(name string) string {
	if name == "yaml" {
		return ".yaml"
	}
	return ".txt"
}

// Parse routes data to the parser for ext.
func Parse(data []byte, ext string, in anim.Ingester) error {
	switch Name(ext) {
	case "yaml":
		return ParseYAML(data, in)
	case "text":
		return ParseText(data, in)
	default:
		return fmt.Errorf("unsupported extension: %s", ext)
	}
}

// ParseBytes builds a model from data in the format named by ext.
func ParseBytes(data []byte, ext string) (*anim.Model, error) {
	b := anim.NewBuilder()
	if err := Parse(data, ext, b); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// ParseFile reads and parses a single animation file.
func ParseFile(path string) (*anim.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	m, err := ParseBytes(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return m, nil
}
