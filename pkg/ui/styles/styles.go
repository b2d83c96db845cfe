// Package styles defines the visual styling for colormap's terminal output.
//
// All styles use semantic names and adaptive colors that automatically
// adjust to light and dark terminal themes. The definitions live in the
// embedded styles.yaml.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	Width        int    `yaml:"width,omitempty"`
	MarginLeft   int    `yaml:"marginLeft,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles
type Registry struct {
	colors map[string]lipgloss.AdaptiveColor
	defs   map[string]StyleDef
	styles map[string]lipgloss.Style
}

// Default returns the registry built from the embedded styles.yaml
func Default() *Registry {
	r, err := Parse(defaultStyles)
	if err != nil {
		panic(fmt.Sprintf("failed to load embedded styles: %v", err))
	}
	return r
}

// Parse builds a registry from YAML style definitions
func Parse(data []byte) (*Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}

	r := &Registry{
		colors: make(map[string]lipgloss.AdaptiveColor, len(config.Colors)),
		defs:   config.Styles,
	}
	for name, def := range config.Colors {
		r.colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}
	return r.WithRenderer(nil), nil
}

// WithRenderer returns a registry whose styles render through renderer, so
// color output follows that renderer's terminal profile. nil means the
// lipgloss default renderer.
func (r *Registry) WithRenderer(renderer *lipgloss.Renderer) *Registry {
	bound := &Registry{
		colors: r.colors,
		defs:   r.defs,
		styles: make(map[string]lipgloss.Style, len(r.defs)),
	}
	for name, def := range r.defs {
		base := lipgloss.NewStyle()
		if renderer != nil {
			base = renderer.NewStyle()
		}
		bound.styles[name] = bound.buildStyle(base, def)
	}
	return bound
}

// buildStyle constructs a lipgloss style from a style definition
func (r *Registry) buildStyle(style lipgloss.Style, def StyleDef) lipgloss.Style {
	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if color, ok := r.colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := r.colors[def.Background]; ok {
		style = style.Background(color)
	}

	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	if def.MarginLeft > 0 {
		style = style.MarginLeft(def.MarginLeft)
	}
	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}

	return style
}

// Get safely retrieves a style from the registry
func (r *Registry) Get(name string) lipgloss.Style {
	if style, ok := r.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Has reports whether a style with that name is defined
func (r *Registry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}
