package report

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold          bool   `yaml:"bold,omitempty"`
	Italic        bool   `yaml:"italic,omitempty"`
	Underline     bool   `yaml:"underline,omitempty"`
	Strikethrough bool   `yaml:"strikethrough,omitempty"`
	Foreground    string `yaml:"foreground,omitempty"`
	Width         int    `yaml:"width,omitempty"`
	Align         string `yaml:"align,omitempty"`
	MarginBottom  int    `yaml:"marginBottom,omitempty"`
	MarginTop     int    `yaml:"marginTop,omitempty"`
	PaddingLeft   int    `yaml:"paddingLeft,omitempty"`
	PaddingRight  int    `yaml:"paddingRight,omitempty"`
}

// StylesConfig represents the complete styles configuration
type StylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// styleSet maps style names to lipgloss styles bound to one renderer
type styleSet map[string]lipgloss.Style

// get returns the named style, or a plain one
func (s styleSet) get(name string) lipgloss.Style {
	if style, ok := s[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// loadStyles builds the style set for a renderer from the embedded YAML
func loadStyles(r *lipgloss.Renderer) (styleSet, error) {
	var config StylesConfig
	if err := yaml.Unmarshal(stylesYAML, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles.yaml: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	set := make(styleSet, len(config.Styles))
	for name, def := range config.Styles {
		set[name] = buildStyle(r.NewStyle(), def, colors)
	}
	return set, nil
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(style lipgloss.Style, def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Strikethrough {
		style = style.Strikethrough(true)
	}
	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}

	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	switch def.Align {
	case "right":
		style = style.Align(lipgloss.Right)
	case "center":
		style = style.Align(lipgloss.Center)
	}

	return style.
		MarginTop(def.MarginTop).
		MarginBottom(def.MarginBottom).
		PaddingLeft(def.PaddingLeft).
		PaddingRight(def.PaddingRight)
}
