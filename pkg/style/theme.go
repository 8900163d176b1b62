package style

import (
	_ "embed"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/modcontent/pkg/categories"
	"github.com/arthur-debert/modcontent/pkg/errors"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef is an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style definition in YAML
type StyleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty"`
	Underline   bool   `yaml:"underline,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	Background  string `yaml:"background,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

// ThemeConfig is the layout of styles.yaml
type ThemeConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Theme holds the lipgloss styles built from a ThemeConfig
type Theme struct {
	colors map[string]lipgloss.AdaptiveColor
	styles map[string]lipgloss.Style
}

var defaultTheme *Theme

func init() {
	theme, err := ParseTheme(defaultStyles)
	if err != nil {
		panic("failed to load embedded styles: " + err.Error())
	}
	defaultTheme = theme
}

// DefaultTheme returns the theme built from the embedded styles.yaml
func DefaultTheme() *Theme {
	return defaultTheme
}

// ParseTheme builds a theme from YAML data
func ParseTheme(data []byte) (*Theme, error) {
	var cfg ThemeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse styles")
	}

	theme := &Theme{
		colors: make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors)),
		styles: make(map[string]lipgloss.Style, len(cfg.Styles)),
	}
	for name, def := range cfg.Colors {
		theme.colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}
	for name, def := range cfg.Styles {
		theme.styles[name] = theme.build(def)
	}
	return theme, nil
}

// LoadTheme reads a styles file with the same layout as the embedded one
func LoadTheme(fs afero.Fs, path string) (*Theme, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read styles file %s", path)
	}
	return ParseTheme(data)
}

func (t *Theme) build(def StyleDef) lipgloss.Style {
	style := lipgloss.NewStyle()
	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if color, ok := t.colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := t.colors[def.Background]; ok {
		style = style.Background(color)
	}
	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}
	return style
}

// Style returns a named style, or a plain style when the name is unknown
func (t *Theme) Style(name string) lipgloss.Style {
	if style, ok := t.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Category returns the badge style of a category: bold, in the category's
// color when the theme defines one
func (t *Theme) Category(c categories.Category) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if color, ok := t.colors[string(c)]; ok {
		style = style.Foreground(color)
	}
	return style
}

// HasColor reports whether the theme defines a color with this name
func (t *Theme) HasColor(name string) bool {
	_, ok := t.colors[name]
	return ok
}
