// Test Type: Unit Test
// Description: Tests for themes, format detection and result rendering

package style_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/modcontent/pkg/categories"
	"github.com/arthur-debert/modcontent/pkg/content"
	"github.com/arthur-debert/modcontent/pkg/errors"
	"github.com/arthur-debert/modcontent/pkg/style"
)

func TestDefaultTheme_HasEveryCategory(t *testing.T) {
	theme := style.DefaultTheme()
	for _, id := range categories.IDs() {
		assert.True(t, theme.HasColor(string(id)), "no color for %s", id)
	}
}

func TestParseTheme(t *testing.T) {
	theme, err := style.ParseTheme([]byte(`
colors:
  red: { light: "#FF0000", dark: "#FF0000" }
styles:
  title:
    bold: true
    foreground: red
`))
	require.NoError(t, err)
	assert.True(t, theme.HasColor("red"))
	assert.True(t, theme.Style("title").GetBold())
	assert.False(t, theme.Style("missing").GetBold())

	_, err = style.ParseTheme([]byte("colors: [unclosed"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadTheme(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("/themes", "styles.yaml")
	require.NoError(t, afero.WriteFile(fs, path, []byte("colors:\n  texture: { light: \"#000\", dark: \"#fff\" }\n"), 0644))

	theme, err := style.LoadTheme(fs, path)
	require.NoError(t, err)
	assert.True(t, theme.HasColor("texture"))

	_, err = style.LoadTheme(fs, filepath.Join("/themes", "missing.yaml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want style.Format
	}{
		{"", style.FormatAuto},
		{"auto", style.FormatAuto},
		{"term", style.FormatTerminal},
		{"TEXT", style.FormatText},
		{"plain", style.FormatText},
		{"json", style.FormatJSON},
		{"yml", style.FormatYAML},
	}
	for _, tt := range tests {
		got, err := style.ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := style.ParseFormat("xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	assert.True(t, style.FormatYAML.Structured())
	assert.False(t, style.FormatText.Structured())
	assert.Equal(t, "yaml", style.FormatYAML.String())
}

func TestDetectFormat_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, style.FormatText, style.DetectFormat(f))
	assert.Equal(t, style.FormatText, style.FormatAuto.Resolve(f))
	assert.Equal(t, style.FormatJSON, style.FormatJSON.Resolve(f))
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, style.FormatText, style.DetectFormat(os.Stdout))
}

func TestRenderer_Plain(t *testing.T) {
	r := style.NewRenderer(nil, style.FormatText)

	assert.Equal(t, "texture, plugin",
		r.Categories([]categories.Category{categories.Texture, categories.Plugin}))
	assert.Equal(t, "/mods/a: texture",
		r.Result("/mods/a", content.Result{Categories: []categories.Category{categories.Texture}}))
	assert.Equal(t, "/mods/b: (no files)", r.Result("/mods/b", content.Result{IsEmpty: true}))
	assert.Equal(t, "/mods/c: (no recognized content)", r.Result("/mods/c", content.Result{}))
	assert.Equal(t, "notice: not there yet", r.Notice("not there yet"))
	assert.Equal(t, "error: broken", r.Error("broken"))
	assert.Equal(t, "Title", r.Title("Title"))
}

func TestRenderer_TerminalKeepsText(t *testing.T) {
	r := style.NewRenderer(nil, style.FormatTerminal)

	out := r.Result("/mods/a", content.Result{Categories: []categories.Category{categories.Mesh, categories.Script}})
	assert.Contains(t, out, "/mods/a")
	assert.Contains(t, out, "mesh")
	assert.Contains(t, out, "script")
	assert.Contains(t, r.Notice("pending"), "pending")
}

func TestRenderer_CategoryTable(t *testing.T) {
	r := style.NewRenderer(nil, style.FormatText)

	out, err := r.CategoryTable(categories.All())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.GreaterOrEqual(t, len(lines), len(categories.All())+1)
	assert.Contains(t, lines[0], "Category")

	var textureRow string
	for _, line := range lines {
		if strings.Contains(line, "Textures") {
			textureRow = line
		}
	}
	assert.Contains(t, textureRow, "texture")
	assert.NotContains(t, out, "\x1b[")
}
