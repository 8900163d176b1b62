package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/modcontent/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1, cfg.Scan.Concurrency)
	assert.Equal(t, 64, cfg.Scan.BatchSize)
	assert.Equal(t, 4096, cfg.Tracker.Capacity)
	assert.Contains(t, cfg.Games.ScriptExtender, "skyrimse")
	assert.Len(t, cfg.Games.ScriptExtender, 8)
	assert.Equal(t, []string{"thesims4"}, cfg.Games.PythonScripting)
	assert.Equal(t, []string{"stardewvalley"}, cfg.Games.DLLPlugins)
	assert.Equal(t, []string{"stardewvalley", "darksouls2"}, cfg.Games.ImageTextures)
	assert.Empty(t, cfg.Rules)
}

func TestLoad_TOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
[scan]
concurrency = 4

[games]
dll_plugins = ["stardewvalley", "terraria"]

[[rules]]
extension = ".pak"
category = "archive"
games = ["cyberpunk2077"]

[[rules]]
extension = "lua"
category = "script"
exclude_names = ["init.lua"]
`)

	cfg, err := Load(LoadOptions{Path: path, SkipEnv: true})
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Scan.Concurrency)
	assert.Equal(t, 64, cfg.Scan.BatchSize, "untouched keys keep their defaults")
	assert.Equal(t, []string{"stardewvalley", "terraria"}, cfg.Games.DLLPlugins)
	assert.Equal(t, []string{"thesims4"}, cfg.Games.PythonScripting)

	require.Len(t, cfg.Rules, 2)
	assert.Equal(t, Rule{Extension: ".pak", Category: "archive", Games: []string{"cyberpunk2077"}}, cfg.Rules[0])
	assert.Equal(t, []string{"init.lua"}, cfg.Rules[1].ExcludeNames)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
scan:
  batch_size: 8
rules:
  - extension: .pak
    category: archive
`)

	cfg, err := Load(LoadOptions{Path: path, SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Scan.BatchSize)
	require.Len(t, cfg.Rules, 1)
	assert.Equal(t, "archive", cfg.Rules[0].Category)
}

func TestLoad_XDGConfigHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "modcontent"), 0755))
	writeFile(t, filepath.Join(dir, "modcontent"), "config.toml", "[tracker]\ncapacity = 10\n")

	cfg, err := Load(LoadOptions{SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Tracker.Capacity)

	cfg, err = Load(LoadOptions{SkipEnv: true, SkipUserFile: true})
	require.NoError(t, err)
	assert.Equal(t, 4096, cfg.Tracker.Capacity)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("MODCONTENT_SCAN__CONCURRENCY", "3")
	t.Setenv("MODCONTENT_GAMES__PYTHON_SCRIPTING", "thesims4,thesims3")

	cfg, err := Load(LoadOptions{SkipUserFile: true})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Scan.Concurrency)
	assert.Equal(t, []string{"thesims4", "thesims3"}, cfg.Games.PythonScripting)
}

func TestLoad_OverridesWin(t *testing.T) {
	t.Setenv("MODCONTENT_SCAN__CONCURRENCY", "3")

	cfg, err := Load(LoadOptions{
		SkipUserFile: true,
		Overrides:    map[string]interface{}{"scan.concurrency": 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Scan.Concurrency)
}

func TestLoad_ConcurrencyBelowOneSerializes(t *testing.T) {
	for _, n := range []int{0, -1} {
		cfg, err := Load(LoadOptions{
			SkipUserFile: true,
			SkipEnv:      true,
			Overrides:    map[string]interface{}{"scan.concurrency": n},
		})
		require.NoError(t, err, "concurrency %d", n)
		assert.Equal(t, 1, cfg.Scan.Concurrency, "concurrency %d", n)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "nope.toml"), SkipEnv: true})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "config.toml", "[scan\nconcurrency = ")
		_, err := Load(LoadOptions{Path: path, SkipEnv: true})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(LoadOptions{
			SkipUserFile: true,
			SkipEnv:      true,
			Overrides:    map[string]interface{}{"scan.batch_size": 0},
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("rule without extension", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "config.toml", "[[rules]]\ncategory = \"archive\"\n")
		_, err := Load(LoadOptions{Path: path, SkipEnv: true})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestMarshal(t *testing.T) {
	cfg := Default()
	cfg.Rules = []Rule{{Extension: ".pak", Category: "archive"}}

	out, err := Marshal(cfg)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "[scan]")
	assert.Contains(t, text, "concurrency = 1")
	assert.Contains(t, text, "[[rules]]")
	assert.Contains(t, text, "extension = '.pak'")

	// the rendered file loads back to the same values
	path := writeFile(t, t.TempDir(), "config.toml", text)
	loaded, err := Load(LoadOptions{Path: path, SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestAccess(t *testing.T) {
	Initialize(nil)
	assert.Equal(t, 1, Get().Scan.Concurrency)

	custom := Default()
	custom.Scan.Concurrency = 5
	Initialize(custom)
	t.Cleanup(func() { Initialize(nil) })
	assert.Equal(t, 5, Get().Scan.Concurrency)
}
