package testutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// TestMod is a mod folder below a staging root
type TestMod struct {
	Name string // folder name, the install path
	Dir  string // full path

	fs afero.Fs
}

// AddMod creates an empty mod folder
func (e *TestEnvironment) AddMod(t *testing.T, name string) *TestMod {
	t.Helper()

	dir := e.Path(name)
	require.NoError(t, e.FS.MkdirAll(dir, 0755))
	return &TestMod{Name: name, Dir: dir, fs: e.FS}
}

// AddFile writes a file at rel, creating parent directories
func (m *TestMod) AddFile(t *testing.T, rel, content string) string {
	t.Helper()

	path := filepath.Join(m.Dir, rel)
	require.NoError(t, m.fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(m.fs, path, []byte(content), 0644))
	return path
}

// AddDir creates an empty directory at rel
func (m *TestMod) AddDir(t *testing.T, rel string) string {
	t.Helper()

	path := filepath.Join(m.Dir, rel)
	require.NoError(t, m.fs.MkdirAll(path, 0755))
	return path
}

// Add creates each path; paths ending in "/" become directories, the rest
// files with placeholder content
func (m *TestMod) Add(t *testing.T, paths ...string) *TestMod {
	t.Helper()

	for _, p := range paths {
		if strings.HasSuffix(p, "/") {
			m.AddDir(t, p)
			continue
		}
		m.AddFile(t, p, "data")
	}
	return m
}

// CommonMods are typical mod layouts keyed by what they hold
var CommonMods = map[string][]string{
	"skyui":   {"SkyUI_SE.esp", "SkyUI_SE.bsa", "interface/skyui.swf", "scripts/ski_configbase.pex"},
	"texture": {"textures/armor/iron.dds", "textures/armor/iron_n.dds"},
	"skse":    {"skse64_loader.exe", "skse64_1_6.dll"},
	"smapi":   {"manifest.json", "Mod.dll", "assets/sprite.png"},
	"empty":   {"meshes/", "textures/"},
}

// AddCommonMod creates one of CommonMods
func (e *TestEnvironment) AddCommonMod(t *testing.T, name string) *TestMod {
	t.Helper()

	files, ok := CommonMods[name]
	require.True(t, ok, "unknown common mod %q", name)
	return e.AddMod(t, name).Add(t, files...)
}
