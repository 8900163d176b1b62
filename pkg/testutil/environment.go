package testutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/modcontent/pkg/filesystem"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // afero MemMapFs
	EnvIsolated                  // real filesystem in a temp directory
)

// MemoryStagingRoot is the staging root of memory environments
const MemoryStagingRoot = "/staging"

// TestEnvironment is a staging root holding test mods
type TestEnvironment struct {
	StagingRoot string
	FS          afero.Fs
	Type        EnvType
}

// NewTestEnvironment creates an empty staging root
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{Type: envType}
	switch envType {
	case EnvIsolated:
		env.FS = afero.NewOsFs()
		env.StagingRoot = filepath.Join(t.TempDir(), "staging")
	default:
		env.FS = afero.NewMemMapFs()
		env.StagingRoot = MemoryStagingRoot
	}
	require.NoError(t, env.FS.MkdirAll(env.StagingRoot, 0755))
	return env
}

// Walker returns a walker over the environment's filesystem
func (e *TestEnvironment) Walker(batchSize int) filesystem.Walker {
	return filesystem.NewAfero(e.FS, batchSize)
}

// Path joins parts below the staging root
func (e *TestEnvironment) Path(parts ...string) string {
	return filepath.Join(append([]string{e.StagingRoot}, parts...)...)
}

// IsolateXDG points the XDG config and state directories at a temp dir
func IsolateXDG(t *testing.T) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}
