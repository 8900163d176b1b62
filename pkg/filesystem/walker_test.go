// Test Type: Unit Test
// Description: Tests for the batched directory walker

package filesystem_test

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/modcontent/pkg/errors"
	"github.com/arthur-debert/modcontent/pkg/filesystem"
)

func memTree(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/mods/a", 0755))
	for _, f := range files {
		if f[len(f)-1] == '/' {
			require.NoError(t, fs.MkdirAll(filepath.Join("/mods/a", f), 0755))
			continue
		}
		path := filepath.Join("/mods/a", f)
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(fs, path, []byte("x"), 0644))
	}
	return fs
}

func collect(t *testing.T, w filesystem.Walker, root string) ([][]filesystem.Entry, error) {
	t.Helper()
	var batches [][]filesystem.Entry
	err := w.Walk(context.Background(), root, func(entries []filesystem.Entry) error {
		batch := make([]filesystem.Entry, len(entries))
		copy(batch, entries)
		batches = append(batches, batch)
		return nil
	})
	return batches, err
}

func TestWalk_DeliversEveryEntry(t *testing.T) {
	fs := memTree(t, "plugin.esp", "textures/armor.dds", "textures/sub/deep.dds", "empty/")

	batches, err := collect(t, filesystem.NewAfero(fs, 0), "/mods/a")
	require.NoError(t, err)

	var all []filesystem.Entry
	for _, b := range batches {
		all = append(all, b...)
	}

	assert.ElementsMatch(t, []filesystem.Entry{
		{Path: "/mods/a/empty", IsDir: true},
		{Path: "/mods/a/plugin.esp"},
		{Path: "/mods/a/textures", IsDir: true},
		{Path: "/mods/a/textures/armor.dds"},
		{Path: "/mods/a/textures/sub", IsDir: true},
		{Path: "/mods/a/textures/sub/deep.dds"},
	}, all)

	// one batch per non-empty directory, root first
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 3)
}

func TestWalk_SplitsBatches(t *testing.T) {
	fs := memTree(t, "1.esp", "2.esp", "3.esp", "4.esp", "5.esp")

	batches, err := collect(t, filesystem.NewAfero(fs, 2), "/mods/a")
	require.NoError(t, err)

	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 2)
	assert.Len(t, batches[1], 2)
	assert.Len(t, batches[2], 1)
	assert.Equal(t, "/mods/a/1.esp", batches[0][0].Path)
}

func TestWalk_EmptyRoot(t *testing.T) {
	fs := memTree(t)

	batches, err := collect(t, filesystem.NewAfero(fs, 0), "/mods/a")
	require.NoError(t, err)
	assert.Empty(t, batches)
}

func TestWalk_MissingRoot(t *testing.T) {
	fs := memTree(t)

	_, err := collect(t, filesystem.NewAfero(fs, 0), "/mods/missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathMissing))
	assert.True(t, stderrors.Is(err, os.ErrNotExist))
}

func TestWalk_RootIsFile(t *testing.T) {
	fs := memTree(t, "plugin.esp")

	_, err := collect(t, filesystem.NewAfero(fs, 0), "/mods/a/plugin.esp")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestWalk_CallbackErrorStops(t *testing.T) {
	fs := memTree(t, "a.esp", "sub/b.esp")
	stop := stderrors.New("stop")

	calls := 0
	err := filesystem.NewAfero(fs, 0).Walk(context.Background(), "/mods/a", func([]filesystem.Entry) error {
		calls++
		return stop
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestWalk_Cancelled(t *testing.T) {
	fs := memTree(t, "a.esp")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := filesystem.NewAfero(fs, 0).Walk(ctx, "/mods/a", func([]filesystem.Entry) error {
		t.Fatal("no batch expected after cancellation")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWalk_OS(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "meshes"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "meshes", "a.nif"), []byte("x"), 0644))

	batches, err := collect(t, filesystem.NewAfero(afero.NewOsFs(), 16), root)
	require.NoError(t, err)
	require.Len(t, batches, 2)
	assert.Equal(t, filesystem.Entry{Path: filepath.Join(root, "meshes"), IsDir: true}, batches[0][0])
	assert.Equal(t, filesystem.Entry{Path: filepath.Join(root, "meshes", "a.nif")}, batches[1][0])
}

func TestWalk_OSPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.MkdirAll(locked, 0755))
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	_, err := collect(t, filesystem.NewAfero(afero.NewOsFs(), 0), root)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrScanFailed))
}
