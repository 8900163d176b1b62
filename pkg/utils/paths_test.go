// Test Type: Unit Test
// Description: Tests for path expansion

package utils_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/modcontent/pkg/utils"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MODS", "/data/mods")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"home", "~", home},
		{"below home", "~/mods/SkyUI", filepath.Join(home, "mods", "SkyUI")},
		{"env", "$MODS/SkyUI", "/data/mods/SkyUI"},
		{"braced env", "${MODS}/a/../b", "/data/mods/b"},
		{"tilde inside", "/a/~b", "/a/~b"},
		{"relative", "./mods//x/", "mods/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ExpandPath(tt.in))
		})
	}
}

func TestExpandPaths(t *testing.T) {
	t.Setenv("MODS", "/m")
	assert.Equal(t, []string{"/m/a", "b"}, utils.ExpandPaths([]string{"$MODS/a", "b/"}))
}
