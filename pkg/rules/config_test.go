// Test Type: Unit Test
// Description: Tests for building rule tables from configuration

package rules_test

import (
	"testing"

	"github.com/arthur-debert/modcontent/pkg/categories"
	"github.com/arthur-debert/modcontent/pkg/config"
	"github.com/arthur-debert/modcontent/pkg/errors"
	"github.com/arthur-debert/modcontent/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConfig_Defaults(t *testing.T) {
	table, err := rules.FromConfig(config.Default())
	require.NoError(t, err)
	assert.Equal(t, rules.Default().Extensions(), table.Extensions())
}

func TestFromConfig_GameSets(t *testing.T) {
	cfg := config.Default()
	cfg.Games.DLLPlugins = append(cfg.Games.DLLPlugins, "terraria")

	table, err := rules.FromConfig(cfg)
	require.NoError(t, err)

	c, ok := table.ResolvePath("terraria", "/m/mod.dll")
	require.True(t, ok)
	assert.Equal(t, categories.Plugin, c)

	_, ok = rules.Default().ResolvePath("terraria", "/m/mod.dll")
	assert.False(t, ok)
}

func TestFromConfig_Rules(t *testing.T) {
	cfg := config.Default()
	cfg.Rules = []config.Rule{
		{Extension: "pak", Category: "Archive", Games: []string{"cyberpunk2077"}},
		{Extension: ".lua", Category: "script", ExcludeNames: []string{"init.lua"}, ExcludeGames: []string{"factorio"}},
		{Extension: ".dll", Category: "executable"},
	}

	table, err := rules.FromConfig(cfg)
	require.NoError(t, err)

	c, ok := table.ResolvePath("cyberpunk2077", "/m/a.pak")
	require.True(t, ok)
	assert.Equal(t, categories.Archive, c)

	_, ok = table.ResolvePath("skyrimse", "/m/a.pak")
	assert.False(t, ok)

	c, ok = table.ResolvePath("skyrimse", "/m/main.lua")
	require.True(t, ok)
	assert.Equal(t, categories.Script, c)

	_, ok = table.ResolvePath("skyrimse", "/m/init.lua")
	assert.False(t, ok)

	_, ok = table.ResolvePath("factorio", "/m/main.lua")
	assert.False(t, ok)

	// configured rules go after the built-in ones
	c, _ = table.ResolvePath("skyrimse", "/m/a.dll")
	assert.Equal(t, categories.Extender, c)
	c, _ = table.ResolvePath("witcher3", "/m/a.dll")
	assert.Equal(t, categories.Executable, c)
}

func TestFromConfig_UnknownCategory(t *testing.T) {
	cfg := config.Default()
	cfg.Rules = []config.Rule{{Extension: ".pak", Category: "bundle"}}

	_, err := rules.FromConfig(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.Equal(t, ".pak", errors.GetErrorDetails(err)["extension"])
}

func TestFromConfig_NamedGameSets(t *testing.T) {
	cfg := config.Default()
	cfg.Games.ScriptExtender = append(cfg.Games.ScriptExtender, "starfield")
	cfg.Rules = []config.Rule{
		{Extension: ".lsl", Category: "script", Games: []string{"@script_extender"}},
	}

	table, err := rules.FromConfig(cfg)
	require.NoError(t, err)

	c, ok := table.ResolvePath("starfield", "/m/main.lsl")
	require.True(t, ok)
	assert.Equal(t, categories.Script, c)

	_, ok = table.ResolvePath("thesims4", "/m/main.lsl")
	assert.False(t, ok)
}

func TestFromConfig_UnknownGameSet(t *testing.T) {
	cfg := config.Default()
	cfg.Rules = []config.Rule{
		{Extension: ".pak", Category: "archive", ExcludeGames: []string{"@unreal"}},
	}

	_, err := rules.FromConfig(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.ErrorIs(t, err, errors.New(errors.ErrUnknownGameSet, ""))
	assert.Contains(t, err.Error(), `unknown game set "unreal"`)
}
