package rules

import (
	"strings"

	"github.com/arthur-debert/modcontent/pkg/categories"
	"github.com/arthur-debert/modcontent/pkg/errors"
)

// GameSets groups the game lists the built-in rules depend on
type GameSets struct {
	ScriptExtender  GameSet
	PythonScripting GameSet
	DLLPlugins      GameSet
	ImageTextures   GameSet
}

// GameSetRef prefixes a named game set inside a configured games list,
// e.g. "@script_extender"
const GameSetRef = "@"

// Named returns the set registered under name, as spelled in the [games]
// config section
func (g GameSets) Named(name string) (GameSet, error) {
	switch name {
	case "script_extender":
		return g.ScriptExtender, nil
	case "python_scripting":
		return g.PythonScripting, nil
	case "dll_plugins":
		return g.DLLPlugins, nil
	case "image_textures":
		return g.ImageTextures, nil
	}
	return nil, errors.Newf(errors.ErrUnknownGameSet, "unknown game set %q", name).
		WithDetail("name", name)
}

// Resolve builds a set from game ids and "@name" references to named sets
func (g GameSets) Resolve(ids ...string) (GameSet, error) {
	out := make(GameSet, len(ids))
	for _, id := range ids {
		name, ok := strings.CutPrefix(id, GameSetRef)
		if !ok {
			out[id] = struct{}{}
			continue
		}
		named, err := g.Named(name)
		if err != nil {
			return nil, err
		}
		out = out.Union(named)
	}
	return out, nil
}

// DefaultGameSets returns the built-in game lists
func DefaultGameSets() GameSets {
	return GameSets{
		ScriptExtender: NewGameSet(
			"oblivion", "skyrim", "skyrimse", "skyrimvr",
			"fallout3", "falloutnv", "fallout4", "fallout4vr",
		),
		PythonScripting: NewGameSet("thesims4"),
		DLLPlugins:      NewGameSet("stardewvalley"),
		ImageTextures:   NewGameSet("stardewvalley", "darksouls2"),
	}
}

var defaultTable = DefaultBuilder(DefaultGameSets()).MustBuild()

// Default returns the built-in table for the built-in game sets
func Default() *Table {
	return defaultTable
}

// DefaultBuilder returns a builder preloaded with the built-in rules for the
// given game sets. Callers may append further rules before Build.
func DefaultBuilder(games GameSets) *Builder {
	b := NewBuilder()

	b.Add(".dds", Always(categories.Texture))
	b.Add(".nif", Always(categories.Mesh))
	for _, ext := range []string{".exe", ".bat", ".cmd", ".jar"} {
		b.Add(ext, Always(categories.Executable))
	}
	b.Add(".py",
		When(categories.Executable, GameNotIn(games.PythonScripting)),
		When(categories.Script, GameIn(games.PythonScripting)))

	b.Add(".swf", Always(categories.Interface))
	b.Add(".xml", Always(categories.Config))
	b.Add(".json", When(categories.Config, BaseNameIsNot("manifest.json")))
	b.Add(".ini", Always(categories.Config))

	for _, ext := range []string{".wav", ".mp3", ".ogg"} {
		b.Add(ext, Always(categories.Music))
	}

	b.Add(".png", When(categories.Texture, GameIn(games.ImageTextures)))
	b.Add(".jpg", When(categories.Texture, GameIn(games.ImageTextures)))
	b.Add(".tga", Always(categories.Texture))

	b.Add(".unity3d", Always(categories.Archive))
	b.Add(".arc", Always(categories.Archive))

	// gamebryo
	b.Add(".xwm", Always(categories.Music))
	b.Add(".bsa", Always(categories.Archive))
	b.Add(".ba2", Always(categories.Archive))
	for _, ext := range []string{".esp", ".esm", ".esl"} {
		b.Add(ext, Always(categories.Plugin))
	}
	b.Add(".pex", Always(categories.Script))
	b.Add(".dll",
		When(categories.Extender, GameIn(games.ScriptExtender)),
		When(categories.Plugin, GameIn(games.DLLPlugins)))

	// the sims 4
	b.Add(".ts4script", Always(categories.Script))
	b.Add(".package", Always(categories.Archive))
	for _, ext := range []string{
		".bpi", ".blueprint", ".trayitem", ".ion", ".householdbinary",
		".sgi", ".hhi", ".room", ".rmi",
	} {
		b.Add(ext, Always(categories.Plugin))
	}
	b.Add(".sfx", Always(categories.Music))
	b.Add(".midi", Always(categories.Music))

	// stardew valley tilesets
	b.Add(".tbin", Always(categories.Texture))

	// neverwinter nights
	b.Add(".mod", Always(categories.Plugin))
	b.Add(".hak", Always(categories.Archive))
	b.Add(".bmu", Always(categories.Music))

	// dragon age
	b.Add(".ani", Always(categories.Animation))

	return b
}
