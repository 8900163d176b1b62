package categories

import (
	"sort"
	"strings"

	"github.com/arthur-debert/modcontent/pkg/errors"
)

// Category identifies one label of the classification vocabulary
type Category string

const (
	Texture    Category = "texture"
	Mesh       Category = "mesh"
	Plugin     Category = "plugin"
	Music      Category = "music"
	Interface  Category = "interface"
	Archive    Category = "archive"
	Shader     Category = "shader"
	Script     Category = "script"
	Config     Category = "config"
	Executable Category = "executable"
	Extender   Category = "extender"
	Map        Category = "map"
	Animation  Category = "animation"
)

// Descriptor carries the display hints for a category
type Descriptor struct {
	ID       Category `json:"id" yaml:"id"`
	Icon     string   `json:"icon" yaml:"icon"`
	Tooltip  string   `json:"tooltip" yaml:"tooltip"`
	Priority int      `json:"priority" yaml:"priority"`
}

// declaration order is the display priority
var descriptors = []Descriptor{
	{ID: Texture, Icon: "texture", Tooltip: "Textures"},
	{ID: Mesh, Icon: "mesh", Tooltip: "Meshes"},
	{ID: Plugin, Icon: "plugin", Tooltip: "Game Plugins"},
	{ID: Music, Icon: "music", Tooltip: "Music & Sound"},
	{ID: Interface, Icon: "interface", Tooltip: "Interface"},
	{ID: Archive, Icon: "archive", Tooltip: "Asset Bundle"},
	{ID: Shader, Icon: "shader", Tooltip: "Graphics Shaders"},
	{ID: Script, Icon: "script", Tooltip: "Scripts"},
	{ID: Config, Icon: "config", Tooltip: "Configuration"},
	{ID: Executable, Icon: "executable", Tooltip: "Executable (Tools and such)"},
	{ID: Extender, Icon: "extender", Tooltip: "Extends modding capabilities"},
	{ID: Map, Icon: "map", Tooltip: "Game Map"},
	{ID: Animation, Icon: "animation", Tooltip: "Animations"},
}

var byID map[Category]Descriptor

func init() {
	byID = make(map[Category]Descriptor, len(descriptors))
	for i := range descriptors {
		descriptors[i].Priority = i
		byID[descriptors[i].ID] = descriptors[i]
	}
}

// All returns the registered descriptors in priority order
func All() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// IDs returns the registered categories in priority order
func IDs() []Category {
	out := make([]Category, len(descriptors))
	for i, d := range descriptors {
		out[i] = d.ID
	}
	return out
}

// Lookup returns the descriptor for a category
func Lookup(c Category) (Descriptor, bool) {
	d, ok := byID[c]
	return d, ok
}

// Has reports whether c is part of the registry
func Has(c Category) bool {
	_, ok := byID[c]
	return ok
}

// Parse maps a label (any case) to its registered category
func Parse(label string) (Category, error) {
	c := Category(strings.ToLower(label))
	if !Has(c) {
		return "", errors.Newf(errors.ErrUnknownCategory, "unknown category %q", label).
			WithDetail("label", label)
	}
	return c, nil
}

// Priority returns the priority index of a registered category
func Priority(c Category) (int, error) {
	d, ok := byID[c]
	if !ok {
		return -1, errors.Newf(errors.ErrUnknownCategory, "unknown category %q", string(c)).
			WithDetail("label", string(c))
	}
	return d.Priority, nil
}

// MustPriority is Priority for callers that only hold registered categories.
// It panics on an unknown category.
func MustPriority(c Category) int {
	p, err := Priority(c)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// Sort orders categories in place by priority. Unknown categories sort last.
func Sort(cs []Category) {
	sort.SliceStable(cs, func(i, j int) bool {
		return rank(cs[i]) < rank(cs[j])
	})
}

func rank(c Category) int {
	if d, ok := byID[c]; ok {
		return d.Priority
	}
	return len(descriptors)
}

// Strings converts a category list to plain labels
func Strings(cs []Category) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}
	return out
}
