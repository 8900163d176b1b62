package rules

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/modcontent/pkg/categories"
)

// Context is what a rule predicate decides on
type Context struct {
	// GameID identifies the game (or profile) the package belongs to
	GameID string

	// Path is the full path of the candidate file
	Path string
}

// Predicate decides whether a rule applies. Predicates must be pure and must
// not do I/O.
type Predicate func(ctx Context) bool

// Rule assigns a category to an extension, optionally only when Predicate
// accepts the context
type Rule struct {
	Category  categories.Category
	Predicate Predicate
}

// Always returns an unconditional rule
func Always(c categories.Category) Rule {
	return Rule{Category: c}
}

// When returns a rule guarded by p
func When(c categories.Category, p Predicate) Rule {
	return Rule{Category: c, Predicate: p}
}

// Accepts reports whether the rule fires for ctx
func (r Rule) Accepts(ctx Context) bool {
	return r.Predicate == nil || r.Predicate(ctx)
}

// Normalize returns the lookup key for a file path: its extension,
// lowercased, with the leading dot. Files without an extension yield "".
func Normalize(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// normalizeKey turns a configured extension ("DLL", ".Dll") into a key
func normalizeKey(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
