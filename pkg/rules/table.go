package rules

import (
	"sort"

	"github.com/arthur-debert/modcontent/pkg/categories"
	"github.com/arthur-debert/modcontent/pkg/errors"
)

// Table maps normalized extensions to ordered rule lists. A Table is never
// mutated after Build, so it can be shared between goroutines.
type Table struct {
	rules map[string][]Rule
}

// Resolve returns the category of the first rule for ext that accepts ctx.
// ext must already be normalized (see Normalize).
func (t *Table) Resolve(ext string, ctx Context) (categories.Category, bool) {
	for _, rule := range t.rules[ext] {
		if rule.Accepts(ctx) {
			return rule.Category, true
		}
	}
	return "", false
}

// ResolvePath normalizes the extension of path and resolves it with path as
// the context path
func (t *Table) ResolvePath(gameID, path string) (categories.Category, bool) {
	return t.Resolve(Normalize(path), Context{GameID: gameID, Path: path})
}

// Rules returns a copy of the rule list for ext
func (t *Table) Rules(ext string) []Rule {
	rs := t.rules[ext]
	out := make([]Rule, len(rs))
	copy(out, rs)
	return out
}

// Extensions returns all extensions with rules, sorted
func (t *Table) Extensions() []string {
	out := make([]string, 0, len(t.rules))
	for ext := range t.rules {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of extensions in the table
func (t *Table) Len() int {
	return len(t.rules)
}

// With returns a new table with rs appended to the rules of ext
func (t *Table) With(ext string, rs ...Rule) (*Table, error) {
	b := NewBuilder()
	for k, v := range t.rules {
		b.Add(k, v...)
	}
	b.Add(ext, rs...)
	return b.Build()
}

// Validate checks that every rule names a registered category
func (t *Table) Validate() error {
	for _, ext := range t.Extensions() {
		if ext == "" {
			return errors.New(errors.ErrInvalidInput, "rule table has an empty extension")
		}
		for i, rule := range t.rules[ext] {
			if !categories.Has(rule.Category) {
				return errors.Newf(errors.ErrUnknownCategory,
					"rule %d for %s names unknown category %q", i, ext, string(rule.Category)).
					WithDetail("extension", ext)
			}
		}
	}
	return nil
}

// Builder accumulates rules before freezing them into a Table
type Builder struct {
	rules map[string][]Rule
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{rules: make(map[string][]Rule)}
}

// Add appends rules to an extension's list. The extension is lowercased and
// given a leading dot if missing.
func (b *Builder) Add(ext string, rs ...Rule) *Builder {
	key := normalizeKey(ext)
	b.rules[key] = append(b.rules[key], rs...)
	return b
}

// Build freezes the builder into a validated Table
func (b *Builder) Build() (*Table, error) {
	frozen := make(map[string][]Rule, len(b.rules))
	for ext, rs := range b.rules {
		list := make([]Rule, len(rs))
		copy(list, rs)
		frozen[ext] = list
	}

	t := &Table{rules: frozen}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustBuild is Build for static tables; an invalid table panics
func (b *Builder) MustBuild() *Table {
	t, err := b.Build()
	if err != nil {
		panic(err.Error())
	}
	return t
}
