package rules

import (
	"path/filepath"
	"sort"
)

// GameSet is a set of game ids
type GameSet map[string]struct{}

// NewGameSet builds a set from game ids. Ids are matched exactly, the mod
// manager hands them out lowercase.
func NewGameSet(ids ...string) GameSet {
	s := make(GameSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether the game is in the set
func (s GameSet) Has(gameID string) bool {
	_, ok := s[gameID]
	return ok
}

// Union returns a new set holding the ids of s and other
func (s GameSet) Union(other GameSet) GameSet {
	out := make(GameSet, len(s)+len(other))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// List returns the ids sorted
func (s GameSet) List() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// GameIn accepts contexts whose game is in set
func GameIn(set GameSet) Predicate {
	return func(ctx Context) bool {
		return set.Has(ctx.GameID)
	}
}

// GameNotIn accepts contexts whose game is not in set
func GameNotIn(set GameSet) Predicate {
	return Not(GameIn(set))
}

// BaseNameIsNot rejects files whose base name is exactly one of names
func BaseNameIsNot(names ...string) Predicate {
	return func(ctx Context) bool {
		base := filepath.Base(ctx.Path)
		for _, name := range names {
			if base == name {
				return false
			}
		}
		return true
	}
}

// Not inverts a predicate
func Not(p Predicate) Predicate {
	return func(ctx Context) bool {
		return !p(ctx)
	}
}

// All accepts when every predicate accepts. Nil predicates are skipped.
func All(preds ...Predicate) Predicate {
	return func(ctx Context) bool {
		for _, p := range preds {
			if p != nil && !p(ctx) {
				return false
			}
		}
		return true
	}
}
