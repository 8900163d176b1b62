package categories

import (
	"sort"
)

// Compare orders two category label lists for sorting mods by content.
//
// Both lists are lowercased and sorted by priority, then compared position by
// position. At the first differing position the difference of the priority
// indices is returned. With an equal prefix the shorter list sorts first.
// Labels outside the registry yield an ErrUnknownCategory error.
func Compare(a, b []string) (int, error) {
	lhs, err := priorities(a)
	if err != nil {
		return 0, err
	}
	rhs, err := priorities(b)
	if err != nil {
		return 0, err
	}

	for i := 0; i < len(lhs) && i < len(rhs); i++ {
		if lhs[i] != rhs[i] {
			return lhs[i] - rhs[i], nil
		}
	}
	return len(lhs) - len(rhs), nil
}

// MustCompare is Compare for lists produced by the rule resolver. An unknown
// label is a programming error and panics.
func MustCompare(a, b []string) int {
	n, err := Compare(a, b)
	if err != nil {
		panic(err.Error())
	}
	return n
}

// Less reports whether a sorts before b
func Less(a, b []string) bool {
	return MustCompare(a, b) < 0
}

// SortLabels sorts label lists in place using MustCompare
func SortLabels(lists [][]string) {
	sort.SliceStable(lists, func(i, j int) bool {
		return Less(lists[i], lists[j])
	})
}

func priorities(labels []string) ([]int, error) {
	out := make([]int, len(labels))
	for i, label := range labels {
		c, err := Parse(label)
		if err != nil {
			return nil, err
		}
		out[i] = byID[c].Priority
	}
	sort.Ints(out)
	return out, nil
}
