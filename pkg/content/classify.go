package content

import (
	"context"

	"github.com/arthur-debert/modcontent/pkg/categories"
	"github.com/arthur-debert/modcontent/pkg/filesystem"
	"github.com/arthur-debert/modcontent/pkg/logging"
	"github.com/arthur-debert/modcontent/pkg/rules"
)

// accumulator collects categories over the batches of a single walk
type accumulator struct {
	table  *rules.Table
	gameID string
	found  map[categories.Category]struct{}
	empty  bool
}

func newAccumulator(table *rules.Table, gameID string) *accumulator {
	return &accumulator{
		table:  table,
		gameID: gameID,
		found:  make(map[categories.Category]struct{}),
		empty:  true,
	}
}

func (a *accumulator) add(entries []filesystem.Entry) {
	for _, entry := range entries {
		if entry.IsDir {
			continue
		}
		a.empty = false

		ctx := rules.Context{GameID: a.gameID, Path: entry.Path}
		if c, ok := a.table.Resolve(rules.Normalize(entry.Path), ctx); ok {
			a.found[c] = struct{}{}
		}
	}
}

func (a *accumulator) result() Result {
	cs := make([]categories.Category, 0, len(a.found))
	for c := range a.found {
		cs = append(cs, c)
	}
	categories.Sort(cs)
	return Result{Categories: cs, IsEmpty: a.empty}
}

// Classify walks root and classifies every file below it with table, in the
// context of gameID. On failure the zero Result is returned with the error.
func Classify(ctx context.Context, walker filesystem.Walker, table *rules.Table, root, gameID string) (Result, error) {
	logger := logging.GetLogger("content.classify")

	acc := newAccumulator(table, gameID)
	err := walker.Walk(ctx, root, func(entries []filesystem.Entry) error {
		acc.add(entries)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	result := acc.result()
	logger.Debug().
		Str("root", root).
		Str("game", gameID).
		Strs("categories", result.Labels()).
		Bool("empty", result.IsEmpty).
		Msg("Classified folder")

	return result, nil
}
