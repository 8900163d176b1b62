package modstate

import (
	"context"
	stderrors "errors"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/modcontent/pkg/content"
	"github.com/arthur-debert/modcontent/pkg/errors"
	"github.com/arthur-debert/modcontent/pkg/logging"
)

// DefaultCapacity is used when a tracker is created with capacity < 1
const DefaultCapacity = 4096

// State of a mod's content attributes
type State string

const (
	// StatePending means a scan was requested but no result is recorded
	StatePending State = "pending"
	// StateScanned means Content and NoContent reflect the last scan
	StateScanned State = "scanned"
)

// Mod identifies an installed mod and where its files live below the
// staging root
type Mod struct {
	ID          string `json:"id" yaml:"id"`
	GameID      string `json:"gameId" yaml:"gameId"`
	InstallPath string `json:"installPath" yaml:"installPath"`
}

// Attributes are the content attributes recorded for a mod
type Attributes struct {
	Content   []string `json:"content" yaml:"content"`
	NoContent bool     `json:"noContent" yaml:"noContent"`
	State     State    `json:"state" yaml:"state"`
}

// Scanner classifies a mod folder
type Scanner interface {
	Scan(ctx context.Context, req content.Request) (content.Result, error)
}

type key struct {
	gameID string
	modID  string
}

type entry struct {
	mod   Mod
	attrs Attributes
}

// Tracker records content attributes for the mods below one staging root
type Tracker struct {
	scanner     Scanner
	stagingRoot string
	entries     *lru.Cache[key, entry]
	logger      zerolog.Logger
}

// NewTracker creates a tracker scanning mods below stagingRoot
func NewTracker(scanner Scanner, stagingRoot string, capacity int) (*Tracker, error) {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New[key, entry](capacity)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to create tracker cache")
	}
	return &Tracker{
		scanner:     scanner,
		stagingRoot: stagingRoot,
		entries:     cache,
		logger:      logging.GetLogger("modstate"),
	}, nil
}

// StagingRoot returns the folder mod install paths are relative to
func (t *Tracker) StagingRoot() string {
	return t.stagingRoot
}

// Attributes returns the recorded attributes of a mod
func (t *Tracker) Attributes(gameID, modID string) (Attributes, bool) {
	e, ok := t.entries.Peek(key{gameID, modID})
	if !ok {
		return Attributes{}, false
	}
	return e.attrs, true
}

// Len returns the number of tracked mods
func (t *Tracker) Len() int {
	return t.entries.Len()
}

// NeedsScan reports whether nothing has been recorded for mod yet
func (t *Tracker) NeedsScan(mod Mod) bool {
	return !t.entries.Contains(key{mod.GameID, mod.ID})
}

// Update scans the folder of mod and records the result.
//
// The mod is marked pending first. If the folder does not exist yet the mod
// stays pending and no error is returned. Any other failure is returned and
// also leaves the mod pending.
func (t *Tracker) Update(ctx context.Context, mod Mod) error {
	logger := t.logger.With().Str("game", mod.GameID).Str("mod", mod.ID).Logger()

	if t.stagingRoot == "" || mod.InstallPath == "" {
		logger.Debug().Msg("No folder to scan, skipping")
		return nil
	}

	k := key{mod.GameID, mod.ID}
	t.entries.Add(k, entry{mod: mod, attrs: Attributes{State: StatePending}})

	result, err := t.scanner.Scan(ctx, content.Request{
		Root:   filepath.Join(t.stagingRoot, mod.InstallPath),
		GameID: mod.GameID,
	})
	if err != nil {
		if content.IsTransientAbsence(err) {
			logger.Debug().Msg("Mod folder not present yet, keeping pending")
			return nil
		}
		return errors.Wrapf(err, errors.GetErrorCode(err), "failed to update content of mod %s", mod.ID).
			WithDetail("game", mod.GameID).
			WithDetail("mod", mod.ID)
	}

	t.entries.Add(k, entry{mod: mod, attrs: Attributes{
		Content:   result.Labels(),
		NoContent: result.IsEmpty,
		State:     StateScanned,
	}})
	logger.Debug().Strs("content", result.Labels()).Bool("noContent", result.IsEmpty).Msg("Recorded mod content")
	return nil
}

// Refresh updates every given mod, returning all failures joined
func (t *Tracker) Refresh(ctx context.Context, mods ...Mod) error {
	var errs []error
	for _, mod := range mods {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := t.Update(ctx, mod); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// ContentChanged re-scans a mod that is already tracked
func (t *Tracker) ContentChanged(ctx context.Context, gameID, modID string) error {
	e, ok := t.entries.Peek(key{gameID, modID})
	if !ok {
		return errors.Newf(errors.ErrNotFound, "mod %s is not tracked", modID).
			WithDetail("game", gameID)
	}
	return t.Update(ctx, e.mod)
}

// Forget drops a mod, e.g. after it was removed
func (t *Tracker) Forget(gameID, modID string) {
	t.entries.Remove(key{gameID, modID})
}
