package content

import (
	"context"
	stderrors "errors"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/modcontent/pkg/config"
	"github.com/arthur-debert/modcontent/pkg/errors"
	"github.com/arthur-debert/modcontent/pkg/filesystem"
	"github.com/arthur-debert/modcontent/pkg/logging"
	"github.com/arthur-debert/modcontent/pkg/rules"
	"github.com/arthur-debert/modcontent/pkg/scheduler"
)

// Request names the folder to scan and the game it belongs to
type Request struct {
	Root   string
	GameID string
}

// Engine runs classification requests through a shared scan queue
type Engine struct {
	walker filesystem.Walker
	table  *rules.Table
	queue  *scheduler.Queue
	logger zerolog.Logger
}

// NewEngine wires an engine from its parts
func NewEngine(walker filesystem.Walker, table *rules.Table, queue *scheduler.Queue) *Engine {
	return &Engine{
		walker: walker,
		table:  table,
		queue:  queue,
		logger: logging.GetLogger("content.engine"),
	}
}

// NewEngineFromConfig builds an engine walking fs with the configured rules,
// batch size and scan concurrency
func NewEngineFromConfig(fs afero.Fs, cfg *config.Config) (*Engine, error) {
	table, err := rules.FromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return NewEngine(
		filesystem.NewAfero(fs, cfg.Scan.BatchSize),
		table,
		scheduler.New(cfg.Scan.Concurrency),
	), nil
}

// Table returns the rule table the engine classifies with
func (e *Engine) Table() *rules.Table {
	return e.table
}

// Scan waits for its turn in the queue, then classifies the requested folder
func (e *Engine) Scan(ctx context.Context, req Request) (Result, error) {
	if req.Root == "" {
		return Result{}, errors.New(errors.ErrInvalidInput, "scan request without a folder")
	}

	done := logging.LogOperationStart(e.logger, "scan "+req.Root)
	defer done()

	result, err := scheduler.Run(ctx, e.queue, func(ctx context.Context) (Result, error) {
		return Classify(ctx, e.walker, e.table, req.Root, req.GameID)
	})
	if err != nil {
		event := e.logger.Warn()
		if IsTransientAbsence(err) {
			event = e.logger.Debug()
		}
		event.Err(err).Str("root", req.Root).Str("game", req.GameID).Msg("Scan failed")
		return Result{}, err
	}
	return result, nil
}

var pathMissing = errors.New(errors.ErrPathMissing, "path missing")

// IsTransientAbsence reports whether err only means the folder does not
// exist (yet). Callers suppress these and retry on the next content change.
func IsTransientAbsence(err error) bool {
	return err != nil && stderrors.Is(err, pathMissing)
}
