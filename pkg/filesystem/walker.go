package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/modcontent/pkg/errors"
	"github.com/arthur-debert/modcontent/pkg/logging"
)

// DefaultBatchSize is used when a walker is created with a non-positive size
const DefaultBatchSize = 64

// Entry is one file or directory found below the walked root
type Entry struct {
	Path  string // full path, root joined with the relative path
	IsDir bool
}

// BatchFunc receives the entries of one directory, at most BatchSize at a
// time. Returning an error stops the walk and Walk returns that error.
type BatchFunc func(entries []Entry) error

// Walker enumerates a directory tree
type Walker interface {
	// Walk visits every entry below root, not root itself. A missing root
	// (or a directory vanishing mid-walk) fails with errors.ErrPathMissing,
	// any other I/O failure with errors.ErrScanFailed.
	Walk(ctx context.Context, root string, onBatch BatchFunc) error
}

type aferoWalker struct {
	fs        afero.Fs
	batchSize int
	logger    zerolog.Logger
}

// NewAfero returns a walker over an afero filesystem
func NewAfero(afs afero.Fs, batchSize int) Walker {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &aferoWalker{
		fs:        afs,
		batchSize: batchSize,
		logger:    logging.GetLogger("filesystem.walker"),
	}
}

func (w *aferoWalker) Walk(ctx context.Context, root string, onBatch BatchFunc) error {
	info, err := w.fs.Stat(root)
	if err != nil {
		return classify(err, root)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "%s is not a directory", root).
			WithDetail("path", root)
	}

	// depth-first, directories in name order
	pending := []string{root}
	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		infos, err := afero.ReadDir(w.fs, dir)
		if err != nil {
			return classify(err, dir)
		}

		entries := make([]Entry, 0, len(infos))
		var subdirs []string
		for _, fi := range infos {
			path := filepath.Join(dir, fi.Name())
			entries = append(entries, Entry{Path: path, IsDir: fi.IsDir()})
			if fi.IsDir() {
				subdirs = append(subdirs, path)
			}
		}

		w.logger.Trace().
			Str("dir", dir).
			Int("entries", len(entries)).
			Msg("Read directory")

		for start := 0; start < len(entries); start += w.batchSize {
			end := start + w.batchSize
			if end > len(entries) {
				end = len(entries)
			}
			if err := onBatch(entries[start:end]); err != nil {
				return err
			}
		}

		// push in reverse so the first name is popped first
		sort.Sort(sort.Reverse(sort.StringSlice(subdirs)))
		pending = append(pending, subdirs...)
	}

	return nil
}

func classify(err error, path string) error {
	if os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrPathMissing, "%s does not exist", path).
			WithDetail("path", path)
	}
	if os.IsPermission(err) {
		return errors.Wrapf(err, errors.ErrScanFailed, "permission denied reading %s", path).
			WithDetail("path", path)
	}
	return errors.Wrapf(err, errors.ErrScanFailed, "failed to read %s", path).
		WithDetail("path", path)
}
