package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/mutrun/internal/core/domain"
	"go.trai.ch/mutrun/internal/core/ports"
	"go.trai.ch/zerr"
)

var errIsDirectory = zerr.New("is a directory")

// Invalidator implements ports.CacheInvalidator by deleting files.
type Invalidator struct {
	layout domain.Layout
	logger ports.Logger
}

// NewInvalidator creates an Invalidator for layout.
func NewInvalidator(layout domain.Layout, logger ports.Logger) *Invalidator {
	return &Invalidator{layout: layout, logger: logger}
}

// Invalidate deletes each path in order.
//
// A path that is already gone is skipped, so invalidating twice is safe.
// A directory is never removed. It and any other failure stop the batch;
// remaining paths are not touched.
func (v *Invalidator) Invalidate(paths []string) ([]string, error) {
	var removed []string
	for _, path := range paths {
		abs := v.layout.Abs(path)
		info, err := os.Lstat(abs)
		if errors.Is(err, iofs.ErrNotExist) {
			continue
		}
		if err == nil && info.IsDir() {
			err = errIsDirectory
		}
		if err == nil {
			err = os.Remove(abs)
		}
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				continue
			}
			return removed, zerr.With(zerr.Wrap(err, domain.ErrCacheInvalidationFailed.Error()), "path", path)
		}
		v.logger.Info("removed " + path)
		removed = append(removed, path)
	}
	return removed, nil
}
