// Package fs provides the filesystem adapters that locate and remove
// per-file artifacts inside the working copy.
package fs

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.trai.ch/mutrun/internal/core/domain"
)

// CacheLocator implements ports.CacheLocator for per-directory bytecode caches.
type CacheLocator struct {
	layout domain.Layout
}

// NewCacheLocator creates a CacheLocator for layout.
func NewCacheLocator(layout domain.Layout) *CacheLocator {
	return &CacheLocator{layout: layout}
}

// LocateCache returns the first entry of the file's cache directory whose
// name starts with "<stem>.". Subdirectories are never artifacts. The
// returned path is relative to the root.
//
// A missing or unreadable cache directory is not an error; it simply has no
// match. At most one artifact is returned even if several share the prefix.
func (l *CacheLocator) LocateCache(file string) (string, bool) {
	stem, ok := fileStem(file)
	if !ok {
		return "", false
	}

	cacheDir := filepath.Join(filepath.Dir(file), l.layout.CacheDirName)
	prefix := stem + "."

	// ReadDir returns whatever it read before failing, so a partial listing
	// is still scanned.
	entries, _ := os.ReadDir(l.layout.Abs(cacheDir))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !utf8.ValidString(name) {
			continue
		}
		if strings.HasPrefix(name, prefix) {
			return filepath.Join(cacheDir, name), true
		}
	}

	return "", false
}

// fileStem returns the base name of path without its final extension.
// A name whose only dot is the leading one is its own stem.
func fileStem(path string) (string, bool) {
	if path == "" {
		return "", false
	}

	base := filepath.Base(path)
	switch base {
	case ".", "..", string(filepath.Separator):
		return "", false
	}

	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return base, base != ""
}
