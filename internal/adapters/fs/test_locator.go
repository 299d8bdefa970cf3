package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/mutrun/internal/core/domain"
)

// TestLocator implements ports.TestLocator for mirrored test trees.
type TestLocator struct {
	layout domain.Layout
}

// NewTestLocator creates a TestLocator for layout.
func NewTestLocator(layout domain.Layout) *TestLocator {
	return &TestLocator{layout: layout}
}

// LocateTest maps "<source root>/<dir>/<name>" to "<test root>/<dir>/<prefix><name>".
//
// The file only has a test if "<file><backup suffix>" exists. Files outside
// the source root have none.
func (l *TestLocator) LocateTest(file string) (string, bool) {
	if file == "" {
		return "", false
	}

	rel, ok := stripDirPrefix(filepath.Dir(file), filepath.Clean(l.layout.SourceRoot))
	if !ok {
		return "", false
	}

	name := filepath.Base(file)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", false
	}

	if _, err := os.Stat(l.layout.Abs(file + l.layout.BackupSuffix)); err != nil {
		return "", false
	}

	return filepath.Join(l.layout.TestRoot, rel, l.layout.TestPrefix+name), true
}

// stripDirPrefix removes prefix from dir when prefix names dir itself or one
// of its ancestors.
func stripDirPrefix(dir, prefix string) (string, bool) {
	dir = filepath.Clean(dir)
	if dir == prefix {
		return "", true
	}
	rest, ok := strings.CutPrefix(dir, prefix+string(filepath.Separator))
	if !ok {
		return "", false
	}
	return rest, true
}
