package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/mutrun/internal/core/domain"
)

// newTree returns a layout rooted at a fresh temporary directory.
func newTree(t *testing.T) domain.Layout {
	t.Helper()
	l := domain.DefaultLayout()
	l.Root = t.TempDir()
	return l
}

// touch creates an empty file (and its parents) below the layout root.
func touch(t *testing.T, l domain.Layout, rel string) {
	t.Helper()
	path := filepath.Join(l.Root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, nil, domain.FilePerm))
}
