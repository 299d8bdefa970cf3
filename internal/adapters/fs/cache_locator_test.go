package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mutrun/internal/adapters/fs"
	"go.trai.ch/mutrun/internal/core/domain"
)

func TestCacheLocator_LocateCache(t *testing.T) {
	tests := []struct {
		name   string
		files  []string
		source string
		want   string
		found  bool
	}{
		{
			name:   "matching entry",
			files:  []string{"src/pkg/mod.py", "src/pkg/__pycache__/mod.cpython-39.pyc"},
			source: "src/pkg/mod.py",
			want:   filepath.Join("src", "pkg", "__pycache__", "mod.cpython-39.pyc"),
			found:  true,
		},
		{
			name:   "no entry with prefix",
			files:  []string{"src/pkg/mod.py", "src/pkg/__pycache__/other.cpython-39.pyc"},
			source: "src/pkg/mod.py",
		},
		{
			name:   "prefix requires separator",
			files:  []string{"src/pkg/__pycache__/module.cpython-39.pyc"},
			source: "src/pkg/mod.py",
		},
		{
			name:   "missing cache directory",
			files:  []string{"src/pkg/mod.py"},
			source: "src/pkg/mod.py",
		},
		{
			name:   "file at root",
			files:  []string{"__pycache__/setup.cpython-311.pyc"},
			source: "setup.py",
			want:   filepath.Join("__pycache__", "setup.cpython-311.pyc"),
			found:  true,
		},
		{
			name:   "stem keeps inner dots",
			files:  []string{"src/__pycache__/a.b.cpython-39.pyc", "src/__pycache__/a.cpython-39.pyc"},
			source: "src/a.b.py",
			want:   filepath.Join("src", "__pycache__", "a.b.cpython-39.pyc"),
			found:  true,
		},
		{
			name:   "source need not exist",
			files:  []string{"src/__pycache__/gone.cpython-39.pyc"},
			source: "src/gone.py",
			want:   filepath.Join("src", "__pycache__", "gone.cpython-39.pyc"),
			found:  true,
		},
		{
			name:   "empty path",
			source: "",
		},
		{
			name:   "dot dot",
			source: "src/..",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTree(t)
			for _, f := range tt.files {
				touch(t, l, f)
			}

			got, ok := fs.NewCacheLocator(l).LocateCache(tt.source)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCacheLocator_LocateCache_FirstMatchOnly(t *testing.T) {
	l := newTree(t)
	touch(t, l, "src/__pycache__/a.cpython-38.pyc")
	touch(t, l, "src/__pycache__/a.cpython-39.pyc")

	got, ok := fs.NewCacheLocator(l).LocateCache("src/a.py")
	require.True(t, ok)
	assert.Contains(t, []string{
		filepath.Join("src", "__pycache__", "a.cpython-38.pyc"),
		filepath.Join("src", "__pycache__", "a.cpython-39.pyc"),
	}, got)
}

func TestCacheLocator_LocateCache_CustomCacheDir(t *testing.T) {
	l := newTree(t)
	l.CacheDirName = ".cache"
	touch(t, l, "src/.cache/a.o")

	got, ok := fs.NewCacheLocator(l).LocateCache("src/a.c")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("src", ".cache", "a.o"), got)
}

func TestCacheLocator_LocateCache_CacheDirIsFile(t *testing.T) {
	l := newTree(t)
	touch(t, l, "src/__pycache__")

	_, ok := fs.NewCacheLocator(l).LocateCache("src/a.py")
	assert.False(t, ok)
}

func TestCacheLocator_LocateCache_DoesNotModify(t *testing.T) {
	l := newTree(t)
	touch(t, l, "src/__pycache__/a.cpython-39.pyc")

	_, ok := fs.NewCacheLocator(l).LocateCache("src/a.py")
	require.True(t, ok)

	_, err := os.Stat(filepath.Join(l.Root, "src", "__pycache__", "a.cpython-39.pyc"))
	assert.NoError(t, err)
}

func TestCacheLocator_LocateCache_DefaultLayoutRelative(t *testing.T) {
	// The default layout resolves paths against the current directory.
	l := domain.DefaultLayout()
	_, ok := fs.NewCacheLocator(l).LocateCache("does/not/exist.py")
	assert.False(t, ok)
}

func TestCacheLocator_LocateCache_SkipsDirectories(t *testing.T) {
	l := newTree(t)
	require.NoError(t, os.MkdirAll(filepath.Join(l.Root, "src", "pkg", "__pycache__", "mod.d"), domain.DirPerm))

	_, ok := fs.NewCacheLocator(l).LocateCache("src/pkg/mod.py")
	assert.False(t, ok)

	touch(t, l, "src/pkg/__pycache__/mod.pyc")

	got, ok := fs.NewCacheLocator(l).LocateCache("src/pkg/mod.py")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("src", "pkg", "__pycache__", "mod.pyc"), got)
}
