package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// ConfigFileName is the name of the optional layout configuration file.
	ConfigFileName = "mutrun.yaml"

	// ConfigVersion is the only supported config schema version.
	ConfigVersion = "1"

	// DefaultSourceRoot is the top-level directory holding source files.
	DefaultSourceRoot = "src"

	// DefaultTestRoot is the top-level directory holding paired tests.
	DefaultTestRoot = "tests"

	// DefaultCacheDirName is the per-directory compiled-cache subdirectory.
	DefaultCacheDirName = "__pycache__"

	// DefaultBackupSuffix marks a source file as mutated with a paired test.
	DefaultBackupSuffix = ".bak"

	// DefaultTestPrefix is prepended to a source file name to get its test file name.
	DefaultTestPrefix = "test_"

	// DefaultEnvBinDir is the isolated-environment directory holding the toolchain.
	DefaultEnvBinDir = ".nox/mutmut_install/bin"

	// DefaultStatusWidth is the width of the status code in front of each VCS status line.
	DefaultStatusWidth = 2

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission for executable files (rwxr-xr-x).
	ExecPerm = 0o755
)

// ToolSpec names a tool in the isolated environment and the arguments it always receives.
type ToolSpec struct {
	Tool string
	Args []string
}

// Layout holds every structural convention a run depends on.
// It is built once at startup and never changes during a run.
type Layout struct {
	// Root is the working-copy root. Changed files, cache artifacts and test
	// files are all relative to it.
	Root string

	SourceRoot   string
	TestRoot     string
	CacheDirName string
	BackupSuffix string
	TestPrefix   string

	// EnvBinDir is the isolated-environment binary directory. Relative values
	// are resolved against Root.
	EnvBinDir string

	// TypeChecker is invoked with its fixed target as the only argument.
	TypeChecker ToolSpec

	// TestRunner is invoked with its flags followed by the derived test files.
	TestRunner ToolSpec

	// StatusCommand lists modified files, one per line.
	StatusCommand []string

	// StatusWidth is the number of status-code characters stripped from each line.
	StatusWidth int
}

// DefaultLayout returns the layout used when no config file is present.
func DefaultLayout() Layout {
	return Layout{
		Root:         ".",
		SourceRoot:   DefaultSourceRoot,
		TestRoot:     DefaultTestRoot,
		CacheDirName: DefaultCacheDirName,
		BackupSuffix: DefaultBackupSuffix,
		TestPrefix:   DefaultTestPrefix,
		EnvBinDir:    DefaultEnvBinDir,
		TypeChecker: ToolSpec{
			Tool: "mypy",
			Args: []string{DefaultSourceRoot},
		},
		TestRunner: ToolSpec{
			Tool: "pytest",
			Args: []string{"-vv"},
		},
		StatusCommand: []string{"hg", "status", "--modified"},
		StatusWidth:   DefaultStatusWidth,
	}
}

// ToolPath returns the location of a tool inside the isolated environment.
func (l Layout) ToolPath(tool string) string {
	dir := l.EnvBinDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(l.Root, dir)
	}
	return filepath.Join(dir, tool)
}

// Abs resolves a root-relative path to a filesystem location.
func (l Layout) Abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.Root, path)
}

// Validate reports the first malformed field.
func (l Layout) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"root", l.Root},
		{"source_root", l.SourceRoot},
		{"test_root", l.TestRoot},
		{"cache_dir", l.CacheDirName},
		{"backup_suffix", l.BackupSuffix},
		{"env_bin_dir", l.EnvBinDir},
		{"type_checker.tool", l.TypeChecker.Tool},
		{"test_runner.tool", l.TestRunner.Tool},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return zerr.With(zerr.With(ErrInvalidLayout, "field", r.field), "reason", "must not be empty")
		}
	}

	if filepath.IsAbs(l.SourceRoot) {
		return zerr.With(zerr.With(ErrInvalidLayout, "field", "source_root"), "reason", "must be relative")
	}
	if filepath.IsAbs(l.TestRoot) {
		return zerr.With(zerr.With(ErrInvalidLayout, "field", "test_root"), "reason", "must be relative")
	}
	if strings.ContainsRune(l.CacheDirName, filepath.Separator) || strings.ContainsRune(l.CacheDirName, '/') {
		return zerr.With(zerr.With(ErrInvalidLayout, "field", "cache_dir"), "reason", "must be a single name")
	}
	if strings.ContainsRune(l.TypeChecker.Tool, '/') || strings.ContainsRune(l.TestRunner.Tool, '/') {
		return zerr.With(zerr.With(ErrInvalidLayout, "field", "tool"), "reason", "tools are resolved inside env_bin_dir")
	}
	if len(l.StatusCommand) == 0 || l.StatusCommand[0] == "" {
		return zerr.With(zerr.With(ErrInvalidLayout, "field", "vcs.command"), "reason", "must not be empty")
	}
	if l.StatusWidth < 0 {
		return zerr.With(zerr.With(ErrInvalidLayout, "field", "vcs.status_width"), "reason", "must not be negative")
	}

	return nil
}
