package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mutrun/internal/core/domain"
)

func TestDefaultLayout(t *testing.T) {
	l := domain.DefaultLayout()

	require.NoError(t, l.Validate())
	assert.Equal(t, ".", l.Root)
	assert.Equal(t, "src", l.SourceRoot)
	assert.Equal(t, "tests", l.TestRoot)
	assert.Equal(t, "__pycache__", l.CacheDirName)
	assert.Equal(t, ".bak", l.BackupSuffix)
	assert.Equal(t, "test_", l.TestPrefix)
	assert.Equal(t, []string{"-vv"}, l.TestRunner.Args)
	assert.Equal(t, []string{"hg", "status", "--modified"}, l.StatusCommand)
	assert.Equal(t, 2, l.StatusWidth)
}

func TestLayout_ToolPath(t *testing.T) {
	l := domain.DefaultLayout()
	l.Root = "/work"
	assert.Equal(t, filepath.Join("/work", ".nox", "mutmut_install", "bin", "pytest"), l.ToolPath("pytest"))

	l.EnvBinDir = "/opt/env/bin"
	assert.Equal(t, filepath.Join("/opt/env/bin", "mypy"), l.ToolPath("mypy"))
}

func TestLayout_Abs(t *testing.T) {
	l := domain.DefaultLayout()
	l.Root = "/work"
	assert.Equal(t, filepath.Join("/work", "src", "a.py"), l.Abs("src/a.py"))
	assert.Equal(t, "/elsewhere/a.py", l.Abs("/elsewhere/a.py"))
}

func TestLayout_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*domain.Layout)
		errContains string
	}{
		{
			name:        "empty source root",
			mutate:      func(l *domain.Layout) { l.SourceRoot = "" },
			errContains: "invalid layout",
		},
		{
			name:        "absolute test root",
			mutate:      func(l *domain.Layout) { l.TestRoot = "/tests" },
			errContains: "invalid layout",
		},
		{
			name:        "nested cache dir",
			mutate:      func(l *domain.Layout) { l.CacheDirName = "a/b" },
			errContains: "invalid layout",
		},
		{
			name:        "tool with path",
			mutate:      func(l *domain.Layout) { l.TestRunner.Tool = "bin/pytest" },
			errContains: "invalid layout",
		},
		{
			name:        "empty status command",
			mutate:      func(l *domain.Layout) { l.StatusCommand = nil },
			errContains: "invalid layout",
		},
		{
			name:        "negative status width",
			mutate:      func(l *domain.Layout) { l.StatusWidth = -1 },
			errContains: "invalid layout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := domain.DefaultLayout()
			tt.mutate(&l)
			err := l.Validate()
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestLayout_Validate_EmptyTestPrefixAllowed(t *testing.T) {
	l := domain.DefaultLayout()
	l.TestPrefix = ""
	assert.NoError(t, l.Validate())
}

func TestChangeSet(t *testing.T) {
	cs := domain.NewChangeSet([]string{"src/a.py", "src/a.py"})
	assert.False(t, cs.Fallback)
	assert.False(t, cs.Empty())
	assert.Len(t, cs.Files, 2)

	reason := errors.New("hg: not found")
	fb := domain.FallbackChangeSet(reason)
	assert.True(t, fb.Fallback)
	assert.True(t, fb.Empty())
	assert.Equal(t, reason, fb.Reason)

	assert.True(t, domain.NewChangeSet(nil).Empty())
	assert.False(t, domain.NewChangeSet(nil).Fallback)
}

func TestInvocation_Success(t *testing.T) {
	var nilInv *domain.Invocation
	assert.False(t, nilInv.Success())
	assert.True(t, (&domain.Invocation{ExitCode: 0}).Success())
	assert.False(t, (&domain.Invocation{ExitCode: 1}).Success())
}

func TestExitError(t *testing.T) {
	var err error = &domain.ExitError{Tool: "pytest", Code: 3}

	assert.EqualError(t, err, "pytest exited with status 3")
	assert.ErrorIs(t, err, domain.ErrTestsFailed)

	var exitErr *domain.ExitError
	require.ErrorAs(t, errors.Join(domain.ErrRunFailed, err), &exitErr)
	assert.Equal(t, 3, exitErr.Code)
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "hg", domain.Command{Path: "hg"}.String())
	assert.Equal(t, "hg status --modified", domain.Command{Path: "hg", Args: []string{"status", "--modified"}}.String())
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state domain.State
		want  string
	}{
		{domain.StateTypeChecking, "type-checking"},
		{domain.StatePreInvalidating, "pre-invalidating"},
		{domain.StateTesting, "testing"},
		{domain.StatePostInvalidating, "post-invalidating"},
		{domain.StateDone, "done"},
		{domain.State(42), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}
