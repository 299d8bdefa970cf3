package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mutrun/internal/app"
	"go.trai.ch/mutrun/internal/core/domain"
	"go.trai.ch/mutrun/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newProvider(loader *mocks.MockConfigLoader, runner *mocks.MockCommandRunner, log *mocks.MockLogger) ComponentProvider {
	application := app.New(loader, runner, log).WithDir(".")
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: log,
		}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := newProvider(mocks.NewMockConfigLoader(ctrl), mocks.NewMockCommandRunner(ctrl), mocks.NewMockLogger(ctrl))

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLoader.EXPECT().Load(".", "").Return(domain.Layout{}, errors.New("load failed"))
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	provider := newProvider(mockLoader, mocks.NewMockCommandRunner(ctrl), mockLogger)

	exitCode := run(context.Background(), []string{"run"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_TestFailureExitCode verifies that a failing test run exits with the runner's status.
func TestRun_TestFailureExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockRunner := mocks.NewMockCommandRunner(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	layout := domain.DefaultLayout()
	layout.Root = t.TempDir()
	mockLoader.EXPECT().Load(".", "").Return(layout, nil)

	mockRunner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command) (*domain.Invocation, error) {
			switch cmd.Path {
			case layout.ToolPath("pytest"):
				return &domain.Invocation{ExitCode: 5}, nil
			default:
				return &domain.Invocation{}, nil
			}
		},
	).Times(3)
	// No Error call: the test runner's own output is the report.

	provider := newProvider(mockLoader, mockRunner, mockLogger)

	exitCode := run(context.Background(), []string{"run"}, new(bytes.Buffer), provider)
	assert.Equal(t, 5, exitCode)
}

// TestRun_Options verifies that options are applied to the app.
func TestRun_Options(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := newProvider(mocks.NewMockConfigLoader(ctrl), mocks.NewMockCommandRunner(ctrl), mocks.NewMockLogger(ctrl))

	applied := false
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider, func(_ *app.App) {
		applied = true
	})
	assert.Equal(t, 0, exitCode)
	assert.True(t, applied)
}

// TestRun_SignalledTestRunnerExitsOne verifies that a runner without a real exit status exits 1.
func TestRun_SignalledTestRunnerExitsOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockRunner := mocks.NewMockCommandRunner(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	layout := domain.DefaultLayout()
	layout.Root = t.TempDir()
	mockLoader.EXPECT().Load(".", "").Return(layout, nil)

	mockRunner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command) (*domain.Invocation, error) {
			if cmd.Path == layout.ToolPath("pytest") {
				return &domain.Invocation{ExitCode: -1}, nil
			}
			return &domain.Invocation{}, nil
		},
	).Times(3)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	provider := newProvider(mockLoader, mockRunner, mockLogger)

	exitCode := run(context.Background(), []string{"run"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
