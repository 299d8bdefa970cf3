package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidLayout is returned when a layout field is empty or malformed.
	ErrInvalidLayout = zerr.New("invalid layout")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown schema version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrFailedToGetRoot is returned when the working-copy root cannot be made absolute.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of working-copy root")

	// ErrCommandLaunchFailed is returned when an external command cannot be started.
	ErrCommandLaunchFailed = zerr.New("failed to launch command")

	// ErrToolLaunchFailed is returned when a tool from the isolated environment cannot be started.
	ErrToolLaunchFailed = zerr.New("failed to launch tool")

	// ErrEmptyCommand is returned when a command without a program name is run.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrCacheInvalidationFailed is returned when a cache artifact exists but cannot be removed.
	ErrCacheInvalidationFailed = zerr.New("failed to invalidate cache artifact")

	// ErrTypeCheckFailed is returned when the type checker cannot be run.
	ErrTypeCheckFailed = zerr.New("type check failed")

	// ErrTestRunFailed is returned when the test runner cannot be run.
	ErrTestRunFailed = zerr.New("test run failed")

	// ErrTestsFailed is matched by ExitError values produced by a failing test run.
	ErrTestsFailed = zerr.New("tests failed")

	// ErrRunFailed is returned when the orchestrated run aborts.
	ErrRunFailed = zerr.New("run failed")
)
