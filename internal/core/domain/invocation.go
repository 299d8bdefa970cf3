package domain

import (
	"fmt"
	"strings"
)

// Command describes one external process to start.
type Command struct {
	// Path is the program to execute. It is not looked up in PATH when it
	// contains a separator.
	Path string
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Mirror streams output lines to the logger while capturing them.
	Mirror bool
}

// String renders the command line for logs.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Path
	}
	return c.Path + " " + strings.Join(c.Args, " ")
}

// Invocation is the outcome of a process that was started and waited for.
type Invocation struct {
	Tool     string
	Args     []string
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Success reports whether the process exited with status zero.
func (i *Invocation) Success() bool {
	return i != nil && i.ExitCode == 0
}

// ExitError reports a tool that ran to completion with a non-zero status.
type ExitError struct {
	Tool string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Tool, e.Code)
}

// Is makes a failing test run match ErrTestsFailed.
func (e *ExitError) Is(target error) bool {
	return target == ErrTestsFailed
}
