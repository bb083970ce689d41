package toolchain

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when the executable cannot be located.
var ErrNotFound = errors.New("executable not found")

// Invocation describes a single process to run.
type Invocation struct {
	// Args holds the executable name followed by its arguments.
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Stdout and Stderr receive the child's streams as they are produced.
	// Nil writers mean the stream is only captured.
	Stdout io.Writer
	Stderr io.Writer
}

// Output captures the result of a process execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the process exited with status 0.
func (o *Output) Success() bool { return o.ExitCode == 0 }

// Runner executes external processes.
type Runner interface {
	// Run executes inv and waits for it. A non-zero exit status is reported
	// in Output.ExitCode, not as an error; errors mean the process could not
	// be started or waited on.
	Run(ctx context.Context, inv Invocation) (*Output, error)
	// LookPath resolves an executable name to a path.
	LookPath(name string) (string, error)
}
