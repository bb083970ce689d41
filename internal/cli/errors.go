package cli

import (
	"errors"
	"fmt"
	"io"
)

// ExitError carries the process exit status for a failed command. A nil Err
// means the command already told the user what went wrong.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// userError shows a fixed message while keeping the underlying cause
// reachable through errors.Is.
type userError struct {
	msg   string
	cause error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.cause }

// precondition reports a failed precondition: msg is shown, exit status 1.
func precondition(cause error, format string, args ...any) error {
	return &ExitError{Code: 1, Err: &userError{msg: fmt.Sprintf(format, args...), cause: cause}}
}

// ExitCode maps an error returned by a command to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code != 0 {
		return exitErr.Code
	}
	return 1
}

// Report writes err to w unless the command already reported it.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	fmt.Fprintln(w, err.Error())
}
