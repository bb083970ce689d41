package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
)

// ExecRunner runs processes with os/exec. A nil Logger discards.
type ExecRunner struct {
	Logger *slog.Logger
}

func (r *ExecRunner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

// NewExecRunner returns an ExecRunner that logs through logger.
func NewExecRunner(logger *slog.Logger) *ExecRunner {
	return &ExecRunner{Logger: logger}
}

// LookPath resolves name on PATH.
func (r *ExecRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", name, ErrNotFound, err)
	}
	return path, nil
}

// Run executes inv, streaming to the configured writers while capturing both
// streams into the returned Output.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) (*Output, error) {
	if len(inv.Args) == 0 {
		return nil, errors.New("empty invocation")
	}

	bin, err := r.LookPath(inv.Args[0])
	if err != nil {
		return nil, err
	}

	log := r.logger()
	cmd := exec.CommandContext(ctx, bin, inv.Args[1:]...)
	cmd.Dir = inv.Dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = tee(inv.Stdout, &stdoutBuf)
	cmd.Stderr = tee(inv.Stderr, &stderrBuf)

	log.Debug("running external process", "args", inv.Args, "dir", inv.Dir)
	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			log.Debug("external process failed", "args", inv.Args, "exit_code", output.ExitCode)
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", inv.Args[0], err)
	}

	log.Debug("external process finished", "args", inv.Args, "exit_code", 0)
	return output, nil
}

func tee(w io.Writer, buf *bytes.Buffer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(w, buf)
}
