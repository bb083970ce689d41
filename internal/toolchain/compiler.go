package toolchain

import (
	"context"
	"fmt"
	"io"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// Compiler invokes the lemoc executable through a Runner.
type Compiler struct {
	Binary string
	Runner Runner
}

// NewCompiler returns a Compiler for binary using runner.
func NewCompiler(binary string, runner Runner) *Compiler {
	return &Compiler{Binary: binary, Runner: runner}
}

// BuildArgs returns the argument vector for `lemoc build <path>`.
func (c *Compiler) BuildArgs(path string) []string {
	return []string{c.Binary, "build", path}
}

// CheckArgs returns the argument vector for `lemoc check <path>`.
func (c *Compiler) CheckArgs(path string) []string {
	return []string{c.Binary, "check", path}
}

// Build runs the build subcommand in dir. The compiler's streams go straight
// to stdout and stderr.
func (c *Compiler) Build(ctx context.Context, dir, path string, stdout, stderr io.Writer) (*Output, error) {
	out, err := c.Runner.Run(ctx, Invocation{
		Args:   c.BuildArgs(path),
		Dir:    dir,
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("running %s build: %w", c.Binary, err)
	}
	return out, nil
}

// Check runs the check subcommand in dir with both streams captured.
func (c *Compiler) Check(ctx context.Context, dir, path string) (*Output, error) {
	out, err := c.Runner.Run(ctx, Invocation{
		Args: c.CheckArgs(path),
		Dir:  dir,
	})
	if err != nil {
		return nil, fmt.Errorf("running %s check: %w", c.Binary, err)
	}
	return out, nil
}

// Locate resolves the compiler on PATH.
func (c *Compiler) Locate() (string, error) {
	return c.Runner.LookPath(c.Binary)
}

var versionPattern = regexp.MustCompile(`v?\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z.-]+)?`)

// Version asks the compiler for its version and parses the first semver-like
// token of its output.
func (c *Compiler) Version(ctx context.Context) (*semver.Version, error) {
	out, err := c.Runner.Run(ctx, Invocation{Args: []string{c.Binary, "--version"}})
	if err != nil {
		return nil, fmt.Errorf("running %s --version: %w", c.Binary, err)
	}
	if !out.Success() {
		return nil, fmt.Errorf("%s --version exited with status %d", c.Binary, out.ExitCode)
	}
	return ParseVersion(out.Stdout + out.Stderr)
}

// ParseVersion extracts a semantic version from free-form version output.
func ParseVersion(text string) (*semver.Version, error) {
	token := versionPattern.FindString(text)
	if token == "" {
		return nil, fmt.Errorf("no version found in %q", text)
	}
	v, err := semver.NewVersion(token)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", token, err)
	}
	return v, nil
}
