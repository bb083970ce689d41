package testutil

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/lemonade-lang/lemonade/internal/toolchain"
)

// FakeRunner records invocations and replays a scripted Output.
type FakeRunner struct {
	mu    sync.Mutex
	calls []toolchain.Invocation

	// Output is returned from every Run call; nil means a clean exit.
	Output *toolchain.Output
	// Err, when set, is returned from Run instead of Output.
	Err error
	// Missing lists executable names LookPath should fail for.
	Missing map[string]bool
}

// Run records inv and writes the scripted streams to its writers.
func (f *FakeRunner) Run(_ context.Context, inv toolchain.Invocation) (*toolchain.Output, error) {
	f.mu.Lock()
	f.calls = append(f.calls, inv)
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	out := f.Output
	if out == nil {
		out = &toolchain.Output{}
	}
	if inv.Stdout != nil {
		io.WriteString(inv.Stdout, out.Stdout)
	}
	if inv.Stderr != nil {
		io.WriteString(inv.Stderr, out.Stderr)
	}
	copied := *out
	return &copied, nil
}

// LookPath fails for names listed in Missing and returns /usr/bin/<name> otherwise.
func (f *FakeRunner) LookPath(name string) (string, error) {
	if f.Missing[name] {
		return "", fmt.Errorf("%s: %w", name, toolchain.ErrNotFound)
	}
	return "/usr/bin/" + name, nil
}

// Calls returns the argument vectors of every recorded invocation.
func (f *FakeRunner) Calls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	args := make([][]string, len(f.calls))
	for i, c := range f.calls {
		args[i] = c.Args
	}
	return args
}

// Invocations returns the recorded invocations.
func (f *FakeRunner) Invocations() []toolchain.Invocation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]toolchain.Invocation(nil), f.calls...)
}
