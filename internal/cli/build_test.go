package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemonade-lang/lemonade/internal/toolchain"
)

func TestBuildWithoutDescriptor(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, 1, h.run("build"))
	assert.Equal(t, "Lemonfile does not exist. Please create one first.\n", h.stderr.String())
	assert.Empty(t, h.runner.Calls())
}

func TestBuildInvokesCompilerOnce(t *testing.T) {
	h := newHarness(t)
	h.writeFile("Lemonfile", "# Lemonfile\n")
	h.runner.Output = &toolchain.Output{Stdout: "linking main\n", Stderr: "note: cached\n"}

	require.Equal(t, 0, h.run("build"))
	assert.Equal(t, [][]string{{"lemoc", "build", "Lemonfile"}}, h.runner.Calls())
	assert.Equal(t, "linking main\nLemonfile built.\n", h.stdout.String())
	assert.Equal(t, "note: cached\n", h.stderr.String())

	inv := h.runner.Invocations()[0]
	assert.Equal(t, h.dir, inv.Dir)
	assert.NotNil(t, inv.Stdout, "build streams compiler output")
}

func TestBuildEmptyDescriptorStillBuilds(t *testing.T) {
	h := newHarness(t)
	h.writeFile("Lemonfile", "")

	require.Equal(t, 0, h.run("build"))
	assert.Len(t, h.runner.Calls(), 1)
}

func TestBuildPropagatesCompilerFailure(t *testing.T) {
	h := newHarness(t)
	h.writeFile("Lemonfile", "# Lemonfile\n")
	h.runner.Output = &toolchain.Output{ExitCode: 2}

	assert.Equal(t, 2, h.run("build"))
	assert.NotContains(t, h.stdout.String(), "built.")
	assert.Contains(t, h.stderr.String(), "failed with exit status 2")
	assert.Len(t, h.runner.Calls(), 1)
}

func TestBuildCompilerNotInstalled(t *testing.T) {
	h := newHarness(t)
	h.writeFile("Lemonfile", "# Lemonfile\n")
	h.runner.Err = toolchain.ErrNotFound

	assert.Equal(t, 1, h.run("build"))
	assert.Contains(t, h.stderr.String(), "executable not found")
}

func TestBuildUsesConfiguredCompiler(t *testing.T) {
	h := newHarness(t)
	h.writeFile("Lemonfile", "# Lemonfile\n")
	t.Setenv("LEMONADE_COMPILER", "lemoc-nightly")

	require.Equal(t, 0, h.run("build"))
	assert.Equal(t, [][]string{{"lemoc-nightly", "build", "Lemonfile"}}, h.runner.Calls())
}
