package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lemonade-lang/lemonade/internal/project"
)

func buildCommand() Command {
	return Command{
		Use:   "build",
		Short: "Build the Lemonfile",
		Long: `Build the project by running "lemoc build Lemonfile" in the current directory.

The compiler's output is shown as it runs. A failed build exits with the
compiler's exit status.`,
		Args: cobra.NoArgs,
		Run:  runBuild,
	}
}

func runBuild(ctx context.Context, env *Env, _ []string, _ *pflag.FlagSet) error {
	descriptor := env.Layout.Descriptor

	if err := project.RequireDescriptor(env.Dir, env.Layout); err != nil {
		if errors.Is(err, project.ErrDescriptorMissing) {
			return precondition(err, "%s does not exist. Please create one first.", descriptor)
		}
		return err
	}

	out, err := env.Compiler.Build(ctx, env.Dir, descriptor, env.Stdout, env.Stderr)
	if err != nil {
		return err
	}
	if !out.Success() {
		return &ExitError{
			Code: out.ExitCode,
			Err:  fmt.Errorf("%s build %s failed with exit status %d", env.Compiler.Binary, descriptor, out.ExitCode),
		}
	}

	fmt.Fprintf(env.Stdout, "%s built.\n", descriptor)
	return nil
}
