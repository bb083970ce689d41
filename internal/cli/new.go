package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lemonade-lang/lemonade/internal/project"
)

func newCommand() Command {
	return Command{
		Use:   "new",
		Short: "Create a new Lemonfile with a starter source file",
		Long: `Create a Lemonfile and a starter source file in the current directory.

An existing, non-empty Lemonfile is never overwritten.`,
		Args: cobra.NoArgs,
		Run:  runNew,
	}
}

func runNew(_ context.Context, env *Env, _ []string, _ *pflag.FlagSet) error {
	result, err := project.Init(env.Dir, env.Layout)
	if errors.Is(err, project.ErrDescriptorExists) {
		return precondition(err, "%s already exists. Please remove it or use a different name.", env.Layout.Descriptor)
	}
	if err != nil {
		return fmt.Errorf("creating project: %w", err)
	}

	env.Logger.Debug("project created", "dir", result.Dir, "files", result.Files)
	fmt.Fprintf(env.Stdout, "%s and %s created.\n", env.Layout.Descriptor, env.Layout.Starter)
	return nil
}
