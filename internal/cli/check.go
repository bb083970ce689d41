package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lemonade-lang/lemonade/internal/project"
)

func checkCommand() Command {
	return Command{
		Use:   "check [file]",
		Short: "Check a lemon file for include errors",
		Long: `Run "lemoc check" on a file, the Lemonfile by default.

Diagnostics are printed only when the check fails.`,
		Args: cobra.MaximumNArgs(1),
		Run:  runCheck,
	}
}

func runCheck(ctx context.Context, env *Env, args []string, _ *pflag.FlagSet) error {
	file := env.Layout.Descriptor
	if len(args) == 1 {
		file = args[0]
	}

	if err := project.RequireFile(env.Dir, file); err != nil {
		if errors.Is(err, project.ErrFileNotFound) {
			return precondition(err, "%s does not exist.", file)
		}
		return err
	}

	out, err := env.Compiler.Check(ctx, env.Dir, file)
	if err != nil {
		return err
	}
	if out.Success() {
		fmt.Fprintln(env.Stdout, "No errors found.")
		return nil
	}

	env.Logger.Debug("check failed", "file", file, "exit_code", out.ExitCode)
	io.WriteString(env.Stdout, out.Stderr)
	return &ExitError{Code: 1}
}
