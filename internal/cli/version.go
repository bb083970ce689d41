package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lemonade-lang/lemonade/internal/branding"
)

func versionCommand() Command {
	return Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Flags: func(fs *pflag.FlagSet) {
			fs.Bool("short", false, "Print version number only")
			fs.Bool("json", false, "Print version info as JSON")
		},
		Run: runVersion,
	}
}

func runVersion(_ context.Context, env *Env, _ []string, flags *pflag.FlagSet) error {
	short, _ := flags.GetBool("short")
	asJSON, _ := flags.GetBool("json")

	if short {
		fmt.Fprintln(env.Stdout, env.Build.Version)
		return nil
	}

	if asJSON {
		info := map[string]string{
			"version": env.Build.Version,
			"commit":  env.Build.Commit,
			"date":    env.Build.Date,
		}
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling version info: %w", err)
		}
		fmt.Fprintln(env.Stdout, string(out))
		return nil
	}

	fmt.Fprintf(env.Stdout, "%s version %s (commit: %s, built: %s)\n",
		branding.CLIName(), env.Build.Version, env.Build.Commit, env.Build.Date)
	return nil
}
