package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lemonade-lang/lemonade/internal/config"
)

func configCommand() Command {
	return Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: `Read and write settings stored at ~/.lemonade/config.yaml.

Known keys: ` + strings.Join(config.Keys(), ", ") + `.
Each key can also be set through a LEMONADE_<KEY> environment variable.`,
		Sub: []Command{
			{
				Use:   "get <key>",
				Short: "Get a configuration value",
				Args:  cobra.ExactArgs(1),
				Run:   runConfigGet,
			},
			{
				Use:               "set <key> <value>",
				Short:             "Set a configuration value",
				Args:              cobra.ExactArgs(2),
				Run:               runConfigSet,
				TolerateConfigErr: true,
			},
		},
	}
}

func runConfigGet(_ context.Context, env *Env, args []string, _ *pflag.FlagSet) error {
	key := args[0]
	if err := knownKey(key); err != nil {
		return err
	}
	fmt.Fprintln(env.Stdout, env.Config.Get(key))
	return nil
}

func runConfigSet(_ context.Context, env *Env, args []string, _ *pflag.FlagSet) error {
	key, value := args[0], args[1]
	if err := knownKey(key); err != nil {
		return err
	}
	if err := env.Config.Set(key, value); err != nil {
		return fmt.Errorf("setting config key %q: %w", key, err)
	}
	fmt.Fprintf(env.Stdout, "Set %s = %s\n", key, value)
	return nil
}

func knownKey(key string) error {
	if !slices.Contains(config.Keys(), key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(config.Keys(), ", "))
	}
	return nil
}
