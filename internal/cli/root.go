package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lemonade-lang/lemonade/internal/branding"
)

// Handler runs one command. flags holds the command's own parsed flags.
type Handler func(ctx context.Context, env *Env, args []string, flags *pflag.FlagSet) error

// Command is one row of the command table.
type Command struct {
	Use   string
	Short string
	Long  string
	Args  cobra.PositionalArgs
	// Flags registers command-local flags.
	Flags func(fs *pflag.FlagSet)
	Run   Handler
	// TolerateConfigErr lets the command run on defaults when the config
	// file is invalid; the load error is exposed as Env.ConfigErr.
	TolerateConfigErr bool
	Sub               []Command
}

// Commands returns the command table.
func Commands() []Command {
	return []Command{
		newCommand(),
		buildCommand(),
		checkCommand(),
		versionCommand(),
		configCommand(),
		doctorCommand(),
	}
}

// NewRootCmd builds a fresh command tree for app.
func NewRootCmd(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           branding.CLIName(),
		Short:         branding.Description(),
		Long:          branding.DisplayName() + ` scaffolds lemon projects and drives the lemoc compiler to build and check them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	root.SetOut(app.stdout())
	root.SetErr(app.stderr())

	for _, c := range Commands() {
		root.AddCommand(bind(app, c, &verbose))
	}
	return root
}

// bind turns a table row into a cobra command whose RunE builds the Env.
func bind(app *App, c Command, verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   c.Use,
		Short: c.Short,
		Long:  c.Long,
		Args:  c.Args,
	}
	if c.Flags != nil {
		c.Flags(cmd.Flags())
	}
	if c.Run != nil {
		run := c.Run
		tolerate := c.TolerateConfigErr
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			env, err := app.newEnv(*verbose, tolerate)
			if err != nil {
				return err
			}
			env.Logger.Debug("running command", "command", cmd.CommandPath(), "args", args)
			return run(cmd.Context(), env, args, cmd.Flags())
		}
	}
	for _, sub := range c.Sub {
		cmd.AddCommand(bind(app, sub, verbose))
	}
	return cmd
}

// Run executes the CLI with args and returns the process exit status.
// Errors are reported on the app's stderr.
func Run(ctx context.Context, app *App, args []string) int {
	root := NewRootCmd(app)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	Report(app.stderr(), err)
	return ExitCode(err)
}

// Execute runs the CLI against the process environment with build info
// injected via ldflags and returns the exit status.
func Execute(version, commit, date string) int {
	app := &App{
		Build: BuildInfo{Version: version, Commit: commit, Date: date},
	}
	return Run(context.Background(), app, os.Args[1:])
}
