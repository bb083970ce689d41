package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lemonade-lang/lemonade/internal/config"
	"github.com/lemonade-lang/lemonade/internal/logging"
	"github.com/lemonade-lang/lemonade/internal/project"
	"github.com/lemonade-lang/lemonade/internal/toolchain"
)

// BuildInfo is injected via ldflags at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// App carries the process-level dependencies of the CLI. Zero values select
// the real implementations: the current directory, os.Stdout/os.Stderr, the
// exec runner and the config file under ~/.lemonade.
type App struct {
	Dir        string
	Stdout     io.Writer
	Stderr     io.Writer
	Runner     toolchain.Runner
	ConfigPath string
	Build      BuildInfo
}

// Env is what a command handler operates on.
type Env struct {
	Dir      string
	Layout   project.Layout
	Compiler *toolchain.Compiler
	Config   *config.Config
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Build    BuildInfo

	// ConfigErr is set when the config file failed to load and the command
	// asked to continue on defaults.
	ConfigErr error
}

func (a *App) stdout() io.Writer {
	if a.Stdout == nil {
		return os.Stdout
	}
	return a.Stdout
}

func (a *App) stderr() io.Writer {
	if a.Stderr == nil {
		return os.Stderr
	}
	return a.Stderr
}

// newEnv resolves configuration and wires the dependencies for one command.
func (a *App) newEnv(verbose, tolerateConfigErr bool) (*Env, error) {
	dir := a.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
		dir = wd
	}

	configPath := a.ConfigPath
	if configPath == "" {
		configPath = config.FilePath()
	}

	env := &Env{
		Dir:    dir,
		Stdout: a.stdout(),
		Stderr: a.stderr(),
		Build:  a.Build,
	}

	cfg, err := config.LoadFile(configPath)
	if err != nil {
		if !tolerateConfigErr {
			return nil, err
		}
		env.ConfigErr = err
		cfg = config.Defaults(configPath)
	}
	env.Config = cfg

	level, levelErr := logging.ParseLevel(cfg.LogLevel())
	if verbose {
		level = slog.LevelDebug
	}
	env.Logger = logging.New(env.Stderr, level)
	if levelErr != nil {
		env.Logger.Warn("ignoring log level", "error", levelErr)
	}

	layout, err := project.LayoutByName(cfg.Layout())
	if err != nil {
		return nil, err
	}
	env.Layout = layout

	runner := a.Runner
	if runner == nil {
		runner = toolchain.NewExecRunner(env.Logger)
	}
	env.Compiler = toolchain.NewCompiler(cfg.Compiler(), runner)

	env.Logger.Debug("environment ready",
		"dir", env.Dir,
		"config", cfg.Path(),
		"compiler", cfg.Compiler(),
		"layout", cfg.Layout(),
	)
	return env, nil
}
