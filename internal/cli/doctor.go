package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lemonade-lang/lemonade/internal/branding"
	"github.com/lemonade-lang/lemonade/internal/project"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	infoStyle = lipgloss.NewStyle().Faint(true)
)

const (
	markOK   = "[ OK ]"
	markWarn = "[WARN]"
	markMiss = "[MISS]"
	markFail = "[FAIL]"
	markInfo = "[INFO]"
)

func doctorCommand() Command {
	return Command{
		Use:               "doctor",
		Short:             "Check the compiler, project and configuration",
		Long:              `Run diagnostic checks on the lemoc installation, the project in the current directory, and the user configuration.`,
		Args:              cobra.NoArgs,
		Run:               runDoctor,
		TolerateConfigErr: true,
	}
}

// doctorReport counts problems while writing status lines.
type doctorReport struct {
	w        io.Writer
	problems int
}

func (r *doctorReport) line(mark, format string, args ...any) {
	style := infoStyle
	switch mark {
	case markOK:
		style = okStyle
	case markWarn:
		style = warnStyle
	case markMiss, markFail:
		style = failStyle
		r.problems++
	}
	fmt.Fprintf(r.w, "  %s %s\n", style.Render(mark), fmt.Sprintf(format, args...))
}

func runDoctor(ctx context.Context, env *Env, _ []string, _ *pflag.FlagSet) error {
	r := &doctorReport{w: env.Stdout}

	fmt.Fprintln(env.Stdout, "Compiler check:")
	checkCompiler(ctx, env, r)

	fmt.Fprintln(env.Stdout, "Project check:")
	checkProject(env, r)

	fmt.Fprintln(env.Stdout, "Config check:")
	checkConfig(env, r)

	if r.problems > 0 {
		return fmt.Errorf("doctor found %d problem(s)", r.problems)
	}
	return nil
}

func checkCompiler(ctx context.Context, env *Env, r *doctorReport) {
	bin := env.Compiler.Binary
	path, err := env.Compiler.Locate()
	if err != nil {
		r.line(markMiss, "%s not found on PATH", bin)
		return
	}
	r.line(markOK, "%s found at %s", bin, path)

	version, err := env.Compiler.Version(ctx)
	if err != nil {
		r.line(markWarn, "could not determine %s version: %v", bin, err)
		return
	}

	minimum := env.Config.MinCompilerVersion()
	if minimum == "" {
		r.line(markOK, "%s version %s", bin, version)
		return
	}
	required, err := semver.NewVersion(minimum)
	if err != nil {
		r.line(markFail, "min_compiler_version %q is not a version: %v", minimum, err)
		return
	}
	if version.LessThan(required) {
		r.line(markFail, "%s version %s is older than required %s", bin, version, required)
		return
	}
	r.line(markOK, "%s version %s (>= %s)", bin, version, required)
}

func checkProject(env *Env, r *doctorReport) {
	descriptor := env.Layout.Descriptor
	state, err := project.Inspect(env.Dir, env.Layout)
	if err != nil {
		r.line(markFail, "%v", err)
		return
	}
	switch state {
	case project.StatePresent:
		r.line(markOK, "%s found in %s", descriptor, env.Dir)
	case project.StateEmpty:
		r.line(markWarn, "%s in %s is empty", descriptor, env.Dir)
	default:
		r.line(markInfo, "no %s in %s (run '%s new' to create one)", descriptor, env.Dir, branding.CLIName())
	}
}

func checkConfig(env *Env, r *doctorReport) {
	path := env.Config.Path()
	if env.ConfigErr != nil {
		r.line(markFail, "%v", env.ConfigErr)
		return
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		r.line(markInfo, "no config file at %s, using defaults", path)
		return
	}
	r.line(markOK, "%s is valid", path)
}
