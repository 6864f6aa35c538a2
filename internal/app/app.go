// Where: internal/app/app.go
// What: shaderpack CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/poruru-code/shader-embed/internal/interaction"
	"github.com/poruru-code/shader-embed/internal/meta"
	"github.com/poruru-code/shader-embed/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
type Dependencies struct {
	Context  context.Context
	Out      io.Writer
	ErrOut   io.Writer
	WorkDir  string
	Prompter interaction.Prompter
	// Interactive reports whether prompts may be shown.
	Interactive func() bool
}

func (d Dependencies) withDefaults() (Dependencies, error) {
	if d.Context == nil {
		d.Context = context.Background()
	}
	if d.Out == nil {
		d.Out = os.Stdout
	}
	if d.ErrOut == nil {
		d.ErrOut = os.Stderr
	}
	if d.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return d, err
		}
		d.WorkDir = wd
	}
	if d.Prompter == nil {
		d.Prompter = interaction.HuhPrompter{}
	}
	if d.Interactive == nil {
		d.Interactive = func() bool {
			return interaction.IsTerminal(os.Stdin) && interaction.IsTerminal(os.Stdout)
		}
	}
	return d, nil
}

func (d Dependencies) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(d.WorkDir, p)
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Embed   EmbedCmd   `cmd:"" help:"Embed one shader source into an include file"`
	Build   BuildCmd   `cmd:"" help:"Embed every shader listed in the manifest"`
	Check   CheckCmd   `cmd:"" help:"Fail when generated includes are missing or stale"`
	Unwrap  UnwrapCmd  `cmd:"" help:"Recover shader source from a raw include"`
	Init    InitCmd    `cmd:"" help:"Create a manifest from the shaders in a directory"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

type EmbedCmd struct {
	Input     string `arg:"" help:"Shader source file"`
	Output    string `arg:"" help:"Generated include file"`
	Delimiter string `short:"d" default:"METAL_SHADER" env:"SHADERPACK_DELIMITER" help:"Raw string delimiter tag"`
	Format    string `short:"f" default:"raw" enum:"raw,header" env:"SHADERPACK_FORMAT" help:"Output format (raw, header)"`
	Symbol    string `help:"Array name for --format=header (default: k<FileStem>)"`
	Mkdir     bool   `help:"Create missing parent directories of the output"`
	Force     bool   `help:"Rewrite the output even if it is unchanged"`
}

type BuildCmd struct {
	Manifest string `short:"m" default:"shaders.yml" env:"SHADERPACK_MANIFEST" help:"Path to the manifest"`
	Jobs     int    `short:"j" env:"SHADERPACK_JOBS" help:"Maximum parallel jobs (default: number of CPUs)"`
	Force    bool   `help:"Rewrite outputs even if they are unchanged"`
}

type CheckCmd struct {
	Manifest string `short:"m" default:"shaders.yml" env:"SHADERPACK_MANIFEST" help:"Path to the manifest"`
	Jobs     int    `short:"j" env:"SHADERPACK_JOBS" help:"Maximum parallel jobs (default: number of CPUs)"`
}

type UnwrapCmd struct {
	Input     string `arg:"" help:"Generated raw include"`
	Output    string `arg:"" optional:"" help:"Destination file (default: stdout)"`
	Delimiter string `short:"d" default:"METAL_SHADER" env:"SHADERPACK_DELIMITER" help:"Raw string delimiter tag"`
}

type InitCmd struct {
	Dir       string `arg:"" optional:"" default:"." help:"Directory to scan for shader sources"`
	OutputDir string `name:"output-dir" default:"generated" help:"output_dir written to the manifest"`
	Yes       bool   `short:"y" help:"Include every discovered shader without prompting"`
	Force     bool   `help:"Overwrite an existing manifest"`
}

// Run is the main entry point for shaderpack command execution.
// It parses args, dispatches to the handler, and returns the exit code.
func Run(args []string, deps Dependencies) int {
	deps, err := deps.withDefaults()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("Embed GPU shader sources into C++ raw string literal includes."),
		kong.Writers(deps.Out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps); handled {
		return exitCode
	}

	fmt.Fprintf(deps.ErrOut, "unknown command %q\n", command)
	return 1
}

type commandHandler func(CLI, Dependencies) int

// dispatchCommand matches on the command word; kong appends positional
// placeholders such as "embed <input> <output>".
func dispatchCommand(command string, cli CLI, deps Dependencies) (int, bool) {
	handlers := map[string]commandHandler{
		"embed":   runEmbed,
		"build":   runBuild,
		"check":   runCheck,
		"unwrap":  runUnwrap,
		"init":    runInit,
		"version": runVersion,
	}

	name, _, _ := strings.Cut(command, " ")
	if handler, ok := handlers[name]; ok {
		return handler(cli, deps), true
	}
	return 0, false
}

func runVersion(_ CLI, deps Dependencies) int {
	fmt.Fprintln(deps.Out, version.GetVersion())
	return 0
}

func exitWithError(errOut io.Writer, err error) int {
	var parseErr *kong.ParseError
	if errors.As(err, &parseErr) {
		fmt.Fprintf(errOut, "%s: error: %v\n", meta.AppName, err)
		fmt.Fprintf(errOut, "Run \"%s --help\" for usage.\n", meta.AppName)
		return 1
	}
	fmt.Fprintf(errOut, "❌ %v\n", err)
	return 1
}
