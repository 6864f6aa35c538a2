// Where: internal/app/embed.go
// What: `shaderpack embed` and `shaderpack unwrap` handlers.
// Why: Single-file operations with format and delimiter options.
package app

import (
	"fmt"

	shader "github.com/poruru-code/shader-embed/internal/embed"
	"github.com/poruru-code/shader-embed/internal/generator"
	"github.com/poruru-code/shader-embed/internal/infra/fileops"
	"github.com/poruru-code/shader-embed/internal/ui"
)

func runEmbed(cli CLI, deps Dependencies) int {
	cmd := cli.Embed
	format, err := generator.ParseFormat(cmd.Format)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	job := generator.Job{
		Job: shader.Job{
			InputPath:  deps.path(cmd.Input),
			OutputPath: deps.path(cmd.Output),
			Delimiter:  shader.Delimiter{Tag: cmd.Delimiter},
		},
		Format: format,
		Symbol: cmd.Symbol,
	}

	res, err := generator.Generate(job, generator.Options{CreateDirs: cmd.Mkdir, Force: cmd.Force})
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	ui.New(deps.Out).Result(res)
	return 0
}

func runUnwrap(cli CLI, deps Dependencies) int {
	cmd := cli.Unwrap
	wrapped, err := fileops.ReadFile(deps.path(cmd.Input))
	if err != nil {
		return exitWithError(deps.ErrOut, fmt.Errorf("read include: %w", err))
	}
	src, err := shader.Unwrap(wrapped, shader.Delimiter{Tag: cmd.Delimiter})
	if err != nil {
		return exitWithError(deps.ErrOut, fmt.Errorf("%s: %w", cmd.Input, err))
	}

	if cmd.Output == "" {
		if _, err := deps.Out.Write(src); err != nil {
			return exitWithError(deps.ErrOut, err)
		}
		return 0
	}
	if err := fileops.WriteFileAtomic(deps.path(cmd.Output), src, shader.IncludeFileMode); err != nil {
		return exitWithError(deps.ErrOut, fmt.Errorf("write shader source: %w", err))
	}
	return 0
}
