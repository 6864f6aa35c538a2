// Where: cmd/shaderpack/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"context"
	"os"

	"github.com/poruru-code/shader-embed/internal/app"
	"github.com/poruru-code/shader-embed/internal/interaction"
)

var getwd = os.Getwd

// buildDependencies constructs the runtime dependencies for the CLI.
func buildDependencies() (app.Dependencies, error) {
	workDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}
	return app.Dependencies{
		Context:  context.Background(),
		Out:      os.Stdout,
		ErrOut:   os.Stderr,
		WorkDir:  workDir,
		Prompter: interaction.HuhPrompter{},
		Interactive: func() bool {
			return interaction.IsTerminal(os.Stdin) && interaction.IsTerminal(os.Stdout)
		},
	}, nil
}
