// Where: cmd/shaderpack/main.go
// What: shaderpack entrypoint.
// Why: Execute shaderpack commands with configured dependencies.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/poruru-code/shader-embed/internal/app"
)

func main() {
	deps, err := buildDependencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(deps.Context, os.Interrupt, syscall.SIGTERM)
	deps.Context = ctx

	code := app.Run(os.Args[1:], deps)
	stop()
	os.Exit(code)
}
