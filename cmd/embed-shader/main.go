// Where: cmd/embed-shader/main.go
// What: embed-shader entrypoint.
// Why: Pre-build step invoked by CMake once per shader source.
package main

import (
	"os"

	"github.com/poruru-code/shader-embed/internal/app"
)

func main() {
	os.Exit(app.RunEmbedShader(os.Args[0], os.Args[1:], os.Stderr))
}
