// Where: internal/app/embed_shader.go
// What: The two-argument embed-shader entrypoint.
// Why: CMake calls this once per shader as a pre-build step and relies on its exact contract.
package app

import (
	"fmt"
	"io"

	shader "github.com/poruru-code/shader-embed/internal/embed"
)

// RunEmbedShader embeds args[0] into args[1] with the METAL_SHADER delimiter.
// Any argument count other than two prints a usage line and returns 1
// without touching the filesystem. Success prints nothing.
func RunEmbedShader(program string, args []string, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintf(errOut, "Usage: %s <input.metal> <output.inc>\n", program)
		return 1
	}
	if err := shader.Embed(args[0], args[1]); err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", program, err)
		return 1
	}
	return 0
}
