// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep the binary name and file conventions in one place.
package meta

const (
	AppName = "shaderpack"

	// File Layout
	ManifestFile = "shaders.yml"
	ShaderExt    = ".metal"
)
