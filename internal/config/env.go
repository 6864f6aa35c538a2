// Where: internal/config/env.go
// What: Environment handling for manifest paths.
// Why: Let CI and local builds point manifests at different directories.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/poruru-code/shader-embed/internal/infra/fileops"
)

// DotEnvFile is loaded from the manifest directory when present.
const DotEnvFile = ".env"

// loadDotEnv loads dir/.env without overriding variables that are already set.
func loadDotEnv(dir string) error {
	path := filepath.Join(dir, DotEnvFile)
	if !fileops.FileExists(path) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// expandPath expands $VAR and ${VAR}; unset variables are an error.
func expandPath(value string) (string, error) {
	var missing []string
	expanded := os.Expand(value, func(name string) string {
		v, ok := os.LookupEnv(name)
		if !ok {
			missing = append(missing, name)
		}
		return v
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("undefined variable(s) %s in %q", strings.Join(missing, ", "), value)
	}
	return expanded, nil
}
