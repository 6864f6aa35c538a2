// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Report which build of the embedder produced a generated include.
package version

import (
	"runtime/debug"
)

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the module version when the binary was installed with
// `go install module@version`, otherwise the short VCS revision with a
// "-dirty" suffix for modified trees. It returns "dev" when nothing is known.
func GetVersion() string {
	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if modified {
		return revision + "-dirty"
	}
	return revision
}
