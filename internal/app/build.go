// Where: internal/app/build.go
// What: `shaderpack build` and `shaderpack check` handlers.
// Why: Wire the manifest, workflow, and console together.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/poruru-code/shader-embed/internal/config"
	"github.com/poruru-code/shader-embed/internal/generator"
	"github.com/poruru-code/shader-embed/internal/meta"
	"github.com/poruru-code/shader-embed/internal/ui"
	"github.com/poruru-code/shader-embed/internal/workflows"
)

type loadedManifest struct {
	Path     string
	Manifest config.Manifest
	Jobs     []generator.Job
}

func loadManifestJobs(deps Dependencies, manifestPath string) (loadedManifest, error) {
	path := deps.path(manifestPath)
	m, err := config.LoadManifest(path)
	if err != nil {
		return loadedManifest{}, err
	}
	jobs, err := m.Jobs(filepath.Dir(path))
	if err != nil {
		return loadedManifest{}, fmt.Errorf("%s: %w", path, err)
	}
	return loadedManifest{Path: path, Manifest: m, Jobs: jobs}, nil
}

func runBuild(cli CLI, deps Dependencies) int {
	cmd := cli.Build
	loaded, err := loadManifestJobs(deps, cmd.Manifest)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	console := ui.New(deps.Out)
	console.Header("📦", "Embedding shaders:")
	console.Item("Manifest", loaded.Path)

	report, err := workflows.NewBuildWorkflow(console).Build(deps.Context, workflows.BuildRequest{
		Jobs: loaded.Jobs,
		Options: generator.Options{
			CreateDirs: loaded.Manifest.CreateDirs,
			Force:      cmd.Force,
		},
		Parallel: cmd.Jobs,
	})
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	console.Success(fmt.Sprintf("%d written, %d unchanged",
		report.Count(generator.StatusWritten),
		report.Count(generator.StatusUnchanged),
	))
	return 0
}

func runCheck(cli CLI, deps Dependencies) int {
	cmd := cli.Check
	loaded, err := loadManifestJobs(deps, cmd.Manifest)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	console := ui.New(deps.Out)
	console.Header("🔍", "Checking generated includes:")
	console.Item("Manifest", loaded.Path)

	report, err := workflows.NewBuildWorkflow(console).Check(deps.Context, workflows.BuildRequest{
		Jobs:     loaded.Jobs,
		Parallel: cmd.Jobs,
	})
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	if report.Stale() {
		stale := report.Count(generator.StatusStale) + report.Count(generator.StatusMissing)
		console.Error(fmt.Sprintf("%d include(s) out of date; run `%s build`", stale, meta.AppName))
		return 1
	}
	console.Success(fmt.Sprintf("%d include(s) up to date", report.Count(generator.StatusUpToDate)))
	return 0
}
