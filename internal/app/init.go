// Where: internal/app/init.go
// What: `shaderpack init` handler.
// Why: Scaffold a manifest from the shader sources already in a project.
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/poruru-code/shader-embed/internal/config"
	"github.com/poruru-code/shader-embed/internal/infra/fileops"
	"github.com/poruru-code/shader-embed/internal/meta"
	"github.com/poruru-code/shader-embed/internal/ui"
)

var errInitAborted = errors.New("init aborted")

func runInit(cli CLI, deps Dependencies) int {
	cmd := cli.Init
	console := ui.New(deps.Out)
	dir := deps.path(cmd.Dir)

	path, err := initManifest(cmd, deps, dir)
	if errors.Is(err, errInitAborted) {
		console.Info("Existing manifest left unchanged")
		return 1
	}
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	console.Success("Wrote " + path)
	return 0
}

func initManifest(cmd InitCmd, deps Dependencies, dir string) (string, error) {
	found, err := discoverShaders(dir)
	if err != nil {
		return "", err
	}
	if len(found) == 0 {
		return "", fmt.Errorf("no *%s files under %s", meta.ShaderExt, dir)
	}

	interactive := deps.Interactive()
	path := filepath.Join(dir, meta.ManifestFile)
	if fileops.FileExists(path) && !cmd.Force {
		if !interactive {
			return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		ok, err := deps.Prompter.Confirm(fmt.Sprintf("Overwrite %s?", meta.ManifestFile))
		if err != nil {
			return "", err
		}
		if !ok {
			return "", errInitAborted
		}
	}

	selected := found
	if interactive && !cmd.Yes {
		selected, err = deps.Prompter.MultiSelect("Shaders to embed", found)
		if err != nil {
			return "", err
		}
		if len(selected) == 0 {
			return "", errors.New("no shaders selected")
		}
	}

	m := config.Manifest{
		Version:    config.ManifestVersion,
		OutputDir:  cmd.OutputDir,
		CreateDirs: true,
	}
	bases := map[string]int{}
	for _, rel := range selected {
		bases[filepath.Base(rel)]++
	}
	for _, rel := range selected {
		entry := config.ShaderEntry{Input: rel}
		if bases[filepath.Base(rel)] > 1 {
			entry.Output = strings.ReplaceAll(rel, "/", "_") + ".inc"
		}
		m.Shaders = append(m.Shaders, entry)
	}
	if _, err := m.Jobs(dir); err != nil {
		return "", err
	}
	if err := config.SaveManifest(path, m); err != nil {
		return "", err
	}
	return path, nil
}

// discoverShaders lists shader sources under dir as slash-separated relative
// paths, skipping hidden directories.
func discoverShaders(dir string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != dir && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != meta.ShaderExt {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		found = append(found, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(found)
	return found, err
}
