// Where: internal/config/manifest.go
// What: shaderpack manifest types and job resolution.
// Why: Describe a batch of shader embeds declaratively next to the CMake project.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	shader "github.com/poruru-code/shader-embed/internal/embed"
	"github.com/poruru-code/shader-embed/internal/generator"
)

// ManifestVersion is the only supported manifest schema version.
const ManifestVersion = 1

// Manifest is the decoded shaders.yml.
type Manifest struct {
	Version    int           `yaml:"version"`
	Delimiter  string        `yaml:"delimiter,omitempty"`
	Format     string        `yaml:"format,omitempty"`
	OutputDir  string        `yaml:"output_dir,omitempty"`
	CreateDirs bool          `yaml:"create_dirs,omitempty"`
	Shaders    []ShaderEntry `yaml:"shaders"`
}

// ShaderEntry is one shader source and its generated include.
type ShaderEntry struct {
	Input     string `yaml:"input"`
	Output    string `yaml:"output,omitempty"`
	Delimiter string `yaml:"delimiter,omitempty"`
	Format    string `yaml:"format,omitempty"`
	Symbol    string `yaml:"symbol,omitempty"`
}

// LoadManifest reads, validates and decodes a manifest. A .env file next to
// the manifest is loaded first so its variables are visible to Jobs.
func LoadManifest(path string) (Manifest, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	if err := loadDotEnv(filepath.Dir(path)); err != nil {
		return Manifest{}, err
	}
	if err := validateManifest(payload); err != nil {
		return Manifest{}, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(payload, &m); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	return m, nil
}

// SaveManifest writes m as YAML.
func SaveManifest(path string, m Manifest) error {
	payload, err := yaml.Marshal(&m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

// Jobs resolves every entry into a generator job. Relative inputs resolve
// against baseDir; relative outputs against output_dir (itself relative to
// baseDir). All entry errors are reported together.
func (m Manifest) Jobs(baseDir string) ([]generator.Job, error) {
	outputDir := baseDir
	if m.OutputDir != "" {
		dir, err := expandPath(m.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("output_dir: %w", err)
		}
		outputDir = resolve(baseDir, dir)
	}

	jobs := make([]generator.Job, 0, len(m.Shaders))
	seen := map[string]int{}
	var errs []error
	for i, entry := range m.Shaders {
		job, err := m.job(entry, baseDir, outputDir)
		if err != nil {
			errs = append(errs, fmt.Errorf("shaders[%d]: %w", i, err))
			continue
		}
		key := filepath.Clean(job.OutputPath)
		if prev, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("shaders[%d]: output %s already produced by shaders[%d]", i, job.OutputPath, prev))
			continue
		}
		seen[key] = i
		jobs = append(jobs, job)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (m Manifest) job(entry ShaderEntry, baseDir, outputDir string) (generator.Job, error) {
	formatName := entry.Format
	if formatName == "" {
		formatName = m.Format
	}
	format, err := generator.ParseFormat(formatName)
	if err != nil {
		return generator.Job{}, err
	}

	tag := entry.Delimiter
	if tag == "" {
		tag = m.Delimiter
	}
	delimiter := shader.Delimiter{Tag: tag}
	if err := delimiter.Validate(); err != nil {
		return generator.Job{}, err
	}
	if err := generator.ValidateSymbol(entry.Symbol); err != nil {
		return generator.Job{}, err
	}

	input, err := expandPath(entry.Input)
	if err != nil {
		return generator.Job{}, fmt.Errorf("input: %w", err)
	}
	output := DefaultOutputName(input, format)
	if entry.Output != "" {
		if output, err = expandPath(entry.Output); err != nil {
			return generator.Job{}, fmt.Errorf("output: %w", err)
		}
	}

	return generator.Job{
		Job: shader.Job{
			InputPath:  resolve(baseDir, input),
			OutputPath: resolve(outputDir, output),
			Delimiter:  delimiter,
		},
		Format: format,
		Symbol: entry.Symbol,
	}, nil
}

// DefaultOutputName is the include name used when an entry has no output:
// "sha256d.metal" becomes "sha256d.metal.inc" (raw) or "sha256d.metal.h" (header).
func DefaultOutputName(input string, format generator.Format) string {
	ext := ".inc"
	if format == generator.FormatHeader {
		ext = ".h"
	}
	return filepath.Base(input) + ext
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
