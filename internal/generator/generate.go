// Where: internal/generator/generate.go
// What: Generate or verify one include file from one shader source.
// Why: Share the write/skip/compare logic between build and check commands.
package generator

import (
	"fmt"
	"path/filepath"

	shader "github.com/poruru-code/shader-embed/internal/embed"
	"github.com/poruru-code/shader-embed/internal/infra/fileops"
)

// Status describes what happened to a job's output.
type Status string

const (
	StatusWritten   Status = "written"
	StatusUnchanged Status = "unchanged"
	StatusUpToDate  Status = "up-to-date"
	StatusStale     Status = "stale"
	StatusMissing   Status = "missing"
)

// Job is an embed job plus output shaping.
type Job struct {
	shader.Job
	Format Format
	Symbol string
}

// Name is the short label used in reports.
func (j Job) Name() string {
	return filepath.Base(j.InputPath)
}

// Content renders the output bytes without touching the output path.
func (j Job) Content() ([]byte, error) {
	src, err := j.Source()
	if err != nil {
		return nil, err
	}
	return Render(j.Format, j.InputPath, j.Symbol, src, j.Delimiter)
}

// Options controls how Generate writes.
type Options struct {
	// CreateDirs creates missing parent directories of the output.
	CreateDirs bool
	// Force rewrites outputs even when their content is already identical.
	Force bool
}

// Result is the outcome of one job.
type Result struct {
	Job    Job
	Status Status
	Digest string
	Size   int
}

// Generate renders the job and writes it unless the output already holds the
// same bytes. Identical outputs keep their mtime.
func Generate(job Job, opts Options) (Result, error) {
	content, err := job.Content()
	if err != nil {
		return Result{Job: job}, err
	}
	res := Result{Job: job, Digest: fileops.Digest(content), Size: len(content)}

	if !opts.Force {
		same, err := fileops.SameContent(job.OutputPath, content)
		if err != nil {
			return res, fmt.Errorf("compare %s: %w", job.OutputPath, err)
		}
		if same {
			res.Status = StatusUnchanged
			return res, nil
		}
	}

	write := fileops.WriteFileAtomic
	if opts.CreateDirs {
		write = fileops.WriteFileAtomicMkdir
	}
	if err := write(job.OutputPath, content, shader.IncludeFileMode); err != nil {
		return res, fmt.Errorf("write %s: %w", job.OutputPath, err)
	}
	res.Status = StatusWritten
	return res, nil
}

// Check renders the job in memory and compares it with the output on disk.
func Check(job Job) (Result, error) {
	content, err := job.Content()
	if err != nil {
		return Result{Job: job}, err
	}
	res := Result{Job: job, Digest: fileops.Digest(content), Size: len(content)}
	if !fileops.FileExists(job.OutputPath) {
		res.Status = StatusMissing
		return res, nil
	}
	same, err := fileops.SameContent(job.OutputPath, content)
	if err != nil {
		return res, fmt.Errorf("compare %s: %w", job.OutputPath, err)
	}
	if same {
		res.Status = StatusUpToDate
	} else {
		res.Status = StatusStale
	}
	return res, nil
}
