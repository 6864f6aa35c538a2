// Where: internal/workflows/build.go
// What: Batch build and check workflows over manifest jobs.
// Why: Encapsulate orchestration without CLI concerns.
package workflows

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/poruru-code/shader-embed/internal/generator"
)

// Reporter receives one line per finished job.
type Reporter interface {
	Result(res generator.Result)
}

// BuildRequest captures the inputs required to run a batch.
type BuildRequest struct {
	Jobs    []generator.Job
	Options generator.Options
	// Parallel caps concurrent jobs; zero means runtime.NumCPU().
	Parallel int
}

// Report holds per-job results in request order. Failed jobs have an empty Status.
type Report struct {
	Results []generator.Result
}

// Count returns how many results have the given status.
func (r Report) Count(status generator.Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Stale reports whether a check found any missing or outdated output.
func (r Report) Stale() bool {
	return r.Count(generator.StatusStale)+r.Count(generator.StatusMissing) > 0
}

// BuildWorkflow executes generator jobs concurrently. Every job owns a distinct
// output path, so jobs share no mutable state.
type BuildWorkflow struct {
	Reporter Reporter
}

// NewBuildWorkflow constructs a BuildWorkflow.
func NewBuildWorkflow(reporter Reporter) BuildWorkflow {
	return BuildWorkflow{Reporter: reporter}
}

// Build writes every job's output. All job errors are returned joined.
func (w BuildWorkflow) Build(ctx context.Context, req BuildRequest) (Report, error) {
	return w.run(ctx, req, func(job generator.Job) (generator.Result, error) {
		return generator.Generate(job, req.Options)
	})
}

// Check compares every job's rendered output with the file on disk.
func (w BuildWorkflow) Check(ctx context.Context, req BuildRequest) (Report, error) {
	return w.run(ctx, req, generator.Check)
}

func (w BuildWorkflow) run(
	ctx context.Context,
	req BuildRequest,
	step func(generator.Job) (generator.Result, error),
) (Report, error) {
	results := make([]generator.Result, len(req.Jobs))
	errs := make([]error, len(req.Jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism(req.Parallel, len(req.Jobs)))
	for i, job := range req.Jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				errs[i] = fmt.Errorf("%s: %w", job.Name(), err)
				return nil
			}
			res, err := step(job)
			results[i] = res
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", job.Name(), err)
				return nil
			}
			if w.Reporter != nil {
				w.Reporter.Result(res)
			}
			return nil
		})
	}
	// Job errors are collected per index; one failure does not cancel the rest.
	_ = g.Wait()

	return Report{Results: results}, errors.Join(errs...)
}

func parallelism(requested, jobs int) int {
	n := requested
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > jobs {
		n = jobs
	}
	if n < 1 {
		n = 1
	}
	return n
}
