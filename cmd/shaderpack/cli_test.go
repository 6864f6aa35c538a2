// Where: cmd/shaderpack/cli_test.go
// What: Tests for CLI dependency wiring.
// Why: Ensure buildDependencies is deterministic.
package main

import (
	"errors"
	"testing"
)

func TestBuildDependenciesSuccess(t *testing.T) {
	orig := getwd
	t.Cleanup(func() { getwd = orig })
	getwd = func() (string, error) { return "/project", nil }

	deps, err := buildDependencies()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deps.WorkDir != "/project" {
		t.Fatalf("unexpected work dir: %s", deps.WorkDir)
	}
	if deps.Context == nil || deps.Out == nil || deps.ErrOut == nil {
		t.Fatalf("expected context and writers to be set")
	}
	if deps.Prompter == nil || deps.Interactive == nil {
		t.Fatalf("expected prompter wiring")
	}
}

func TestBuildDependenciesGetwdError(t *testing.T) {
	orig := getwd
	t.Cleanup(func() { getwd = orig })
	getwd = func() (string, error) { return "", errors.New("boom") }

	if _, err := buildDependencies(); err == nil {
		t.Fatal("expected error")
	}
}
