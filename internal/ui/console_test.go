package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	shader "github.com/poruru-code/shader-embed/internal/embed"
	"github.com/poruru-code/shader-embed/internal/generator"
)

func TestConsolePlainOutput(t *testing.T) {
	var out bytes.Buffer
	c := New(&out)
	if c.Color {
		t.Fatal("buffer must not be treated as a terminal")
	}

	c.Header("📦", "Embedding shaders:")
	c.Item("Manifest", "shaders.yml")
	c.Success("done")
	c.Warn("careful")
	c.Error("failed")

	got := out.String()
	for _, want := range []string{
		"📦 Embedding shaders:\n",
		"   Manifest:          shaders.yml\n",
		"✅ done\n",
		"⚠️  careful\n",
		"❌ failed\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in %q", want, got)
		}
	}
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("unexpected ANSI codes: %q", got)
	}
}

func TestConsoleColorAndResult(t *testing.T) {
	var out bytes.Buffer
	c := &Console{Out: &out, Color: true}
	c.Result(generator.Result{
		Job: generator.Job{Job: shader.Job{
			InputPath:  "shaders/k.metal",
			OutputPath: "gen/k.metal.inc",
		}},
		Status: generator.StatusWritten,
	})

	got := out.String()
	if !strings.Contains(got, "k.metal") || !strings.Contains(got, "gen/k.metal.inc") {
		t.Fatalf("unexpected result line %q", got)
	}
	if !strings.Contains(got, ansiGreen+"written"+ansiReset) {
		t.Fatalf("expected colored status in %q", got)
	}
}

func TestNewHonorsNoColor(t *testing.T) {
	orig := IsTerminal
	t.Cleanup(func() { IsTerminal = orig })
	IsTerminal = func(io.Writer) bool { return true }

	t.Setenv("NO_COLOR", "1")
	if New(&bytes.Buffer{}).Color {
		t.Fatal("NO_COLOR must disable color")
	}
}
