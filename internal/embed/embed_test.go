// Where: internal/embed/embed_test.go
// What: Tests for raw string literal wrapping.
// Why: Lock the exact include bytes consumed by the native build.
package embed

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	openMarker  = "R\"METAL_SHADER(\n"
	closeMarker = ")METAL_SHADER\"\n"
)

func TestWrapRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "empty", src: ""},
		{name: "single line", src: "kernel void foo() {}\n"},
		{name: "no trailing newline", src: "kernel void foo() {}"},
		{name: "blank lines", src: "#include <metal_stdlib>\n\n\nusing namespace metal;\n\n"},
		{name: "quotes and backslashes", src: "constant char* s = \"a\\\"b\\\\\";\n// R\"(x)\"\n"},
		{name: "crlf kept", src: "line one\r\nline two\r\n"},
		{name: "utf8", src: "// 和 ñ\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := Wrap([]byte(tc.src), DefaultDelimiter())
			if !bytes.HasPrefix(out, []byte(openMarker)) {
				t.Fatalf("missing opening marker: %q", out)
			}
			if !bytes.HasSuffix(out, []byte(closeMarker)) {
				t.Fatalf("missing closing marker: %q", out)
			}
			got, err := Unwrap(out, DefaultDelimiter())
			if err != nil {
				t.Fatalf("Unwrap: %v", err)
			}
			if string(got) != tc.src {
				t.Fatalf("round trip mismatch: got %q want %q", got, tc.src)
			}
		})
	}
}

func TestWrapExactBytes(t *testing.T) {
	got := string(Wrap([]byte("kernel void foo() {}\n"), DefaultDelimiter()))
	want := "R\"METAL_SHADER(\nkernel void foo() {}\n)METAL_SHADER\"\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if lines := strings.Count(got, "\n"); lines != 3 {
		t.Fatalf("expected 3 lines, got %d", lines)
	}
}

func TestWrapEmptyInput(t *testing.T) {
	got := string(Wrap(nil, Delimiter{}))
	if got != openMarker+closeMarker {
		t.Fatalf("got %q", got)
	}
}

func TestWrapCustomTag(t *testing.T) {
	got := string(Wrap([]byte("x\n"), Delimiter{Tag: "SHA"}))
	if got != "R\"SHA(\nx\n)SHA\"\n" {
		t.Fatalf("got %q", got)
	}
}

func TestUnwrapRejectsForeignContent(t *testing.T) {
	tests := []string{
		"",
		"plain text\n",
		"R\"METAL_SHADER(\n",
		"R\"OTHER(\nx)OTHER\"\n",
	}
	for _, input := range tests {
		if _, err := Unwrap([]byte(input), DefaultDelimiter()); !errors.Is(err, ErrNotWrapped) {
			t.Fatalf("Unwrap(%q) err = %v, want ErrNotWrapped", input, err)
		}
	}
}

func TestCheckCollision(t *testing.T) {
	if err := CheckCollision([]byte("kernel void foo() {}\n"), DefaultDelimiter()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src := []byte("a\nb\nconst char* s = \")METAL_SHADER\"\";\n")
	err := CheckCollision(src, DefaultDelimiter())
	if !errors.Is(err, ErrDelimiterCollision) {
		t.Fatalf("expected ErrDelimiterCollision, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("expected line number in %q", err)
	}
	if err := CheckCollision(src, Delimiter{Tag: "OTHER"}); err != nil {
		t.Fatalf("other tag should not collide: %v", err)
	}
}

func TestDelimiterValidate(t *testing.T) {
	tests := []struct {
		tag     string
		wantErr bool
	}{
		{tag: ""},
		{tag: "METAL_SHADER"},
		{tag: "x"},
		{tag: "ABCDEFGHIJKLMNOP"},
		{tag: "ABCDEFGHIJKLMNOPQ", wantErr: true},
		{tag: "has space", wantErr: true},
		{tag: "paren(", wantErr: true},
		{tag: "back\\slash", wantErr: true},
		{tag: "tab\t", wantErr: true},
	}
	for _, tc := range tests {
		err := Delimiter{Tag: tc.tag}.Validate()
		if tc.wantErr && !errors.Is(err, ErrInvalidDelimiter) {
			t.Fatalf("Validate(%q) = %v, want ErrInvalidDelimiter", tc.tag, err)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("Validate(%q) = %v", tc.tag, err)
		}
	}
}

func TestEmbedWritesInclude(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "foo.metal")
	output := filepath.Join(dir, "foo.inc")
	writeFixture(t, input, "kernel void foo() {}\n")

	if err := Embed(input, output); err != nil {
		t.Fatalf("Embed: %v", err)
	}
	first := readFixture(t, output)
	want := "R\"METAL_SHADER(\nkernel void foo() {}\n)METAL_SHADER\"\n"
	if first != want {
		t.Fatalf("got %q want %q", first, want)
	}

	if err := Embed(input, output); err != nil {
		t.Fatalf("second Embed: %v", err)
	}
	if second := readFixture(t, output); second != first {
		t.Fatalf("second run differs: %q vs %q", second, first)
	}
}

func TestEmbedOverwritesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "foo.metal")
	output := filepath.Join(dir, "foo.inc")
	writeFixture(t, input, "")
	writeFixture(t, output, strings.Repeat("stale content\n", 50))

	if err := Embed(input, output); err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if got := readFixture(t, output); got != openMarker+closeMarker {
		t.Fatalf("got %q", got)
	}
}

func TestEmbedMissingInputLeavesOutputAlone(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "foo.inc")

	err := Embed(filepath.Join(dir, "missing.metal"), output)
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Fatalf("output should not exist, stat err = %v", statErr)
	}

	writeFixture(t, output, "previous")
	if err := Embed(filepath.Join(dir, "missing.metal"), output); err == nil {
		t.Fatal("expected error for missing input")
	}
	if got := readFixture(t, output); got != "previous" {
		t.Fatalf("output modified: %q", got)
	}
}

func TestEmbedUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "foo.metal")
	writeFixture(t, input, "kernel void foo() {}\n")

	err := Embed(input, filepath.Join(dir, "no-such-dir", "foo.inc"))
	if err == nil {
		t.Fatal("expected error for missing output directory")
	}
}

func TestEmbedCollisionWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "foo.metal")
	output := filepath.Join(dir, "foo.inc")
	writeFixture(t, input, "// )METAL_SHADER\"\n")

	err := Embed(input, output)
	if !errors.Is(err, ErrDelimiterCollision) {
		t.Fatalf("expected collision, got %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Fatalf("output should not exist, stat err = %v", statErr)
	}
}

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFixture(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
