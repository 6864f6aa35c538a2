// Where: internal/embed/embed.go
// What: Wrap shader source into a raw string literal include.
// Why: Let native builds #include shader text compiled straight into the binary.
package embed

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/poruru-code/shader-embed/internal/infra/fileops"
)

var (
	ErrDelimiterCollision = errors.New("shader source contains the closing delimiter")
	ErrNotWrapped         = errors.New("content is not a wrapped raw string literal")
)

// IncludeFileMode is the permission of generated include files.
const IncludeFileMode = 0o644

// Job is a single embed request. It lives for one invocation only.
type Job struct {
	InputPath  string
	OutputPath string
	Delimiter  Delimiter
}

// Wrap surrounds src with the opening and closing marker lines.
// The source is copied verbatim; no newline is added before the closing marker.
func Wrap(src []byte, d Delimiter) []byte {
	open, closing := d.Open(), d.Close()
	out := make([]byte, 0, len(open)+len(src)+len(closing))
	out = append(out, open...)
	out = append(out, src...)
	out = append(out, closing...)
	return out
}

// Unwrap strips the marker lines added by Wrap and returns the original source.
func Unwrap(wrapped []byte, d Delimiter) ([]byte, error) {
	open, closing := []byte(d.Open()), []byte(d.Close())
	if len(wrapped) < len(open)+len(closing) ||
		!bytes.HasPrefix(wrapped, open) ||
		!bytes.HasSuffix(wrapped, closing) {
		return nil, fmt.Errorf("%w (delimiter %s)", ErrNotWrapped, d)
	}
	src := wrapped[len(open) : len(wrapped)-len(closing)]
	return bytes.Clone(src), nil
}

// CheckCollision reports ErrDelimiterCollision when src would terminate the literal early.
func CheckCollision(src []byte, d Delimiter) error {
	terminator := d.Terminator()
	if idx := bytes.Index(src, []byte(terminator)); idx >= 0 {
		line := bytes.Count(src[:idx], []byte("\n")) + 1
		return fmt.Errorf("%w %q at line %d", ErrDelimiterCollision, terminator, line)
	}
	return nil
}

// Source reads the job input and verifies it can be embedded with the job delimiter.
func (j Job) Source() ([]byte, error) {
	if err := j.Delimiter.Validate(); err != nil {
		return nil, err
	}
	src, err := fileops.ReadFile(j.InputPath)
	if err != nil {
		return nil, fmt.Errorf("read shader source: %w", err)
	}
	if err := CheckCollision(src, j.Delimiter); err != nil {
		return nil, fmt.Errorf("%s: %w", j.InputPath, err)
	}
	return src, nil
}

// Load returns the wrapped include content. Nothing is written.
func (j Job) Load() ([]byte, error) {
	src, err := j.Source()
	if err != nil {
		return nil, err
	}
	return Wrap(src, j.Delimiter), nil
}

// Run reads the input, wraps it, and writes the output file.
// The input is read in full before the output is opened, so a read failure
// leaves the output untouched.
func (j Job) Run() error {
	content, err := j.Load()
	if err != nil {
		return err
	}
	if err := fileops.WriteFileAtomic(j.OutputPath, content, IncludeFileMode); err != nil {
		return fmt.Errorf("write include: %w", err)
	}
	return nil
}

// Embed wraps inputPath with the default METAL_SHADER delimiter into outputPath.
func Embed(inputPath, outputPath string) error {
	return Job{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Delimiter:  DefaultDelimiter(),
	}.Run()
}
