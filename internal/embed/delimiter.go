// Where: internal/embed/delimiter.go
// What: Raw string literal delimiter markers.
// Why: Keep the exact opening/closing byte sequences in one place.
package embed

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultTag is the d-char-sequence used when no tag is configured.
const DefaultTag = "METAL_SHADER"

// C++ limits the d-char-sequence of a raw string literal to 16 characters.
const maxTagLength = 16

var ErrInvalidDelimiter = errors.New("invalid raw string delimiter")

// Delimiter describes the custom marker pair of a raw string literal.
// The zero value uses DefaultTag.
type Delimiter struct {
	Tag string
}

// DefaultDelimiter returns the METAL_SHADER delimiter.
func DefaultDelimiter() Delimiter {
	return Delimiter{Tag: DefaultTag}
}

func (d Delimiter) tag() string {
	if d.Tag == "" {
		return DefaultTag
	}
	return d.Tag
}

// Open returns the opening marker line, e.g. `R"METAL_SHADER(` plus newline.
func (d Delimiter) Open() string {
	return `R"` + d.tag() + "(\n"
}

// Close returns the closing marker line, e.g. `)METAL_SHADER"` plus newline.
func (d Delimiter) Close() string {
	return d.Terminator() + "\n"
}

// Terminator is the sequence that ends the literal. Shader text must not contain it.
func (d Delimiter) Terminator() string {
	return ")" + d.tag() + `"`
}

func (d Delimiter) String() string {
	return d.tag()
}

// Validate checks the tag against the raw string d-char rules.
func (d Delimiter) Validate() error {
	tag := d.tag()
	if len(tag) > maxTagLength {
		return fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidDelimiter, tag, maxTagLength)
	}
	if idx := strings.IndexFunc(tag, invalidTagRune); idx >= 0 {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidDelimiter, tag, tag[idx])
	}
	return nil
}

func invalidTagRune(r rune) bool {
	switch r {
	case ' ', '(', ')', '\\', '"':
		return true
	}
	return r < 0x20 || r > 0x7e
}
