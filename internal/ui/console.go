// Where: internal/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize emojis, indentation, and color across shaderpack commands.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/poruru-code/shader-embed/internal/generator"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
	ansiDim    = "\x1b[2m"
)

// IsTerminal reports whether w is a terminal device.
var IsTerminal = func(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok || file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Console provides helper methods for formatted output.
// It is safe for concurrent use.
type Console struct {
	Out   io.Writer
	Color bool

	mu sync.Mutex
}

// New creates a new Console writing to out. Color is enabled only for
// terminals and only when NO_COLOR is unset.
func New(out io.Writer) *Console {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &Console{Out: out, Color: !noColor && IsTerminal(out)}
}

func (c *Console) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Console) paint(color, text string) string {
	if !c.Color {
		return text
	}
	return color + text + ansiReset
}

// Header prints a section header with an emoji.
// Example: 📦 Embedding shaders:
func (c *Console) Header(emoji, title string) {
	c.printf("%s %s\n", emoji, title)
}

// Item prints a key-value item with indentation.
// Example:    Manifest:          shaders.yml
func (c *Console) Item(key string, value any) {
	c.printf("   %-18s %v\n", key+":", value)
}

// ItemPlain prints a generic indented line.
func (c *Console) ItemPlain(msg string) {
	c.printf("   %s\n", msg)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	c.printf("✅ %s\n", c.paint(ansiGreen, msg))
}

// Info prints an info message with an arrow.
func (c *Console) Info(msg string) {
	c.printf("➜ %s\n", msg)
}

// Warn prints a warning message.
func (c *Console) Warn(msg string) {
	c.printf("⚠️  %s\n", c.paint(ansiYellow, msg))
}

// Error prints an error message.
func (c *Console) Error(msg string) {
	c.printf("❌ %s\n", c.paint(ansiRed, msg))
}

// Result prints one job outcome. It satisfies workflows.Reporter.
func (c *Console) Result(res generator.Result) {
	status := string(res.Status)
	switch res.Status {
	case generator.StatusWritten, generator.StatusUpToDate:
		status = c.paint(ansiGreen, status)
	case generator.StatusUnchanged:
		status = c.paint(ansiDim, status)
	case generator.StatusStale, generator.StatusMissing:
		status = c.paint(ansiYellow, status)
	}
	c.printf("   %-24s %-12s %s\n", res.Job.Name(), status, res.Job.OutputPath)
}
