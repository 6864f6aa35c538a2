// Where: internal/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Keep `shaderpack init` usable both on a terminal and in CI.
package interaction

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// Prompter defines the interactive questions shaderpack asks.
type Prompter interface {
	MultiSelect(title string, options []string) ([]string, error)
	Confirm(title string) (bool, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var runMultiSelectPrompt = func(title string, options []huh.Option[string], selected *[]string) error {
	return huh.NewMultiSelect[string]().
		Title(title).
		Options(options...).
		Value(selected).
		Run()
}

var runConfirmPrompt = func(title string, confirmed *bool) error {
	return huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(confirmed).
		Run()
}

// HuhPrompter implements Prompter using the huh TUI library.
type HuhPrompter struct{}

// MultiSelect lets the user pick any subset of options. All options start selected.
func (HuhPrompter) MultiSelect(title string, options []string) ([]string, error) {
	if len(options) == 0 {
		return nil, nil
	}
	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt, opt).Selected(true)
	}
	var selected []string
	if err := runMultiSelectPrompt(title, huhOptions, &selected); err != nil {
		return nil, fmt.Errorf("prompt select: %w", err)
	}
	return selected, nil
}

func (HuhPrompter) Confirm(title string) (bool, error) {
	var confirmed bool
	if err := runConfirmPrompt(title, &confirmed); err != nil {
		return false, fmt.Errorf("prompt confirm: %w", err)
	}
	return confirmed, nil
}
