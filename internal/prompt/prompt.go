// Package prompt provides user interaction primitives using charmbracelet/huh.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrCanceled is returned when the user cancels a prompt.
var ErrCanceled = errors.New("canceled by user")

// Prompter abstracts user interaction for testability.
//
//go:generate go run github.com/matryer/moq@latest -pkg mocks -out mocks/prompter.go . Prompter
type Prompter interface {
	// Print outputs text to the user.
	Print(message string)

	// Input prompts for a line of text. validate, when non-nil, rejects
	// values until it returns nil.
	Input(title, placeholder string, validate func(string) error) (string, error)

	// Confirm prompts for yes/no confirmation.
	Confirm(title, description string) (bool, error)
}

// HuhPrompter implements Prompter using charmbracelet/huh for interactive forms.
type HuhPrompter struct {
	out        io.Writer
	accessible bool
}

// New creates a new HuhPrompter for interactive terminal prompts. Without a
// terminal on stdin, forms fall back to huh's line-based accessible mode.
func New() *HuhPrompter {
	return &HuhPrompter{out: os.Stdout, accessible: !isTerminal(os.Stdin)}
}

// Print outputs text to the user.
func (p *HuhPrompter) Print(message string) {
	fmt.Fprintln(p.out, message)
}

// Input prompts for a line of text.
func (p *HuhPrompter) Input(title, placeholder string, validate func(string) error) (string, error) {
	var value string

	field := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)
	if validate != nil {
		field = field.Validate(func(s string) error {
			return validate(strings.TrimSpace(s))
		})
	}

	if err := p.run(field); err != nil {
		return "", wrap("input prompt", err)
	}
	return strings.TrimSpace(value), nil
}

// Confirm prompts for yes/no confirmation.
func (p *HuhPrompter) Confirm(title, description string) (bool, error) {
	var confirmed bool

	field := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	if err := p.run(field); err != nil {
		return false, wrap("confirm prompt", err)
	}
	return confirmed, nil
}

func (p *HuhPrompter) run(field huh.Field) error {
	return huh.NewForm(huh.NewGroup(field)).
		WithAccessible(p.accessible).
		WithShowHelp(false).
		Run()
}

func wrap(what string, err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCanceled
	}
	return fmt.Errorf("%s: %w", what, err)
}
