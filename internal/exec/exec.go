// Package exec wraps os/exec so git and shell invocations can be faked in
// tests.
package exec

import (
	"context"
	"io"
	"time"
)

// Result holds the output from a completed command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// RunOptions configures command execution.
type RunOptions struct {
	Name   string    // Command name or path (required)
	Args   []string  // Command arguments
	Dir    string    // Working directory (empty = current)
	Env    []string  // Additional environment variables (KEY=VALUE format)
	Stdin  io.Reader // Stdin source (nil = no input)
	Stdout io.Writer // If set, streams stdout here instead of capturing
	Stderr io.Writer // If set, streams stderr here instead of capturing

	// WaitDelay bounds how long Run waits for I/O to drain after the
	// process exits or the context is canceled. Zero waits indefinitely.
	WaitDelay time.Duration

	// Group starts the command in its own process group so cancellation
	// also kills the children it spawned. A grouped command is never in
	// the terminal's foreground group; leave it unset for programs that
	// read the terminal.
	Group bool
}

// Executor runs external commands.
//
//go:generate go run github.com/matryer/moq@latest -pkg mocks -out mocks/executor.go . Executor
type Executor interface {
	// Run executes a command and returns its output.
	// If Stdout/Stderr writers are set in opts, output streams there and
	// Result.Stdout/Stderr will be nil.
	// Returns os/exec.ExitError on non-zero exit (use errors.As to extract).
	Run(ctx context.Context, opts *RunOptions) (*Result, error)

	// LookPath searches for an executable in PATH.
	LookPath(name string) (string, error)
}
