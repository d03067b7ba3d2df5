// Package passthrough runs shell input that is not a dev-shell command.
//
// Input whose first word is a registered interactive command runs with the
// terminal attached. Anything else runs with its output captured line by
// line, colored by stream, under a wall-clock timeout.
package passthrough

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	osexec "os/exec"
	"strings"
	"sync"
	"time"

	"github.com/swaswa-core/dev-shell/internal/domain"
	"github.com/swaswa-core/dev-shell/internal/exec"
	"github.com/swaswa-core/dev-shell/internal/slogger"
	"github.com/swaswa-core/dev-shell/internal/style"
)

const (
	// DefaultShell runs pass-through input.
	DefaultShell = "/bin/sh"
	// DefaultTimeout bounds a captured run.
	DefaultTimeout = 30 * time.Second

	// waitDelay bounds output draining after the shell is killed.
	waitDelay = time.Second
	// exitNotFound is the status POSIX shells use for unknown commands.
	exitNotFound = 127
)

// ttyHints are stderr fragments that suggest a command wanted a terminal.
var ttyHints = []string{
	"not a terminal",
	"no tty",
	"stdin",
	"interactive",
	"input must be provided",
}

// Sentinel errors for pass-through runs. Timeouts and interrupts are
// reported as domain.ErrTimeout and domain.ErrInterrupted.
var (
	ErrEmptyCommand  = errors.New("empty command")
	ErrNotFound      = errors.New("command not found")
	ErrNeedsTerminal = errors.New("command requires a terminal")
	ErrExitStatus    = errors.New("command exited with non-zero status")
)

// Error is a failed pass-through run. Its message is the text shown to the
// user.
type Error struct {
	Err      error
	Command  string // first word of the input
	ExitCode int
	msg      string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.Err }

// Classifier decides whether input needs the terminal.
type Classifier interface {
	IsInteractive(ctx context.Context, input string) bool
}

// Config configures a Runner. Zero values select the defaults.
type Config struct {
	Shell   string
	Timeout time.Duration
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Runner executes pass-through input.
type Runner struct {
	exec       exec.Executor
	classifier Classifier
	shell      string
	timeout    time.Duration
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

// New creates a Runner.
func New(e exec.Executor, c Classifier, cfg Config) *Runner {
	if cfg.Shell == "" {
		cfg.Shell = DefaultShell
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	return &Runner{
		exec:       e,
		classifier: c,
		shell:      cfg.Shell,
		timeout:    cfg.Timeout,
		stdin:      cfg.Stdin,
		stdout:     cfg.Stdout,
		stderr:     cfg.Stderr,
	}
}

// Run executes line in dir and returns the message to show the user, or ""
// when the command succeeded. Failures never escape as errors.
func (r *Runner) Run(ctx context.Context, dir, line string) string {
	if err := r.Exec(ctx, dir, line); err != nil {
		return style.Error(err.Error())
	}
	return ""
}

// Exec executes line in dir. The returned error, if any, is an *Error.
func (r *Runner) Exec(ctx context.Context, dir, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return &Error{Err: ErrEmptyCommand, msg: "Empty command"}
	}
	if r.classifier != nil && r.classifier.IsInteractive(ctx, line) {
		return r.interactive(ctx, dir, line)
	}
	return r.captured(ctx, dir, line)
}

// interactive runs line with the terminal attached. The child sees terminal
// signals directly, so the run is not tied to ctx.
func (r *Runner) interactive(ctx context.Context, dir, line string) error {
	cmd := firstWord(line)
	slogger.L(ctx).Debug("running interactive command", "command", cmd, "dir", dir)

	res, err := r.exec.Run(context.WithoutCancel(ctx), &exec.RunOptions{
		Name:   r.shell,
		Args:   []string{"-c", line},
		Dir:    dir,
		Stdin:  r.stdin,
		Stdout: r.stdout,
		Stderr: r.stderr,
	})
	if err == nil {
		return nil
	}
	if launchFailed(err) {
		return notFound(cmd, err)
	}

	code := exitCode(res)
	if ctx.Err() != nil {
		return &Error{Err: domain.E(domain.KindInterrupted, cmd, ctx.Err()), Command: cmd, ExitCode: code, msg: "Command interrupted"}
	}
	return &Error{
		Err:      ErrExitStatus,
		Command:  cmd,
		ExitCode: code,
		msg:      fmt.Sprintf("Interactive command exited with code %d", code),
	}
}

// captured runs line with its output streamed through the style package and
// its stderr retained for the terminal heuristic.
func (r *Runner) captured(ctx context.Context, dir, line string) error {
	cmd := firstWord(line)
	log := slogger.L(ctx)
	log.Debug("running command", "command", cmd, "dir", dir, "timeout", r.timeout)

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var mu sync.Mutex
	var errText bytes.Buffer
	stdout := &lineWriter{mu: &mu, out: r.stdout, render: style.Stdout}
	stderr := &lineWriter{mu: &mu, out: r.stdout, render: style.Stderr, keep: &errText}

	res, err := r.exec.Run(runCtx, &exec.RunOptions{
		Name:      r.shell,
		Args:      []string{"-c", line},
		Dir:       dir,
		Stdout:    stdout,
		Stderr:    stderr,
		WaitDelay: waitDelay,
		Group:     true,
	})
	stdout.Flush()
	stderr.Flush()

	if err == nil {
		return nil
	}

	code := exitCode(res)
	switch {
	case ctx.Err() != nil:
		return &Error{Err: domain.E(domain.KindInterrupted, cmd, ctx.Err()), Command: cmd, ExitCode: code, msg: "Command interrupted"}
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		log.Debug("command timed out", "command", cmd, "timeout", r.timeout)
		return &Error{
			Err:      domain.E(domain.KindTimeout, cmd, runCtx.Err()),
			Command:  cmd,
			ExitCode: code,
			msg:      fmt.Sprintf("Command '%s' timed out after %s", cmd, r.timeout),
		}
	case launchFailed(err), code == exitNotFound:
		return notFound(cmd, err)
	case needsTerminal(errText.String()):
		log.Debug("command failed with terminal error", "command", cmd)
		return &Error{
			Err:      ErrNeedsTerminal,
			Command:  cmd,
			ExitCode: code,
			msg:      fmt.Sprintf("Command '%s' requires TTY/interactive mode. Register it with: command-iadd \"%s\"", cmd, cmd),
		}
	default:
		return &Error{
			Err:      ErrExitStatus,
			Command:  cmd,
			ExitCode: code,
			msg:      fmt.Sprintf("Command exited with code %d", code),
		}
	}
}

func notFound(cmd string, err error) *Error {
	return &Error{
		Err:      fmt.Errorf("%w: %w", ErrNotFound, err),
		Command:  cmd,
		ExitCode: exitNotFound,
		msg:      fmt.Sprintf("Command '%s' not found. If this is an interactive command, register it with: command-iadd \"%s\"", cmd, cmd),
	}
}

// launchFailed reports whether the shell itself could not be started.
func launchFailed(err error) bool {
	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		return false
	}
	return errors.Is(err, osexec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission)
}

func needsTerminal(stderr string) bool {
	lower := strings.ToLower(stderr)
	for _, hint := range ttyHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

func exitCode(res *exec.Result) int {
	if res == nil {
		return -1
	}
	return res.ExitCode
}

func firstWord(line string) string {
	if f := strings.Fields(line); len(f) > 0 {
		return f[0]
	}
	return ""
}

// lineWriter renders complete lines to out. Writers sharing mu never
// interleave within a line.
type lineWriter struct {
	mu     *sync.Mutex
	out    io.Writer
	render func(string) string
	keep   *bytes.Buffer
	buf    []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.keep != nil {
		w.keep.Write(p)
	}
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush writes a trailing line that had no newline.
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}

func (w *lineWriter) emit(line string) {
	line = strings.TrimSuffix(line, "\r")
	fmt.Fprintln(w.out, w.render(line))
}
