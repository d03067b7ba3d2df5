// Package shell implements the interactive read-eval loop.
//
// A Session owns a logical working directory. The built-ins cd and pwd act
// on it, dev-shell commands and pass-through input receive it explicitly,
// and the process working directory is never changed.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/google/shlex"

	"github.com/swaswa-core/dev-shell/internal/slogger"
	"github.com/swaswa-core/dev-shell/internal/style"
)

// maxLine bounds a single input line.
const maxLine = 1 << 20

// Dispatcher runs dev-shell commands.
type Dispatcher interface {
	// Has reports whether name is a dev-shell command.
	Has(name string) bool
	// Dispatch runs args in dir and prints its own output and failures.
	Dispatch(ctx context.Context, dir string, args []string) error
}

// Fallthrough runs input that is not a dev-shell command and returns the
// message to print, or "".
type Fallthrough interface {
	Run(ctx context.Context, dir, line string) string
}

// Config configures a Session. Zero values select the defaults.
type Config struct {
	Dir  string // initial working directory, default the process's
	Home string // target of a bare cd, default the user's home
	In   io.Reader
	Out  io.Writer

	// Branch returns the git branch shown in the prompt for dir, or "".
	Branch func(ctx context.Context, dir string) string
}

// Session is one interactive shell.
type Session struct {
	dispatcher Dispatcher
	fallback   Fallthrough
	in         io.Reader
	out        io.Writer
	branch     func(ctx context.Context, dir string) string
	prompt     promptInfo

	dir  string
	prev string
	home string
}

// New creates a Session.
func New(d Dispatcher, f Fallthrough, cfg Config) (*Session, error) {
	if cfg.Dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		cfg.Dir = wd
	}
	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	if cfg.Home == "" {
		// A missing home leaves bare cd without a target.
		cfg.Home, _ = os.UserHomeDir()
	}
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	return &Session{
		dispatcher: d,
		fallback:   f,
		in:         cfg.In,
		out:        cfg.Out,
		branch:     cfg.Branch,
		prompt:     currentPromptInfo(cfg.Home),
		dir:        dir,
		home:       cfg.Home,
	}, nil
}

// Dir returns the logical working directory.
func (s *Session) Dir() string {
	return s.dir
}

// Run reads and executes lines until exit, end of input, or ctx is done.
// An interrupt cancels the running line, never the session.
func (s *Session) Run(ctx context.Context) error {
	// Holding SIGINT keeps an interrupt at the prompt from killing the shell.
	idle := make(chan os.Signal, 1)
	signal.Notify(idle, os.Interrupt)
	go func() {
		for range idle {
		}
	}()
	defer close(idle)
	defer signal.Stop(idle)

	fmt.Fprintln(s.out, style.Info("Welcome to dev-shell. Type 'git-help' for git commands, 'exit' to quit."))

	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(s.out, s.renderPrompt(ctx))

		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		}

		if !s.executeLine(ctx, scanner.Text()) {
			return nil
		}
	}
}

// executeLine runs one line with an interrupt scoped to it.
func (s *Session) executeLine(ctx context.Context, line string) bool {
	lineCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	return s.Execute(lineCtx, line)
}

// Execute runs one input line and reports whether the session continues.
func (s *Session) Execute(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}

	args, err := shlex.Split(line)
	if err != nil {
		fmt.Fprintln(s.out, style.Error("Parse error: "+err.Error()))
		return true
	}
	if len(args) == 0 {
		return true
	}

	switch args[0] {
	case "exit", "quit":
		return false
	case "pwd":
		fmt.Fprintf(s.out, "📂 Current directory: %s\n", s.dir)
	case "cd":
		s.cd(args[1:])
	default:
		if s.dispatcher != nil && s.dispatcher.Has(args[0]) {
			if err := s.dispatcher.Dispatch(ctx, s.dir, args); err != nil {
				slogger.L(ctx).Debug("command failed", "command", args[0], "error", err)
			}
			return true
		}
		if s.fallback == nil {
			fmt.Fprintln(s.out, style.Error(fmt.Sprintf("Unknown command: %s", args[0])))
			return true
		}
		if msg := s.fallback.Run(ctx, s.dir, line); msg != "" {
			fmt.Fprintln(s.out, msg)
		}
	}
	return true
}

// cd changes the logical working directory.
func (s *Session) cd(args []string) {
	if len(args) > 1 {
		fmt.Fprintln(s.out, style.Error("cd: too many arguments"))
		return
	}

	target := "~"
	if len(args) == 1 {
		target = args[0]
	}

	var path string
	switch {
	case target == "-":
		if s.prev == "" {
			fmt.Fprintln(s.out, style.Error("cd: no previous directory"))
			return
		}
		path = s.prev
	case target == "~" || strings.HasPrefix(target, "~/"):
		if s.home == "" {
			fmt.Fprintln(s.out, style.Error("cd: home directory unknown"))
			return
		}
		path = filepath.Join(s.home, strings.TrimPrefix(target, "~"))
	case filepath.IsAbs(target):
		path = target
	default:
		path = filepath.Join(s.dir, target)
	}
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintln(s.out, style.Error("Directory does not exist: "+path))
		return
	case err != nil:
		fmt.Fprintln(s.out, style.Error(fmt.Sprintf("Error changing directory: %v", err)))
		return
	case !info.IsDir():
		fmt.Fprintln(s.out, style.Error("Not a directory: "+path))
		return
	}

	s.prev, s.dir = s.dir, path
	fmt.Fprintf(s.out, "📂 Changed to: %s\n", path)
}
