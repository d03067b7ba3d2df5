package passthrough

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	osexec "os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swaswa-core/dev-shell/internal/domain"
	"github.com/swaswa-core/dev-shell/internal/exec"
	"github.com/swaswa-core/dev-shell/internal/exec/mocks"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

type classifierFunc func(ctx context.Context, input string) bool

func (f classifierFunc) IsInteractive(ctx context.Context, input string) bool { return f(ctx, input) }

func interactiveIf(names ...string) Classifier {
	return classifierFunc(func(_ context.Context, input string) bool {
		first := firstWord(input)
		for _, n := range names {
			if n == first {
				return true
			}
		}
		return false
	})
}

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := osexec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExec_Interactive(t *testing.T) {
	ctx := context.Background()
	stdin := strings.NewReader("")
	var stdout, stderr bytes.Buffer

	t.Run("attaches terminal streams", func(t *testing.T) {
		mock := &mocks.ExecutorMock{
			RunFunc: func(ctx context.Context, opts *exec.RunOptions) (*exec.Result, error) {
				return &exec.Result{ExitCode: 0}, nil
			},
		}
		r := New(mock, interactiveIf("vim"), Config{Shell: "/bin/bash", Stdin: stdin, Stdout: &stdout, Stderr: &stderr})

		require.NoError(t, r.Exec(ctx, "/work", "vim notes.txt"))

		calls := mock.RunCalls()
		require.Len(t, calls, 1)
		opts := calls[0].Opts
		assert.Equal(t, "/bin/bash", opts.Name)
		assert.Equal(t, []string{"-c", "vim notes.txt"}, opts.Args)
		assert.Equal(t, "/work", opts.Dir)
		assert.Same(t, stdin, opts.Stdin)
		assert.Same(t, &stdout, opts.Stdout)
		assert.Same(t, &stderr, opts.Stderr)
		assert.Zero(t, opts.WaitDelay)
		assert.False(t, opts.Group, "terminal programs stay in the foreground group")
	})

	t.Run("non-zero exit", func(t *testing.T) {
		mock := &mocks.ExecutorMock{
			RunFunc: func(ctx context.Context, opts *exec.RunOptions) (*exec.Result, error) {
				return &exec.Result{ExitCode: 3}, errors.New("exit status 3")
			},
		}
		r := New(mock, interactiveIf("vim"), Config{Stdin: stdin, Stdout: &stdout, Stderr: &stderr})

		err := r.Exec(ctx, "", "vim")

		assert.ErrorIs(t, err, ErrExitStatus)
		assert.EqualError(t, err, "Interactive command exited with code 3")
		assert.Equal(t, "❌ Interactive command exited with code 3", r.Run(ctx, "", "vim"))
	})

	t.Run("not tied to context cancellation", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		mock := &mocks.ExecutorMock{
			RunFunc: func(ctx context.Context, opts *exec.RunOptions) (*exec.Result, error) {
				cancel()
				assert.NoError(t, ctx.Err())
				return &exec.Result{ExitCode: 130}, errors.New("exit status 130")
			},
		}
		r := New(mock, interactiveIf("less"), Config{Stdin: stdin, Stdout: &stdout, Stderr: &stderr})

		err := r.Exec(cctx, "", "less file")

		assert.ErrorIs(t, err, domain.ErrInterrupted)
		assert.EqualError(t, err, "Command interrupted")
	})

	t.Run("shell missing", func(t *testing.T) {
		mock := &mocks.ExecutorMock{
			RunFunc: func(ctx context.Context, opts *exec.RunOptions) (*exec.Result, error) {
				return &exec.Result{ExitCode: -1}, &fs.PathError{Op: "fork/exec", Path: opts.Name, Err: fs.ErrNotExist}
			},
		}
		r := New(mock, interactiveIf("vim"), Config{Stdin: stdin, Stdout: &stdout, Stderr: &stderr})

		err := r.Exec(ctx, "", "vim")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestExec_CapturedOptions(t *testing.T) {
	mock := &mocks.ExecutorMock{
		RunFunc: func(ctx context.Context, opts *exec.RunOptions) (*exec.Result, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "captured runs carry a deadline")
			_, _ = opts.Stdout.Write([]byte("out\n"))
			return &exec.Result{}, nil
		},
	}
	var stdout bytes.Buffer
	r := New(mock, interactiveIf("vim"), Config{Stdout: &stdout})

	require.NoError(t, r.Exec(context.Background(), "/tmp", "ls -la"))

	opts := mock.RunCalls()[0].Opts
	assert.Equal(t, DefaultShell, opts.Name)
	assert.Equal(t, []string{"-c", "ls -la"}, opts.Args)
	assert.Nil(t, opts.Stdin)
	assert.Equal(t, waitDelay, opts.WaitDelay)
	assert.True(t, opts.Group)
	assert.Equal(t, "out\n", stdout.String())
}

func TestExec_Empty(t *testing.T) {
	r := New(&mocks.ExecutorMock{}, nil, Config{})

	err := r.Exec(context.Background(), "", "   ")

	assert.ErrorIs(t, err, ErrEmptyCommand)
	assert.Equal(t, "❌ Empty command", r.Run(context.Background(), "", ""))
}

func TestExec_RealShell(t *testing.T) {
	requireShell(t)
	ctx := context.Background()

	newRunner := func(out *bytes.Buffer, timeout time.Duration) *Runner {
		return New(exec.New(), interactiveIf(), Config{Shell: "sh", Timeout: timeout, Stdout: out})
	}

	t.Run("streams stdout and stderr lines", func(t *testing.T) {
		var out bytes.Buffer

		err := newRunner(&out, 0).Exec(ctx, "", "echo one; echo two >&2; printf three")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "one\n")
		assert.Contains(t, out.String(), "two\n")
		assert.Contains(t, out.String(), "three\n")
	})

	t.Run("runs in the given directory", func(t *testing.T) {
		dir, err := filepath.EvalSymlinks(t.TempDir())
		require.NoError(t, err)
		var out bytes.Buffer

		require.NoError(t, newRunner(&out, 0).Exec(ctx, dir, "pwd"))

		assert.Equal(t, dir+"\n", out.String())
	})

	t.Run("non-zero exit", func(t *testing.T) {
		var out bytes.Buffer

		err := newRunner(&out, 0).Exec(ctx, "", "exit 4")

		var perr *Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 4, perr.ExitCode)
		assert.ErrorIs(t, err, ErrExitStatus)
		assert.EqualError(t, err, "Command exited with code 4")
	})

	t.Run("unknown command", func(t *testing.T) {
		var out bytes.Buffer

		err := newRunner(&out, 0).Exec(ctx, "", "definitely-not-a-command-xyz --flag")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.EqualError(t, err, `Command 'definitely-not-a-command-xyz' not found. If this is an interactive command, register it with: command-iadd "definitely-not-a-command-xyz"`)
	})

	t.Run("terminal heuristic", func(t *testing.T) {
		var out bytes.Buffer

		err := newRunner(&out, 0).Exec(ctx, "", "echo 'Error: Input must be provided' >&2; exit 1")

		assert.ErrorIs(t, err, ErrNeedsTerminal)
		assert.EqualError(t, err, `Command 'echo' requires TTY/interactive mode. Register it with: command-iadd "echo"`)
	})

	t.Run("heuristic ignored on success", func(t *testing.T) {
		var out bytes.Buffer

		err := newRunner(&out, 0).Exec(ctx, "", "echo 'stdin is not a terminal' >&2")

		assert.NoError(t, err)
	})

	t.Run("timeout", func(t *testing.T) {
		var out bytes.Buffer
		start := time.Now()

		err := newRunner(&out, 200*time.Millisecond).Exec(ctx, "", "sleep 5")

		assert.ErrorIs(t, err, domain.ErrTimeout)
		assert.EqualError(t, err, "Command 'sleep' timed out after 200ms")
		assert.Less(t, time.Since(start), 4*time.Second)
	})

	t.Run("interrupted", func(t *testing.T) {
		var out bytes.Buffer
		cctx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		defer cancel()

		err := newRunner(&out, 0).Exec(cctx, "", "sleep 5")

		assert.ErrorIs(t, err, domain.ErrInterrupted)
	})

	t.Run("missing shell", func(t *testing.T) {
		var out bytes.Buffer
		r := New(exec.New(), nil, Config{Shell: filepath.Join(t.TempDir(), "nosh"), Stdout: &out})

		err := r.Exec(ctx, "", "ls")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestNeedsTerminal(t *testing.T) {
	tests := []struct {
		stderr string
		want   bool
	}{
		{"Vim: Warning: Output is not a terminal", true},
		{"the input device is not a TTY", false},
		{"No TTY present", true},
		{"reading from STDIN failed", true},
		{"please run in Interactive mode", true},
		{"error: input must be provided", true},
		{"permission denied", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.stderr, func(t *testing.T) {
			assert.Equal(t, tt.want, needsTerminal(tt.stderr))
		})
	}
}

func TestLineWriter(t *testing.T) {
	var out bytes.Buffer
	var keep bytes.Buffer
	w := &lineWriter{mu: new(sync.Mutex), out: &out, render: strings.ToUpper, keep: &keep}

	_, _ = w.Write([]byte("ab"))
	_, _ = w.Write([]byte("c\r\nde"))
	assert.Equal(t, "ABC\n", out.String())

	w.Flush()
	assert.Equal(t, "ABC\nDE\n", out.String())
	assert.Equal(t, "abc\r\nde", keep.String())
}

func TestNew_Defaults(t *testing.T) {
	r := New(&mocks.ExecutorMock{}, nil, Config{})

	assert.Same(t, os.Stdin, r.stdin)
	assert.Same(t, os.Stdout, r.stdout)
	assert.Equal(t, DefaultTimeout, r.timeout)
}
