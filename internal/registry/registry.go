// Package registry persists the set of commands that need the terminal.
//
// The registry is a JSON array of {"commandName": "..."} objects. Reads take
// a shared flock on the file and writes an exclusive one; within a process a
// sync.RWMutex serializes access. Read failures degrade to an empty registry,
// write failures are returned as domain.KindRegistryIO.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/swaswa-core/dev-shell/internal/domain"
	"github.com/swaswa-core/dev-shell/internal/slogger"
)

const (
	lockTimeout = 5 * time.Second
	lockPoll    = 10 * time.Millisecond
	fileMode    = 0o644
	dirMode     = 0o755
)

var errLockTimeout = errors.New("failed to acquire registry lock")

// DefaultCommands are registered by SeedDefaults on first run.
var DefaultCommands = []string{
	"nano", "vim", "vi", "emacs", "less", "more", "htop", "top",
	"ssh", "telnet", "mysql", "psql", "python", "python3", "node", "claude",
}

// DefaultPath returns ~/.dev-shell/commands.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".dev-shell", "commands.json"), nil
}

// Store is a file-backed interactive command registry.
type Store struct {
	path string
	mu   sync.RWMutex
}

// New creates a Store backed by the file at path. The file is created on
// first access.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Register adds name to the registry. Registering an existing name is a
// no-op.
func (s *Store) Register(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Invalid(domain.ReasonEmptyName, "command name cannot be empty")
	}

	return s.update(ctx, func(cmds []domain.InteractiveCommand) ([]domain.InteractiveCommand, bool) {
		if indexOf(cmds, name) >= 0 {
			return cmds, false
		}
		return append(cmds, domain.InteractiveCommand{CommandName: name}), true
	})
}

// Exists reports whether name is registered.
func (s *Store) Exists(ctx context.Context, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	return indexOf(s.FindAll(ctx), name) >= 0
}

// FindAll returns every registered command in insertion order.
func (s *Store) FindAll(ctx context.Context) []domain.InteractiveCommand {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.openAndLock(ctx, syscall.LOCK_SH)
	if err != nil {
		slogger.L(ctx).Warn("registry unavailable, treating as empty", "path", s.path, "error", err)
		return []domain.InteractiveCommand{}
	}
	defer unlockAndClose(file)

	return s.load(ctx, file)
}

// RemoveByName deletes name and reports whether it was registered.
func (s *Store) RemoveByName(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	removed := false

	err := s.update(ctx, func(cmds []domain.InteractiveCommand) ([]domain.InteractiveCommand, bool) {
		i := indexOf(cmds, name)
		if i < 0 {
			return cmds, false
		}
		removed = true
		return append(cmds[:i], cmds[i+1:]...), true
	})
	return removed, err
}

// Clear removes every registered command.
func (s *Store) Clear(ctx context.Context) error {
	return s.update(ctx, func([]domain.InteractiveCommand) ([]domain.InteractiveCommand, bool) {
		return []domain.InteractiveCommand{}, true
	})
}

// Count returns the number of registered commands.
func (s *Store) Count(ctx context.Context) int {
	return len(s.FindAll(ctx))
}

// IsInteractive reports whether the first word of input is registered.
func (s *Store) IsInteractive(ctx context.Context, input string) bool {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return false
	}
	return s.Exists(ctx, fields[0])
}

// SeedDefaults registers DefaultCommands unless "nano" is already present,
// which marks a registry that has been seeded before.
func (s *Store) SeedDefaults(ctx context.Context) error {
	return s.update(ctx, func(cmds []domain.InteractiveCommand) ([]domain.InteractiveCommand, bool) {
		if indexOf(cmds, "nano") >= 0 {
			return cmds, false
		}
		for _, name := range DefaultCommands {
			if indexOf(cmds, name) < 0 {
				cmds = append(cmds, domain.InteractiveCommand{CommandName: name})
			}
		}
		return cmds, true
	})
}

// update applies fn under the exclusive lock and rewrites the file when fn
// reports a change.
func (s *Store) update(ctx context.Context, fn func([]domain.InteractiveCommand) ([]domain.InteractiveCommand, bool)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.openAndLock(ctx, syscall.LOCK_EX)
	if err != nil {
		return domain.E(domain.KindRegistryIO, s.path, err)
	}
	defer unlockAndClose(file)

	cmds, changed := fn(s.load(ctx, file))
	if !changed {
		return nil
	}
	if err := s.save(file, cmds); err != nil {
		return domain.E(domain.KindRegistryIO, s.path, err)
	}
	return nil
}

// openAndLock opens the registry file, creating it with an empty array when
// absent, and acquires a lock of the given type.
func (s *Store) openAndLock(ctx context.Context, lockType int) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), dirMode); err != nil {
		return nil, fmt.Errorf("create registry directory: %w", err)
	}

	file, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, fileMode)
	if err != nil {
		return nil, fmt.Errorf("open registry file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat registry file: %w", err)
	}

	// An empty file is initialized under the exclusive lock, which is then
	// downgraded for readers.
	initLock := lockType
	if info.Size() == 0 {
		initLock = syscall.LOCK_EX
	}
	if err := acquireLock(ctx, file, initLock); err != nil {
		file.Close()
		return nil, err
	}

	if initLock == syscall.LOCK_EX {
		if info, err = file.Stat(); err != nil {
			unlockAndClose(file)
			return nil, fmt.Errorf("stat registry file: %w", err)
		}
		if info.Size() == 0 {
			if err := s.save(file, []domain.InteractiveCommand{}); err != nil {
				unlockAndClose(file)
				return nil, err
			}
		}
	}
	if initLock != lockType {
		if err := acquireLock(ctx, file, lockType); err != nil {
			unlockAndClose(file)
			return nil, err
		}
	}

	return file, nil
}

// load decodes the registry. A missing, empty or malformed file reads as
// empty; the next write repairs it.
func (s *Store) load(ctx context.Context, file *os.File) []domain.InteractiveCommand {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		slogger.L(ctx).Warn("seek registry file", "path", s.path, "error", err)
		return []domain.InteractiveCommand{}
	}

	data, err := io.ReadAll(file)
	if err != nil {
		slogger.L(ctx).Warn("read registry file", "path", s.path, "error", err)
		return []domain.InteractiveCommand{}
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return []domain.InteractiveCommand{}
	}

	var cmds []domain.InteractiveCommand
	if err := json.Unmarshal(data, &cmds); err != nil {
		slogger.L(ctx).Warn("malformed registry file, treating as empty", "path", s.path, "error", err)
		return []domain.InteractiveCommand{}
	}

	out := cmds[:0]
	for _, c := range cmds {
		if strings.TrimSpace(c.CommandName) != "" {
			out = append(out, c)
		}
	}
	if out == nil {
		out = []domain.InteractiveCommand{}
	}
	return out
}

// save truncates the file and writes cmds as indented JSON.
func (s *Store) save(file *os.File, cmds []domain.InteractiveCommand) error {
	if cmds == nil {
		cmds = []domain.InteractiveCommand{}
	}
	data, err := json.MarshalIndent(cmds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("truncate registry file: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek registry file: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("write registry file: %w", err)
	}
	return file.Sync()
}

// acquireLock polls for a non-blocking flock until lockTimeout elapses.
func acquireLock(ctx context.Context, file *os.File, lockType int) error {
	deadline := time.Now().Add(lockTimeout)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := syscall.Flock(int(file.Fd()), lockType|syscall.LOCK_NB)
		if err == nil {
			return nil
		}
		if !errors.Is(err, syscall.EWOULDBLOCK) {
			return fmt.Errorf("acquire file lock: %w", err)
		}
		if time.Now().After(deadline) {
			return errLockTimeout
		}

		time.Sleep(lockPoll)
	}
}

func unlockAndClose(file *os.File) {
	_ = syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
	file.Close()
}

func indexOf(cmds []domain.InteractiveCommand, name string) int {
	for i, c := range cmds {
		if c.CommandName == name {
			return i
		}
	}
	return -1
}
