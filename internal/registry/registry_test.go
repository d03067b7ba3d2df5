package registry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/swaswa-core/dev-shell/internal/domain"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), ".dev-shell", "commands.json"))
}

func names(cmds []domain.InteractiveCommand) []string {
	out := make([]string, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, c.CommandName)
	}
	return out
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultPath()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".dev-shell", "commands.json"), path)
}

func TestStore_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("registers and persists", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Register(ctx, "nano"))

		assert.True(t, store.Exists(ctx, "nano"))
		data, err := os.ReadFile(store.Path())
		require.NoError(t, err)
		assert.JSONEq(t, `[{"commandName": "nano"}]`, string(data))
		assert.Contains(t, string(data), "\n  ", "file is pretty-printed")
	})

	t.Run("duplicate is a no-op", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Register(ctx, "vim"))

		require.NoError(t, store.Register(ctx, "vim"))

		assert.Equal(t, 1, store.Count(ctx))
	})

	t.Run("trims whitespace", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Register(ctx, "  htop "))

		assert.Equal(t, []string{"htop"}, names(store.FindAll(ctx)))
	})

	t.Run("rejects empty name", func(t *testing.T) {
		store := newStore(t)

		err := store.Register(ctx, "   ")

		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Equal(t, 0, store.Count(ctx))
	})

	t.Run("write failure is RegistryIO", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))
		store := New(filepath.Join(blocker, "commands.json"))

		err := store.Register(ctx, "nano")

		assert.ErrorIs(t, err, domain.ErrRegistryIO)
	})
}

func TestStore_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("empty registry", func(t *testing.T) {
		store := newStore(t)

		assert.Empty(t, store.FindAll(ctx))
		assert.Equal(t, 0, store.Count(ctx))
		assert.False(t, store.Exists(ctx, "nano"))
		assert.False(t, store.Exists(ctx, ""))
	})

	t.Run("first read initializes the file", func(t *testing.T) {
		store := newStore(t)
		require.NoFileExists(t, store.Path())

		assert.Empty(t, store.FindAll(ctx))

		data, err := os.ReadFile(store.Path())
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(data))
	})

	t.Run("malformed file reads as empty and is repaired by next write", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
		require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

		assert.Empty(t, store.FindAll(ctx))

		require.NoError(t, store.Register(ctx, "less"))
		data, err := os.ReadFile(store.Path())
		require.NoError(t, err)
		assert.JSONEq(t, `[{"commandName": "less"}]`, string(data))
	})

	t.Run("unreadable location reads as empty", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))
		store := New(filepath.Join(blocker, "commands.json"))

		assert.Empty(t, store.FindAll(ctx))
		assert.False(t, store.IsInteractive(ctx, "nano"))
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		store := newStore(t)
		for _, n := range []string{"b", "a", "c"} {
			require.NoError(t, store.Register(ctx, n))
		}

		assert.Equal(t, []string{"b", "a", "c"}, names(store.FindAll(ctx)))
		assert.Equal(t, store.FindAll(ctx), store.FindAll(ctx))
	})
}

func TestStore_RemoveByName(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	require.NoError(t, store.Register(ctx, "nano"))
	require.NoError(t, store.Register(ctx, "vim"))

	removed, err := store.RemoveByName(ctx, "nano")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []string{"vim"}, names(store.FindAll(ctx)))

	removed, err = store.RemoveByName(ctx, "nano")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	require.NoError(t, store.Register(ctx, "nano"))

	require.NoError(t, store.Clear(ctx))

	assert.Equal(t, 0, store.Count(ctx))
	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestStore_IsInteractive(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	require.NoError(t, store.Register(ctx, "nano"))

	tests := []struct {
		input string
		want  bool
	}{
		{"nano", true},
		{"nano --help", true},
		{"  nano\tfile.txt", true},
		{"nanox", false},
		{"vim nano", false},
		{"", false},
		{"   ", false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			assert.Equal(t, tt.want, store.IsInteractive(ctx, tt.input))
		})
	}
}

func TestStore_SeedDefaults(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds empty registry", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.SeedDefaults(ctx))

		assert.Equal(t, DefaultCommands, names(store.FindAll(ctx)))
	})

	t.Run("skips when nano present", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Register(ctx, "nano"))

		require.NoError(t, store.SeedDefaults(ctx))

		assert.Equal(t, []string{"nano"}, names(store.FindAll(ctx)))
	})

	t.Run("keeps existing entries without duplicates", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Register(ctx, "vim"))
		require.NoError(t, store.Register(ctx, "k9s"))

		require.NoError(t, store.SeedDefaults(ctx))

		all := names(store.FindAll(ctx))
		assert.Len(t, all, len(DefaultCommands)+1)
		assert.Equal(t, []string{"vim", "k9s"}, all[:2])
	})

	t.Run("removed defaults stay removed once nano exists", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.SeedDefaults(ctx))
		_, err := store.RemoveByName(ctx, "vim")
		require.NoError(t, err)

		require.NoError(t, store.SeedDefaults(ctx))

		assert.False(t, store.Exists(ctx, "vim"))
	})
}

func TestStore_Persistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "commands.json")

	require.NoError(t, New(path).Register(ctx, "nano"))

	reopened := New(path)
	assert.Contains(t, names(reopened.FindAll(ctx)), "nano")
	assert.True(t, reopened.IsInteractive(ctx, "nano --help"))
}

func TestStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "commands.json")
	a, b := New(path), New(path)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, a.Register(ctx, fmt.Sprintf("a%d", i)))
		}()
		go func() {
			defer wg.Done()
			_ = b.Count(ctx)
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, a.Count(ctx))
}

func TestStore_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := newStore(t)

	err := store.Register(ctx, "nano")

	assert.ErrorIs(t, err, domain.ErrRegistryIO)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_SetProperties(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	rapid.Check(t, func(rt *rapid.T) {
		path := filepath.Join(dir, rapid.StringMatching(`[a-z]{12}`).Draw(rt, "file")+".json")
		store := New(path)
		defer os.Remove(path)

		ops := rapid.SliceOfN(rapid.SampledFrom([]string{"nano", "vim", "less", "ssh"}), 1, 20).Draw(rt, "ops")
		model := map[string]bool{}
		for i, name := range ops {
			if i%3 == 2 {
				removed, err := store.RemoveByName(ctx, name)
				if err != nil {
					rt.Fatal(err)
				}
				if removed != model[name] {
					rt.Fatalf("RemoveByName(%q) = %v, want %v", name, removed, model[name])
				}
				delete(model, name)
				continue
			}
			if err := store.Register(ctx, name); err != nil {
				rt.Fatal(err)
			}
			model[name] = true
			if !store.Exists(ctx, name) {
				rt.Fatalf("%q missing after Register", name)
			}
		}

		if got := store.Count(ctx); got != len(model) {
			rt.Fatalf("Count() = %d, want %d", got, len(model))
		}
	})
}
