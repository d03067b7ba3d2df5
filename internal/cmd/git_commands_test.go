package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swaswa-core/dev-shell/internal/domain"
	"github.com/swaswa-core/dev-shell/internal/git/mocks"
	"github.com/swaswa-core/dev-shell/internal/prompt"
	promptmocks "github.com/swaswa-core/dev-shell/internal/prompt/mocks"
)

func TestCommit(t *testing.T) {
	t.Run("commits modified and untracked files on the current branch", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)
		writeFile(t, dir, "a.txt", "one\n")
		_, err := runCmd(t, app, dir, "commit", "Add a")
		require.NoError(t, err)

		writeFile(t, dir, "a.txt", "two\n")
		writeFile(t, dir, "b.txt", "new\n")
		out, err := runCmd(t, app, dir, "commit", "Add b and tweak a")
		require.NoError(t, err)

		assert.Contains(t, out, "✅ Smart commit successful!")
		assert.Contains(t, out, "📝 Commit: Add b and tweak a")
		assert.Contains(t, out, "🔗 Hash: ")
		assert.NotContains(t, out, "🚀")

		assert.Equal(t, "Add b and tweak a\n\nFiles changed:\n- a.txt\n- b.txt",
			runGit(t, dir, "log", "-1", "--format=%B"))
		assert.Equal(t, "main", runGit(t, dir, "rev-parse", "--abbrev-ref", "HEAD"))
		assert.Equal(t, "main", runGit(t, dir, "branch", "--format=%(refname:short)"))
		assert.Empty(t, runGit(t, dir, "status", "--porcelain"))
	})

	t.Run("message words are joined", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)
		writeFile(t, dir, "a.txt", "one\n")

		_, err := runCmd(t, app, dir, "commit", "Fix", "the", "bug")
		require.NoError(t, err)

		assert.Equal(t, "Fix the bug", runGit(t, dir, "log", "-1", "--format=%s"))
	})

	t.Run("clean tree reports no changes", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)
		head := runGit(t, dir, "rev-parse", "HEAD")

		out, err := runCmd(t, app, dir, "commit", "Nothing here")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNoChangesToCommit))
		assert.Contains(t, out, "❌ Error: No changes to commit. Make some changes first!")
		assert.Equal(t, head, runGit(t, dir, "rev-parse", "HEAD"))
		assert.Equal(t, "main", runGit(t, dir, "branch", "--format=%(refname:short)"))
	})

	t.Run("blocked author is refused", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)
		runGit(t, dir, "config", "user.name", "blocked")
		writeFile(t, dir, "a.txt", "one\n")

		out, err := runCmd(t, app, dir, "commit", "Add a")

		require.Error(t, err)
		assert.Contains(t, out, "❌ Error: Unauthorized to commit. Check your git configuration.")
		assert.Equal(t, "1", runGit(t, dir, "rev-list", "--count", "HEAD"))
	})

	t.Run("outside a repository", func(t *testing.T) {
		app, _ := newGitApp(t)

		out, err := runCmd(t, app, t.TempDir(), "commit", "Add a")

		require.Error(t, err)
		assert.Contains(t, out, "❌ Error: Not a git repository.")
	})

	t.Run("pushes to a bare remote", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)
		bare := filepath.Join(t.TempDir(), "remote.git")
		runGit(t, dir, "init", "--bare", bare)
		runGit(t, dir, "remote", "add", "origin", bare)
		writeFile(t, dir, "a.txt", "one\n")

		out, err := runCmd(t, app, dir, "commit", "Add a", "--push")
		require.NoError(t, err)

		assert.Contains(t, out, "🚀 Changes pushed to remote")
		assert.Equal(t, runGit(t, dir, "rev-parse", "HEAD"), runGit(t, bare, "rev-parse", "main"))
	})
}

func TestCommit_Validation(t *testing.T) {
	repo := fakeRepo(t, false)
	adapter := &mocks.AdapterMock{
		FindRepositoryFunc: func(_ context.Context, path string) (domain.Repository, bool) {
			return repo, path == repo.Root
		},
		ConfiguredAuthorFunc: func(context.Context, domain.Repository) string {
			return "Jane Doe <jane@example.com>"
		},
	}

	tests := []struct {
		name string
		args []string
		want string
		is   error
	}{
		{
			name: "missing message",
			args: []string{"commit"},
			want: "❌ Error: Commit message is required",
			is:   domain.ErrCommitMessageRequired,
		},
		{
			name: "blank message",
			args: []string{"commit", "   "},
			want: "❌ Error: Commit message is required",
			is:   domain.ErrCommitMessageRequired,
		},
		{
			name: "short message",
			args: []string{"commit", "ab"},
			want: "❌ Error: Commit message must be at least 3 characters long",
			is:   domain.ErrCommitMessageRequired,
		},
		{
			name: "push without remote",
			args: []string{"commit", "Add a", "--push"},
			want: "❌ Error: No remote repository configured. Cannot push changes.",
			is:   domain.ErrNoRemote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t, adapter)

			out, err := runCmd(t, app, repo.Root, tt.args...)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.is), "got %v", err)
			assert.Contains(t, out, tt.want)
		})
	}

	assert.Empty(t, adapter.CreateBranchCalls(), "no workflow step may run")
	assert.Empty(t, adapter.StageTrackedChangesCalls())
	assert.Empty(t, adapter.CreateCommitCalls())
}

func TestPushFailureMessage(t *testing.T) {
	t.Run("credentials", func(t *testing.T) {
		got := pushFailureMessage(domain.E(domain.KindAuthRequired, "origin", nil), "origin", "main")

		assert.Contains(t, got, "❌ Push Error: Git credentials not configured.")
		assert.Contains(t, got, "✅ Smart commit was successful locally (changes not pushed)")
	})

	t.Run("other failures", func(t *testing.T) {
		got := pushFailureMessage(domain.E(domain.KindNetworkError, "origin", errors.New("could not resolve host")), "origin", "feature")

		assert.Contains(t, got, "⚠️  Smart commit successful locally, but push failed: could not resolve host")
		assert.Contains(t, got, "💡 You can push manually later with: git push origin feature")
	})
}

func TestStatus(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)

		out, err := runCmd(t, app, dir, "status")
		require.NoError(t, err)

		assert.Contains(t, out, "📁 Repository: "+filepath.Base(dir))
		assert.Contains(t, out, "📍 Path: "+dir)
		assert.Contains(t, out, "🌿 Branch: main")
		assert.Contains(t, out, "✨ Working directory is clean - no changes to commit")
	})

	t.Run("grouped changes", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)
		writeFile(t, dir, "staged.txt", "s\n")
		runGit(t, dir, "add", "staged.txt")
		writeFile(t, dir, "README.md", "changed\n")
		writeFile(t, dir, "new.txt", "n\n")

		out, err := runCmd(t, app, dir, "status")
		require.NoError(t, err)

		assert.Contains(t, out, "📝 Changes:")
		assert.Contains(t, out, "  Staged files:\n    ✅ staged.txt")
		assert.Contains(t, out, "  Modified files:\n    📝 README.md")
		assert.Contains(t, out, "  Untracked files:\n    ❓ new.txt")
		assert.Contains(t, out, "💡 Untracked files are included by smart commit.")
	})

	t.Run("subdirectory finds the enclosing repository", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)
		sub := filepath.Join(dir, "pkg", "deep")
		require.NoError(t, os.MkdirAll(sub, 0o755))

		out, err := runCmd(t, app, sub, "status")
		require.NoError(t, err)

		assert.Contains(t, out, "📍 Path: "+dir)
	})
}

func TestAdd(t *testing.T) {
	t.Run("nothing untracked", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)

		out, err := runCmd(t, app, dir, "add", "--all")
		require.NoError(t, err)

		assert.Contains(t, out, "✅ No untracked files to add")
	})

	t.Run("lists untracked files without flags", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)
		writeFile(t, dir, "x.txt", "x\n")

		out, err := runCmd(t, app, dir, "add")
		require.NoError(t, err)

		assert.Contains(t, out, "📁 Untracked files found:\n   ❓ x.txt")
		assert.Contains(t, out, "add --all")
		assert.Empty(t, runGit(t, dir, "diff", "--cached", "--name-only"))
	})

	t.Run("all", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)
		writeFile(t, dir, "x.txt", "x\n")
		writeFile(t, dir, "y.txt", "y\n")

		out, err := runCmd(t, app, dir, "add", "--all")
		require.NoError(t, err)

		assert.Contains(t, out, "✅ Added 2 file(s) to staging:")
		assert.Equal(t, "x.txt\ny.txt", runGit(t, dir, "diff", "--cached", "--name-only"))
	})

	t.Run("files skips paths that are not untracked", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)
		writeFile(t, dir, "x.txt", "x\n")
		writeFile(t, dir, "y.txt", "y\n")

		out, err := runCmd(t, app, dir, "add", "--files", "y.txt README.md missing.txt")
		require.NoError(t, err)

		assert.Contains(t, out, "✅ Added 1 file(s) to staging:\n   ➕ y.txt")
		assert.Equal(t, "y.txt", runGit(t, dir, "diff", "--cached", "--name-only"))
	})

	t.Run("files with no untracked match", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)
		writeFile(t, dir, "x.txt", "x\n")

		out, err := runCmd(t, app, dir, "add", "--files", "README.md")
		require.NoError(t, err)

		assert.Contains(t, out, "⚠️  No files to add")
	})
}

func TestLog(t *testing.T) {
	t.Run("recent commits", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)
		writeFile(t, dir, "a.txt", "one\n")
		_, err := runCmd(t, app, dir, "commit", "Add a")
		require.NoError(t, err)

		out, err := runCmd(t, app, dir, "log")
		require.NoError(t, err)

		assert.Contains(t, out, "📚 Recent commits (2):")
		assert.Contains(t, out, "   📝 Add a\n")
		assert.Contains(t, out, "   📝 Initial commit\n")
		assert.Contains(t, out, "   👤 "+domain.DefaultAuthor.String())
		assert.Less(t, strings.Index(out, "Add a"), strings.Index(out, "Initial commit"), "newest first")
	})

	t.Run("count limits the output", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)
		writeFile(t, dir, "a.txt", "one\n")
		_, err := runCmd(t, app, dir, "commit", "Add a")
		require.NoError(t, err)

		out, err := runCmd(t, app, dir, "log", "-n", "1")
		require.NoError(t, err)

		assert.Contains(t, out, "📚 Recent commits (1):")
		assert.NotContains(t, out, "Initial commit")
	})

	t.Run("invalid count", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)

		_, err := runCmd(t, app, dir, "log", "--count", "0")

		require.Error(t, err)
	})

	t.Run("no commits", func(t *testing.T) {
		repo := fakeRepo(t, false)
		app, _ := newTestApp(t, &mocks.AdapterMock{
			FindRepositoryFunc: func(context.Context, string) (domain.Repository, bool) { return repo, true },
			CommitHistoryFunc: func(context.Context, domain.Repository, int) ([]domain.Commit, error) {
				return nil, nil
			},
		})

		out, err := runCmd(t, app, repo.Root, "log")
		require.NoError(t, err)

		assert.Contains(t, out, "📝 No commits found in this repository")
	})
}

func TestValidate(t *testing.T) {
	t.Run("fresh repository", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)

		out, err := runCmd(t, app, dir, "validate")
		require.NoError(t, err)

		assert.Contains(t, out, "🔍 Git Repository Validation")
		assert.Contains(t, out, "✅ Repository: Valid git repository")
		assert.Contains(t, out, "✅ Author: "+domain.DefaultAuthor.String())
		assert.Contains(t, out, "⚠️  Remote: No remote repository configured")
		assert.Contains(t, out, "✨ Status: Working directory clean")
		assert.Contains(t, out, "💡 Repository is ready for smart commits!")
	})

	t.Run("reports changes, remote and leftover branches", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)
		runGit(t, dir, "remote", "add", "origin", "https://example.com/repo.git")
		runGit(t, dir, "branch", "temp-1700000000000")
		writeFile(t, dir, "README.md", "changed\n")
		writeFile(t, dir, "new.txt", "n\n")

		out, err := runCmd(t, app, dir, "validate")
		require.NoError(t, err)

		assert.Contains(t, out, "✅ Remote: 'origin' remote configured")
		assert.Contains(t, out, "leftover temporary branches temp-1700000000000")
		assert.Contains(t, out, "📝 Status: 2 files with changes")
	})

	t.Run("blocked author", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)
		runGit(t, dir, "config", "user.name", "Anonymous")

		out, err := runCmd(t, app, dir, "validate")
		require.NoError(t, err)

		assert.Contains(t, out, "❌ Author: ")
	})
}

func TestGitInit(t *testing.T) {
	app, _ := newGitApp(t)
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	out, err := runCmd(t, app, dir, "git-init")
	require.NoError(t, err)

	assert.Contains(t, out, "✅ Initialized git repository '"+filepath.Base(dir)+"' at "+dir)
	assert.Equal(t, "main", runGit(t, dir, "rev-parse", "--abbrev-ref", "HEAD"))
	assert.Equal(t, "Initial commit", runGit(t, dir, "log", "-1", "--format=%s"))

	readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "# "+filepath.Base(dir))
}

func TestConfigIdentity(t *testing.T) {
	t.Run("writes the repository identity", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)

		out, err := runCmd(t, app, dir, "config", "Jane Doe", "jane@example.com")
		require.NoError(t, err)

		assert.Contains(t, out, "✅ Git configuration updated successfully!")
		assert.Contains(t, out, "👤 Author: Jane Doe <jane@example.com>")
		assert.Equal(t, "Jane Doe", runGit(t, dir, "config", "--local", "user.name"))
		assert.Equal(t, "jane@example.com", runGit(t, dir, "config", "--local", "user.email"))
	})

	t.Run("invalid email", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)

		out, err := runCmd(t, app, dir, "config", "Jane Doe", "not-an-email")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
		assert.Contains(t, out, "❌ Error: ")
	})

	t.Run("wrong argument count", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)

		_, err := runCmd(t, app, dir, "config", "Jane")

		require.Error(t, err)
	})
}

func TestAuth(t *testing.T) {
	newPrompter := func(name, email string, update, proceed bool) *promptmocks.PrompterMock {
		return &promptmocks.PrompterMock{
			PrintFunc: func(string) {},
			ConfirmFunc: func(title, _ string) (bool, error) {
				if title == "Update the configured identity?" {
					return update, nil
				}
				return proceed, nil
			},
			InputFunc: func(title, _ string, validate func(string) error) (string, error) {
				value := name
				if strings.Contains(title, "email") {
					value = email
				}
				if err := validate(value); err != nil {
					return "", err
				}
				return value, nil
			},
		}
	}

	t.Run("updates the identity", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)
		p := newPrompter("Jane Doe", "jane@example.com", true, true)
		app.Prompter = p

		out, err := runCmd(t, app, dir, "auth")
		require.NoError(t, err)

		assert.Contains(t, out, "✅ Git authentication configured successfully!")
		assert.Contains(t, out, "👤 Author: Jane Doe <jane@example.com>")
		assert.Equal(t, "Jane Doe", runGit(t, dir, "config", "--local", "user.name"))

		calls := p.ConfirmCalls()
		require.Len(t, calls, 2)
		assert.Equal(t, "Current configuration: "+domain.DefaultAuthor.String(), calls[0].Description)
	})

	t.Run("declining the update keeps the identity", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)
		p := newPrompter("Jane Doe", "jane@example.com", false, true)
		app.Prompter = p

		_, err := runCmd(t, app, dir, "auth")
		require.NoError(t, err)

		assert.Empty(t, p.InputCalls())
		assert.Equal(t, domain.DefaultAuthor.Name, runGit(t, dir, "config", "--local", "user.name"))
	})

	t.Run("declining the final confirmation", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)
		app.Prompter = newPrompter("Jane Doe", "jane@example.com", true, false)

		out, err := runCmd(t, app, dir, "auth")
		require.NoError(t, err)

		assert.NotContains(t, out, "configured successfully")
		assert.Equal(t, domain.DefaultAuthor.Name, runGit(t, dir, "config", "--local", "user.name"))
	})

	t.Run("cancel", func(t *testing.T) {
		app, _ := newGitApp(t)
		dir := initRepo(t, app)
		app.Prompter = &promptmocks.PrompterMock{
			PrintFunc: func(string) {},
			ConfirmFunc: func(string, string) (bool, error) {
				return false, prompt.ErrCanceled
			},
		}

		out, err := runCmd(t, app, dir, "auth")
		require.NoError(t, err)

		assert.Contains(t, out, "✅ Authentication setup cancelled.")
	})
}

func TestPromptAuthor_Validators(t *testing.T) {
	var validators []func(string) error
	p := &promptmocks.PrompterMock{
		PrintFunc:   func(string) {},
		ConfirmFunc: func(string, string) (bool, error) { return true, nil },
		InputFunc: func(title, _ string, validate func(string) error) (string, error) {
			validators = append(validators, validate)
			if strings.Contains(title, "email") {
				return "jane@example.com", nil
			}
			return "Jane Doe", nil
		},
	}

	author, ok, err := promptAuthor(p, domain.UnknownAuthor)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Jane Doe <jane@example.com>", author.String())
	assert.Len(t, p.ConfirmCalls(), 1, "no update prompt without an identity")

	require.Len(t, validators, 2)
	assert.Error(t, validators[0](""))
	assert.NoError(t, validators[0]("Jane"))
	assert.Error(t, validators[1]("nope"))
	assert.NoError(t, validators[1]("jane@example.com"))
}
