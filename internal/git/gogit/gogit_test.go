package gogit

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swaswa-core/dev-shell/internal/domain"
	"github.com/swaswa-core/dev-shell/internal/git"
)

// isolateHome hides the user's global git configuration.
func isolateHome(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
}

func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// initRepo returns an initialized repository holding the initial commit.
func initRepo(t *testing.T) (git.Adapter, domain.Repository) {
	t.Helper()
	isolateHome(t)

	a := New()
	repo, err := a.InitializeRepository(context.Background(), resolvePath(t, t.TempDir()), "demo")
	require.NoError(t, err)
	return a, repo
}

// commitFile writes, stages and commits a single file.
func commitFile(t *testing.T, a git.Adapter, repo domain.Repository, name, content, message string) domain.Commit {
	t.Helper()
	ctx := context.Background()

	writeFile(t, repo.Root, name, content)
	require.NoError(t, a.StageFiles(ctx, repo, []string{name}))
	msg, err := domain.NewCommitMessage(message)
	require.NoError(t, err)
	commit, err := a.CreateCommit(ctx, repo, msg, "")
	require.NoError(t, err)
	return commit
}

func TestInitializeRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("creates main with initial commit", func(t *testing.T) {
		a, repo := initRepo(t)

		assert.True(t, repo.Initialized)
		assert.Equal(t, "demo", repo.Name)
		assert.Equal(t, "main", repo.DefaultBranch)
		assert.False(t, repo.HasRemote)

		readme, err := os.ReadFile(filepath.Join(repo.Root, "README.md"))
		require.NoError(t, err)
		assert.Equal(t, "# demo\n\nInitialized repository", string(readme))

		history, err := a.CommitHistory(ctx, repo, 10)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "Initial commit", history[0].Message.String())
		assert.Equal(t, "Dev Shell <dev-shell@example.com>", history[0].Author)
		assert.Equal(t, "main", history[0].Branch)
		assert.Equal(t, domain.DefaultAuthor.String(), a.ConfiguredAuthor(ctx, repo))
	})

	t.Run("existing repository keeps history", func(t *testing.T) {
		a, repo := initRepo(t)
		commitFile(t, a, repo, "a.txt", "a", "second")

		again, err := a.InitializeRepository(ctx, repo.Root, "")

		require.NoError(t, err)
		assert.Equal(t, filepath.Base(repo.Root), again.Name)
		history, err := a.CommitHistory(ctx, again, 10)
		require.NoError(t, err)
		assert.Len(t, history, 2)
	})

	t.Run("find repository", func(t *testing.T) {
		a, repo := initRepo(t)

		found, ok := a.FindRepository(ctx, repo.Root)
		require.True(t, ok)
		assert.Equal(t, repo.Root, found.Root)

		_, ok = a.FindRepository(ctx, t.TempDir())
		assert.False(t, ok)
	})
}

func TestSmartCommitSequence(t *testing.T) {
	ctx := context.Background()
	a, repo := initRepo(t)

	writeFile(t, repo.Root, "README.md", "changed\n")
	writeFile(t, repo.Root, "a.txt", "new\n")

	wd, err := a.WorkingDirectoryStatus(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md"}, wd.Unstaged)
	assert.Equal(t, []string{"a.txt"}, wd.Untracked)

	original, err := a.CurrentBranch(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, "main", original.Name)

	temp, err := a.CreateBranch(ctx, repo, domain.MustBranchName("temp-20250101-000000"))
	require.NoError(t, err)
	assert.Equal(t, original.Hash, temp.Hash)

	require.NoError(t, a.SwitchToBranch(ctx, repo, temp))
	content, err := os.ReadFile(filepath.Join(repo.Root, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "changed\n", string(content), "switch must keep local changes")

	require.NoError(t, a.StageTrackedChanges(ctx, repo))
	require.NoError(t, a.StageFiles(ctx, repo, wd.Untracked))

	wd, err = a.WorkingDirectoryStatus(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "a.txt"}, wd.Staged)
	assert.Empty(t, wd.Unstaged)

	msg, err := domain.WithFileList("Update readme", wd.AllModifiedFiles())
	require.NoError(t, err)
	commit, err := a.CreateCommit(ctx, repo, msg, temp.Name)
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "a.txt"}, commit.Files)
	assert.Equal(t, temp.Name, commit.Branch)

	require.NoError(t, a.SwitchToBranch(ctx, repo, original))
	require.NoError(t, a.Merge(ctx, repo, temp, original))
	require.NoError(t, a.DeleteBranch(ctx, repo, temp))

	current, err := a.CurrentBranch(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, "main", current.Name)
	assert.Equal(t, commit.Hash, current.Hash)

	content, err = os.ReadFile(filepath.Join(repo.Root, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "changed\n", string(content))

	branches, err := a.Branches(ctx, repo)
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.True(t, branches[0].Current)

	wd, err = a.WorkingDirectoryStatus(ctx, repo)
	require.NoError(t, err)
	assert.False(t, wd.HasAnythingToShow())
}

func TestBranchFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("branch exists", func(t *testing.T) {
		a, repo := initRepo(t)

		_, err := a.CreateBranch(ctx, repo, domain.MustBranchName("main"))

		assert.ErrorIs(t, err, domain.ErrBranchExists)
	})

	t.Run("nothing to commit", func(t *testing.T) {
		a, repo := initRepo(t)
		writeFile(t, repo.Root, "README.md", "unstaged only\n")
		msg, err := domain.NewCommitMessage("noop")
		require.NoError(t, err)

		_, err = a.CreateCommit(ctx, repo, msg, "main")

		assert.ErrorIs(t, err, domain.ErrNothingToCommit)
	})

	t.Run("checkout blocked", func(t *testing.T) {
		a, repo := initRepo(t)
		side, err := a.CreateBranch(ctx, repo, domain.MustBranchName("side"))
		require.NoError(t, err)
		commitFile(t, a, repo, "README.md", "main change\n", "main change")
		writeFile(t, repo.Root, "README.md", "dirty\n")

		err = a.SwitchToBranch(ctx, repo, side)

		assert.ErrorIs(t, err, domain.ErrCheckoutBlocked)
	})

	t.Run("diverged merge", func(t *testing.T) {
		a, repo := initRepo(t)
		main, err := a.CurrentBranch(ctx, repo)
		require.NoError(t, err)
		side, err := a.CreateBranch(ctx, repo, domain.MustBranchName("side"))
		require.NoError(t, err)
		commitFile(t, a, repo, "x.txt", "x", "on main")
		require.NoError(t, a.SwitchToBranch(ctx, repo, side))
		commitFile(t, a, repo, "y.txt", "y", "on side")
		require.NoError(t, a.SwitchToBranch(ctx, repo, main))

		err = a.Merge(ctx, repo, side, main)

		assert.ErrorIs(t, err, domain.ErrMergeConflict)
	})

	t.Run("cannot delete current branch", func(t *testing.T) {
		a, repo := initRepo(t)

		err := a.DeleteBranch(ctx, repo, domain.Branch{Name: "main"})

		assert.ErrorIs(t, err, domain.ErrVcsIO)
	})
}

func TestCommitHistory(t *testing.T) {
	ctx := context.Background()
	a, repo := initRepo(t)
	commitFile(t, a, repo, "a.txt", "a", "second")
	commitFile(t, a, repo, "b.txt", "b", "third\n\nbody")

	history, err := a.CommitHistory(ctx, repo, 2)

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "third", history[0].Message.Summary())
	assert.Equal(t, "second", history[1].Message.Summary())

	none, err := a.CommitHistory(ctx, repo, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPush(t *testing.T) {
	ctx := context.Background()

	t.Run("pushes to bare remote", func(t *testing.T) {
		a, repo := initRepo(t)
		remoteDir := resolvePath(t, t.TempDir())
		_, err := gogit.PlainInit(remoteDir, true)
		require.NoError(t, err)

		r, err := gogit.PlainOpen(repo.Root)
		require.NoError(t, err)
		_, err = r.CreateRemote(&config.RemoteConfig{Name: "origin", URLs: []string{remoteDir}})
		require.NoError(t, err)
		assert.Equal(t, []string{"origin"}, a.Remotes(ctx, repo))

		require.NoError(t, a.Push(ctx, repo, domain.Branch{Name: "main"}, ""))
		require.NoError(t, a.Push(ctx, repo, domain.Branch{Name: "main"}, "origin"), "up to date is not an error")

		bare, err := gogit.PlainOpen(remoteDir)
		require.NoError(t, err)
		ref, err := bare.Reference(plumbing.NewBranchReferenceName("main"), true)
		require.NoError(t, err)
		head, err := r.Head()
		require.NoError(t, err)
		assert.Equal(t, head.Hash(), ref.Hash())
	})

	t.Run("unknown remote", func(t *testing.T) {
		a, repo := initRepo(t)

		err := a.Push(ctx, repo, domain.Branch{Name: "main"}, "origin")

		assert.ErrorIs(t, err, domain.ErrNoRemote)
	})
}

func TestIdentity(t *testing.T) {
	ctx := context.Background()
	a, repo := initRepo(t)
	author, err := domain.NewAuthor("Jane Doe", "jane@example.com")
	require.NoError(t, err)

	require.NoError(t, a.ConfigureAuthor(ctx, repo, author))

	assert.Equal(t, "Jane Doe <jane@example.com>", a.ConfiguredAuthor(ctx, repo))
	commit := commitFile(t, a, repo, "a.txt", "a", "as jane")
	assert.Equal(t, "Jane Doe <jane@example.com>", commit.Author)
}
