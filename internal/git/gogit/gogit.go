// Package gogit implements git.Adapter in-process with go-git, for hosts
// without a git binary.
//
// go-git cannot perform true merges, so Merge only fast-forwards and
// reports divergent histories as merge conflicts.
package gogit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/swaswa-core/dev-shell/internal/domain"
	"github.com/swaswa-core/dev-shell/internal/git"
)

const (
	mainBranch = "main"
	readmeName = "README.md"
)

type adapter struct {
	now func() time.Time
}

// New returns a go-git backed Adapter.
func New() git.Adapter {
	return &adapter{now: time.Now}
}

func (a *adapter) open(root string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpen(root)
	if err != nil {
		return nil, domain.E(domain.KindVcsIO, "open "+root, err)
	}
	return repo, nil
}

func (a *adapter) worktree(root string) (*gogit.Repository, *gogit.Worktree, error) {
	repo, err := a.open(root)
	if err != nil {
		return nil, nil, err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, nil, domain.E(domain.KindVcsIO, "open worktree", err)
	}
	return repo, wt, nil
}

func (a *adapter) FindRepository(_ context.Context, path string) (domain.Repository, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.Repository{}, false
	}
	if _, err := os.Stat(filepath.Join(abs, ".git")); err != nil {
		return domain.Repository{}, false
	}
	repo, err := gogit.PlainOpen(abs)
	if err != nil {
		return domain.Repository{}, false
	}
	return describe(repo, abs, filepath.Base(abs)), true
}

func describe(repo *gogit.Repository, root, name string) domain.Repository {
	r := domain.Repository{
		Root:        root,
		Name:        name,
		Initialized: true,
		HasRemote:   len(remoteNames(repo)) > 0,
	}
	if head, err := repo.Reference(plumbing.HEAD, false); err == nil && head.Type() == plumbing.SymbolicReference {
		r.DefaultBranch = head.Target().Short()
	}
	return r
}

func (a *adapter) InitializeRepository(ctx context.Context, path, name string) (domain.Repository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.Repository{}, domain.E(domain.KindInitFailed, path, err)
	}
	if name == "" {
		name = filepath.Base(abs)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return domain.Repository{}, domain.E(domain.KindInitFailed, "create directory", err)
	}

	repo, err := gogit.PlainInitWithOptions(abs, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName(mainBranch)},
	})
	if errors.Is(err, gogit.ErrRepositoryAlreadyExists) {
		repo, err = gogit.PlainOpen(abs)
	}
	if err != nil {
		return domain.Repository{}, domain.E(domain.KindInitFailed, "init", err)
	}

	if _, err := repo.Head(); errors.Is(err, plumbing.ErrReferenceNotFound) {
		if err := a.initialCommit(ctx, repo, abs, name); err != nil {
			return domain.Repository{}, err
		}
	}

	return describe(repo, abs, name), nil
}

func (a *adapter) initialCommit(ctx context.Context, repo *gogit.Repository, root, name string) error {
	head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(mainBranch))
	if err := repo.Storer.SetReference(head); err != nil {
		return domain.E(domain.KindInitFailed, "set main branch", err)
	}

	readme := filepath.Join(root, readmeName)
	if _, err := os.Stat(readme); errors.Is(err, os.ErrNotExist) {
		content := fmt.Sprintf("# %s\n\nInitialized repository", name)
		if err := os.WriteFile(readme, []byte(content), 0o644); err != nil {
			return domain.E(domain.KindInitFailed, "write README", err)
		}
	}

	wt, err := repo.Worktree()
	if err != nil {
		return domain.E(domain.KindInitFailed, "open worktree", err)
	}
	if _, err := wt.Add(readmeName); err != nil {
		return domain.E(domain.KindInitFailed, "stage README", err)
	}

	r := domain.Repository{Root: root}
	if a.ConfiguredAuthor(ctx, r) == domain.UnknownAuthor {
		if err := a.ConfigureAuthor(ctx, r, domain.DefaultAuthor); err != nil {
			return domain.E(domain.KindInitFailed, "write default identity", err)
		}
	}

	if _, err := wt.Commit("Initial commit", &gogit.CommitOptions{Author: a.signature(ctx, r)}); err != nil {
		return domain.E(domain.KindInitFailed, "initial commit", err)
	}
	return nil
}

func (a *adapter) WorkingDirectoryStatus(_ context.Context, repo domain.Repository) (domain.WorkingDirectory, error) {
	_, wt, err := a.worktree(repo.Root)
	if err != nil {
		return domain.WorkingDirectory{}, err
	}
	status, err := wt.Status()
	if err != nil {
		return domain.WorkingDirectory{}, domain.E(domain.KindVcsIO, "read status", err)
	}

	var wd domain.WorkingDirectory
	for path, s := range status {
		switch {
		case s.Staging == gogit.Untracked && s.Worktree == gogit.Untracked:
			wd.Untracked = append(wd.Untracked, path)
		default:
			if s.Staging != gogit.Unmodified {
				wd.Staged = append(wd.Staged, path)
			}
			if s.Worktree != gogit.Unmodified {
				wd.Unstaged = append(wd.Unstaged, path)
			}
		}
	}
	sort.Strings(wd.Staged)
	sort.Strings(wd.Unstaged)
	sort.Strings(wd.Untracked)

	return wd, nil
}

func (a *adapter) CurrentBranch(_ context.Context, repo domain.Repository) (domain.Branch, error) {
	r, err := a.open(repo.Root)
	if err != nil {
		return domain.Branch{}, err
	}
	return currentBranch(r)
}

func currentBranch(r *gogit.Repository) (domain.Branch, error) {
	head, err := r.Reference(plumbing.HEAD, false)
	if err != nil {
		return domain.Branch{}, domain.E(domain.KindVcsIO, "read HEAD", err)
	}
	if head.Type() != plumbing.SymbolicReference {
		return domain.Branch{}, domain.E(domain.KindVcsIO, "HEAD is detached", nil)
	}

	hash := ""
	if ref, err := r.Reference(head.Target(), true); err == nil {
		hash = ref.Hash().String()
	}
	return domain.NewBranch(head.Target().Short(), true, hash), nil
}

func (a *adapter) Branches(_ context.Context, repo domain.Repository) ([]domain.Branch, error) {
	r, err := a.open(repo.Root)
	if err != nil {
		return nil, err
	}

	current := ""
	if b, err := currentBranch(r); err == nil {
		current = b.Name
	}

	iter, err := r.Branches()
	if err != nil {
		return nil, domain.E(domain.KindVcsIO, "list branches", err)
	}
	var branches []domain.Branch
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		branches = append(branches, domain.NewBranch(name, name == current, ref.Hash().String()))
		return nil
	})
	if err != nil {
		return nil, domain.E(domain.KindVcsIO, "list branches", err)
	}

	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })
	return branches, nil
}

func (a *adapter) CreateBranch(_ context.Context, repo domain.Repository, name domain.BranchName) (domain.Branch, error) {
	r, err := a.open(repo.Root)
	if err != nil {
		return domain.Branch{}, err
	}

	refName := plumbing.NewBranchReferenceName(name.String())
	if _, err := r.Reference(refName, false); err == nil {
		return domain.Branch{}, domain.E(domain.KindBranchExists, name.String(), nil)
	}

	head, err := r.Head()
	if err != nil {
		return domain.Branch{}, domain.E(domain.KindVcsIO, "resolve HEAD", err)
	}
	if err := r.Storer.SetReference(plumbing.NewHashReference(refName, head.Hash())); err != nil {
		return domain.Branch{}, domain.E(domain.KindVcsIO, "create branch "+name.String(), err)
	}

	return domain.NewBranch(name.String(), false, head.Hash().String()), nil
}

func (a *adapter) SwitchToBranch(_ context.Context, repo domain.Repository, branch domain.Branch) error {
	r, wt, err := a.worktree(repo.Root)
	if err != nil {
		return err
	}

	refName := plumbing.NewBranchReferenceName(branch.Name)
	target, err := r.Reference(refName, true)
	if err != nil {
		return domain.E(domain.KindVcsIO, "switch to "+branch.Name, err)
	}

	// Same commit: only HEAD moves, so the index and worktree stay as they are.
	if head, err := r.Head(); err == nil && head.Hash() == target.Hash() {
		if err := r.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, refName)); err != nil {
			return domain.E(domain.KindVcsIO, "switch to "+branch.Name, err)
		}
		return nil
	}

	if err := wt.Checkout(&gogit.CheckoutOptions{Branch: refName}); err != nil {
		if errors.Is(err, gogit.ErrUnstagedChanges) {
			return domain.E(domain.KindCheckoutBlocked, "switch to "+branch.Name, err)
		}
		return domain.E(domain.KindVcsIO, "switch to "+branch.Name, err)
	}
	return nil
}

func (a *adapter) DeleteBranch(_ context.Context, repo domain.Repository, branch domain.Branch) error {
	r, err := a.open(repo.Root)
	if err != nil {
		return err
	}

	refName := plumbing.NewBranchReferenceName(branch.Name)
	if _, err := r.Reference(refName, false); err != nil {
		return domain.E(domain.KindVcsIO, "delete branch "+branch.Name, err)
	}
	if current, err := currentBranch(r); err == nil && current.Name == branch.Name {
		return domain.E(domain.KindVcsIO, "cannot delete checked out branch "+branch.Name, nil)
	}
	if err := r.Storer.RemoveReference(refName); err != nil {
		return domain.E(domain.KindVcsIO, "delete branch "+branch.Name, err)
	}
	return nil
}

func (a *adapter) StageTrackedChanges(_ context.Context, repo domain.Repository) error {
	_, wt, err := a.worktree(repo.Root)
	if err != nil {
		return err
	}
	status, err := wt.Status()
	if err != nil {
		return domain.E(domain.KindVcsIO, "read status", err)
	}

	for path, s := range status {
		switch s.Worktree {
		case gogit.Deleted:
			if _, err := wt.Remove(path); err != nil {
				return domain.E(domain.KindVcsIO, "stage removal of "+path, err)
			}
		case gogit.Modified, gogit.UpdatedButUnmerged:
			if _, err := wt.Add(path); err != nil {
				return domain.E(domain.KindVcsIO, "stage "+path, err)
			}
		}
	}
	return nil
}

func (a *adapter) StageFiles(_ context.Context, repo domain.Repository, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	_, wt, err := a.worktree(repo.Root)
	if err != nil {
		return err
	}
	for _, p := range paths {
		if _, err := wt.Add(p); err != nil {
			return domain.E(domain.KindVcsIO, "stage "+p, err)
		}
	}
	return nil
}

// signature returns the configured identity, or the default one.
func (a *adapter) signature(ctx context.Context, repo domain.Repository) *object.Signature {
	author := domain.DefaultAuthor
	if parsed, err := domain.ParseAuthor(a.ConfiguredAuthor(ctx, repo)); err == nil && parsed.String() != domain.UnknownAuthor {
		author = parsed
	}
	return &object.Signature{Name: author.Name, Email: author.Email, When: a.now()}
}

func (a *adapter) CreateCommit(ctx context.Context, repo domain.Repository, msg domain.CommitMessage, branch string) (domain.Commit, error) {
	r, wt, err := a.worktree(repo.Root)
	if err != nil {
		return domain.Commit{}, err
	}

	status, err := wt.Status()
	if err != nil {
		return domain.Commit{}, domain.E(domain.KindVcsIO, "read status", err)
	}
	if !hasStaged(status) {
		return domain.Commit{}, domain.E(domain.KindNothingToCommit, "", nil)
	}

	sig := a.signature(ctx, repo)
	hash, err := wt.Commit(msg.String(), &gogit.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		if errors.Is(err, gogit.ErrEmptyCommit) {
			return domain.Commit{}, domain.E(domain.KindNothingToCommit, "", nil)
		}
		return domain.Commit{}, domain.E(domain.KindVcsIO, "create commit", err)
	}

	commit, err := r.CommitObject(hash)
	if err != nil {
		return domain.Commit{}, domain.E(domain.KindVcsIO, "read new commit", err)
	}
	files, err := changedFiles(commit)
	if err != nil {
		return domain.Commit{}, err
	}

	return domain.Commit{
		Hash:      hash.String(),
		Message:   msg,
		Author:    fmt.Sprintf("%s <%s>", commit.Author.Name, commit.Author.Email),
		Timestamp: commit.Author.When,
		Files:     files,
		Branch:    branch,
	}, nil
}

func hasStaged(status gogit.Status) bool {
	for _, s := range status {
		if s.Staging != gogit.Unmodified && s.Staging != gogit.Untracked {
			return true
		}
	}
	return false
}

// changedFiles lists paths that differ between commit and its first parent.
func changedFiles(commit *object.Commit) ([]string, error) {
	tree, err := commit.Tree()
	if err != nil {
		return nil, domain.E(domain.KindVcsIO, "read commit tree", err)
	}

	var parentTree *object.Tree
	if commit.NumParents() > 0 {
		parent, err := commit.Parent(0)
		if err != nil {
			return nil, domain.E(domain.KindVcsIO, "read parent commit", err)
		}
		if parentTree, err = parent.Tree(); err != nil {
			return nil, domain.E(domain.KindVcsIO, "read parent tree", err)
		}
	}

	changes, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return nil, domain.E(domain.KindVcsIO, "diff commit", err)
	}

	files := make([]string, 0, len(changes))
	for _, ch := range changes {
		name := ch.To.Name
		if name == "" {
			name = ch.From.Name
		}
		files = append(files, name)
	}
	sort.Strings(files)
	return files, nil
}

func (a *adapter) Merge(_ context.Context, repo domain.Repository, source, target domain.Branch) error {
	r, wt, err := a.worktree(repo.Root)
	if err != nil {
		return err
	}

	current, err := currentBranch(r)
	if err != nil {
		return err
	}
	if !current.Equal(target) {
		return domain.E(domain.KindVcsIO,
			fmt.Sprintf("merge target %s is not checked out (on %s)", target.Name, current.Name), nil)
	}

	src, err := r.Reference(plumbing.NewBranchReferenceName(source.Name), true)
	if err != nil {
		return domain.E(domain.KindVcsIO, "resolve "+source.Name, err)
	}
	head, err := r.Head()
	if err != nil {
		return domain.E(domain.KindVcsIO, "resolve HEAD", err)
	}
	if src.Hash() == head.Hash() {
		return nil
	}

	srcCommit, err := r.CommitObject(src.Hash())
	if err != nil {
		return domain.E(domain.KindVcsIO, "read "+source.Name, err)
	}
	headCommit, err := r.CommitObject(head.Hash())
	if err != nil {
		return domain.E(domain.KindVcsIO, "read HEAD commit", err)
	}

	ff, err := headCommit.IsAncestor(srcCommit)
	if err != nil {
		return domain.E(domain.KindVcsIO, "check ancestry", err)
	}
	if !ff {
		return domain.E(domain.KindMergeConflict,
			fmt.Sprintf("%s has diverged from %s", source.Name, target.Name), nil)
	}

	if err := wt.Reset(&gogit.ResetOptions{Commit: src.Hash(), Mode: gogit.MergeReset}); err != nil {
		return domain.E(domain.KindVcsIO, fmt.Sprintf("fast-forward %s to %s", target.Name, source.Name), err)
	}
	return nil
}

func (a *adapter) Push(ctx context.Context, repo domain.Repository, branch domain.Branch, remote string) error {
	if remote == "" {
		remote = git.DefaultRemote
	}
	r, err := a.open(repo.Root)
	if err != nil {
		return err
	}

	ref := plumbing.NewBranchReferenceName(branch.Name)
	err = r.PushContext(ctx, &gogit.PushOptions{
		RemoteName: remote,
		RefSpecs:   []config.RefSpec{config.RefSpec(ref + ":" + ref)},
	})

	detail := fmt.Sprintf("push %s to %s", branch.Name, remote)
	switch {
	case err == nil, errors.Is(err, gogit.NoErrAlreadyUpToDate):
		return nil
	case errors.Is(err, transport.ErrAuthenticationRequired), errors.Is(err, transport.ErrAuthorizationFailed):
		return domain.E(domain.KindAuthRequired, detail, err)
	case errors.Is(err, gogit.ErrRemoteNotFound):
		return domain.E(domain.KindNoRemote, detail, err)
	default:
		return domain.E(domain.KindNetworkError, detail, err)
	}
}

func (a *adapter) CommitHistory(_ context.Context, repo domain.Repository, max int) ([]domain.Commit, error) {
	commits := []domain.Commit{}
	if max <= 0 {
		return commits, nil
	}

	r, err := a.open(repo.Root)
	if err != nil {
		return nil, err
	}
	head, err := r.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return commits, nil
	}
	if err != nil {
		return nil, domain.E(domain.KindVcsIO, "resolve HEAD", err)
	}

	branch := ""
	if head.Name().IsBranch() {
		branch = head.Name().Short()
	}

	iter, err := r.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, domain.E(domain.KindVcsIO, "read history", err)
	}
	err = iter.ForEach(func(c *object.Commit) error {
		if len(commits) >= max {
			return storer.ErrStop
		}
		commits = append(commits, domain.Commit{
			Hash:      c.Hash.String(),
			Message:   domain.HistoryMessage(strings.TrimSpace(c.Message)),
			Author:    fmt.Sprintf("%s <%s>", c.Author.Name, c.Author.Email),
			Timestamp: c.Author.When,
			Branch:    branch,
		})
		return nil
	})
	if err != nil {
		return nil, domain.E(domain.KindVcsIO, "read history", err)
	}

	return commits, nil
}

func (a *adapter) ConfiguredAuthor(_ context.Context, repo domain.Repository) string {
	r, err := gogit.PlainOpen(repo.Root)
	if err != nil {
		return domain.UnknownAuthor
	}
	cfg, err := r.ConfigScoped(config.GlobalScope)
	if err != nil || cfg.User.Name == "" || cfg.User.Email == "" {
		return domain.UnknownAuthor
	}
	return fmt.Sprintf("%s <%s>", cfg.User.Name, cfg.User.Email)
}

func (a *adapter) ConfigureAuthor(_ context.Context, repo domain.Repository, author domain.Author) error {
	r, err := a.open(repo.Root)
	if err != nil {
		return err
	}
	cfg, err := r.Config()
	if err != nil {
		return domain.E(domain.KindVcsIO, "read config", err)
	}
	cfg.User.Name = author.Name
	cfg.User.Email = author.Email
	if err := r.SetConfig(cfg); err != nil {
		return domain.E(domain.KindVcsIO, "write config", err)
	}
	return nil
}

func (a *adapter) Remotes(_ context.Context, repo domain.Repository) []string {
	r, err := gogit.PlainOpen(repo.Root)
	if err != nil {
		return []string{}
	}
	return remoteNames(r)
}

func remoteNames(r *gogit.Repository) []string {
	remotes, err := r.Remotes()
	if err != nil {
		return []string{}
	}
	names := make([]string, 0, len(remotes))
	for _, rm := range remotes {
		names = append(names, rm.Config().Name)
	}
	sort.Strings(names)
	return names
}
