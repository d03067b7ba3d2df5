// Package git defines the version-control capabilities the smart-commit
// workflow needs and implements them over the git command line.
package git

import (
	"context"
	"path/filepath"

	"github.com/swaswa-core/dev-shell/internal/domain"
)

// DefaultRemote is the remote pushed to when none is configured.
const DefaultRemote = "origin"

// Adapter provides repository operations. Failures are *domain.Error values.
//
//go:generate go run github.com/matryer/moq@latest -pkg mocks -out mocks/adapter.go . Adapter
type Adapter interface {
	// FindRepository returns the repository rooted exactly at path.
	// Absence is reported through the boolean, never as an error.
	FindRepository(ctx context.Context, path string) (domain.Repository, bool)

	// InitializeRepository creates (or re-initializes) a repository at path
	// and guarantees a "main" branch holding at least one commit.
	// Fails with KindInitFailed.
	InitializeRepository(ctx context.Context, path, name string) (domain.Repository, error)

	// WorkingDirectoryStatus returns a fresh status snapshot.
	WorkingDirectoryStatus(ctx context.Context, repo domain.Repository) (domain.WorkingDirectory, error)

	// CurrentBranch returns the checked-out branch.
	CurrentBranch(ctx context.Context, repo domain.Repository) (domain.Branch, error)

	// Branches lists local branches.
	Branches(ctx context.Context, repo domain.Repository) ([]domain.Branch, error)

	// CreateBranch creates a branch at HEAD without checking it out.
	// Fails with KindBranchExists when the name is taken.
	CreateBranch(ctx context.Context, repo domain.Repository, name domain.BranchName) (domain.Branch, error)

	// SwitchToBranch checks out branch, keeping local modifications.
	// Fails with KindCheckoutBlocked when local changes would be lost.
	SwitchToBranch(ctx context.Context, repo domain.Repository, branch domain.Branch) error

	// DeleteBranch force-deletes branch.
	DeleteBranch(ctx context.Context, repo domain.Repository, branch domain.Branch) error

	// StageTrackedChanges stages modifications and deletions of tracked
	// files. Untracked files are left alone.
	StageTrackedChanges(ctx context.Context, repo domain.Repository) error

	// StageFiles stages the given paths.
	StageFiles(ctx context.Context, repo domain.Repository, paths []string) error

	// CreateCommit commits the index. Fails with KindNothingToCommit when
	// the index matches HEAD.
	CreateCommit(ctx context.Context, repo domain.Repository, msg domain.CommitMessage, branch string) (domain.Commit, error)

	// Merge merges source into target. Target must be checked out.
	// Fails with KindMergeConflict, leaving no merge in progress.
	Merge(ctx context.Context, repo domain.Repository, source, target domain.Branch) error

	// Push pushes branch to remote. Fails with KindAuthRequired,
	// KindNetworkError or KindVcsIO.
	Push(ctx context.Context, repo domain.Repository, branch domain.Branch, remote string) error

	// CommitHistory returns up to max commits reachable from HEAD,
	// newest first.
	CommitHistory(ctx context.Context, repo domain.Repository, max int) ([]domain.Commit, error)

	// ConfiguredAuthor returns "Name <email>" or domain.UnknownAuthor.
	ConfiguredAuthor(ctx context.Context, repo domain.Repository) string

	// ConfigureAuthor writes author to the repository-local configuration.
	ConfigureAuthor(ctx context.Context, repo domain.Repository, author domain.Author) error

	// Remotes lists remote names; errors yield an empty list.
	Remotes(ctx context.Context, repo domain.Repository) []string
}

// Discover walks from dir toward the filesystem root and returns the first
// repository found.
func Discover(ctx context.Context, a Adapter, dir string) (domain.Repository, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return domain.Repository{}, domain.E(domain.KindNotARepository, dir, err)
	}

	for path := abs; ; {
		if repo, ok := a.FindRepository(ctx, path); ok {
			return repo, nil
		}
		parent := filepath.Dir(path)
		if parent == path {
			break
		}
		path = parent
	}

	return domain.Repository{}, domain.E(domain.KindNotARepository, abs, nil)
}
