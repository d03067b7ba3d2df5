// Package smartcommit snapshots a dirty working tree into the current branch
// through a short-lived temporary branch.
//
// A run moves through the states Idle, Validated, TempCreated, OnTemp,
// Staged, Committed, Restored, Merged, CleanedUp and Done. A failure after
// the temporary branch exists switches back to the original branch and
// deletes the temporary one before the failure is returned.
package smartcommit

import (
	"context"
	"errors"
	"time"

	"github.com/swaswa-core/dev-shell/internal/domain"
	"github.com/swaswa-core/dev-shell/internal/git"
	"github.com/swaswa-core/dev-shell/internal/slogger"
)

// DefaultMaxAttempts is the number of temporary branch names tried before
// giving up: the first attempt plus three retries.
const DefaultMaxAttempts = 4

// State is a step of a smart-commit run.
type State int

// Run states in forward order, followed by Compensating.
const (
	Idle State = iota
	Validated
	TempCreated
	OnTemp
	Staged
	Committed
	Restored
	Merged
	CleanedUp
	Done
	Compensating
)

var stateNames = [...]string{
	Idle:         "Idle",
	Validated:    "Validated",
	TempCreated:  "TempCreated",
	OnTemp:       "OnTemp",
	Staged:       "Staged",
	Committed:    "Committed",
	Restored:     "Restored",
	Merged:       "Merged",
	CleanedUp:    "CleanedUp",
	Done:         "Done",
	Compensating: "Compensating",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// vcs is the subset of git.Adapter the workflow drives.
type vcs interface {
	WorkingDirectoryStatus(ctx context.Context, repo domain.Repository) (domain.WorkingDirectory, error)
	CurrentBranch(ctx context.Context, repo domain.Repository) (domain.Branch, error)
	CreateBranch(ctx context.Context, repo domain.Repository, name domain.BranchName) (domain.Branch, error)
	SwitchToBranch(ctx context.Context, repo domain.Repository, branch domain.Branch) error
	DeleteBranch(ctx context.Context, repo domain.Repository, branch domain.Branch) error
	StageTrackedChanges(ctx context.Context, repo domain.Repository) error
	StageFiles(ctx context.Context, repo domain.Repository, paths []string) error
	CreateCommit(ctx context.Context, repo domain.Repository, msg domain.CommitMessage, branch string) (domain.Commit, error)
	Merge(ctx context.Context, repo domain.Repository, source, target domain.Branch) error
	Push(ctx context.Context, repo domain.Repository, branch domain.Branch, remote string) error
}

// preconditions is the subset of validation.Service the workflow needs.
type preconditions interface {
	ValidateRepository(repo domain.Repository) error
	ValidateCommitMessage(raw string) (domain.CommitMessage, error)
}

// Config configures a Service.
type Config struct {
	TempPrefix  string // temporary branch prefix, default "temp"
	MaxAttempts int    // temporary branch names tried, default DefaultMaxAttempts
	Remote      string // push remote, default "origin"
}

// Service runs smart commits. Runs against the same working tree must not
// overlap.
type Service struct {
	git         vcs
	validator   preconditions
	tempPrefix  string
	maxAttempts int
	remote      string

	now     func() time.Time
	sleep   func(ctx context.Context, d time.Duration) error
	observe func(State)
}

// NewService creates a Service.
func NewService(g vcs, v preconditions, cfg Config) *Service {
	if cfg.TempPrefix == "" {
		cfg.TempPrefix = domain.DefaultTempPrefix
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Remote == "" {
		cfg.Remote = git.DefaultRemote
	}
	return &Service{
		git:         g,
		validator:   v,
		tempPrefix:  cfg.TempPrefix,
		maxAttempts: cfg.MaxAttempts,
		remote:      cfg.Remote,
		now:         time.Now,
		sleep:       sleepCtx,
		observe:     func(State) {},
	}
}

// Result is the outcome of ExecuteWithPush.
type Result struct {
	Commit  domain.Commit
	Pushed  bool
	PushErr error // push failure; the commit stands regardless
}

// Execute commits every change in repo's working tree, untracked files
// included, onto the current branch. The commit message is message followed
// by the list of changed files.
func (s *Service) Execute(ctx context.Context, repo domain.Repository, message string) (domain.Commit, error) {
	r := &run{svc: s, repo: repo}
	return r.execute(ctx, message)
}

// ExecuteWithPush runs Execute and, when push is set and repo has a remote,
// pushes the original branch. A push failure is reported in Result.PushErr
// and never fails the call.
func (s *Service) ExecuteWithPush(ctx context.Context, repo domain.Repository, message string, push bool) (Result, error) {
	r := &run{svc: s, repo: repo}
	commit, err := r.execute(ctx, message)
	if err != nil {
		return Result{}, err
	}

	res := Result{Commit: commit}
	if !push || !repo.HasRemote {
		return res, nil
	}

	log := slogger.L(ctx)
	if err := s.git.Push(ctx, repo, r.original, s.remote); err != nil {
		log.Warn("push failed", "branch", r.original.Name, "remote", s.remote, "error", err)
		res.PushErr = err
		return res, nil
	}
	log.Info("pushed", "branch", r.original.Name, "remote", s.remote)
	res.Pushed = true
	return res, nil
}

// run holds the state of one Execute call.
type run struct {
	svc      *Service
	repo     domain.Repository
	state    State
	original domain.Branch
	temp     domain.Branch
}

func (r *run) enter(ctx context.Context, next State) {
	slogger.L(ctx).Debug("smart commit", "from", r.state, "to", next)
	r.state = next
	r.svc.observe(next)
}

func (r *run) execute(ctx context.Context, message string) (domain.Commit, error) {
	s := r.svc
	log := slogger.L(ctx)

	if _, err := s.validator.ValidateCommitMessage(message); err != nil {
		return domain.Commit{}, err
	}
	if err := s.validator.ValidateRepository(r.repo); err != nil {
		return domain.Commit{}, err
	}
	wd, err := s.git.WorkingDirectoryStatus(ctx, r.repo)
	if err != nil {
		return domain.Commit{}, err
	}
	if !wd.HasAnythingToShow() {
		return domain.Commit{}, domain.E(domain.KindNoChangesToCommit, "", nil)
	}
	if r.original, err = s.git.CurrentBranch(ctx, r.repo); err != nil {
		return domain.Commit{}, err
	}
	r.enter(ctx, Validated)

	if r.temp, err = r.createTempBranch(ctx); err != nil {
		return domain.Commit{}, err
	}
	r.enter(ctx, TempCreated)
	log.Info("created temporary branch", "branch", r.temp.Name)

	commit, err := r.advance(ctx, message)
	if err != nil {
		log.Error("smart commit failed", "state", r.state, "error", err)
		r.compensate(ctx)
		return domain.Commit{}, err
	}

	r.enter(ctx, Done)
	log.Info("smart commit complete", "hash", commit.Hash, "branch", r.original.Name)
	return commit, nil
}

// advance runs the steps after TempCreated.
func (r *run) advance(ctx context.Context, message string) (domain.Commit, error) {
	s := r.svc

	if err := s.git.SwitchToBranch(ctx, r.repo, r.temp); err != nil {
		return domain.Commit{}, err
	}
	r.enter(ctx, OnTemp)

	if err := s.git.StageTrackedChanges(ctx, r.repo); err != nil {
		return domain.Commit{}, err
	}
	wd, err := s.git.WorkingDirectoryStatus(ctx, r.repo)
	if err != nil {
		return domain.Commit{}, err
	}
	if len(wd.Untracked) > 0 {
		if err := s.git.StageFiles(ctx, r.repo, wd.Untracked); err != nil {
			return domain.Commit{}, err
		}
		slogger.L(ctx).Info("staged untracked files", "count", len(wd.Untracked))
	}
	r.enter(ctx, Staged)

	// The file list comes from the tree as staged.
	if wd, err = s.git.WorkingDirectoryStatus(ctx, r.repo); err != nil {
		return domain.Commit{}, err
	}
	msg, err := domain.WithFileList(message, wd.AllModifiedFiles())
	if err != nil {
		return domain.Commit{}, err
	}
	commit, err := s.git.CreateCommit(ctx, r.repo, msg, r.temp.Name)
	if err != nil {
		return domain.Commit{}, err
	}
	r.enter(ctx, Committed)

	if err := s.git.SwitchToBranch(ctx, r.repo, r.original); err != nil {
		return domain.Commit{}, err
	}
	r.enter(ctx, Restored)

	if err := s.git.Merge(ctx, r.repo, r.temp, r.original); err != nil {
		return domain.Commit{}, err
	}
	r.enter(ctx, Merged)

	if err := s.git.DeleteBranch(ctx, r.repo, r.temp); err != nil {
		return domain.Commit{}, err
	}
	r.enter(ctx, CleanedUp)

	return commit, nil
}

// createTempBranch mints a temporary branch, retrying on name collisions.
func (r *run) createTempBranch(ctx context.Context) (domain.Branch, error) {
	s := r.svc

	var lastErr error
	for attempt := range s.maxAttempts {
		if attempt > 0 {
			// Names have one-second resolution.
			if err := s.sleep(ctx, time.Second); err != nil {
				return domain.Branch{}, domain.E(domain.KindInterrupted, "create temporary branch", err)
			}
		}

		name, err := domain.TemporaryBranchName(s.tempPrefix, s.now())
		if err != nil {
			return domain.Branch{}, err
		}
		branch, err := s.git.CreateBranch(ctx, r.repo, name)
		if err == nil {
			return branch, nil
		}
		if !errors.Is(err, domain.ErrBranchExists) {
			return domain.Branch{}, err
		}
		slogger.L(ctx).Debug("temporary branch exists", "branch", name.String(), "attempt", attempt+1)
		lastErr = err
	}
	return domain.Branch{}, lastErr
}

// compensate returns to the original branch and removes the temporary one.
// Failures are logged, never returned. A completed merge is left in place.
func (r *run) compensate(ctx context.Context) {
	failed := r.state
	r.enter(ctx, Compensating)
	log := slogger.L(ctx)

	// Clean up even when the failure was a cancellation.
	ctx = context.WithoutCancel(ctx)

	if err := r.svc.git.SwitchToBranch(ctx, r.repo, r.original); err != nil {
		log.Warn("compensation: switch back failed", "branch", r.original.Name, "failed_state", failed, "error", err)
	}
	if err := r.svc.git.DeleteBranch(ctx, r.repo, r.temp); err != nil {
		log.Warn("compensation: delete temporary branch failed", "branch", r.temp.Name, "failed_state", failed, "error", err)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
