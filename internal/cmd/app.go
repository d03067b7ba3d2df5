package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/swaswa-core/dev-shell/internal/config"
	"github.com/swaswa-core/dev-shell/internal/exec"
	"github.com/swaswa-core/dev-shell/internal/git"
	"github.com/swaswa-core/dev-shell/internal/git/gogit"
	"github.com/swaswa-core/dev-shell/internal/passthrough"
	"github.com/swaswa-core/dev-shell/internal/prompt"
	"github.com/swaswa-core/dev-shell/internal/registry"
	"github.com/swaswa-core/dev-shell/internal/smartcommit"
	"github.com/swaswa-core/dev-shell/internal/validation"
)

// baseDeps lists the external binaries the git engine needs.
var baseDeps = []string{"git"}

// App holds the dependencies commands run against. It is built once per
// process and shared by every command the shell dispatches.
type App struct {
	Config    *config.Config
	Loader    *config.Loader
	Exec      exec.Executor
	Git       git.Adapter
	Validator *validation.Service
	Commits   *smartcommit.Service
	Registry  *registry.Store
	Runner    *passthrough.Runner
	Prompter  prompt.Prompter

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Streams are the process's standard streams.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func (s Streams) withDefaults() Streams {
	if s.In == nil {
		s.In = os.Stdin
	}
	if s.Out == nil {
		s.Out = os.Stdout
	}
	if s.Err == nil {
		s.Err = os.Stderr
	}
	return s
}

// NewApp wires every dependency from cfg.
func NewApp(cfg *config.Config, loader *config.Loader, s Streams) (*App, error) {
	s = s.withDefaults()
	executor := exec.New()

	var adapter git.Adapter
	switch cfg.VCS.Engine {
	case config.EngineGoGit:
		adapter = gogit.New()
	default:
		if err := checkDependencies(executor); err != nil {
			return nil, err
		}
		adapter = git.NewCLI(executor)
	}

	validator := validation.New(cfg.Validation.BlockedAuthors)
	store := registry.New(cfg.Registry.Path)

	return &App{
		Config:    cfg,
		Loader:    loader,
		Exec:      executor,
		Git:       adapter,
		Validator: validator,
		Commits: smartcommit.NewService(adapter, validator, smartcommit.Config{
			TempPrefix:  cfg.Commit.TempPrefix,
			MaxAttempts: cfg.Commit.MaxBranchAttempts,
			Remote:      cfg.VCS.Remote,
		}),
		Registry: store,
		Runner: passthrough.New(executor, store, passthrough.Config{
			Shell:   cfg.Passthrough.Shell,
			Timeout: cfg.Passthrough.Timeout,
			Stdin:   s.In,
			Stdout:  s.Out,
			Stderr:  s.Err,
		}),
		Prompter: prompt.New(),
		Stdin:    s.In,
		Stdout:   s.Out,
		Stderr:   s.Err,
	}, nil
}

// Remote returns the configured push remote.
func (a *App) Remote() string {
	if a.Config != nil && a.Config.VCS.Remote != "" {
		return a.Config.VCS.Remote
	}
	return git.DefaultRemote
}

// promptBranch returns the current branch of the repository enclosing dir,
// or "" outside a repository.
func (a *App) promptBranch(ctx context.Context, dir string) string {
	repo, err := git.Discover(ctx, a.Git, dir)
	if err != nil || !repo.Initialized {
		return ""
	}
	branch, err := a.Git.CurrentBranch(ctx, repo)
	if err != nil {
		return ""
	}
	return branch.Name
}

// checkDependencies verifies that all required external binaries are available.
func checkDependencies(e exec.Executor) error {
	var missing []string
	for _, dep := range baseDeps {
		if _, err := e.LookPath(dep); err != nil {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return errors.New("missing required dependencies: " + formatList(missing) +
			" (set vcs.engine to go-git to run without a git binary)")
	}
	return nil
}

func requireApp(ctx context.Context) (*App, error) {
	app := AppFromContext(ctx)
	if app == nil {
		return nil, errors.New("dev-shell not initialized")
	}
	return app, nil
}
