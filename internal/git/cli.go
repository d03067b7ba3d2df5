package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/swaswa-core/dev-shell/internal/domain"
	"github.com/swaswa-core/dev-shell/internal/exec"
)

// gitEnv forces untranslated messages, since failures are classified from
// stderr text, and keeps git from prompting on the terminal.
var gitEnv = []string{"LC_ALL=C", "GIT_TERMINAL_PROMPT=0", "GIT_MERGE_AUTOEDIT=no"}

// Record separators used with --format.
const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"
)

const readmeName = "README.md"

// gitError builds a domain error from a failed git command, preferring
// stderr over the exit status.
func gitError(kind domain.Kind, operation string, result *exec.Result, err error) error {
	if result != nil {
		if stderr := strings.TrimSpace(string(result.Stderr)); stderr != "" {
			return domain.E(kind, fmt.Sprintf("%s: %s", operation, stderr), nil)
		}
	}
	return domain.E(kind, operation, err)
}

// combinedOutput returns stdout and stderr together, lowercased, for
// message matching.
func combinedOutput(result *exec.Result) string {
	if result == nil {
		return ""
	}
	return strings.ToLower(string(result.Stdout) + "\n" + string(result.Stderr))
}

type cli struct {
	exec exec.Executor
}

// NewCLI returns an Adapter that shells out to the git binary.
func NewCLI(e exec.Executor) Adapter {
	return &cli{exec: e}
}

func (c *cli) run(ctx context.Context, dir string, args ...string) (*exec.Result, error) {
	return c.exec.Run(ctx, &exec.RunOptions{
		Name: "git",
		Args: args,
		Dir:  dir,
		Env:  gitEnv,
	})
}

func (c *cli) output(ctx context.Context, dir string, args ...string) (string, error) {
	result, err := c.run(ctx, dir, args...)
	if err != nil {
		return "", gitError(domain.KindVcsIO, strings.Join(args, " "), result, err)
	}
	return strings.TrimSpace(string(result.Stdout)), nil
}

func (c *cli) FindRepository(ctx context.Context, path string) (domain.Repository, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.Repository{}, false
	}
	if _, err := os.Stat(filepath.Join(abs, ".git")); err != nil {
		return domain.Repository{}, false
	}
	if _, err := c.output(ctx, abs, "rev-parse", "--git-dir"); err != nil {
		return domain.Repository{}, false
	}

	return c.describe(ctx, abs, filepath.Base(abs)), true
}

// describe builds the Repository value for an existing repository.
func (c *cli) describe(ctx context.Context, root, name string) domain.Repository {
	repo := domain.Repository{
		Root:        root,
		Name:        name,
		Initialized: true,
	}
	repo.HasRemote = len(c.Remotes(ctx, repo)) > 0
	if branch, err := c.output(ctx, root, "symbolic-ref", "--short", "-q", "HEAD"); err == nil {
		repo.DefaultBranch = branch
	}
	return repo
}

func (c *cli) InitializeRepository(ctx context.Context, path, name string) (domain.Repository, error) {
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

	if result, err := c.run(ctx, abs, "init", "-q"); err != nil {
		return domain.Repository{}, gitError(domain.KindInitFailed, "git init", result, err)
	}

	if !c.hasCommits(ctx, abs) {
		if err := c.initialCommit(ctx, abs, name); err != nil {
			return domain.Repository{}, err
		}
	}

	return c.describe(ctx, abs, name), nil
}

// initialCommit establishes "main" with a README commit in an unborn
// repository.
func (c *cli) initialCommit(ctx context.Context, root, name string) error {
	if result, err := c.run(ctx, root, "symbolic-ref", "HEAD", "refs/heads/main"); err != nil {
		return gitError(domain.KindInitFailed, "set main branch", result, err)
	}

	readme := filepath.Join(root, readmeName)
	if _, err := os.Stat(readme); errors.Is(err, os.ErrNotExist) {
		content := fmt.Sprintf("# %s\n\nInitialized repository", name)
		if err := os.WriteFile(readme, []byte(content), 0o644); err != nil {
			return domain.E(domain.KindInitFailed, "write README", err)
		}
	}
	if result, err := c.run(ctx, root, "add", "--", readmeName); err != nil {
		return gitError(domain.KindInitFailed, "stage README", result, err)
	}

	repo := domain.Repository{Root: root}
	if c.ConfiguredAuthor(ctx, repo) == domain.UnknownAuthor {
		if err := c.ConfigureAuthor(ctx, repo, domain.DefaultAuthor); err != nil {
			return domain.E(domain.KindInitFailed, "write default identity", err)
		}
	}

	if result, err := c.run(ctx, root, "commit", "-q", "-m", "Initial commit"); err != nil {
		return gitError(domain.KindInitFailed, "initial commit", result, err)
	}
	return nil
}

func (c *cli) hasCommits(ctx context.Context, root string) bool {
	_, err := c.output(ctx, root, "rev-parse", "-q", "--verify", "HEAD")
	return err == nil
}

func (c *cli) WorkingDirectoryStatus(ctx context.Context, repo domain.Repository) (domain.WorkingDirectory, error) {
	result, err := c.run(ctx, repo.Root, "status", "--porcelain=v1", "-z", "--untracked-files=all")
	if err != nil {
		return domain.WorkingDirectory{}, gitError(domain.KindVcsIO, "read status", result, err)
	}
	return parseStatus(string(result.Stdout))
}

func (c *cli) CurrentBranch(ctx context.Context, repo domain.Repository) (domain.Branch, error) {
	name, err := c.output(ctx, repo.Root, "symbolic-ref", "--short", "-q", "HEAD")
	if err != nil {
		return domain.Branch{}, domain.E(domain.KindVcsIO, "HEAD is detached or unreadable", err)
	}

	// An unborn branch has no hash yet.
	hash, _ := c.output(ctx, repo.Root, "rev-parse", "-q", "--verify", "HEAD")

	return domain.NewBranch(name, true, hash), nil
}

func (c *cli) Branches(ctx context.Context, repo domain.Repository) ([]domain.Branch, error) {
	out, err := c.output(ctx, repo.Root, "for-each-ref",
		"--format=%(refname:short)"+fieldSep+"%(objectname)"+fieldSep+"%(HEAD)", "refs/heads/")
	if err != nil {
		return nil, err
	}
	return parseBranches(out), nil
}

func (c *cli) CreateBranch(ctx context.Context, repo domain.Repository, name domain.BranchName) (domain.Branch, error) {
	result, err := c.run(ctx, repo.Root, "branch", name.String())
	if err != nil {
		if strings.Contains(combinedOutput(result), "already exists") {
			return domain.Branch{}, domain.E(domain.KindBranchExists, name.String(), nil)
		}
		return domain.Branch{}, gitError(domain.KindVcsIO, "create branch "+name.String(), result, err)
	}

	hash, err := c.output(ctx, repo.Root, "rev-parse", "refs/heads/"+name.String())
	if err != nil {
		return domain.Branch{}, err
	}
	return domain.NewBranch(name.String(), false, hash), nil
}

func (c *cli) SwitchToBranch(ctx context.Context, repo domain.Repository, branch domain.Branch) error {
	result, err := c.run(ctx, repo.Root, "checkout", "-q", branch.Name, "--")
	if err != nil {
		out := combinedOutput(result)
		if strings.Contains(out, "would be overwritten") || strings.Contains(out, "commit your changes or stash them") {
			return gitError(domain.KindCheckoutBlocked, "switch to "+branch.Name, result, err)
		}
		return gitError(domain.KindVcsIO, "switch to "+branch.Name, result, err)
	}
	return nil
}

func (c *cli) DeleteBranch(ctx context.Context, repo domain.Repository, branch domain.Branch) error {
	if result, err := c.run(ctx, repo.Root, "branch", "-D", branch.Name); err != nil {
		return gitError(domain.KindVcsIO, "delete branch "+branch.Name, result, err)
	}
	return nil
}

func (c *cli) StageTrackedChanges(ctx context.Context, repo domain.Repository) error {
	if result, err := c.run(ctx, repo.Root, "add", "-u"); err != nil {
		return gitError(domain.KindVcsIO, "stage tracked changes", result, err)
	}
	return nil
}

func (c *cli) StageFiles(ctx context.Context, repo domain.Repository, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, paths...)
	if result, err := c.run(ctx, repo.Root, args...); err != nil {
		return gitError(domain.KindVcsIO, "stage files", result, err)
	}
	return nil
}

// identityArgs supplies the default identity for commands that write
// commits when the repository has none configured.
func (c *cli) identityArgs(ctx context.Context, repo domain.Repository) []string {
	if c.ConfiguredAuthor(ctx, repo) != domain.UnknownAuthor {
		return nil
	}
	return []string{
		"-c", "user.name=" + domain.DefaultAuthor.Name,
		"-c", "user.email=" + domain.DefaultAuthor.Email,
	}
}

func (c *cli) CreateCommit(ctx context.Context, repo domain.Repository, msg domain.CommitMessage, branch string) (domain.Commit, error) {
	args := append(c.identityArgs(ctx, repo), "commit", "-q", "--cleanup=verbatim", "-F", "-")
	result, err := c.exec.Run(ctx, &exec.RunOptions{
		Name:  "git",
		Args:  args,
		Dir:   repo.Root,
		Env:   gitEnv,
		Stdin: strings.NewReader(msg.String()),
	})
	if err != nil {
		out := combinedOutput(result)
		if strings.Contains(out, "nothing to commit") || strings.Contains(out, "no changes added to commit") {
			return domain.Commit{}, domain.E(domain.KindNothingToCommit, "", nil)
		}
		return domain.Commit{}, gitError(domain.KindVcsIO, "create commit", result, err)
	}

	commits, err := c.readCommits(ctx, repo.Root, 1, branch)
	if err != nil {
		return domain.Commit{}, err
	}
	if len(commits) == 0 {
		return domain.Commit{}, domain.E(domain.KindVcsIO, "read new commit", nil)
	}
	commit := commits[0]
	commit.Message = msg

	files, err := c.output(ctx, repo.Root, "diff-tree", "--no-commit-id", "--root", "-r", "-z", "--name-only", commit.Hash)
	if err != nil {
		return domain.Commit{}, err
	}
	commit.Files = splitNUL(files)

	return commit, nil
}

func (c *cli) Merge(ctx context.Context, repo domain.Repository, source, target domain.Branch) error {
	current, err := c.CurrentBranch(ctx, repo)
	if err != nil {
		return err
	}
	if !current.Equal(target) {
		return domain.E(domain.KindVcsIO,
			fmt.Sprintf("merge target %s is not checked out (on %s)", target.Name, current.Name), nil)
	}

	args := append(c.identityArgs(ctx, repo), "merge", "-q", "--no-edit", source.Name)
	result, err := c.run(ctx, repo.Root, args...)
	if err == nil {
		return nil
	}

	out := combinedOutput(result)
	if strings.Contains(out, "conflict") || strings.Contains(out, "automatic merge failed") {
		// Leave no half-merged state behind.
		_, _ = c.run(ctx, repo.Root, "merge", "--abort") //nolint:errcheck // best-effort cleanup
		return gitError(domain.KindMergeConflict, fmt.Sprintf("merge %s into %s", source.Name, target.Name), result, err)
	}
	return gitError(domain.KindVcsIO, fmt.Sprintf("merge %s into %s", source.Name, target.Name), result, err)
}

// Substrings of git push failures, lowercase.
var (
	authFailures = []string{
		"authentication failed",
		"authentication required",
		"could not read username",
		"could not read password",
		"terminal prompts disabled",
		"permission denied",
		"invalid username or password",
		"the requested url returned error: 403",
		"the requested url returned error: 401",
	}
	networkFailures = []string{
		"could not resolve host",
		"connection refused",
		"connection timed out",
		"network is unreachable",
		"operation timed out",
		"unable to access",
		"could not read from remote repository",
		"does not appear to be a git repository",
	}
)

// classifyPush maps push output to a failure kind.
func classifyPush(out string) domain.Kind {
	for _, s := range authFailures {
		if strings.Contains(out, s) {
			return domain.KindAuthRequired
		}
	}
	for _, s := range networkFailures {
		if strings.Contains(out, s) {
			return domain.KindNetworkError
		}
	}
	return domain.KindVcsIO
}

func (c *cli) Push(ctx context.Context, repo domain.Repository, branch domain.Branch, remote string) error {
	if remote == "" {
		remote = DefaultRemote
	}
	result, err := c.run(ctx, repo.Root, "push", remote, branch.Name)
	if err != nil {
		kind := classifyPush(combinedOutput(result))
		return gitError(kind, fmt.Sprintf("push %s to %s", branch.Name, remote), result, err)
	}
	return nil
}

func (c *cli) CommitHistory(ctx context.Context, repo domain.Repository, max int) ([]domain.Commit, error) {
	if max <= 0 || !c.hasCommits(ctx, repo.Root) {
		return []domain.Commit{}, nil
	}

	branch := ""
	if current, err := c.CurrentBranch(ctx, repo); err == nil {
		branch = current.Name
	}
	return c.readCommits(ctx, repo.Root, max, branch)
}

func (c *cli) readCommits(ctx context.Context, root string, max int, branch string) ([]domain.Commit, error) {
	format := "--format=%H" + fieldSep + "%an <%ae>" + fieldSep + "%at" + fieldSep + "%B" + recordSep
	result, err := c.run(ctx, root, "log", "-n", strconv.Itoa(max), format, "HEAD")
	if err != nil {
		return nil, gitError(domain.KindVcsIO, "read history", result, err)
	}
	return parseLog(string(result.Stdout), branch)
}

func (c *cli) ConfiguredAuthor(ctx context.Context, repo domain.Repository) string {
	name, nameErr := c.output(ctx, repo.Root, "config", "--get", "user.name")
	email, emailErr := c.output(ctx, repo.Root, "config", "--get", "user.email")
	if nameErr != nil || emailErr != nil || name == "" || email == "" {
		return domain.UnknownAuthor
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

func (c *cli) ConfigureAuthor(ctx context.Context, repo domain.Repository, author domain.Author) error {
	if _, err := c.output(ctx, repo.Root, "config", "user.name", author.Name); err != nil {
		return err
	}
	if _, err := c.output(ctx, repo.Root, "config", "user.email", author.Email); err != nil {
		return err
	}
	return nil
}

func (c *cli) Remotes(ctx context.Context, repo domain.Repository) []string {
	out, err := c.output(ctx, repo.Root, "remote")
	if err != nil || out == "" {
		return []string{}
	}
	return strings.Fields(out)
}

// commitTime converts a unix timestamp field.
func commitTime(field string) time.Time {
	secs, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(secs, 0)
}
