package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swaswa-core/dev-shell/internal/domain"
	"github.com/swaswa-core/dev-shell/internal/slogger"
	"github.com/swaswa-core/dev-shell/internal/smartcommit"
	"github.com/swaswa-core/dev-shell/internal/spinner"
	"github.com/swaswa-core/dev-shell/internal/style"
)

func newCommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit <message>",
		Short: "Smart commit with automatic staging and file listing",
		Long: `Commit every change in the working tree, untracked files included, as a
single commit on the current branch.

The work happens on a short-lived temporary branch that is merged back and
deleted. The commit message is followed by the list of changed files. On
failure the original branch is restored and the temporary branch removed.`,
		Example: `  # Commit everything
  commit "Fix authentication bug"

  # Commit and push the current branch
  commit "Add new feature" --push`,
		Args: cobra.ArbitraryArgs,
		RunE: runCommit,
	}

	cmd.Flags().Bool("push", false, "push to the remote after committing")
	return cmd
}

func runCommit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := requireApp(ctx)
	if err != nil {
		return err
	}
	push, err := cmd.Flags().GetBool("push")
	if err != nil {
		return fmt.Errorf("get push flag: %w", err)
	}
	message := strings.Join(args, " ")

	repo, err := openRepository(ctx, app)
	if err != nil {
		return err
	}
	if _, err := app.Validator.ValidateCommitMessage(message); err != nil {
		return err
	}

	log := slogger.L(ctx)
	author, ok, err := configuredAuthor(ctx, app, repo)
	switch {
	case err != nil:
		log.Warn("could not validate author", "error", err)
	case ok:
		if err := app.Validator.ValidateAuthor(author); err != nil {
			return err
		}
	}

	if push {
		if err := app.Validator.ValidateRemoteRepository(repo, app.Remote()); err != nil {
			return err
		}
	}

	log.Info("executing smart commit", "repo", repo.Root, "push", push)

	var res smartcommit.Result
	if push {
		err = spinner.Run(cmd.ErrOrStderr(), "Committing and pushing...", func() error {
			var runErr error
			res, runErr = app.Commits.ExecuteWithPush(ctx, repo, message, true)
			return runErr
		})
	} else {
		res.Commit, err = app.Commits.Execute(ctx, repo, message)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printCommit(out, res.Commit)
	switch {
	case res.Pushed:
		fmt.Fprintln(out, "🚀 Changes pushed to remote")
	case res.PushErr != nil:
		branch := res.Commit.Branch
		if current, err := app.Git.CurrentBranch(ctx, repo); err == nil {
			branch = current.Name
		}
		fmt.Fprintln(out, pushFailureMessage(res.PushErr, app.Remote(), branch))
	}
	return nil
}

func printCommit(w io.Writer, c domain.Commit) {
	fmt.Fprintln(w, style.Success("Smart commit successful!"))
	fmt.Fprintf(w, "📝 Commit: %s\n", c.Message.Summary())
	fmt.Fprintf(w, "🔗 Hash: %s\n", c.ShortHash())
	fmt.Fprintf(w, "📅 Time: %s\n", formatTime(c.Timestamp))
}

// pushFailureMessage explains a failed push after a successful commit.
func pushFailureMessage(err error, remote, branch string) string {
	if errors.Is(err, domain.ErrAuthRequired) {
		return style.Error("Push Error: Git credentials not configured.") + "\n" +
			"💡 To push to remote, please:\n" +
			"   1. Configure a credential helper or personal access token for " + remote + "\n" +
			"   2. Or use SSH keys for authentication\n" +
			style.Success("Smart commit was successful locally (changes not pushed)")
	}

	var de *domain.Error
	cause := err.Error()
	if errors.As(err, &de) {
		cause = causeText(de)
	}
	return style.Warning(" Smart commit successful locally, but push failed: "+cause) + "\n" +
		fmt.Sprintf("💡 You can push manually later with: git push %s %s", remote, branch)
}
