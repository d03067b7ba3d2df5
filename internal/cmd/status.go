package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/swaswa-core/dev-shell/internal/domain"
	"github.com/swaswa-core/dev-shell/internal/style"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show git repository status",
		Long: `Show the repository name, path and branch, followed by staged, modified
and untracked files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app, err := requireApp(ctx)
			if err != nil {
				return err
			}

			repo, err := openRepository(ctx, app)
			if err != nil {
				return err
			}
			wd, err := app.Git.WorkingDirectoryStatus(ctx, repo)
			if err != nil {
				return fmt.Errorf("get status: %w", err)
			}
			branch, err := app.Git.CurrentBranch(ctx, repo)
			if err != nil {
				return fmt.Errorf("get current branch: %w", err)
			}

			printStatus(cmd.OutOrStdout(), repo, branch, wd)
			return nil
		},
	}
}

func printStatus(w io.Writer, repo domain.Repository, branch domain.Branch, wd domain.WorkingDirectory) {
	fmt.Fprintf(w, "📁 Repository: %s\n", repo.Name)
	fmt.Fprintf(w, "📍 Path: %s\n", repo.Root)
	fmt.Fprintf(w, "🌿 Branch: %s\n", branch.Name)

	if !wd.HasAnythingToShow() {
		fmt.Fprintln(w, "\n✨ Working directory is clean - no changes to commit")
		return
	}

	fmt.Fprintln(w, "\n"+style.Header("📝 Changes:"))
	printFileGroup(w, "Staged files:", "✅", wd.Staged)
	printFileGroup(w, "Modified files:", "📝", wd.Unstaged)
	printFileGroup(w, "Untracked files:", "❓", wd.Untracked)
	if len(wd.Untracked) > 0 {
		fmt.Fprintln(w, "\n💡 Untracked files are included by smart commit.")
		fmt.Fprintln(w, `💡 Use 'add --all' or 'add --files "file1 file2"' to stage them now`)
	}
	fmt.Fprintln(w, `
💡 Use 'commit "your message"' to create a smart commit`)
}

func printFileGroup(w io.Writer, title, glyph string, files []string) {
	if len(files) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s\n", title)
	for _, f := range files {
		fmt.Fprintf(w, "    %s %s\n", glyph, f)
	}
}
