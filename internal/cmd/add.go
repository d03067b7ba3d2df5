package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swaswa-core/dev-shell/internal/slogger"
	"github.com/swaswa-core/dev-shell/internal/style"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add untracked files to the staging area",
		Long: `Stage untracked files.

Without flags, lists the untracked files. --files stages only the listed
paths that are untracked; other paths are skipped.`,
		Example: `  # Stage every untracked file
  add --all

  # Stage specific files
  add --files "src/main.go docs/notes.md"`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().Bool("all", false, "add all untracked files")
	cmd.Flags().String("files", "", "space-separated files to add")
	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	app, err := requireApp(ctx)
	if err != nil {
		return err
	}
	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fmt.Errorf("get all flag: %w", err)
	}
	files, err := cmd.Flags().GetString("files")
	if err != nil {
		return fmt.Errorf("get files flag: %w", err)
	}

	repo, err := openRepository(ctx, app)
	if err != nil {
		return err
	}
	wd, err := app.Git.WorkingDirectoryStatus(ctx, repo)
	if err != nil {
		return fmt.Errorf("get status: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(wd.Untracked) == 0 {
		fmt.Fprintln(out, style.Success("No untracked files to add"))
		return nil
	}

	var toAdd []string
	switch {
	case all:
		toAdd = wd.Untracked
	case strings.TrimSpace(files) != "":
		log := slogger.L(ctx)
		for _, f := range strings.Fields(files) {
			if !slices.Contains(wd.Untracked, f) {
				log.Warn("file is not untracked, skipping", "file", f)
				continue
			}
			toAdd = append(toAdd, f)
		}
	default:
		fmt.Fprintln(out, "📁 Untracked files found:")
		for _, f := range wd.Untracked {
			fmt.Fprintf(out, "   ❓ %s\n", f)
		}
		fmt.Fprintln(out, "\n💡 Usage:")
		fmt.Fprintln(out, "   add --all                          # Add all untracked files")
		fmt.Fprintln(out, `   add --files "file1.txt file2.txt"  # Add specific files`)
		return nil
	}

	if len(toAdd) == 0 {
		fmt.Fprintln(out, style.Warning(" No files to add"))
		return nil
	}

	if err := app.Git.StageFiles(ctx, repo, toAdd); err != nil {
		return fmt.Errorf("stage files: %w", err)
	}

	fmt.Fprintln(out, style.Success(fmt.Sprintf("Added %d file(s) to staging:", len(toAdd))))
	for _, f := range toAdd {
		fmt.Fprintf(out, "   ➕ %s\n", f)
	}
	fmt.Fprintln(out, "\n💡 These files will be included in your next commit")
	return nil
}
