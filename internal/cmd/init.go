package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/swaswa-core/dev-shell/internal/style"
)

func newGitInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "git-init [name]",
		Short: "Initialize a new git repository",
		Long: `Initialize a repository in the current directory.

A new repository gets a README.md, an initial commit on main, and a
repository-local default identity when none is configured. The name
defaults to the directory name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := requireApp(ctx)
			if err != nil {
				return err
			}
			dir, err := WorkDirFromContext(ctx)
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}

			name := filepath.Base(dir)
			if len(args) == 1 && args[0] != "" {
				name = args[0]
			}

			repo, err := app.Git.InitializeRepository(ctx, dir, name)
			if err != nil {
				return fmt.Errorf("initialize repository: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.Success(
				fmt.Sprintf("Initialized git repository '%s' at %s", repo.Name, repo.Root)))
			return nil
		},
	}
}
