package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swaswa-core/dev-shell/internal/style"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate git repository and configuration",
		Long: `Check that the current directory is inside a repository, that the
configured author may commit, that a remote exists, and report leftover
temporary branches and pending changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app, err := requireApp(ctx)
			if err != nil {
				return err
			}

			repo, err := findRepository(ctx, app)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, style.Header("🔍 Git Repository Validation"))
			fmt.Fprintln(out)

			if err := app.Validator.ValidateRepository(repo); err != nil {
				fmt.Fprintln(out, style.Error("Repository: "+err.Error()))
				return nil
			}
			fmt.Fprintln(out, style.Success("Repository: Valid git repository"))

			author, ok, err := configuredAuthor(ctx, app, repo)
			switch {
			case err != nil:
				fmt.Fprintln(out, style.Error("Author: "+errorMessage(err)))
			case !ok:
				fmt.Fprintln(out, style.Warning(" Author: Not configured (using default)"))
			default:
				if err := app.Validator.ValidateAuthor(author); err != nil {
					fmt.Fprintln(out, style.Error("Author: "+err.Error()))
				} else {
					fmt.Fprintln(out, style.Success("Author: "+author.String()))
				}
			}

			remote := app.Remote()
			if err := app.Validator.ValidateRemoteRepository(repo, remote); err != nil {
				fmt.Fprintln(out, style.Warning(" Remote: No remote repository configured"))
			} else {
				fmt.Fprintln(out, style.Success(fmt.Sprintf("Remote: '%s' remote configured", remote)))
			}

			if branches, err := app.Git.Branches(ctx, repo); err == nil {
				var leftover []string
				for _, b := range branches {
					if b.Temporary {
						leftover = append(leftover, b.Name)
					}
				}
				if len(leftover) > 0 {
					fmt.Fprintln(out, style.Warning(" Branches: leftover temporary branches "+formatList(leftover)))
				}
			}

			wd, err := app.Git.WorkingDirectoryStatus(ctx, repo)
			if err != nil {
				return fmt.Errorf("get status: %w", err)
			}
			if wd.HasAnythingToShow() {
				fmt.Fprintf(out, "📝 Status: %d files with changes\n", wd.TotalChangeCount()+len(wd.Untracked))
			} else {
				fmt.Fprintln(out, "✨ Status: Working directory clean")
			}

			fmt.Fprintln(out, "\n💡 Repository is ready for smart commits!")
			return nil
		},
	}
}
