package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/swaswa-core/dev-shell/internal/domain"
	"github.com/swaswa-core/dev-shell/internal/prompt"
	"github.com/swaswa-core/dev-shell/internal/style"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config <name> <email>",
		Short: "Configure git user settings",
		Long: `Write the commit identity into the repository's own configuration.
Global git configuration is never modified.`,
		Example: `  config "Jane Doe" jane@example.com`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := requireApp(ctx)
			if err != nil {
				return err
			}

			author, err := domain.NewAuthor(args[0], args[1])
			if err != nil {
				return err
			}
			repo, err := openRepository(ctx, app)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := app.Git.ConfigureAuthor(ctx, repo, author); err != nil {
				fmt.Fprintln(out, "💡 You can also configure manually with:")
				fmt.Fprintf(out, "   git config user.name %q\n", author.Name)
				fmt.Fprintf(out, "   git config user.email %q\n", author.Email)
				return fmt.Errorf("configure git: %w", err)
			}

			fmt.Fprintln(out, style.Success("Git configuration updated successfully!"))
			fmt.Fprintf(out, "👤 Author: %s\n", app.Git.ConfiguredAuthor(ctx, repo))
			fmt.Fprintln(out, "💡 You can now use 'commit --push' to push to remote repositories")
			return nil
		},
	}
}

func newAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Interactive git authentication setup",
		Long: `Prompt for your name and email, confirm, and write them into the
repository's configuration. Shows the current identity first, if any.`,
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

			author, ok, err := promptAuthor(app.Prompter, app.Git.ConfiguredAuthor(ctx, repo))
			out := cmd.OutOrStdout()
			switch {
			case errors.Is(err, prompt.ErrCanceled):
				fmt.Fprintln(out, style.Success("Authentication setup cancelled."))
				return nil
			case err != nil:
				return err
			case !ok:
				return nil
			}

			if err := app.Git.ConfigureAuthor(ctx, repo, author); err != nil {
				return fmt.Errorf("configure git authentication: %w", err)
			}

			printAuthConfigured(out, app.Git.ConfiguredAuthor(ctx, repo))
			return nil
		},
	}
}

// promptAuthor asks for a new identity. It reports false when the user
// declined to change it, after printing why.
func promptAuthor(p prompt.Prompter, current string) (domain.Author, bool, error) {
	p.Print("🔐 Git Authentication Setup")
	p.Print("══════════════════════════════")

	if current != domain.UnknownAuthor {
		update, err := p.Confirm("Update the configured identity?", "Current configuration: "+current)
		if err != nil {
			return domain.Author{}, false, err
		}
		if !update {
			p.Print(style.Success("Authentication setup cancelled. Current configuration unchanged."))
			return domain.Author{}, false, nil
		}
	}

	name, err := p.Input("Enter your full name", "Jane Doe", func(s string) error {
		if s == "" {
			return errors.New("name cannot be empty")
		}
		return nil
	})
	if err != nil {
		return domain.Author{}, false, err
	}

	email, err := p.Input("Enter your email address", "jane@example.com", func(s string) error {
		_, err := domain.NewAuthor(name, s)
		return err
	})
	if err != nil {
		return domain.Author{}, false, err
	}

	author, err := domain.NewAuthor(name, email)
	if err != nil {
		return domain.Author{}, false, err
	}

	proceed, err := p.Confirm("Proceed with configuration?",
		fmt.Sprintf("👤 Name: %s\n📧 Email: %s", author.Name, author.Email))
	if err != nil {
		return domain.Author{}, false, err
	}
	if !proceed {
		p.Print(style.Success("Authentication setup cancelled."))
		return domain.Author{}, false, nil
	}
	return author, true, nil
}

func printAuthConfigured(w io.Writer, author string) {
	fmt.Fprintln(w, style.Success("Git authentication configured successfully!"))
	fmt.Fprintf(w, "👤 Author: %s\n", author)
	fmt.Fprintln(w, `🚀 You can now use 'commit "message" --push' to push to remote repositories`)
	fmt.Fprintln(w, "💡 For GitHub, you may also need to set up a Personal Access Token or SSH keys")
}
