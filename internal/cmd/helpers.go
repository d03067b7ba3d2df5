package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/swaswa-core/dev-shell/internal/domain"
	"github.com/swaswa-core/dev-shell/internal/git"
	"github.com/swaswa-core/dev-shell/internal/passthrough"
	"github.com/swaswa-core/dev-shell/internal/prompt"
	"github.com/swaswa-core/dev-shell/internal/style"
)

const timeLayout = "2006-01-02 15:04:05"

// findRepository returns the repository enclosing the command's working
// directory.
func findRepository(ctx context.Context, app *App) (domain.Repository, error) {
	dir, err := WorkDirFromContext(ctx)
	if err != nil {
		return domain.Repository{}, fmt.Errorf("get working directory: %w", err)
	}
	return git.Discover(ctx, app.Git, dir)
}

// openRepository is findRepository followed by ValidateRepository.
func openRepository(ctx context.Context, app *App) (domain.Repository, error) {
	repo, err := findRepository(ctx, app)
	if err != nil {
		return domain.Repository{}, err
	}
	if err := app.Validator.ValidateRepository(repo); err != nil {
		return domain.Repository{}, err
	}
	return repo, nil
}

// configuredAuthor returns the repository identity, or false when none is
// configured.
func configuredAuthor(ctx context.Context, app *App, repo domain.Repository) (domain.Author, bool, error) {
	raw := app.Git.ConfiguredAuthor(ctx, repo)
	if raw == domain.UnknownAuthor {
		return domain.Author{}, false, nil
	}
	author, err := domain.ParseAuthor(raw)
	if err != nil {
		return domain.Author{}, false, err
	}
	return author, true, nil
}

// errorMessage turns a command failure into the line shown to the user,
// without the ❌ prefix.
func errorMessage(err error) string {
	var perr *passthrough.Error
	if errors.As(err, &perr) {
		return perr.Error()
	}
	if errors.Is(err, prompt.ErrCanceled) {
		return "Canceled"
	}

	var de *domain.Error
	if !errors.As(err, &de) {
		return "Error: " + err.Error()
	}

	switch de.Kind {
	case domain.KindCommitMessageRequired:
		if domain.ReasonOf(err) == domain.ReasonMessageTooShort {
			return "Error: Commit message must be at least 3 characters long"
		}
		return "Error: Commit message is required"
	case domain.KindNotARepository:
		return "Error: Not a git repository. Please run 'git-init' first or navigate to a git repository."
	case domain.KindNoChangesToCommit:
		return "Error: No changes to commit. Make some changes first!"
	case domain.KindUnauthorized:
		return "Error: Unauthorized to commit. Check your git configuration."
	case domain.KindNoRemote:
		return "Error: No remote repository configured. Cannot push changes."
	case domain.KindMergeConflict:
		return "Error: Merge conflict while applying the smart commit. Your branch was left unchanged."
	case domain.KindCheckoutBlocked:
		return "Error: Checkout blocked by local changes: " + causeText(de)
	case domain.KindInterrupted:
		return "Command interrupted"
	case domain.KindInvalidArgument:
		return "Error: " + de.Detail
	default:
		return "Error: " + err.Error()
	}
}

// causeText prefers the wrapped error's text over the kind's.
func causeText(de *domain.Error) string {
	switch {
	case de.Err != nil:
		return de.Err.Error()
	case de.Detail != "":
		return de.Detail
	default:
		return de.Kind.String()
	}
}

// printError renders err to w as a single ❌ line.
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, style.Error(errorMessage(err)))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Local().Format(timeLayout)
}

// formatList joins strings with commas and "and" before the last item.
func formatList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		var builder strings.Builder
		for i, item := range items {
			if i == len(items)-1 {
				builder.WriteString("and ")
				builder.WriteString(item)
			} else {
				builder.WriteString(item)
				builder.WriteString(", ")
			}
		}
		return builder.String()
	}
}
