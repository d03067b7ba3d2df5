package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

const defaultLogCount = 10

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent commit history",
		Args:  cobra.NoArgs,
		Example: `  # Show the five newest commits
  log --count 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app, err := requireApp(ctx)
			if err != nil {
				return err
			}
			count, err := cmd.Flags().GetInt("count")
			if err != nil {
				return fmt.Errorf("get count flag: %w", err)
			}
			if count < 1 {
				return errors.New("--count must be at least 1")
			}

			repo, err := openRepository(ctx, app)
			if err != nil {
				return err
			}
			commits, err := app.Git.CommitHistory(ctx, repo, count)
			if err != nil {
				return fmt.Errorf("get history: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(commits) == 0 {
				fmt.Fprintln(out, "📝 No commits found in this repository")
				return nil
			}

			fmt.Fprintf(out, "📚 Recent commits (%d):\n", len(commits))
			for _, c := range commits {
				fmt.Fprintf(out, "\n🔸 %s\n", c.ShortHash())
				fmt.Fprintf(out, "   📝 %s\n", c.Message.Summary())
				fmt.Fprintf(out, "   👤 %s\n", c.Author)
				fmt.Fprintf(out, "   📅 %s\n", formatTime(c.Timestamp))
			}
			return nil
		},
	}

	cmd.Flags().IntP("count", "n", defaultLogCount, "number of commits to show")
	return cmd
}
