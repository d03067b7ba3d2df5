package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const gitHelp = `🛠️  Git Commands Help

📝 commit "message" [--push]
   Smart commit with automatic branch management
   - Creates a temporary branch
   - Stages tracked and untracked files
   - Commits with the list of changed files
   - Merges back to the original branch
   - Optional: push to the remote

📊 status
   Show current repository status

➕ add [--all] [--files "file1 file2"]
   Add untracked files to the staging area
   - Use --all to add all untracked files
   - Use --files to add specific files
   - Without options, shows untracked files

🔍 validate
   Validate repository and configuration
   - Check repository validity
   - Verify author configuration
   - Check remote setup
   - Show working directory status

⚙️  config "Your Name" "your@email.com"
   Configure git user settings for this repository

🔐 auth
   Interactive authentication setup
   - Prompts for your name and email
   - Confirms before applying

🏗️  git-init [name]
   Initialize a new git repository

📚 log [--count N]
   Show recent commit history

🖥️  command-iadd <name> | command-ilist | command-iremove <name>
   Manage commands that run with the terminal attached

❓ git-help
   Show this help message

💡 Examples:
   pwd                             # Show current directory
   cd src                          # Change to src directory
   ls                              # Run any system command
   status                          # Check what files changed
   add --all                       # Add all untracked files
   add --files "src/main.go"       # Add a specific file
   commit "Fix authentication bug"
   commit "Add new feature" --push
   auth                            # Interactive authentication setup
   config "John Doe" "john@example.com"
   validate
   log --count 5`

func newGitHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "git-help",
		Short: "Show help for git commands",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), gitHelp)
		},
	}
}
