package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const defaultAliasName = "devshell"

func newSetAliasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-alias [name]",
		Short: "Print a shell alias for dev-shell",
		Long: `Print an alias line that starts dev-shell, and the shell profile to add
it to. The profile is chosen from $SHELL.`,
		Example: `  # Append the alias to your profile
  devshell set-alias ds >> ~/.zshrc`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := defaultAliasName
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				name = strings.TrimSpace(args[0])
			}

			exe, err := os.Executable()
			if err != nil {
				return fmt.Errorf("locate executable: %w", err)
			}
			if resolved, err := filepath.EvalSymlinks(exe); err == nil {
				exe = resolved
			}

			fmt.Fprintln(cmd.OutOrStdout(), aliasLine(name, exe))
			fmt.Fprintf(cmd.ErrOrStderr(), "💡 Add the line above to %s\n", profileFor(os.Getenv("SHELL")))
			return nil
		},
	}
}

func aliasLine(name, exe string) string {
	return fmt.Sprintf("alias %s=\"'%s'\"", name, exe)
}

// profileFor returns the startup file for the shell at path.
func profileFor(shellPath string) string {
	switch filepath.Base(shellPath) {
	case "zsh":
		return "~/.zshrc"
	case "bash":
		return "~/.bashrc"
	case "fish":
		return "~/.config/fish/config.fish"
	default:
		return "~/.profile"
	}
}
