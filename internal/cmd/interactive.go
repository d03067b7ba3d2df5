package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swaswa-core/dev-shell/internal/style"
)

func newCommandAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "command-iadd <name>",
		Short: "Register a command as interactive",
		Long: `Register a command that needs the terminal. Shell input whose first word
is a registered command runs with the terminal attached instead of having
its output captured.`,
		Example: `  command-iadd lazygit`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := requireApp(ctx)
			if err != nil {
				return err
			}

			name := strings.TrimSpace(args[0])
			if err := app.Registry.Register(ctx, name); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.Success(fmt.Sprintf("Command '%s' registered as interactive", name)))
			return nil
		},
	}
}

func newCommandListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "command-ilist",
		Short: "List registered interactive commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app, err := requireApp(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cmds := app.Registry.FindAll(ctx)
			if len(cmds) == 0 {
				fmt.Fprintln(out, "No interactive commands registered")
				return nil
			}

			fmt.Fprintln(out, style.Header("📋 Registered Interactive Commands:"))
			for _, c := range cmds {
				fmt.Fprintf(out, "  • %s\n", c.CommandName)
			}
			return nil
		},
	}
}

func newCommandRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "command-iremove <name>",
		Short: "Remove a command from the interactive list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := requireApp(ctx)
			if err != nil {
				return err
			}

			removed, err := app.Registry.RemoveByName(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !removed {
				fmt.Fprintln(out, style.Warning(fmt.Sprintf(" Command '%s' was not registered as interactive", args[0])))
				return nil
			}
			fmt.Fprintln(out, style.Success(fmt.Sprintf("Command '%s' removed from interactive commands", args[0])))
			return nil
		},
	}
}
