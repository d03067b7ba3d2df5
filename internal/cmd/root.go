// Package cmd implements the dev-shell commands using Cobra.
// Commands run one-shot from the command line or, with no arguments, inside
// an interactive shell that dispatches each line to a fresh command tree.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swaswa-core/dev-shell/internal/config"
	"github.com/swaswa-core/dev-shell/internal/shell"
	"github.com/swaswa-core/dev-shell/internal/slogger"
	"github.com/swaswa-core/dev-shell/internal/style"
)

// NewRootCmd builds the command tree. A fresh tree is built for every shell
// line so flag values never leak between lines.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "devshell [command]",
		Short: "A developer shell with smart git commits",
		Long: `dev-shell is an interactive shell for day-to-day git work.

Run without arguments to start the shell. Inside it, dev-shell commands such
as commit and status run directly and anything else is handed to your system
shell. Run with a command to execute it once and exit.`,
		Example: `  # Start the interactive shell
  devshell

  # Smart commit from the command line
  devshell commit "Fix login redirect" --push`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			verbosity, err := cmd.Flags().GetCount("verbose")
			if err != nil || verbosity == 0 {
				return nil
			}

			ctx := cmd.Context()
			var level string
			if cfg := ConfigFromContext(ctx); cfg != nil {
				level = cfg.Log.Level
			}
			logger := slogger.New(slogger.Config{Verbosity: verbosity, Level: level, Output: cmd.ErrOrStderr()})
			cmd.SetContext(slogger.WithLogger(ctx, logger))
			return nil
		},
		RunE: runRoot,
	}

	root.PersistentFlags().CountP("verbose", "v", "increase log verbosity (-v info, -vv debug)")
	// Everything after the first argument belongs to the pass-through command.
	root.Flags().SetInterspersed(false)

	root.AddCommand(
		newCommitCmd(),
		newStatusCmd(),
		newAddCmd(),
		newGitInitCmd(),
		newLogCmd(),
		newValidateCmd(),
		newConfigCmd(),
		newAuthCmd(),
		newCommandAddCmd(),
		newCommandListCmd(),
		newCommandRemoveCmd(),
		newGitHelpCmd(),
		newShellConfigCmd(),
		newSetAliasCmd(),
		newVersionCmd(),
	)
	return root
}

// runRoot starts the interactive shell, or passes its arguments to the
// system shell when they name no dev-shell command.
func runRoot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := requireApp(ctx)
	if err != nil {
		return err
	}
	dir, err := WorkDirFromContext(ctx)
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	if len(args) > 0 {
		return app.Runner.Exec(ctx, dir, strings.Join(args, " "))
	}

	sess, err := shell.New(&dispatcher{app: app}, app.Runner, shell.Config{
		Dir:    dir,
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Branch: app.promptBranch,
	})
	if err != nil {
		return err
	}
	return sess.Run(ctx)
}

// Main runs dev-shell with the process arguments and returns the exit code.
func Main() int {
	return Run(context.Background(), os.Args[1:], Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
}

// Run loads configuration, wires the dependencies and executes args. It
// returns 1 when initialization or the command fails.
func Run(ctx context.Context, args []string, s Streams) int {
	s = s.withDefaults()

	loader, err := config.NewLoader()
	if err != nil {
		fmt.Fprintln(s.Err, style.Error(fmt.Sprintf("Failed to initialize config: %v", err)))
		return 1
	}
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintln(s.Err, style.Error(fmt.Sprintf("Failed to load config %s: %v", loader.Path(), err)))
		return 1
	}

	ctx = slogger.WithLogger(ctx, slogger.New(slogger.Config{Level: cfg.Log.Level, Output: s.Err}))

	app, err := NewApp(cfg, loader, s)
	if err != nil {
		fmt.Fprintln(s.Err, style.Error(err.Error()))
		return 1
	}
	if err := app.Registry.SeedDefaults(ctx); err != nil {
		slogger.L(ctx).Warn("seed interactive commands", "path", app.Registry.Path(), "error", err)
	}

	ctx = WithConfig(ctx, cfg)
	ctx = WithLoader(ctx, loader)
	ctx = WithApp(ctx, app)

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(s.In)
	root.SetOut(s.Out)
	root.SetErr(s.Err)
	if err := execute(ctx, root); err != nil {
		return 1
	}
	return 0
}

// execute runs root and renders a failure as a single ❌ line.
func execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if err != nil {
		slogger.L(ctx).Debug("command failed", "error", err)
		printError(root.ErrOrStderr(), err)
	}
	return err
}

// dispatcher runs shell lines that name a dev-shell command.
type dispatcher struct {
	app *App
}

// Has reports whether name is a dev-shell command.
func (d *dispatcher) Has(name string) bool {
	if name == "help" {
		return true
	}
	for _, c := range NewRootCmd().Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}

// Dispatch executes args in dir. Failures are printed before returning.
func (d *dispatcher) Dispatch(ctx context.Context, dir string, args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(d.app.Stdin)
	root.SetOut(d.app.Stdout)
	root.SetErr(d.app.Stdout)
	return execute(WithApp(WithWorkDir(ctx, dir), d.app), root)
}
