package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/swaswa-core/dev-shell/internal/config"
	"github.com/swaswa-core/dev-shell/internal/exec"
)

func newShellConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell-config [key] [value]",
		Short: "View and modify dev-shell configuration",
		Long: `View and modify dev-shell configuration.

With no arguments, displays all configuration.
With one argument, displays the value for the specified key.
With two arguments, sets the value for the specified key.

Changes take effect the next time dev-shell starts.`,
		Example: `  # Show all config
  shell-config

  # Show value for a specific key
  shell-config vcs.engine

  # Set a value
  shell-config passthrough.timeout 1m

  # Open config file in editor
  shell-config --edit`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loader, err := requireLoader(ctx)
			if err != nil {
				return err
			}

			editFlag, err := cmd.Flags().GetBool("edit")
			if err != nil {
				return fmt.Errorf("get edit flag: %w", err)
			}
			if editFlag {
				return runEdit(ctx, cmd, loader)
			}

			out := cmd.OutOrStdout()
			switch len(args) {
			case 0:
				return runShowAll(out, loader)
			case 1:
				return runShowKey(out, loader, args[0])
			default:
				return runSetKey(out, loader, args[0], args[1])
			}
		},
	}

	cmd.Flags().Bool("edit", false, "open config file in $EDITOR")
	return cmd
}

func requireLoader(ctx context.Context) (*config.Loader, error) {
	if loader := LoaderFromContext(ctx); loader != nil {
		return loader, nil
	}
	loader, err := config.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("init config loader: %w", err)
	}
	return loader, nil
}

func runEdit(ctx context.Context, cmd *cobra.Command, loader *config.Loader) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		return config.ErrNoEditor
	}

	// Ensure config exists (Load creates it if missing)
	if _, err := loader.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	executor := exec.New()
	if app := AppFromContext(ctx); app != nil {
		executor = app.Exec
	}
	_, err := executor.Run(ctx, &exec.RunOptions{
		Name:   editor,
		Args:   []string{loader.Path()},
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("run %s: %w", editor, err)
	}
	return nil
}

func runShowAll(out io.Writer, loader *config.Loader) error {
	if _, err := loader.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	data, err := yaml.Marshal(loader.All())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	fmt.Fprint(out, string(data))
	return nil
}

func runShowKey(out io.Writer, loader *config.Loader, key string) error {
	if err := config.ValidateKey(key); err != nil {
		return err
	}

	// Load to ensure file exists
	if _, err := loader.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	value, err := loader.Get(key)
	if err != nil {
		return err
	}

	switch v := value.(type) {
	case nil:
		fmt.Fprintln(out)
	case string:
		fmt.Fprintln(out, v)
	case map[string]any, []any, []string:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal value: %w", err)
		}
		fmt.Fprint(out, string(data))
	default:
		fmt.Fprintln(out, value)
	}

	return nil
}

func runSetKey(out io.Writer, loader *config.Loader, key, value string) error {
	// Load first to ensure file exists
	if _, err := loader.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := loader.Set(key, value); err != nil {
		return err
	}

	fmt.Fprintf(out, "Set %s = %s\n", key, value)
	return nil
}
