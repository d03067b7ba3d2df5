package cmd

import (
	"context"
	"os"

	"github.com/swaswa-core/dev-shell/internal/config"
)

type contextKey string

const (
	configKey  contextKey = "config"
	loaderKey  contextKey = "loader"
	appKey     contextKey = "app"
	workDirKey contextKey = "workdir"
)

// WithConfig adds the config to the context.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext retrieves the config from context.
func ConfigFromContext(ctx context.Context) *config.Config {
	cfg, ok := ctx.Value(configKey).(*config.Config)
	if !ok {
		return nil
	}
	return cfg
}

// WithLoader adds the config loader to the context.
func WithLoader(ctx context.Context, loader *config.Loader) context.Context {
	return context.WithValue(ctx, loaderKey, loader)
}

// LoaderFromContext retrieves the config loader from context.
func LoaderFromContext(ctx context.Context) *config.Loader {
	loader, ok := ctx.Value(loaderKey).(*config.Loader)
	if !ok {
		return nil
	}
	return loader
}

// WithApp adds the wired dependencies to the context.
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey, app)
}

// AppFromContext retrieves the wired dependencies from context.
func AppFromContext(ctx context.Context) *App {
	app, ok := ctx.Value(appKey).(*App)
	if !ok {
		return nil
	}
	return app
}

// WithWorkDir sets the directory commands operate in. The shell passes its
// logical working directory here instead of changing the process's.
func WithWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirKey, dir)
}

// WorkDirFromContext returns the directory set by WithWorkDir, falling back
// to the process working directory.
func WorkDirFromContext(ctx context.Context) (string, error) {
	if dir, ok := ctx.Value(workDirKey).(string); ok && dir != "" {
		return dir, nil
	}
	return os.Getwd()
}
