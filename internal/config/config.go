// Package config provides configuration management for dev-shell.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Default configuration values.
const (
	DefaultConfigDir  = ".dev-shell"
	DefaultConfigFile = "config.yaml"
)

// Sentinel errors for configuration operations.
var (
	ErrInvalidKey    = errors.New("invalid configuration key")
	ErrInvalidEngine = errors.New("invalid vcs engine")
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrInvalidValue  = errors.New("invalid configuration value")
	ErrNoEditor      = errors.New("$EDITOR environment variable not set")
)

// Engine names accepted by vcs.engine.
const (
	EngineGit   = "git"
	EngineGoGit = "go-git"
)

var validEngines = map[string]bool{
	EngineGit:   true,
	EngineGoGit: true,
}

var validLevels = map[string]bool{
	"error": true,
	"warn":  true,
	"info":  true,
	"debug": true,
}

// validKeys is built once from Config struct reflection.
var validKeys = buildValidKeys()

// validate is the shared validator instance.
var validate = validator.New()

// Config represents the full dev-shell configuration.
type Config struct {
	VCS         VCSConfig         `mapstructure:"vcs"`
	Registry    RegistryConfig    `mapstructure:"registry"`
	Passthrough PassthroughConfig `mapstructure:"passthrough"`
	Commit      CommitConfig      `mapstructure:"commit"`
	Validation  ValidationConfig  `mapstructure:"validation"`
	Log         LogConfig         `mapstructure:"log"`
}

// VCSConfig selects the version control engine.
type VCSConfig struct {
	Engine string `mapstructure:"engine" validate:"required,oneof=git go-git"`
	Remote string `mapstructure:"remote" validate:"required"`
}

// RegistryConfig locates the interactive command registry.
type RegistryConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// PassthroughConfig controls how unknown commands are run.
type PassthroughConfig struct {
	Shell   string        `mapstructure:"shell" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// CommitConfig tunes smart commits.
type CommitConfig struct {
	TempPrefix        string `mapstructure:"temp_prefix" validate:"required,max=32"`
	MaxBranchAttempts int    `mapstructure:"max_branch_attempts" validate:"min=1,max=10"`
}

// ValidationConfig holds commit precondition settings.
type ValidationConfig struct {
	BlockedAuthors []string `mapstructure:"blocked_authors"`
}

// LogConfig sets the minimum log level.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=error warn info debug"`
}

// Validate checks the configuration for errors using struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Loader provides configuration loading and saving.
type Loader struct {
	v       *viper.Viper
	path    string
	homeDir string
}

// NewLoader creates a new configuration loader.
func NewLoader() (*Loader, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home directory: %w", err)
	}

	configPath := filepath.Join(home, DefaultConfigDir, DefaultConfigFile)

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("DEVSHELL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	//nolint:errcheck // BindEnv only fails with zero arguments
	v.BindEnv("vcs.engine", "DEVSHELL_ENGINE")
	//nolint:errcheck // BindEnv only fails with zero arguments
	v.BindEnv("registry.path", "DEVSHELL_REGISTRY")

	l := &Loader{
		v:       v,
		path:    configPath,
		homeDir: home,
	}

	l.setDefaults()

	return l, nil
}

// setDefaults sets all default configuration values using Viper.
func (l *Loader) setDefaults() {
	l.v.SetDefault("vcs.engine", EngineGit)
	l.v.SetDefault("vcs.remote", "origin")
	l.v.SetDefault("registry.path", "~/.dev-shell/commands.json")
	l.v.SetDefault("passthrough.shell", "/bin/sh")
	l.v.SetDefault("passthrough.timeout", "30s")
	l.v.SetDefault("commit.temp_prefix", "temp")
	l.v.SetDefault("commit.max_branch_attempts", 4)
	l.v.SetDefault("validation.blocked_authors", []string{"blocked", "anonymous"})
	l.v.SetDefault("log.level", "error")
}

// Load reads the configuration file, creating defaults if it doesn't exist.
func (l *Loader) Load() (*Config, error) {
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		if err := l.createDefault(); err != nil {
			return nil, fmt.Errorf("create default config: %w", err)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := l.decode()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) decode() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Registry.Path = l.expandPath(cfg.Registry.Path)
	return &cfg, nil
}

// Path returns the configuration file path.
func (l *Loader) Path() string {
	return l.path
}

// All returns every setting as a nested map.
func (l *Loader) All() map[string]any {
	return l.v.AllSettings()
}

// Get returns a configuration value by dot-notation key.
func (l *Loader) Get(key string) (any, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	return l.v.Get(key), nil
}

// Set sets a configuration value by dot-notation key and writes the file.
// A value that leaves the configuration invalid is rejected and not
// written.
func (l *Loader) Set(key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	switch key {
	case "vcs.engine":
		if !validEngines[value] {
			return fmt.Errorf("%w: %s (valid: git, go-git)", ErrInvalidEngine, value)
		}
	case "log.level":
		if !validLevels[value] {
			return fmt.Errorf("%w: %s (valid: error, warn, info, debug)", ErrInvalidLevel, value)
		}
	}

	parsed, err := parseValue(key, value)
	if err != nil {
		return err
	}

	previous := l.v.Get(key)
	l.v.Set(key, parsed)
	cfg, err := l.decode()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		l.v.Set(key, previous)
		return fmt.Errorf("%w: %s=%s: %w", ErrInvalidValue, key, value, err)
	}

	return l.v.WriteConfig()
}

// parseValue converts a command-line string to the key's type.
func parseValue(key, value string) (any, error) {
	switch key {
	case "commit.max_branch_attempts":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be an integer", ErrInvalidValue, key)
		}
		return n, nil
	case "passthrough.timeout":
		if _, err := time.ParseDuration(value); err != nil {
			return nil, fmt.Errorf("%w: %s must be a duration such as 30s", ErrInvalidValue, key)
		}
		return value, nil
	case "validation.blocked_authors":
		var names []string
		for _, n := range strings.Split(value, ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
		return names, nil
	default:
		return value, nil
	}
}

// createDefault writes the default configuration file using Viper.
func (l *Loader) createDefault() error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	return l.v.SafeWriteConfigAs(l.path)
}

// expandPath replaces ~ with the home directory.
func (l *Loader) expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(l.homeDir, path[2:])
	}
	if path == "~" {
		return l.homeDir
	}
	return path
}

// ValidateKey checks if a key is a valid configuration key.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if validKeys[key] {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidKey, key)
}

// Keys returns every valid key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(validKeys))
	for k := range validKeys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// buildValidKeys builds the set of valid keys from Config struct using reflection.
func buildValidKeys() map[string]bool {
	keys := make(map[string]bool)
	addKeysFromType(reflect.TypeOf(Config{}), "", keys)
	return keys
}

// addKeysFromType recursively adds keys from a struct type.
func addKeysFromType(t reflect.Type, prefix string, keys map[string]bool) {
	for i := range t.NumField() {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}
		keys[key] = true

		if field.Type.Kind() == reflect.Struct {
			addKeysFromType(field.Type, key, keys)
		}
	}
}

// IsValidEngine reports whether name is a supported vcs engine.
func IsValidEngine(name string) bool {
	return validEngines[name]
}
