// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "linalg"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// LocalConfigFile is the fallback file looked up in the working directory.
	LocalConfigFile = AppName + "." + ConfigFileExt
	// EnvPrefix prefixes environment overrides (LINALG_NUMERIC_EPSILON, ...).
	EnvPrefix = "LINALG"

	maxPrecision = 17
)

var (
	// ErrConfigNotFound is returned when an explicitly requested file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrConfigExists is returned by WriteDefault when it would overwrite a file.
	ErrConfigExists = errors.New("config file already exists")
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// ConfigDirPath overrides the config directory lookup when set.
	ConfigDirPath string
}

// ConfigDir returns the linalg configuration directory: $XDG_CONFIG_HOME/linalg
// when XDG_CONFIG_HOME is set, otherwise the platform user config directory.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	return filepath.Join(base, AppName), nil
}

// DefaultPath returns the path of the user config file.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// Load resolves the configuration and returns it together with the path of
// the file that was read ("" when only defaults and environment applied).
func Load(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath, err := resolvePath(opts)
	if err != nil {
		return nil, "", err
	}
	if resolvedPath != "" {
		v.SetConfigFile(resolvedPath)
		v.SetConfigType(ConfigFileExt)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config %s: %w", resolvedPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, resolvedPath, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("numeric.epsilon", d.Numeric.Epsilon)
	v.SetDefault("numeric.validate_nan_inf", d.Numeric.ValidateNaNInf)
	v.SetDefault("output.precision", d.Output.Precision)
	v.SetDefault("output.color", d.Output.Color)
	v.SetDefault("ui.help_style", d.UI.HelpStyle)
	v.SetDefault("ui.max_retries", d.UI.MaxRetries)
	v.SetDefault("log.level", d.Log.Level)
}

// resolvePath picks the file to read: the explicit path, then the user
// config directory, then ./linalg.toml. A missing implicit file is not an error.
func resolvePath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, opts.ConfigFilePath)
		}

		return opts.ConfigFilePath, nil
	}

	dir := opts.ConfigDirPath
	if dir == "" {
		var err error
		if dir, err = ConfigDir(); err != nil {
			return "", err
		}
	}
	if p := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt); fileExists(p) {
		return p, nil
	}
	if fileExists(LocalConfigFile) {
		return LocalConfigFile, nil
	}

	return "", nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Validate checks value ranges that the file format cannot express.
func (c *Config) Validate() error {
	eps := c.Numeric.Epsilon
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return fmt.Errorf("%w: numeric.epsilon must be finite and >= 0, got %v", ErrInvalidConfig, eps)
	}
	if c.Output.Precision < -1 || c.Output.Precision > maxPrecision {
		return fmt.Errorf("%w: output.precision must be in [-1, %d], got %d",
			ErrInvalidConfig, maxPrecision, c.Output.Precision)
	}
	if c.UI.MaxRetries < 1 {
		return fmt.Errorf("%w: ui.max_retries must be >= 1, got %d", ErrInvalidConfig, c.UI.MaxRetries)
	}
	switch c.UI.HelpStyle {
	case "auto", "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
	default:
		return fmt.Errorf("%w: ui.help_style %q is not a known glamour style", ErrInvalidConfig, c.UI.HelpStyle)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Render encodes cfg as TOML.
func Render(cfg *Config) ([]byte, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}

	return out, nil
}

// WriteDefault writes the default configuration to path, creating parent
// directories. An existing file is kept unless force is set.
func WriteDefault(path string, force bool) error {
	if !force && fileExists(path) {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}
	content, err := Render(DefaultConfig())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
