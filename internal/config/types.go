// SPDX-License-Identifier: MIT

package config

import "github.com/katalvlaran/linalg/matrix"

type (
	// Config is the effective calculator configuration.
	Config struct {
		// Numeric controls the elimination engine and ingestion policy.
		Numeric NumericConfig `toml:"numeric" mapstructure:"numeric"`
		// Output controls how matrices and scalars are printed.
		Output OutputConfig `toml:"output" mapstructure:"output"`
		// UI controls the interactive shell.
		UI UIConfig `toml:"ui" mapstructure:"ui"`
		// Log controls diagnostics written to stderr.
		Log LogConfig `toml:"log" mapstructure:"log"`
	}

	// NumericConfig mirrors the matrix numeric options.
	NumericConfig struct {
		// Epsilon is the zero threshold for pivots and ranks (0 = exact).
		Epsilon float64 `toml:"epsilon" mapstructure:"epsilon"`
		// ValidateNaNInf rejects NaN/Inf on matrix ingestion.
		ValidateNaNInf bool `toml:"validate_nan_inf" mapstructure:"validate_nan_inf"`
	}

	// OutputConfig configures result rendering.
	OutputConfig struct {
		// Precision is the number of decimals printed; -1 selects the shortest
		// representation that round-trips.
		Precision int `toml:"precision" mapstructure:"precision"`
		// Color enables lipgloss styling.
		Color bool `toml:"color" mapstructure:"color"`
	}

	// UIConfig configures the interactive shell.
	UIConfig struct {
		// HelpStyle is the glamour style for the help screen ("auto", "dark", "light", "notty").
		HelpStyle string `toml:"help_style" mapstructure:"help_style"`
		// MaxRetries bounds re-prompts after malformed input before an operation is abandoned.
		MaxRetries int `toml:"max_retries" mapstructure:"max_retries"`
	}

	// LogConfig configures the logger.
	LogConfig struct {
		// Level is one of debug, info, warn, error.
		Level string `toml:"level" mapstructure:"level"`
	}
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Numeric: NumericConfig{
			Epsilon:        matrix.DefaultEpsilon,
			ValidateNaNInf: matrix.DefaultValidateNaNInf,
		},
		Output: OutputConfig{
			Precision: -1,
			Color:     true,
		},
		UI: UIConfig{
			HelpStyle:  "auto",
			MaxRetries: 3,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// MatrixOptions translates the numeric section into matrix options.
// Call Validate first: WithEpsilon panics on a negative threshold.
func (c *Config) MatrixOptions() []matrix.Option {
	opts := []matrix.Option{matrix.WithEpsilon(c.Numeric.Epsilon)}
	if c.Numeric.ValidateNaNInf {
		opts = append(opts, matrix.WithValidateNaNInf())
	} else {
		opts = append(opts, matrix.WithNoValidateNaNInf())
	}

	return opts
}
