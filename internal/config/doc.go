// SPDX-License-Identifier: MIT

// Package config handles calculator configuration using Viper with TOML as the file format.
//
// Configuration is resolved from, in order of increasing precedence: built-in
// defaults, a TOML file ($XDG_CONFIG_HOME/linalg/config.toml, else
// ./linalg.toml, or the file named by --config) and LINALG_* environment
// variables (LINALG_NUMERIC_EPSILON, LINALG_OUTPUT_PRECISION, ...).
//
// The numeric section maps onto matrix options (see Config.MatrixOptions);
// the remaining sections drive the interactive shell and logging.
package config
