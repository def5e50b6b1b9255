// SPDX-License-Identifier: MIT

package config

// configDirOverride allows tests to override the config directory.
var configDirOverride string

// Reset clears test overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
}

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing so that lookups never touch the
// real user configuration.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
