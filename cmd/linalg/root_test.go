// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/internal/config"
	"github.com/katalvlaran/linalg/internal/shell"
	"github.com/katalvlaran/linalg/matrix"
)

// isolate points the config lookup at empty temporary directories.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	config.SetConfigDirOverride(dir)
	t.Cleanup(config.Reset)
	t.Chdir(t.TempDir())

	return dir
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand(strings.NewReader(stdin))
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

// Not parallel: tests share the package-level config directory override.

func TestMatrixCommands(t *testing.T) {
	isolate(t)

	cases := []struct {
		name string
		args []string
		want []string
	}{
		{"det", []string{"det", "--shape", "2x2", "1", "2", "3", "4"}, []string{"Determinant: -2"}},
		{"det negative values", []string{"det", "--shape", "2x2", "1", "-2", "3", "4"}, []string{"Determinant: 10"}},
		{"det quoted row", []string{"det", "--shape", "2x2", "1 2", "3 4"}, []string{"Determinant: -2"}},
		{"inverse", []string{"inverse", "--shape", "2x2", "2", "0", "0", "4"}, []string{"[0.5 0\n0 0.25]"}},
		{"adjugate", []string{"adjugate", "--shape", "2x2", "1", "2", "3", "4"}, []string{"[4 -2\n-3 1]"}},
		{"transpose", []string{"transpose", "--shape", "1x3", "1", "2", "3"}, []string{"[1\n2\n3]"}},
		{"trace", []string{"trace", "--shape", "2x2", "1", "2", "3", "4"}, []string{"Trace: 5", "Rank: 2"}},
		{"rank only", []string{"trace", "--shape", "1x2", "1", "2"}, []string{"Rank: 1"}},
		{"echelon", []string{"echelon", "--shape", "2x2", "0", "1", "1", "0"}, []string{"[1 0\n0 1]", "alpha: -1"}},
		{"reduced echelon", []string{"echelon", "--reduced", "--shape", "2x2", "2", "4", "1", "3"}, []string{"[1 0\n0 1]"}},
		{"props", []string{"props", "--level", "3", "--shape", "2x2", "1", "2", "2", "1"}, []string{"Symmetric:", "Nilpotent (level 3):"}},
		{"scale", []string{"scale", "--by", "-1", "--shape", "1x2", "1", "2"}, []string{"[-1 -2]"}},
		{"mul", []string{"mul", "--shape", "2x2", "--shape2", "2x1", "1", "2", "3", "4", "1", "1"}, []string{"[3\n7]"}},
		{"add", []string{"add", "--shape", "1x2", "--shape2", "1x2", "1", "2", "3", "4"}, []string{"[4 6]"}},
		{"solve one", []string{"solve", "--shape", "2x2", "--rhs", "3 1", "1", "1", "1", "-1"}, []string{"Solutions: ONE", "[2\n1]"}},
		{"solve none", []string{"solve", "--shape", "2x2", "--rhs", "1 2", "1", "1", "1", "1"}, []string{"Solutions: NONE"}},
		{"solve infinite", []string{"solve", "--shape", "1x2", "--rhs", "2", "1", "1"}, []string{"Solutions: INFINITE"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, "", tc.args...)
			require.NoError(t, err)
			for _, w := range tc.want {
				require.Contains(t, out, w)
			}
		})
	}
}

func TestMatrixCommandErrors(t *testing.T) {
	isolate(t)

	cases := []struct {
		name string
		args []string
		want error
	}{
		{"singular", []string{"inverse", "--shape", "2x2", "1", "2", "2", "4"}, matrix.ErrSingular},
		{"non-square det", []string{"det", "--shape", "1x2", "1", "2"}, matrix.ErrNonSquare},
		{"too few values", []string{"det", "--shape", "2x2", "1", "2", "3"}, shell.ErrInputSize},
		{"too many values", []string{"det", "--shape", "1x1", "1", "2"}, shell.ErrInputSize},
		{"bad number", []string{"det", "--shape", "1x1", "x"}, shell.ErrInvalidNumber},
		{"bad shape", []string{"det", "--shape", "2", "1"}, shell.ErrInvalidShape},
		{"overflowing shape", []string{"det", "--shape", "3037000500x3037000500", "1"}, shell.ErrTooLarge},
		{"shape wrapping to zero", []string{"det", "--shape", "4294967296x4294967296", "1"}, shell.ErrTooLarge},
		{"overflowing second shape", []string{"add", "--shape", "1x1", "--shape2", "3037000500x3037000500", "1", "2"}, shell.ErrTooLarge},
		{"nan rejected", []string{"det", "--shape", "1x1", "NaN"}, matrix.ErrNaNInf},
		{"add mismatch", []string{"add", "--shape", "1x2", "--shape2", "2x1", "1", "2", "3", "4"}, matrix.ErrDimensionMismatch},
		{"mul mismatch", []string{"mul", "--shape", "1x2", "--shape2", "1x2", "1", "2", "3", "4"}, matrix.ErrDimensionMismatch},
		{"rhs size", []string{"solve", "--shape", "2x2", "--rhs", "1", "1", "0", "0", "1"}, shell.ErrInputSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, "", tc.args...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestShellIsDefaultCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "5\n1\n1\n3\n1\n")
	require.NoError(t, err)
	require.Contains(t, out, "Determinant: 3")
	require.Contains(t, out, "Good luck.")

	out, err = execute(t, "1\n", "repl")
	require.NoError(t, err)
	require.Contains(t, out, "Good luck.")
}

func TestConfigFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("LINALG_OUTPUT_PRECISION", "2")

	out, err := execute(t, "", "det", "--shape", "2x2", "1", "2", "3", "4")
	require.NoError(t, err)
	require.Contains(t, out, "Determinant: -2.00")
}

func TestConfigFromFlag(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[numeric]\nepsilon = 1e-6\n"), 0o644))

	out, err := execute(t, "", "--config", path, "config", "show")
	require.NoError(t, err)
	require.Contains(t, out, path)
	require.Regexp(t, `epsilon = 1(\.0)?e-0?6`, out)

	// Within the threshold the tiny pivot counts as zero.
	out, err = execute(t, "", "--config", path, "det", "--shape", "2x2", "1e-9", "0", "0", "1")
	require.NoError(t, err)
	require.Contains(t, out, "Determinant: 0")

	_, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "config", "show")
	require.ErrorIs(t, err, config.ErrConfigNotFound)
}

func TestConfigCommands(t *testing.T) {
	dir := isolate(t)

	out, err := execute(t, "", "config", "show")
	require.NoError(t, err)
	require.Contains(t, out, "(using defaults)")
	require.Contains(t, out, "help_style")

	out, err = execute(t, "", "config", "path")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "config.toml"), strings.TrimSpace(out))

	out, err = execute(t, "", "config", "init")
	require.NoError(t, err)
	require.Contains(t, out, "Created")
	require.FileExists(t, filepath.Join(dir, "config.toml"))

	_, err = execute(t, "", "config", "init")
	require.ErrorIs(t, err, config.ErrConfigExists)

	_, err = execute(t, "", "config", "init", "--force")
	require.NoError(t, err)

	local := filepath.Join(t.TempDir(), "linalg.toml")
	_, err = execute(t, "", "config", "init", local)
	require.NoError(t, err)
	require.FileExists(t, local)
}

func TestGetVersionString(t *testing.T) {
	orig, origCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = orig, origCommit })

	Version = "dev"
	require.Equal(t, "dev (built from source)", getVersionString())

	Version, Commit = "v1.2.3", "abc1234"
	require.Equal(t, "v1.2.3 (commit: abc1234)", getVersionString())
}

func TestVerboseLogging(t *testing.T) {
	isolate(t)

	root := newRootCommand(strings.NewReader(""))
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"--no-color", "-v", "det", "--shape", "1x1", "4"})
	require.NoError(t, root.ExecuteContext(context.Background()))

	require.Contains(t, out.String(), "Determinant: 4")
	require.Contains(t, errOut.String(), "Configuration loaded")
	require.Contains(t, errOut.String(), "Running operation")

	// Without -v the default info level hides debug records.
	errOut.Reset()
	root = newRootCommand(strings.NewReader(""))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"--no-color", "det", "--shape", "1x1", "4"})
	require.NoError(t, root.ExecuteContext(context.Background()))
	require.NotContains(t, errOut.String(), "Running operation")
}
