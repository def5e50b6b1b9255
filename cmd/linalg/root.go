// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/internal/config"
	"github.com/katalvlaran/linalg/internal/shell"
)

// app carries the state shared by all subcommands once the configuration
// has been loaded.
type app struct {
	stdin   io.Reader
	cfgFile string
	verbose bool
	noColor bool

	cfg     *config.Config
	cfgPath string
	logger  *log.Logger
}

func newRootCommand(stdin io.Reader) *cobra.Command {
	a := &app{stdin: stdin}

	root := &cobra.Command{
		Use:   "linalg",
		Short: "A console calculator for small dense matrices",
		Long: `linalg computes determinants, inverses, adjugates, echelon forms and
solutions of linear systems for small dense matrices.

Run without arguments for the interactive menu, or use a subcommand:
  linalg det --shape 2x2 1 2 3 4
  linalg solve --shape 2x2 --rhs "3 1" 1 1 1 -1
  linalg config show`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runShell(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/linalg/config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runShell(cmd)
		},
	})
	root.AddCommand(newMatrixCommands(a)...)
	root.AddCommand(newConfigCommand(a))

	return root
}

// init loads the configuration and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	cfg, path, err := config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: a.cfgFile})
	if err != nil {
		return err
	}
	if a.noColor {
		cfg.Output.Color = false
	}

	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: config.AppName})
	level, _ := log.ParseLevel(cfg.Log.Level) // validated by config.Load
	if a.verbose {
		level = log.DebugLevel
	}
	a.logger.SetLevel(level)
	a.logger.Debug("Configuration loaded", "path", path, "epsilon", cfg.Numeric.Epsilon)

	a.cfg, a.cfgPath = cfg, path

	return nil
}

func (a *app) runShell(cmd *cobra.Command) error {
	in := a.stdin
	if in == nil {
		in = os.Stdin
	}

	return shell.New(in, cmd.OutOrStdout(), a.cfg, a.logger).Run(cmd.Context())
}

func (a *app) styles(cmd *cobra.Command) shell.Styles {
	return shell.NewStyles(cmd.OutOrStdout(), a.cfg.Output.Color)
}
