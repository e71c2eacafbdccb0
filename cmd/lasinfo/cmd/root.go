// Package cmd implements the lasinfo command tree.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagVerbose bool
	flagConfig  string

	cfg fileConfig
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lasinfo",
	Short: "Inspect LAS 2.0 well-log files",
	Long: `lasinfo reads Log ASCII Standard (LAS) version 2.0 well-log files and
prints their curves, header metadata, or data matrix.

Defaults may be supplied in a TOML config file (see --config).`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON instead of plain text")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log parse diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a TOML config file")
}

// setup builds the logger and merges the optional config file under the
// flags before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	loaded, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded

	// Flags win over the config file; the file only supplies defaults.
	if !cmd.Flags().Changed("json") && cfg.JSON != nil {
		flagJSON = *cfg.JSON
	}
	return nil
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}
