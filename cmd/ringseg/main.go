package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/philipparndt/ringseg/internal/job"
	"github.com/philipparndt/ringseg/version"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string

	// cfg holds the drawing settings, loaded before any command runs
	cfg = job.DefaultConfig()

	logger = log.New(io.Discard, "", 0)
	warn   = log.New(os.Stderr, "Warning: ", 0)
)

var rootCmd = &cobra.Command{
	Use:   "ringseg",
	Short: "Ring segment calculator and drawing exporter",
	Long: `ringseg resolves annular stone segments from partial measurements and
exports them as DXF cutting files and a dimensioned A3 approval sheet.

Segments are described in job files (YAML, JSON or TOML). Drawing settings
can be tuned with --config and overridden with RINGSEG_* environment variables.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "drawing settings file")
}

func setup(cmd *cobra.Command, args []string) error {
	if verbose {
		logger = log.New(cmd.ErrOrStderr(), "ringseg: ", log.Ltime)
	}
	warn.SetOutput(cmd.ErrOrStderr())

	loaded, err := job.LoadConfig(configPath)
	if err != nil {
		return err
	}
	cfg = loaded
	if configPath != "" {
		logger.Printf("Loaded settings from %s", configPath)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
