package cmd

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string // Log verbosity level

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "crossformer",
	Short: "Preprocessing utilities for robot-learning trajectory datasets",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// defaultCacheDir resolves the per-user statistics cache directory. The
// library itself never looks this up; it is resolved here and injected.
func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		logrus.Fatalf("Cannot resolve user cache directory: %v", err)
	}
	return filepath.Join(base, "crossformer")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
