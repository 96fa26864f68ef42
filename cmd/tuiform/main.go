// Tuiform is an interactive terminal form.
//
// It loads a form definition (field names, initial values, a validation rule
// and optional styles) from a YAML file and lets the user move between the
// fields, edit them and submit. Accepted values are shown once every field
// passes validation.
//
// Usage:
//
//	tuiform [command] [flags]
//
// Running without arguments opens the form.
// See 'tuiform --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/tuiform/internal/config"
	"github.com/muurk/tuiform/internal/logging"
	"github.com/muurk/tuiform/internal/version"
)

// Global flags
var (
	configPath string
	logLevel   string
	logFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.Error("command failed", zap.Error(err))
		logging.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tuiform",
	Short: "Interactive terminal form",
	Long: `An interactive terminal form.

Move between fields with the arrow keys or j/k, press enter to edit a field
and esc to leave it. With nothing selected, press s to submit or q to quit.

If no command is specified, the form opens automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Silent unless a level is set; the TUI owns stdout.
		return logging.Initialize(logLevel, logFile)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runForm,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	environment, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", environment.ConfigPath, "Form definition file (default: "+defaultConfigHint()+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", environment.LogLevel, "Log level (debug, info, warn, error); empty disables logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", environment.LogFile, "Log destination (stderr, stdout or a file path)")

	rootCmd.AddCommand(versionCmd)
}

func defaultConfigHint() string {
	path, err := config.GetConfigPath()
	if err != nil {
		return "user config dir"
	}
	return path
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tuiform %s\n", version.Full())
	},
}
