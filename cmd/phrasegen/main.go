// Phrasegen is a passphrase generation tool.
//
// It assembles memorable passphrases from dictionary words according to a
// configurable scheme (word count, separators, digit groups, symbol padding,
// capitalization) and ships a catalog of named presets for common password
// policies.
//
// Usage:
//
//	phrasegen [command] [flags]
//
// Running without arguments launches the interactive preset picker.
// See 'phrasegen --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/phrasegen/internal/logging"
	"github.com/muurk/phrasegen/internal/version"
)

func main() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "phrasegen",
	Short: "Passphrase Generator",
	Long: `A passphrase generation tool built around named presets.

Generates memorable word-based passphrases, validates configuration
override files, and manages a catalog of built-in presets for common
password policies (WiFi keys, web accounts, security questions).

If no command is specified, the interactive preset picker will launch.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeFromEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the picker when no subcommand provided
		return runPick(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("phrasegen %s (commit: %s)\n", version.Version, version.Commit)
	},
}
