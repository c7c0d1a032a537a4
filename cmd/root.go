package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"theme-setup/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the CLI tool `theme-setup`.
var rootCmd = &cobra.Command{
	Use:   "theme-setup",
	Short: "Shopify theme development environment bootstrapper",
	Long: `theme-setup scaffolds a Shopify theme development environment:
Vite bundling, a package manager of your choice, optional linting,
git hooks, CI, and the Shopify CLI wiring to go with them.`,
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRun runs before any subcommand and initializes the
	// logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute initializes flags, registers subcommands, and starts command
// execution. Any error that escapes a subcommand exits non-zero.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
}
