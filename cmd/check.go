package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"theme-setup/internal/logger"
	"theme-setup/internal/shell"
)

// requiredTools must be on PATH for a full setup run to succeed.
var requiredTools = []string{"node", "git", "shopify"}

// packageManagers are checked informationally; only the one picked in
// the wizard is actually needed.
var packageManagers = []string{"npm", "pnpm", "yarn"}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the external CLIs the setup relies on are installed",
	RunE: func(cmd *cobra.Command, args []string) error {
		missing := 0
		for _, tool := range requiredTools {
			if shell.Installed(tool) {
				logger.Success("%s\n", tool)
			} else {
				logger.Fail("%s (required)\n", tool)
				missing++
			}
		}
		for _, pm := range packageManagers {
			if shell.Installed(pm) {
				logger.Success("%s\n", pm)
			} else {
				logger.Warn("  - %s not found (fine unless you pick it)\n", pm)
			}
		}
		if missing > 0 {
			return fmt.Errorf("%d required tool(s) missing", missing)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
