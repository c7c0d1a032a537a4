package main

import (
	"theme-setup/cmd" // CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument
// parsing and execution.
//
// theme-setup bootstraps a Shopify theme development environment:
//   - Runs an interactive Q&A collecting the project name, styling and
//     JavaScript approach, package manager, store details, and tooling
//     toggles (tunnel, linting, git hooks, CI)
//   - Writes the resulting configuration files: package.json,
//     vite.config.js, postcss config, ignore files, shopify.theme.toml,
//     a GitHub Actions workflow, lint configs, and Liquid/JS/CSS stubs
//   - Shells out to the external CLIs the environment depends on:
//     the package manager for installs, git for the initial commit,
//     husky for hooks, and the Shopify CLI for theme listing/pulling
//
// Error handling strategy:
//   - Each setup step is best-effort: failures are logged with a colored
//     marker and the run continues, so as much of the environment as
//     possible is created in one pass
//   - Only missing required input (the project name) and top-level
//     command errors exit with a non-zero status
func main() {
	cmd.Execute()
}
