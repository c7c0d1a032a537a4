package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"theme-setup/internal/config"
	"theme-setup/internal/logger"
	"theme-setup/internal/prompt"
	"theme-setup/internal/scaffold"
	"theme-setup/internal/shell"
)

// answersPath optionally points at a YAML answers file that replaces the
// interactive Q&A, for CI and scripted use.
var answersPath string

// newPrompter and listThemes are package variables so tests can
// substitute a scripted prompter and a canned theme listing, the same
// seam internal/shell uses for execCommand.
var newPrompter = func() *prompt.Prompter {
	return prompt.New(os.Stdin, os.Stdout)
}
var listThemes = shell.ListThemes

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively scaffold a Shopify theme dev environment",
	Long: `Walks through a series of questions (project name, styling and JS
approach, package manager, store, optional tooling) and then creates the
project: config files, theme stubs, dependency install, git setup.

Every setup step is best-effort: a failing step is reported and the run
continues, so a missing external CLI never leaves you with half the
files unwritten.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&answersPath, "answers", "", "YAML answers file (skips all prompts)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	var cfg config.SetupConfig

	if answersPath != "" {
		var err error
		cfg, err = config.LoadAnswers(answersPath)
		if err != nil {
			return err
		}
	} else {
		p := newPrompter()
		var err error
		cfg, err = askConfig(p)
		if err != nil {
			return err
		}

		printRecap(cfg)
		if !p.Confirm("Create the project with these settings?", true) {
			logger.Warn("Aborted. Nothing was written.\n")
			return nil
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	dir, err := filepath.Abs(cfg.ProjectName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory %s: %w", dir, err)
	}
	logger.Info("Creating project in %s\n\n", dir)

	fs := afero.NewBasePathFs(afero.NewOsFs(), dir)
	runner := scaffold.NewRunner(fs, cfg)

	steps := scaffold.FileSteps()
	steps = append(steps, processSteps(dir, cfg)...)

	summary := runner.Run(steps)
	summary.Print()
	return nil
}

// processSteps are the external-CLI steps that follow file generation.
// They run in dependency order: git before husky (hooks need a repo),
// install before husky (husky ships with node_modules).
func processSteps(dir string, cfg config.SetupConfig) []scaffold.Step {
	return []scaffold.Step{
		{
			Name: "initialize git repository",
			Skip: func(c config.SetupConfig) bool { return !c.InitGit },
			Run:  func(*scaffold.Context) error { return shell.GitInit(dir) },
		},
		{
			Name: fmt.Sprintf("install dependencies (%s)", cfg.PackageManager),
			Skip: func(c config.SetupConfig) bool { return !c.RunInstall },
			Run:  func(*scaffold.Context) error { return shell.InstallDeps(dir, cfg.PackageManager) },
		},
		{
			Name: "set up git hooks (husky)",
			Skip: func(c config.SetupConfig) bool { return !c.UseGitHooks || !c.InitGit || !c.RunInstall },
			Run:  func(*scaffold.Context) error { return shell.HuskyInit(dir, cfg.PackageManager) },
		},
		{
			Name: "pull theme files from Shopify",
			Skip: func(c config.SetupConfig) bool { return !c.PullTheme || c.ThemeID == "" },
			Run:  func(*scaffold.Context) error { return shell.PullTheme(dir, cfg.Store, cfg.ThemeID) },
		},
	}
}

// askConfig runs the interactive Q&A and accumulates the setup
// configuration. The only hard failure is EOF on a required prompt.
func askConfig(p *prompt.Prompter) (config.SetupConfig, error) {
	var cfg config.SetupConfig

	for {
		name, err := p.AskRequired("Project name:")
		if err != nil {
			return cfg, err
		}
		if err := config.ValidateProjectName(name); err != nil {
			logger.Warn("%v\n", err)
			continue
		}
		cfg.ProjectName = name
		break
	}
	cfg.Description = p.Ask("Short description:", "")

	styling, err := p.Select("Styling approach:", []string{
		"Plain CSS",
		"PostCSS (autoprefixer)",
		"Tailwind CSS",
	})
	if err != nil {
		return cfg, err
	}
	cfg.Styling = []config.Styling{config.StylingCSS, config.StylingPostCSS, config.StylingTailwind}[styling]

	scripting, err := p.Select("JavaScript approach:", []string{
		"Vanilla ES modules",
		"Alpine.js",
	})
	if err != nil {
		return cfg, err
	}
	cfg.Scripting = []config.Scripting{config.ScriptingVanilla, config.ScriptingAlpine}[scripting]

	pm, err := p.Select("Package manager:", []string{"npm", "pnpm", "yarn"})
	if err != nil {
		return cfg, err
	}
	cfg.PackageManager = []config.PackageManager{config.NPM, config.PNPM, config.Yarn}[pm]

	cfg.Store = p.Ask("Store domain (x.myshopify.com):", "")

	env, err := p.Select("Shopify environment:", []string{"development", "staging", "production"})
	if err != nil {
		return cfg, err
	}
	cfg.Environment = []string{"development", "staging", "production"}[env]

	if cfg.Store != "" && p.Confirm("Connect to an existing theme?", false) {
		askTheme(p, &cfg)
	}

	cfg.UseTunnel = p.Confirm("Expose the dev server through a Cloudflare tunnel?", false)
	cfg.UseLinting = p.Confirm("Set up linting (ESLint, Prettier, theme-check)?", true)
	cfg.InitGit = p.Confirm("Initialize a git repository?", true)
	if cfg.InitGit {
		cfg.UseGitHooks = p.Confirm("Set up git hooks (husky + lint-staged)?", cfg.UseLinting)
	}
	cfg.SetupCI = p.Confirm("Add a GitHub Actions workflow?", true)
	cfg.RunInstall = p.Confirm("Run the package manager install now?", true)

	return cfg, nil
}

// askTheme resolves the theme to connect to. The happy path lists the
// store's themes through the Shopify CLI and offers a pick menu; if the
// CLI is missing or errors, it falls back to free-text entry.
func askTheme(p *prompt.Prompter, cfg *config.SetupConfig) {
	themes, err := listThemes(cfg.Store)
	if err != nil || len(themes) == 0 {
		if err != nil {
			logger.Warn("Could not list themes: %v\n", err)
		}
		cfg.ThemeID = p.Ask("Theme ID (blank to skip):", "")
	} else {
		options := make([]string, len(themes))
		for i, t := range themes {
			options[i] = fmt.Sprintf("%s [%s] (#%d)", t.Name, t.Role, t.ID)
		}
		idx, err := p.Select("Theme to connect:", options)
		if err != nil {
			return
		}
		cfg.ThemeID = strconv.FormatInt(themes[idx].ID, 10)
	}

	if cfg.ThemeID != "" {
		cfg.PullTheme = p.Confirm("Pull the theme's files after setup?", false)
	}
}

// printRecap echoes the collected configuration before the final
// confirmation.
func printRecap(cfg config.SetupConfig) {
	logger.Info("\nProject configuration:\n")
	logger.Info("  name:            %s\n", cfg.ProjectName)
	if cfg.Description != "" {
		logger.Info("  description:     %s\n", cfg.Description)
	}
	logger.Info("  styling:         %s\n", cfg.Styling)
	logger.Info("  scripting:       %s\n", cfg.Scripting)
	logger.Info("  package manager: %s\n", cfg.PackageManager)
	if cfg.Store != "" {
		logger.Info("  store:           %s (%s)\n", cfg.Store, cfg.Environment)
	}
	if cfg.ThemeID != "" {
		logger.Info("  theme:           #%s (pull: %v)\n", cfg.ThemeID, cfg.PullTheme)
	}
	logger.Info("  tunnel: %v  linting: %v  git: %v  hooks: %v  ci: %v  install: %v\n\n",
		cfg.UseTunnel, cfg.UseLinting, cfg.InitGit, cfg.UseGitHooks, cfg.SetupCI, cfg.RunInstall)
}
