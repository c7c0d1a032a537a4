package config

import (
	"fmt"
	"regexp"
)

// Styling identifies the CSS toolchain wired into the generated project.
type Styling string

const (
	StylingCSS      Styling = "css"      // plain CSS, no transform step
	StylingPostCSS  Styling = "postcss"  // PostCSS with autoprefixer
	StylingTailwind Styling = "tailwind" // Tailwind via the Vite plugin
)

// Scripting identifies the JavaScript approach for the theme frontend.
type Scripting string

const (
	ScriptingVanilla Scripting = "vanilla" // plain ES modules
	ScriptingAlpine  Scripting = "alpine"  // Alpine.js sprinkled interactivity
)

// PackageManager is the Node package manager the project is set up for.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	PNPM PackageManager = "pnpm"
	Yarn PackageManager = "yarn"
)

// SetupConfig holds every answer collected by the interactive wizard (or
// loaded from an answers file). It is built once, read by every setup
// step, and discarded at process exit.
type SetupConfig struct {
	ProjectName    string         `yaml:"project_name"`
	Description    string         `yaml:"description"`
	Styling        Styling        `yaml:"styling"`
	Scripting      Scripting      `yaml:"scripting"`
	PackageManager PackageManager `yaml:"package_manager"`
	Store          string         `yaml:"store"`       // myshopify.com store domain
	Environment    string         `yaml:"environment"` // shopify.theme.toml environment name
	ThemeID        string         `yaml:"theme_id"`    // existing theme to connect to, optional
	PullTheme      bool           `yaml:"pull_theme"`  // pull files from the connected theme
	UseTunnel      bool           `yaml:"tunnel"`      // expose the dev server through a Cloudflare tunnel
	UseLinting     bool           `yaml:"linting"`     // ESLint + Prettier + theme-check
	UseGitHooks    bool           `yaml:"git_hooks"`   // husky + lint-staged
	InitGit        bool           `yaml:"git_init"`
	SetupCI        bool           `yaml:"ci"` // GitHub Actions workflow
	RunInstall     bool           `yaml:"install"`
}

var projectNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// ValidateProjectName checks a project name on its own, so the wizard can
// reject a bad name at the prompt instead of after the whole Q&A.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	if !projectNameRe.MatchString(name) {
		return fmt.Errorf("invalid project name %q: use lowercase letters, digits, '.', '_' and '-'", name)
	}
	return nil
}

// Validate checks that every required field is populated and every enum
// field holds a known value. An empty project name is the one fatal
// validation failure the wizard cannot recover from.
func (c *SetupConfig) Validate() error {
	if err := ValidateProjectName(c.ProjectName); err != nil {
		return err
	}
	switch c.Styling {
	case StylingCSS, StylingPostCSS, StylingTailwind:
	default:
		return fmt.Errorf("unknown styling approach %q", c.Styling)
	}
	switch c.Scripting {
	case ScriptingVanilla, ScriptingAlpine:
	default:
		return fmt.Errorf("unknown scripting approach %q", c.Scripting)
	}
	switch c.PackageManager {
	case NPM, PNPM, Yarn:
	default:
		return fmt.Errorf("unknown package manager %q", c.PackageManager)
	}
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	return nil
}

// RunScript formats the command line that runs a package.json script with
// the configured package manager, e.g. "npm run dev" vs "pnpm dev".
func (pm PackageManager) RunScript(script string) string {
	if pm == NPM {
		return "npm run " + script
	}
	return string(pm) + " " + script
}

// InstallCommand returns the argv that installs project dependencies.
func (pm PackageManager) InstallCommand() []string {
	return []string{string(pm), "install"}
}

// CIInstallCommand returns the argv used in CI, where the lockfile must
// not be rewritten.
func (pm PackageManager) CIInstallCommand() string {
	switch pm {
	case PNPM:
		return "pnpm install --frozen-lockfile"
	case Yarn:
		return "yarn install --frozen-lockfile"
	default:
		return "npm ci"
	}
}

// ExecCommand returns the argv that runs a locally installed package binary.
func (pm PackageManager) ExecCommand(args ...string) []string {
	switch pm {
	case PNPM:
		return append([]string{"pnpm", "exec"}, args...)
	case Yarn:
		return append([]string{"yarn", "exec"}, args...)
	default:
		return append([]string{"npx"}, args...)
	}
}
