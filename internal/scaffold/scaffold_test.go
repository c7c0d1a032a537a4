package scaffold

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"theme-setup/internal/config"
)

func fullConfig() config.SetupConfig {
	return config.SetupConfig{
		ProjectName:    "my-theme",
		Description:    "storefront refresh",
		Styling:        config.StylingTailwind,
		Scripting:      config.ScriptingAlpine,
		PackageManager: config.PNPM,
		Store:          "my-shop.myshopify.com",
		Environment:    "development",
		ThemeID:        "123456789",
		UseTunnel:      true,
		UseLinting:     true,
		UseGitHooks:    true,
		InitGit:        true,
		SetupCI:        true,
		RunInstall:     true,
	}
}

func runFileSteps(t *testing.T, cfg config.SetupConfig) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	sum := NewRunner(fs, cfg).Run(FileSteps())
	require.Zero(t, sum.Failed(), "no file step should fail: %+v", sum.Results)
	return fs
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err, "expected %s to be written", path)
	return string(data)
}

func TestFileStepsWriteEverything(t *testing.T) {
	fs := runFileSteps(t, fullConfig())

	for _, path := range []string{
		"package.json",
		"vite.config.js",
		".gitignore",
		".shopifyignore",
		"shopify.theme.toml",
		".github/workflows/theme-ci.yml",
		".eslintrc.json",
		".prettierrc",
		".theme-check.yml",
		"layout/theme.liquid",
		"config/settings_schema.json",
		"frontend/entrypoints/theme.js",
		"frontend/entrypoints/theme.css",
		"AGENTS.md",
	} {
		exists, err := afero.Exists(fs, path)
		require.NoError(t, err)
		assert.True(t, exists, "missing %s", path)
	}

	// Tailwind runs through the Vite plugin, no postcss config.
	exists, err := afero.Exists(fs, "postcss.config.js")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFileStepsSkipDisabledFeatures(t *testing.T) {
	cfg := fullConfig()
	cfg.Styling = config.StylingCSS
	cfg.UseLinting = false
	cfg.SetupCI = false
	fs := runFileSteps(t, cfg)

	for _, path := range []string{
		"postcss.config.js",
		".github/workflows/theme-ci.yml",
		".eslintrc.json",
		".prettierrc",
		".theme-check.yml",
	} {
		exists, err := afero.Exists(fs, path)
		require.NoError(t, err)
		assert.False(t, exists, "unexpected %s", path)
	}
}

func TestPostCSSConfigWrittenForPostCSSStyling(t *testing.T) {
	cfg := fullConfig()
	cfg.Styling = config.StylingPostCSS
	fs := runFileSteps(t, cfg)

	assert.Contains(t, readFile(t, fs, "postcss.config.js"), "autoprefixer")
}

func TestRunnerContinuesPastFailures(t *testing.T) {
	boom := errors.New("boom")
	steps := []Step{
		{Name: "first", Run: func(*Context) error { return boom }},
		{Name: "second", Run: func(*Context) error { return nil }},
		{Name: "third", Skip: func(config.SetupConfig) bool { return true }, Run: func(*Context) error { return nil }},
	}

	sum := NewRunner(afero.NewMemMapFs(), fullConfig()).Run(steps)
	require.Len(t, sum.Results, 3)
	assert.Equal(t, StatusFailed, sum.Results[0].Status)
	assert.Equal(t, "boom", sum.Results[0].Detail)
	assert.Equal(t, StatusOK, sum.Results[1].Status)
	assert.Equal(t, StatusSkipped, sum.Results[2].Status)
	assert.Equal(t, 1, sum.Failed())
}

func TestPackageJSONContent(t *testing.T) {
	out, err := PackageJSON(fullConfig())
	require.NoError(t, err)

	var pkg struct {
		Name            string              `json:"name"`
		Private         bool                `json:"private"`
		Type            string              `json:"type"`
		Scripts         map[string]string   `json:"scripts"`
		Dependencies    map[string]string   `json:"dependencies"`
		DevDependencies map[string]string   `json:"devDependencies"`
		LintStaged      map[string][]string `json:"lint-staged"`
	}
	require.NoError(t, json.Unmarshal(out, &pkg))

	assert.Equal(t, "my-theme", pkg.Name)
	assert.True(t, pkg.Private)
	assert.Equal(t, "module", pkg.Type)

	assert.Equal(t, "shopify theme dev --store my-shop.myshopify.com --theme 123456789 --tunnel-url cloudflare", pkg.Scripts["dev"])
	assert.Equal(t, "vite build", pkg.Scripts["build"])
	assert.Equal(t, "husky", pkg.Scripts["prepare"])
	assert.Contains(t, pkg.Scripts, "lint")

	assert.Contains(t, pkg.DevDependencies, "vite")
	assert.Contains(t, pkg.DevDependencies, "tailwindcss")
	assert.Contains(t, pkg.DevDependencies, "@tailwindcss/vite")
	assert.Contains(t, pkg.DevDependencies, "eslint")
	assert.Contains(t, pkg.DevDependencies, "husky")
	assert.Contains(t, pkg.Dependencies, "alpinejs")
	assert.Contains(t, pkg.LintStaged, "*.js")
}

func TestPackageJSONMinimal(t *testing.T) {
	cfg := config.SetupConfig{
		ProjectName:    "bare-theme",
		Styling:        config.StylingCSS,
		Scripting:      config.ScriptingVanilla,
		PackageManager: config.NPM,
		Store:          "bare.myshopify.com",
		Environment:    "development",
	}
	out, err := PackageJSON(cfg)
	require.NoError(t, err)

	var pkg struct {
		Scripts         map[string]string `json:"scripts"`
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	require.NoError(t, json.Unmarshal(out, &pkg))

	assert.Equal(t, "shopify theme dev --store bare.myshopify.com", pkg.Scripts["dev"])
	assert.NotContains(t, pkg.Scripts, "lint")
	assert.NotContains(t, pkg.Scripts, "prepare")
	assert.Empty(t, pkg.Dependencies)
	assert.NotContains(t, pkg.DevDependencies, "tailwindcss")
	assert.NotContains(t, pkg.DevDependencies, "eslint")
}

func TestViteConfigVariants(t *testing.T) {
	cfg := fullConfig()
	out, err := ViteConfig(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), `import tailwindcss from "@tailwindcss/vite"`)
	assert.Contains(t, string(out), "plugins: [tailwindcss()]")
	assert.Contains(t, string(out), "trycloudflare.com")

	cfg.Styling = config.StylingCSS
	cfg.UseTunnel = false
	out, err = ViteConfig(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "tailwindcss")
	assert.NotContains(t, string(out), "server:")
	assert.Contains(t, string(out), `outDir: "assets"`)
}

func TestThemeConfigRoundTrip(t *testing.T) {
	out, err := ThemeConfig(fullConfig())
	require.NoError(t, err)

	var parsed struct {
		Environments map[string]struct {
			Store  string   `toml:"store"`
			Theme  string   `toml:"theme"`
			Ignore []string `toml:"ignore"`
		} `toml:"environments"`
	}
	require.NoError(t, toml.Unmarshal(out, &parsed))

	env, ok := parsed.Environments["development"]
	require.True(t, ok)
	assert.Equal(t, "my-shop.myshopify.com", env.Store)
	assert.Equal(t, "123456789", env.Theme)
	assert.Contains(t, env.Ignore, "frontend/*")
}

func TestWorkflowRoundTrip(t *testing.T) {
	out, err := Workflow(fullConfig())
	require.NoError(t, err)

	var parsed struct {
		Name string `yaml:"name"`
		On   struct {
			Push struct {
				Branches []string `yaml:"branches"`
			} `yaml:"push"`
		} `yaml:"on"`
		Jobs map[string]struct {
			RunsOn string `yaml:"runs-on"`
			Steps  []struct {
				Name string `yaml:"name"`
				Uses string `yaml:"uses"`
				Run  string `yaml:"run"`
			} `yaml:"steps"`
		} `yaml:"jobs"`
	}
	require.NoError(t, yaml.Unmarshal(out, &parsed))

	assert.Equal(t, "Theme CI", parsed.Name)
	assert.Equal(t, []string{"main"}, parsed.On.Push.Branches)

	job, ok := parsed.Jobs["build"]
	require.True(t, ok)
	assert.Equal(t, "ubuntu-latest", job.RunsOn)

	var runs []string
	var uses []string
	for _, s := range job.Steps {
		if s.Run != "" {
			runs = append(runs, s.Run)
		}
		if s.Uses != "" {
			uses = append(uses, s.Uses)
		}
	}
	assert.Contains(t, uses, "pnpm/action-setup@v4")
	assert.Contains(t, runs, "pnpm install --frozen-lockfile")
	assert.Contains(t, runs, "pnpm build")
	assert.Contains(t, runs, "pnpm lint")
}

func TestWorkflowNPMOmitsPnpmSetup(t *testing.T) {
	cfg := fullConfig()
	cfg.PackageManager = config.NPM
	cfg.UseLinting = false
	out, err := Workflow(cfg)
	require.NoError(t, err)

	assert.NotContains(t, string(out), "pnpm/action-setup")
	assert.Contains(t, string(out), "npm ci")
	assert.NotContains(t, string(out), "npm run lint")
}

func TestThemeStubsFollowConfig(t *testing.T) {
	fs := runFileSteps(t, fullConfig())

	js := readFile(t, fs, "frontend/entrypoints/theme.js")
	assert.Contains(t, js, `import Alpine from "alpinejs"`)

	css := readFile(t, fs, "frontend/entrypoints/theme.css")
	assert.Contains(t, css, `@import "tailwindcss"`)

	schema := readFile(t, fs, "config/settings_schema.json")
	assert.Contains(t, schema, `"theme_name": "my-theme"`)

	liquid := readFile(t, fs, "layout/theme.liquid")
	assert.Contains(t, liquid, "content_for_layout")
	assert.Contains(t, liquid, "'theme.js' | asset_url")
}

func TestVanillaStubs(t *testing.T) {
	cfg := fullConfig()
	cfg.Scripting = config.ScriptingVanilla
	cfg.Styling = config.StylingCSS
	fs := runFileSteps(t, cfg)

	js := readFile(t, fs, "frontend/entrypoints/theme.js")
	assert.NotContains(t, js, "alpinejs")

	css := readFile(t, fs, "frontend/entrypoints/theme.css")
	assert.Contains(t, css, ":root")
}

func TestAgentDocsContent(t *testing.T) {
	out, err := AgentDocs(fullConfig())
	require.NoError(t, err)

	doc := string(out)
	assert.Contains(t, doc, "my-theme")
	assert.Contains(t, doc, "pnpm dev")
	assert.Contains(t, doc, "tailwind")
	assert.Contains(t, doc, "lint-staged")
}
