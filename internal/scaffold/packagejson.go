package scaffold

import (
	"encoding/json"

	"theme-setup/internal/config"
)

// packageJSON mirrors the subset of package.json the generator emits.
// Field order matches the conventional layout of the file.
type packageJSON struct {
	Name            string              `json:"name"`
	Description     string              `json:"description,omitempty"`
	Private         bool                `json:"private"`
	Type            string              `json:"type"`
	Scripts         map[string]string   `json:"scripts"`
	Dependencies    map[string]string   `json:"dependencies,omitempty"`
	DevDependencies map[string]string   `json:"devDependencies"`
	LintStaged      map[string][]string `json:"lint-staged,omitempty"`
}

// Dev dependency versions pinned by the generator. Kept in one place so
// bumping them is a single edit.
var devDepVersions = map[string]string{
	"vite":                            "^6.0.0",
	"postcss":                         "^8.4.49",
	"autoprefixer":                    "^10.4.20",
	"tailwindcss":                     "^4.0.0",
	"@tailwindcss/vite":               "^4.0.0",
	"eslint":                          "^9.17.0",
	"prettier":                        "^3.4.2",
	"@shopify/prettier-plugin-liquid": "^1.6.0",
	"husky":                           "^9.1.7",
	"lint-staged":                     "^15.3.0",
}

const alpineVersion = "^3.14.8"

// PackageJSON builds the package.json content for the configured project.
// Scripts and dependencies vary with the styling, scripting, linting and
// git-hook choices.
func PackageJSON(cfg config.SetupConfig) ([]byte, error) {
	devCmd := "shopify theme dev --store " + cfg.Store
	if cfg.ThemeID != "" {
		devCmd += " --theme " + cfg.ThemeID
	}
	if cfg.UseTunnel {
		devCmd += " --tunnel-url cloudflare"
	}

	pkg := packageJSON{
		Name:        cfg.ProjectName,
		Description: cfg.Description,
		Private:     true,
		Type:        "module",
		Scripts: map[string]string{
			"dev":   devCmd,
			"build": "vite build",
			"watch": "vite build --watch",
			"push":  "shopify theme push",
			"pull":  "shopify theme pull",
		},
		DevDependencies: map[string]string{
			"vite": devDepVersions["vite"],
		},
	}

	switch cfg.Styling {
	case config.StylingPostCSS:
		pkg.DevDependencies["postcss"] = devDepVersions["postcss"]
		pkg.DevDependencies["autoprefixer"] = devDepVersions["autoprefixer"]
	case config.StylingTailwind:
		pkg.DevDependencies["tailwindcss"] = devDepVersions["tailwindcss"]
		pkg.DevDependencies["@tailwindcss/vite"] = devDepVersions["@tailwindcss/vite"]
	}

	if cfg.Scripting == config.ScriptingAlpine {
		pkg.Dependencies = map[string]string{"alpinejs": alpineVersion}
	}

	if cfg.UseLinting {
		pkg.DevDependencies["eslint"] = devDepVersions["eslint"]
		pkg.DevDependencies["prettier"] = devDepVersions["prettier"]
		pkg.DevDependencies["@shopify/prettier-plugin-liquid"] = devDepVersions["@shopify/prettier-plugin-liquid"]
		pkg.Scripts["lint"] = "eslint frontend"
		pkg.Scripts["format"] = "prettier --write ."
	}

	if cfg.UseGitHooks {
		pkg.DevDependencies["husky"] = devDepVersions["husky"]
		pkg.DevDependencies["lint-staged"] = devDepVersions["lint-staged"]
		pkg.Scripts["prepare"] = "husky"
		if cfg.UseLinting {
			pkg.LintStaged = map[string][]string{
				"*.js":     {"eslint --fix", "prettier --write"},
				"*.liquid": {"prettier --write"},
			}
		}
	}

	out, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func stepPackageJSON() Step {
	return Step{
		Name: "write package.json",
		Run: func(ctx *Context) error {
			content, err := PackageJSON(ctx.Cfg)
			if err != nil {
				return err
			}
			return writeFile(ctx, "package.json", content)
		},
	}
}
