package scaffold

import (
	"github.com/pelletier/go-toml/v2"

	"theme-setup/internal/config"
)

// themeEnvironment is one [environments.<name>] block in shopify.theme.toml.
type themeEnvironment struct {
	Store  string   `toml:"store"`
	Theme  string   `toml:"theme,omitempty"`
	Ignore []string `toml:"ignore,omitempty"`
}

type themeTOML struct {
	Environments map[string]themeEnvironment `toml:"environments"`
}

// ThemeConfig builds shopify.theme.toml with one environment named after
// the configured Shopify environment. The ignore globs mirror
// .shopifyignore so CLI pushes and manual pushes agree.
func ThemeConfig(cfg config.SetupConfig) ([]byte, error) {
	env := themeEnvironment{
		Store: cfg.Store,
		Theme: cfg.ThemeID,
		Ignore: []string{
			"node_modules/*",
			"frontend/*",
			"*.config.js",
		},
	}
	return toml.Marshal(themeTOML{
		Environments: map[string]themeEnvironment{cfg.Environment: env},
	})
}

func stepThemeConfig() Step {
	return Step{
		Name: "write shopify.theme.toml",
		Run: func(ctx *Context) error {
			content, err := ThemeConfig(ctx.Cfg)
			if err != nil {
				return err
			}
			return writeFile(ctx, "shopify.theme.toml", content)
		},
	}
}
