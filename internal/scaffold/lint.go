package scaffold

import (
	"gopkg.in/yaml.v3"

	"theme-setup/internal/config"
)

const eslintConfig = `{
  "env": {
    "browser": true,
    "es2022": true
  },
  "parserOptions": {
    "ecmaVersion": "latest",
    "sourceType": "module"
  },
  "rules": {
    "no-unused-vars": "warn",
    "no-console": "off"
  }
}
`

const prettierConfig = `{
  "singleQuote": false,
  "semi": true,
  "plugins": ["@shopify/prettier-plugin-liquid"]
}
`

// themeCheckConfig mirrors .theme-check.yml. The generated frontend/
// directory holds Vite sources, not Liquid, so theme-check skips it.
type themeCheckConfig struct {
	Root   string   `yaml:"root"`
	Ignore []string `yaml:"ignore"`
}

func stepLintConfigs() Step {
	return Step{
		Name: "write lint configs",
		Skip: func(cfg config.SetupConfig) bool { return !cfg.UseLinting },
		Run: func(ctx *Context) error {
			if err := writeFile(ctx, ".eslintrc.json", []byte(eslintConfig)); err != nil {
				return err
			}
			if err := writeFile(ctx, ".prettierrc", []byte(prettierConfig)); err != nil {
				return err
			}
			tc, err := yaml.Marshal(themeCheckConfig{
				Root:   ".",
				Ignore: []string{"node_modules/*", "frontend/*"},
			})
			if err != nil {
				return err
			}
			return writeFile(ctx, ".theme-check.yml", tc)
		},
	}
}
