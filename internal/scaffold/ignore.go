package scaffold

// gitignore keeps generated assets and local tooling state out of the
// repository; the bundled JS/CSS in assets/ is a build artifact.
const gitignore = `node_modules/
.shopify/
.env
.env.*

# Vite build artifacts
assets/theme.js
assets/theme.css
assets/*.map

.DS_Store
`

// shopifyignore keeps the frontend toolchain out of theme pushes; Shopify
// only accepts the theme directories themselves.
const shopifyignore = `node_modules/
frontend/
.github/
.husky/

package.json
package-lock.json
pnpm-lock.yaml
yarn.lock
vite.config.js
postcss.config.js
eslint.config.js
.eslintrc.json
.prettierrc
.theme-check.yml
shopify.theme.toml
AGENTS.md
README.md
`

func stepIgnoreFiles() Step {
	return Step{
		Name: "write .gitignore and .shopifyignore",
		Run: func(ctx *Context) error {
			if err := writeFile(ctx, ".gitignore", []byte(gitignore)); err != nil {
				return err
			}
			return writeFile(ctx, ".shopifyignore", []byte(shopifyignore))
		},
	}
}
