package scaffold

import (
	"strings"

	"theme-setup/internal/config"
)

// themeLiquid is the minimal layout a Shopify theme must ship. The
// script and stylesheet tags point at the Vite build output in assets/.
const themeLiquid = `<!doctype html>
<html lang="{{ request.locale.iso_code }}">
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{ page_title }}</title>
    {{ 'theme.css' | asset_url | stylesheet_tag }}
    {{ content_for_header }}
  </head>
  <body>
    <main role="main">
      {{ content_for_layout }}
    </main>
    <script src="{{ 'theme.js' | asset_url }}" defer></script>
  </body>
</html>
`

const settingsSchema = `[
  {
    "name": "theme_info",
    "theme_name": "PROJECT_NAME",
    "theme_version": "0.1.0",
    "theme_author": "theme-setup",
    "theme_documentation_url": "",
    "theme_support_url": ""
  }
]
`

const vanillaEntry = `// Theme frontend entrypoint. Bundled by Vite into assets/theme.js.

document.addEventListener("DOMContentLoaded", () => {
  console.log("theme ready");
});
`

const alpineEntry = `// Theme frontend entrypoint. Bundled by Vite into assets/theme.js.
import Alpine from "alpinejs";

window.Alpine = Alpine;
Alpine.start();
`

const cssEntry = `/* Theme stylesheet entrypoint. Bundled by Vite into assets/theme.css. */

:root {
  --color-text: #111;
  --color-background: #fff;
}

body {
  margin: 0;
  color: var(--color-text);
  background: var(--color-background);
}
`

const tailwindEntry = `@import "tailwindcss";
`

// stepThemeStubs writes the Liquid layout, settings schema, and the
// frontend JS/CSS entrypoints matching the chosen styling and scripting
// approaches.
func stepThemeStubs() Step {
	return Step{
		Name: "write theme stubs",
		Run: func(ctx *Context) error {
			if err := writeFile(ctx, "layout/theme.liquid", []byte(themeLiquid)); err != nil {
				return err
			}

			schema := strings.ReplaceAll(settingsSchema, "PROJECT_NAME", ctx.Cfg.ProjectName)
			if err := writeFile(ctx, "config/settings_schema.json", []byte(schema)); err != nil {
				return err
			}

			js := vanillaEntry
			if ctx.Cfg.Scripting == config.ScriptingAlpine {
				js = alpineEntry
			}
			if err := writeFile(ctx, "frontend/entrypoints/theme.js", []byte(js)); err != nil {
				return err
			}

			css := cssEntry
			if ctx.Cfg.Styling == config.StylingTailwind {
				css = tailwindEntry
			}
			return writeFile(ctx, "frontend/entrypoints/theme.css", []byte(css))
		},
	}
}
