package scaffold

import (
	"bytes"
	"text/template"

	"theme-setup/internal/config"
)

// viteConfigTmpl renders vite.config.js. The build writes bundled assets
// straight into the theme's assets/ directory, which is what `shopify
// theme dev` serves.
var viteConfigTmpl = template.Must(template.New("vite").Parse(`import { defineConfig } from "vite";
{{- if .Tailwind}}
import tailwindcss from "@tailwindcss/vite";
{{- end}}

export default defineConfig({
{{- if .Tailwind}}
  plugins: [tailwindcss()],
{{- end}}
  build: {
    outDir: "assets",
    emptyOutDir: false,
    rollupOptions: {
      input: ["frontend/entrypoints/theme.js", "frontend/entrypoints/theme.css"],
      output: {
        entryFileNames: "[name].js",
        assetFileNames: "[name].[ext]",
      },
    },
  },
{{- if .Tunnel}}
  server: {
    cors: true,
    allowedHosts: [".trycloudflare.com"],
  },
{{- end}}
});
`))

const postcssConfig = `export default {
  plugins: {
    autoprefixer: {},
  },
};
`

// ViteConfig renders vite.config.js for the configured project.
func ViteConfig(cfg config.SetupConfig) ([]byte, error) {
	var buf bytes.Buffer
	err := viteConfigTmpl.Execute(&buf, struct {
		Tailwind bool
		Tunnel   bool
	}{
		Tailwind: cfg.Styling == config.StylingTailwind,
		Tunnel:   cfg.UseTunnel,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func stepViteConfig() Step {
	return Step{
		Name: "write vite.config.js",
		Run: func(ctx *Context) error {
			content, err := ViteConfig(ctx.Cfg)
			if err != nil {
				return err
			}
			return writeFile(ctx, "vite.config.js", content)
		},
	}
}

// stepPostCSSConfig writes postcss.config.js. Plain-CSS projects have no
// transform step and Tailwind v4 runs through its Vite plugin, so only
// the postcss styling choice needs it.
func stepPostCSSConfig() Step {
	return Step{
		Name: "write postcss.config.js",
		Skip: func(cfg config.SetupConfig) bool { return cfg.Styling != config.StylingPostCSS },
		Run: func(ctx *Context) error {
			return writeFile(ctx, "postcss.config.js", []byte(postcssConfig))
		},
	}
}
