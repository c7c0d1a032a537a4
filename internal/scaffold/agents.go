package scaffold

import (
	"bytes"
	"text/template"

	"theme-setup/internal/config"
)

// agentsTmpl renders AGENTS.md, the orientation file AI coding assistants
// read before touching the project. It describes the generated toolchain
// and the commands that drive it.
var agentsTmpl = template.Must(template.New("agents").Parse(`# AGENTS.md

Guidance for AI coding assistants working on {{.Cfg.ProjectName}}.

## Project

{{if .Cfg.Description}}{{.Cfg.Description}}

{{end}}This is a Shopify theme. Liquid templates live in the usual theme
directories (layout/, sections/, snippets/, templates/); the JS/CSS
sources live in frontend/ and are bundled into assets/ by Vite. Never
edit assets/theme.js or assets/theme.css directly — they are build
output.

## Toolchain

- Package manager: {{.Cfg.PackageManager}}
- Bundler: Vite (config in vite.config.js)
- Styling: {{.Cfg.Styling}}
- Scripting: {{.Cfg.Scripting}}
{{- if .Cfg.UseLinting}}
- Linting: ESLint + Prettier ({{.Cfg.PackageManager.RunScript "lint"}}, {{.Cfg.PackageManager.RunScript "format"}})
{{- end}}

## Commands

- {{.Cfg.PackageManager.RunScript "dev"}} — local dev server against {{.Cfg.Store}}
- {{.Cfg.PackageManager.RunScript "build"}} — bundle frontend sources into assets/
- {{.Cfg.PackageManager.RunScript "push"}} — push the theme to Shopify
- {{.Cfg.PackageManager.RunScript "pull"}} — pull theme files from Shopify

## Conventions

- Keep Liquid templates free of build tooling concerns; the bundle
  boundary is frontend/entrypoints/.
- shopify.theme.toml defines the "{{.Cfg.Environment}}" environment; add
  new environments there rather than passing --store flags around.
{{- if .Cfg.UseGitHooks}}
- Pre-commit hooks run lint-staged; do not bypass them with --no-verify.
{{- end}}
`))

// AgentDocs renders the AGENTS.md content for the configured project.
func AgentDocs(cfg config.SetupConfig) ([]byte, error) {
	var buf bytes.Buffer
	if err := agentsTmpl.Execute(&buf, struct{ Cfg config.SetupConfig }{cfg}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func stepAgentDocs() Step {
	return Step{
		Name: "write AGENTS.md",
		Run: func(ctx *Context) error {
			content, err := AgentDocs(ctx.Cfg)
			if err != nil {
				return err
			}
			return writeFile(ctx, "AGENTS.md", content)
		},
	}
}
