package scaffold

import (
	"gopkg.in/yaml.v3"

	"theme-setup/internal/config"
)

// Typed mirror of the GitHub Actions workflow document. Emitting through
// yaml.Marshal keeps indentation and quoting consistent instead of
// maintaining a raw YAML string.
type workflow struct {
	Name string                 `yaml:"name"`
	On   workflowTriggers       `yaml:"on"`
	Jobs map[string]workflowJob `yaml:"jobs"`
}

type workflowTriggers struct {
	Push        branchFilter `yaml:"push"`
	PullRequest branchFilter `yaml:"pull_request"`
}

type branchFilter struct {
	Branches []string `yaml:"branches"`
}

type workflowJob struct {
	RunsOn string         `yaml:"runs-on"`
	Steps  []workflowStep `yaml:"steps"`
}

type workflowStep struct {
	Name string            `yaml:"name,omitempty"`
	Uses string            `yaml:"uses,omitempty"`
	With map[string]string `yaml:"with,omitempty"`
	Run  string            `yaml:"run,omitempty"`
}

// Workflow builds the theme CI workflow: install, build, and lint when
// linting is enabled. The build job runs on pushes and pull requests
// against main.
func Workflow(cfg config.SetupConfig) ([]byte, error) {
	pm := cfg.PackageManager

	steps := []workflowStep{
		{Name: "Checkout", Uses: "actions/checkout@v4"},
	}
	if pm == config.PNPM {
		steps = append(steps, workflowStep{
			Name: "Set up pnpm",
			Uses: "pnpm/action-setup@v4",
		})
	}
	steps = append(steps,
		workflowStep{
			Name: "Set up Node",
			Uses: "actions/setup-node@v4",
			With: map[string]string{
				"node-version": "22",
				"cache":        string(pm),
			},
		},
		workflowStep{Name: "Install dependencies", Run: pm.CIInstallCommand()},
		workflowStep{Name: "Build assets", Run: pm.RunScript("build")},
	)
	if cfg.UseLinting {
		steps = append(steps, workflowStep{Name: "Lint", Run: pm.RunScript("lint")})
	}

	wf := workflow{
		Name: "Theme CI",
		On: workflowTriggers{
			Push:        branchFilter{Branches: []string{"main"}},
			PullRequest: branchFilter{Branches: []string{"main"}},
		},
		Jobs: map[string]workflowJob{
			"build": {RunsOn: "ubuntu-latest", Steps: steps},
		},
	}
	return yaml.Marshal(wf)
}

func stepWorkflow() Step {
	return Step{
		Name: "write GitHub Actions workflow",
		Skip: func(cfg config.SetupConfig) bool { return !cfg.SetupCI },
		Run: func(ctx *Context) error {
			content, err := Workflow(ctx.Cfg)
			if err != nil {
				return err
			}
			return writeFile(ctx, ".github/workflows/theme-ci.yml", content)
		},
	}
}
