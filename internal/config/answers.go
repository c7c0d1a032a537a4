package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadAnswers reads a YAML answers file and returns the SetupConfig it
// describes, with defaults applied and the same validation the wizard
// performs. The file carries the answers under a top-level `setup:` key:
//
//	setup:
//	  project_name: my-theme
//	  styling: tailwind
//	  package_manager: pnpm
//	  store: my-shop.myshopify.com
//	  linting: true
//
// This is the non-interactive path; the wizard never touches it.
func LoadAnswers(path string) (SetupConfig, error) {
	var wrapper struct {
		Setup SetupConfig `yaml:"setup"`
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return SetupConfig{}, fmt.Errorf("failed to read answers file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		return SetupConfig{}, fmt.Errorf("failed to parse answers file %s: %w", path, err)
	}

	cfg := wrapper.Setup
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return SetupConfig{}, fmt.Errorf("invalid answers file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyDefaults fills in the defaults the wizard would otherwise offer,
// so an answers file only needs the fields it cares about.
func (c *SetupConfig) ApplyDefaults() {
	if c.Styling == "" {
		c.Styling = StylingCSS
	}
	if c.Scripting == "" {
		c.Scripting = ScriptingVanilla
	}
	if c.PackageManager == "" {
		c.PackageManager = NPM
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
}
