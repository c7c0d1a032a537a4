package shell

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"theme-setup/internal/config"
	"theme-setup/internal/logger"
)

// execCommand and lookPath are package variables so tests can substitute
// fakes for external processes.
var execCommand = exec.Command
var lookPath = exec.LookPath

// runIn executes an external command inside dir, capturing combined
// output. The argv is debug-logged before execution; on failure the
// output is folded into the returned error.
func runIn(dir, name string, args ...string) error {
	cmd := execCommand(name, args...)
	cmd.Dir = dir
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w\noutput: %s", name, err, output)
	}
	logger.Debug("[DEBUG] %s output: %s\n", name, output)
	return nil
}

// captureIn executes a command inside dir and returns its stdout.
func captureIn(dir, name string, args ...string) ([]byte, error) {
	cmd := execCommand(name, args...)
	cmd.Dir = dir
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", name, err)
	}
	return out, nil
}

// Installed reports whether an executable is available on PATH.
func Installed(name string) bool {
	_, err := lookPath(name)
	return err == nil
}

// InstallDeps runs the configured package manager's install inside dir.
func InstallDeps(dir string, pm config.PackageManager) error {
	argv := pm.InstallCommand()
	return runIn(dir, argv[0], argv[1:]...)
}

// GitInit initializes a git repository in dir and records the generated
// files in an initial commit.
func GitInit(dir string) error {
	if err := runIn(dir, "git", "init"); err != nil {
		return err
	}
	if err := runIn(dir, "git", "add", "-A"); err != nil {
		return err
	}
	return runIn(dir, "git", "commit", "-m", "Initial theme scaffold")
}

// HuskyInit installs the husky git-hook runner through the configured
// package manager. Requires an initialized git repository and installed
// node_modules.
func HuskyInit(dir string, pm config.PackageManager) error {
	argv := pm.ExecCommand("husky", "init")
	return runIn(dir, argv[0], argv[1:]...)
}

// Theme is one entry from `shopify theme list --json`.
type Theme struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// ListThemes asks the Shopify CLI for the themes on the store. The CLI
// handles authentication itself, prompting in the browser if needed.
func ListThemes(store string) ([]Theme, error) {
	out, err := captureIn("", "shopify", "theme", "list", "--json", "--store", store)
	if err != nil {
		return nil, err
	}
	return parseThemeList(out)
}

// parseThemeList decodes the CLI's JSON theme listing.
func parseThemeList(out []byte) ([]Theme, error) {
	var themes []Theme
	if err := json.Unmarshal(out, &themes); err != nil {
		return nil, fmt.Errorf("failed to parse theme list: %w", err)
	}
	return themes, nil
}

// PullTheme downloads the connected theme's files into dir.
func PullTheme(dir, store, themeID string) error {
	return runIn(dir, "shopify", "theme", "pull", "--store", store, "--theme", themeID)
}
