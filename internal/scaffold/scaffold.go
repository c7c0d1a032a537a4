package scaffold

import (
	"path/filepath"

	"github.com/spf13/afero"

	"theme-setup/internal/config"
	"theme-setup/internal/logger"
)

// Context carries everything a setup step needs: the collected setup
// configuration and the filesystem rooted at the project directory.
// Steps write through afero so tests can run them against an in-memory
// filesystem.
type Context struct {
	FS  afero.Fs
	Cfg config.SetupConfig
}

// Step is one unit of project setup. Steps are independent: a failing
// step is logged and the run continues with the next one.
type Step struct {
	Name string
	Skip func(cfg config.SetupConfig) bool // optional; nil means never skip
	Run  func(ctx *Context) error
}

// Runner executes setup steps sequentially, best-effort.
type Runner struct {
	ctx *Context
}

// NewRunner returns a Runner operating on fs with the given configuration.
func NewRunner(fs afero.Fs, cfg config.SetupConfig) *Runner {
	return &Runner{ctx: &Context{FS: fs, Cfg: cfg}}
}

// Run executes the steps in order. Each failure is caught, logged with a
// red marker, and recorded; later steps still run. The returned Summary
// holds one result per step.
func (r *Runner) Run(steps []Step) *Summary {
	sum := &Summary{}
	for _, step := range steps {
		if step.Skip != nil && step.Skip(r.ctx.Cfg) {
			logger.Debug("[DEBUG] Skipping step %q\n", step.Name)
			sum.Record(step.Name, StatusSkipped, "")
			continue
		}
		logger.Debug("[DEBUG] Running step %q\n", step.Name)
		if err := step.Run(r.ctx); err != nil {
			logger.Fail("%s: %v\n", step.Name, err)
			sum.Record(step.Name, StatusFailed, err.Error())
			continue
		}
		logger.Success("%s\n", step.Name)
		sum.Record(step.Name, StatusOK, "")
	}
	return sum
}

// writeFile writes content to path inside the project, creating parent
// directories as needed.
func writeFile(ctx *Context, path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := ctx.FS.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return afero.WriteFile(ctx.FS, path, content, 0644)
}
