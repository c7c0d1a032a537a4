package scaffold

// FileSteps returns the file-generation steps in execution order. Steps
// that depend on a disabled feature carry a Skip predicate instead of
// being filtered out here, so the summary still lists them.
func FileSteps() []Step {
	return []Step{
		stepPackageJSON(),
		stepViteConfig(),
		stepPostCSSConfig(),
		stepIgnoreFiles(),
		stepThemeConfig(),
		stepWorkflow(),
		stepLintConfigs(),
		stepThemeStubs(),
		stepAgentDocs(),
	}
}
