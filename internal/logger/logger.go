package logger

import (
	"github.com/fatih/color" // Colored console output for all log levels
)

// Colorized printing functions for the different log levels. These are
// package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the level.

// Info logs informational messages in green color.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta color.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red color.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It is reassigned during Init based on the debug flag.
var Debug = func(format string, a ...any) {}

var success = color.New(color.FgGreen).PrintfFunc()
var fail = color.New(color.FgRed).PrintfFunc()
var skipped = color.New(color.Faint).PrintfFunc()

// Success prints a green check marker for a completed setup step.
func Success(format string, a ...any) {
	success("  ✓ "+format, a...)
}

// Fail prints a red cross marker for a failed setup step.
// A failed step does not abort the run; the summary reports it at the end.
func Fail(format string, a ...any) {
	fail("  ✗ "+format, a...)
}

// Skip prints a faint dash marker for a setup step that did not apply.
func Skip(format string, a ...any) {
	skipped("  - "+format, a...)
}

// Init initializes the logger package, specifically enabling or disabling
// debug logging. When disabled, Debug is assigned a no-op function that
// silently ignores debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
