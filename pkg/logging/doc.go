// Package logging provides structured logging utilities for the analyzer
// result tooling.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so every component logs the same way: JSON records on stderr carrying the
// module name and version.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("resultctl", version, "debug")
//	    slog.Debug("result file removed", "path", path)
//	}
//
// Components that own artifacts (result handlers) accept an injected
// *slog.Logger and default to slog.Default(), so tests can substitute a
// capturing handler.
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit level
// is passed:
//
//	LOG_LEVEL=debug resultctl clean --action action.yaml
package logging
