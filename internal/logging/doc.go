// Package logging provides logging utilities for fixturectl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("packing package", "name", name, "out", outPath)
//	logging.Warn("workspace removal failed", "path", path, "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Building actor-core...")
//	logging.UserSuccess("Server listening at %s", url)
//	logging.UserWarning("Server not yet reachable on port %d", port)
//	logging.UserError("Bootstrap failed: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
package logging
