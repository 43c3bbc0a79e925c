// Package logging provides logging utilities for skills-ctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("resolved source", "marker", marker, "path", path)
//	logging.Warn("skipping unreadable directory", "dir", dir, "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Scanning %s...", root)
//	logging.UserSuccess("Hydrated %s", target)
//	logging.UserWarning("Skill %s still has pending markers", name)
//	logging.UserError("Source not found: %s", path)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
