// Package errors provides typed errors with exit codes for skills-ctl.
//
// # Error Types
//
// SkillsError is the base error type that wraps an error with an exit code:
//
//	type SkillsError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess        = 0  // Success
//	ExitGeneralError   = 1  // General/unknown errors
//	ExitMarkersFailed  = 2  // One or more markers failed to hydrate
//	ExitInvalidMarker  = 3  // Marker file unreadable or empty
//	ExitSourceNotFound = 4  // Referenced source missing at primary and fallback
//	ExitWriteFailure   = 5  // Target write or marker removal failed
//	ExitSkillNotFound  = 6  // Skill does not exist
//	ExitInstallFailed  = 7  // Install operation failed
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.InvalidMarker("skills/FOO-replace.txt", err)
//	errors.SourceNotFound("skills/BAZ-replace.txt", "../../MISSING.md")
//	errors.WriteFailure("write", "skills/FOO.md", err)
//	errors.SkillNotFound("naming")
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
