package errors

import (
	"errors"
	"fmt"
)

// Exit codes for skills-ctl
const (
	ExitSuccess        = 0
	ExitGeneralError   = 1
	ExitMarkersFailed  = 2
	ExitInvalidMarker  = 3
	ExitSourceNotFound = 4
	ExitWriteFailure   = 5
	ExitSkillNotFound  = 6
	ExitInstallFailed  = 7
)

// SkillsError is the base error type for skills-ctl
type SkillsError struct {
	Code    int
	Message string
	Cause   error
}

func (e *SkillsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SkillsError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *SkillsError) ExitCode() int {
	return e.Code
}

// New creates a new SkillsError
func New(code int, message string) *SkillsError {
	return &SkillsError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a SkillsError
func Wrap(code int, message string, cause error) *SkillsError {
	return &SkillsError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// InvalidMarker returns an error for a marker file that cannot be used
func InvalidMarker(path string, cause error) *SkillsError {
	return Wrap(ExitInvalidMarker, fmt.Sprintf("invalid marker %s", path), cause)
}

// SourceNotFound returns an error when a marker's referenced source does not
// exist at the primary or fallback location. The message names the missing
// path so the operator can see exactly what could not be resolved.
func SourceNotFound(marker, path string) *SkillsError {
	return New(ExitSourceNotFound, fmt.Sprintf("%s: source not found: %s", marker, path))
}

// WriteFailure returns an error for a failed target write or marker removal
func WriteFailure(op, path string, cause error) *SkillsError {
	return Wrap(ExitWriteFailure, fmt.Sprintf("%s %s failed", op, path), cause)
}

// MarkersFailed returns the run-level error when one or more markers could
// not be hydrated
func MarkersFailed(n int) *SkillsError {
	if n == 1 {
		return New(ExitMarkersFailed, "1 marker failed to hydrate")
	}
	return New(ExitMarkersFailed, fmt.Sprintf("%d markers failed to hydrate", n))
}

// SkillNotFound returns an error for a missing skill
func SkillNotFound(name string) *SkillsError {
	return New(ExitSkillNotFound, fmt.Sprintf("skill not found: %s", name))
}

// InstallFailed returns an error for install operations
func InstallFailed(message string, cause error) *SkillsError {
	return Wrap(ExitInstallFailed, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *SkillsError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var skillsErr *SkillsError
	if errors.As(err, &skillsErr) {
		return skillsErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
