package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes for fixturectl
const (
	ExitSuccess        = 0
	ExitGeneralError   = 1
	ExitRootNotFound   = 2
	ExitBuildFailed    = 3
	ExitPackFailed     = 4
	ExitAssembleFailed = 5
	ExitInstallFailed  = 6
	ExitLaunchFailed   = 7
)

// FixtureError is the base error type for fixturectl.
// Step names the bootstrap phase that failed, and Output carries the
// captured combined output of a failed subprocess, if any.
type FixtureError struct {
	Code    int
	Step    string
	Message string
	Output  string
	Cause   error
}

func (e *FixtureError) Error() string {
	msg := e.Message
	if e.Step != "" {
		msg = e.Step + ": " + msg
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *FixtureError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *FixtureError) ExitCode() int {
	return e.Code
}

// New creates a new FixtureError
func New(code int, message string) *FixtureError {
	return &FixtureError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a FixtureError
func Wrap(code int, message string, cause error) *FixtureError {
	return &FixtureError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// RootNotFound returns an error for a failed monorepo root lookup.
func RootNotFound(start string) *FixtureError {
	return &FixtureError{
		Code:    ExitRootNotFound,
		Step:    "locate",
		Message: fmt.Sprintf("no package.json found in %s or any parent directory", start),
	}
}

// BuildFailed returns an error for a failed build invocation.
// cmd is the shell-quoted command line that was run.
func BuildFailed(cmd string, output []byte, cause error) *FixtureError {
	return &FixtureError{
		Code:    ExitBuildFailed,
		Step:    "build",
		Message: fmt.Sprintf("command %s failed", cmd),
		Output:  string(output),
		Cause:   cause,
	}
}

// PackFailed returns an error for a failed pack invocation for one package.
func PackFailed(pkg, cmd string, output []byte, cause error) *FixtureError {
	return &FixtureError{
		Code:    ExitPackFailed,
		Step:    "pack",
		Message: fmt.Sprintf("package %s: command %s failed", pkg, cmd),
		Output:  string(output),
		Cause:   cause,
	}
}

// AssembleFailed returns an error for a filesystem failure during
// workspace assembly.
func AssembleFailed(op string, cause error) *FixtureError {
	return &FixtureError{
		Code:    ExitAssembleFailed,
		Step:    "assemble",
		Message: op + " failed",
		Cause:   cause,
	}
}

// InstallFailed returns an error for a failed dependency install.
func InstallFailed(cmd string, output []byte, cause error) *FixtureError {
	return &FixtureError{
		Code:    ExitInstallFailed,
		Step:    "install",
		Message: fmt.Sprintf("command %s failed", cmd),
		Output:  string(output),
		Cause:   cause,
	}
}

// LaunchFailed returns an error for a server process that could not be spawned.
// A server that starts and then dies is not detected; only the spawn itself
// is an error.
func LaunchFailed(cmd string, cause error) *FixtureError {
	return &FixtureError{
		Code:    ExitLaunchFailed,
		Step:    "launch",
		Message: fmt.Sprintf("command %s could not be started", cmd),
		Cause:   cause,
	}
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var fixErr *FixtureError
	if errors.As(err, &fixErr) {
		return fixErr.ExitCode()
	}
	return ExitGeneralError
}
