// Package errors provides typed errors with exit codes for fixturectl.
//
// # Error Types
//
// FixtureError is the base error type that wraps an error with an exit code,
// the bootstrap step that failed, and any captured subprocess output:
//
//	type FixtureError struct {
//	    Code    int    // Exit code
//	    Step    string // Bootstrap step ("build", "pack", ...)
//	    Message string // User-facing message
//	    Output  string // Captured subprocess output
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess        = 0  // Success
//	ExitGeneralError   = 1  // General/unknown errors
//	ExitRootNotFound   = 2  // Monorepo root not found
//	ExitBuildFailed    = 3  // Build tool invocation failed
//	ExitPackFailed     = 4  // Per-package pack failed
//	ExitAssembleFailed = 5  // Workspace assembly failed
//	ExitInstallFailed  = 6  // Dependency install failed
//	ExitLaunchFailed   = 7  // Server process could not be spawned
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.RootNotFound(startDir)
//	errors.BuildFailed(cmdLine, output, err)
//	errors.PackFailed("nodejs", cmdLine, output, err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
