// Package system provides abstractions for OS operations to enable testing.
package system

import (
	"context"
	"io/fs"
)

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	// ReadFile reads the named file and returns the contents.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to the named file, creating it if necessary.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory named path, along with any necessary parents.
	MkdirAll(path string, perm fs.FileMode) error

	// MkdirTemp creates a new uniquely-named temporary directory and
	// returns its path. An empty dir uses the OS default temp location.
	MkdirTemp(dir, pattern string) (string, error)

	// RemoveAll removes path and any children it contains.
	RemoveAll(path string) error

	// Stat returns file info for the named file.
	Stat(path string) (fs.FileInfo, error)

	// Exists returns true if the path exists.
	Exists(path string) bool

	// IsDir returns true if the path is a directory.
	IsDir(path string) bool

	// ReadDir reads the named directory, returning all its directory entries.
	ReadDir(path string) ([]fs.DirEntry, error)

	// CopyFile copies a file from src to dst, preserving the file mode.
	CopyFile(src, dst string) error
}

// CommandExecutor abstracts command execution for testability.
// All bootstrap subprocess invocations go through this interface so that
// tests can substitute doubles without invoking real external tools.
type CommandExecutor interface {
	// Run runs a command with dir as its working directory and blocks
	// until it exits, returning the combined stdout/stderr output.
	// A non-zero exit is reported as an error alongside the output.
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)

	// Start launches a command with dir as its working directory without
	// waiting for it to exit. Ownership of the returned Process passes to
	// the caller.
	Start(dir, name string, args ...string) (Process, error)

	// LookPath searches for an executable in PATH.
	LookPath(name string) (string, error)
}

// Process is a handle to a spawned long-running child process.
type Process interface {
	// PID returns the operating-system process id.
	PID() int

	// Kill forcibly terminates the process. Killing a process that has
	// already exited is not an error.
	Kill() error
}

// DefaultFS returns the FileSystem implementation backed by real OS operations.
func DefaultFS() FileSystem {
	return &osFileSystem{}
}

// DefaultExecutor returns the CommandExecutor backed by os/exec.
func DefaultExecutor() CommandExecutor {
	return &osExecutor{}
}
