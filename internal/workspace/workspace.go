package workspace

import (
	"path/filepath"

	"github.com/actor-core/fixturectl/internal/config"
	"github.com/actor-core/fixturectl/internal/errors"
	"github.com/actor-core/fixturectl/internal/logging"
	"github.com/actor-core/fixturectl/internal/system"
)

const (
	vendorDirName = "vendor"
	serverDirName = "server"
)

// Workspace is a uniquely-named temporary directory tree holding the vendor
// archives and the assembled runnable example. Each bootstrap invocation owns
// exactly one Workspace; two invocations never share a directory.
type Workspace struct {
	// Root is the workspace temporary directory.
	Root string

	// VendorDir holds the packed artifact archives.
	VendorDir string

	// ServerDir holds the copied example app and the generated entry
	// script, manifest, and package-manager config.
	ServerDir string

	fs system.FileSystem
}

// New creates a fresh workspace with its vendor and server subdirectories.
// The directory name is unique per invocation.
func New(fs system.FileSystem) (*Workspace, error) {
	root, err := fs.MkdirTemp("", "actor-core-fixture-")
	if err != nil {
		return nil, errors.AssembleFailed("create workspace directory", err)
	}

	w := &Workspace{
		Root:      root,
		VendorDir: filepath.Join(root, vendorDirName),
		ServerDir: filepath.Join(root, serverDirName),
		fs:        fs,
	}

	if err := fs.MkdirAll(w.VendorDir, 0755); err != nil {
		return nil, errors.AssembleFailed("create vendor directory", err)
	}
	if err := fs.MkdirAll(w.ServerDir, 0755); err != nil {
		return nil, errors.AssembleFailed("create server directory", err)
	}

	logging.Debug("workspace created", "root", root)
	return w, nil
}

// ArchivePath returns the vendor path for a package's archive.
func (w *Workspace) ArchivePath(spec config.PackageSpec) string {
	return filepath.Join(w.VendorDir, spec.ArchiveName())
}

// CopyExample recursively copies the example application's source tree from
// src into the workspace's server subdirectory. The original tree is read,
// never modified.
func (w *Workspace) CopyExample(src string) error {
	if !w.fs.IsDir(src) {
		return errors.AssembleFailed("copy example", &notADirError{src})
	}
	if err := copyTree(w.fs, src, w.ServerDir); err != nil {
		return errors.AssembleFailed("copy example", err)
	}
	logging.Debug("example copied", "src", src, "dst", w.ServerDir)
	return nil
}

// Remove deletes the entire workspace tree. Removing a partially-assembled
// or already-removed workspace is not an error.
func (w *Workspace) Remove() error {
	return w.fs.RemoveAll(w.Root)
}

type notADirError struct {
	path string
}

func (e *notADirError) Error() string {
	return e.path + " is not a directory"
}
