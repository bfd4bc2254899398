// Package fixture bootstraps a disposable actor-core server for test suites.
//
// Start runs the full lifecycle from local monorepo source: build the
// runtime package, pack the runtime, platform adapter, and storage driver
// into vendor archives, assemble a temporary workspace around the example
// app, install dependencies, and spawn the server on an ephemeral port.
// The returned Fixture exposes the live base URL and a Stop teardown.
//
// Callers must guarantee Stop runs on every exit path, typically:
//
//	fx, err := fixture.Start(ctx, nil)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer fx.Stop()
//
// If any step before the launch fails, no Fixture is returned and the
// partially-written workspace may be left on disk; callers must not assume
// cleanup occurred in that case.
package fixture

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/actor-core/fixturectl/internal/config"
	"github.com/actor-core/fixturectl/internal/launcher"
	"github.com/actor-core/fixturectl/internal/logging"
	"github.com/actor-core/fixturectl/internal/port"
	"github.com/actor-core/fixturectl/internal/repo"
	"github.com/actor-core/fixturectl/internal/system"
	"github.com/actor-core/fixturectl/internal/workspace"
	"github.com/actor-core/fixturectl/internal/yarn"
)

// Fixture is the lifecycle handle for a running fixture server. Its process
// and workspace are owned exclusively by this handle.
type Fixture struct {
	url  string
	port int
	ws   *workspace.Workspace
	proc system.Process

	stopOnce sync.Once
}

// Option configures the bootstrap.
type Option func(*options)

type options struct {
	exec system.CommandExecutor
	fs   system.FileSystem
	dir  string
}

// WithExecutor substitutes the command executor used for all subprocess
// invocations. Intended for tests.
func WithExecutor(exec system.CommandExecutor) Option {
	return func(o *options) {
		o.exec = exec
	}
}

// WithFileSystem substitutes the filesystem used for workspace assembly.
func WithFileSystem(fs system.FileSystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithDir sets the directory the monorepo root lookup starts from instead
// of the process working directory.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// Start bootstraps a fixture server. The steps run strictly in order on the
// calling goroutine, each blocking child invocation gating the next:
// locate root, allocate port, build, pack, assemble, install, launch. None
// are retried; the first failure aborts the sequence and is returned with
// the failing step, command, and captured output.
//
// The ctx is threaded into the blocking build/pack/install invocations; a
// background context reproduces the original unbounded behavior.
func Start(ctx context.Context, cfg *config.Config, opts ...Option) (*Fixture, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{
		exec: system.DefaultExecutor(),
		fs:   system.DefaultFS(),
	}
	for _, opt := range opts {
		opt(o)
	}

	startDir := o.dir
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		startDir = wd
	}

	root, err := repo.FindRoot(o.fs, startDir)
	if err != nil {
		return nil, err
	}
	logging.Debug("repo root located", "root", root)

	p, err := port.Free()
	if err != nil {
		return nil, err
	}
	logging.Debug("port allocated", "port", p)

	if err := yarn.Build(ctx, o.exec, root, cfg.BuildFilter); err != nil {
		return nil, err
	}

	ws, err := workspace.New(o.fs)
	if err != nil {
		return nil, err
	}

	for _, spec := range cfg.Packages {
		dir := filepath.Join(root, spec.Path)
		if err := yarn.Pack(ctx, o.exec, spec.Name, dir, ws.ArchivePath(spec)); err != nil {
			return nil, err
		}
	}

	if err := ws.CopyExample(filepath.Join(root, cfg.ExamplePath)); err != nil {
		return nil, err
	}
	if err := ws.WriteEntry(cfg.EntryPath, p); err != nil {
		return nil, err
	}
	if err := ws.WriteManifest(cfg.Packages); err != nil {
		return nil, err
	}
	if err := ws.WriteYarnRC(); err != nil {
		return nil, err
	}

	if err := yarn.Install(ctx, o.exec, ws.ServerDir); err != nil {
		return nil, err
	}

	proc, err := launcher.Launch(o.exec, ws.ServerDir, cfg.Runner, cfg.EntryPath, cfg.Settle())
	if err != nil {
		return nil, err
	}

	fx := &Fixture{
		url:  fmt.Sprintf("http://127.0.0.1:%d", p),
		port: p,
		ws:   ws,
		proc: proc,
	}
	logging.Debug("fixture ready", "url", fx.url, "workspace", ws.Root, "pid", proc.PID())
	return fx, nil
}

// URL returns the server base URL, http://127.0.0.1:<port>.
func (f *Fixture) URL() string {
	return f.url
}

// Port returns the allocated server port.
func (f *Fixture) Port() int {
	return f.port
}

// PID returns the server process id.
func (f *Fixture) PID() int {
	return f.proc.PID()
}

// WorkspaceDir returns the workspace root directory.
func (f *Fixture) WorkspaceDir() string {
	return f.ws.Root
}

// Stop kills the server process and deletes the workspace tree. The kill is
// non-graceful: no drain, no grace period. Stop always releases both
// resources, even if the process already exited or the workspace was only
// partially written, and calling it more than once is safe.
func (f *Fixture) Stop() {
	f.stopOnce.Do(func() {
		logging.Debug("stopping fixture", "pid", f.proc.PID(), "workspace", f.ws.Root)

		if err := f.proc.Kill(); err != nil {
			logging.Warn("failed to kill server process", "pid", f.proc.PID(), "error", err)
		}
		if err := f.ws.Remove(); err != nil {
			logging.Warn("failed to remove workspace", "path", f.ws.Root, "error", err)
		}
	})
}
