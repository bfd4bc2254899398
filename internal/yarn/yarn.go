// Package yarn wraps the package-manager invocations of the bootstrap:
// build, pack, and install. Each call blocks until the child process exits;
// a non-zero exit is fatal and surfaced verbatim with the captured output.
package yarn

import (
	"context"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/actor-core/fixturectl/internal/errors"
	"github.com/actor-core/fixturectl/internal/logging"
	"github.com/actor-core/fixturectl/internal/system"
)

// Build runs the monorepo build scoped to the given package filter, with the
// repo root as working directory.
func Build(ctx context.Context, exec system.CommandExecutor, root, filter string) error {
	args := []string{"build", "-F", filter}
	cmdLine := shellquote.Join(append([]string{"yarn"}, args...)...)
	logging.Debug("running build", "dir", root, "cmd", cmdLine)

	out, err := exec.Run(ctx, root, "yarn", args...)
	if err != nil {
		return errors.BuildFailed(cmdLine, out, err)
	}
	return nil
}

// Pack produces a distributable archive for the package rooted at dir,
// writing it to the explicit output path out.
func Pack(ctx context.Context, exec system.CommandExecutor, pkg, dir, out string) error {
	args := []string{"pack", "--out", out}
	cmdLine := shellquote.Join(append([]string{"yarn"}, args...)...)
	logging.Debug("packing package", "package", pkg, "dir", dir, "out", out)

	output, err := exec.Run(ctx, dir, "yarn", args...)
	if err != nil {
		return errors.PackFailed(pkg, cmdLine, output, err)
	}
	return nil
}

// Install runs the package manager's install step with dir as working
// directory. Dependency resolution is expected to be fully local; the
// generated workspace references its archives by absolute file path.
func Install(ctx context.Context, exec system.CommandExecutor, dir string) error {
	logging.Debug("installing dependencies", "dir", dir)

	out, err := exec.Run(ctx, dir, "yarn")
	if err != nil {
		return errors.InstallFailed("yarn", out, err)
	}
	return nil
}
