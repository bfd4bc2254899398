// Package repo locates the monorepo root for fixture bootstrapping.
package repo

import (
	"path/filepath"

	"github.com/actor-core/fixturectl/internal/errors"
	"github.com/actor-core/fixturectl/internal/system"
)

// MarkerFile identifies the monorepo root.
const MarkerFile = "package.json"

// FindRoot walks upward from start looking for the marker manifest file and
// returns the first directory that contains it. The lookup is deterministic
// given start and performs no caching. It fails with a root-not-found error
// if no ancestor up to the filesystem root qualifies.
func FindRoot(fs system.FileSystem, start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Wrap(errors.ExitRootNotFound, "invalid start directory", err)
	}

	for {
		marker := filepath.Join(dir, MarkerFile)
		if fs.Exists(marker) && !fs.IsDir(marker) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.RootNotFound(start)
		}
		dir = parent
	}
}
