package workspace

import (
	"fmt"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/actor-core/fixturectl/internal/system"
)

// copyTree recursively copies the directory tree at src into dst. Only
// regular files and directories are copied; other entry types (sockets,
// device nodes) are skipped. Symlinked dirs are not followed, so a cyclic
// example tree cannot loop the copy.
func copyTree(fs system.FileSystem, src, dst string) error {
	if err := fs.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	entries, err := fs.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())

		// Entry names come from the example tree; keep the destination
		// inside the workspace even if a name resolves strangely.
		dstPath, err := securejoin.SecureJoin(dst, entry.Name())
		if err != nil {
			return fmt.Errorf("unsafe entry name %q: %w", entry.Name(), err)
		}

		switch {
		case entry.IsDir():
			if err := copyTree(fs, srcPath, dstPath); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if err := fs.CopyFile(srcPath, dstPath); err != nil {
				return fmt.Errorf("failed to copy %s: %w", srcPath, err)
			}
		default:
			continue
		}
	}

	return nil
}
