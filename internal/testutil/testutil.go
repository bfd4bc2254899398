// Package testutil provides test fixtures for bootstrap tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/actor-core/fixturectl/internal/config"
	"github.com/actor-core/fixturectl/internal/system"
)

var osfs = system.DefaultFS()

// FakeRepo creates a throwaway monorepo tree matching the default fixture
// configuration: a marker manifest at the root, the three package source
// directories, and the counter example app. Returns the repo root.
func FakeRepo(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name":"actor-core-root","private":true}`)

	for _, spec := range config.Default().Packages {
		dir := filepath.Join(root, spec.Path)
		mkdirAll(t, dir)
		writeFile(t, filepath.Join(dir, "package.json"), `{"name":"`+spec.Module+`"}`)
	}

	example := filepath.Join(root, "examples", "counter")
	mkdirAll(t, filepath.Join(example, "src"))
	writeFile(t, filepath.Join(example, "package.json"), `{"name":"counter","private":true}`)
	writeFile(t, filepath.Join(example, "src", "index.ts"),
		"import { setup } from \"actor-core\";\nexport const app = setup({ actors: {} });\n")
	writeFile(t, filepath.Join(example, "src", "server.ts"),
		"// placeholder entry, overwritten by the bootstrap\n")

	return root
}

// PackingExecutor returns a mock executor whose pack invocations create the
// archive file named by their --out argument, so generated manifests
// reference files that exist on disk.
func PackingExecutor(t *testing.T) *system.MockExecutor {
	t.Helper()

	exec := system.NewMockExecutor()
	exec.RunHook = func(c system.Call) ([]byte, error) {
		if c.Name == "yarn" && len(c.Args) >= 3 && c.Args[0] == "pack" && c.Args[1] == "--out" {
			if err := osfs.WriteFile(c.Args[2], []byte("fake-tarball"), 0644); err != nil {
				t.Fatalf("failed to create fake archive: %v", err)
			}
		}
		return nil, nil
	}
	return exec
}

func mkdirAll(t *testing.T, dir string) {
	t.Helper()
	if err := osfs.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := osfs.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
