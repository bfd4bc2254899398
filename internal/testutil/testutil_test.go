package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/actor-core/fixturectl/internal/config"
)

func TestFakeRepo_Layout(t *testing.T) {
	root := FakeRepo(t)

	paths := []string{
		"package.json",
		"examples/counter/src/index.ts",
		"examples/counter/src/server.ts",
	}
	for _, spec := range config.Default().Packages {
		paths = append(paths, filepath.Join(spec.Path, "package.json"))
	}

	for _, rel := range paths {
		if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
			t.Errorf("expected %s in fake repo: %v", rel, err)
		}
	}
}
