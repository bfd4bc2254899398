package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultSettleSeconds is the pause after launching the server process,
// giving it time to bind its port. A readiness heuristic, not a health check.
const DefaultSettleSeconds = 2

// PackageSpec names one monorepo package to build and pack.
type PackageSpec struct {
	// Name is the logical name used to derive the archive file name.
	Name string `toml:"name"`

	// Path is the package source directory, relative to the repo root.
	Path string `toml:"path"`

	// Module is the package-manager identity the generated manifest
	// depends on (e.g. "@actor-core/nodejs").
	Module string `toml:"module"`
}

// ArchiveName returns the deterministic archive file name for this package.
func (p PackageSpec) ArchiveName() string {
	return "actor-core-" + p.Name + ".tgz"
}

// Config holds the fixture bootstrap configuration. The set of packages is
// fixed and known in advance, not discovered.
type Config struct {
	// BuildFilter scopes the monorepo build to the runtime package.
	BuildFilter string `toml:"build_filter"`

	// Packages are the packages to pack into vendor archives.
	Packages []PackageSpec `toml:"packages"`

	// ExamplePath is the example application directory, relative to the
	// repo root. Its source tree is copied into the workspace.
	ExamplePath string `toml:"example_path"`

	// EntryPath is the entry-point source file, relative to the server
	// directory. It is overwritten with a generated script.
	EntryPath string `toml:"entry_path"`

	// Runner is the command that executes the generated entry script.
	Runner []string `toml:"runner"`

	// SettleSeconds is the fixed pause after spawning the server.
	SettleSeconds int `toml:"settle_seconds"`
}

// Default returns the configuration matching the actor-core monorepo layout.
func Default() *Config {
	return &Config{
		BuildFilter: "actor-core",
		Packages: []PackageSpec{
			{Name: "actor-core", Path: "packages/actor-core", Module: "actor-core"},
			{Name: "nodejs", Path: "packages/platforms/nodejs", Module: "@actor-core/nodejs"},
			{Name: "memory", Path: "packages/drivers/memory", Module: "@actor-core/memory"},
		},
		ExamplePath:   "examples/counter",
		EntryPath:     "src/server.ts",
		Runner:        []string{"npx", "tsx"},
		SettleSeconds: DefaultSettleSeconds,
	}
}

// Load reads a TOML configuration file over the defaults. Fields absent from
// the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Settle returns the settle interval as a duration.
func (c *Config) Settle() time.Duration {
	return time.Duration(c.SettleSeconds) * time.Second
}

// Validate checks that the configuration is complete.
func (c *Config) Validate() error {
	if c.BuildFilter == "" {
		return fmt.Errorf("build_filter is required")
	}
	if len(c.Packages) == 0 {
		return fmt.Errorf("at least one package is required")
	}
	for i, p := range c.Packages {
		if p.Name == "" || p.Path == "" || p.Module == "" {
			return fmt.Errorf("package %d: name, path, and module are required", i)
		}
	}
	if c.ExamplePath == "" {
		return fmt.Errorf("example_path is required")
	}
	if c.EntryPath == "" {
		return fmt.Errorf("entry_path is required")
	}
	if len(c.Runner) == 0 {
		return fmt.Errorf("runner is required")
	}
	if c.SettleSeconds < 0 {
		return fmt.Errorf("settle_seconds must not be negative")
	}
	return nil
}
