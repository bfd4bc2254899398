package workspace

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/actor-core/fixturectl/internal/config"
	"github.com/actor-core/fixturectl/internal/errors"
	"github.com/actor-core/fixturectl/internal/logging"
)

// ManifestName is the fixed name of the generated workspace package.
const ManifestName = "actor-core-go-test"

// entryTemplateText generates the server entry script. It imports the
// example's exported app object and the platform adapter's serve function,
// and binds the allocated port.
const entryTemplateText = `import { app } from "./index.ts";
import { serve } from "@actor-core/nodejs";

serve(app, { port: {{.Port}} });
`

var entryTemplate = template.Must(template.New("entry").Parse(entryTemplateText))

// Manifest is the generated dependency descriptor written as package.json.
// Its dependency entries reference the vendor archives by absolute local
// file path, so installation needs no registry access for them.
type Manifest struct {
	Name            string            `json:"name"`
	PackageManager  string            `json:"packageManager"`
	Private         bool              `json:"private"`
	Type            string            `json:"type"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// yarnRC is the generated package-manager configuration. Flat on-disk
// linking keeps dependency resolution local instead of going through a
// content-addressed store.
type yarnRC struct {
	NodeLinker string `yaml:"nodeLinker"`
}

// WriteEntry overwrites the example's entry-point source file with a
// generated script that serves the app on the allocated port.
func (w *Workspace) WriteEntry(entryRel string, port int) error {
	path := filepath.Join(w.ServerDir, entryRel)
	if err := w.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.AssembleFailed("create entry directory", err)
	}

	var buf bytes.Buffer
	if err := entryTemplate.Execute(&buf, struct{ Port int }{Port: port}); err != nil {
		return errors.AssembleFailed("render entry script", err)
	}

	if err := w.fs.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.AssembleFailed("write entry script", err)
	}

	logging.Debug("entry script written", "path", path, "port", port)
	return nil
}

// WriteManifest generates the dependency manifest in the server directory.
// Each package maps to a file: reference naming its vendor archive by
// absolute path, and the workspace is marked private and non-publishable.
func (w *Workspace) WriteManifest(specs []config.PackageSpec) error {
	deps := make(map[string]string, len(specs))
	for _, spec := range specs {
		abs, err := filepath.Abs(w.ArchivePath(spec))
		if err != nil {
			return errors.AssembleFailed("resolve archive path", err)
		}
		deps[spec.Module] = "file:" + abs
	}

	manifest := Manifest{
		Name:           ManifestName,
		PackageManager: "yarn@4.2.2",
		Private:        true,
		Type:           "module",
		Dependencies:   deps,
		DevDependencies: map[string]string{
			"tsx": "^3.12.7",
		},
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return errors.AssembleFailed("marshal manifest", err)
	}
	data = append(data, '\n')

	path := filepath.Join(w.ServerDir, "package.json")
	if err := w.fs.WriteFile(path, data, 0644); err != nil {
		return errors.AssembleFailed("write manifest", err)
	}

	logging.Debug("manifest written", "path", path, "dependencies", len(deps))
	return nil
}

// WriteYarnRC writes the package-manager configuration selecting flat local
// dependency linking, so install succeeds without network access to a
// registry for the vendored archives.
func (w *Workspace) WriteYarnRC() error {
	data, err := yaml.Marshal(yarnRC{NodeLinker: "node-modules"})
	if err != nil {
		return errors.AssembleFailed("marshal yarnrc", err)
	}

	path := filepath.Join(w.ServerDir, ".yarnrc.yml")
	if err := w.fs.WriteFile(path, data, 0644); err != nil {
		return errors.AssembleFailed("write yarnrc", err)
	}

	return nil
}
