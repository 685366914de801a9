package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/semver/v3"
	"github.com/cwlreg-labs/cwlreg/internal/repo"
)

//go:embed templates
var templateFS embed.FS

// Data holds the template variables for a new artifact.
type Data struct {
	Name    string // artifact name, e.g. "bwa-mem"
	Version string // semver, e.g. "0.1.0"
	Author  string // from user.yaml / config, may be empty
	Label   string // defaults to Name when empty
}

// Result reports what was generated.
type Result struct {
	// Path is the artifact file, absolute.
	Path string
	// RelPath is the same file relative to the registry root, i.e. the
	// path that tool-init will register.
	RelPath string
}

// FileName returns the conventional artifact file name, <name>__<version>.cwl.
func FileName(name, version string) string {
	return fmt.Sprintf("%s__%s.cwl", name, version)
}

// Generate writes a fresh artifact of the given kind under root. It refuses
// to overwrite an existing file.
func Generate(kind repo.Kind, root string, data Data) (*Result, error) {
	if data.Name == "" {
		return nil, fmt.Errorf("artifact name is required")
	}
	if _, err := semver.NewVersion(data.Version); err != nil {
		return nil, fmt.Errorf("version %q is not semver: %w", data.Version, err)
	}
	if data.Label == "" {
		data.Label = data.Name
	}

	tmplPath := filepath.Join("templates", kind.String()+".cwl.tmpl")
	tmplBytes, err := templateFS.ReadFile(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("no template for kind %s: %w", kind, err)
	}
	tmpl, err := template.New(kind.String()).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing %s template: %w", kind, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing %s template: %w", kind, err)
	}

	relPath := filepath.Join(data.Name, data.Version, FileName(data.Name, data.Version))
	outPath := filepath.Join(root, relPath)
	if _, err := os.Stat(outPath); err == nil {
		return nil, fmt.Errorf("%s already exists; remove it first", outPath)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Dir(outPath), err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}

	return &Result{Path: outPath, RelPath: filepath.ToSlash(relPath)}, nil
}
