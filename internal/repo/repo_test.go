package repo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestKindTable(t *testing.T) {
	tests := []struct {
		kind   Kind
		name   string
		plural string
		index  string
		key    string
	}{
		{KindTool, "tool", "tools", "tool.yaml", "tools"},
		{KindWorkflow, "workflow", "workflows", "workflow.yaml", "workflows"},
		{KindExpression, "expression", "expressions", "expression.yaml", "expressions"},
		{KindSchema, "schema", "schemas", "schema.yaml", "schemas"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.kind.String() != tt.name {
				t.Errorf("String() = %q", tt.kind.String())
			}
			if tt.kind.Plural() != tt.plural {
				t.Errorf("Plural() = %q", tt.kind.Plural())
			}
			if tt.kind.IndexFile() != tt.index {
				t.Errorf("IndexFile() = %q", tt.kind.IndexFile())
			}
			if tt.kind.IndexKey() != tt.key {
				t.Errorf("IndexKey() = %q", tt.kind.IndexKey())
			}
		})
	}
}

func TestKindGlob(t *testing.T) {
	if KindTool.Glob() != "**/*.cwl" {
		t.Errorf("tool glob = %q", KindTool.Glob())
	}
	if KindSchema.Glob() != "**/*.{cwl,yaml}" {
		t.Errorf("schema glob = %q", KindSchema.Glob())
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("workflow")
	if err != nil || k != KindWorkflow {
		t.Errorf("ParseKind(workflow) = %v, %v", k, err)
	}
	if _, err := ParseKind("gadget"); err == nil {
		t.Error("ParseKind(gadget) = nil error")
	}
}

func TestRoot_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvRepoPath, dir)

	got, err := Root()
	if err != nil {
		t.Fatalf("Root() error: %v", err)
	}
	if got != dir {
		t.Errorf("Root() = %q, want %q", got, dir)
	}
}

func TestRoot_NotConfigured(t *testing.T) {
	t.Setenv(EnvRepoPath, "")
	// Viper is not loaded in this test, so no config fallback exists.
	_, err := Root()
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Root() err = %v, want ErrNotConfigured", err)
	}
}

func TestRoot_MissingDirectory(t *testing.T) {
	t.Setenv(EnvRepoPath, filepath.Join(t.TempDir(), "nope"))
	if _, err := Root(); err == nil {
		t.Error("Root(missing dir) = nil error")
	}
}

func TestArtifactDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvRepoPath, dir)

	// Missing tools/ directory: read-only lookup fails...
	if _, err := ArtifactDir(KindTool); err == nil {
		t.Error("ArtifactDir(no tools dir) = nil error")
	}

	// ...while the writer variant creates it.
	created, err := EnsureArtifactDir(KindTool)
	if err != nil {
		t.Fatalf("EnsureArtifactDir() error: %v", err)
	}
	if created != filepath.Join(dir, "tools") {
		t.Errorf("EnsureArtifactDir() = %q", created)
	}
	if info, err := os.Stat(created); err != nil || !info.IsDir() {
		t.Errorf("tools dir not created: %v", err)
	}

	got, err := ArtifactDir(KindTool)
	if err != nil || got != created {
		t.Errorf("ArtifactDir() = %q, %v", got, err)
	}
}

func TestIndexPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvRepoPath, dir)

	got, err := IndexPath(KindExpression)
	if err != nil {
		t.Fatalf("IndexPath() error: %v", err)
	}
	want := filepath.Join(dir, ConfigDirName, "expression.yaml")
	if got != want {
		t.Errorf("IndexPath() = %q, want %q", got, want)
	}
}
