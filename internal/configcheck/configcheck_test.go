package configcheck

import (
	"strings"
	"testing"
)

func TestCheck_ValidToolIndex(t *testing.T) {
	data := []byte(`tools:
  - name: bwa-mem
    path: bwa-mem
    categories: [alignment]
    versions:
      - name: 1.0.0
        path: 1.0.0/bwa-mem__1.0.0.cwl
        md5sum: 0123456789abcdef0123456789abcdef
`)
	issues, err := Check(data)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("issues = %v, want none", issues)
	}
}

func TestCheck_ValidProjectIndex(t *testing.T) {
	data := []byte(`projects:
  - name: dev
    project_id: 12345678-1234-1234-1234-123456789012
    tenant_name: umccr
`)
	issues, err := Check(data)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("issues = %v, want none", issues)
	}
}

func TestCheck_MissingRequiredField(t *testing.T) {
	data := []byte(`tools:
  - name: bwa-mem
    versions: []
`)
	issues, err := Check(data)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if len(issues) == 0 {
		t.Fatal("Check(tool without path) found no issues")
	}
}

func TestCheck_BadMd5sum(t *testing.T) {
	data := []byte(`tools:
  - name: bwa-mem
    path: bwa-mem
    versions:
      - name: 1.0.0
        path: 1.0.0/t.cwl
        md5sum: not-an-md5
`)
	issues, err := Check(data)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	found := false
	for _, i := range issues {
		if strings.Contains(i.Path, "md5sum") {
			found = true
		}
	}
	if !found {
		t.Errorf("issues = %v, want one at .../md5sum", issues)
	}
}

func TestCheck_UnknownTopLevelKey(t *testing.T) {
	issues, err := Check([]byte("gadgets: []\n"))
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if len(issues) == 0 {
		t.Error("Check(unknown key) found no issues")
	}
}

func TestCheck_EmptyFileIsValid(t *testing.T) {
	issues, err := Check([]byte("   \n"))
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("issues = %v, want none for empty file", issues)
	}
}

func TestCheck_NotYAML(t *testing.T) {
	issues, err := Check([]byte("\t{ not: [ yaml"))
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if len(issues) == 0 {
		t.Error("Check(garbage) found no issues")
	}
}
