package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwlreg-labs/cwlreg/internal/repo"
)

// setupRegistry creates an isolated registry repo and points the CLI at it
// through the environment, keeping the user's real config out of the test.
func setupRegistry(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	repoDir := t.TempDir()
	for _, sub := range []string{"tools", "workflows", "expressions", "schemas", "config"} {
		if err := os.MkdirAll(filepath.Join(repoDir, sub), 0755); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv(repo.EnvRepoPath, repoDir)
	return repoDir
}

// runCommand executes the root command with args and returns combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestToolLifecycle(t *testing.T) {
	repoDir := setupRegistry(t)

	// Scaffold a new tool.
	out, err := runCommand(t, "create-tool-from-template", "--name", "bwa-mem", "--version", "1.0.0")
	if err != nil {
		t.Fatalf("create: %v\n%s", err, out)
	}
	toolPath := filepath.Join(repoDir, "tools", "bwa-mem", "1.0.0", "bwa-mem__1.0.0.cwl")
	if _, err := os.Stat(toolPath); err != nil {
		t.Fatalf("scaffolded tool missing: %v", err)
	}

	// Unregistered until tool-init runs.
	out, err = runCommand(t, "list-tools", "--unregistered")
	if err != nil {
		t.Fatalf("list-tools --unregistered: %v\n%s", err, out)
	}
	if !strings.Contains(out, "bwa-mem/1.0.0/bwa-mem__1.0.0.cwl") {
		t.Errorf("unregistered listing missing new tool:\n%s", out)
	}

	// Validate standalone.
	if out, err := runCommand(t, "tool-validate", toolPath); err != nil {
		t.Fatalf("tool-validate: %v\n%s", err, out)
	}

	// Register it.
	out, err = runCommand(t, "tool-init", toolPath)
	if err != nil {
		t.Fatalf("tool-init: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Registered tool bwa-mem version 1.0.0") {
		t.Errorf("unexpected init output:\n%s", out)
	}

	// Registering twice is rejected.
	if _, err := runCommand(t, "tool-init", toolPath); err == nil {
		t.Error("second tool-init succeeded, want duplicate-version error")
	}

	// It shows up in the registered listing. Flag values stick between
	// Execute calls on a shared command tree, so reset explicitly.
	out, err = runCommand(t, "list-tools", "--unregistered=false")
	if err != nil {
		t.Fatalf("list-tools: %v\n%s", err, out)
	}
	if !strings.Contains(out, "bwa-mem") || !strings.Contains(out, "1.0.0") {
		t.Errorf("registered listing missing tool:\n%s", out)
	}

	// In-sync file: sync is a no-op.
	out, err = runCommand(t, "tool-sync", toolPath)
	if err != nil {
		t.Fatalf("tool-sync: %v\n%s", err, out)
	}
	if !strings.Contains(out, "already up to date") {
		t.Errorf("unexpected sync output:\n%s", out)
	}

	// Edit the file, then sync updates the fingerprint.
	data, err := os.ReadFile(toolPath)
	if err != nil {
		t.Fatal(err)
	}
	data = append(data, []byte("\n# tweaked\n")...)
	if err := os.WriteFile(toolPath, data, 0644); err != nil {
		t.Fatal(err)
	}
	out, err = runCommand(t, "tool-sync", toolPath)
	if err != nil {
		t.Fatalf("tool-sync after edit: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Synced tool bwa-mem/1.0.0") {
		t.Errorf("unexpected sync output:\n%s", out)
	}

	// The index passes schema validation.
	if out, err := runCommand(t, "validate-config-yamls"); err != nil {
		t.Fatalf("validate-config-yamls: %v\n%s", err, out)
	}

	// Record and list a run.
	out, err = runCommand(t, "register-tool-run", "--project", "dev", toolPath)
	if err != nil {
		t.Fatalf("register-tool-run: %v\n%s", err, out)
	}
	out, err = runCommand(t, "list-tool-runs", "--project", "dev")
	if err != nil {
		t.Fatalf("list-tool-runs: %v\n%s", err, out)
	}
	if !strings.Contains(out, "bwa-mem") {
		t.Errorf("run listing missing artifact:\n%s", out)
	}
}

func TestInitRejectsFileOutsideRoot(t *testing.T) {
	setupRegistry(t)

	stray := filepath.Join(t.TempDir(), "stray.cwl")
	if err := os.WriteFile(stray, []byte("class: CommandLineTool\ncwlVersion: v1.1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := runCommand(t, "tool-init", stray); err == nil {
		t.Error("tool-init accepted a file outside tools/")
	}
}

func TestInitRejectsBadLayout(t *testing.T) {
	repoDir := setupRegistry(t)

	flat := filepath.Join(repoDir, "tools", "flat.cwl")
	if err := os.WriteFile(flat, []byte("class: CommandLineTool\ncwlVersion: v1.1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := runCommand(t, "tool-init", flat); err == nil {
		t.Error("tool-init accepted a file not in <name>/<version>/ layout")
	}
}

func TestGetWorkflowStepIDs(t *testing.T) {
	repoDir := setupRegistry(t)

	wf := filepath.Join(repoDir, "workflows", "rnaseq", "0.1.0", "rnaseq__0.1.0.cwl")
	if err := os.MkdirAll(filepath.Dir(wf), 0755); err != nil {
		t.Fatal(err)
	}
	content := `cwlVersion: v1.1
class: Workflow
label: rnaseq
doc: pipeline
inputs: []
steps:
  align:
    run: x.cwl
    in: []
    out: []
outputs: []
`
	if err := os.WriteFile(wf, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "get-workflow-step-ids", wf)
	if err != nil {
		t.Fatalf("get-workflow-step-ids: %v\n%s", err, out)
	}
	if !strings.Contains(out, "align") {
		t.Errorf("output missing step id:\n%s", out)
	}
}

func TestSplitRegistryLayout(t *testing.T) {
	tests := []struct {
		relPath     string
		itemName    string
		itemPath    string
		versionName string
		versionPath string
		wantErr     bool
	}{
		{"bwa-mem/1.0.0/bwa-mem__1.0.0.cwl", "bwa-mem", "bwa-mem", "1.0.0", "1.0.0/bwa-mem__1.0.0.cwl", false},
		{"alignment/bwa-mem/1.0.0/t.cwl", "bwa-mem", "alignment/bwa-mem", "1.0.0", "1.0.0/t.cwl", false},
		{"flat.cwl", "", "", "", "", true},
		{"name/file.cwl", "", "", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.relPath, func(t *testing.T) {
			itemName, itemPath, versionName, versionPath, err := splitRegistryLayout(tt.relPath)
			if tt.wantErr {
				if err == nil {
					t.Fatal("want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("err = %v", err)
			}
			if itemName != tt.itemName || itemPath != tt.itemPath ||
				versionName != tt.versionName || versionPath != tt.versionPath {
				t.Errorf("got (%q, %q, %q, %q)", itemName, itemPath, versionName, versionPath)
			}
		})
	}
}

func TestPathArgCompletionModes(t *testing.T) {
	repoDir := setupRegistry(t)

	// Two tools on disk, one registered.
	for _, name := range []string{"alpha", "beta"} {
		// Explicit --version: flag values persist across Execute calls.
		out, err := runCommand(t, "create-tool-from-template", "--name", name, "--version", "0.1.0")
		if err != nil {
			t.Fatalf("create %s: %v\n%s", name, err, out)
		}
	}
	alphaPath := filepath.Join(repoDir, "tools", "alpha", "0.1.0", "alpha__0.1.0.cwl")
	if out, err := runCommand(t, "tool-init", alphaPath); err != nil {
		t.Fatalf("tool-init: %v\n%s", err, out)
	}

	// Completion is computed from the registry root regardless of cwd; use
	// the repo dir as a stable working directory for the assertion.
	origWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(filepath.Join(repoDir, "tools")); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWD) })

	complete := func(mode candidateMode) []string {
		fn := pathArgCompletion(repo.KindTool, mode)
		out, _ := fn(nil, nil, "")
		return out
	}

	all := strings.Join(complete(allOnDisk), "\n")
	if !strings.Contains(all, "alpha") || !strings.Contains(all, "beta") {
		t.Errorf("allOnDisk = %q, want both tools", all)
	}

	registered := strings.Join(complete(registeredOnly), "\n")
	if !strings.Contains(registered, "alpha") || strings.Contains(registered, "beta") {
		t.Errorf("registeredOnly = %q, want alpha only", registered)
	}

	unregistered := strings.Join(complete(unregisteredOnly), "\n")
	if strings.Contains(unregistered, "alpha") || !strings.Contains(unregistered, "beta") {
		t.Errorf("unregisteredOnly = %q, want beta only", unregistered)
	}
}
