package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwlreg-labs/cwlreg/internal/config"
)

// EnvRepoPath overrides the configured registry repo location when set.
const EnvRepoPath = "CWLREG_REPO_PATH"

// ConfigDirName is the directory inside the registry repo that holds the
// YAML index files.
const ConfigDirName = "config"

// Index file names for the non-artifact registries.
const (
	CategoryIndexFile = "category.yaml"
	ProjectIndexFile  = "project.yaml"
	TenantIndexFile   = "tenant.yaml"
	UserIndexFile     = "user.yaml"
	RunIndexFile      = "run.yaml"
)

// ErrNotConfigured is returned when no registry repo path has been set.
var ErrNotConfigured = errors.New("registry repo not configured")

// Root returns the absolute path to the registry repo. It checks the
// CWLREG_REPO_PATH environment variable first, then the repo_path config
// key. The directory must exist.
func Root() (string, error) {
	path := os.Getenv(EnvRepoPath)
	if path == "" {
		path = config.Get(config.KeyRepoPath)
	}
	if path == "" {
		return "", fmt.Errorf("%w: set %s or run 'cwlreg configure-repo <path>'", ErrNotConfigured, EnvRepoPath)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving repo path %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("registry repo %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("registry repo %s is not a directory", abs)
	}
	return abs, nil
}

// ConfigDir returns <repo>/config, creating it if absent.
func ConfigDir() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, ConfigDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return dir, nil
}

// ArtifactDir returns the registry root directory for a kind, e.g.
// <repo>/tools. The directory must exist; completion helpers rely on this
// being a read-only check.
func ArtifactDir(k Kind) (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, k.Plural())
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("%s directory: %w", k.Plural(), err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", dir)
	}
	return dir, nil
}

// EnsureArtifactDir is ArtifactDir for writers: it creates the directory if
// a fresh registry clone does not have it yet.
func EnsureArtifactDir(k Kind) (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, k.Plural())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating %s directory %s: %w", k.Plural(), dir, err)
	}
	return dir, nil
}

// IndexPath returns the YAML index file for a kind, e.g. <repo>/config/tool.yaml.
// The file itself may not exist yet; callers treat a missing index as empty.
func IndexPath(k Kind) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, k.IndexFile()), nil
}

// NamedIndexPath returns a non-artifact index file under <repo>/config,
// e.g. NamedIndexPath(ProjectIndexFile).
func NamedIndexPath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
