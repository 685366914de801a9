package index

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Top-level YAML keys of the flat registries.
const (
	KeyCategories = "categories"
	KeyProjects   = "projects"
	KeyTenants    = "tenants"
	KeyUsers      = "users"
	KeyRuns       = "runs"
)

// loadList reads a flat registry file (a document whose top-level key holds
// one list). Missing and empty files decode to an empty list.
func loadList[T any](path, key string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var doc map[string][]T
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc[key], nil
}

// saveList writes a flat registry file atomically.
func saveList[T any](path, key string, items []T) error {
	data, err := yaml.Marshal(map[string][]T{key: items})
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return atomicWrite(path, data)
}

// LoadCategories reads category.yaml.
func LoadCategories(path string) ([]Category, error) {
	return loadList[Category](path, KeyCategories)
}

// LoadProjects reads project.yaml.
func LoadProjects(path string) ([]Project, error) {
	return loadList[Project](path, KeyProjects)
}

// LoadTenants reads tenant.yaml.
func LoadTenants(path string) ([]Tenant, error) {
	return loadList[Tenant](path, KeyTenants)
}

// LoadUsers reads user.yaml.
func LoadUsers(path string) ([]User, error) {
	return loadList[User](path, KeyUsers)
}

// LoadRuns reads run.yaml.
func LoadRuns(path string) ([]Run, error) {
	return loadList[Run](path, KeyRuns)
}

// SaveRuns writes run.yaml.
func SaveRuns(path string, runs []Run) error {
	return saveList(path, KeyRuns, runs)
}
