package index

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// Sentinel errors for callers that branch on registration state.
var (
	ErrNotRegistered = errors.New("artifact not registered")
	ErrVersionExists = errors.New("version already registered")
)

// Index is the in-memory form of one per-kind index file. Key is the
// top-level YAML key the item list lives under ("tools", "workflows", ...).
type Index struct {
	Key   string
	Items []Item
}

// Load reads a per-kind index file. A missing or empty file is a valid
// empty index, not an error: fresh registry clones start without one.
func Load(path, key string) (*Index, error) {
	idx := &Index{Key: key}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return idx, nil
		}
		return nil, fmt.Errorf("reading index %s: %w", path, err)
	}
	if len(data) == 0 {
		return idx, nil
	}

	var doc map[string][]Item
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing index %s: %w", path, err)
	}
	idx.Items = doc[key]
	return idx, nil
}

// RegisteredPaths returns every registered relative path: the join of each
// item's path with each of its version paths, slash-separated, sorted.
func (idx *Index) RegisteredPaths() []string {
	var out []string
	for _, item := range idx.Items {
		for _, v := range item.Versions {
			out = append(out, path.Join(item.Path, v.Path))
		}
	}
	sort.Strings(out)
	return out
}

// Find returns the item with the given name, or nil.
func (idx *Index) Find(name string) *Item {
	for i := range idx.Items {
		if idx.Items[i].Name == name {
			return &idx.Items[i]
		}
	}
	return nil
}

// FindByRelPath returns the item and version matching a registered relative
// path, as produced by RegisteredPaths.
func (idx *Index) FindByRelPath(relPath string) (*Item, *Version, error) {
	relPath = filepath.ToSlash(relPath)
	for i := range idx.Items {
		item := &idx.Items[i]
		for j := range item.Versions {
			if path.Join(item.Path, item.Versions[j].Path) == relPath {
				return item, &item.Versions[j], nil
			}
		}
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrNotRegistered, relPath)
}

// AddVersion registers a version under the named item, creating the item if
// it is new. The version name must parse as semver ("v" prefix tolerated).
func (idx *Index) AddVersion(itemName, itemPath string, v Version) error {
	if _, err := semver.NewVersion(v.Name); err != nil {
		return fmt.Errorf("version %q is not semver: %w", v.Name, err)
	}

	item := idx.Find(itemName)
	if item == nil {
		idx.Items = append(idx.Items, Item{Name: itemName, Path: itemPath})
		item = &idx.Items[len(idx.Items)-1]
	}
	for _, existing := range item.Versions {
		if existing.Name == v.Name {
			return fmt.Errorf("%w: %s/%s", ErrVersionExists, itemName, v.Name)
		}
	}
	item.Versions = append(item.Versions, v)
	return nil
}

// Save writes the index back to disk atomically (tmp file then rename), so
// a crash mid-write never leaves a truncated index behind.
func (idx *Index) Save(path string) error {
	doc := map[string][]Item{idx.Key: idx.Items}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	return atomicWrite(path, data)
}

func atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
