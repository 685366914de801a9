// Package scan finds artifact files on disk under a registry root using
// recursive glob patterns.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ListFilesMatching returns the relative paths of all files under dir that
// match pattern (doublestar syntax, so "**/*.cwl" recurses). Results are
// slash-separated, sorted, and exclude directories. A missing or unreadable
// dir yields an empty result: callers are completion helpers and listing
// commands that treat an absent root as "nothing there yet".
func ListFilesMatching(dir, pattern string) []string {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return nil
	}

	var out []string
	for _, m := range matches {
		info, err := fs.Stat(os.DirFS(dir), m)
		if err != nil || info.IsDir() {
			continue
		}
		out = append(out, filepath.ToSlash(m))
	}
	sort.Strings(out)
	return out
}

// Difference returns the members of all that are not in exclude, preserving
// order. Used to offer only unregistered files as completion candidates.
func Difference(all, exclude []string) []string {
	seen := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		seen[filepath.ToSlash(e)] = true
	}
	var out []string
	for _, a := range all {
		if !seen[filepath.ToSlash(a)] {
			out = append(out, a)
		}
	}
	return out
}

// Intersection returns the members of all that are also in keep, preserving
// order. Used to offer only registered files that still exist on disk.
func Intersection(all, keep []string) []string {
	seen := make(map[string]bool, len(keep))
	for _, k := range keep {
		seen[filepath.ToSlash(k)] = true
	}
	var out []string
	for _, a := range all {
		if seen[filepath.ToSlash(a)] {
			out = append(out, a)
		}
	}
	return out
}
