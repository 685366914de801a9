package pathcomplete

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Resolve returns the completion candidates for a partially typed path.
//
// root is the absolute registry root for one artifact kind. candidates are
// paths relative to root, precomputed by the caller (filesystem scan, index
// lookup, or both). fragment is the raw argument text the user has typed so
// far; a trailing separator means "list the contents of this directory"
// rather than "filter by this prefix". cwd is the directory the user's
// shell is sitting in.
//
// Every returned string, resolved against cwd, lands on root joined with
// one of the candidates, so accepting a completion and pressing tab again
// keeps working. The result is deduplicated and sorted. A missing root, an
// unresolvable fragment, or any other internal failure yields an empty
// result rather than an error: this runs inside an interactive completion
// hook where nothing useful can be done with one.
func Resolve(root string, candidates []string, fragment, cwd string) (out []string) {
	// Completion must never take down the shell hook.
	defer func() {
		if r := recover(); r != nil {
			out = nil
		}
	}()

	if root == "" || !filepath.IsAbs(root) {
		return nil
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil
	}
	root = filepath.Clean(root)

	// The trailing separator is inspected on the raw string, before any
	// cleaning: filepath.Clean would silently drop it.
	listDir := endsWithSeparator(fragment)

	// fragPrefix is the part of the typed fragment that stays in front of
	// every emitted candidate: the whole fragment when it names a directory,
	// its parent otherwise.
	fragPrefix := fragment
	if fragment != "" && !listDir {
		fragPrefix = parentOf(fragment)
	}

	base := resolveBase(fragment, listDir, cwd)
	if base == "" {
		// Unresolvable fragment: fall back to listing the whole root.
		fragPrefix = ""
		base = cwd
		if base == "" || !filepath.IsAbs(base) {
			return nil
		}
		base = filepath.Clean(base)
	}

	seen := make(map[string]bool, len(candidates))
	emit := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	if rel, ok := relWithin(root, base); ok {
		if rel == "." {
			// Sitting exactly at the registry root: every candidate is
			// offered as-is under the typed prefix.
			for _, c := range candidates {
				emit(joinDisplay(fragPrefix, c))
			}
		} else {
			// Somewhere below the root: only candidates under the resolved
			// directory survive, and only the portion the user has not yet
			// typed as a directory path is appended.
			for _, c := range candidates {
				suffix, ok := stripSegmentPrefix(c, rel)
				if !ok {
					continue
				}
				emit(joinDisplay(fragPrefix, suffix))
			}
		}
		sort.Strings(out)
		return out
	}

	// Outside the root: prefix each candidate with the hop from the
	// resolved directory back to the root. When no relative path exists
	// (distinct volumes or mount points) fall back to the absolute root so
	// the user still gets usable completions.
	offset, err := filepath.Rel(base, root)
	if err != nil {
		offset = root
	}
	for _, c := range candidates {
		emit(joinDisplay(fragPrefix, filepath.Join(offset, filepath.FromSlash(c))))
	}
	sort.Strings(out)
	return out
}

// endsWithSeparator reports whether the raw fragment names a directory to
// list rather than a prefix to filter by.
func endsWithSeparator(fragment string) bool {
	if fragment == "" {
		return false
	}
	last := fragment[len(fragment)-1]
	return last == '/' || last == os.PathSeparator
}

// parentOf returns the directory portion of a typed fragment, preserving
// the user's style: parentOf("a") is "", not ".", so bare fragments stay
// bare in the output.
func parentOf(fragment string) string {
	dir := filepath.Dir(fragment)
	if dir == "." && !strings.HasPrefix(fragment, ".") {
		return ""
	}
	return dir
}

// resolveBase computes the absolute directory the fragment points at: the
// fragment itself in directory-listing mode, its parent otherwise. Returns
// "" when the base cannot be determined.
func resolveBase(fragment string, listDir bool, cwd string) string {
	if cwd == "" || !filepath.IsAbs(cwd) {
		return ""
	}
	if fragment == "" {
		return filepath.Clean(cwd)
	}

	part := filepath.FromSlash(fragment)
	if !listDir {
		part = filepath.Dir(part)
	}
	if filepath.IsAbs(part) {
		return filepath.Clean(part)
	}
	return filepath.Join(cwd, part)
}

// relWithin expresses base relative to root. ok is false when base is not
// root itself or one of its descendants.
func relWithin(root, base string) (rel string, ok bool) {
	rel, err := filepath.Rel(root, base)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}

// stripSegmentPrefix removes rel from the front of candidate c, matching
// whole path segments only ("a" is not a prefix of "ab/x"). The empty
// suffix is valid: it means the resolved directory itself is a match.
func stripSegmentPrefix(c, rel string) (suffix string, ok bool) {
	c = filepath.ToSlash(c)
	if c == rel {
		return "", true
	}
	if strings.HasPrefix(c, rel+"/") {
		return c[len(rel)+1:], true
	}
	return "", false
}

// joinDisplay glues the kept fragment prefix to a candidate suffix without
// changing the style the user is typing in: an empty prefix yields the bare
// suffix, a relative prefix a relative path, an absolute prefix an absolute
// one. An empty suffix collapses to the prefix itself.
func joinDisplay(prefix, suffix string) string {
	suffix = filepath.FromSlash(suffix)
	if prefix == "" {
		if suffix == "" {
			return "."
		}
		return suffix
	}
	if suffix == "" {
		return filepath.Clean(prefix)
	}
	return filepath.Join(prefix, suffix)
}
