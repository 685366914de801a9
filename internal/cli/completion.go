package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cwlreg-labs/cwlreg/internal/index"
	"github.com/cwlreg-labs/cwlreg/internal/pathcomplete"
	"github.com/cwlreg-labs/cwlreg/internal/repo"
	"github.com/cwlreg-labs/cwlreg/internal/scan"
)

// candidateMode selects which artifact files a path argument offers:
// everything on disk, only files already in the index, or only files not
// yet registered. One predicate over the candidate set, not three copies of
// the resolution logic.
type candidateMode int

const (
	allOnDisk candidateMode = iota
	registeredOnly
	unregisteredOnly
)

// candidatesFor computes the root-relative candidate set for a kind.
func candidatesFor(kind repo.Kind, root string, mode candidateMode) []string {
	onDisk := scan.ListFilesMatching(root, kind.Glob())
	if mode == allOnDisk {
		return onDisk
	}

	idxPath, err := repo.IndexPath(kind)
	if err != nil {
		return nil
	}
	idx, err := index.Load(idxPath, kind.IndexKey())
	if err != nil {
		return nil
	}
	registered := idx.RegisteredPaths()

	if mode == registeredOnly {
		// Offer only registered files that still exist on disk.
		return scan.Intersection(onDisk, registered)
	}
	return scan.Difference(onDisk, registered)
}

// pathArgCompletion returns a cobra completion function for a path-valued
// positional argument of the given artifact kind. All failures degrade to
// cobra's default file completion: a completion hook must never error.
func pathArgCompletion(kind repo.Kind, mode candidateMode) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		root, err := repo.ArtifactDir(kind)
		if err != nil {
			return nil, cobra.ShellCompDirectiveDefault
		}
		cwd, err := os.Getwd()
		if err != nil {
			return nil, cobra.ShellCompDirectiveDefault
		}

		candidates := candidatesFor(kind, root, mode)
		out := pathcomplete.Resolve(root, candidates, toComplete, cwd)
		if len(out) == 0 {
			return nil, cobra.ShellCompDirectiveDefault
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}

// projectNameCompletion completes --project flag values from project.yaml.
func projectNameCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	path, err := repo.NamedIndexPath(repo.ProjectIndexFile)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	projects, err := index.LoadProjects(path)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, p := range projects {
		names = append(names, p.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
