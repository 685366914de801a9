// Package runs records launches of registered tools and workflows in the
// registry's run.yaml, so a shared team log of what ran against which
// project travels with the repo.
package runs

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cwlreg-labs/cwlreg/internal/index"
	"github.com/cwlreg-labs/cwlreg/internal/repo"
)

// Register appends a run record for a registered artifact version and saves
// run.yaml. The artifact must already be present in the kind's index.
func Register(kind repo.Kind, relPath, project string) (*index.Run, error) {
	idxPath, err := repo.IndexPath(kind)
	if err != nil {
		return nil, err
	}
	idx, err := index.Load(idxPath, kind.IndexKey())
	if err != nil {
		return nil, err
	}
	item, version, err := idx.FindByRelPath(relPath)
	if err != nil {
		return nil, fmt.Errorf("registering run: %w", err)
	}

	runPath, err := repo.NamedIndexPath(repo.RunIndexFile)
	if err != nil {
		return nil, err
	}
	existing, err := index.LoadRuns(runPath)
	if err != nil {
		return nil, err
	}

	run := index.Run{
		ID:        uuid.NewString(),
		Kind:      kind.String(),
		Artifact:  item.Name,
		Version:   version.Name,
		Project:   project,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	existing = append(existing, run)
	if err := index.SaveRuns(runPath, existing); err != nil {
		return nil, err
	}
	return &run, nil
}

// List returns recorded runs of one kind, optionally filtered by project.
func List(kind repo.Kind, project string) ([]index.Run, error) {
	runPath, err := repo.NamedIndexPath(repo.RunIndexFile)
	if err != nil {
		return nil, err
	}
	all, err := index.LoadRuns(runPath)
	if err != nil {
		return nil, err
	}

	var out []index.Run
	for _, r := range all {
		if r.Kind != kind.String() {
			continue
		}
		if project != "" && r.Project != project {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
