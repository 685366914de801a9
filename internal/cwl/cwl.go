package cwl

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"sort"

	"go.yaml.in/yaml/v3"
)

// Document classes defined by the CWL standard, plus the SALAD record
// schema used for schema artifacts.
const (
	ClassCommandLineTool = "CommandLineTool"
	ClassWorkflow        = "Workflow"
	ClassExpressionTool  = "ExpressionTool"
	TypeRecord           = "record"
)

// Document is the subset of a CWL file the registry cares about.
type Document struct {
	Class      string `yaml:"class"`
	CWLVersion string `yaml:"cwlVersion"`
	ID         string `yaml:"id"`
	Label      string `yaml:"label"`
	Doc        string `yaml:"doc"`
	// Type is set on SALAD schema documents instead of Class.
	Type string `yaml:"type"`
	// Steps is kept raw: CWL allows both a mapping and a sequence form.
	Steps yaml.Node `yaml:"steps"`

	path string
}

// Parse reads and decodes a CWL document.
func Parse(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	doc.path = path
	return &doc, nil
}

// Md5sum returns the hex md5 digest of a file's content. The registry index
// stores it so sync can detect drift between disk and index.
func Md5sum(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:]), nil
}

// StepIDs returns the ids of a workflow's steps, sorted. Both the mapping
// form (id as key) and the sequence form (id as field) are handled.
func (d *Document) StepIDs() ([]string, error) {
	if d.Class != ClassWorkflow {
		return nil, fmt.Errorf("%s is a %s, not a Workflow", d.path, d.Class)
	}

	var ids []string
	switch d.Steps.Kind {
	case yaml.MappingNode:
		// Keys sit at even positions of Content.
		for i := 0; i < len(d.Steps.Content); i += 2 {
			ids = append(ids, d.Steps.Content[i].Value)
		}
	case yaml.SequenceNode:
		for _, n := range d.Steps.Content {
			var step struct {
				ID string `yaml:"id"`
			}
			if err := n.Decode(&step); err != nil {
				return nil, fmt.Errorf("decoding workflow step: %w", err)
			}
			if step.ID != "" {
				ids = append(ids, step.ID)
			}
		}
	case 0:
		// No steps key at all.
	default:
		return nil, fmt.Errorf("unexpected steps node in %s", d.path)
	}
	sort.Strings(ids)
	return ids, nil
}
