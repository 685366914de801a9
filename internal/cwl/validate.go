package cwl

import (
	"fmt"

	"github.com/cwlreg-labs/cwlreg/internal/repo"
)

// Report is the outcome of validating one document: hard errors block
// registration, warnings are advisory (missing label/doc).
type Report struct {
	Errors   []string
	Warnings []string
}

// OK reports whether the document can be registered.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

func (r *Report) errorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// expectedClass maps artifact kinds to the CWL class their documents must
// declare. Schemas are the exception: they declare a SALAD record type.
func expectedClass(k repo.Kind) string {
	switch k {
	case repo.KindTool:
		return ClassCommandLineTool
	case repo.KindWorkflow:
		return ClassWorkflow
	case repo.KindExpression:
		return ClassExpressionTool
	default:
		return ""
	}
}

// Validate checks a parsed document against the requirements of an artifact
// kind.
func Validate(doc *Document, kind repo.Kind) *Report {
	r := &Report{}

	if kind == repo.KindSchema {
		if doc.Type != TypeRecord {
			r.errorf("schema documents must declare 'type: record', got %q", doc.Type)
		}
	} else {
		want := expectedClass(kind)
		if doc.Class == "" {
			r.errorf("missing 'class' field")
		} else if doc.Class != want {
			r.errorf("class is %q, expected %q for a %s", doc.Class, want, kind)
		}
		if doc.CWLVersion == "" {
			r.errorf("missing 'cwlVersion' field")
		}
	}

	if doc.Label == "" {
		r.warnf("no 'label' set")
	}
	if doc.Doc == "" {
		r.warnf("no 'doc' set")
	}

	if kind == repo.KindWorkflow && doc.Class == ClassWorkflow {
		ids, err := doc.StepIDs()
		if err != nil {
			r.errorf("reading steps: %v", err)
		} else if len(ids) == 0 {
			r.errorf("workflow has no steps")
		}
	}

	return r
}
