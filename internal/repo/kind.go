package repo

import "fmt"

// Kind identifies one class of CWL artifact managed by the registry.
type Kind int

const (
	KindTool Kind = iota
	KindWorkflow
	KindExpression
	KindSchema
)

// Kinds lists every artifact kind, in the order commands fan out over them.
var Kinds = []Kind{KindTool, KindWorkflow, KindExpression, KindSchema}

// String returns the singular name, e.g. "tool".
func (k Kind) String() string {
	switch k {
	case KindTool:
		return "tool"
	case KindWorkflow:
		return "workflow"
	case KindExpression:
		return "expression"
	case KindSchema:
		return "schema"
	default:
		return "unknown"
	}
}

// Plural returns the registry root directory name, e.g. "tools".
func (k Kind) Plural() string {
	return k.String() + "s"
}

// IndexFile returns the config YAML file name for the kind, e.g. "tool.yaml".
func (k Kind) IndexFile() string {
	return k.String() + ".yaml"
}

// IndexKey returns the top-level YAML key holding the item list.
func (k Kind) IndexKey() string {
	return k.Plural()
}

// Glob returns the recursive pattern matching artifact files of this kind.
// Schemas may be plain YAML records as well as .cwl documents.
func (k Kind) Glob() string {
	if k == KindSchema {
		return "**/*.{cwl,yaml}"
	}
	return "**/*.cwl"
}

// ParseKind converts a singular kind name to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown artifact kind %q", s)
}
