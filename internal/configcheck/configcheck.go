// Package configcheck validates the registry repo's config YAML files
// against an embedded JSON schema, catching malformed indexes before they
// are committed and shared.
package configcheck

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/registry.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Issue is a single schema violation found in a config file.
type Issue struct {
	Path    string // instance location, e.g. "/tools/0/versions/1/md5sum"
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("registry.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("registry.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Check validates raw YAML bytes from one config file. The error return is
// for I/O and schema-compilation failures; schema violations come back as
// issues. Empty input is valid (a fresh index file).
func Check(data []byte) ([]Issue, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return []Issue{{Message: fmt.Sprintf("not valid YAML: %v", err)}}, nil
	}

	// Round-trip through JSON so the validator sees json.Number and plain
	// maps rather than yaml.v3's native types.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil, nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}
	return collectIssues(ve), nil
}

// collectIssues walks the validation error tree and returns the leaf-level
// violations, deduplicated.
func collectIssues(ve *jsonschema.ValidationError) []Issue {
	var issues []Issue
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			issue := Issue{}
			if len(e.InstanceLocation) > 0 {
				issue.Path = "/" + strings.Join(e.InstanceLocation, "/")
			}
			if e.ErrorKind != nil {
				issue.Message = e.ErrorKind.LocalizedString(printer)
			}
			if issue.Message != "" {
				issues = append(issues, issue)
			}
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)

	if len(issues) == 0 {
		return []Issue{{Message: ve.Error()}}
	}

	seen := make(map[string]bool, len(issues))
	var out []Issue
	for _, i := range issues {
		key := i.Path + "|" + i.Message
		if !seen[key] {
			seen[key] = true
			out = append(out, i)
		}
	}
	return out
}
