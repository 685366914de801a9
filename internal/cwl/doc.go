// Package cwl parses Common Workflow Language documents far enough to
// register, validate, and inspect them. It is not a CWL executor: it checks
// the document class, version, and workflow step wiring, and fingerprints
// file content for the registry index.
package cwl
