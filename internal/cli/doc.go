// Package cli defines the Cobra command tree for the cwlreg CLI. Each file
// in this package registers one family of top-level commands (list, init,
// validate, sync, create, runs) with the root command; per-artifact-kind
// variants are generated from the kind table rather than copy-pasted.
// Command implementations delegate to internal packages for business logic
// and only handle flag parsing, I/O formatting, and shell completion wiring.
package cli
