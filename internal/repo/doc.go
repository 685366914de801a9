// Package repo locates the shared CWL registry repository and the
// per-artifact-kind directories and YAML index files within it. The repo
// path comes from the CWLREG_REPO_PATH environment variable, falling back
// to the repo_path key of the user config file.
package repo
