// Package index reads and writes the YAML index files under the registry
// repo's config/ directory: the per-kind artifact indexes (tool.yaml,
// workflow.yaml, expression.yaml, schema.yaml) and the flat registries for
// categories, projects, tenants, users, and recorded runs.
package index
