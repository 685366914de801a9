package index

// Item is one registered artifact: a named directory under a registry root
// with one or more registered versions.
type Item struct {
	Name       string    `yaml:"name" json:"name"`
	Path       string    `yaml:"path" json:"path"`
	Categories []string  `yaml:"categories,omitempty" json:"categories,omitempty"`
	Versions   []Version `yaml:"versions" json:"versions"`
}

// Version is one registered revision of an item. Path is relative to the
// item's own path; Md5sum fingerprints the file content at registration or
// last sync time.
type Version struct {
	Name   string `yaml:"name" json:"name"`
	Path   string `yaml:"path" json:"path"`
	Md5sum string `yaml:"md5sum,omitempty" json:"md5sum,omitempty"`
}

// Category is an entry of category.yaml, used to group tools and workflows.
type Category struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Project is an entry of project.yaml: one execution-platform project the
// registry's artifacts can be pushed to.
type Project struct {
	Name       string `yaml:"name" json:"name"`
	ProjectID  string `yaml:"project_id" json:"project_id"`
	TenantName string `yaml:"tenant_name,omitempty" json:"tenant_name,omitempty"`
	Production bool   `yaml:"production,omitempty" json:"production,omitempty"`
}

// Tenant is an entry of tenant.yaml, mapping a tenancy id to a short name.
type Tenant struct {
	Name     string `yaml:"name" json:"name"`
	TenantID string `yaml:"tenant_id" json:"tenant_id"`
}

// User is an entry of user.yaml, recorded as artifact author/maintainer.
type User struct {
	Name       string `yaml:"name" json:"name"`
	Email      string `yaml:"email" json:"email"`
	Identifier string `yaml:"identifier,omitempty" json:"identifier,omitempty"`
}

// Run is an entry of run.yaml: one recorded launch of a registered tool or
// workflow against a project.
type Run struct {
	ID        string `yaml:"id" json:"id"`
	Kind      string `yaml:"kind" json:"kind"`
	Artifact  string `yaml:"artifact" json:"artifact"`
	Version   string `yaml:"version" json:"version"`
	Project   string `yaml:"project" json:"project"`
	Timestamp string `yaml:"timestamp" json:"timestamp"`
}
