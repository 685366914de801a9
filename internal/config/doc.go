// Package config manages user-level settings stored at ~/.cwlreg/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the registry repo path and the default project, tenant, and user.
package config
