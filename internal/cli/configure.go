package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cwlreg-labs/cwlreg/internal/config"
	"github.com/cwlreg-labs/cwlreg/internal/index"
	"github.com/cwlreg-labs/cwlreg/internal/repo"
)

func init() {
	rootCmd.AddCommand(configureRepoCmd)
	rootCmd.AddCommand(newSetDefaultCmd("project", config.KeyDefaultProject, repo.ProjectIndexFile))
	rootCmd.AddCommand(newSetDefaultCmd("tenant", config.KeyDefaultTenant, repo.TenantIndexFile))
	rootCmd.AddCommand(newSetDefaultCmd("user", config.KeyDefaultUser, repo.UserIndexFile))
}

var configureRepoCmd = &cobra.Command{
	Use:   "configure-repo <path>",
	Short: "Point cwlreg at a local clone of the registry repo",
	Long: `Record the local path of the registry repo clone in ~/.cwlreg/config.yaml.
The CWLREG_REPO_PATH environment variable overrides the configured value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolving %s: %w", args[0], err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return fmt.Errorf("registry repo %s: %w", abs, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", abs)
		}
		if err := config.Set(config.KeyRepoPath, abs); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Registry repo set to %s\n", abs)
		return nil
	},
}

// newSetDefaultCmd builds set-default-project, set-default-tenant, and
// set-default-user. The name must already exist in the matching registry
// file so defaults cannot point at unregistered entries.
func newSetDefaultCmd(noun, configKey, indexFile string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("set-default-%s <name>", noun),
		Short: fmt.Sprintf("Set the default %s", noun),
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			names, err := registeredNames(noun, indexFile)
			if err != nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			names, err := registeredNames(noun, indexFile)
			if err != nil {
				return err
			}
			found := false
			for _, n := range names {
				if n == name {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("%s %q is not registered in config/%s", noun, name, indexFile)
			}
			if err := config.Set(configKey, name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Default %s set to %s\n", noun, name)
			return nil
		},
	}
}

func registeredNames(noun, indexFile string) ([]string, error) {
	path, err := repo.NamedIndexPath(indexFile)
	if err != nil {
		return nil, err
	}
	var names []string
	switch noun {
	case "project":
		projects, err := index.LoadProjects(path)
		if err != nil {
			return nil, err
		}
		for _, p := range projects {
			names = append(names, p.Name)
		}
	case "tenant":
		tenants, err := index.LoadTenants(path)
		if err != nil {
			return nil, err
		}
		for _, t := range tenants {
			names = append(names, t.Name)
		}
	case "user":
		users, err := index.LoadUsers(path)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			names = append(names, u.Name)
		}
	}
	return names, nil
}
