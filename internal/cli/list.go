package cli

import (
	"encoding/json"
	"fmt"
	"path"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwlreg-labs/cwlreg/internal/index"
	"github.com/cwlreg-labs/cwlreg/internal/repo"
	"github.com/cwlreg-labs/cwlreg/internal/scan"
)

func init() {
	for _, kind := range repo.Kinds {
		rootCmd.AddCommand(newListArtifactsCmd(kind))
	}
	rootCmd.AddCommand(newListCategoriesCmd())
	rootCmd.AddCommand(newListProjectsCmd())
	rootCmd.AddCommand(newListTenantsCmd())
	rootCmd.AddCommand(newListUsersCmd())
}

// artifactEntry is one row of a list-<kind>s listing.
type artifactEntry struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Path    string `json:"path"`
	Md5sum  string `json:"md5sum,omitempty"`
}

func newListArtifactsCmd(kind repo.Kind) *cobra.Command {
	var (
		asJSON       bool
		unregistered bool
	)

	cmd := &cobra.Command{
		Use:   "list-" + kind.Plural(),
		Short: fmt.Sprintf("List registered %s", kind.Plural()),
		Long: fmt.Sprintf(`List every %s registered in config/%s, one row per version.
With --unregistered, list %s files on disk that are missing from the index instead.`,
			kind, kind.IndexFile(), kind),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if unregistered {
				return runListUnregistered(cmd, kind, asJSON)
			}
			return runListRegistered(cmd, kind, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&unregistered, "unregistered", false, "List files on disk missing from the index")
	return cmd
}

func runListRegistered(cmd *cobra.Command, kind repo.Kind, asJSON bool) error {
	idxPath, err := repo.IndexPath(kind)
	if err != nil {
		return err
	}
	idx, err := index.Load(idxPath, kind.IndexKey())
	if err != nil {
		return err
	}

	var entries []artifactEntry
	for _, item := range idx.Items {
		for _, v := range item.Versions {
			entries = append(entries, artifactEntry{
				Name:    item.Name,
				Version: v.Name,
				Path:    path.Join(item.Path, v.Path),
				Md5sum:  v.Md5sum,
			})
		}
	}
	if len(entries) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No %s registered yet.\n", kind.Plural())
		return nil
	}
	if asJSON {
		return printJSON(cmd, entries)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tPATH")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Version, e.Path)
	}
	return w.Flush()
}

func runListUnregistered(cmd *cobra.Command, kind repo.Kind, asJSON bool) error {
	root, err := repo.ArtifactDir(kind)
	if err != nil {
		return err
	}
	idxPath, err := repo.IndexPath(kind)
	if err != nil {
		return err
	}
	idx, err := index.Load(idxPath, kind.IndexKey())
	if err != nil {
		return err
	}

	onDisk := scan.ListFilesMatching(root, kind.Glob())
	missing := scan.Difference(onDisk, idx.RegisteredPaths())
	if len(missing) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Every %s file on disk is registered.\n", kind)
		return nil
	}

	var entries []artifactEntry
	for _, p := range missing {
		entries = append(entries, artifactEntry{Path: p})
	}
	if asJSON {
		return printJSON(cmd, entries)
	}
	for _, p := range missing {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}

func newListCategoriesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list-categories",
		Short: "List registered categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := repo.NamedIndexPath(repo.CategoryIndexFile)
			if err != nil {
				return err
			}
			categories, err := index.LoadCategories(path)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, categories)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION")
			for _, c := range categories {
				fmt.Fprintf(w, "%s\t%s\n", c.Name, c.Description)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func newListProjectsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list-projects",
		Short: "List registered execution-platform projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := repo.NamedIndexPath(repo.ProjectIndexFile)
			if err != nil {
				return err
			}
			projects, err := index.LoadProjects(path)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, projects)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "NAME\tPROJECT_ID\tTENANT\tPRODUCTION")
			for _, p := range projects {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", p.Name, p.ProjectID, p.TenantName, p.Production)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func newListTenantsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list-tenants",
		Short: "List registered tenants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := repo.NamedIndexPath(repo.TenantIndexFile)
			if err != nil {
				return err
			}
			tenants, err := index.LoadTenants(path)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, tenants)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "NAME\tTENANT_ID")
			for _, t := range tenants {
				fmt.Fprintf(w, "%s\t%s\n", t.Name, t.TenantID)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func newListUsersCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list-users",
		Short: "List registered users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := repo.NamedIndexPath(repo.UserIndexFile)
			if err != nil {
				return err
			}
			users, err := index.LoadUsers(path)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, users)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "NAME\tEMAIL\tIDENTIFIER")
			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\n", u.Name, u.Email, u.Identifier)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
