package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwlreg-labs/cwlreg/internal/config"
	"github.com/cwlreg-labs/cwlreg/internal/repo"
	"github.com/cwlreg-labs/cwlreg/internal/scaffold"
)

func init() {
	for _, kind := range repo.Kinds {
		rootCmd.AddCommand(newCreateCmd(kind))
	}
}

func newCreateCmd(kind repo.Kind) *cobra.Command {
	var data scaffold.Data

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("create-%s-from-template", kind),
		Short: fmt.Sprintf("Scaffold a new CWL %s from the built-in template", kind),
		Long: fmt.Sprintf(`Generate a skeleton %s at %s/<name>/<version>/<name>__<version>.cwl.
The file is not registered; edit it, then run %s-init.`,
			kind, kind.Plural(), kind),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := repo.EnsureArtifactDir(kind)
			if err != nil {
				return err
			}
			if data.Author == "" {
				data.Author = config.Get(config.KeyDefaultUser)
			}

			result, err := scaffold.Generate(kind, root, data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", result.Path)
			fmt.Fprintf(cmd.OutOrStdout(), "Edit it, then register with: cwlreg %s-init %s\n",
				kind, result.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&data.Name, "name", "", fmt.Sprintf("Name of the new %s (required)", kind))
	cmd.Flags().StringVar(&data.Version, "version", "0.1.0", "Semver version of the new artifact")
	cmd.Flags().StringVar(&data.Label, "label", "", "Human-readable label (defaults to the name)")
	cmd.Flags().StringVar(&data.Author, "author", "", "Author name (defaults to the configured default user)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
