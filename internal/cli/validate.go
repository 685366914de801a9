package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cwlreg-labs/cwlreg/internal/configcheck"
	"github.com/cwlreg-labs/cwlreg/internal/cwl"
	"github.com/cwlreg-labs/cwlreg/internal/repo"
)

func init() {
	for _, kind := range repo.Kinds {
		rootCmd.AddCommand(newValidateCmd(kind))
	}
	rootCmd.AddCommand(validateConfigCmd)
}

func newValidateCmd(kind repo.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s-validate <path>", kind),
		Short: fmt.Sprintf("Validate a CWL %s document", kind),
		Long: fmt.Sprintf(`Check that a %s document parses and satisfies the structural rules for
its kind. Works on unregistered files; registration runs the same checks.`, kind),
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: pathArgCompletion(kind, allOnDisk),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := cwl.Parse(args[0])
			if err != nil {
				return err
			}
			report := cwl.Validate(doc, kind)
			for _, w := range report.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}
			if !report.OK() {
				for _, e := range report.Errors {
					fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", e)
				}
				return fmt.Errorf("%s is not a valid %s", args[0], kind)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid %s\n", args[0], kind)
			return nil
		},
	}
}

var validateConfigCmd = &cobra.Command{
	Use:   "validate-config-yamls",
	Short: "Validate every config YAML file against the registry schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := repo.ConfigDir()
		if err != nil {
			return err
		}

		files := []string{
			repo.CategoryIndexFile,
			repo.ProjectIndexFile,
			repo.TenantIndexFile,
			repo.UserIndexFile,
			repo.RunIndexFile,
		}
		for _, kind := range repo.Kinds {
			files = append(files, kind.IndexFile())
		}

		failed := 0
		for _, name := range files {
			path := filepath.Join(configDir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				if os.IsNotExist(err) {
					continue // optional until first use
				}
				return fmt.Errorf("reading %s: %w", path, err)
			}

			issues, err := configcheck.Check(data)
			if err != nil {
				return fmt.Errorf("validating %s: %w", name, err)
			}
			if len(issues) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
				continue
			}
			failed++
			for _, issue := range issues {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", name, issue)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d config file(s) failed validation", failed)
		}
		return nil
	},
}
