package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwlreg-labs/cwlreg/internal/cwl"
	"github.com/cwlreg-labs/cwlreg/internal/repo"
)

func init() {
	rootCmd.AddCommand(stepIDsCmd)
}

var stepIDsCmd = &cobra.Command{
	Use:               "get-workflow-step-ids <path>",
	Short:             "Print the step ids of a CWL workflow",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: pathArgCompletion(repo.KindWorkflow, allOnDisk),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := cwl.Parse(args[0])
		if err != nil {
			return err
		}
		ids, err := doc.StepIDs()
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return fmt.Errorf("%s has no steps", args[0])
		}
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}
