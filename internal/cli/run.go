package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwlreg-labs/cwlreg/internal/config"
	"github.com/cwlreg-labs/cwlreg/internal/repo"
	"github.com/cwlreg-labs/cwlreg/internal/runs"
)

// Runs are only recorded for executable artifact kinds.
var runKinds = []repo.Kind{repo.KindTool, repo.KindWorkflow}

func init() {
	for _, kind := range runKinds {
		rootCmd.AddCommand(newRegisterRunCmd(kind))
		rootCmd.AddCommand(newListRunsCmd(kind))
	}
}

func newRegisterRunCmd(kind repo.Kind) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("register-%s-run <path>", kind),
		Short: fmt.Sprintf("Record a run of a registered %s against a project", kind),
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: pathArgCompletion(kind, registeredOnly),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, relPath, _, err := resolveArtifactArg(kind, args[0])
			if err != nil {
				return err
			}
			if project == "" {
				project = config.Get(config.KeyDefaultProject)
			}
			if project == "" {
				return fmt.Errorf("no project given: pass --project or run set-default-project")
			}

			run, err := runs.Register(kind, relPath, project)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded run %s of %s %s/%s on project %s\n",
				run.ID, kind, run.Artifact, run.Version, run.Project)
			return nil
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Project the run executed on (defaults to the configured default project)")
	_ = cmd.RegisterFlagCompletionFunc("project", projectNameCompletion)
	return cmd
}

func newListRunsCmd(kind repo.Kind) *cobra.Command {
	var (
		project string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("list-%s-runs", kind),
		Short: fmt.Sprintf("List recorded %s runs", kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := runs.List(kind, project)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s runs recorded.\n", kind)
				return nil
			}
			if asJSON {
				return printJSON(cmd, records)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tARTIFACT\tVERSION\tPROJECT\tTIMESTAMP")
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Artifact, r.Version, r.Project, r.Timestamp)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Only show runs for this project")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	_ = cmd.RegisterFlagCompletionFunc("project", projectNameCompletion)
	return cmd
}
