package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwlreg-labs/cwlreg/internal/config"
	"github.com/cwlreg-labs/cwlreg/internal/logging"
	"github.com/cwlreg-labs/cwlreg/internal/repo"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	debugFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "cwlreg",
	Short: "Manage a shared registry of CWL tools, workflows, expressions, and schemas",
	Long: `cwlreg manages a git-backed catalogue of CWL artifacts: registering tools,
workflows, expressions, and schemas in the repo's YAML indexes, validating
documents before they are shared, scaffolding new artifacts from templates,
and recording runs against execution-platform projects.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		if err := logging.Init(debugFlag); err != nil {
			return err
		}

		// A nudge, not a failure: commands that need the repo error later
		// with a precise message, and configure-repo must be able to run
		// before any repo is configured.
		if cmd.Name() != "configure-repo" && cmd.Name() != "version" {
			if _, err := repo.Root(); err != nil {
				logging.L().Debug("registry repo not resolvable yet", zap.Error(err))
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Set the log level to debug")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		os.Stderr.WriteString("error: " + err.Error() + "\n")
		return err
	}
	return nil
}
