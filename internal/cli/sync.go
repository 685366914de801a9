package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwlreg-labs/cwlreg/internal/cwl"
	"github.com/cwlreg-labs/cwlreg/internal/index"
	"github.com/cwlreg-labs/cwlreg/internal/logging"
	"github.com/cwlreg-labs/cwlreg/internal/repo"
)

func init() {
	for _, kind := range repo.Kinds {
		rootCmd.AddCommand(newSyncCmd(kind))
	}
}

func newSyncCmd(kind repo.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s-sync <path>", kind),
		Short: fmt.Sprintf("Refresh a registered %s's md5sum in config/%s", kind, kind.IndexFile()),
		Long: fmt.Sprintf(`Recompute the md5sum of a registered %s file and update the index entry
when the file content has changed since registration or the last sync.`, kind),
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: pathArgCompletion(kind, registeredOnly),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, kind, args[0])
		},
	}
}

func runSync(cmd *cobra.Command, kind repo.Kind, arg string) error {
	_, relPath, absPath, err := resolveArtifactArg(kind, arg)
	if err != nil {
		return err
	}

	// Re-validate before syncing: a broken document should not get a
	// fresh fingerprint.
	doc, err := cwl.Parse(absPath)
	if err != nil {
		return err
	}
	if report := cwl.Validate(doc, kind); !report.OK() {
		return fmt.Errorf("%s fails validation; fix it before syncing", relPath)
	}

	idxPath, err := repo.IndexPath(kind)
	if err != nil {
		return err
	}
	idx, err := index.Load(idxPath, kind.IndexKey())
	if err != nil {
		return err
	}
	item, version, err := idx.FindByRelPath(relPath)
	if err != nil {
		return fmt.Errorf("syncing %s: %w (run %s-init first)", relPath, err, kind)
	}

	md5sum, err := cwl.Md5sum(absPath)
	if err != nil {
		return err
	}
	if version.Md5sum == md5sum {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s/%s is already up to date\n", kind, item.Name, version.Name)
		return nil
	}

	logging.L().Debug("md5sum drift",
		zap.String("artifact", item.Name),
		zap.String("version", version.Name),
		zap.String("old", version.Md5sum),
		zap.String("new", md5sum))

	version.Md5sum = md5sum
	if err := idx.Save(idxPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Synced %s %s/%s\n", kind, item.Name, version.Name)
	return nil
}
