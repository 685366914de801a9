package cli

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwlreg-labs/cwlreg/internal/cwl"
	"github.com/cwlreg-labs/cwlreg/internal/index"
	"github.com/cwlreg-labs/cwlreg/internal/logging"
	"github.com/cwlreg-labs/cwlreg/internal/repo"
)

func init() {
	for _, kind := range repo.Kinds {
		rootCmd.AddCommand(newInitCmd(kind))
	}
}

func newInitCmd(kind repo.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s-init <path>", kind),
		Short: fmt.Sprintf("Register a %s in config/%s", kind, kind.IndexFile()),
		Long: fmt.Sprintf(`Validate a %s document and record it in the registry index.
The file must live under the %s/ directory of the registry repo, laid out as
<name>/<version>/<file>.cwl. The version directory name must be semver.`,
			kind, kind.Plural()),
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: pathArgCompletion(kind, unregisteredOnly),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, kind, args[0])
		},
	}
	return cmd
}

func runInit(cmd *cobra.Command, kind repo.Kind, arg string) error {
	root, relPath, absPath, err := resolveArtifactArg(kind, arg)
	if err != nil {
		return err
	}
	logging.L().Debug("registering artifact",
		zap.String("kind", kind.String()),
		zap.String("root", root),
		zap.String("path", relPath))

	itemName, itemPath, versionName, versionPath, err := splitRegistryLayout(relPath)
	if err != nil {
		return err
	}

	doc, err := cwl.Parse(absPath)
	if err != nil {
		return err
	}
	report := cwl.Validate(doc, kind)
	for _, w := range report.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", relPath, w)
	}
	if !report.OK() {
		return fmt.Errorf("%s failed validation: %s", relPath, strings.Join(report.Errors, "; "))
	}

	md5sum, err := cwl.Md5sum(absPath)
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
	v := index.Version{Name: versionName, Path: versionPath, Md5sum: md5sum}
	if err := idx.AddVersion(itemName, itemPath, v); err != nil {
		return err
	}
	if err := idx.Save(idxPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Registered %s %s version %s (%s)\n", kind, itemName, versionName, relPath)
	return nil
}

// resolveArtifactArg resolves a user-supplied path to (root, root-relative,
// absolute) form and rejects paths outside the kind's registry root.
func resolveArtifactArg(kind repo.Kind, arg string) (root, relPath, absPath string, err error) {
	root, err = repo.ArtifactDir(kind)
	if err != nil {
		return "", "", "", err
	}
	absPath, err = filepath.Abs(arg)
	if err != nil {
		return "", "", "", fmt.Errorf("resolving %s: %w", arg, err)
	}
	rel, err := filepath.Rel(root, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", "", "", fmt.Errorf("%s is not inside the %s directory %s", arg, kind.Plural(), root)
	}
	return root, filepath.ToSlash(rel), absPath, nil
}

// splitRegistryLayout decomposes a root-relative artifact path laid out as
// [group dirs...]/<name>/<version>/<file> into index fields. The item path
// keeps any grouping directories; the version path is <version>/<file>.
func splitRegistryLayout(relPath string) (itemName, itemPath, versionName, versionPath string, err error) {
	segments := strings.Split(relPath, "/")
	if len(segments) < 3 {
		return "", "", "", "", fmt.Errorf(
			"%s does not match the <name>/<version>/<file> registry layout", relPath)
	}
	itemName = segments[len(segments)-3]
	itemPath = path.Join(segments[:len(segments)-2]...)
	versionName = segments[len(segments)-2]
	versionPath = path.Join(segments[len(segments)-2:]...)
	return itemName, itemPath, versionName, versionPath, nil
}
