package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unnarize/uvm/internal/config"
	"github.com/unnarize/uvm/internal/scaffold"
)

var initName string

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Project name written to the manifest (default \""+scaffold.DefaultProjectName+"\")")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Unnarize project",
	Long: `Create the dependency manifest and a .gitattributes file in the current
directory. Files that already exist are left as they are. The modules
directory is added to .gitignore.`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		result, err := scaffold.Init(cwd, config.ManifestPath(), scaffold.NewProjectData(initName))
		if err != nil {
			return fmt.Errorf("initializing project: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, f := range result.Files {
			name := displayPath(cwd, f.Path)
			switch {
			case f.Skipped:
				fmt.Fprintf(out, "'%s' already exists, skipping.\n", name)
			case filepath.Base(f.Path) == scaffold.GitAttributesFile:
				fmt.Fprintf(out, "Created '%s' for GitHub language detection.\n", name)
			default:
				fmt.Fprintf(out, "Initialized project with '%s'.\n", name)
			}
		}
		for _, w := range result.Warnings {
			logger.Warn("generated manifest has problems", "issue", w)
		}

		added, err := scaffold.IgnoreModules(cwd, config.ModulesRoot())
		if err != nil {
			logger.Warn("could not update .gitignore", "err", err)
		} else if added {
			fmt.Fprintf(out, "Added '%s' to '%s'.\n", config.ModulesRoot(), scaffold.GitIgnoreFile)
		}
		return nil
	},
}

// displayPath shows paths under dir relative to it.
func displayPath(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
