package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <repo-name>",
	Short: "Remove a repository from the project",
	Long: `Delete <repo-name> from the modules directory and from the manifest's
dependencies. A missing directory or an unlisted name is reported, not treated
as an error.`,
	Args: requireName,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := newInstaller(cmd).Uninstall(cmd.Context(), args[0])
		return explain(err)
	},
}
