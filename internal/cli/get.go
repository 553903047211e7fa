package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <repo-name>",
	Short: "Fetch a repository and add it to dependencies",
	Long: `Fetch <repo-name> into the modules directory and append it to the
manifest's dependencies. A repository that is already present locally is not
downloaded again.`,
	Args: requireName,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := newInstaller(cmd).Get(cmd.Context(), args[0])
		return explain(err)
	},
}
