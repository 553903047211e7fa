package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const installedMsg = "Installation complete. Installed %d package(s)."

func init() {
	_ = message.Set(language.English, installedMsg, plural.Selectf(1, "%d",
		"=1", "Installation complete. Installed 1 package.",
		"other", "Installation complete. Installed %d packages.",
	))
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install all dependencies from the manifest",
	Long: `Fetch every dependency listed in the manifest that is not already present
in the modules directory. A failed dependency does not stop the others; the
command exits non-zero after the summary if any failed.`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newInstaller(cmd).InstallAll(cmd.Context())
		if err != nil {
			return explain(err)
		}

		p := message.NewPrinter(language.English)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		p.Fprintf(out, installedMsg, result.Succeeded())
		fmt.Fprintln(out)

		if len(result.Failed) == 0 {
			return nil
		}
		names := make([]string, len(result.Failed))
		for i, f := range result.Failed {
			names[i] = f.Name
		}
		fmt.Fprintf(out, "Failed: %s\n", strings.Join(names, ", "))
		return fmt.Errorf("%d of %d dependencies failed to install", len(result.Failed), result.Attempted)
	},
}
