package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/unnarize/uvm/internal/installer"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List dependencies and whether they are installed",
	Args:  noArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	entries, err := newInstaller(cmd).List(cmd.Context())
	if err != nil {
		return explain(err)
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No dependencies.")
		return nil
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []installer.Entry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATUS\tPATH")
	for _, e := range entries {
		status := "missing"
		if e.Local {
			status = "installed"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, status, e.Dir)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []installer.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
