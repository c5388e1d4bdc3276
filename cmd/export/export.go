// Package export contains the filtered CSV export command.
package export

import (
	"github.com/spf13/cobra"

	cmdcommon "zahra/dld-analytics/cmd/common"
	"zahra/dld-analytics/cmd/root"
	"zahra/dld-analytics/internal/common"
)

// Cmd is the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered table to a timestamped CSV file",
	Long: `Load a transaction CSV, apply the selected filters, and write the filtered
table back to CSV, derived columns included, under a timestamped filename.`,
	Run: exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	_, filtered, err := cmdcommon.LoadFiltered()
	if err != nil {
		root.Log.Fatalf("Error preparing data: %v", err)
	}

	outFile := common.TimestampedExportName(root.SharedFlags.Output, root.SharedFlags.Profile, root.Timestamp())
	if err := common.WriteTransactionsToCSV(filtered, outFile); err != nil {
		root.Log.Fatalf("Error writing CSV export: %v", err)
	}

	root.Log.Infof("Exported %d records to %s", len(filtered), outFile)
}
