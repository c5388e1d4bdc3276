// Package report contains the full market report command.
package report

import (
	"os"

	"github.com/spf13/cobra"

	cmdcommon "zahra/dld-analytics/cmd/common"
	"zahra/dld-analytics/cmd/root"
	"zahra/dld-analytics/internal/report"
)

// Cmd is the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a full market report for a transaction CSV",
	Long: `Load a transaction CSV, apply the selected filters, and print the full
market report: key metrics, average value by area, the monthly trend, and
descriptive statistics.`,
	Run: reportFunc,
}

func reportFunc(cmd *cobra.Command, args []string) {
	all, filtered, err := cmdcommon.LoadFiltered()
	if err != nil {
		root.Log.Fatalf("Error preparing data: %v", err)
	}

	topN := 10
	if root.Cfg != nil {
		topN = root.Cfg.Analysis.TopN
	}

	gen := report.NewGenerator(root.Log, topN)
	r, err := gen.Generate(all, filtered, root.SharedFlags.Profile)
	if err != nil {
		root.Log.Fatalf("Error generating report: %v", err)
	}

	if err := gen.Render(os.Stdout, r); err != nil {
		root.Log.Fatalf("Error rendering report: %v", err)
	}
}
