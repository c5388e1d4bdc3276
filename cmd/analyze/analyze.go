// Package analyze contains the grouped-aggregate analysis command.
package analyze

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	cmdcommon "zahra/dld-analytics/cmd/common"
	"zahra/dld-analytics/cmd/root"
	"zahra/dld-analytics/internal/prepare"
)

var (
	groupBy string
	metric  string
	op      string
	topN    int
)

// Cmd is the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute a grouped summary of a transaction CSV",
	Long: `Load a transaction CSV, derive the price-per-area and ROI estimate columns,
apply the selected filters, and print a grouped aggregate sorted descending,
e.g. the mean transaction value per area.`,
	Run: analyzeFunc,
}

func init() {
	Cmd.Flags().StringVar(&groupBy, "group-by", string(prepare.GroupByArea), "Group key: area, property_type, or rooms")
	Cmd.Flags().StringVar(&metric, "metric", string(prepare.MetricValue), "Metric: value, size, meter_price, or roi_est")
	Cmd.Flags().StringVar(&op, "op", string(prepare.OpMean), "Aggregation: mean, sum, count, min, or max")
	Cmd.Flags().IntVar(&topN, "top", 0, "Keep only the top N groups (0 = config default)")
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	all, filtered, err := cmdcommon.LoadFiltered()
	if err != nil {
		root.Log.Fatalf("Error preparing data: %v", err)
	}

	groups, err := prepare.Aggregate(filtered, prepare.GroupKey(groupBy), prepare.Metric(metric), prepare.Op(op))
	if err != nil {
		root.Log.Fatalf("Error aggregating: %v", err)
	}

	n := topN
	if n <= 0 && root.Cfg != nil {
		n = root.Cfg.Analysis.TopN
	}
	groups = prepare.TopN(groups, n)

	fmt.Printf("Filtered records: %d of %d\n\n", len(filtered), len(all))
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s(%s)\tCOUNT\n", groupBy, op, metric)
	for _, g := range groups {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", g.Key, g.Value.StringFixed(2), g.Count)
	}
	if err := tw.Flush(); err != nil {
		root.Log.Fatalf("Error writing output: %v", err)
	}
}
