// Package report builds the text market report: KPIs, grouped top-N tables,
// monthly trend, and descriptive statistics for a prepared table.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"zahra/dld-analytics/internal/logging"
	"zahra/dld-analytics/internal/models"
	"zahra/dld-analytics/internal/prepare"
)

// KPI is one headline number at the top of a report.
type KPI struct {
	Label string
	Value string
}

// MarketReport is a complete analysis run over a filtered table.
type MarketReport struct {
	ReportID        string
	GeneratedAt     time.Time
	Profile         string
	TotalRecords    int
	FilteredRecords int
	KPIs            []KPI
	TopByArea       []prepare.GroupSummary
	MonthlyTrend    []prepare.MonthPoint
	Stats           []prepare.ColumnStats
}

// trendMonths bounds the rentals monthly trend to the window the listing
// dashboard shows.
const trendMonths = 12

// Generator assembles and renders market reports.
type Generator struct {
	logger *logrus.Logger
	topN   int
}

// NewGenerator creates a report generator. topN bounds the grouped tables.
func NewGenerator(logger *logrus.Logger, topN int) *Generator {
	if logger == nil {
		logger = logrus.New()
	}
	if topN < 1 {
		topN = 10
	}
	return &Generator{logger: logger, topN: topN}
}

// Generate builds a report from the full and filtered tables. Each report
// carries a generated run ID and timestamp.
func (g *Generator) Generate(all, filtered []models.Transaction, profile string) (*MarketReport, error) {
	topByArea, err := prepare.Aggregate(filtered, prepare.GroupByArea, prepare.MetricValue, prepare.OpMean)
	if err != nil {
		return nil, fmt.Errorf("error aggregating by area: %w", err)
	}

	trend := prepare.MonthlyTrend(filtered, prepare.MetricValue)
	if profile == models.SourceRentals {
		trend = prepare.TailMonths(trend, trendMonths)
	}

	r := &MarketReport{
		ReportID:        uuid.New().String(),
		GeneratedAt:     time.Now(),
		Profile:         profile,
		TotalRecords:    len(all),
		FilteredRecords: len(filtered),
		KPIs:            buildKPIs(filtered, profile),
		TopByArea:       prepare.TopN(topByArea, g.topN),
		MonthlyTrend:    trend,
		Stats:           prepare.Describe(filtered),
	}

	g.logger.WithFields(logrus.Fields{
		"report_id":           r.ReportID,
		logging.FieldProfile:  profile,
		logging.FieldCount:    r.FilteredRecords,
	}).Info("Generated market report")

	return r, nil
}

// buildKPIs computes the headline metric row.
func buildKPIs(txs []models.Transaction, profile string) []KPI {
	kpis := []KPI{
		{Label: "Total transactions", Value: fmt.Sprintf("%d", len(txs))},
	}

	if mean, ok := prepare.Mean(txs, prepare.MetricValue); ok {
		label := "Average transaction value (AED)"
		if profile == models.SourceRentals {
			label = "Average rent (AED)"
		}
		kpis = append(kpis, KPI{Label: label, Value: mean.StringFixed(0)})
	}
	if mean, ok := prepare.Mean(txs, prepare.MetricMeterPrice); ok {
		label := "Average price per sqm (AED)"
		if profile == models.SourceRentals {
			label = "Average rent per sqft (AED)"
		}
		kpis = append(kpis, KPI{Label: label, Value: mean.StringFixed(0)})
	}
	if mean, ok := prepare.Mean(txs, prepare.MetricROI); ok {
		if profile == models.SourceRentals {
			kpis = append(kpis, KPI{Label: "Average yield (%)", Value: mean.StringFixed(2)})
		} else {
			pct := mean.Mul(decimal.NewFromInt(100))
			kpis = append(kpis, KPI{Label: "Estimated average ROI (%)", Value: pct.StringFixed(1)})
		}
	}

	return kpis
}

// Render writes a report as aligned text tables.
func (g *Generator) Render(w io.Writer, r *MarketReport) error {
	fmt.Fprintf(w, "Market Report %s\n", r.ReportID)
	fmt.Fprintf(w, "Generated: %s | Profile: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05"), r.Profile)
	fmt.Fprintf(w, "Filtered records: %d of %d\n\n", r.FilteredRecords, r.TotalRecords)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "Key Metrics")
	for _, kpi := range r.KPIs {
		fmt.Fprintf(tw, "  %s\t%s\n", kpi.Label, kpi.Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nAverage Value by Area")
	fmt.Fprintf(tw, "  AREA\tMEAN VALUE\tCOUNT\n")
	for _, group := range r.TopByArea {
		fmt.Fprintf(tw, "  %s\t%s\t%d\n", group.Key, group.Value.StringFixed(0), group.Count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nMonthly Trend (mean value)")
	fmt.Fprintf(tw, "  MONTH\tMEAN VALUE\tCOUNT\n")
	for _, point := range r.MonthlyTrend {
		fmt.Fprintf(tw, "  %s\t%s\t%d\n", point.Month.Format("2006-01"), point.Value.StringFixed(0), point.Count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nDescriptive Statistics")
	fmt.Fprintf(tw, "  COLUMN\tCOUNT\tMEAN\tMIN\tMAX\tSTDDEV\n")
	for _, cs := range r.Stats {
		fmt.Fprintf(tw, "  %s\t%d\t%s\t%s\t%s\t%s\n",
			cs.Column, cs.Count,
			cs.Mean.StringFixed(2), cs.Min.StringFixed(2),
			cs.Max.StringFixed(2), cs.StdDev.StringFixed(2))
	}
	return tw.Flush()
}
