// Package root contains the root command for the application
package root

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"zahra/dld-analytics/internal/common"
	"zahra/dld-analytics/internal/config"
	"zahra/dld-analytics/internal/dateutils"
	"zahra/dld-analytics/internal/fileutils"
	"zahra/dld-analytics/internal/logging"
	"zahra/dld-analytics/internal/prepare"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input   string
	Output  string
	Profile string
}

// FilterFlags holds the raw filter selections shared by the analysis commands.
// Empty values mean no restriction on that dimension.
type FilterFlags struct {
	Areas         []string
	PropertyTypes []string
	MinValue      string
	MaxValue      string
	From          string
	To            string
	DropUndefined bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, set in PersistentPreRun
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "dld-analytics",
		Short: "A CLI tool to prepare, filter, and summarize Dubai land-registry transaction CSVs.",
		Long: `dld-analytics loads DLD transaction and rental listing CSV exports, derives
price-per-area and ROI estimate columns, and produces filtered summaries,
market reports, and CSV exports. It also ships two small terminal games.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to dld-analytics!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize configuration and logging
			config.LoadEnv()
			Cfg = config.GetGlobalConfig()
			Log = config.ConfigureLoggingFromConfig(Cfg)

			// Propagate the configured logger
			common.SetLogger(Log)
			fileutils.SetLogger(Log)
			logging.SetDefault(logging.NewLogrusAdapterFromLogger(Log))

			// Ensure CSV delimiter matches configuration
			if delim := Cfg.CSV.Delimiter; delim != "" {
				common.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Filter flags accessible to the analysis commands
	Filters = FilterFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Profile, "profile", "p", "sales", "Dataset profile (sales or rentals)")

	Cmd.PersistentFlags().StringSliceVar(&Filters.Areas, "areas", nil, "Restrict to these area/location names")
	Cmd.PersistentFlags().StringSliceVar(&Filters.PropertyTypes, "types", nil, "Restrict to these property types")
	Cmd.PersistentFlags().StringVar(&Filters.MinValue, "min-value", "", "Minimum transaction value (inclusive)")
	Cmd.PersistentFlags().StringVar(&Filters.MaxValue, "max-value", "", "Maximum transaction value (inclusive)")
	Cmd.PersistentFlags().StringVar(&Filters.From, "from", "", "Earliest transaction date (inclusive)")
	Cmd.PersistentFlags().StringVar(&Filters.To, "to", "", "Latest transaction date (inclusive)")
	Cmd.PersistentFlags().BoolVar(&Filters.DropUndefined, "drop-undefined", false, "Exclude rows whose derived metrics are undefined")
}

// BuildFilterSet parses the raw filter flags into a predicate set.
func BuildFilterSet() (prepare.FilterSet, error) {
	fs := prepare.FilterSet{
		Areas:         trimAll(Filters.Areas),
		PropertyTypes: trimAll(Filters.PropertyTypes),
		DropUndefined: Filters.DropUndefined,
	}

	if Filters.MinValue != "" {
		d, err := decimal.NewFromString(Filters.MinValue)
		if err != nil {
			return fs, fmt.Errorf("invalid --min-value %q: %w", Filters.MinValue, err)
		}
		fs.MinValue = decimal.NullDecimal{Decimal: d, Valid: true}
	}
	if Filters.MaxValue != "" {
		d, err := decimal.NewFromString(Filters.MaxValue)
		if err != nil {
			return fs, fmt.Errorf("invalid --max-value %q: %w", Filters.MaxValue, err)
		}
		fs.MaxValue = decimal.NullDecimal{Decimal: d, Valid: true}
	}
	if Filters.From != "" {
		t, err := dateutils.ParseDateString(Filters.From)
		if err != nil || t.IsZero() {
			return fs, fmt.Errorf("invalid --from date %q", Filters.From)
		}
		fs.From = t
	}
	if Filters.To != "" {
		t, err := dateutils.ParseDateString(Filters.To)
		if err != nil || t.IsZero() {
			return fs, fmt.Errorf("invalid --to date %q", Filters.To)
		}
		fs.To = t
	}

	if fs.MinValue.Valid && fs.MaxValue.Valid && fs.MaxValue.Decimal.LessThan(fs.MinValue.Decimal) {
		return fs, fmt.Errorf("--max-value is below --min-value")
	}
	if !fs.From.IsZero() && !fs.To.IsZero() && fs.To.Before(fs.From) {
		return fs, fmt.Errorf("--to date is before --from date")
	}

	return fs, nil
}

// ResetFlags restores flag state between test runs.
func ResetFlags() {
	SharedFlags = CommonFlags{Profile: "sales"}
	Filters = FilterFlags{}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Timestamp returns the wall-clock time used for export filenames. Variable
// so tests can pin it.
var Timestamp = time.Now
