// Package batch consolidates a directory of CSV exports into one prepared
// table. Registry data arrives as one file per download, so a data directory
// accumulates overlapping monthly exports that are analyzed together.
package batch

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"zahra/dld-analytics/internal/fileutils"
	"zahra/dld-analytics/internal/logging"
	"zahra/dld-analytics/internal/models"
	"zahra/dld-analytics/internal/prepare"
)

// DateRange represents a date range with start and end dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the date range in the format "YYYY-MM-DD_YYYY-MM-DD".
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s",
		dr.Start.Format("2006-01-02"),
		dr.End.Format("2006-01-02"))
}

// Merge combines this date range with another, returning the overall range.
func (dr DateRange) Merge(other DateRange) DateRange {
	start := dr.Start
	end := dr.End

	if dr.Start.IsZero() {
		start = other.Start
	} else if !other.Start.IsZero() && other.Start.Before(start) {
		start = other.Start
	}

	if dr.End.IsZero() {
		end = other.End
	} else if !other.End.IsZero() && other.End.After(end) {
		end = other.End
	}

	return DateRange{Start: start, End: end}
}

// Processor prepares every CSV file in a directory under one profile and
// merges the results.
type Processor struct {
	logger     logging.Logger
	profile    string
	profileDir string
	params     prepare.MetricParams
}

// NewProcessor creates a batch processor for one dataset profile.
func NewProcessor(profile, profileDir string, params prepare.MetricParams, logger logging.Logger) *Processor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Processor{
		logger:     logger,
		profile:    profile,
		profileDir: profileDir,
		params:     params,
	}
}

// ProcessDirectory prepares every .csv file directly inside dir and returns
// the merged table sorted chronologically. A file that fails to prepare is
// logged and skipped; the batch continues with the remaining files.
func (p *Processor) ProcessDirectory(dir string) ([]models.Transaction, error) {
	files, err := fileutils.FindCSVFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no CSV files found in %s", dir)
	}

	var merged []models.Transaction
	processed := 0
	for _, file := range files {
		txs, err := prepare.PrepareFile(file, p.profile, p.profileDir, p.params, p.logger)
		if err != nil {
			p.logger.WithError(err).Error("Failed to prepare file, skipping",
				logging.Field{Key: logging.FieldFile, Value: file})
			continue
		}

		p.logger.Debug("Prepared batch file",
			logging.Field{Key: logging.FieldFile, Value: filepath.Base(file)},
			logging.Field{Key: logging.FieldCount, Value: len(txs)})

		merged = append(merged, txs...)
		processed++
	}

	if processed == 0 {
		return nil, fmt.Errorf("no file in %s could be prepared", dir)
	}

	sortChronologically(merged)

	p.logger.Info("Consolidated batch directory",
		logging.Field{Key: "directory", Value: dir},
		logging.Field{Key: "files", Value: processed},
		logging.Field{Key: logging.FieldCount, Value: len(merged)})

	return merged, nil
}

// sortChronologically orders records by date, ties broken by area then value
// for deterministic output.
func sortChronologically(txs []models.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date) {
			return txs[i].Date.Before(txs[j].Date)
		}
		if txs[i].Area != txs[j].Area {
			return txs[i].Area < txs[j].Area
		}
		return txs[i].Value.LessThan(txs[j].Value)
	})
}

// Range computes the overall date range covered by a table.
func Range(txs []models.Transaction) DateRange {
	if len(txs) == 0 {
		return DateRange{}
	}

	start := txs[0].Date
	end := txs[0].Date
	for _, tx := range txs {
		if tx.Date.Before(start) {
			start = tx.Date
		}
		if tx.Date.After(end) {
			end = tx.Date
		}
	}
	return DateRange{Start: start, End: end}
}

// OutputFilename builds the name for a consolidated export:
// dld_<profile>_consolidated_<start>_<end>.csv, or without the range suffix
// when the table carries no dates.
func OutputFilename(profile string, dr DateRange) string {
	if dr.String() == "" {
		return fmt.Sprintf("dld_%s_consolidated.csv", profile)
	}
	return fmt.Sprintf("dld_%s_consolidated_%s.csv", profile, dr.String())
}
