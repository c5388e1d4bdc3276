package prepare

import (
	"fmt"

	"zahra/dld-analytics/internal/logging"
	"zahra/dld-analytics/internal/models"
	"zahra/dld-analytics/internal/rentalparser"
	"zahra/dld-analytics/internal/salesparser"
	"zahra/dld-analytics/internal/schema"
)

// defaultCache memoizes loads within the process.
var defaultCache = NewLoadCache()

// Load parses a CSV file using the parser matching the schema profile. The
// raw parse is memoized by file identity; cleaning and derivation run on a
// copy of the cached rows.
func Load(filePath string, sch schema.Schema, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	cached, err := defaultCache.Load(filePath, func() ([]models.Transaction, error) {
		switch sch.Name {
		case models.SourceSales:
			return salesparser.ParseFile(filePath, sch, logger)
		case models.SourceRentals:
			return rentalparser.ParseFile(filePath, sch, logger)
		default:
			return nil, fmt.Errorf("no parser for schema profile: %s", sch.Name)
		}
	})
	if err != nil {
		return nil, err
	}

	// Callers mutate derived columns; never hand out the cached backing array
	out := make([]models.Transaction, len(cached))
	copy(out, cached)
	return out, nil
}

// PrepareFile runs the full preparation pipeline on one file: load, drop rows
// with missing dates, derive metrics.
func PrepareFile(filePath, profile, profileDir string, params MetricParams, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	sch, err := schema.Resolve(profile, profileDir)
	if err != nil {
		return nil, err
	}

	txs, err := Load(filePath, sch, logger)
	if err != nil {
		return nil, err
	}

	txs = CleanDates(txs, logger)
	txs = DeriveMetrics(txs, params)

	logger.Info("Prepared transaction table",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldProfile, Value: profile},
		logging.Field{Key: logging.FieldCount, Value: len(txs)})

	return txs, nil
}
