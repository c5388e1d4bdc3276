// Package salesparser reads DLD sale-transaction CSV exports into the
// canonical transaction model.
package salesparser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"zahra/dld-analytics/internal/dateutils"
	"zahra/dld-analytics/internal/logging"
	"zahra/dld-analytics/internal/models"
	"zahra/dld-analytics/internal/parsererror"
	"zahra/dld-analytics/internal/schema"
)

// SalesCSVRow represents a single row in a DLD transactions CSV file.
// It uses struct tags for gocsv unmarshaling.
type SalesCSVRow struct {
	AreaName      string `csv:"AREA_EN"`
	PropertyType  string `csv:"PROP_TYPE_EN"`
	Rooms         string `csv:"ROOMS_EN"`
	Parking       string `csv:"PARKING"`
	TransValue    string `csv:"TRANS_VALUE"`
	ProcedureArea string `csv:"PROCEDURE_AREA"`
	ActualArea    string `csv:"ACTUAL_AREA"`
	InstanceDate  string `csv:"INSTANCE_DATE"`
}

// Parse reads a DLD sales CSV from an io.Reader into canonical transactions.
// The header is validated against the schema before any row is read; a missing
// required column fails the whole load.
func Parse(r io.Reader, sch schema.Schema, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	logger.Info("Reading sales CSV from reader")

	// Buffer the reader content so we can validate and parse from the same data
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	if err := validateHeader(bytes.NewReader(data), sch, "(from reader)"); err != nil {
		return nil, err
	}

	// Profiles may map renamed headers back to the canonical column names
	data, err = sch.Canonicalize(data)
	if err != nil {
		return nil, &parsererror.ParseError{
			FilePath: "(from reader)",
			Field:    "CSV header",
			Value:    "",
			Err:      err,
		}
	}

	var rows []SalesCSVRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, &parsererror.ParseError{
			FilePath: "(from reader)",
			Field:    "CSV body",
			Value:    "",
			Err:      err,
		}
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		tx, err := convertRow(row)
		if err != nil {
			logger.WithError(err).Warn("Skipping unconvertible sales row",
				logging.Field{Key: logging.FieldReason, Value: err.Error()})
			continue
		}
		transactions = append(transactions, tx)
	}

	// A valid header with zero convertible rows means the data does not match
	// the columns the header promised; do not hand back an empty table
	if len(rows) > 0 && len(transactions) == 0 {
		return nil, &parsererror.ValidationError{
			FilePath: "(from reader)",
			Reason:   "header is valid but no row could be converted; check the profile's column mapping",
		}
	}

	logger.Info("Successfully read sales CSV",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions, nil
}

// ParseFile reads and parses a DLD sales CSV file.
func ParseFile(filePath string, sch schema.Schema, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error opening input file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Warn("Failed to close file",
				logging.Field{Key: logging.FieldError, Value: err})
		}
	}()

	txs, err := Parse(file, sch, logger.WithField(logging.FieldFile, filePath))
	if err != nil {
		// Rewrite the reader placeholder with the real path for the operator
		switch e := err.(type) {
		case *parsererror.MissingColumnError:
			e.FilePath = filePath
		case *parsererror.ParseError:
			e.FilePath = filePath
		case *parsererror.ValidationError:
			e.FilePath = filePath
		}
		return nil, err
	}
	return txs, nil
}

// convertRow converts a SalesCSVRow to a canonical Transaction.
func convertRow(row SalesCSVRow) (models.Transaction, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(row.TransValue))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid TRANS_VALUE %q: %w", row.TransValue, err)
	}

	size, err := decimal.NewFromString(strings.TrimSpace(row.ProcedureArea))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid PROCEDURE_AREA %q: %w", row.ProcedureArea, err)
	}

	// ACTUAL_AREA is optional; an unparsable value degrades to zero
	actual := models.ParseAmount(strings.TrimSpace(row.ActualArea))

	// Unparsable dates coerce to the zero sentinel; CleanDates drops them later
	date, err := dateutils.ParseDateString(row.InstanceDate)
	if err != nil {
		date = time.Time{}
	}

	return models.Transaction{
		Source:       models.SourceSales,
		Area:         strings.TrimSpace(row.AreaName),
		PropertyType: strings.TrimSpace(row.PropertyType),
		Rooms:        strings.TrimSpace(row.Rooms),
		Parking:      parseParking(row.Parking),
		Value:        value,
		Size:         size,
		ActualSize:   actual,
		Date:         date,
	}, nil
}

// parseParking interprets the PARKING flag column, which appears in exports as
// 0/1, Y/N, or TRUE/FALSE depending on vintage.
func parseParking(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "1", "Y", "YES", "TRUE":
		return true
	}
	return false
}

// validateHeader checks the CSV header row against the declared schema.
func validateHeader(r io.Reader, sch schema.Schema, filePath string) error {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return &parsererror.ParseError{
				FilePath: filePath,
				Field:    "CSV header",
				Value:    "",
				Err:      fmt.Errorf("file is empty"),
			}
		}
		return &parsererror.ParseError{
			FilePath: filePath,
			Field:    "CSV header",
			Value:    "header row",
			Err:      err,
		}
	}

	return sch.Validate(header, filePath)
}
