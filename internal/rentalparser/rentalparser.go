// Package rentalparser reads rental listing CSV files into the canonical
// transaction model. Value carries the listed rent and Size the area in
// square feet.
package rentalparser

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
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"zahra/dld-analytics/internal/dateutils"
	"zahra/dld-analytics/internal/logging"
	"zahra/dld-analytics/internal/models"
	"zahra/dld-analytics/internal/parsererror"
	"zahra/dld-analytics/internal/schema"
)

var titleCaser = cases.Title(language.English)

// RentalCSVRow represents a single row in a rental listings CSV file.
type RentalCSVRow struct {
	Rent       string `csv:"Rent"`
	AreaSqft   string `csv:"Area_in_sqft"`
	Location   string `csv:"Location"`
	Beds       string `csv:"Beds"`
	Type       string `csv:"Type"`
	PostedDate string `csv:"Posted_date"`
}

// Parse reads a rental listings CSV from an io.Reader into canonical
// transactions. The header is validated against the schema first.
func Parse(r io.Reader, sch schema.Schema, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	logger.Info("Reading rental listings CSV from reader")

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

	var rows []RentalCSVRow
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
			logger.WithError(err).Warn("Skipping unconvertible listing row",
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

	logger.Info("Successfully read rental listings CSV",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions, nil
}

// ParseFile reads and parses a rental listings CSV file.
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

// convertRow converts a RentalCSVRow to a canonical Transaction. Locations
// are trimmed and title-cased so "dubai marina " and "Dubai Marina" group
// together.
func convertRow(row RentalCSVRow) (models.Transaction, error) {
	rent, err := decimal.NewFromString(strings.TrimSpace(row.Rent))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid Rent %q: %w", row.Rent, err)
	}

	sqft, err := decimal.NewFromString(strings.TrimSpace(row.AreaSqft))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid Area_in_sqft %q: %w", row.AreaSqft, err)
	}

	date, err := dateutils.ParseDateString(row.PostedDate)
	if err != nil {
		date = time.Time{}
	}

	return models.Transaction{
		Source:       models.SourceRentals,
		Area:         titleCaser.String(strings.ToLower(strings.TrimSpace(row.Location))),
		PropertyType: strings.TrimSpace(row.Type),
		Rooms:        strings.TrimSpace(row.Beds),
		Value:        rent,
		Size:         sqft,
		Date:         date,
	}, nil
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
