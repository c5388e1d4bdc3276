// Package prepare implements the transaction data preparation pipeline:
// load, clean, derive, filter, and aggregate an in-memory table of records.
package prepare

import (
	"zahra/dld-analytics/internal/logging"
	"zahra/dld-analytics/internal/models"
)

// CleanDates drops rows whose required date is missing. Parsers coerce
// unparsable dates to the zero time sentinel, so after this step every
// remaining record has a usable date.
func CleanDates(txs []models.Transaction, logger logging.Logger) []models.Transaction {
	if logger == nil {
		logger = logging.GetLogger()
	}

	cleaned := make([]models.Transaction, 0, len(txs))
	dropped := 0
	for _, tx := range txs {
		if !tx.HasDate() {
			dropped++
			continue
		}
		cleaned = append(cleaned, tx)
	}

	if dropped > 0 {
		logger.Warn("Dropped rows with missing dates",
			logging.Field{Key: logging.FieldRowsDropped, Value: dropped},
			logging.Field{Key: logging.FieldCount, Value: len(cleaned)})
	}

	return cleaned
}
