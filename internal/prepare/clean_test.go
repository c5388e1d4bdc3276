package prepare

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zahra/dld-analytics/internal/logging"
	"zahra/dld-analytics/internal/models"
)

func TestCleanDates(t *testing.T) {
	txs := []models.Transaction{
		{
			Source: models.SourceSales,
			Area:   "Dubai Marina",
			Value:  decimal.NewFromInt(2500000),
			Date:   time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Source: models.SourceSales,
			Area:   "Business Bay",
			Value:  decimal.NewFromInt(900000),
			// Date left at the zero sentinel
		},
	}

	logger := &logging.MockLogger{}
	cleaned := CleanDates(txs, logger)

	require.Len(t, cleaned, 1)
	assert.Equal(t, "Dubai Marina", cleaned[0].Area)
	assert.NotEmpty(t, logger.GetEntriesByLevel("WARN"))
}

func TestCleanDatesNothingToDrop(t *testing.T) {
	txs := []models.Transaction{
		{
			Source: models.SourceSales,
			Area:   "Dubai Marina",
			Date:   time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	logger := &logging.MockLogger{}
	cleaned := CleanDates(txs, logger)

	assert.Len(t, cleaned, 1)
	assert.Empty(t, logger.GetEntriesByLevel("WARN"))
}
