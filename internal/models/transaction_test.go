package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionHasDate(t *testing.T) {
	assert.False(t, Transaction{}.HasDate())
	assert.True(t, Transaction{Date: time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)}.HasDate())
}

func TestTransactionMonth(t *testing.T) {
	tx := Transaction{Date: time.Date(2025, time.March, 15, 13, 45, 0, 0, time.UTC)}
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), tx.Month())
}

func TestTransactionHasMetrics(t *testing.T) {
	defined := decimal.NullDecimal{Decimal: decimal.NewFromInt(1), Valid: true}

	assert.False(t, Transaction{}.HasMetrics())
	assert.False(t, Transaction{MeterPrice: defined}.HasMetrics())
	assert.True(t, Transaction{MeterPrice: defined, ROIEstimate: defined}.HasMetrics())
}

func TestNewExportRow(t *testing.T) {
	tx := Transaction{
		Source:       SourceSales,
		Area:         "Dubai Marina",
		PropertyType: "Unit",
		Rooms:        "2 B/R",
		Parking:      true,
		Value:        decimal.NewFromInt(2500000),
		Size:         decimal.RequireFromString("125.5"),
		ActualSize:   decimal.NewFromInt(130),
		Date:         time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
		MeterPrice:   decimal.NullDecimal{Decimal: decimal.NewFromInt(20000), Valid: true},
		ROIEstimate:  decimal.NullDecimal{Decimal: decimal.RequireFromString("0.22"), Valid: true},
	}

	row := NewExportRow(tx)
	assert.Equal(t, "Dubai Marina", row.Area)
	assert.Equal(t, "1", row.Parking)
	assert.Equal(t, "2500000", row.Value)
	assert.Equal(t, "125.5", row.Size)
	assert.Equal(t, "2025-03-15", row.Date)
	assert.Equal(t, "20000", row.MeterPrice)
	assert.Equal(t, "0.22", row.ROIEstimate)
}

func TestNewExportRowUndefinedMetrics(t *testing.T) {
	row := NewExportRow(Transaction{
		Area:  "Jumeirah",
		Value: decimal.NewFromInt(8000000),
	})

	assert.Equal(t, "0", row.Parking)
	assert.Equal(t, "", row.Date)
	assert.Equal(t, "", row.MeterPrice)
	assert.Equal(t, "", row.ROIEstimate)
}

func TestParseAmount(t *testing.T) {
	assert.True(t, ParseAmount("123.45").Equal(decimal.RequireFromString("123.45")))
	assert.True(t, ParseAmount("").IsZero())
	assert.True(t, ParseAmount("abc").IsZero())
}
