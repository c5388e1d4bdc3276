package report

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zahra/dld-analytics/internal/models"
	"zahra/dld-analytics/internal/prepare"
)

func reportFixture() []models.Transaction {
	mk := func(area, value, size string, month time.Month) models.Transaction {
		return models.Transaction{
			Source:       models.SourceSales,
			Area:         area,
			PropertyType: "Unit",
			Value:        decimal.RequireFromString(value),
			Size:         decimal.RequireFromString(size),
			Date:         time.Date(2025, month, 15, 0, 0, 0, 0, time.UTC),
		}
	}
	txs := []models.Transaction{
		mk("Dubai Marina", "2000000", "100", time.January),
		mk("Dubai Marina", "3000000", "150", time.February),
		mk("Business Bay", "900000", "45", time.January),
	}
	return prepare.DeriveMetrics(txs, prepare.DefaultMetricParams())
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestGenerate(t *testing.T) {
	all := reportFixture()
	filtered := all[:2]

	gen := NewGenerator(quietLogger(), 10)
	r, err := gen.Generate(all, filtered, models.SourceSales)
	require.NoError(t, err)

	assert.NotEmpty(t, r.ReportID)
	assert.False(t, r.GeneratedAt.IsZero())
	assert.Equal(t, models.SourceSales, r.Profile)
	assert.Equal(t, 3, r.TotalRecords)
	assert.Equal(t, 2, r.FilteredRecords)

	require.NotEmpty(t, r.KPIs)
	assert.Equal(t, "Total transactions", r.KPIs[0].Label)
	assert.Equal(t, "2", r.KPIs[0].Value)

	require.Len(t, r.TopByArea, 1)
	assert.Equal(t, "Dubai Marina", r.TopByArea[0].Key)

	assert.Len(t, r.MonthlyTrend, 2)
	assert.Len(t, r.Stats, 4)
}

func TestGenerateTopNBoundsAreaTable(t *testing.T) {
	all := reportFixture()

	gen := NewGenerator(quietLogger(), 1)
	r, err := gen.Generate(all, all, models.SourceSales)
	require.NoError(t, err)

	require.Len(t, r.TopByArea, 1)
	// Mean value 2.5M beats Business Bay's 0.9M
	assert.Equal(t, "Dubai Marina", r.TopByArea[0].Key)
}

func TestGenerateSalesROIIsPercent(t *testing.T) {
	all := reportFixture()

	gen := NewGenerator(quietLogger(), 10)
	r, err := gen.Generate(all, all, models.SourceSales)
	require.NoError(t, err)

	var roi *KPI
	for i := range r.KPIs {
		if r.KPIs[i].Label == "Estimated average ROI (%)" {
			roi = &r.KPIs[i]
		}
	}
	require.NotNil(t, roi)
	// Roughly 22.1% for the default market assumptions
	assert.Equal(t, "22.1", roi.Value)
}

func TestGenerateRentalsLabels(t *testing.T) {
	txs := prepare.DeriveMetrics([]models.Transaction{
		{
			Source: models.SourceRentals,
			Area:   "Dubai Marina",
			Value:  decimal.NewFromInt(120000),
			Size:   decimal.NewFromInt(1200),
			Date:   time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
	}, prepare.DefaultMetricParams())

	gen := NewGenerator(quietLogger(), 10)
	r, err := gen.Generate(txs, txs, models.SourceRentals)
	require.NoError(t, err)

	labels := make([]string, 0, len(r.KPIs))
	for _, kpi := range r.KPIs {
		labels = append(labels, kpi.Label)
	}
	assert.Contains(t, labels, "Average rent (AED)")
	assert.Contains(t, labels, "Average yield (%)")
}

func TestGenerateRentalsTrendBoundedToTwelveMonths(t *testing.T) {
	var txs []models.Transaction
	for i := 0; i < 14; i++ {
		txs = append(txs, models.Transaction{
			Source: models.SourceRentals,
			Area:   "Dubai Marina",
			Value:  decimal.NewFromInt(120000),
			Size:   decimal.NewFromInt(1200),
			Date:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0),
		})
	}
	txs = prepare.DeriveMetrics(txs, prepare.DefaultMetricParams())

	gen := NewGenerator(quietLogger(), 10)
	r, err := gen.Generate(txs, txs, models.SourceRentals)
	require.NoError(t, err)

	require.Len(t, r.MonthlyTrend, 12)
	// Oldest two months fall off; the window ends at the latest month
	assert.Equal(t, time.March, r.MonthlyTrend[0].Month.Month())
	assert.Equal(t, time.February, r.MonthlyTrend[11].Month.Month())
	assert.Equal(t, 2025, r.MonthlyTrend[11].Month.Year())

	// Sales reports keep the full trend
	sales, err := gen.Generate(reportFixture(), reportFixture(), models.SourceSales)
	require.NoError(t, err)
	assert.Len(t, sales.MonthlyTrend, 2)
}

func TestRender(t *testing.T) {
	all := reportFixture()

	gen := NewGenerator(quietLogger(), 10)
	r, err := gen.Generate(all, all, models.SourceSales)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, gen.Render(&out, r))

	text := out.String()
	assert.Contains(t, text, "Market Report")
	assert.Contains(t, text, "Key Metrics")
	assert.Contains(t, text, "Average Value by Area")
	assert.Contains(t, text, "Monthly Trend")
	assert.Contains(t, text, "Descriptive Statistics")
	assert.Contains(t, text, "Dubai Marina")
}

func TestNewGeneratorDefaults(t *testing.T) {
	gen := NewGenerator(nil, 0)
	require.NotNil(t, gen)
	assert.Equal(t, 10, gen.topN)
}
