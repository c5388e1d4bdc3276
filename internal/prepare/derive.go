package prepare

import (
	"github.com/shopspring/decimal"

	"zahra/dld-analytics/internal/config"
	"zahra/dld-analytics/internal/models"
)

// MetricParams holds the heuristic constants for the sales ROI estimate.
// The estimate is a heuristic derived from assumed yield and appreciation,
// not a measured return.
type MetricParams struct {
	GrossYield      decimal.Decimal
	Appreciation    decimal.Decimal
	MaintenanceCost decimal.Decimal
}

// DefaultMetricParams returns the 2025 Dubai market assumptions the estimate
// was originally calibrated with.
func DefaultMetricParams() MetricParams {
	return MetricParams{
		GrossYield:      decimal.NewFromFloat(0.065),
		Appreciation:    decimal.NewFromFloat(0.156),
		MaintenanceCost: decimal.NewFromInt(20),
	}
}

// MetricParamsFromConfig builds metric parameters from the application
// configuration.
func MetricParamsFromConfig(cfg *config.Config) MetricParams {
	if cfg == nil {
		return DefaultMetricParams()
	}
	return MetricParams{
		GrossYield:      decimal.NewFromFloat(cfg.Metrics.GrossYield),
		Appreciation:    decimal.NewFromFloat(cfg.Metrics.Appreciation),
		MaintenanceCost: decimal.NewFromFloat(cfg.Metrics.MaintenanceCost),
	}
}

// DeriveMetrics computes the derived columns for every record and returns the
// updated slice. A zero-size record yields undefined metrics rather than an
// error; nothing else about the row changes.
func DeriveMetrics(txs []models.Transaction, p MetricParams) []models.Transaction {
	out := make([]models.Transaction, len(txs))
	for i, tx := range txs {
		tx.MeterPrice = meterPrice(tx)
		tx.ROIEstimate = roiEstimate(tx, p)
		out[i] = tx
	}
	return out
}

// meterPrice is the transaction value divided by the area, undefined when the
// area is zero.
func meterPrice(tx models.Transaction) decimal.NullDecimal {
	if tx.Size.IsZero() {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{
		Decimal: tx.Value.Div(tx.Size),
		Valid:   true,
	}
}

// roiEstimate computes the profile-specific return heuristic.
//
// Sales: gross_yield + appreciation - (maintenance_cost / area) / meter_price.
// Rentals: (rent * 12 / area) * 100, the original listing-yield formula,
// preserved verbatim.
func roiEstimate(tx models.Transaction, p MetricParams) decimal.NullDecimal {
	if tx.Size.IsZero() {
		return decimal.NullDecimal{}
	}

	if tx.Source == models.SourceRentals {
		yield := tx.Value.Mul(decimal.NewFromInt(12)).Div(tx.Size).Mul(decimal.NewFromInt(100))
		return decimal.NullDecimal{Decimal: yield, Valid: true}
	}

	meter := meterPrice(tx)
	if !meter.Valid || meter.Decimal.IsZero() {
		// Zero value means zero meter price; the cost term divides by it
		return decimal.NullDecimal{}
	}

	costTerm := p.MaintenanceCost.Div(tx.Size).Div(meter.Decimal)
	roi := p.GrossYield.Add(p.Appreciation).Sub(costTerm)
	return decimal.NullDecimal{Decimal: roi, Valid: true}
}
