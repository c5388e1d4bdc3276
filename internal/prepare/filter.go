package prepare

import (
	"time"

	"github.com/shopspring/decimal"

	"zahra/dld-analytics/internal/dateutils"
	"zahra/dld-analytics/internal/models"
)

// FilterSet is the predicate set applied to a prepared table. Dimensions
// compose with logical AND. An empty selection on a dimension means no
// restriction on that dimension; value and date bounds are inclusive.
type FilterSet struct {
	Areas         []string
	PropertyTypes []string
	MinValue      decimal.NullDecimal
	MaxValue      decimal.NullDecimal
	From          time.Time
	To            time.Time

	// DropUndefined excludes rows whose derived metrics are undefined
	// (zero-area rows). Off by default to preserve the original behavior.
	DropUndefined bool
}

// Matches reports whether a record satisfies every predicate in the set.
func (f FilterSet) Matches(tx models.Transaction) bool {
	if len(f.Areas) > 0 && !contains(f.Areas, tx.Area) {
		return false
	}
	if len(f.PropertyTypes) > 0 && !contains(f.PropertyTypes, tx.PropertyType) {
		return false
	}
	if f.MinValue.Valid && tx.Value.LessThan(f.MinValue.Decimal) {
		return false
	}
	if f.MaxValue.Valid && tx.Value.GreaterThan(f.MaxValue.Decimal) {
		return false
	}
	if !f.From.IsZero() && dateutils.CompareDates(tx.Date, f.From) < 0 {
		return false
	}
	if !f.To.IsZero() && dateutils.CompareDates(tx.Date, f.To) > 0 {
		return false
	}
	if f.DropUndefined && !tx.HasMetrics() {
		return false
	}
	return true
}

// Filter returns the subset of records matching the predicate set.
func Filter(txs []models.Transaction, f FilterSet) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// ObservedAreas returns the sorted distinct area names in a table.
func ObservedAreas(txs []models.Transaction) []string {
	return distinct(txs, func(tx models.Transaction) string { return tx.Area })
}

// ObservedPropertyTypes returns the sorted distinct property types in a table.
func ObservedPropertyTypes(txs []models.Transaction) []string {
	return distinct(txs, func(tx models.Transaction) string { return tx.PropertyType })
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
