// Package models defines the canonical in-memory representation of a prepared
// real-estate transaction record. Source-specific CSV layouts are converted to
// this model by the parser packages.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source identifiers for the supported dataset profiles.
const (
	SourceSales   = "sales"
	SourceRentals = "rentals"
)

// Transaction is a single prepared record. For the sales profile Value is the
// transaction value in AED and Size the procedure area in square meters. For
// the rentals profile Value is the listed rent and Size the area in square
// feet.
//
// MeterPrice and ROIEstimate are derived columns. They are NullDecimal because
// a zero Size makes them undefined rather than an error; invalid means
// undefined.
type Transaction struct {
	Source       string
	Area         string
	PropertyType string
	Rooms        string
	Parking      bool
	Value        decimal.Decimal
	Size         decimal.Decimal
	ActualSize   decimal.Decimal
	Date         time.Time
	MeterPrice   decimal.NullDecimal
	ROIEstimate  decimal.NullDecimal
}

// HasDate reports whether the record carries a usable date. The zero time is
// the sentinel for an unparsable or absent date.
func (t Transaction) HasDate() bool {
	return !t.Date.IsZero()
}

// Month returns the first day of the record's month, used as the bucket key
// for monthly trend aggregation.
func (t Transaction) Month() time.Time {
	return time.Date(t.Date.Year(), t.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// HasMetrics reports whether both derived columns are defined.
func (t Transaction) HasMetrics() bool {
	return t.MeterPrice.Valid && t.ROIEstimate.Valid
}
