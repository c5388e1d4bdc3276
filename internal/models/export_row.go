package models

import (
	"github.com/shopspring/decimal"

	"zahra/dld-analytics/internal/dateutils"
)

// ExportRow is the flat CSV layout used when writing a prepared table back to
// disk. Column names mirror the DLD export so a round trip stays loadable,
// with the derived columns appended.
type ExportRow struct {
	Area         string `csv:"AREA_EN"`
	PropertyType string `csv:"PROP_TYPE_EN"`
	Rooms        string `csv:"ROOMS_EN"`
	Parking      string `csv:"PARKING"`
	Value        string `csv:"TRANS_VALUE"`
	Size         string `csv:"PROCEDURE_AREA"`
	ActualSize   string `csv:"ACTUAL_AREA"`
	Date         string `csv:"INSTANCE_DATE"`
	MeterPrice   string `csv:"meter_price"`
	ROIEstimate  string `csv:"roi_est"`
}

// NewExportRow converts a canonical Transaction into its CSV export layout.
// Undefined derived values become empty cells.
func NewExportRow(t Transaction) ExportRow {
	row := ExportRow{
		Area:         t.Area,
		PropertyType: t.PropertyType,
		Rooms:        t.Rooms,
		Parking:      "0",
		Value:        t.Value.String(),
		Size:         t.Size.String(),
		ActualSize:   t.ActualSize.String(),
		Date:         dateutils.ToISODate(t.Date),
	}
	if t.Parking {
		row.Parking = "1"
	}
	if t.MeterPrice.Valid {
		row.MeterPrice = t.MeterPrice.Decimal.String()
	}
	if t.ROIEstimate.Valid {
		row.ROIEstimate = t.ROIEstimate.Decimal.String()
	}
	return row
}

// ExportRows converts a slice of transactions to export rows.
func ExportRows(txs []Transaction) []ExportRow {
	rows := make([]ExportRow, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, NewExportRow(t))
	}
	return rows
}

// ParseAmount parses a decimal amount string, returning zero for an empty or
// unparsable value.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
