package prepare

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"zahra/dld-analytics/internal/models"
)

// GroupKey names a categorical column a table can be grouped on.
type GroupKey string

const (
	GroupByArea         GroupKey = "area"
	GroupByPropertyType GroupKey = "property_type"
	GroupByRooms        GroupKey = "rooms"
)

// Metric names a numeric column an aggregate can be computed over.
type Metric string

const (
	MetricValue      Metric = "value"
	MetricSize       Metric = "size"
	MetricMeterPrice Metric = "meter_price"
	MetricROI        Metric = "roi_est"
)

// Op names an aggregation operator.
type Op string

const (
	OpMean  Op = "mean"
	OpSum   Op = "sum"
	OpCount Op = "count"
	OpMin   Op = "min"
	OpMax   Op = "max"
)

// GroupSummary is one row of a grouped aggregate.
type GroupSummary struct {
	Key   string
	Value decimal.Decimal
	Count int
}

// MonthPoint is one bucket of a monthly trend.
type MonthPoint struct {
	Month time.Time
	Value decimal.Decimal
	Count int
}

// ColumnStats holds descriptive statistics for one numeric column.
type ColumnStats struct {
	Column string
	Count  int
	Mean   decimal.Decimal
	Min    decimal.Decimal
	Max    decimal.Decimal
	StdDev decimal.Decimal
}

// metricValue extracts a metric from a record. The second return is false when
// the metric is undefined for that record, in which case the record is skipped
// by aggregation, matching how NaN values fall out of a mean.
func metricValue(tx models.Transaction, metric Metric) (decimal.Decimal, bool) {
	switch metric {
	case MetricValue:
		return tx.Value, true
	case MetricSize:
		return tx.Size, true
	case MetricMeterPrice:
		return tx.MeterPrice.Decimal, tx.MeterPrice.Valid
	case MetricROI:
		return tx.ROIEstimate.Decimal, tx.ROIEstimate.Valid
	}
	return decimal.Zero, false
}

func groupKeyValue(tx models.Transaction, key GroupKey) (string, error) {
	switch key {
	case GroupByArea:
		return tx.Area, nil
	case GroupByPropertyType:
		return tx.PropertyType, nil
	case GroupByRooms:
		return tx.Rooms, nil
	}
	return "", fmt.Errorf("unknown group key: %s", key)
}

// Aggregate computes a grouped summary of one metric and returns the groups
// sorted descending by aggregate value, ties broken by key for stable output.
// Re-applying the descending sort (and any top-N truncation) to the result is
// a no-op.
func Aggregate(txs []models.Transaction, key GroupKey, metric Metric, op Op) ([]GroupSummary, error) {
	switch op {
	case OpMean, OpSum, OpCount, OpMin, OpMax:
	default:
		return nil, fmt.Errorf("unknown aggregation op: %s", op)
	}

	type bucket struct {
		sum   decimal.Decimal
		min   decimal.Decimal
		max   decimal.Decimal
		count int
	}
	buckets := make(map[string]*bucket)

	for _, tx := range txs {
		k, err := groupKeyValue(tx, key)
		if err != nil {
			return nil, err
		}
		// Undefined values are excluded from every op, count included, the
		// way NaN falls out of a column count
		v, ok := metricValue(tx, metric)
		if !ok {
			continue
		}

		b, exists := buckets[k]
		if !exists {
			b = &bucket{min: v, max: v}
			buckets[k] = b
		}
		b.sum = b.sum.Add(v)
		if v.LessThan(b.min) {
			b.min = v
		}
		if v.GreaterThan(b.max) {
			b.max = v
		}
		b.count++
	}

	groups := make([]GroupSummary, 0, len(buckets))
	for k, b := range buckets {
		var v decimal.Decimal
		switch op {
		case OpMean:
			v = b.sum.Div(decimal.NewFromInt(int64(b.count)))
		case OpSum:
			v = b.sum
		case OpCount:
			v = decimal.NewFromInt(int64(b.count))
		case OpMin:
			v = b.min
		case OpMax:
			v = b.max
		}
		groups = append(groups, GroupSummary{Key: k, Value: v, Count: b.count})
	}

	SortDescending(groups)
	return groups, nil
}

// SortDescending orders groups by aggregate value descending, ties by key
// ascending. Sorting an already-sorted slice leaves it unchanged.
func SortDescending(groups []GroupSummary) {
	sort.SliceStable(groups, func(i, j int) bool {
		if !groups[i].Value.Equal(groups[j].Value) {
			return groups[i].Value.GreaterThan(groups[j].Value)
		}
		return groups[i].Key < groups[j].Key
	})
}

// TopN truncates a sorted group list to its first n entries. A non-positive n
// or n beyond the slice length returns the slice unchanged.
func TopN(groups []GroupSummary, n int) []GroupSummary {
	if n <= 0 || n >= len(groups) {
		return groups
	}
	return groups[:n]
}

// MonthlyTrend computes the mean of a metric per calendar month, sorted
// ascending by month. Records without a usable date or metric are skipped.
func MonthlyTrend(txs []models.Transaction, metric Metric) []MonthPoint {
	type bucket struct {
		sum   decimal.Decimal
		count int
	}
	buckets := make(map[time.Time]*bucket)

	for _, tx := range txs {
		if !tx.HasDate() {
			continue
		}
		v, ok := metricValue(tx, metric)
		if !ok {
			continue
		}
		m := tx.Month()
		b, exists := buckets[m]
		if !exists {
			b = &bucket{}
			buckets[m] = b
		}
		b.sum = b.sum.Add(v)
		b.count++
	}

	points := make([]MonthPoint, 0, len(buckets))
	for m, b := range buckets {
		points = append(points, MonthPoint{
			Month: m,
			Value: b.sum.Div(decimal.NewFromInt(int64(b.count))),
			Count: b.count,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Month.Before(points[j].Month)
	})
	return points
}

// TailMonths truncates a trend to its last n months. A non-positive n or n
// beyond the slice length returns the slice unchanged.
func TailMonths(points []MonthPoint, n int) []MonthPoint {
	if n <= 0 || n >= len(points) {
		return points
	}
	return points[len(points)-n:]
}

// Mean computes the mean of a metric over a table, skipping undefined values.
// The second return is false when no record carries the metric.
func Mean(txs []models.Transaction, metric Metric) (decimal.Decimal, bool) {
	sum := decimal.Zero
	count := 0
	for _, tx := range txs {
		v, ok := metricValue(tx, metric)
		if !ok {
			continue
		}
		sum = sum.Add(v)
		count++
	}
	if count == 0 {
		return decimal.Zero, false
	}
	return sum.Div(decimal.NewFromInt(int64(count))), true
}

// Describe computes descriptive statistics for the standard numeric columns.
func Describe(txs []models.Transaction) []ColumnStats {
	metrics := []Metric{MetricValue, MetricSize, MetricMeterPrice, MetricROI}
	stats := make([]ColumnStats, 0, len(metrics))
	for _, m := range metrics {
		stats = append(stats, describeColumn(txs, m))
	}
	return stats
}

func describeColumn(txs []models.Transaction, metric Metric) ColumnStats {
	cs := ColumnStats{Column: string(metric)}
	var values []decimal.Decimal
	for _, tx := range txs {
		v, ok := metricValue(tx, metric)
		if !ok {
			continue
		}
		values = append(values, v)
	}
	cs.Count = len(values)
	if cs.Count == 0 {
		return cs
	}

	sum := decimal.Zero
	cs.Min = values[0]
	cs.Max = values[0]
	for _, v := range values {
		sum = sum.Add(v)
		if v.LessThan(cs.Min) {
			cs.Min = v
		}
		if v.GreaterThan(cs.Max) {
			cs.Max = v
		}
	}
	cs.Mean = sum.Div(decimal.NewFromInt(int64(cs.Count)))

	// Sample standard deviation; float64 is fine for a display statistic
	if cs.Count > 1 {
		mean, _ := cs.Mean.Float64()
		var sq float64
		for _, v := range values {
			f, _ := v.Float64()
			sq += (f - mean) * (f - mean)
		}
		cs.StdDev = decimal.NewFromFloat(math.Sqrt(sq / float64(cs.Count-1)))
	}

	return cs
}

// distinct collects sorted unique values of one categorical column.
func distinct(txs []models.Transaction, get func(models.Transaction) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tx := range txs {
		v := get(tx)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
