package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateString(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		expectErr bool
		expectedY int
		expectedM time.Month
		expectedD int
	}{
		{"ISO format", "2025-12-15", false, 2025, time.December, 15},
		{"Full timestamp", "2025-12-15 10:30:45", false, 2025, time.December, 15},
		{"European slash", "15/12/2025", false, 2025, time.December, 15},
		{"European dash", "15-12-2025", false, 2025, time.December, 15},
		{"European dot", "15.12.2025", false, 2025, time.December, 15},
		{"DLD month name", "15-Dec-2025", false, 2025, time.December, 15},
		{"Month name long", "December 15, 2025", false, 2025, time.December, 15},
		{"Extra whitespace", "  2025-12-15  ", false, 2025, time.December, 15},
		{"Garbage", "not a date", true, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := ParseDateString(tc.dateStr)

			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedY, date.Year())
			assert.Equal(t, tc.expectedM, date.Month())
			assert.Equal(t, tc.expectedD, date.Day())
		})
	}
}

func TestParseDateStringEmpty(t *testing.T) {
	// Empty input is "missing", not an error
	date, err := ParseDateString("")
	assert.NoError(t, err)
	assert.True(t, date.IsZero())
}

func TestToISODate(t *testing.T) {
	assert.Equal(t, "2025-12-15", ToISODate(time.Date(2025, time.December, 15, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, "", ToISODate(time.Time{}))
}

func TestStartAndEndOfMonth(t *testing.T) {
	d := time.Date(2025, time.February, 17, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(d))
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), EndOfMonth(d))
}

func TestCompareDates(t *testing.T) {
	earlier := time.Date(2025, time.January, 1, 23, 59, 0, 0, time.UTC)
	later := time.Date(2025, time.January, 2, 0, 1, 0, 0, time.UTC)
	sameDay := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, -1, CompareDates(earlier, later))
	assert.Equal(t, 1, CompareDates(later, earlier))
	// Time component is ignored
	assert.Equal(t, 0, CompareDates(earlier, sameDay))
}
