// Package dateutils provides common date and time operations used throughout the application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutEuropean  = "02-01-2006"
	DateLayoutUS        = "01/02/2006"
	DateLayoutFull      = "2006-01-02 15:04:05"
	DateLayoutWithMonth = "2-Jan-2006"
)

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	// Trim whitespace
	dateStr = strings.TrimSpace(dateStr)

	// Replace multiple spaces with a single space
	re := regexp.MustCompile(`\s+`)
	dateStr = re.ReplaceAllString(dateStr, " ")

	return dateStr
}

// ParseDateString attempts to parse a date string using multiple common formats.
// Returns the parsed time.Time or an error if parsing fails. An empty string
// parses to the zero time without error, which callers treat as "missing".
func ParseDateString(dateStr string) (time.Time, error) {
	// Skip processing if empty
	if dateStr == "" {
		return time.Time{}, nil
	}

	// Clean the input string
	cleanDate := CleanDateString(dateStr)

	// Try various date formats commonly found in registry exports
	formats := []string{
		DateLayoutISO,                     // YYYY-MM-DD (ISO)
		DateLayoutFull,                    // YYYY-MM-DD HH:MM:SS
		DateLayoutISO + "T15:04:05Z",      // ISO 8601
		DateLayoutISO + "T15:04:05-07:00", // ISO 8601 with timezone
		"02/01/2006",                      // DD/MM/YYYY (European)
		DateLayoutUS,                      // MM/DD/YYYY (US format)
		DateLayoutEuropean,                // DD-MM-YYYY
		"02.01.2006",                      // DD.MM.YYYY
		DateLayoutWithMonth,               // D-MMM-YYYY (DLD exports)
		"02 Jan 2006",                     // DD MMM YYYY
		"Jan 02, 2006",                    // MMM DD, YYYY
		"January 2, 2006",                 // Month D, YYYY
		"2 January 2006",                  // D Month YYYY
		"2006/01/02",                      // YYYY/MM/DD
	}

	// Try each format until one works
	for _, format := range formats {
		if t, err := time.Parse(format, cleanDate); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutISO)
}

// StartOfMonth returns the first day of the month for a given date
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month for a given date
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}

// TruncateToDay strips the time component from a date
func TruncateToDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// CompareDates compares two dates by calendar day and returns:
//
//	-1 if date1 is before date2
//	 0 if date1 is equal to date2
//	 1 if date1 is after date2
func CompareDates(date1, date2 time.Time) int {
	date1 = TruncateToDay(date1)
	date2 = TruncateToDay(date2)

	if date1.Before(date2) {
		return -1
	} else if date1.After(date2) {
		return 1
	}
	return 0
}
