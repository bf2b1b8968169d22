package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Portuguese month names as they appear on the source site, including the
// common three-letter abbreviations.
var ptMonths = map[string]time.Month{
	"janeiro": time.January, "jan": time.January,
	"fevereiro": time.February, "fev": time.February,
	"março": time.March, "marco": time.March, "mar": time.March,
	"abril": time.April, "abr": time.April,
	"maio": time.May, "mai": time.May,
	"junho": time.June, "jun": time.June,
	"julho": time.July, "jul": time.July,
	"agosto": time.August, "ago": time.August,
	"setembro": time.September, "set": time.September,
	"outubro": time.October, "out": time.October,
	"novembro": time.November, "nov": time.November,
	"dezembro": time.December, "dez": time.December,
}

var numericLayouts = []string{"02.01.2006", "02/01/2006", "2006-01-02", "2.1.2006", "2/1/2006"}

// ParseMatchDate parses a source-locale date string such as "12 abril 2025"
// or "12/04/2025" into a calendar date (UTC, midnight).
func ParseMatchDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range numericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 3 {
		day, dayErr := strconv.Atoi(strings.TrimSuffix(fields[0], "."))
		month, ok := ptMonths[strings.Trim(fields[1], ".,")]
		year, yearErr := strconv.Atoi(fields[2])
		if dayErr == nil && yearErr == nil && ok && day >= 1 && day <= 31 {
			return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Period normalizes a month/year pair to the cache key: midnight UTC on the
// first day of that month.
func Period(month, year int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

// Kickoff combines a parsed calendar date with a kickoff time string for
// chronological comparison. Unparseable times sort at the end of the day.
func Kickoff(date time.Time, timeStr string) time.Time {
	parts := strings.SplitN(strings.TrimSpace(timeStr), ":", 2)
	if len(parts) == 2 {
		h, hErr := strconv.Atoi(parts[0])
		m, mErr := strconv.Atoi(parts[1])
		if hErr == nil && mErr == nil && h >= 0 && h < 24 && m >= 0 && m < 60 {
			return date.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
		}
	}
	return date.Add(23*time.Hour + 59*time.Minute)
}
