package enums

import (
	"fmt"
	"time"
)

// AnalyticsPeriod scopes a sales summary to a trailing window.
type AnalyticsPeriod string

const (
	AnalyticsPeriodToday AnalyticsPeriod = "today"
	AnalyticsPeriodWeek  AnalyticsPeriod = "week"
	AnalyticsPeriodMonth AnalyticsPeriod = "month"
	AnalyticsPeriodYear  AnalyticsPeriod = "year"
)

var validAnalyticsPeriods = []AnalyticsPeriod{
	AnalyticsPeriodToday,
	AnalyticsPeriodWeek,
	AnalyticsPeriodMonth,
	AnalyticsPeriodYear,
}

// String implements fmt.Stringer.
func (p AnalyticsPeriod) String() string {
	return string(p)
}

// IsValid reports whether the value is a known AnalyticsPeriod.
func (p AnalyticsPeriod) IsValid() bool {
	for _, candidate := range validAnalyticsPeriods {
		if candidate == p {
			return true
		}
	}
	return false
}

// Start returns the inclusive lower bound of the period relative to now.
func (p AnalyticsPeriod) Start(now time.Time) time.Time {
	switch p {
	case AnalyticsPeriodToday:
		year, month, day := now.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	case AnalyticsPeriodWeek:
		return now.AddDate(0, 0, -7)
	case AnalyticsPeriodMonth:
		return now.AddDate(0, -1, 0)
	case AnalyticsPeriodYear:
		return now.AddDate(-1, 0, 0)
	default:
		return time.Time{}
	}
}

// ParseAnalyticsPeriod converts raw input into an AnalyticsPeriod.
func ParseAnalyticsPeriod(value string) (AnalyticsPeriod, error) {
	for _, candidate := range validAnalyticsPeriods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid analytics period %q", value)
}
