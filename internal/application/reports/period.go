package reports

import (
	"fmt"
	"time"

	"github.com/onderdelen-beheer/api/internal/domain"
)

// Period selects the reporting window for sales-based reports.
type Period string

const (
	PeriodDay   Period = "dag"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "maand"
	PeriodYear  Period = "jaar"
)

// ParsePeriod validates a raw period value. Empty defaults to maand.
func ParsePeriod(raw string) (Period, error) {
	switch Period(raw) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return Period(raw), nil
	case "":
		return PeriodMonth, nil
	default:
		return "", fmt.Errorf("%w: unknown period %q", domain.ErrInvalidInput, raw)
	}
}

// Label is the Dutch report heading for the period.
func (p Period) Label() string {
	switch p {
	case PeriodDay:
		return "Dagelijks"
	case PeriodWeek:
		return "Wekelijks"
	case PeriodYear:
		return "Jaarlijks"
	default:
		return "Maandelijks"
	}
}

// Range resolves the period to a [start, end] window anchored at now.
// Day and week are trailing windows; month and year are calendar-anchored,
// all ending at today 23:59:59.999999999.
func (p Period) Range(now time.Time) (start, end time.Time) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end = dayStart.Add(24*time.Hour - time.Nanosecond)

	switch p {
	case PeriodDay:
		start = dayStart
	case PeriodWeek:
		start = dayStart.AddDate(0, 0, -6)
	case PeriodYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default: // maand
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	return start, end
}
