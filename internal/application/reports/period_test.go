package reports_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onderdelen-beheer/api/internal/application/reports"
	"github.com/onderdelen-beheer/api/internal/domain"
)

func TestParsePeriod(t *testing.T) {
	for _, raw := range []string{"dag", "week", "maand", "jaar"} {
		p, err := reports.ParsePeriod(raw)
		require.NoError(t, err)
		assert.Equal(t, reports.Period(raw), p)
	}
}

func TestParsePeriod_EmptyDefaultsToMonth(t *testing.T) {
	p, err := reports.ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, reports.PeriodMonth, p)
}

func TestParsePeriod_Unknown(t *testing.T) {
	_, err := reports.ParsePeriod("kwartaal")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestPeriod_Labels(t *testing.T) {
	assert.Equal(t, "Dagelijks", reports.PeriodDay.Label())
	assert.Equal(t, "Wekelijks", reports.PeriodWeek.Label())
	assert.Equal(t, "Maandelijks", reports.PeriodMonth.Label())
	assert.Equal(t, "Jaarlijks", reports.PeriodYear.Label())
}

func TestPeriod_Range(t *testing.T) {
	// Mid-month anchor so calendar and trailing windows differ visibly.
	now := time.Date(2026, 3, 18, 14, 30, 0, 0, time.UTC)
	dayStart := time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	cases := []struct {
		period    reports.Period
		wantStart time.Time
	}{
		{reports.PeriodDay, dayStart},
		{reports.PeriodWeek, time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)},
		{reports.PeriodMonth, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{reports.PeriodYear, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(string(tc.period), func(t *testing.T) {
			start, end := tc.period.Range(now)
			assert.True(t, start.Equal(tc.wantStart), "start: got %s", start)
			assert.True(t, end.Equal(dayEnd), "every window ends at end of today")
		})
	}
}

// A trailing week includes today, so the window spans exactly 7 calendar days.
func TestPeriod_WeekSpansSevenDays(t *testing.T) {
	now := time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC)
	start, end := reports.PeriodWeek.Range(now)

	days := int(end.Sub(start).Hours()/24) + 1
	assert.Equal(t, 7, days)
}
