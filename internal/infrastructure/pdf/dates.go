package pdf

import (
	"fmt"
	"time"
)

var dutchMonths = [...]string{
	"januari", "februari", "maart", "april", "mei", "juni",
	"juli", "augustus", "september", "oktober", "november", "december",
}

// FormatDate: "02-01-2006".
func FormatDate(t time.Time) string {
	return t.Format("02-01-2006")
}

// FormatDateTime: "02-01-2006 15:04".
func FormatDateTime(t time.Time) string {
	return t.Format("02-01-2006 15:04")
}

// FormatDateLong: "27 augustus 2026".
func FormatDateLong(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), dutchMonths[t.Month()-1], t.Year())
}

// FormatDateTimeLong: "27 augustus 2026 14:30".
func FormatDateTimeLong(t time.Time) string {
	return fmt.Sprintf("%s %02d:%02d", FormatDateLong(t), t.Hour(), t.Minute())
}
