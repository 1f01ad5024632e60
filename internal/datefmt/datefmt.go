// Package datefmt renders contact dates as the relative phrases the
// shell displays. Every function is pure in (date, now) so output is
// deterministic under a fixed clock.
package datefmt

import (
	"fmt"
	"time"
)

// DateLayout is the display and input format for contact dates.
const DateLayout = "2006-01-02"

// Duration describes how long ago start was, banded: "Today", "1 day",
// "N days" (<7), "N weeks" (<30), "N months" (<365), then
// "Y years[, M months]".
func Duration(start, now time.Time) string {
	days := daysBetween(start, now)

	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "1 day"
	case days < 7:
		return fmt.Sprintf("%d days", days)
	case days < 30:
		return plural(days/7, "week")
	case days < 365:
		return plural(days/30, "month")
	}

	years := days / 365
	months := (days % 365) / 30
	if months > 0 {
		return plural(years, "year") + ", " + plural(months, "month")
	}
	return plural(years, "year")
}

// LastContact describes when last happened: "Never" for nil, then
// "Today", "Yesterday", "N days ago", "N weeks ago", and from 30 days
// the literal date with the day count in parentheses.
func LastContact(last *time.Time, now time.Time) string {
	if last == nil {
		return "Never"
	}
	days := daysBetween(*last, now)

	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return plural(days/7, "week") + " ago"
	}
	return fmt.Sprintf("%s (%d days ago)", last.Format(DateLayout), days)
}

// daysBetween is the calendar-day difference, ignoring time of day.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
