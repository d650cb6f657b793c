// Package format holds the human-readable date helpers used when
// rendering activity lines.
package format

import (
	"fmt"
	"io"
	"time"
)

// Location resolves an IANA timezone name. An empty or unrecognized name
// warns on w and falls back to UTC; timezone problems never fail a run.
func Location(name string, w io.Writer) *time.Location {
	if name == "" {
		fmt.Fprintln(w, "Warning: no timezone configured, defaulting to UTC")
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		fmt.Fprintf(w, "Warning: invalid timezone %q, falling back to UTC\n", name)
		return time.UTC
	}
	return loc
}

// Relative renders createdAt relative to now, both viewed in loc. Same
// calendar day is "Today", one day earlier "Yesterday", two to seven days
// earlier "N days ago", anything else an absolute date. A timestamp that
// does not parse is returned unchanged.
func Relative(createdAt string, loc *time.Location, now time.Time) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}

	days := int(calendarDay(now, loc).Sub(calendarDay(t, loc)).Hours() / 24)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days >= 2 && days <= 7:
		return fmt.Sprintf("%d days ago", days)
	}
	return t.In(loc).Format("02 Jan 2006")
}

// calendarDay truncates t to midnight of its calendar day in loc,
// re-anchored in UTC so day arithmetic is DST-proof.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
