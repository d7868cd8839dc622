// Package timefmt provides UTC time helpers and the display formatting used
// by the session audit surfaces. Storage and transport are always UTC;
// formatting is only applied at the reporting boundary.
package timefmt

import (
	"fmt"
	"time"
)

// AuditLayout is the timestamp layout used on audit listings and exports.
const AuditLayout = "02 Jan 2006 15:04"

// Blank is the placeholder for absent optional fields.
const Blank = "—"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatTimestamp renders t in the audit layout, or the blank placeholder
// when t is nil.
func FormatTimestamp(t *time.Time) string {
	if t == nil {
		return Blank
	}
	return t.Format(AuditLayout)
}

// FormatLastLogin renders a last-login timestamp, using "Never" for accounts
// that have not logged in yet.
func FormatLastLogin(t *time.Time) string {
	if t == nil {
		return "Never"
	}
	return t.Format(AuditLayout)
}

// FormatDurationMinutes renders a session duration: "N min" under an hour,
// "Hh Mm" otherwise. Nil durations (still-active sessions) render blank.
func FormatDurationMinutes(mins *int) string {
	if mins == nil {
		return Blank
	}
	if *mins < 60 {
		return fmt.Sprintf("%d min", *mins)
	}
	return fmt.Sprintf("%dh %dm", *mins/60, *mins%60)
}

// WholeMinutesBetween returns the wall-clock minutes from start to end,
// truncated toward zero.
func WholeMinutesBetween(start, end time.Time) int {
	return int(end.Sub(start) / time.Minute)
}
