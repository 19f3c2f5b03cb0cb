package shift

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Span is a proposed shift as a civil wall-clock pair. No timezone is
// implied; arrival and departure are compared as local times.
type Span struct {
	Start time.Time
	End   time.Time
}

// Hours returns the whole elapsed hours of the span, truncated.
func (s Span) Hours() int {
	if !s.End.After(s.Start) {
		return 0
	}
	return int(s.End.Sub(s.Start).Hours())
}

// HistoryEntry is a read-only view of one past attendance record for an
// employee, restricted to the fields the rest-rule validator needs.
type HistoryEntry struct {
	Arrival         time.Time
	Departure       time.Time
	Duration        string // encoded "H.MM", see EncodeDuration
	DurationMinutes int
}

// EncodeDuration computes the stored duration value for an arrival/departure
// pair. The string is a display encoding of hours and minutes: whole hours,
// a dot, then remainder minutes zero-padded to two digits. It is NOT a
// decimal-hours value (1h30m encodes as "1.30", which is numerically not
// 1.5). Stored records and their consumers depend on this exact format, so
// it must not be "fixed". The returned minute count is the true elapsed
// minutes and is what all arithmetic should use.
//
// A departure at or before arrival yields "0.00" and 0 minutes; the zero
// value marks an empty or invalid entry, not an error.
func EncodeDuration(arrival, departure time.Time) (string, int) {
	if !departure.After(arrival) {
		return "0.00", 0
	}
	totalMinutes := int(departure.Sub(arrival).Minutes())
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	return fmt.Sprintf("%d.%02d", hours, minutes), totalMinutes
}

// DurationHours extracts the whole-hour part of an encoded duration.
// Equivalent to flooring the numeric value for any well-formed code.
func DurationHours(code string) int {
	head, _, _ := strings.Cut(code, ".")
	hours, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || hours < 0 {
		return 0
	}
	return hours
}
