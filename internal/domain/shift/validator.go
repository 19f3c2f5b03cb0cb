package shift

import (
	"errors"
	"fmt"
	"time"
)

// Rest-rule parameters. An officer who worked a shift of LongShiftHours or
// more must rest RestHours after it, and their next shift within the
// lookback window is capped at PostRestCapHours.
const (
	LongShiftHours   = 24
	RestHours        = 12
	PostRestCapHours = 12
	LookbackHours    = 36
)

var ErrShiftExceedsPostRestCap = errors.New("after a 24-hour shift the next shift cannot exceed 12 hours")

// RestNotElapsedError reports a new shift starting before the mandatory
// rest period after a long shift has passed. EarliestStart is the first
// permissible start time.
type RestNotElapsedError struct {
	PreviousDeparture time.Time
	EarliestStart     time.Time
}

func (e *RestNotElapsedError) Error() string {
	return fmt.Sprintf(
		"officer completed a 24-hour shift and must rest for 12 hours; earliest available start time is %s",
		e.EarliestStart.Format("Jan 02, 2006 15:04"),
	)
}

// ValidateRest decides whether a proposed shift is admissible given the
// employee's shift history. It is pure: the caller fetches history and
// surfaces the returned error.
//
// A history entry triggers the rule when its departure lies less than
// LookbackHours before the new shift's start and its own duration was at
// least LongShiftHours (whole-hour part of the encoded duration). Among
// triggering entries the most recent departure governs. The new shift must
// then start no earlier than that departure plus RestHours, and its own
// span must not exceed PostRestCapHours.
func ValidateRest(newShift Span, history []HistoryEntry) error {
	var trigger *HistoryEntry
	for i := range history {
		entry := &history[i]
		gap := newShift.Start.Sub(entry.Departure)
		if gap >= time.Duration(LookbackHours)*time.Hour {
			continue
		}
		if DurationHours(entry.Duration) < LongShiftHours {
			continue
		}
		if trigger == nil || entry.Departure.After(trigger.Departure) {
			trigger = entry
		}
	}
	if trigger == nil {
		return nil
	}

	earliest := trigger.Departure.Add(time.Duration(RestHours) * time.Hour)
	if newShift.Start.Before(earliest) {
		return &RestNotElapsedError{
			PreviousDeparture: trigger.Departure,
			EarliestStart:     earliest,
		}
	}
	if newShift.End.Sub(newShift.Start) > time.Duration(PostRestCapHours)*time.Hour {
		return ErrShiftExceedsPostRestCap
	}
	return nil
}
