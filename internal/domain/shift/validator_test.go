package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(arrival, departure time.Time) HistoryEntry {
	code, minutes := EncodeDuration(arrival, departure)
	return HistoryEntry{
		Arrival:         arrival,
		Departure:       departure,
		Duration:        code,
		DurationMinutes: minutes,
	}
}

func TestValidateRest_NoHistory(t *testing.T) {
	span := Span{Start: ts(10, 8, 0), End: ts(10, 20, 0)}
	assert.NoError(t, ValidateRest(span, nil))
}

func TestValidateRest_ShortShiftsDoNotTrigger(t *testing.T) {
	// A 12-hour shift ending an hour before the new one.
	history := []HistoryEntry{entry(ts(9, 19, 0), ts(10, 7, 0))}
	span := Span{Start: ts(10, 8, 0), End: ts(10, 20, 0)}
	assert.NoError(t, ValidateRest(span, history))
}

func TestValidateRest_RestNotElapsed(t *testing.T) {
	// 24-hour shift departing at 08:00; the next shift may start no
	// earlier than 20:00 the same day.
	departure := ts(10, 8, 0)
	history := []HistoryEntry{entry(ts(9, 8, 0), departure)}

	span := Span{Start: ts(10, 14, 0), End: ts(11, 2, 0)}
	err := ValidateRest(span, history)
	require.Error(t, err)

	var restErr *RestNotElapsedError
	require.ErrorAs(t, err, &restErr)
	assert.Equal(t, departure, restErr.PreviousDeparture)
	assert.Equal(t, departure.Add(12*time.Hour), restErr.EarliestStart)
}

func TestValidateRest_StartExactlyAtEarliest(t *testing.T) {
	departure := ts(10, 8, 0)
	history := []HistoryEntry{entry(ts(9, 8, 0), departure)}

	// Starting exactly at departure+12h with a 12-hour span is allowed.
	span := Span{Start: ts(10, 20, 0), End: ts(11, 8, 0)}
	assert.NoError(t, ValidateRest(span, history))
}

func TestValidateRest_PostRestCapExceeded(t *testing.T) {
	departure := ts(10, 8, 0)
	history := []HistoryEntry{entry(ts(9, 8, 0), departure)}

	// Rest elapsed, but the new span runs 12h01m.
	span := Span{Start: ts(10, 20, 0), End: ts(11, 8, 1)}
	assert.ErrorIs(t, ValidateRest(span, history), ErrShiftExceedsPostRestCap)
}

func TestValidateRest_LookbackBoundary(t *testing.T) {
	departure := ts(10, 8, 0)
	history := []HistoryEntry{entry(ts(9, 8, 0), departure)}

	// A gap of exactly 36 hours is outside the window.
	span := Span{Start: departure.Add(36 * time.Hour), End: departure.Add(60 * time.Hour)}
	assert.NoError(t, ValidateRest(span, history))

	// One minute inside the window the cap applies again.
	span = Span{Start: departure.Add(36*time.Hour - time.Minute), End: departure.Add(60 * time.Hour)}
	assert.ErrorIs(t, ValidateRest(span, history), ErrShiftExceedsPostRestCap)
}

func TestValidateRest_FractionalHoursFloorBelowThreshold(t *testing.T) {
	// 23h59m floors to 23 hours and does not trigger the rule.
	history := []HistoryEntry{entry(ts(9, 8, 0), ts(10, 7, 59))}
	span := Span{Start: ts(10, 9, 0), End: ts(10, 23, 0)}
	assert.NoError(t, ValidateRest(span, history))
}

func TestValidateRest_MostRecentTriggeringEntryGoverns(t *testing.T) {
	older := entry(ts(5, 8, 0), ts(6, 8, 0))
	recent := entry(ts(9, 8, 0), ts(10, 8, 0))
	// Order should not matter.
	history := []HistoryEntry{older, recent}

	span := Span{Start: ts(10, 12, 0), End: ts(10, 23, 0)}
	var restErr *RestNotElapsedError
	require.ErrorAs(t, ValidateRest(span, history), &restErr)
	assert.Equal(t, recent.Departure, restErr.PreviousDeparture)

	history = []HistoryEntry{recent, older}
	require.ErrorAs(t, ValidateRest(span, history), &restErr)
	assert.Equal(t, recent.Departure, restErr.PreviousDeparture)
}

func TestRestNotElapsedError_Message(t *testing.T) {
	err := &RestNotElapsedError{
		PreviousDeparture: ts(10, 8, 0),
		EarliestStart:     ts(10, 20, 0),
	}
	assert.Contains(t, err.Error(), "Mar 10, 2026 20:00")
}
