package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(day, hour, minute int) time.Time {
	return time.Date(2026, time.March, day, hour, minute, 0, 0, time.UTC)
}

func TestEncodeDuration(t *testing.T) {
	tests := []struct {
		name        string
		arrival     time.Time
		departure   time.Time
		wantCode    string
		wantMinutes int
	}{
		{
			// The encoding is hours dot minutes, not decimal hours.
			name:        "one and a half hours",
			arrival:     ts(1, 8, 0),
			departure:   ts(1, 9, 30),
			wantCode:    "1.30",
			wantMinutes: 90,
		},
		{
			name:        "five minute remainder is zero padded",
			arrival:     ts(1, 8, 0),
			departure:   ts(1, 10, 5),
			wantCode:    "2.05",
			wantMinutes: 125,
		},
		{
			name:        "full day shift",
			arrival:     ts(1, 8, 0),
			departure:   ts(2, 8, 0),
			wantCode:    "24.00",
			wantMinutes: 1440,
		},
		{
			name:        "equal timestamps encode as zero",
			arrival:     ts(1, 8, 0),
			departure:   ts(1, 8, 0),
			wantCode:    "0.00",
			wantMinutes: 0,
		},
		{
			name:        "departure before arrival encodes as zero",
			arrival:     ts(2, 8, 0),
			departure:   ts(1, 8, 0),
			wantCode:    "0.00",
			wantMinutes: 0,
		},
		{
			name:        "sub hour shift",
			arrival:     ts(1, 8, 0),
			departure:   ts(1, 8, 45),
			wantCode:    "0.45",
			wantMinutes: 45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, minutes := EncodeDuration(tt.arrival, tt.departure)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMinutes, minutes)
		})
	}
}

func TestDurationHours(t *testing.T) {
	assert.Equal(t, 1, DurationHours("1.30"))
	assert.Equal(t, 24, DurationHours("24.00"))
	assert.Equal(t, 23, DurationHours("23.59"))
	assert.Equal(t, 0, DurationHours("0.00"))
	assert.Equal(t, 0, DurationHours(""))
	assert.Equal(t, 0, DurationHours("garbage"))
	assert.Equal(t, 0, DurationHours("-3.00"))
}

func TestSpanHours(t *testing.T) {
	assert.Equal(t, 12, Span{Start: ts(1, 8, 0), End: ts(1, 20, 0)}.Hours())
	assert.Equal(t, 12, Span{Start: ts(1, 8, 0), End: ts(1, 20, 59)}.Hours())
	assert.Equal(t, 0, Span{Start: ts(1, 8, 0), End: ts(1, 8, 0)}.Hours())
	assert.Equal(t, 0, Span{Start: ts(1, 20, 0), End: ts(1, 8, 0)}.Hours())
}
