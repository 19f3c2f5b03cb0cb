package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCivilDateTime(t *testing.T) {
	ts, err := ParseCivilDateTime("2026-03-10", "08:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC), ts)

	// Empty time means midnight.
	ts, err = ParseCivilDateTime("2026-03-10", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), ts)

	ts, err = ParseCivilDateTime("2026-03-10", "08:30:45")
	require.NoError(t, err)
	assert.Equal(t, 45, ts.Second())

	_, err = ParseCivilDateTime("10-03-2026", "08:30")
	assert.Error(t, err)

	_, err = ParseCivilDateTime("2026-03-10", "25:00")
	assert.Error(t, err)
}

func TestIsValidClockTime(t *testing.T) {
	assert.True(t, IsValidClockTime("00:00"))
	assert.True(t, IsValidClockTime("23:59"))
	assert.True(t, IsValidClockTime("08:30:45"))
	assert.False(t, IsValidClockTime("24:00"))
	assert.False(t, IsValidClockTime("8:30"))
	assert.False(t, IsValidClockTime("08:60"))
	assert.False(t, IsValidClockTime(""))
}

func TestIsValidDate(t *testing.T) {
	ts, ok := IsValidDate("2026-03-10")
	assert.True(t, ok)
	assert.Equal(t, time.March, ts.Month())

	_, ok = IsValidDate("2026-02-30")
	assert.False(t, ok)
	_, ok = IsValidDate("not-a-date")
	assert.False(t, ok)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   \t"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("officer@frd-security.co.jp"))
	assert.False(t, IsValidEmail("officer@"))
	assert.False(t, IsValidEmail("officer"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "emp_id", Message: "emp_id is required"},
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
	}
	assert.Equal(t, "emp_id: emp_id is required; date: date must be in YYYY-MM-DD format", errs.Error())
	assert.Equal(t, map[string]string{
		"emp_id": "emp_id is required",
		"date":   "date must be in YYYY-MM-DD format",
	}, errs.ToMap())
}
