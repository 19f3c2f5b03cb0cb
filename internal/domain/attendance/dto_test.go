package attendance

import (
	"testing"

	"github.com/frd-security/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEntry() EntryInput {
	return EntryInput{
		Location:      "North Gate",
		ArrivalDate:   "2026-03-10",
		ArrivalTime:   "08:00",
		DepartureDate: "2026-03-10",
		DepartureTime: "20:00",
		ShiftType:     "12 hours",
	}
}

func TestSubmitRequest_Validate(t *testing.T) {
	req := SubmitRequest{
		Date:    "2026-03-10",
		EmpID:   "SS-0042",
		Entries: []EntryInput{validEntry()},
	}
	assert.NoError(t, req.Validate())
}

func TestSubmitRequest_Validate_EmptyEntries(t *testing.T) {
	req := SubmitRequest{Date: "2026-03-10", EmpID: "SS-0042"}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "entries")
}

func TestSubmitRequest_Validate_DepartureBeforeArrival(t *testing.T) {
	entry := validEntry()
	entry.DepartureDate = "2026-03-09"

	req := SubmitRequest{Date: "2026-03-10", EmpID: "SS-0042", Entries: []EntryInput{entry}}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "0.departure_date")
}

func TestSubmitRequest_Validate_UnknownShiftType(t *testing.T) {
	entry := validEntry()
	entry.ShiftType = "8 hours"

	req := SubmitRequest{Date: "2026-03-10", EmpID: "SS-0042", Entries: []EntryInput{entry}}

	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "0.shift_type")
}

func TestSubmitRequest_Validate_EmptyTimeMeansMidnight(t *testing.T) {
	entry := validEntry()
	entry.ArrivalTime = ""
	entry.DepartureDate = "2026-03-11"
	entry.DepartureTime = ""

	req := SubmitRequest{Date: "2026-03-10", EmpID: "SS-0042", Entries: []EntryInput{entry}}
	assert.NoError(t, req.Validate())
}

func TestFilter_Validate_Defaults(t *testing.T) {
	var f Filter
	require.NoError(t, f.Validate())
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.Limit)
	assert.Equal(t, "date", f.SortBy)
	assert.Equal(t, "desc", f.SortOrder)
}

func TestFilter_Validate_Bounds(t *testing.T) {
	f := Filter{Limit: 500}
	assert.Error(t, f.Validate())

	level := 4
	f = Filter{DecisionAt: &level}
	assert.Error(t, f.Validate())

	f = Filter{SortBy: "penalty"}
	assert.Error(t, f.Validate())
}
