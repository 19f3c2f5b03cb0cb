package attendance

import (
	"strings"

	"github.com/frd-security/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// SUBMISSION DTOs
// ========================================

// ShiftTypes are the nominal shift duration labels a patrol leader can pick.
var ShiftTypes = []string{"6 hours", "12 hours", "24 hours", "36 hours"}

// Penalties are the allowed penalty labels; the empty value means none.
var Penalties = []string{"Late Arrival", "Early Departure", "Absent", "Overtime"}

// EntryInput is one shift entry inside a submission batch. Duration is
// never accepted from the client; it is derived from the civil pairs.
type EntryInput struct {
	Location      string  `json:"location"`
	ArrivalDate   string  `json:"arrival_date"`   // YYYY-MM-DD
	ArrivalTime   string  `json:"arrival_time"`   // HH:MM, optional (00:00)
	DepartureDate string  `json:"departure_date"` // YYYY-MM-DD
	DepartureTime string  `json:"departure_time"` // HH:MM, optional (00:00)
	ShiftType     string  `json:"shift_type"`
	Penalty       *string `json:"penalty,omitempty"`
	Remarks       *string `json:"remarks,omitempty"`
}

// SubmitRequest creates one attendance record per entry for a single
// officer. All entries share the officer and submission date.
type SubmitRequest struct {
	Date    string       `json:"date"` // YYYY-MM-DD
	EmpID   string       `json:"emp_id"`
	Entries []EntryInput `json:"entries"`
}

func (e *EntryInput) validate(prefix string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(e.Location) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + "location",
			Message: "location is required",
		})
	}

	if _, valid := validator.IsValidDate(e.ArrivalDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + "arrival_date",
			Message: "arrival_date must be in YYYY-MM-DD format",
		})
	}
	if _, valid := validator.IsValidDate(e.DepartureDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + "departure_date",
			Message: "departure_date must be in YYYY-MM-DD format",
		})
	}
	if e.ArrivalTime != "" && !validator.IsValidClockTime(e.ArrivalTime) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + "arrival_time",
			Message: "arrival_time must be in HH:MM format",
		})
	}
	if e.DepartureTime != "" && !validator.IsValidClockTime(e.DepartureTime) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + "departure_time",
			Message: "departure_time must be in HH:MM format",
		})
	}

	if !validator.IsInSlice(e.ShiftType, ShiftTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + "shift_type",
			Message: "shift_type must be one of: " + strings.Join(ShiftTypes, ", "),
		})
	}

	if e.Penalty != nil && *e.Penalty != "" && !validator.IsInSlice(*e.Penalty, Penalties) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + "penalty",
			Message: "penalty must be one of: " + strings.Join(Penalties, ", "),
		})
	}

	// Departure before arrival is a submission error; equal timestamps are
	// allowed and encode as a zero duration.
	if len(errs) == 0 {
		arrival, err1 := validator.ParseCivilDateTime(e.ArrivalDate, e.ArrivalTime)
		departure, err2 := validator.ParseCivilDateTime(e.DepartureDate, e.DepartureTime)
		if err1 == nil && err2 == nil && departure.Before(arrival) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + "departure_date",
				Message: "departure date/time cannot be before arrival date/time",
			})
		}
	}

	return errs
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{
			Field:   "emp_id",
			Message: "emp_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entries",
			Message: "at least one entry is required",
		})
	}

	for i := range r.Entries {
		errs = append(errs, r.Entries[i].validate(validator.Itoa(i)+".")...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// APPROVAL DTOs
// ========================================

// ApproveRequest approves a record at one level
type ApproveRequest struct {
	ID    string `json:"-"`
	Level int    `json:"level"`
}

// RejectRequest rejects a record at one level with a mandatory comment.
// Comment and decision are stored together, never separately.
type RejectRequest struct {
	ID      string `json:"-"`
	Level   int    `json:"level"`
	Comment string `json:"comment"`
}

func (r *RejectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Comment) {
		errs = append(errs, validator.ValidationError{
			Field:   "comment",
			Message: "rejection comment is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// READ DTOs
// ========================================

type RecordResponse struct {
	ID           string `json:"id"`
	EmpID        string `json:"emp_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	SupervisorNo string `json:"supervisor_no"`
	CompanyID    string `json:"company_id"`
	Location     string `json:"location"`
	Date         string `json:"date"`

	ArrivalDate   string `json:"arrival_date"`
	ArrivalTime   string `json:"arrival_time,omitempty"`
	DepartureDate string `json:"departure_date"`
	DepartureTime string `json:"departure_time,omitempty"`

	Duration        string  `json:"duration"`
	DurationMinutes int     `json:"duration_minutes"`
	ShiftType       string  `json:"shift_type"`
	Penalty         *string `json:"penalty,omitempty"`
	Remarks         *string `json:"remarks,omitempty"`

	Level1 string `json:"approval_officer_01_approval"`
	Level2 string `json:"approval_officer_02_approval"`
	Level3 string `json:"approval_officer_03_approval"`

	OverallStatus   string `json:"overall_status"`
	RejectionNotice string `json:"rejection_notice,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Filter struct {
	EmpID       *string `json:"emp_id,omitempty"`
	CompanyID   *string `json:"company_id,omitempty"`
	Date        *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate   *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate     *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	DecisionAt  *int    `json:"decision_level,omitempty"`
	Decision    *string `json:"decision,omitempty"`
	PendingAt   *int    `json:"pending_at,omitempty"` // worklist level, gating-aware
	SearchEmpID *string `json:"search,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortBy    string `json:"sort_by"`    // date, emp_id, duration
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Decision != nil && !Decision(*f.Decision).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be one of: Pending, Approved, Rejected",
		})
	}

	if f.DecisionAt != nil && (*f.DecisionAt < 1 || *f.DecisionAt > NumLevels) {
		errs = append(errs, validator.ValidationError{
			Field:   "decision_level",
			Message: "decision_level must be between 1 and 3",
		})
	}

	if f.PendingAt != nil && (*f.PendingAt < 1 || *f.PendingAt > NumLevels) {
		errs = append(errs, validator.ValidationError{
			Field:   "pending_at",
			Message: "pending_at must be between 1 and 3",
		})
	}

	for _, d := range []struct {
		name  string
		value *string
	}{
		{"date", f.Date},
		{"start_date", f.StartDate},
		{"end_date", f.EndDate},
	} {
		if d.value != nil && *d.value != "" {
			if _, valid := validator.IsValidDate(*d.value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   d.name,
					Message: d.name + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if f.SortBy != "" {
		validSortFields := []string{"date", "emp_id", "duration"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: date, emp_id, duration",
			})
		}
	} else {
		f.SortBy = "date" // Default sort
	}

	if f.SortOrder != "" {
		validSortOrders := []string{"asc", "desc"}
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), validSortOrders) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc" // Default descending (newest first)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Records    []RecordResponse `json:"records"`
}

// ========================================
// SUMMARY DTOs
// ========================================

type SummaryFilter struct {
	CompanyID *string `json:"company_id,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *SummaryFilter) Validate() error {
	var errs validator.ValidationErrors

	for _, d := range []struct {
		name  string
		value *string
	}{
		{"start_date", f.StartDate},
		{"end_date", f.EndDate},
	} {
		if d.value != nil && *d.value != "" {
			if _, valid := validator.IsValidDate(*d.value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   d.name,
					Message: d.name + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeSummary totals one officer's worked time. Totals come from
// DurationMinutes; the encoded "H.MM" strings are never summed.
type EmployeeSummary struct {
	EmpID        string `json:"emp_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	ShiftCount   int64  `json:"shift_count"`
	TotalMinutes int64  `json:"total_minutes"`
	TotalHours   string `json:"total_hours"` // whole hours + remainder, e.g. "37h 30m"
}

type SummaryResponse struct {
	Employees []EmployeeSummary `json:"employees"`
}
