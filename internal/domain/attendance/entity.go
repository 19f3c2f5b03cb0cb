package attendance

import (
	"time"
)

// Decision is the approval state of one level of a record. A level with no
// stored decision is Pending.
type Decision string

const (
	DecisionPending  Decision = "Pending"
	DecisionApproved Decision = "Approved"
	DecisionRejected Decision = "Rejected"
)

// Normalize maps the absent decision to Pending.
func (d Decision) Normalize() Decision {
	if d == "" {
		return DecisionPending
	}
	return d
}

func (d Decision) Valid() bool {
	switch d.Normalize() {
	case DecisionPending, DecisionApproved, DecisionRejected:
		return true
	}
	return false
}

// Record is one shift entry for one security officer. Arrival and departure
// are civil date/time strings with no timezone; Duration is the encoded
// "H.MM" value derived from them and DurationMinutes the true elapsed
// minutes. Duration is never user-edited; it is recomputed at submission.
type Record struct {
	ID           string
	EmpID        string
	SupervisorNo string
	CompanyID    string
	Location     string
	Date         string // submission date, YYYY-MM-DD

	ArrivalDate   string // YYYY-MM-DD
	ArrivalTime   string // HH:MM, empty means 00:00
	DepartureDate string
	DepartureTime string

	Duration        string
	DurationMinutes int
	ShiftType       string
	Penalty         *string
	Remarks         *string

	Level1 Decision
	Level2 Decision
	Level3 Decision

	Level1Notice *string
	Level2Notice *string
	Level3Notice *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	EmployeeName *string
}
