package attendance

import "errors"

// Attendance domain errors
var (
	// Approval workflow
	ErrNotEligible      = errors.New("record is not actionable at this approval level")
	ErrCommentRequired  = errors.New("a rejection comment is required")
	ErrInvalidLevel     = errors.New("approval level must be between 1 and 3")
	ErrRoleNotPermitted = errors.New("role is not permitted to act at this approval level")
	ErrAlreadyProcessed = errors.New("record has already been processed at this level")

	// General
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrEmptyBatch     = errors.New("attendance submission contains no entries")
)
