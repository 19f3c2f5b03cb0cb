package attendance

import (
	"context"
)

// AttendanceService defines business logic for the attendance workflow.
// Every call takes the acting user's Session explicitly.
type AttendanceService interface {
	// Submit validates a batch of shift entries against the officer's
	// pre-batch history and creates all records, or none of them.
	Submit(ctx context.Context, session Session, req SubmitRequest) (ListResponse, error)

	// Approve transitions one approval level of a record to Approved
	Approve(ctx context.Context, session Session, req ApproveRequest) (RecordResponse, error)

	// Reject transitions one approval level to Rejected, atomically with
	// its rejection comment
	Reject(ctx context.Context, session Session, req RejectRequest) (RecordResponse, error)

	// Get retrieves a single record by ID
	Get(ctx context.Context, session Session, id string) (RecordResponse, error)

	// List retrieves records with filters (read path for all roles)
	List(ctx context.Context, session Session, filter Filter) (ListResponse, error)

	// Worklist retrieves the records actionable at the session's level
	Worklist(ctx context.Context, session Session, level int, filter Filter) (ListResponse, error)

	// Summary totals worked time per officer
	Summary(ctx context.Context, session Session, filter SummaryFilter) (SummaryResponse, error)
}
