package attendance

import (
	"context"

	"github.com/frd-security/attendance-backend-go/internal/domain/shift"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// CreateBatch inserts all records of one submission in a single
	// transaction; a batch is never partially committed.
	CreateBatch(ctx context.Context, records []Record) ([]Record, error)

	// GetByID retrieves a record by ID
	GetByID(ctx context.Context, id string) (Record, error)

	// List retrieves records with filters and pagination
	List(ctx context.Context, filter Filter) ([]Record, int64, error)

	// ListHistoryByEmpID returns the officer's full shift history, most
	// recent departure first, for rest-rule validation.
	ListHistoryByEmpID(ctx context.Context, empID string) ([]shift.HistoryEntry, error)

	// SetDecision stores a level's decision and its companion notice in a
	// single statement, guarded on the level still being Pending. The
	// guard failing reports ErrAlreadyProcessed.
	SetDecision(ctx context.Context, id string, level int, decision Decision, notice *string) (Record, error)

	// Summarize totals duration minutes per officer over the filter range
	Summarize(ctx context.Context, filter SummaryFilter) ([]EmployeeSummary, error)
}
