package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/frd-security/attendance-backend-go/internal/domain/attendance"
	"github.com/frd-security/attendance-backend-go/internal/domain/shift"
	"github.com/frd-security/attendance-backend-go/internal/pkg/database"
	"github.com/frd-security/attendance-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

// decisionColumn returns the approval column pair for a level. level is
// validated by the domain before it reaches the repository.
func decisionColumn(level int) (decision, notice string) {
	return fmt.Sprintf("approval_officer_%02d_approval", level),
		fmt.Sprintf("approval_officer_%02d_notice", level)
}

const attendanceColumns = `
	a.id, a.emp_id, a.supervisor_no, a.company_id, a.location, a.date,
	a.arrival_date, a.arrival_time, a.departure_date, a.departure_time,
	a.duration, a.duration_minutes, a.shift_type, a.penalty, a.remarks,
	a.approval_officer_01_approval, a.approval_officer_02_approval, a.approval_officer_03_approval,
	a.approval_officer_01_notice, a.approval_officer_02_notice, a.approval_officer_03_notice,
	a.created_at, a.updated_at,
	s.name AS employee_name`

const attendanceJoin = `
	FROM attendances a
	LEFT JOIN security_staff s ON s.emp_id = a.emp_id`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmpID, &rec.SupervisorNo, &rec.CompanyID, &rec.Location, &rec.Date,
		&rec.ArrivalDate, &rec.ArrivalTime, &rec.DepartureDate, &rec.DepartureTime,
		&rec.Duration, &rec.DurationMinutes, &rec.ShiftType, &rec.Penalty, &rec.Remarks,
		&rec.Level1, &rec.Level2, &rec.Level3,
		&rec.Level1Notice, &rec.Level2Notice, &rec.Level3Notice,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName,
	)
	return rec, err
}

// CreateBatch implements attendance.AttendanceRepository. All inserts run
// inside one transaction unless the caller already opened one.
func (a *attendanceRepository) CreateBatch(ctx context.Context, records []attendance.Record) ([]attendance.Record, error) {
	created := make([]attendance.Record, 0, len(records))

	insert := func(txCtx context.Context) error {
		q := GetQuerier(txCtx, a.db)

		query := `
		INSERT INTO attendances (
			id, emp_id, supervisor_no, company_id, location, date,
			arrival_date, arrival_time, departure_date, departure_time,
			duration, duration_minutes, shift_type, penalty, remarks,
			approval_officer_01_approval, approval_officer_02_approval, approval_officer_03_approval
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
		) RETURNING created_at, updated_at
	`

		for _, rec := range records {
			id, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("failed to generate record id: %w", err)
			}
			rec.ID = id.String()

			err = q.QueryRow(txCtx, query,
				rec.ID, rec.EmpID, rec.SupervisorNo, rec.CompanyID, rec.Location, rec.Date,
				rec.ArrivalDate, rec.ArrivalTime, rec.DepartureDate, rec.DepartureTime,
				rec.Duration, rec.DurationMinutes, rec.ShiftType, rec.Penalty, rec.Remarks,
				string(attendance.DecisionPending), string(attendance.DecisionPending), string(attendance.DecisionPending),
			).Scan(&rec.CreatedAt, &rec.UpdatedAt)
			if err != nil {
				return fmt.Errorf("failed to create attendance record: %w", err)
			}

			rec.Level1, rec.Level2, rec.Level3 = attendance.DecisionPending, attendance.DecisionPending, attendance.DecisionPending
			created = append(created, rec)
		}

		return nil
	}

	if _, inTx := ctx.Value(txKey{}).(pgx.Tx); inTx {
		if err := insert(ctx); err != nil {
			return nil, err
		}
		return created, nil
	}

	if err := WithTransaction(ctx, a.db, insert); err != nil {
		return nil, err
	}
	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := "SELECT " + attendanceColumns + attendanceJoin + " WHERE a.id = $1"

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record by ID: %w", err)
	}

	return rec, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmpID != nil && *filter.EmpID != "" {
		baseWhere += fmt.Sprintf(" AND a.emp_id = $%d", argIdx)
		args = append(args, *filter.EmpID)
		argIdx++
	}

	if filter.CompanyID != nil && *filter.CompanyID != "" {
		baseWhere += fmt.Sprintf(" AND a.company_id = $%d", argIdx)
		args = append(args, *filter.CompanyID)
		argIdx++
	}

	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	// Decision at one level, e.g. all records level 2 rejected
	if filter.DecisionAt != nil && filter.Decision != nil {
		col, _ := decisionColumn(*filter.DecisionAt)
		baseWhere += fmt.Sprintf(" AND a.%s = $%d", col, argIdx)
		args = append(args, string(attendance.Decision(*filter.Decision).Normalize()))
		argIdx++
	}

	// Worklist filter: the level itself Pending and every lower level
	// Approved, mirroring the engine's gating precondition.
	if filter.PendingAt != nil {
		level := *filter.PendingAt
		col, _ := decisionColumn(level)
		baseWhere += fmt.Sprintf(" AND a.%s = '%s'", col, attendance.DecisionPending)
		for lower := 1; lower < level; lower++ {
			lowerCol, _ := decisionColumn(lower)
			baseWhere += fmt.Sprintf(" AND a.%s = '%s'", lowerCol, attendance.DecisionApproved)
		}
	}

	if filter.SearchEmpID != nil && *filter.SearchEmpID != "" {
		baseWhere += fmt.Sprintf(" AND (a.emp_id ILIKE $%d OR s.name ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.SearchEmpID+"%")
		argIdx++
	}

	countQuery := "SELECT COUNT(*)" + attendanceJoin + " WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	orderByField := "a.date"
	switch filter.SortBy {
	case "emp_id":
		orderByField = "a.emp_id"
	case "duration":
		orderByField = "a.duration_minutes"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(
		"SELECT %s %s WHERE %s ORDER BY %s %s, a.created_at DESC LIMIT $%d OFFSET $%d",
		attendanceColumns, attendanceJoin, baseWhere, orderByField, sortOrder, argIdx, argIdx+1,
	)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, nil
}

// ListHistoryByEmpID implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListHistoryByEmpID(ctx context.Context, empID string) ([]shift.HistoryEntry, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT arrival_date, arrival_time, departure_date, departure_time,
		       duration, duration_minutes
		FROM attendances
		WHERE emp_id = $1
		ORDER BY departure_date DESC, departure_time DESC
	`

	rows, err := q.Query(ctx, query, empID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift history: %w", err)
	}
	defer rows.Close()

	var history []shift.HistoryEntry
	for rows.Next() {
		var arrivalDate, arrivalTime, departureDate, departureTime string
		var entry shift.HistoryEntry
		if err := rows.Scan(
			&arrivalDate, &arrivalTime, &departureDate, &departureTime,
			&entry.Duration, &entry.DurationMinutes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift history entry: %w", err)
		}
		if entry.Arrival, err = validator.ParseCivilDateTime(arrivalDate, arrivalTime); err != nil {
			continue
		}
		if entry.Departure, err = validator.ParseCivilDateTime(departureDate, departureTime); err != nil {
			continue
		}
		history = append(history, entry)
	}

	return history, nil
}

// SetDecision implements attendance.AttendanceRepository. The UPDATE is
// guarded on the level still being Pending and the levels below it being
// Approved, so a decision that raced with another officer's action simply
// matches no row instead of overwriting it. Decision and notice land in
// one statement; a Rejected level is never observable without its notice.
func (a *attendanceRepository) SetDecision(ctx context.Context, id string, level int, decision attendance.Decision, notice *string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	decisionCol, noticeCol := decisionColumn(level)

	guard := fmt.Sprintf("%s = '%s'", decisionCol, attendance.DecisionPending)
	for lower := 1; lower < level; lower++ {
		lowerCol, _ := decisionColumn(lower)
		guard += fmt.Sprintf(" AND %s = '%s'", lowerCol, attendance.DecisionApproved)
	}

	query := fmt.Sprintf(`
		UPDATE attendances
		SET %s = $1, %s = $2, updated_at = $3
		WHERE id = $4 AND %s
		RETURNING id
	`, decisionCol, noticeCol, guard)

	var updatedID string
	err := q.QueryRow(ctx, query, string(decision), notice, time.Now(), id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Either the record is gone or the level was decided already.
			if _, getErr := a.GetByID(ctx, id); getErr != nil {
				return attendance.Record{}, getErr
			}
			return attendance.Record{}, attendance.ErrAlreadyProcessed
		}
		return attendance.Record{}, fmt.Errorf("failed to set approval decision: %w", err)
	}

	return a.GetByID(ctx, id)
}

// Summarize implements attendance.AttendanceRepository.
func (a *attendanceRepository) Summarize(ctx context.Context, filter attendance.SummaryFilter) ([]attendance.EmployeeSummary, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.CompanyID != nil && *filter.CompanyID != "" {
		baseWhere += fmt.Sprintf(" AND a.company_id = $%d", argIdx)
		args = append(args, *filter.CompanyID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT a.emp_id, COALESCE(s.name, ''), COUNT(*), COALESCE(SUM(a.duration_minutes), 0)
		%s
		WHERE %s
		GROUP BY a.emp_id, s.name
		ORDER BY a.emp_id
	`, attendanceJoin, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance summary: %w", err)
	}
	defer rows.Close()

	var summaries []attendance.EmployeeSummary
	for rows.Next() {
		var s attendance.EmployeeSummary
		if err := rows.Scan(&s.EmpID, &s.EmployeeName, &s.ShiftCount, &s.TotalMinutes); err != nil {
			return nil, fmt.Errorf("failed to scan attendance summary: %w", err)
		}
		s.TotalHours = fmt.Sprintf("%dh %02dm", s.TotalMinutes/60, s.TotalMinutes%60)
		summaries = append(summaries, s)
	}

	return summaries, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
