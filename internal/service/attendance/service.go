package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/frd-security/attendance-backend-go/internal/domain/attendance"
	"github.com/frd-security/attendance-backend-go/internal/domain/company"
	"github.com/frd-security/attendance-backend-go/internal/domain/shift"
	"github.com/frd-security/attendance-backend-go/internal/domain/staff"
	"github.com/frd-security/attendance-backend-go/internal/domain/user"
	"github.com/frd-security/attendance-backend-go/internal/pkg/validator"
)

func parseCivil(date, clock string) (time.Time, error) {
	t, err := validator.ParseCivilDateTime(date, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse shift timestamp: %w", err)
	}
	return t, nil
}

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	staff.StaffRepository
}

func toRecordResponse(rec attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:           rec.ID,
		EmpID:        rec.EmpID,
		SupervisorNo: rec.SupervisorNo,
		CompanyID:    rec.CompanyID,
		Location:     rec.Location,
		Date:         rec.Date,

		ArrivalDate:   rec.ArrivalDate,
		ArrivalTime:   rec.ArrivalTime,
		DepartureDate: rec.DepartureDate,
		DepartureTime: rec.DepartureTime,

		Duration:        rec.Duration,
		DurationMinutes: rec.DurationMinutes,
		ShiftType:       rec.ShiftType,
		Penalty:         rec.Penalty,
		Remarks:         rec.Remarks,

		Level1: string(rec.DecisionAt(1)),
		Level2: string(rec.DecisionAt(2)),
		Level3: string(rec.DecisionAt(3)),

		OverallStatus:   rec.OverallStatus().String(),
		RejectionNotice: rec.RejectionNotice(),

		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt: rec.UpdatedAt.Format(time.RFC3339),
	}
	if rec.EmployeeName != nil {
		resp.EmployeeName = *rec.EmployeeName
	}
	return resp
}

func toListResponse(records []attendance.Record, total int64, page, limit int) attendance.ListResponse {
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toRecordResponse(rec))
	}

	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return attendance.ListResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Records:    responses,
	}
}

// Submit implements attendance.AttendanceService. Every entry is validated
// against the officer's history as it stood before the batch; entries
// within the same batch do not see each other. The first failing entry
// aborts the whole submission with nothing persisted.
func (a *AttendanceServiceImpl) Submit(ctx context.Context, session attendance.Session, req attendance.SubmitRequest) (attendance.ListResponse, error) {
	if !user.HasPermission(session.Role, user.PermissionAttendanceSubmit) {
		return attendance.ListResponse{}, attendance.ErrRoleNotPermitted
	}

	if err := req.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}
	if len(req.Entries) == 0 {
		return attendance.ListResponse{}, attendance.ErrEmptyBatch
	}

	officer, err := a.StaffRepository.GetByEmpID(ctx, req.EmpID)
	if err != nil {
		return attendance.ListResponse{}, err
	}

	history, err := a.AttendanceRepository.ListHistoryByEmpID(ctx, req.EmpID)
	if err != nil {
		return attendance.ListResponse{}, fmt.Errorf("failed to load shift history: %w", err)
	}

	records := make([]attendance.Record, 0, len(req.Entries))
	for _, entry := range req.Entries {
		arrival, err := parseCivil(entry.ArrivalDate, entry.ArrivalTime)
		if err != nil {
			return attendance.ListResponse{}, err
		}
		departure, err := parseCivil(entry.DepartureDate, entry.DepartureTime)
		if err != nil {
			return attendance.ListResponse{}, err
		}

		if err := shift.ValidateRest(shift.Span{Start: arrival, End: departure}, history); err != nil {
			return attendance.ListResponse{}, err
		}

		duration, minutes := shift.EncodeDuration(arrival, departure)

		penalty := entry.Penalty
		if penalty != nil && strings.TrimSpace(*penalty) == "" {
			penalty = nil
		}

		records = append(records, attendance.Record{
			EmpID:           officer.EmpID,
			SupervisorNo:    officer.SupervisorNo,
			CompanyID:       officer.CompanyID,
			Location:        entry.Location,
			Date:            req.Date,
			ArrivalDate:     entry.ArrivalDate,
			ArrivalTime:     entry.ArrivalTime,
			DepartureDate:   entry.DepartureDate,
			DepartureTime:   entry.DepartureTime,
			Duration:        duration,
			DurationMinutes: minutes,
			ShiftType:       entry.ShiftType,
			Penalty:         penalty,
			Remarks:         entry.Remarks,
		})
	}

	created, err := a.AttendanceRepository.CreateBatch(ctx, records)
	if err != nil {
		return attendance.ListResponse{}, fmt.Errorf("failed to create attendance batch: %w", err)
	}

	name := officer.Name
	for i := range created {
		created[i].EmployeeName = &name
	}

	return toListResponse(created, int64(len(created)), 1, len(created)), nil
}

// Approve implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Approve(ctx context.Context, session attendance.Session, req attendance.ApproveRequest) (attendance.RecordResponse, error) {
	level := a.resolveLevel(session, req.Level)
	if level < 1 || level > attendance.NumLevels {
		return attendance.RecordResponse{}, attendance.ErrInvalidLevel
	}
	if !session.CanActAtLevel(level) {
		return attendance.RecordResponse{}, attendance.ErrRoleNotPermitted
	}

	rec, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	// The in-memory transition enforces the gating rule; the guarded
	// UPDATE re-checks it against concurrent decisions.
	if err := rec.Approve(level); err != nil {
		return attendance.RecordResponse{}, err
	}

	updated, err := a.AttendanceRepository.SetDecision(ctx, req.ID, level, attendance.DecisionApproved, nil)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return toRecordResponse(updated), nil
}

// Reject implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Reject(ctx context.Context, session attendance.Session, req attendance.RejectRequest) (attendance.RecordResponse, error) {
	level := a.resolveLevel(session, req.Level)
	if level < 1 || level > attendance.NumLevels {
		return attendance.RecordResponse{}, attendance.ErrInvalidLevel
	}
	if !session.CanActAtLevel(level) {
		return attendance.RecordResponse{}, attendance.ErrRoleNotPermitted
	}

	rec, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if err := rec.Reject(level, req.Comment); err != nil {
		return attendance.RecordResponse{}, err
	}

	comment := strings.TrimSpace(req.Comment)
	updated, err := a.AttendanceRepository.SetDecision(ctx, req.ID, level, attendance.DecisionRejected, &comment)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return toRecordResponse(updated), nil
}

// Get implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Get(ctx context.Context, session attendance.Session, id string) (attendance.RecordResponse, error) {
	rec, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if user.HasPermission(session.Role, user.PermissionAttendanceViewAll) {
		return toRecordResponse(rec), nil
	}
	if user.HasPermission(session.Role, user.PermissionAttendanceViewCompany) {
		if session.CompanyID == nil || rec.CompanyID != *session.CompanyID {
			return attendance.RecordResponse{}, company.ErrCompanyAccessForbidden
		}
		return toRecordResponse(rec), nil
	}

	return attendance.RecordResponse{}, attendance.ErrRoleNotPermitted
}

// List implements attendance.AttendanceService. Company users are always
// scoped to their own company regardless of the filter they send.
func (a *AttendanceServiceImpl) List(ctx context.Context, session attendance.Session, filter attendance.Filter) (attendance.ListResponse, error) {
	if err := a.scopeFilter(session, &filter); err != nil {
		return attendance.ListResponse{}, err
	}

	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, err
	}

	return toListResponse(records, total, filter.Page, filter.Limit), nil
}

// Worklist implements attendance.AttendanceService. It returns the records
// actionable at the given level: level itself Pending, all lower levels
// Approved.
func (a *AttendanceServiceImpl) Worklist(ctx context.Context, session attendance.Session, level int, filter attendance.Filter) (attendance.ListResponse, error) {
	level = a.resolveLevel(session, level)
	if level < 1 || level > attendance.NumLevels {
		return attendance.ListResponse{}, attendance.ErrInvalidLevel
	}
	if !session.CanActAtLevel(level) {
		return attendance.ListResponse{}, attendance.ErrRoleNotPermitted
	}

	filter.PendingAt = &level
	filter.DecisionAt, filter.Decision = nil, nil

	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, err
	}

	return toListResponse(records, total, filter.Page, filter.Limit), nil
}

// Summary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Summary(ctx context.Context, session attendance.Session, filter attendance.SummaryFilter) (attendance.SummaryResponse, error) {
	switch {
	case user.HasPermission(session.Role, user.PermissionAttendanceViewAll):
	case user.HasPermission(session.Role, user.PermissionAttendanceViewCompany):
		if session.CompanyID == nil {
			return attendance.SummaryResponse{}, user.ErrCompanyIDRequired
		}
		filter.CompanyID = session.CompanyID
	default:
		return attendance.SummaryResponse{}, attendance.ErrRoleNotPermitted
	}

	if err := filter.Validate(); err != nil {
		return attendance.SummaryResponse{}, err
	}

	summaries, err := a.AttendanceRepository.Summarize(ctx, filter)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	return attendance.SummaryResponse{Employees: summaries}, nil
}

// resolveLevel fills in the level for officer roles that act on exactly
// one. An explicit level always wins; SuperAdmin must name one.
func (a *AttendanceServiceImpl) resolveLevel(session attendance.Session, level int) int {
	if level != 0 {
		return level
	}
	if own, ok := user.ApprovalLevel(session.Role); ok {
		return own
	}
	return 0
}

func (a *AttendanceServiceImpl) scopeFilter(session attendance.Session, filter *attendance.Filter) error {
	if user.HasPermission(session.Role, user.PermissionAttendanceViewAll) {
		return nil
	}
	if user.HasPermission(session.Role, user.PermissionAttendanceViewCompany) {
		if session.CompanyID == nil {
			return user.ErrCompanyIDRequired
		}
		filter.CompanyID = session.CompanyID
		return nil
	}
	return attendance.ErrRoleNotPermitted
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	staffRepo staff.StaffRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		StaffRepository:      staffRepo,
	}
}
