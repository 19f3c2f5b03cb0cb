package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/frd-security/attendance-backend-go/internal/domain/attendance"
	"github.com/frd-security/attendance-backend-go/internal/domain/shift"
	"github.com/frd-security/attendance-backend-go/internal/domain/staff"
	"github.com/frd-security/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAttendanceRepo keeps records in memory and applies the same guard
// semantics as the SQL repository.
type fakeAttendanceRepo struct {
	history          []shift.HistoryEntry
	records          map[string]*attendance.Record
	order            []string
	nextID           int
	createBatchCalls int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[string]*attendance.Record{}}
}

func (f *fakeAttendanceRepo) CreateBatch(ctx context.Context, records []attendance.Record) ([]attendance.Record, error) {
	f.createBatchCalls++
	created := make([]attendance.Record, 0, len(records))
	for _, rec := range records {
		f.nextID++
		rec.ID = fmt.Sprintf("rec-%d", f.nextID)
		rec.Level1, rec.Level2, rec.Level3 = attendance.DecisionPending, attendance.DecisionPending, attendance.DecisionPending
		stored := rec
		f.records[rec.ID] = &stored
		f.order = append(f.order, rec.ID)
		created = append(created, rec)
	}
	return created, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return *rec, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	var out []attendance.Record
	for _, id := range f.order {
		rec := *f.records[id]
		if filter.EmpID != nil && rec.EmpID != *filter.EmpID {
			continue
		}
		if filter.CompanyID != nil && rec.CompanyID != *filter.CompanyID {
			continue
		}
		if filter.PendingAt != nil && !rec.ActionableBy(*filter.PendingAt) {
			continue
		}
		out = append(out, rec)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) ListHistoryByEmpID(ctx context.Context, empID string) ([]shift.HistoryEntry, error) {
	return f.history, nil
}

func (f *fakeAttendanceRepo) SetDecision(ctx context.Context, id string, level int, decision attendance.Decision, notice *string) (attendance.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	if !rec.Eligible(level) {
		return attendance.Record{}, attendance.ErrAlreadyProcessed
	}
	var err error
	if decision == attendance.DecisionRejected {
		err = rec.Reject(level, *notice)
	} else {
		err = rec.Approve(level)
	}
	if err != nil {
		return attendance.Record{}, err
	}
	return *rec, nil
}

func (f *fakeAttendanceRepo) Summarize(ctx context.Context, filter attendance.SummaryFilter) ([]attendance.EmployeeSummary, error) {
	totals := map[string]*attendance.EmployeeSummary{}
	var order []string
	for _, id := range f.order {
		rec := f.records[id]
		if filter.CompanyID != nil && rec.CompanyID != *filter.CompanyID {
			continue
		}
		s, ok := totals[rec.EmpID]
		if !ok {
			s = &attendance.EmployeeSummary{EmpID: rec.EmpID}
			totals[rec.EmpID] = s
			order = append(order, rec.EmpID)
		}
		s.ShiftCount++
		s.TotalMinutes += int64(rec.DurationMinutes)
	}
	var out []attendance.EmployeeSummary
	for _, empID := range order {
		out = append(out, *totals[empID])
	}
	return out, nil
}

type fakeStaffRepo struct {
	staff map[string]staff.Staff
}

func (f *fakeStaffRepo) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	f.staff[s.EmpID] = s
	return s, nil
}

func (f *fakeStaffRepo) GetByEmpID(ctx context.Context, empID string) (staff.Staff, error) {
	s, ok := f.staff[empID]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return s, nil
}

func (f *fakeStaffRepo) ListBySupervisor(ctx context.Context, supervisorNo string) ([]staff.Staff, error) {
	return nil, nil
}

func (f *fakeStaffRepo) List(ctx context.Context, filter staff.Filter) ([]staff.Staff, int64, error) {
	return nil, 0, nil
}

func (f *fakeStaffRepo) Update(ctx context.Context, s staff.Staff) error { return nil }

func (f *fakeStaffRepo) Delete(ctx context.Context, empID string) error { return nil }

func newTestService() (attendance.AttendanceService, *fakeAttendanceRepo) {
	repo := newFakeAttendanceRepo()
	staffRepo := &fakeStaffRepo{staff: map[string]staff.Staff{
		"SS-0042": {
			EmpID:        "SS-0042",
			Name:         "Ahmad Fauzi",
			SupervisorNo: "PL-007",
			CompanyID:    "company-1",
		},
	}}
	return NewAttendanceService(repo, staffRepo), repo
}

func patrolLeaderSession() attendance.Session {
	return attendance.Session{UserID: "user-pl", Role: user.RolePatrolLeader}
}

func officerSession(level int) attendance.Session {
	roles := map[int]user.Role{
		1: user.RoleApprovalOfficer01,
		2: user.RoleApprovalOfficer02,
		3: user.RoleApprovalOfficer03,
	}
	return attendance.Session{UserID: fmt.Sprintf("user-ao%d", level), Role: roles[level]}
}

func submitReq(entries ...attendance.EntryInput) attendance.SubmitRequest {
	return attendance.SubmitRequest{
		Date:    "2026-03-10",
		EmpID:   "SS-0042",
		Entries: entries,
	}
}

func shiftEntry(arrivalDate, arrivalTime, departureDate, departureTime string) attendance.EntryInput {
	return attendance.EntryInput{
		Location:      "North Gate",
		ArrivalDate:   arrivalDate,
		ArrivalTime:   arrivalTime,
		DepartureDate: departureDate,
		DepartureTime: departureTime,
		ShiftType:     "12 hours",
	}
}

func TestSubmit_Success(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	resp, err := svc.Submit(ctx, patrolLeaderSession(), submitReq(
		shiftEntry("2026-03-10", "08:00", "2026-03-10", "20:00"),
		shiftEntry("2026-03-12", "08:00", "2026-03-12", "17:30"),
	))
	require.NoError(t, err)
	require.Len(t, resp.Records, 2)

	first := resp.Records[0]
	assert.Equal(t, "SS-0042", first.EmpID)
	assert.Equal(t, "Ahmad Fauzi", first.EmployeeName)
	assert.Equal(t, "PL-007", first.SupervisorNo)
	assert.Equal(t, "company-1", first.CompanyID)
	assert.Equal(t, "12.00", first.Duration)
	assert.Equal(t, 720, first.DurationMinutes)
	assert.Equal(t, "Pending", first.OverallStatus)
	assert.Equal(t, string(attendance.DecisionPending), first.Level1)

	assert.Equal(t, "9.30", resp.Records[1].Duration)
	assert.Equal(t, 570, resp.Records[1].DurationMinutes)

	assert.Equal(t, 1, repo.createBatchCalls)
	assert.Len(t, repo.records, 2)
}

func TestSubmit_RoleNotPermitted(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	session := attendance.Session{UserID: "user-cu", Role: user.RoleCompanyUser}
	_, err := svc.Submit(ctx, session, submitReq(
		shiftEntry("2026-03-10", "08:00", "2026-03-10", "20:00"),
	))
	assert.ErrorIs(t, err, attendance.ErrRoleNotPermitted)
	assert.Equal(t, 0, repo.createBatchCalls)
}

func TestSubmit_UnknownOfficer(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	req := submitReq(shiftEntry("2026-03-10", "08:00", "2026-03-10", "20:00"))
	req.EmpID = "SS-9999"

	_, err := svc.Submit(ctx, patrolLeaderSession(), req)
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestSubmit_RestRuleAbortsWholeBatch(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	// A 24-hour shift departed at 08:00 on the 10th; rest runs to 20:00.
	repo.history = []shift.HistoryEntry{{
		Arrival:         civil(t, "2026-03-09", "08:00"),
		Departure:       civil(t, "2026-03-10", "08:00"),
		Duration:        "24.00",
		DurationMinutes: 1440,
	}}

	_, err := svc.Submit(ctx, patrolLeaderSession(), submitReq(
		shiftEntry("2026-03-12", "08:00", "2026-03-12", "20:00"),
		shiftEntry("2026-03-10", "14:00", "2026-03-11", "02:00"),
	))
	require.Error(t, err)

	var restErr *shift.RestNotElapsedError
	assert.ErrorAs(t, err, &restErr)

	// The valid first entry must not have been persisted either.
	assert.Equal(t, 0, repo.createBatchCalls)
	assert.Empty(t, repo.records)
}

func TestSubmit_PostRestCap(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	repo.history = []shift.HistoryEntry{{
		Arrival:         civil(t, "2026-03-09", "08:00"),
		Departure:       civil(t, "2026-03-10", "08:00"),
		Duration:        "24.00",
		DurationMinutes: 1440,
	}}

	// Rest has elapsed but the proposed span runs 14 hours.
	_, err := svc.Submit(ctx, patrolLeaderSession(), submitReq(
		shiftEntry("2026-03-10", "20:00", "2026-03-11", "10:00"),
	))
	assert.ErrorIs(t, err, shift.ErrShiftExceedsPostRestCap)
	assert.Empty(t, repo.records)
}

func TestSubmit_EntriesSeePreBatchHistoryOnly(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	// The first entry is itself a 24-hour shift. The second entry starts
	// two hours after it ends, which the rest rule would refuse if the
	// batch saw its own entries. Both validate against the history as it
	// stood before the submission, so both pass.
	resp, err := svc.Submit(ctx, patrolLeaderSession(), submitReq(
		shiftEntry("2026-03-10", "08:00", "2026-03-11", "08:00"),
		shiftEntry("2026-03-11", "10:00", "2026-03-11", "22:00"),
	))
	require.NoError(t, err)
	assert.Len(t, resp.Records, 2)
}

func approvedThrough(t *testing.T, svc attendance.AttendanceService, id string, levels int) {
	t.Helper()
	for level := 1; level <= levels; level++ {
		_, err := svc.Approve(context.Background(), officerSession(level), attendance.ApproveRequest{ID: id, Level: level})
		require.NoError(t, err)
	}
}

func submitOne(t *testing.T, svc attendance.AttendanceService) string {
	t.Helper()
	resp, err := svc.Submit(context.Background(), patrolLeaderSession(), submitReq(
		shiftEntry("2026-03-10", "08:00", "2026-03-10", "20:00"),
	))
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	return resp.Records[0].ID
}

func TestApprove_SequentialLevels(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	id := submitOne(t, svc)

	// Level 2 cannot act before level 1.
	_, err := svc.Approve(ctx, officerSession(2), attendance.ApproveRequest{ID: id, Level: 2})
	assert.ErrorIs(t, err, attendance.ErrNotEligible)

	resp, err := svc.Approve(ctx, officerSession(1), attendance.ApproveRequest{ID: id, Level: 1})
	require.NoError(t, err)
	assert.Equal(t, "Approved (Level 1)", resp.OverallStatus)

	resp, err = svc.Approve(ctx, officerSession(2), attendance.ApproveRequest{ID: id, Level: 2})
	require.NoError(t, err)
	assert.Equal(t, "Approved (Level 2)", resp.OverallStatus)

	// A decided level cannot be decided again.
	_, err = svc.Approve(ctx, officerSession(1), attendance.ApproveRequest{ID: id, Level: 1})
	assert.ErrorIs(t, err, attendance.ErrNotEligible)
}

func TestApprove_RoleLevelMismatch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	id := submitOne(t, svc)

	// An officer bound to level 1 cannot act at level 2.
	_, err := svc.Approve(ctx, officerSession(1), attendance.ApproveRequest{ID: id, Level: 2})
	assert.ErrorIs(t, err, attendance.ErrRoleNotPermitted)
}

func TestApprove_LevelDefaultsToOfficersOwn(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	id := submitOne(t, svc)

	// Level omitted resolves to the officer role's single level.
	resp, err := svc.Approve(ctx, officerSession(1), attendance.ApproveRequest{ID: id})
	require.NoError(t, err)
	assert.Equal(t, "Approved (Level 1)", resp.OverallStatus)
}

func TestApprove_SuperAdminActsAtAnyLevel(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	id := submitOne(t, svc)

	admin := attendance.Session{UserID: "user-sa", Role: user.RoleSuperAdmin}

	_, err := svc.Approve(ctx, admin, attendance.ApproveRequest{ID: id, Level: 1})
	require.NoError(t, err)
	resp, err := svc.Approve(ctx, admin, attendance.ApproveRequest{ID: id, Level: 2})
	require.NoError(t, err)
	assert.Equal(t, "Approved (Level 2)", resp.OverallStatus)

	// SuperAdmin has no implicit level; omitting it is an error.
	_, err = svc.Approve(ctx, admin, attendance.ApproveRequest{ID: id})
	assert.ErrorIs(t, err, attendance.ErrInvalidLevel)
}

func TestReject_RequiresComment(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()
	id := submitOne(t, svc)

	_, err := svc.Reject(ctx, officerSession(1), attendance.RejectRequest{ID: id, Level: 1, Comment: "   "})
	assert.ErrorIs(t, err, attendance.ErrCommentRequired)

	// The refused rejection left the record pending with no notice.
	rec, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, attendance.DecisionPending, rec.DecisionAt(1))
	assert.Nil(t, rec.NoticeAt(1))
}

func TestReject_StoresNoticeAtomically(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	id := submitOne(t, svc)
	approvedThrough(t, svc, id, 1)

	resp, err := svc.Reject(ctx, officerSession(2), attendance.RejectRequest{
		ID: id, Level: 2, Comment: "  duty log mismatch  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rejected (Level 2)", resp.OverallStatus)
	assert.Equal(t, "duty log mismatch", resp.RejectionNotice)

	// The record is final: level 3 cannot act after the rejection.
	_, err = svc.Approve(ctx, officerSession(3), attendance.ApproveRequest{ID: id, Level: 3})
	assert.ErrorIs(t, err, attendance.ErrNotEligible)
}

func TestWorklist_GatingAware(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	pendingID := submitOne(t, svc)
	level1Done := submitOne(t, svc)
	approvedThrough(t, svc, level1Done, 1)

	// Level 1 sees only the fully pending record.
	resp, err := svc.Worklist(ctx, officerSession(1), 1, attendance.Filter{})
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, pendingID, resp.Records[0].ID)

	// Level 2 sees only the record level 1 has approved.
	resp, err = svc.Worklist(ctx, officerSession(2), 2, attendance.Filter{})
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, level1Done, resp.Records[0].ID)

	// Level 3 sees nothing yet.
	resp, err = svc.Worklist(ctx, officerSession(3), 3, attendance.Filter{})
	require.NoError(t, err)
	assert.Empty(t, resp.Records)
}

func TestWorklist_RoleNotPermitted(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Worklist(ctx, patrolLeaderSession(), 1, attendance.Filter{})
	assert.ErrorIs(t, err, attendance.ErrRoleNotPermitted)

	_, err = svc.Worklist(ctx, officerSession(1), 2, attendance.Filter{})
	assert.ErrorIs(t, err, attendance.ErrRoleNotPermitted)
}

func TestList_CompanyUserScopedToOwnCompany(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()
	submitOne(t, svc)

	// A record from another company planted directly in the store.
	repo.records["rec-other"] = &attendance.Record{
		ID: "rec-other", EmpID: "SS-0099", CompanyID: "company-2",
	}
	repo.order = append(repo.order, "rec-other")

	companyID := "company-1"
	session := attendance.Session{UserID: "user-cu", Role: user.RoleCompanyUser, CompanyID: &companyID}

	// The company user asks for the other company; the scope wins.
	otherCompany := "company-2"
	resp, err := svc.List(ctx, session, attendance.Filter{CompanyID: &otherCompany})
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "company-1", resp.Records[0].CompanyID)
}

func TestList_CompanyUserWithoutCompanyID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	session := attendance.Session{UserID: "user-cu", Role: user.RoleCompanyUser}
	_, err := svc.List(ctx, session, attendance.Filter{})
	assert.ErrorIs(t, err, user.ErrCompanyIDRequired)
}

func TestGet_CompanyScoping(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	id := submitOne(t, svc)

	ownCompany := "company-1"
	otherCompany := "company-2"

	own := attendance.Session{UserID: "u1", Role: user.RoleCompanyUser, CompanyID: &ownCompany}
	_, err := svc.Get(ctx, own, id)
	assert.NoError(t, err)

	foreign := attendance.Session{UserID: "u2", Role: user.RoleCompanyUser, CompanyID: &otherCompany}
	_, err = svc.Get(ctx, foreign, id)
	assert.Error(t, err)

	officer := officerSession(1)
	_, err = svc.Get(ctx, officer, id)
	assert.NoError(t, err)
}

func TestSummary_TotalsDurationMinutes(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Submit(ctx, patrolLeaderSession(), submitReq(
		shiftEntry("2026-03-10", "08:00", "2026-03-10", "20:00"),
		shiftEntry("2026-03-12", "08:00", "2026-03-12", "17:30"),
	))
	require.NoError(t, err)

	resp, err := svc.Summary(ctx, officerSession(1), attendance.SummaryFilter{})
	require.NoError(t, err)
	require.Len(t, resp.Employees, 1)

	// 12h00m + 9h30m worked. Summing the encoded strings as decimals
	// would give 21.3 instead of 21h30m.
	assert.Equal(t, int64(2), resp.Employees[0].ShiftCount)
	assert.Equal(t, int64(1290), resp.Employees[0].TotalMinutes)
}

func civil(t *testing.T, date, clock string) time.Time {
	t.Helper()
	v, err := parseCivil(date, clock)
	require.NoError(t, err)
	return v
}
