package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/frd-security/attendance-backend-go/internal/domain/staff"
	"github.com/frd-security/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type staffRepository struct {
	db *database.DB
}

const staffColumns = "emp_id, name, supervisor_no, company_id, contact_no, created_at, updated_at"

func scanStaff(row pgx.Row) (staff.Staff, error) {
	var s staff.Staff
	err := row.Scan(
		&s.EmpID, &s.Name, &s.SupervisorNo, &s.CompanyID,
		&s.ContactNo, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements staff.StaffRepository.
func (r *staffRepository) Create(ctx context.Context, newStaff staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO security_staff (emp_id, name, supervisor_no, company_id, contact_no)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newStaff.EmpID, newStaff.Name, newStaff.SupervisorNo,
		newStaff.CompanyID, newStaff.ContactNo,
	).Scan(&newStaff.CreatedAt, &newStaff.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return staff.Staff{}, staff.ErrEmpIDExists
		}
		return staff.Staff{}, fmt.Errorf("failed to create staff: %w", err)
	}

	return newStaff, nil
}

// GetByEmpID implements staff.StaffRepository.
func (r *staffRepository) GetByEmpID(ctx context.Context, empID string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + staffColumns + " FROM security_staff WHERE emp_id = $1"

	s, err := scanStaff(q.QueryRow(ctx, query, empID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff by emp ID: %w", err)
	}

	return s, nil
}

// ListBySupervisor implements staff.StaffRepository.
func (r *staffRepository) ListBySupervisor(ctx context.Context, supervisorNo string) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + staffColumns + " FROM security_staff WHERE supervisor_no = $1 ORDER BY emp_id"

	rows, err := q.Query(ctx, query, supervisorNo)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff by supervisor: %w", err)
	}
	defer rows.Close()

	var result []staff.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		result = append(result, s)
	}

	return result, nil
}

// List implements staff.StaffRepository.
func (r *staffRepository) List(ctx context.Context, filter staff.Filter) ([]staff.Staff, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.CompanyID != nil && *filter.CompanyID != "" {
		baseWhere += fmt.Sprintf(" AND company_id = $%d", argIdx)
		args = append(args, *filter.CompanyID)
		argIdx++
	}

	if filter.SupervisorNo != nil && *filter.SupervisorNo != "" {
		baseWhere += fmt.Sprintf(" AND supervisor_no = $%d", argIdx)
		args = append(args, *filter.SupervisorNo)
		argIdx++
	}

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (emp_id ILIKE $%d OR name ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM security_staff WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count staff: %w", err)
	}

	selectQuery := fmt.Sprintf(
		"SELECT %s FROM security_staff WHERE %s ORDER BY emp_id LIMIT $%d OFFSET $%d",
		staffColumns, baseWhere, argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var result []staff.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan staff: %w", err)
		}
		result = append(result, s)
	}

	return result, total, nil
}

// Update implements staff.StaffRepository.
func (r *staffRepository) Update(ctx context.Context, s staff.Staff) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE security_staff
		SET name = $1, supervisor_no = $2, contact_no = $3, updated_at = NOW()
		WHERE emp_id = $4
	`

	tag, err := q.Exec(ctx, query, s.Name, s.SupervisorNo, s.ContactNo, s.EmpID)
	if err != nil {
		return fmt.Errorf("failed to update staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

// Delete implements staff.StaffRepository.
func (r *staffRepository) Delete(ctx context.Context, empID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM security_staff WHERE emp_id = $1", empID)
	if err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}
