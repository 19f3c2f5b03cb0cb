package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/frd-security/attendance-backend-go/internal/domain/company"
	"github.com/frd-security/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type companyRepository struct {
	db *database.DB
}

const companyColumns = "id, name, registration_no, address, contact_no, created_at, updated_at"

func scanCompany(row pgx.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.RegistrationNo, &c.Address,
		&c.ContactNo, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create implements company.CompanyRepository.
func (r *companyRepository) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to generate company id: %w", err)
	}
	newCompany.ID = id.String()

	query := `
		INSERT INTO security_companies (id, name, registration_no, address, contact_no)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		newCompany.ID, newCompany.Name, newCompany.RegistrationNo,
		newCompany.Address, newCompany.ContactNo,
	).Scan(&newCompany.CreatedAt, &newCompany.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return company.Company{}, company.ErrRegistrationNoExists
		}
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	return newCompany, nil
}

// GetByID implements company.CompanyRepository.
func (r *companyRepository) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + companyColumns + " FROM security_companies WHERE id = $1"

	c, err := scanCompany(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company by ID: %w", err)
	}

	return c, nil
}

// List implements company.CompanyRepository.
func (r *companyRepository) List(ctx context.Context, filter company.Filter) ([]company.Company, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (name ILIKE $%d OR registration_no ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM security_companies WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	selectQuery := fmt.Sprintf(
		"SELECT %s FROM security_companies WHERE %s ORDER BY name LIMIT $%d OFFSET $%d",
		companyColumns, baseWhere, argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}

	return companies, total, nil
}

// Update implements company.CompanyRepository.
func (r *companyRepository) Update(ctx context.Context, c company.Company) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE security_companies
		SET name = $1, address = $2, contact_no = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, c.Name, c.Address, c.ContactNo, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}

	return nil
}

// Delete implements company.CompanyRepository. Deleting a company with
// registered staff is refused so attendance history keeps its join target.
func (r *companyRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var hasStaff bool
	err := q.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM security_staff WHERE company_id = $1)", id).Scan(&hasStaff)
	if err != nil {
		return fmt.Errorf("failed to check company staff: %w", err)
	}
	if hasStaff {
		return company.ErrCompanyHasActiveStaff
	}

	tag, err := q.Exec(ctx, "DELETE FROM security_companies WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}

	return nil
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}
