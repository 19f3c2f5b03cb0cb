package staff

import (
	"github.com/frd-security/attendance-backend-go/internal/pkg/validator"
)

type StaffResponse struct {
	EmpID        string  `json:"emp_id"`
	Name         string  `json:"name"`
	SupervisorNo string  `json:"supervisor_no"`
	CompanyID    string  `json:"company_id"`
	ContactNo    *string `json:"contact_no,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type CreateStaffRequest struct {
	EmpID        string  `json:"emp_id"`
	Name         string  `json:"name"`
	SupervisorNo string  `json:"supervisor_no"`
	CompanyID    string  `json:"company_id"`
	ContactNo    *string `json:"contact_no,omitempty"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{
			Field:   "emp_id",
			Message: "emp_id is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.SupervisorNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "supervisor_no",
			Message: "supervisor_no is required",
		})
	}
	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStaffRequest struct {
	EmpID        string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	SupervisorNo *string `json:"supervisor_no,omitempty"`
	ContactNo    *string `json:"contact_no,omitempty"`
}

type Filter struct {
	CompanyID    *string `json:"company_id,omitempty"`
	SupervisorNo *string `json:"supervisor_no,omitempty"`
	Search       *string `json:"search,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListStaffResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Staff      []StaffResponse `json:"staff"`
}
