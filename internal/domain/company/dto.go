package company

import (
	"github.com/frd-security/attendance-backend-go/internal/pkg/validator"
)

type CompanyResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	RegistrationNo string  `json:"registration_no"`
	Address        *string `json:"address,omitempty"`
	ContactNo      *string `json:"contact_no,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type CreateCompanyRequest struct {
	Name           string  `json:"name"`
	RegistrationNo string  `json:"registration_no"`
	Address        *string `json:"address,omitempty"`
	ContactNo      *string `json:"contact_no,omitempty"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.RegistrationNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "registration_no",
			Message: "registration_no is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateCompanyRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name,omitempty"`
	Address   *string `json:"address,omitempty"`
	ContactNo *string `json:"contact_no,omitempty"`
}

type Filter struct {
	Search *string `json:"search,omitempty"`

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

type ListCompaniesResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Companies  []CompanyResponse `json:"companies"`
}
