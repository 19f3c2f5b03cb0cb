package company

import "errors"

var (
	ErrCompanyNotFound        = errors.New("company not found")
	ErrRegistrationNoExists   = errors.New("registration number already exists")
	ErrCompanyHasActiveStaff  = errors.New("company still has registered staff")
	ErrCompanyAccessForbidden = errors.New("not allowed to access this company")
)
