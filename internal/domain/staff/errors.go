package staff

import "errors"

var (
	ErrStaffNotFound = errors.New("security staff member not found")
	ErrEmpIDExists   = errors.New("service number already registered")
)
