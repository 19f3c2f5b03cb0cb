package company

import "time"

// Company is a registered security company whose officers appear in
// attendance records.
type Company struct {
	ID             string
	Name           string
	RegistrationNo string
	Address        *string
	ContactNo      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
