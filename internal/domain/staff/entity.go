package staff

import "time"

// Staff is one security officer. EmpID is the service number attendance
// records refer to; SupervisorNo is the patrol leader responsible for the
// officer's entries.
type Staff struct {
	EmpID        string
	Name         string
	SupervisorNo string
	CompanyID    string
	ContactNo    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
