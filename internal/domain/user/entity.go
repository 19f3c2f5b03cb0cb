package user

import "time"

type Role string

// Roles form a closed set. Anything outside it carries no capabilities;
// role checks are always set membership, never string prefix matching.
const (
	RoleSuperAdmin        Role = "SuperAdmin"        // System administrator - full access
	RoleApprovalOfficer01 Role = "ApprovalOfficer01" // First-level attendance approver
	RoleApprovalOfficer02 Role = "ApprovalOfficer02" // Second-level attendance approver
	RoleApprovalOfficer03 Role = "ApprovalOfficer03" // Final-level attendance approver
	RolePatrolLeader      Role = "PatrolLeader"      // Submits attendance for officers
	RoleCompanyUser       Role = "CompanyUser"       // Reads records for their own company
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleApprovalOfficer01, RoleApprovalOfficer02,
		RoleApprovalOfficer03, RolePatrolLeader, RoleCompanyUser:
		return true
	}
	return false
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CompanyID    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsSuperAdmin checks if user is the system administrator
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsCompanyUser checks if user belongs to a registered security company
func (u *User) IsCompanyUser() bool {
	return u.Role == RoleCompanyUser
}
