package user

type Permission string

const (
	// Attendance workflow
	PermissionAttendanceSubmit        Permission = "attendance.submit"
	PermissionAttendanceViewAll       Permission = "attendance.view_all"
	PermissionAttendanceViewCompany   Permission = "attendance.view_company"
	PermissionAttendanceApproveLevel1 Permission = "attendance.approve_level_1"
	PermissionAttendanceApproveLevel2 Permission = "attendance.approve_level_2"
	PermissionAttendanceApproveLevel3 Permission = "attendance.approve_level_3"

	// Staff registry
	PermissionStaffViewOwn Permission = "staff.view_own"
	PermissionStaffManage  Permission = "staff.manage"

	// Company registry
	PermissionCompanyView   Permission = "company.view"
	PermissionCompanyManage Permission = "company.manage"

	// User management
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		// SuperAdmin has all permissions
		PermissionAttendanceSubmit,
		PermissionAttendanceViewAll,
		PermissionAttendanceViewCompany,
		PermissionAttendanceApproveLevel1,
		PermissionAttendanceApproveLevel2,
		PermissionAttendanceApproveLevel3,
		PermissionStaffViewOwn,
		PermissionStaffManage,
		PermissionCompanyView,
		PermissionCompanyManage,
		PermissionUserManage,
	},
	RoleApprovalOfficer01: {
		PermissionAttendanceViewAll,
		PermissionAttendanceApproveLevel1,
	},
	RoleApprovalOfficer02: {
		PermissionAttendanceViewAll,
		PermissionAttendanceApproveLevel2,
	},
	RoleApprovalOfficer03: {
		PermissionAttendanceViewAll,
		PermissionAttendanceApproveLevel3,
	},
	RolePatrolLeader: {
		PermissionAttendanceSubmit,
		PermissionStaffViewOwn,
	},
	RoleCompanyUser: {
		PermissionAttendanceViewCompany,
		PermissionCompanyView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}

var approvalLevelPermissions = [...]Permission{
	1: PermissionAttendanceApproveLevel1,
	2: PermissionAttendanceApproveLevel2,
	3: PermissionAttendanceApproveLevel3,
}

// CanApproveAtLevel checks if a role may act on the given approval level.
// Each officer role maps to exactly one level; SuperAdmin may act on all.
func CanApproveAtLevel(role Role, level int) bool {
	if level < 1 || level > 3 {
		return false
	}
	return HasPermission(role, approvalLevelPermissions[level])
}

// ApprovalLevel returns the single approval level an officer role acts on.
// The second return is false for roles that are not approval officers;
// SuperAdmin is not bound to one level and also returns false here.
func ApprovalLevel(role Role) (int, bool) {
	switch role {
	case RoleApprovalOfficer01:
		return 1, true
	case RoleApprovalOfficer02:
		return 2, true
	case RoleApprovalOfficer03:
		return 3, true
	}
	return 0, false
}
