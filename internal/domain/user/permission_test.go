package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{
		RoleSuperAdmin, RoleApprovalOfficer01, RoleApprovalOfficer02,
		RoleApprovalOfficer03, RolePatrolLeader, RoleCompanyUser,
	} {
		assert.True(t, role.Valid(), role)
	}

	assert.False(t, Role("").Valid())
	assert.False(t, Role("Admin").Valid())
	// Membership check, not prefix matching.
	assert.False(t, Role("ApprovalOfficer").Valid())
	assert.False(t, Role("ApprovalOfficer04").Valid())
}

func TestCanApproveAtLevel(t *testing.T) {
	tests := []struct {
		role  Role
		level int
		want  bool
	}{
		{RoleApprovalOfficer01, 1, true},
		{RoleApprovalOfficer01, 2, false},
		{RoleApprovalOfficer01, 3, false},
		{RoleApprovalOfficer02, 1, false},
		{RoleApprovalOfficer02, 2, true},
		{RoleApprovalOfficer02, 3, false},
		{RoleApprovalOfficer03, 3, true},
		{RoleApprovalOfficer03, 1, false},
		{RoleSuperAdmin, 1, true},
		{RoleSuperAdmin, 2, true},
		{RoleSuperAdmin, 3, true},
		{RolePatrolLeader, 1, false},
		{RoleCompanyUser, 1, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanApproveAtLevel(tt.role, tt.level),
			"role %s level %d", tt.role, tt.level)
	}

	assert.False(t, CanApproveAtLevel(RoleSuperAdmin, 0))
	assert.False(t, CanApproveAtLevel(RoleSuperAdmin, 4))
}

func TestApprovalLevel(t *testing.T) {
	level, ok := ApprovalLevel(RoleApprovalOfficer02)
	assert.True(t, ok)
	assert.Equal(t, 2, level)

	// SuperAdmin acts at any level, so it has no single level of its own.
	_, ok = ApprovalLevel(RoleSuperAdmin)
	assert.False(t, ok)

	_, ok = ApprovalLevel(RolePatrolLeader)
	assert.False(t, ok)
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RolePatrolLeader, PermissionAttendanceSubmit))
	assert.False(t, HasPermission(RolePatrolLeader, PermissionAttendanceViewAll))

	assert.True(t, HasPermission(RoleCompanyUser, PermissionAttendanceViewCompany))
	assert.False(t, HasPermission(RoleCompanyUser, PermissionAttendanceSubmit))

	assert.True(t, HasPermission(RoleSuperAdmin, PermissionUserManage))
	assert.False(t, HasPermission(Role("unknown"), PermissionAttendanceSubmit))
}
