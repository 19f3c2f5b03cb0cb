package attendance

import (
	"github.com/frd-security/attendance-backend-go/internal/domain/user"
)

// Session identifies the acting user for a workflow call. It is passed
// explicitly into every service operation that reads or mutates approval
// state; authorization never depends on ambient globals.
type Session struct {
	UserID    string
	Role      user.Role
	CompanyID *string
}

// CanActAtLevel reports whether the session's role may act on the given
// approval level.
func (s Session) CanActAtLevel(level int) bool {
	return user.CanApproveAtLevel(s.Role, level)
}
