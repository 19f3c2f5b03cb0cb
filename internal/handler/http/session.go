package http

import (
	"net/http"

	"github.com/frd-security/attendance-backend-go/internal/domain/attendance"
	"github.com/frd-security/attendance-backend-go/internal/domain/auth"
	"github.com/frd-security/attendance-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// sessionFromRequest builds the acting user's Session from the verified
// token claims. Handlers pass it explicitly into every service call; the
// service layer never reads claims itself.
func sessionFromRequest(r *http.Request) (attendance.Session, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return attendance.Session{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return attendance.Session{}, auth.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok || !user.Role(roleStr).Valid() {
		return attendance.Session{}, auth.ErrInvalidToken
	}

	session := attendance.Session{
		UserID: userID,
		Role:   user.Role(roleStr),
	}

	if companyID, ok := claims["company_id"].(string); ok && companyID != "" {
		session.CompanyID = &companyID
	}

	return session, nil
}
