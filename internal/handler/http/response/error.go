package response

import (
	"errors"
	"net/http"

	"github.com/frd-security/attendance-backend-go/internal/domain/attendance"
	"github.com/frd-security/attendance-backend-go/internal/domain/auth"
	"github.com/frd-security/attendance-backend-go/internal/domain/company"
	"github.com/frd-security/attendance-backend-go/internal/domain/shift"
	"github.com/frd-security/attendance-backend-go/internal/domain/staff"
	"github.com/frd-security/attendance-backend-go/internal/domain/user"
	"github.com/frd-security/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Rest-rule refusals carry the earliest permissible start time in
	// their message.
	var restErr *shift.RestNotElapsedError
	if errors.As(err, &restErr) {
		UnprocessableEntity(w, "REST_PERIOD_NOT_ELAPSED", restErr.Error())
		return
	}

	switch {
	// Shift validation
	case errors.Is(err, shift.ErrShiftExceedsPostRestCap):
		UnprocessableEntity(w, "POST_REST_SHIFT_TOO_LONG", err.Error())

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Attendance workflow errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNotEligible):
		Conflict(w, "Approval level is not eligible for a decision")
	case errors.Is(err, attendance.ErrAlreadyProcessed):
		Conflict(w, "Approval level has already been decided")
	case errors.Is(err, attendance.ErrCommentRequired):
		UnprocessableEntity(w, "COMMENT_REQUIRED", "A rejection comment is required")
	case errors.Is(err, attendance.ErrInvalidLevel):
		BadRequest(w, "Approval level must be between 1 and 3", nil)
	case errors.Is(err, attendance.ErrEmptyBatch):
		BadRequest(w, "At least one shift entry is required", nil)
	case errors.Is(err, attendance.ErrRoleNotPermitted):
		Forbidden(w, "Role is not permitted to perform this action")

	// Staff registry errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Security staff not found")
	case errors.Is(err, staff.ErrEmpIDExists):
		Conflict(w, "Employee ID already registered")

	// Company registry errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrRegistrationNoExists):
		Conflict(w, "Registration number already registered")
	case errors.Is(err, company.ErrCompanyHasActiveStaff):
		Conflict(w, "Company still has registered staff")
	case errors.Is(err, company.ErrCompanyAccessForbidden):
		Forbidden(w, "Record belongs to another company")

	// User management errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Unknown role", nil)
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrCompanyIDRequired):
		BadRequest(w, "Session has no company scope", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
