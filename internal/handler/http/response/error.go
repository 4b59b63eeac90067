package response

import (
	"errors"
	"net/http"

	"github.com/worklane/hrms-backend-go/internal/domain/attendance"
	"github.com/worklane/hrms-backend-go/internal/domain/auth"
	"github.com/worklane/hrms-backend-go/internal/domain/employee"
	"github.com/worklane/hrms-backend-go/internal/domain/leave"
	"github.com/worklane/hrms-backend-go/internal/domain/org"
	"github.com/worklane/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidOTP):
		Unauthorized(w, "Invalid or expired OTP")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailNotFound):
		NotFound(w, "Email not found")

	// Org domain errors
	case errors.Is(err, org.ErrInvalidScope):
		BadRequest(w, "Scope must be Manager or HR", nil)
	case errors.Is(err, org.ErrSelfAssignment):
		BadRequest(w, "An employee cannot be assigned to themselves", nil)
	case errors.Is(err, org.ErrUnknownEmployee):
		NotFound(w, "Employee or assignee not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, "Decision must be Approved or Rejected", nil)
	case errors.Is(err, leave.ErrAlreadyDecided):
		Conflict(w, "Leave request has already been decided at this stage")
	case errors.Is(err, leave.ErrAwaitingManagerDecision):
		Conflict(w, "Leave request has not been approved by a manager")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrBalanceExists):
		Conflict(w, "Leave balance already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidAction):
		BadRequest(w, "Action must be one of Present, WFH, Leave", nil)
	case errors.Is(err, attendance.ErrAllocationMismatch):
		BadRequest(w, "Project and sub-task lists must have the same length", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
