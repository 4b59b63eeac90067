package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidDateRange     = errors.New("start date must not be after end date")
	ErrInvalidDecision      = errors.New("decision must be Approved or Rejected")

	// State machine violations
	ErrAlreadyDecided          = errors.New("leave request has already been decided at this stage")
	ErrAwaitingManagerDecision = errors.New("leave request has not been approved by a manager")

	// Balance errors
	ErrBalanceNotFound = errors.New("leave balance not found")
	ErrBalanceExists   = errors.New("leave balance already exists")
)
