package attendance

import "errors"

var (
	ErrInvalidAction      = errors.New("invalid attendance action")
	ErrAllocationMismatch = errors.New("project and sub-task lists must have the same length")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
