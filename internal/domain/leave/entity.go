package leave

import "time"

// Decision is the verdict applied by a manager or HR actor. A field still at
// Pending has not been decided.
type Decision string

const (
	DecisionPending  Decision = "Pending"
	DecisionApproved Decision = "Approved"
	DecisionRejected Decision = "Rejected"
)

// ValidDecision reports whether d is an actionable verdict. Pending is a
// state, not a verdict, so it is not accepted here.
func ValidDecision(d Decision) bool {
	return d == DecisionApproved || d == DecisionRejected
}

// LeaveRequest entity. ManagerStatus and HRStatus track the two approval
// stages independently; Status is the final outcome. Status only leaves
// Pending when the manager rejects or HR decides, and once it does the
// request is terminal.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  string
	Reason     string

	StartDate time.Time
	EndDate   time.Time
	NoOfDays  int

	ManagerStatus Decision
	HRStatus      Decision
	Status        Decision

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for listings
	EmployeeName  *string
	EmployeeEmail *string
}

// Terminal reports whether the request has reached a final state.
func (r LeaveRequest) Terminal() bool {
	return r.Status != DecisionPending
}

// LeaveBalance entity, one row per employee. Counters are replaced wholesale
// by HR; approvals do not decrement them.
type LeaveBalance struct {
	EmployeeID   string
	SickLeaves   int
	CasualLeaves int
	PaidLeaves   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DaysInclusive returns the number of calendar days from start to end,
// counting both endpoints.
func DaysInclusive(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}
