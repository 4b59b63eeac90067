package leave

import "context"

// LeaveRequestRepository - interface for the leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// GetByIDForUpdate acquires a row lock so concurrent decisions on the
	// same request serialize inside the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)

	GetByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// ListForManager returns requests of the given employees, optionally
	// filtered by manager_status.
	ListForManager(ctx context.Context, employeeIDs []string, managerStatus *Decision) ([]LeaveRequest, error)

	// ListForHR returns requests of the given employees that a manager has
	// already approved, optionally filtered by hr_status.
	ListForHR(ctx context.Context, employeeIDs []string, hrStatus *Decision) ([]LeaveRequest, error)

	// UpdateDecision persists the three status fields and updated_at.
	UpdateDecision(ctx context.Context, request LeaveRequest) error
}

// LeaveBalanceRepository - interface for the leave_balances table
type LeaveBalanceRepository interface {
	// Create initializes a zeroed balance row; ErrBalanceExists if one is
	// already present.
	Create(ctx context.Context, employeeID string) (LeaveBalance, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (LeaveBalance, error)

	// Replace overwrites all three counters; ErrBalanceNotFound if absent.
	Replace(ctx context.Context, employeeID string, sick, casual, paid int) (LeaveBalance, error)
}
