package leave

import "context"

// LeaveService owns the two-stage approval workflow and the balance resource.
type LeaveService interface {
	// Apply creates a request in the Pending state with no_of_days computed
	// from the inclusive date range.
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveRequestResponse, error)

	// ManagerDecide applies the first-stage verdict. A rejection terminates
	// the request; an approval hands it to HR.
	ManagerDecide(ctx context.Context, req DecideLeaveRequest) (LeaveRequestResponse, error)

	// HRDecide applies the final verdict. Only manager-approved requests
	// that HR has not yet decided are eligible.
	HRDecide(ctx context.Context, req DecideLeaveRequest) (LeaveRequestResponse, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
	ListForManager(ctx context.Context, managerID string, statusFilter *Decision) ([]LeaveRequestResponse, error)
	ListForHR(ctx context.Context, hrID string, statusFilter *Decision) ([]LeaveRequestResponse, error)
	ListPendingForManager(ctx context.Context, managerID string) ([]LeaveRequestResponse, error)
	ListPendingForHR(ctx context.Context, hrID string) ([]LeaveRequestResponse, error)

	InitBalance(ctx context.Context, employeeID string) (LeaveBalanceResponse, error)
	GetBalance(ctx context.Context, employeeID string) (LeaveBalanceResponse, error)
	SetBalance(ctx context.Context, req SetBalanceRequest) (LeaveBalanceResponse, error)
}
