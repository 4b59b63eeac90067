package employee

import "context"

// EmployeeService defines the directory and profile operations.
type EmployeeService interface {
	// ListEmployees returns the full directory with assignment names.
	ListEmployees(ctx context.Context) ([]DirectoryEntry, error)

	// ListManagers / ListHRs return id/name pairs for assignment pickers.
	ListManagers(ctx context.Context) ([]NameRef, error)
	ListHRs(ctx context.Context) ([]NameRef, error)

	// GetProfile returns the merged profile for one employee.
	GetProfile(ctx context.Context, employeeID string) (Profile, error)

	// UpdateProfile edits the employee's master-record details.
	UpdateProfile(ctx context.Context, employeeID string, req UpdateProfileRequest) error
}
