package employee

import "context"

// EmployeeRepository - interface for the employees table
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCompanyEmail(ctx context.Context, email string) (Employee, error)
	GetByPersonalEmail(ctx context.Context, email string) (Employee, error)
	ListByRole(ctx context.Context, role Role) ([]NameRef, error)

	// ListDirectory returns every employee with the names of their assigned
	// managers and HRs aggregated from the join tables.
	ListDirectory(ctx context.Context) ([]DirectoryEntry, error)

	// GetMasterAssignments returns the primary manager/HR names recorded on
	// the employee master record, in slot order.
	GetMasterAssignments(ctx context.Context, employeeID string) (managers []string, hrs []string, err error)

	// UpdateProfile rewrites the editable master-record fields. A nil
	// locationID keeps the stored location.
	UpdateProfile(ctx context.Context, id, name, email string, locationID *string) error

	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetResetOTP(ctx context.Context, id string, otp *string) error
	GetLocationName(ctx context.Context, locationID string) (string, error)
}
