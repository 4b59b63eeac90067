package employee

import "time"

type Role string

const (
	RoleEmployee Role = "Employee"
	RoleManager  Role = "Manager"
	RoleHR       Role = "HR"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleEmployee, RoleManager, RoleHR:
		return true
	}
	return false
}

// Employee entity. Email is the personal address, CompanyEmail the one used
// for login. Role is fixed at onboarding.
type Employee struct {
	ID               string
	Name             string
	Email            string
	CompanyEmail     string
	Role             Role
	OnboardingStatus bool
	LoginStatus      bool
	LocationID       *string
	PasswordHash     string
	ResetOTP         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DirectoryEntry is an employee row with the aggregated names of every
// manager and HR assigned to them.
type DirectoryEntry struct {
	ID           string
	Name         string
	Email        string
	CompanyEmail string
	Role         Role
	Managers     []string
	HRs          []string
}

// Profile merges the master-record primary manager/HR slots with the extra
// assignments from the join tables. The two sources are kept separate on
// purpose; see the org package.
type Profile struct {
	ID               string
	Name             string
	Email            string
	CompanyEmail     string
	Role             Role
	OnboardingStatus bool
	Managers         []string
	HRs              []string
	Location         *string
}

// NameRef is a minimal id/name pair used by the manager and HR listings.
type NameRef struct {
	ID   string
	Name string
}
