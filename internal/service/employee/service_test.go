package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklane/hrms-backend-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	masters   map[string][2][]string
	locations map[string]string
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByCompanyEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmailNotFound
}

func (f *fakeEmployeeRepo) GetByPersonalEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmailNotFound
}

func (f *fakeEmployeeRepo) ListByRole(ctx context.Context, role employee.Role) ([]employee.NameRef, error) {
	var refs []employee.NameRef
	for _, emp := range f.employees {
		if emp.Role == role {
			refs = append(refs, employee.NameRef{ID: emp.ID, Name: emp.Name})
		}
	}
	return refs, nil
}

func (f *fakeEmployeeRepo) ListDirectory(ctx context.Context) ([]employee.DirectoryEntry, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) GetMasterAssignments(ctx context.Context, employeeID string) ([]string, []string, error) {
	m := f.masters[employeeID]
	return m[0], m[1], nil
}

func (f *fakeEmployeeRepo) UpdateProfile(ctx context.Context, id, name, email string, locationID *string) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Name = name
	emp.Email = email
	if locationID != nil {
		emp.LocationID = locationID
	}
	f.employees[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return nil
}

func (f *fakeEmployeeRepo) SetResetOTP(ctx context.Context, id string, otp *string) error {
	return nil
}

func (f *fakeEmployeeRepo) GetLocationName(ctx context.Context, locationID string) (string, error) {
	return f.locations[locationID], nil
}

type fakeAssignmentRepo struct {
	managers map[string][]string
	hrs      map[string][]string
}

func (f *fakeAssignmentRepo) EmployeesOfManager(ctx context.Context, managerID string) ([]string, error) {
	return nil, nil
}

func (f *fakeAssignmentRepo) EmployeesOfHR(ctx context.Context, hrID string) ([]string, error) {
	return nil, nil
}

func (f *fakeAssignmentRepo) ManagersOfEmployee(ctx context.Context, employeeID string) ([]string, error) {
	return f.managers[employeeID], nil
}

func (f *fakeAssignmentRepo) HRsOfEmployee(ctx context.Context, employeeID string) ([]string, error) {
	return f.hrs[employeeID], nil
}

func (f *fakeAssignmentRepo) AssignManager(ctx context.Context, employeeID, managerID string) error {
	return nil
}

func (f *fakeAssignmentRepo) AssignHR(ctx context.Context, employeeID, hrID string) error {
	return nil
}

func TestGetProfileMergesMasterAndAssignments(t *testing.T) {
	loc := "loc-1"
	employees := map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Ana", Email: "ana@mail.com", CompanyEmail: "ana@worklane.dev", Role: employee.RoleEmployee, LocationID: &loc},
		"mgr-2": {ID: "mgr-2", Name: "Mira", Role: employee.RoleManager},
		"hr-2":  {ID: "hr-2", Name: "Hugo", Role: employee.RoleHR},
	}
	repo := &fakeEmployeeRepo{
		employees: employees,
		masters: map[string][2][]string{
			// Master record already names Mira as a primary slot.
			"emp-1": {{"Mira"}, {"Hana"}},
		},
		locations: map[string]string{"loc-1": "Berlin"},
	}
	assignments := &fakeAssignmentRepo{
		managers: map[string][]string{"emp-1": {"mgr-2"}},
		hrs:      map[string][]string{"emp-1": {"hr-2"}},
	}
	svc := NewService(repo, assignments)

	profile, err := svc.GetProfile(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "Ana", profile.Name)
	// Mira appears once even though she is both a master slot and a
	// join-table assignment.
	assert.Equal(t, []string{"Mira"}, profile.Managers)
	assert.Equal(t, []string{"Hana", "Hugo"}, profile.HRs)
	require.NotNil(t, profile.Location)
	assert.Equal(t, "Berlin", *profile.Location)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewService(&fakeEmployeeRepo{employees: map[string]employee.Employee{}}, &fakeAssignmentRepo{})

	_, err := svc.GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateProfile(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Ana", Email: "ana@mail.com", Role: employee.RoleEmployee},
	}}
	svc := NewService(repo, &fakeAssignmentRepo{})

	loc := "loc-2"
	err := svc.UpdateProfile(context.Background(), "emp-1", employee.UpdateProfileRequest{
		Name:       "Ana Novak",
		Email:      "ana.novak@mail.com",
		LocationID: &loc,
	})
	require.NoError(t, err)

	updated := repo.employees["emp-1"]
	assert.Equal(t, "Ana Novak", updated.Name)
	assert.Equal(t, "ana.novak@mail.com", updated.Email)
	require.NotNil(t, updated.LocationID)
	assert.Equal(t, "loc-2", *updated.LocationID)
}

func TestUpdateProfileNotFound(t *testing.T) {
	svc := NewService(&fakeEmployeeRepo{employees: map[string]employee.Employee{}}, &fakeAssignmentRepo{})

	err := svc.UpdateProfile(context.Background(), "ghost", employee.UpdateProfileRequest{
		Name:  "Ghost",
		Email: "ghost@mail.com",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListManagersFiltersByRole(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Ana", Role: employee.RoleEmployee},
		"mgr-1": {ID: "mgr-1", Name: "Mira", Role: employee.RoleManager},
	}}
	svc := NewService(repo, &fakeAssignmentRepo{})

	refs, err := svc.ListManagers(context.Background())
	require.NoError(t, err)

	require.Len(t, refs, 1)
	assert.Equal(t, "Mira", refs[0].Name)
}
