package org

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklane/hrms-backend-go/internal/domain/org"
)

type fakeAssignmentRepo struct {
	employeesOfManagerFn func(ctx context.Context, managerID string) ([]string, error)
	employeesOfHRFn      func(ctx context.Context, hrID string) ([]string, error)
	assignManagerFn      func(ctx context.Context, employeeID, managerID string) error
	assignHRFn           func(ctx context.Context, employeeID, hrID string) error
}

func (f *fakeAssignmentRepo) EmployeesOfManager(ctx context.Context, managerID string) ([]string, error) {
	return f.employeesOfManagerFn(ctx, managerID)
}

func (f *fakeAssignmentRepo) EmployeesOfHR(ctx context.Context, hrID string) ([]string, error) {
	return f.employeesOfHRFn(ctx, hrID)
}

func (f *fakeAssignmentRepo) ManagersOfEmployee(ctx context.Context, employeeID string) ([]string, error) {
	return nil, nil
}

func (f *fakeAssignmentRepo) HRsOfEmployee(ctx context.Context, employeeID string) ([]string, error) {
	return nil, nil
}

func (f *fakeAssignmentRepo) AssignManager(ctx context.Context, employeeID, managerID string) error {
	return f.assignManagerFn(ctx, employeeID, managerID)
}

func (f *fakeAssignmentRepo) AssignHR(ctx context.Context, employeeID, hrID string) error {
	return f.assignHRFn(ctx, employeeID, hrID)
}

func TestEmployeesDispatchesByScope(t *testing.T) {
	repo := &fakeAssignmentRepo{
		employeesOfManagerFn: func(ctx context.Context, managerID string) ([]string, error) {
			assert.Equal(t, "mgr-1", managerID)
			return []string{"emp-1", "emp-2"}, nil
		},
		employeesOfHRFn: func(ctx context.Context, hrID string) ([]string, error) {
			assert.Equal(t, "hr-1", hrID)
			return []string{"emp-3"}, nil
		},
	}
	svc := NewService(repo)

	team, err := svc.Employees(context.Background(), org.ScopeManager, "mgr-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"emp-1", "emp-2"}, team)

	scoped, err := svc.Employees(context.Background(), org.ScopeHR, "hr-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"emp-3"}, scoped)
}

func TestEmployeesRejectsUnknownScope(t *testing.T) {
	svc := NewService(&fakeAssignmentRepo{})

	_, err := svc.Employees(context.Background(), org.ScopeKind("Admin"), "x")
	assert.ErrorIs(t, err, org.ErrInvalidScope)
}

func TestEmployeesEmptyScope(t *testing.T) {
	repo := &fakeAssignmentRepo{
		employeesOfManagerFn: func(ctx context.Context, managerID string) ([]string, error) {
			return nil, nil
		},
	}
	svc := NewService(repo)

	team, err := svc.Employees(context.Background(), org.ScopeManager, "mgr-without-team")
	require.NoError(t, err)
	assert.Empty(t, team)
}

func TestAssign(t *testing.T) {
	var gotEmployee, gotManager string
	repo := &fakeAssignmentRepo{
		assignManagerFn: func(ctx context.Context, employeeID, managerID string) error {
			gotEmployee, gotManager = employeeID, managerID
			return nil
		},
	}
	svc := NewService(repo)

	err := svc.Assign(context.Background(), org.AssignRequest{
		EmployeeID: "emp-1",
		AssigneeID: "mgr-1",
		Scope:      "Manager",
	})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", gotEmployee)
	assert.Equal(t, "mgr-1", gotManager)
}

func TestAssignRejectsSelf(t *testing.T) {
	svc := NewService(&fakeAssignmentRepo{})

	err := svc.Assign(context.Background(), org.AssignRequest{
		EmployeeID: "emp-1",
		AssigneeID: "emp-1",
		Scope:      "HR",
	})
	assert.ErrorIs(t, err, org.ErrSelfAssignment)
}

func TestAssignRejectsUnknownScope(t *testing.T) {
	svc := NewService(&fakeAssignmentRepo{})

	err := svc.Assign(context.Background(), org.AssignRequest{
		EmployeeID: "emp-1",
		AssigneeID: "emp-2",
		Scope:      "Lead",
	})
	assert.ErrorIs(t, err, org.ErrInvalidScope)
}
