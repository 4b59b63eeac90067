package org

import "context"

// AssignmentRepository - interface for the employee_managers and employee_hrs
// join tables.
type AssignmentRepository interface {
	EmployeesOfManager(ctx context.Context, managerID string) ([]string, error)
	EmployeesOfHR(ctx context.Context, hrID string) ([]string, error)

	ManagersOfEmployee(ctx context.Context, employeeID string) ([]string, error)
	HRsOfEmployee(ctx context.Context, employeeID string) ([]string, error)

	AssignManager(ctx context.Context, employeeID, managerID string) error
	AssignHR(ctx context.Context, employeeID, hrID string) error
}

// Resolver answers "which employees does this actor scope over". It must be
// side-effect-free; an actor with no assignments resolves to an empty set.
type Resolver interface {
	Employees(ctx context.Context, kind ScopeKind, scopeID string) ([]string, error)
}
