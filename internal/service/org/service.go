package org

import (
	"context"
	"fmt"

	"github.com/worklane/hrms-backend-go/internal/domain/org"
)

// Service resolves actor scopes from the employee_managers and employee_hrs
// join tables and records new assignments.
type Service struct {
	org.AssignmentRepository
}

func NewService(assignmentRepository org.AssignmentRepository) *Service {
	return &Service{AssignmentRepository: assignmentRepository}
}

// Employees implements org.Resolver. Only the join tables are consulted; the
// primary slots on the master record do not grant scope.
func (s *Service) Employees(ctx context.Context, kind org.ScopeKind, scopeID string) ([]string, error) {
	switch kind {
	case org.ScopeManager:
		return s.EmployeesOfManager(ctx, scopeID)
	case org.ScopeHR:
		return s.EmployeesOfHR(ctx, scopeID)
	}
	return nil, org.ErrInvalidScope
}

func (s *Service) Assign(ctx context.Context, req org.AssignRequest) error {
	if req.EmployeeID == req.AssigneeID {
		return org.ErrSelfAssignment
	}

	switch org.ScopeKind(req.Scope) {
	case org.ScopeManager:
		if err := s.AssignManager(ctx, req.EmployeeID, req.AssigneeID); err != nil {
			return fmt.Errorf("failed to assign manager: %w", err)
		}
	case org.ScopeHR:
		if err := s.AssignHR(ctx, req.EmployeeID, req.AssigneeID); err != nil {
			return fmt.Errorf("failed to assign HR: %w", err)
		}
	default:
		return org.ErrInvalidScope
	}

	return nil
}
