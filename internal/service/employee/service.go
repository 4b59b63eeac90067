package employee

import (
	"context"
	"fmt"

	"github.com/worklane/hrms-backend-go/internal/domain/employee"
	"github.com/worklane/hrms-backend-go/internal/domain/org"
)

type Service struct {
	employee.EmployeeRepository
	assignments org.AssignmentRepository
}

func NewService(employeeRepository employee.EmployeeRepository, assignmentRepository org.AssignmentRepository) *Service {
	return &Service{
		EmployeeRepository: employeeRepository,
		assignments:        assignmentRepository,
	}
}

func (s *Service) ListEmployees(ctx context.Context) ([]employee.DirectoryEntry, error) {
	entries, err := s.EmployeeRepository.ListDirectory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return entries, nil
}

func (s *Service) ListManagers(ctx context.Context) ([]employee.NameRef, error) {
	return s.ListByRole(ctx, employee.RoleManager)
}

func (s *Service) ListHRs(ctx context.Context) ([]employee.NameRef, error) {
	return s.ListByRole(ctx, employee.RoleHR)
}

// GetProfile merges the master record's primary manager/HR slots with any
// extra assignments from the join tables, master slots first.
func (s *Service) GetProfile(ctx context.Context, employeeID string) (employee.Profile, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Profile{}, err
	}

	managers, hrs, err := s.EmployeeRepository.GetMasterAssignments(ctx, employeeID)
	if err != nil {
		return employee.Profile{}, err
	}

	extraManagers, err := s.assignments.ManagersOfEmployee(ctx, employeeID)
	if err != nil {
		return employee.Profile{}, fmt.Errorf("failed to get manager assignments: %w", err)
	}
	managers, err = s.appendNames(ctx, managers, extraManagers)
	if err != nil {
		return employee.Profile{}, err
	}

	extraHRs, err := s.assignments.HRsOfEmployee(ctx, employeeID)
	if err != nil {
		return employee.Profile{}, fmt.Errorf("failed to get HR assignments: %w", err)
	}
	hrs, err = s.appendNames(ctx, hrs, extraHRs)
	if err != nil {
		return employee.Profile{}, err
	}

	profile := employee.Profile{
		ID:               emp.ID,
		Name:             emp.Name,
		Email:            emp.Email,
		CompanyEmail:     emp.CompanyEmail,
		Role:             emp.Role,
		OnboardingStatus: emp.OnboardingStatus,
		Managers:         managers,
		HRs:              hrs,
	}

	if emp.LocationID != nil {
		location, err := s.EmployeeRepository.GetLocationName(ctx, *emp.LocationID)
		if err != nil {
			return employee.Profile{}, fmt.Errorf("failed to get location: %w", err)
		}
		if location != "" {
			profile.Location = &location
		}
	}

	return profile, nil
}

// UpdateProfile rewrites the editable master-record details for one
// employee. The repository surfaces ErrEmployeeNotFound when the id is
// unknown.
func (s *Service) UpdateProfile(ctx context.Context, employeeID string, req employee.UpdateProfileRequest) error {
	if err := s.EmployeeRepository.UpdateProfile(ctx, employeeID, req.Name, req.Email, req.LocationID); err != nil {
		return err
	}
	return nil
}

func (s *Service) appendNames(ctx context.Context, names []string, ids []string) ([]string, error) {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[name] = true
	}
	for _, id := range ids {
		emp, err := s.EmployeeRepository.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get assignee %s: %w", id, err)
		}
		if !seen[emp.Name] {
			seen[emp.Name] = true
			names = append(names, emp.Name)
		}
	}
	return names, nil
}
