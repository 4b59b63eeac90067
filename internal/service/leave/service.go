package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/worklane/hrms-backend-go/internal/domain/leave"
	"github.com/worklane/hrms-backend-go/internal/domain/org"
	"github.com/worklane/hrms-backend-go/internal/pkg/database"
)

type Service struct {
	tx       database.TxManager
	resolver org.Resolver
	leave.LeaveRequestRepository
	leave.LeaveBalanceRepository
}

func NewService(tx database.TxManager, resolver org.Resolver, requestRepository leave.LeaveRequestRepository, balanceRepository leave.LeaveBalanceRepository) *Service {
	return &Service{
		tx:                     tx,
		resolver:               resolver,
		LeaveRequestRepository: requestRepository,
		LeaveBalanceRepository: balanceRepository,
	}
}

func (s *Service) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}

	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	if startDate.After(endDate) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	request := leave.LeaveRequest{
		EmployeeID:    req.EmployeeID,
		LeaveType:     req.LeaveType,
		Reason:        req.Reason,
		StartDate:     startDate,
		EndDate:       endDate,
		NoOfDays:      leave.DaysInclusive(startDate, endDate),
		ManagerStatus: leave.DecisionPending,
		HRStatus:      leave.DecisionPending,
		Status:        leave.DecisionPending,
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toResponse(created), nil
}

// ManagerDecide applies the first-stage verdict. The request row is locked
// for the duration of the transaction so concurrent decisions serialize;
// whichever transaction loses the race sees a decided request and fails.
func (s *Service) ManagerDecide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	if !leave.ValidDecision(req.Decision) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDecision
	}

	var updated leave.LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := s.LeaveRequestRepository.GetByIDForUpdate(ctx, req.RequestID)
		if err != nil {
			return err
		}

		if request.ManagerStatus != leave.DecisionPending {
			return leave.ErrAlreadyDecided
		}

		request.ManagerStatus = req.Decision
		if req.Decision == leave.DecisionRejected {
			request.Status = leave.DecisionRejected
		}

		if err := s.LeaveRequestRepository.UpdateDecision(ctx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		updated = request
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toResponse(updated), nil
}

// HRDecide applies the final verdict. Only requests the manager approved and
// HR has not yet decided are eligible.
func (s *Service) HRDecide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	if !leave.ValidDecision(req.Decision) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDecision
	}

	var updated leave.LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := s.LeaveRequestRepository.GetByIDForUpdate(ctx, req.RequestID)
		if err != nil {
			return err
		}

		if request.ManagerStatus != leave.DecisionApproved {
			return leave.ErrAwaitingManagerDecision
		}
		if request.HRStatus != leave.DecisionPending {
			return leave.ErrAlreadyDecided
		}

		request.HRStatus = req.Decision
		request.Status = req.Decision

		if err := s.LeaveRequestRepository.UpdateDecision(ctx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		updated = request
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toResponse(updated), nil
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

func (s *Service) ListForManager(ctx context.Context, managerID string, statusFilter *leave.Decision) ([]leave.LeaveRequestResponse, error) {
	employeeIDs, err := s.resolver.Employees(ctx, org.ScopeManager, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve team: %w", err)
	}

	requests, err := s.LeaveRequestRepository.ListForManager(ctx, employeeIDs, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

func (s *Service) ListForHR(ctx context.Context, hrID string, statusFilter *leave.Decision) ([]leave.LeaveRequestResponse, error) {
	employeeIDs, err := s.resolver.Employees(ctx, org.ScopeHR, hrID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HR scope: %w", err)
	}

	requests, err := s.LeaveRequestRepository.ListForHR(ctx, employeeIDs, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

func (s *Service) ListPendingForManager(ctx context.Context, managerID string) ([]leave.LeaveRequestResponse, error) {
	pending := leave.DecisionPending
	return s.ListForManager(ctx, managerID, &pending)
}

func (s *Service) ListPendingForHR(ctx context.Context, hrID string) ([]leave.LeaveRequestResponse, error) {
	pending := leave.DecisionPending
	return s.ListForHR(ctx, hrID, &pending)
}

func (s *Service) InitBalance(ctx context.Context, employeeID string) (leave.LeaveBalanceResponse, error) {
	balance, err := s.LeaveBalanceRepository.Create(ctx, employeeID)
	if err != nil {
		return leave.LeaveBalanceResponse{}, err
	}
	return toBalanceResponse(balance), nil
}

func (s *Service) GetBalance(ctx context.Context, employeeID string) (leave.LeaveBalanceResponse, error) {
	balance, err := s.LeaveBalanceRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return leave.LeaveBalanceResponse{}, err
	}
	return toBalanceResponse(balance), nil
}

func (s *Service) SetBalance(ctx context.Context, req leave.SetBalanceRequest) (leave.LeaveBalanceResponse, error) {
	balance, err := s.LeaveBalanceRepository.Replace(ctx, req.EmployeeID, req.SickLeaves, req.CasualLeaves, req.PaidLeaves)
	if err != nil {
		return leave.LeaveBalanceResponse{}, err
	}
	return toBalanceResponse(balance), nil
}

func toResponse(request leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:            request.ID,
		EmployeeID:    request.EmployeeID,
		EmployeeName:  request.EmployeeName,
		EmployeeEmail: request.EmployeeEmail,
		LeaveType:     request.LeaveType,
		Reason:        request.Reason,
		StartDate:     request.StartDate.Format("2006-01-02"),
		EndDate:       request.EndDate.Format("2006-01-02"),
		NoOfDays:      request.NoOfDays,
		ManagerStatus: request.ManagerStatus,
		HRStatus:      request.HRStatus,
		Status:        request.Status,
		UpdatedAt:     request.UpdatedAt,
	}
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toResponse(request))
	}
	return responses
}

func toBalanceResponse(balance leave.LeaveBalance) leave.LeaveBalanceResponse {
	return leave.LeaveBalanceResponse{
		EmployeeID:   balance.EmployeeID,
		SickLeaves:   balance.SickLeaves,
		CasualLeaves: balance.CasualLeaves,
		PaidLeaves:   balance.PaidLeaves,
		UpdatedAt:    balance.UpdatedAt,
	}
}
