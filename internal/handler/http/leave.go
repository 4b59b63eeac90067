package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/worklane/hrms-backend-go/internal/domain/leave"
	"github.com/worklane/hrms-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	MyRequests(w http.ResponseWriter, r *http.Request)

	GetBalance(w http.ResponseWriter, r *http.Request)
	InitBalance(w http.ResponseWriter, r *http.Request)
	SetBalance(w http.ResponseWriter, r *http.Request)

	ManagerPending(w http.ResponseWriter, r *http.Request)
	ManagerRequests(w http.ResponseWriter, r *http.Request)
	ManagerDecide(w http.ResponseWriter, r *http.Request)

	HRPending(w http.ResponseWriter, r *http.Request)
	HRRequests(w http.ResponseWriter, r *http.Request)
	HRDecide(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Apply implements LeaveHandler.
func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// The applicant is always the authenticated employee.
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}
	req.EmployeeID = employeeID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

// MyRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) MyRequests(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	result, err := h.leaveService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetBalance implements LeaveHandler.
func (h *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		var ok bool
		employeeID, ok = employeeIDFromRequest(r)
		if !ok {
			response.Forbidden(w, "Employee ID not found in token")
			return
		}
	}

	result, err := h.leaveService.GetBalance(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// InitBalance implements LeaveHandler.
func (h *LeaveHandlerImpl) InitBalance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID string `json:"employee_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("InitBalance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.EmployeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	result, err := h.leaveService.InitBalance(r.Context(), req.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave balance initialized", result)
}

// SetBalance implements LeaveHandler.
func (h *LeaveHandlerImpl) SetBalance(w http.ResponseWriter, r *http.Request) {
	var req leave.SetBalanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetBalance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.SetBalance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave balance updated", result)
}

// ManagerPending implements LeaveHandler.
func (h *LeaveHandlerImpl) ManagerPending(w http.ResponseWriter, r *http.Request) {
	managerID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	result, err := h.leaveService.ListPendingForManager(r.Context(), managerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ManagerRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) ManagerRequests(w http.ResponseWriter, r *http.Request) {
	managerID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	filter, err := statusFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.ListForManager(r.Context(), managerID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ManagerDecide implements LeaveHandler.
func (h *LeaveHandlerImpl) ManagerDecide(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeDecision(w, r)
	if !ok {
		return
	}

	result, err := h.leaveService.ManagerDecide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Decision recorded", result)
}

// HRPending implements LeaveHandler.
func (h *LeaveHandlerImpl) HRPending(w http.ResponseWriter, r *http.Request) {
	hrID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	result, err := h.leaveService.ListPendingForHR(r.Context(), hrID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// HRRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) HRRequests(w http.ResponseWriter, r *http.Request) {
	hrID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	filter, err := statusFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.ListForHR(r.Context(), hrID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// HRDecide implements LeaveHandler.
func (h *LeaveHandlerImpl) HRDecide(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeDecision(w, r)
	if !ok {
		return
	}

	result, err := h.leaveService.HRDecide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Decision recorded", result)
}

func decodeDecision(w http.ResponseWriter, r *http.Request) (leave.DecideLeaveRequest, bool) {
	var req leave.DecideLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Decision decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return req, false
	}

	// The request id comes from the URL, not the body.
	req.RequestID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return req, false
	}

	return req, true
}

func statusFilter(r *http.Request) (*leave.Decision, error) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil, nil
	}
	d := leave.Decision(raw)
	if d != leave.DecisionPending && !leave.ValidDecision(d) {
		return nil, leave.ErrInvalidDecision
	}
	return &d, nil
}
