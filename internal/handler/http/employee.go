package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/worklane/hrms-backend-go/internal/domain/employee"
	"github.com/worklane/hrms-backend-go/internal/domain/org"
	"github.com/worklane/hrms-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Managers(w http.ResponseWriter, r *http.Request)
	HRs(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
}

// Assigner records a manager or HR assignment.
type Assigner interface {
	Assign(ctx context.Context, req org.AssignRequest) error
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
	assigner        Assigner
}

func NewEmployeeHandler(employeeService employee.EmployeeService, assigner Assigner) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
		assigner:        assigner,
	}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]employee.DirectoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, employee.DirectoryEntryResponse{
			ID:           entry.ID,
			Name:         entry.Name,
			Email:        entry.Email,
			CompanyEmail: entry.CompanyEmail,
			Role:         string(entry.Role),
			Managers:     entry.Managers,
			HRs:          entry.HRs,
		})
	}

	response.Success(w, result)
}

// Managers implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Managers(w http.ResponseWriter, r *http.Request) {
	refs, err := h.employeeService.ListManagers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toNameRefResponses(refs))
}

// HRs implements EmployeeHandler.
func (h *EmployeeHandlerImpl) HRs(w http.ResponseWriter, r *http.Request) {
	refs, err := h.employeeService.ListHRs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toNameRefResponses(refs))
}

// Profile implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	profile, err := h.employeeService.GetProfile(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := employee.ProfileResponse{
		ID:           profile.ID,
		Name:         profile.Name,
		Email:        profile.Email,
		CompanyEmail: profile.CompanyEmail,
		Role:         string(profile.Role),
		Managers:     profile.Managers,
		HRs:          profile.HRs,
	}
	if profile.Location != nil {
		result.Location = *profile.Location
	}

	response.Success(w, result)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req employee.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.employeeService.UpdateProfile(r.Context(), employeeID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", nil)
}

// Assign implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req org.AssignRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Assign decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.assigner.Assign(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Assignment recorded", nil)
}

func toNameRefResponses(refs []employee.NameRef) []employee.NameRefResponse {
	result := make([]employee.NameRefResponse, 0, len(refs))
	for _, ref := range refs {
		result = append(result, employee.NameRefResponse{ID: ref.ID, Name: ref.Name})
	}
	return result
}
