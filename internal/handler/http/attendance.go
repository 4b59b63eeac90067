package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/worklane/hrms-backend-go/internal/domain/attendance"
	"github.com/worklane/hrms-backend-go/internal/domain/org"
	"github.com/worklane/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	SubmitBatch(w http.ResponseWriter, r *http.Request)
	Weekly(w http.ResponseWriter, r *http.Request)
	Daily(w http.ResponseWriter, r *http.Request)
	ManagerTeamSummary(w http.ResponseWriter, r *http.Request)
	HRTeamSummary(w http.ResponseWriter, r *http.Request)
	ActiveProjects(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Record implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordDayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

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

	if err := h.attendanceService.RecordDay(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded", nil)
}

// SubmitBatch implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SubmitBatch(w http.ResponseWriter, r *http.Request) {
	var req attendance.SubmitBatchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitBatch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}
	for i := range req.Entries {
		req.Entries[i].EmployeeID = employeeID
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.attendanceService.SubmitBatch(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance batch recorded", nil)
}

// Weekly implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	result, err := h.attendanceService.WeeklySummary(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Daily implements AttendanceHandler. Defaults to the current month.
func (h *AttendanceHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(w, "month must be between 1 and 12", nil)
			return
		}
		month = parsed
	}

	result, err := h.attendanceService.DailySummary(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ManagerTeamSummary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ManagerTeamSummary(w http.ResponseWriter, r *http.Request) {
	h.teamSummary(w, r, org.ScopeManager)
}

// HRTeamSummary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) HRTeamSummary(w http.ResponseWriter, r *http.Request) {
	h.teamSummary(w, r, org.ScopeHR)
}

func (h *AttendanceHandlerImpl) teamSummary(w http.ResponseWriter, r *http.Request, kind org.ScopeKind) {
	scopeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	var month, year int
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "month must be a number", nil)
			return
		}
		month = parsed
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}

	result, err := h.attendanceService.TeamSummary(r.Context(), scopeID, kind, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ActiveProjects implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ActiveProjects(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	result, err := h.attendanceService.ActiveProjects(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
