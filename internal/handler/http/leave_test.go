package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklane/hrms-backend-go/internal/domain/leave"
)

type fakeLeaveService struct {
	managerDecideFn func(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error)
	hrDecideFn      func(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error)
}

func (f *fakeLeaveService) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	return leave.LeaveRequestResponse{}, nil
}

func (f *fakeLeaveService) ManagerDecide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	return f.managerDecideFn(ctx, req)
}

func (f *fakeLeaveService) HRDecide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	return f.hrDecideFn(ctx, req)
}

func (f *fakeLeaveService) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	return nil, nil
}

func (f *fakeLeaveService) ListForManager(ctx context.Context, managerID string, statusFilter *leave.Decision) ([]leave.LeaveRequestResponse, error) {
	return nil, nil
}

func (f *fakeLeaveService) ListForHR(ctx context.Context, hrID string, statusFilter *leave.Decision) ([]leave.LeaveRequestResponse, error) {
	return nil, nil
}

func (f *fakeLeaveService) ListPendingForManager(ctx context.Context, managerID string) ([]leave.LeaveRequestResponse, error) {
	return nil, nil
}

func (f *fakeLeaveService) ListPendingForHR(ctx context.Context, hrID string) ([]leave.LeaveRequestResponse, error) {
	return nil, nil
}

func (f *fakeLeaveService) InitBalance(ctx context.Context, employeeID string) (leave.LeaveBalanceResponse, error) {
	return leave.LeaveBalanceResponse{}, nil
}

func (f *fakeLeaveService) GetBalance(ctx context.Context, employeeID string) (leave.LeaveBalanceResponse, error) {
	return leave.LeaveBalanceResponse{}, nil
}

func (f *fakeLeaveService) SetBalance(ctx context.Context, req leave.SetBalanceRequest) (leave.LeaveBalanceResponse, error) {
	return leave.LeaveBalanceResponse{}, nil
}

func decisionRouter(handler LeaveHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/manager/{id}/decision", handler.ManagerDecide)
	r.Post("/hr/{id}/decision", handler.HRDecide)
	return r
}

func TestManagerDecideUsesURLParam(t *testing.T) {
	svc := &fakeLeaveService{
		managerDecideFn: func(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
			assert.Equal(t, "req-42", req.RequestID)
			assert.Equal(t, leave.DecisionApproved, req.Decision)
			return leave.LeaveRequestResponse{ID: req.RequestID, ManagerStatus: req.Decision}, nil
		},
	}
	router := decisionRouter(NewLeaveHandler(svc))

	body := `{"decision":"Approved"}`
	req := httptest.NewRequest(http.MethodPost, "/manager/req-42/decision", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestManagerDecideInvalidDecision(t *testing.T) {
	router := decisionRouter(NewLeaveHandler(&fakeLeaveService{}))

	body := `{"decision":"Pending"}`
	req := httptest.NewRequest(http.MethodPost, "/manager/req-42/decision", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDecideConflictMapsTo409(t *testing.T) {
	svc := &fakeLeaveService{
		managerDecideFn: func(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
			return leave.LeaveRequestResponse{}, leave.ErrAlreadyDecided
		},
		hrDecideFn: func(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
			return leave.LeaveRequestResponse{}, leave.ErrAwaitingManagerDecision
		},
	}
	router := decisionRouter(NewLeaveHandler(svc))

	body := `{"decision":"Approved"}`

	req := httptest.NewRequest(http.MethodPost, "/manager/req-42/decision", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/hr/req-42/decision", strings.NewReader(body))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "CONFLICT", resp.Error.Code)
}

func TestDecideNotFoundMapsTo404(t *testing.T) {
	svc := &fakeLeaveService{
		managerDecideFn: func(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
		},
	}
	router := decisionRouter(NewLeaveHandler(svc))

	body := `{"decision":"Rejected"}`
	req := httptest.NewRequest(http.MethodPost, "/manager/missing/decision", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
