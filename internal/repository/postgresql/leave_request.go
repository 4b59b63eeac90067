package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklane/hrms-backend-go/internal/domain/leave"
	"github.com/worklane/hrms-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, reason,
			start_date, end_date, no_of_days,
			manager_status, hr_status, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5, $6,
			$7, $8, $9,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveType, request.Reason,
		request.StartDate, request.EndDate, request.NoOfDays,
		request.ManagerStatus, request.HRStatus, request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) getByID(ctx context.Context, id string, forUpdate bool) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, reason,
			   start_date, end_date, no_of_days,
			   manager_status, hr_status, status,
			   created_at, updated_at
		FROM leave_requests
		WHERE id = $1
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.Reason,
		&req.StartDate, &req.EndDate, &req.NoOfDays,
		&req.ManagerStatus, &req.HRStatus, &req.Status,
		&req.CreatedAt, &req.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return req, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.getByID(ctx, id, false)
}

func (r *leaveRequestRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.getByID(ctx, id, true)
}

func (r *leaveRequestRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, reason,
			   start_date, end_date, no_of_days,
			   manager_status, hr_status, status,
			   created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveType, &req.Reason,
			&req.StartDate, &req.EndDate, &req.NoOfDays,
			&req.ManagerStatus, &req.HRStatus, &req.Status,
			&req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) listForEmployees(ctx context.Context, query string, employeeIDs []string, status *leave.Decision) ([]leave.LeaveRequest, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	args := []interface{}{employeeIDs}
	if status != nil {
		args = append(args, *status)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		var employeeName, employeeEmail string
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveType, &req.Reason,
			&req.StartDate, &req.EndDate, &req.NoOfDays,
			&req.ManagerStatus, &req.HRStatus, &req.Status,
			&req.CreatedAt, &req.UpdatedAt,
			&employeeName, &employeeEmail,
		)
		if err != nil {
			return nil, err
		}
		req.EmployeeName = &employeeName
		req.EmployeeEmail = &employeeEmail
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

const listColumns = `
	SELECT lr.id, lr.employee_id, lr.leave_type, lr.reason,
		   lr.start_date, lr.end_date, lr.no_of_days,
		   lr.manager_status, lr.hr_status, lr.status,
		   lr.created_at, lr.updated_at,
		   e.name AS employee_name,
		   e.company_email AS employee_email
	FROM leave_requests lr
	JOIN employees e ON lr.employee_id = e.id
`

func (r *leaveRequestRepositoryImpl) ListForManager(ctx context.Context, employeeIDs []string, managerStatus *leave.Decision) ([]leave.LeaveRequest, error) {
	query := listColumns + `
		WHERE lr.employee_id = ANY($1)
	`
	if managerStatus != nil {
		query += " AND lr.manager_status = $2"
	}
	query += " ORDER BY lr.created_at DESC"

	return r.listForEmployees(ctx, query, employeeIDs, managerStatus)
}

func (r *leaveRequestRepositoryImpl) ListForHR(ctx context.Context, employeeIDs []string, hrStatus *leave.Decision) ([]leave.LeaveRequest, error) {
	// HR only sees requests that cleared the manager stage.
	query := listColumns + `
		WHERE lr.employee_id = ANY($1) AND lr.manager_status = 'Approved'
	`
	if hrStatus != nil {
		query += " AND lr.hr_status = $2"
	}
	query += " ORDER BY lr.created_at DESC"

	return r.listForEmployees(ctx, query, employeeIDs, hrStatus)
}

func (r *leaveRequestRepositoryImpl) UpdateDecision(ctx context.Context, request leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET manager_status = $1, hr_status = $2, status = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		request.ManagerStatus, request.HRStatus, request.Status, request.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to update decision for leave request %s: %w", request.ID, err)
	}
	return nil
}
