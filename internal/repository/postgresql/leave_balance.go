package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/worklane/hrms-backend-go/internal/domain/leave"
	"github.com/worklane/hrms-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (employee_id, sick_leaves, casual_leaves, paid_leaves, created_at, updated_at)
		VALUES ($1, 0, 0, 0, NOW(), NOW())
		RETURNING employee_id, sick_leaves, casual_leaves, paid_leaves, created_at, updated_at
	`

	var balance leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&balance.EmployeeID, &balance.SickLeaves, &balance.CasualLeaves, &balance.PaidLeaves,
		&balance.CreatedAt, &balance.UpdatedAt,
	)
	if err != nil {
		// 23505 is the PostgreSQL unique_violation code.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leave.LeaveBalance{}, leave.ErrBalanceExists
		}
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}

func (r *leaveBalanceRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, sick_leaves, casual_leaves, paid_leaves, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1
	`

	var balance leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&balance.EmployeeID, &balance.SickLeaves, &balance.CasualLeaves, &balance.PaidLeaves,
		&balance.CreatedAt, &balance.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}

func (r *leaveBalanceRepositoryImpl) Replace(ctx context.Context, employeeID string, sick, casual, paid int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET sick_leaves = $1, casual_leaves = $2, paid_leaves = $3, updated_at = NOW()
		WHERE employee_id = $4
		RETURNING employee_id, sick_leaves, casual_leaves, paid_leaves, created_at, updated_at
	`

	var balance leave.LeaveBalance
	err := q.QueryRow(ctx, query, sick, casual, paid, employeeID).Scan(
		&balance.EmployeeID, &balance.SickLeaves, &balance.CasualLeaves, &balance.PaidLeaves,
		&balance.CreatedAt, &balance.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}
