package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/worklane/hrms-backend-go/internal/domain/org"
	"github.com/worklane/hrms-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) org.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

func (r *assignmentRepositoryImpl) listIDs(ctx context.Context, query, id string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		ids = append(ids, v)
	}

	return ids, rows.Err()
}

func (r *assignmentRepositoryImpl) EmployeesOfManager(ctx context.Context, managerID string) ([]string, error) {
	return r.listIDs(ctx, `
		SELECT employee_id FROM employee_managers WHERE manager_id = $1
	`, managerID)
}

func (r *assignmentRepositoryImpl) EmployeesOfHR(ctx context.Context, hrID string) ([]string, error) {
	return r.listIDs(ctx, `
		SELECT employee_id FROM employee_hrs WHERE hr_id = $1
	`, hrID)
}

func (r *assignmentRepositoryImpl) ManagersOfEmployee(ctx context.Context, employeeID string) ([]string, error) {
	return r.listIDs(ctx, `
		SELECT manager_id FROM employee_managers WHERE employee_id = $1
	`, employeeID)
}

func (r *assignmentRepositoryImpl) HRsOfEmployee(ctx context.Context, employeeID string) ([]string, error) {
	return r.listIDs(ctx, `
		SELECT hr_id FROM employee_hrs WHERE employee_id = $1
	`, employeeID)
}

func (r *assignmentRepositoryImpl) AssignManager(ctx context.Context, employeeID, managerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_managers (employee_id, manager_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (employee_id, manager_id) DO NOTHING
	`

	_, err := q.Exec(ctx, query, employeeID, managerID)
	return mapForeignKeyErr(err)
}

func (r *assignmentRepositoryImpl) AssignHR(ctx context.Context, employeeID, hrID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_hrs (employee_id, hr_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (employee_id, hr_id) DO NOTHING
	`

	_, err := q.Exec(ctx, query, employeeID, hrID)
	return mapForeignKeyErr(err)
}

// 23503 is the PostgreSQL foreign_key_violation code.
func mapForeignKeyErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return org.ErrUnknownEmployee
	}
	return err
}
