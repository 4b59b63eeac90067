package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/worklane/hrms-backend-go/internal/domain/attendance"
	"github.com/worklane/hrms-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, employeeID string, date time.Time, action attendance.Action, hours float64) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, employee_id, date, action, hours, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $3, NOW(), NOW())
		ON CONFLICT (employee_id, date)
		DO UPDATE SET action = EXCLUDED.action, hours = EXCLUDED.hours, status = EXCLUDED.status, updated_at = NOW()
		RETURNING id
	`

	var id string
	if err := q.QueryRow(ctx, query, employeeID, date, action, hours).Scan(&id); err != nil {
		return "", fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return id, nil
}

func (r *attendanceRepositoryImpl) ReplaceProjectAllocations(ctx context.Context, attendanceID string, allocations []attendance.ProjectAllocation) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendance_projects WHERE attendance_id = $1`, attendanceID); err != nil {
		return fmt.Errorf("failed to clear attendance projects: %w", err)
	}

	query := `
		INSERT INTO attendance_projects (id, attendance_id, project_id, sub_task, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	for _, alloc := range allocations {
		if _, err := q.Exec(ctx, query, uuid.New().String(), attendanceID, alloc.ProjectID, alloc.SubTask); err != nil {
			return fmt.Errorf("failed to insert attendance project: %w", err)
		}
	}

	return nil
}

func (r *attendanceRepositoryImpl) GetRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.date, a.action, a.hours, a.status, ap.project_id, p.name, ap.sub_task
		FROM attendance a
		LEFT JOIN attendance_projects ap ON ap.attendance_id = a.id
		LEFT JOIN projects p ON p.id = ap.project_id
		WHERE a.employee_id = $1 AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date, ap.created_at
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.DayRecord
	for rows.Next() {
		var (
			date        time.Time
			action      attendance.Action
			hours       float64
			status      string
			projectID   *string
			projectName *string
			subTask     *string
		)
		if err := rows.Scan(&date, &action, &hours, &status, &projectID, &projectName, &subTask); err != nil {
			return nil, err
		}

		// Rows arrive date-ordered; allocations fold into the last record.
		if len(records) == 0 || !records[len(records)-1].Date.Equal(date) {
			records = append(records, attendance.DayRecord{Date: date, Action: action, Hours: hours, Status: status})
		}
		if projectID != nil {
			rec := &records[len(records)-1]
			alloc := attendance.ProjectAllocation{ProjectID: *projectID}
			if projectName != nil {
				alloc.ProjectName = *projectName
			}
			if subTask != nil {
				alloc.SubTask = *subTask
			}
			rec.Allocations = append(rec.Allocations, alloc)
		}
	}

	return records, rows.Err()
}

func (r *attendanceRepositoryImpl) CountActions(ctx context.Context, employeeIDs []string, from, to time.Time) ([]attendance.ActionCounts, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	// LEFT JOIN keeps employees with no attendance rows in the result.
	query := `
		SELECT e.id, e.name, e.email,
			   COUNT(*) FILTER (WHERE a.action = 'Present') AS present,
			   COUNT(*) FILTER (WHERE a.action = 'WFH') AS wfh,
			   COUNT(*) FILTER (WHERE a.action = 'Leave') AS leave
		FROM employees e
		LEFT JOIN attendance a
			ON a.employee_id = e.id AND a.date >= $2 AND a.date < $3
		WHERE e.id = ANY($1)
		GROUP BY e.id, e.name, e.email
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, employeeIDs, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []attendance.ActionCounts
	for rows.Next() {
		var c attendance.ActionCounts
		if err := rows.Scan(&c.EmployeeID, &c.EmployeeName, &c.EmployeeEmail, &c.Present, &c.WFH, &c.Leave); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}
