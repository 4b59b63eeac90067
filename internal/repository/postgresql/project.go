package postgresql

import (
	"context"

	"github.com/worklane/hrms-backend-go/internal/domain/attendance"
	"github.com/worklane/hrms-backend-go/internal/pkg/database"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) attendance.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

func (r *projectRepositoryImpl) GetActiveByEmployee(ctx context.Context, employeeID string) ([]attendance.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.name, p.status, p.created_at
		FROM projects p
		JOIN employee_project_assignments epa ON epa.project_id = p.id
		WHERE epa.employee_id = $1 AND p.status = 'Active'
		ORDER BY p.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []attendance.Project
	for rows.Next() {
		var p attendance.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}
