package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklane/hrms-backend-go/internal/domain/employee"
	"github.com/worklane/hrms-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.name, e.email, e.company_email, e.role,
	e.onboarding_status, e.login_status, e.location_id,
	e.password_hash, e.reset_otp, e.created_at, e.updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.CompanyEmail, &emp.Role,
		&emp.OnboardingStatus, &emp.LoginStatus, &emp.LocationID,
		&emp.PasswordHash, &emp.ResetOTP, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE e.id = $1`

	return scanEmployee(q.QueryRow(ctx, query, id))
}

func (r *employeeRepositoryImpl) GetByCompanyEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE e.company_email = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err == employee.ErrEmployeeNotFound {
		return employee.Employee{}, employee.ErrEmailNotFound
	}
	return emp, err
}

func (r *employeeRepositoryImpl) GetByPersonalEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE e.email = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err == employee.ErrEmployeeNotFound {
		return employee.Employee{}, employee.ErrEmailNotFound
	}
	return emp, err
}

func (r *employeeRepositoryImpl) ListByRole(ctx context.Context, role employee.Role) ([]employee.NameRef, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name
		FROM employees
		WHERE role = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []employee.NameRef
	for rows.Next() {
		var ref employee.NameRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

func (r *employeeRepositoryImpl) ListDirectory(ctx context.Context) ([]employee.DirectoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.name, e.email, e.company_email, e.role,
			   COALESCE(array_agg(DISTINCT m.name) FILTER (WHERE m.id IS NOT NULL), '{}') AS managers,
			   COALESCE(array_agg(DISTINCT h.name) FILTER (WHERE h.id IS NOT NULL), '{}') AS hrs
		FROM employees e
		LEFT JOIN employee_managers em ON em.employee_id = e.id
		LEFT JOIN employees m ON m.id = em.manager_id
		LEFT JOIN employee_hrs eh ON eh.employee_id = e.id
		LEFT JOIN employees h ON h.id = eh.hr_id
		GROUP BY e.id, e.name, e.email, e.company_email, e.role
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []employee.DirectoryEntry
	for rows.Next() {
		var entry employee.DirectoryEntry
		err := rows.Scan(
			&entry.ID, &entry.Name, &entry.Email, &entry.CompanyEmail, &entry.Role,
			&entry.Managers, &entry.HRs,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *employeeRepositoryImpl) GetMasterAssignments(ctx context.Context, employeeID string) (managers []string, hrs []string, err error) {
	q := GetQuerier(ctx, r.db)

	// The master record keeps three manager slots and two HR slots. Slot
	// order is preserved in the returned lists.
	query := `
		SELECT m1.name, m2.name, m3.name, h1.name, h2.name
		FROM employee_masters em
		LEFT JOIN employees m1 ON m1.id = em.manager1_id
		LEFT JOIN employees m2 ON m2.id = em.manager2_id
		LEFT JOIN employees m3 ON m3.id = em.manager3_id
		LEFT JOIN employees h1 ON h1.id = em.hr1_id
		LEFT JOIN employees h2 ON h2.id = em.hr2_id
		WHERE em.employee_id = $1
	`

	var m1, m2, m3, h1, h2 *string
	err = q.QueryRow(ctx, query, employeeID).Scan(&m1, &m2, &m3, &h1, &h2)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to get master assignments: %w", err)
	}

	for _, name := range []*string{m1, m2, m3} {
		if name != nil {
			managers = append(managers, *name)
		}
	}
	for _, name := range []*string{h1, h2} {
		if name != nil {
			hrs = append(hrs, *name)
		}
	}

	return managers, hrs, nil
}

func (r *employeeRepositoryImpl) UpdateProfile(ctx context.Context, id, name, email string, locationID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, email = $2, location_id = COALESCE($3, location_id), updated_at = NOW()
		WHERE id = $4
	`

	commandTag, err := q.Exec(ctx, query, name, email, locationID, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) SetResetOTP(ctx context.Context, id string, otp *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET reset_otp = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, otp, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) GetLocationName(ctx context.Context, locationID string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT name FROM office_locations WHERE id = $1`

	var name string
	err := q.QueryRow(ctx, query, locationID).Scan(&name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return name, nil
}
