package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert writes the action and hours for (employeeID, date), replacing
	// any prior record for that day, and returns the row id. The status
	// column mirrors the action.
	Upsert(ctx context.Context, employeeID string, date time.Time, action Action, hours float64) (string, error)

	// ReplaceProjectAllocations swaps the allocation set of an attendance row.
	ReplaceProjectAllocations(ctx context.Context, attendanceID string, allocations []ProjectAllocation) error

	// GetRange returns day records for one employee between from and to
	// inclusive, ordered by date.
	GetRange(ctx context.Context, employeeID string, from, to time.Time) ([]DayRecord, error)

	// CountActions tallies actions per employee over [from, to) for the
	// given employee set. Employees with no rows still appear with zeros.
	CountActions(ctx context.Context, employeeIDs []string, from, to time.Time) ([]ActionCounts, error)
}

type ProjectRepository interface {
	// GetActiveByEmployee returns Active projects assigned to the employee,
	// newest first.
	GetActiveByEmployee(ctx context.Context, employeeID string) ([]Project, error)
}
