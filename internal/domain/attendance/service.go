package attendance

import (
	"context"

	"github.com/worklane/hrms-backend-go/internal/domain/org"
)

type AttendanceService interface {
	// RecordDay writes one day's action and project allocations. Repeated
	// submissions for the same day replace the previous record.
	RecordDay(ctx context.Context, req RecordDayRequest) error

	// SubmitBatch records a set of days atomically. Any invalid entry
	// rejects the whole batch.
	SubmitBatch(ctx context.Context, req SubmitBatchRequest) error

	// WeeklySummary reports Monday through Sunday of the current week,
	// including days with no record.
	WeeklySummary(ctx context.Context, employeeID string) (WeeklySummaryResponse, error)

	// DailySummary reports each recorded day of the given month with
	// deduplicated project and sub-task lists.
	DailySummary(ctx context.Context, employeeID string, year, month int) ([]DaySummaryResponse, error)

	// TeamSummary tallies actions for every employee under the scope over
	// the given month. Zero month and year mean the unbounded default
	// window.
	TeamSummary(ctx context.Context, scopeID string, kind org.ScopeKind, month, year int) ([]TeamMemberSummaryResponse, error)

	// ActiveProjects lists the Active projects assigned to the employee.
	ActiveProjects(ctx context.Context, employeeID string) ([]ProjectResponse, error)
}
