package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklane/hrms-backend-go/internal/domain/attendance"
	"github.com/worklane/hrms-backend-go/internal/domain/org"
)

type fakeTxManager struct {
	rolledBack bool
}

func (f *fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err != nil {
		f.rolledBack = true
	}
	return err
}

type fakeResolver struct {
	employees []string
	gotKind   org.ScopeKind
	gotScope  string
}

func (f *fakeResolver) Employees(ctx context.Context, kind org.ScopeKind, scopeID string) ([]string, error) {
	f.gotKind = kind
	f.gotScope = scopeID
	return f.employees, nil
}

type fakeAttendanceRepo struct {
	upsertFn       func(ctx context.Context, employeeID string, date time.Time, action attendance.Action, hours float64) (string, error)
	replaceFn      func(ctx context.Context, attendanceID string, allocations []attendance.ProjectAllocation) error
	getRangeFn     func(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.DayRecord, error)
	countActionsFn func(ctx context.Context, employeeIDs []string, from, to time.Time) ([]attendance.ActionCounts, error)
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, employeeID string, date time.Time, action attendance.Action, hours float64) (string, error) {
	return f.upsertFn(ctx, employeeID, date, action, hours)
}

func (f *fakeAttendanceRepo) ReplaceProjectAllocations(ctx context.Context, attendanceID string, allocations []attendance.ProjectAllocation) error {
	return f.replaceFn(ctx, attendanceID, allocations)
}

func (f *fakeAttendanceRepo) GetRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.DayRecord, error) {
	return f.getRangeFn(ctx, employeeID, from, to)
}

func (f *fakeAttendanceRepo) CountActions(ctx context.Context, employeeIDs []string, from, to time.Time) ([]attendance.ActionCounts, error) {
	return f.countActionsFn(ctx, employeeIDs, from, to)
}

type fakeProjectRepo struct {
	projects []attendance.Project
}

func (f *fakeProjectRepo) GetActiveByEmployee(ctx context.Context, employeeID string) ([]attendance.Project, error) {
	return f.projects, nil
}

func TestRecordDayUpsertsWithAllocations(t *testing.T) {
	var gotAction attendance.Action
	var gotHours float64
	var gotAllocations []attendance.ProjectAllocation
	repo := &fakeAttendanceRepo{
		upsertFn: func(ctx context.Context, employeeID string, date time.Time, action attendance.Action, hours float64) (string, error) {
			gotAction = action
			gotHours = hours
			return "att-1", nil
		},
		replaceFn: func(ctx context.Context, attendanceID string, allocations []attendance.ProjectAllocation) error {
			assert.Equal(t, "att-1", attendanceID)
			gotAllocations = allocations
			return nil
		},
	}
	svc := NewService(&fakeTxManager{}, &fakeResolver{}, repo, &fakeProjectRepo{})

	err := svc.RecordDay(context.Background(), attendance.RecordDayRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-10",
		Action:     "WFH",
		Hours:      7.5,
		ProjectIDs: []string{"p1", "p2"},
		SubTasks:   []string{"design", "review"},
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.ActionWFH, gotAction)
	assert.Equal(t, 7.5, gotHours)
	require.Len(t, gotAllocations, 2)
	assert.Equal(t, "p1", gotAllocations[0].ProjectID)
	assert.Equal(t, "design", gotAllocations[0].SubTask)
}

func TestRecordDayInvalidAction(t *testing.T) {
	svc := NewService(&fakeTxManager{}, &fakeResolver{}, &fakeAttendanceRepo{}, &fakeProjectRepo{})

	err := svc.RecordDay(context.Background(), attendance.RecordDayRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-10",
		Action:     "Vacation",
	})
	assert.ErrorIs(t, err, attendance.ErrInvalidAction)
}

func TestRecordDayAllocationMismatch(t *testing.T) {
	svc := NewService(&fakeTxManager{}, &fakeResolver{}, &fakeAttendanceRepo{}, &fakeProjectRepo{})

	err := svc.RecordDay(context.Background(), attendance.RecordDayRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-10",
		Action:     "Present",
		ProjectIDs: []string{"p1", "p2"},
		SubTasks:   []string{"design"},
	})
	assert.ErrorIs(t, err, attendance.ErrAllocationMismatch)
}

func TestSubmitBatchRollsBackOnFailure(t *testing.T) {
	writeErr := errors.New("constraint violation")
	calls := 0
	repo := &fakeAttendanceRepo{
		upsertFn: func(ctx context.Context, employeeID string, date time.Time, action attendance.Action, hours float64) (string, error) {
			calls++
			if calls == 2 {
				return "", writeErr
			}
			return "att-1", nil
		},
		replaceFn: func(ctx context.Context, attendanceID string, allocations []attendance.ProjectAllocation) error {
			return nil
		},
	}
	tx := &fakeTxManager{}
	svc := NewService(tx, &fakeResolver{}, repo, &fakeProjectRepo{})

	err := svc.SubmitBatch(context.Background(), attendance.SubmitBatchRequest{
		Entries: []attendance.RecordDayRequest{
			{EmployeeID: "emp-1", Date: "2025-03-10", Action: "Present", Hours: 8},
			{EmployeeID: "emp-1", Date: "2025-03-11", Action: "WFH", Hours: 8},
		},
	})
	assert.ErrorIs(t, err, writeErr)
	assert.True(t, tx.rolledBack)
}

func TestSubmitBatchRejectsBeforeAnyWrite(t *testing.T) {
	repo := &fakeAttendanceRepo{
		upsertFn: func(ctx context.Context, employeeID string, date time.Time, action attendance.Action, hours float64) (string, error) {
			t.Fatal("no write expected for an invalid batch")
			return "", nil
		},
	}
	svc := NewService(&fakeTxManager{}, &fakeResolver{}, repo, &fakeProjectRepo{})

	err := svc.SubmitBatch(context.Background(), attendance.SubmitBatchRequest{
		Entries: []attendance.RecordDayRequest{
			{EmployeeID: "emp-1", Date: "2025-03-10", Action: "Present"},
			{EmployeeID: "emp-1", Date: "2025-03-11", Action: "Nope"},
		},
	})
	assert.ErrorIs(t, err, attendance.ErrInvalidAction)
}

func TestWeeklySummaryCoversAllSevenDays(t *testing.T) {
	repo := &fakeAttendanceRepo{
		getRangeFn: func(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.DayRecord, error) {
			return []attendance.DayRecord{
				{
					Date:   time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
					Action: attendance.ActionPresent,
					Hours:  7.5,
					Status: "Present",
					Allocations: []attendance.ProjectAllocation{
						{ProjectID: "p1", ProjectName: "Atlas", SubTask: "design"},
						{ProjectID: "p1", ProjectName: "Atlas", SubTask: "design"},
					},
				},
			}, nil
		},
	}
	svc := NewService(&fakeTxManager{}, &fakeResolver{}, repo, &fakeProjectRepo{})
	// Wednesday 2025-03-12; the week runs Monday 03-10 through Sunday 03-16.
	svc.now = func() time.Time { return time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC) }

	result, err := svc.WeeklySummary(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", result.WeekStart)
	assert.Equal(t, "2025-03-16", result.WeekEnd)
	require.Len(t, result.Days, 7)

	assert.Equal(t, "Monday", result.Days[0].DayOfWeek)
	assert.Empty(t, result.Days[0].Action)
	assert.Zero(t, result.Days[0].Hours)

	tuesday := result.Days[1]
	assert.Equal(t, "2025-03-11", tuesday.Date)
	assert.Equal(t, "Present", tuesday.Action)
	assert.Equal(t, 7.5, tuesday.Hours)
	assert.Equal(t, "Present", tuesday.Status)
	assert.Equal(t, []string{"Atlas"}, tuesday.Projects)
	assert.Equal(t, []attendance.SubTaskResponse{{Project: "Atlas", SubTask: "design"}}, tuesday.SubTasks)
}

func TestDailySummaryDeduplicates(t *testing.T) {
	repo := &fakeAttendanceRepo{
		getRangeFn: func(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.DayRecord, error) {
			assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), from)
			assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), to)
			return []attendance.DayRecord{
				{
					Date:   time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
					Action: attendance.ActionLeave,
					Hours:  8,
					Status: "Leave",
					Allocations: []attendance.ProjectAllocation{
						{ProjectID: "p1", ProjectName: "Atlas", SubTask: "qa"},
						{ProjectID: "p2", ProjectName: "Borealis", SubTask: "qa"},
					},
				},
			}, nil
		},
	}
	svc := NewService(&fakeTxManager{}, &fakeResolver{}, repo, &fakeProjectRepo{})

	result, err := svc.DailySummary(context.Background(), "emp-1", 2025, 2)
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "Monday", result[0].DayOfWeek)
	assert.Equal(t, 8.0, result[0].Hours)
	assert.Equal(t, "Leave", result[0].Status)
	assert.Equal(t, []string{"Atlas", "Borealis"}, result[0].Projects)
	// The same sub-task name under two projects stays as two entries.
	assert.Equal(t, []attendance.SubTaskResponse{
		{Project: "Atlas", SubTask: "qa"},
		{Project: "Borealis", SubTask: "qa"},
	}, result[0].SubTasks)
}

func TestTeamSummaryDefaultWindow(t *testing.T) {
	var gotFrom, gotTo time.Time
	repo := &fakeAttendanceRepo{
		countActionsFn: func(ctx context.Context, employeeIDs []string, from, to time.Time) ([]attendance.ActionCounts, error) {
			gotFrom, gotTo = from, to
			return []attendance.ActionCounts{
				{EmployeeID: "emp-1", EmployeeName: "Ana", EmployeeEmail: "ana@worklane.io", Present: 3, WFH: 1},
				{EmployeeID: "emp-2", EmployeeName: "Ben", EmployeeEmail: "ben@worklane.io"},
			}, nil
		},
	}
	svc := NewService(&fakeTxManager{}, &fakeResolver{employees: []string{"emp-1", "emp-2"}}, repo, &fakeProjectRepo{})
	svc.now = func() time.Time { return time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC) }

	result, err := svc.TeamSummary(context.Background(), "mgr-1", org.ScopeManager, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), gotFrom)
	assert.Equal(t, time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), gotTo)

	// Members without any record still appear with zero counts.
	require.Len(t, result, 2)
	assert.Equal(t, 3, result[0].Present)
	assert.Equal(t, "ana@worklane.io", result[0].Email)
	assert.Equal(t, 0, result[1].Present)
	assert.Equal(t, "ben@worklane.io", result[1].Email)
}

func TestTeamSummaryMonthWindow(t *testing.T) {
	var gotFrom, gotTo time.Time
	repo := &fakeAttendanceRepo{
		countActionsFn: func(ctx context.Context, employeeIDs []string, from, to time.Time) ([]attendance.ActionCounts, error) {
			gotFrom, gotTo = from, to
			return nil, nil
		},
	}
	svc := NewService(&fakeTxManager{}, &fakeResolver{employees: []string{"emp-1"}}, repo, &fakeProjectRepo{})

	_, err := svc.TeamSummary(context.Background(), "mgr-1", org.ScopeManager, 3, 2025)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), gotFrom)
	// The window ends just before the first of the next month.
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), gotTo)
}

func TestTeamSummaryInvalidMonth(t *testing.T) {
	svc := NewService(&fakeTxManager{}, &fakeResolver{}, &fakeAttendanceRepo{}, &fakeProjectRepo{})

	_, err := svc.TeamSummary(context.Background(), "mgr-1", org.ScopeManager, 13, 2025)
	assert.Error(t, err)
}

func TestTeamSummaryResolvesHRScope(t *testing.T) {
	resolver := &fakeResolver{employees: []string{"emp-1"}}
	repo := &fakeAttendanceRepo{
		countActionsFn: func(ctx context.Context, employeeIDs []string, from, to time.Time) ([]attendance.ActionCounts, error) {
			return nil, nil
		},
	}
	svc := NewService(&fakeTxManager{}, resolver, repo, &fakeProjectRepo{})

	_, err := svc.TeamSummary(context.Background(), "hr-1", org.ScopeHR, 0, 0)
	require.NoError(t, err)

	// An HR caller must be resolved against the HR assignments, not the
	// manager join table.
	assert.Equal(t, org.ScopeHR, resolver.gotKind)
	assert.Equal(t, "hr-1", resolver.gotScope)
}

func TestActiveProjects(t *testing.T) {
	repo := &fakeProjectRepo{projects: []attendance.Project{
		{ID: "p2", Name: "Borealis", Status: "Active"},
		{ID: "p1", Name: "Atlas", Status: "Active"},
	}}
	svc := NewService(&fakeTxManager{}, &fakeResolver{}, &fakeAttendanceRepo{}, repo)

	result, err := svc.ActiveProjects(context.Background(), "emp-1")
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "Borealis", result[0].Name)
}
