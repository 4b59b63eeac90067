package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/worklane/hrms-backend-go/internal/domain/attendance"
	"github.com/worklane/hrms-backend-go/internal/domain/org"
	"github.com/worklane/hrms-backend-go/internal/pkg/database"
	"github.com/worklane/hrms-backend-go/internal/pkg/validator"
)

// summaryEpoch is the lower bound of the default team summary window.
var summaryEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

type Service struct {
	tx       database.TxManager
	resolver org.Resolver
	attendance.AttendanceRepository
	attendance.ProjectRepository

	// now is swapped in tests to pin the week window.
	now func() time.Time
}

func NewService(tx database.TxManager, resolver org.Resolver, attendanceRepository attendance.AttendanceRepository, projectRepository attendance.ProjectRepository) *Service {
	return &Service{
		tx:                   tx,
		resolver:             resolver,
		AttendanceRepository: attendanceRepository,
		ProjectRepository:    projectRepository,
		now:                  time.Now,
	}
}

func (s *Service) RecordDay(ctx context.Context, req attendance.RecordDayRequest) error {
	entry, err := parseEntry(req)
	if err != nil {
		return err
	}

	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.writeEntry(ctx, entry)
	})
}

// SubmitBatch records every entry inside one transaction. A failing entry
// rolls back the whole batch.
func (s *Service) SubmitBatch(ctx context.Context, req attendance.SubmitBatchRequest) error {
	entries := make([]dayEntry, 0, len(req.Entries))
	for _, r := range req.Entries {
		entry, err := parseEntry(r)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, entry := range entries {
			if err := s.writeEntry(ctx, entry); err != nil {
				return err
			}
		}
		return nil
	})
}

type dayEntry struct {
	employeeID  string
	date        time.Time
	action      attendance.Action
	hours       float64
	allocations []attendance.ProjectAllocation
}

func parseEntry(req attendance.RecordDayRequest) (dayEntry, error) {
	action := attendance.Action(req.Action)
	if !attendance.ValidAction(action) {
		return dayEntry{}, attendance.ErrInvalidAction
	}
	if len(req.ProjectIDs) != len(req.SubTasks) {
		return dayEntry{}, attendance.ErrAllocationMismatch
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return dayEntry{}, fmt.Errorf("failed to parse date: %w", err)
	}

	allocations := make([]attendance.ProjectAllocation, 0, len(req.ProjectIDs))
	for i, projectID := range req.ProjectIDs {
		allocations = append(allocations, attendance.ProjectAllocation{
			ProjectID: projectID,
			SubTask:   req.SubTasks[i],
		})
	}

	return dayEntry{
		employeeID:  req.EmployeeID,
		date:        date,
		action:      action,
		hours:       req.Hours,
		allocations: allocations,
	}, nil
}

func (s *Service) writeEntry(ctx context.Context, entry dayEntry) error {
	attendanceID, err := s.AttendanceRepository.Upsert(ctx, entry.employeeID, entry.date, entry.action, entry.hours)
	if err != nil {
		return err
	}
	return s.AttendanceRepository.ReplaceProjectAllocations(ctx, attendanceID, entry.allocations)
}

// WeeklySummary reports Monday through Sunday of the current week. Days with
// no record appear with an empty action.
func (s *Service) WeeklySummary(ctx context.Context, employeeID string) (attendance.WeeklySummaryResponse, error) {
	monday, sunday := attendance.WeekWindow(s.now())

	records, err := s.AttendanceRepository.GetRange(ctx, employeeID, monday, sunday)
	if err != nil {
		return attendance.WeeklySummaryResponse{}, fmt.Errorf("failed to get weekly attendance: %w", err)
	}

	byDate := make(map[string]attendance.DayRecord, len(records))
	for _, rec := range records {
		byDate[rec.Date.Format("2006-01-02")] = rec
	}

	days := make([]attendance.DaySummaryResponse, 0, 7)
	for d := monday; !d.After(sunday); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		day := attendance.DaySummaryResponse{
			Date:      key,
			DayOfWeek: d.Weekday().String(),
			Projects:  []string{},
			SubTasks:  []attendance.SubTaskResponse{},
		}
		if rec, ok := byDate[key]; ok {
			day.Action = string(rec.Action)
			day.Hours = rec.Hours
			day.Status = rec.Status
			day.Projects, day.SubTasks = dedupAllocations(rec.Allocations)
		}
		days = append(days, day)
	}

	return attendance.WeeklySummaryResponse{
		WeekStart: monday.Format("2006-01-02"),
		WeekEnd:   sunday.Format("2006-01-02"),
		Days:      days,
	}, nil
}

// DailySummary reports each recorded day of the given month.
func (s *Service) DailySummary(ctx context.Context, employeeID string, year, month int) ([]attendance.DaySummaryResponse, error) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	records, err := s.AttendanceRepository.GetRange(ctx, employeeID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly attendance: %w", err)
	}

	days := make([]attendance.DaySummaryResponse, 0, len(records))
	for _, rec := range records {
		day := attendance.DaySummaryResponse{
			Date:      rec.Date.Format("2006-01-02"),
			DayOfWeek: rec.Date.Weekday().String(),
			Action:    string(rec.Action),
			Hours:     rec.Hours,
			Status:    rec.Status,
		}
		day.Projects, day.SubTasks = dedupAllocations(rec.Allocations)
		days = append(days, day)
	}

	return days, nil
}

// TeamSummary tallies actions per team member under the given scope. When
// month and year are both set the window covers that calendar month;
// otherwise it is effectively unbounded, ending tomorrow.
func (s *Service) TeamSummary(ctx context.Context, scopeID string, kind org.ScopeKind, month, year int) ([]attendance.TeamMemberSummaryResponse, error) {
	fromDate := summaryEpoch
	now := s.now()
	// The upper bound is exclusive.
	toDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	if month != 0 || year != 0 {
		if month < 1 || month > 12 {
			return nil, validator.ValidationErrors{{Field: "month", Message: "month must be between 1 and 12"}}
		}
		if year < 1 {
			return nil, validator.ValidationErrors{{Field: "year", Message: "year is required with month"}}
		}
		fromDate = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		toDate = fromDate.AddDate(0, 1, 0)
	}

	employeeIDs, err := s.resolver.Employees(ctx, kind, scopeID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve team: %w", err)
	}

	counts, err := s.AttendanceRepository.CountActions(ctx, employeeIDs, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance actions: %w", err)
	}

	summaries := make([]attendance.TeamMemberSummaryResponse, 0, len(counts))
	for _, c := range counts {
		summaries = append(summaries, attendance.TeamMemberSummaryResponse{
			EmployeeID:   c.EmployeeID,
			EmployeeName: c.EmployeeName,
			Email:        c.EmployeeEmail,
			Present:      c.Present,
			WFH:          c.WFH,
			Leave:        c.Leave,
		})
	}

	return summaries, nil
}

func (s *Service) ActiveProjects(ctx context.Context, employeeID string) ([]attendance.ProjectResponse, error) {
	projects, err := s.ProjectRepository.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active projects: %w", err)
	}

	responses := make([]attendance.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, attendance.ProjectResponse{ID: p.ID, Name: p.Name})
	}
	return responses, nil
}

// dedupAllocations collapses repeated project names and (project, sub-task)
// pairs while keeping first-seen order. Sub-tasks are keyed per project so
// the same sub-task name under two projects yields two entries.
func dedupAllocations(allocations []attendance.ProjectAllocation) (projects []string, subTasks []attendance.SubTaskResponse) {
	projects = []string{}
	subTasks = []attendance.SubTaskResponse{}
	seenProjects := make(map[string]bool)
	seenTasks := make(map[attendance.SubTaskResponse]bool)
	for _, alloc := range allocations {
		name := alloc.ProjectName
		if name == "" {
			name = alloc.ProjectID
		}
		if !seenProjects[name] {
			seenProjects[name] = true
			projects = append(projects, name)
		}
		if alloc.SubTask == "" {
			continue
		}
		pair := attendance.SubTaskResponse{Project: name, SubTask: alloc.SubTask}
		if !seenTasks[pair] {
			seenTasks[pair] = true
			subTasks = append(subTasks, pair)
		}
	}
	return projects, subTasks
}
