package attendance

import (
	"fmt"

	"github.com/worklane/hrms-backend-go/internal/pkg/validator"
)

type RecordDayRequest struct {
	EmployeeID string   `json:"employee_id"`
	Date       string   `json:"date"`
	Action     string   `json:"action"`
	Hours      float64  `json:"hours"`
	ProjectIDs []string `json:"project_ids"`
	SubTasks   []string `json:"sub_tasks"`
}

func (r RecordDayRequest) Validate() error {
	var ve validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		ve = append(ve, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.Date) {
		ve = append(ve, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		ve = append(ve, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if !ValidAction(Action(r.Action)) {
		ve = append(ve, validator.ValidationError{Field: "action", Message: "action must be one of Present, WFH, Leave"})
	}
	if r.Hours < 0 || r.Hours > 24 {
		ve = append(ve, validator.ValidationError{Field: "hours", Message: "hours must be between 0 and 24"})
	}
	if len(r.ProjectIDs) != len(r.SubTasks) {
		ve = append(ve, validator.ValidationError{Field: "project_ids", Message: "project_ids and sub_tasks must have the same length"})
	}

	if len(ve) > 0 {
		return ve
	}

	return nil
}

type SubmitBatchRequest struct {
	Entries []RecordDayRequest `json:"entries"`
}

func (r SubmitBatchRequest) Validate() error {
	var ve validator.ValidationErrors

	if len(r.Entries) == 0 {
		ve = append(ve, validator.ValidationError{Field: "entries", Message: "entries must not be empty"})
	}
	for i, e := range r.Entries {
		if err := e.Validate(); err != nil {
			if sub, ok := err.(validator.ValidationErrors); ok {
				for _, v := range sub {
					ve = append(ve, validator.ValidationError{
						Field:   fmt.Sprintf("entries[%d].%s", i, v.Field),
						Message: v.Message,
					})
				}
			}
		}
	}

	if len(ve) > 0 {
		return ve
	}

	return nil
}

// SubTaskResponse pairs a sub-task with the project it was logged under, so
// two projects sharing a sub-task name stay distinct.
type SubTaskResponse struct {
	Project string `json:"project"`
	SubTask string `json:"sub_task"`
}

type DaySummaryResponse struct {
	Date      string            `json:"date"`
	DayOfWeek string            `json:"day_of_week"`
	Action    string            `json:"action"`
	Hours     float64           `json:"hours"`
	Status    string            `json:"status"`
	Projects  []string          `json:"projects"`
	SubTasks  []SubTaskResponse `json:"sub_tasks"`
}

type WeeklySummaryResponse struct {
	WeekStart string               `json:"week_start"`
	WeekEnd   string               `json:"week_end"`
	Days      []DaySummaryResponse `json:"days"`
}

type TeamMemberSummaryResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Email        string `json:"email"`
	Present      int    `json:"present"`
	WFH          int    `json:"wfh"`
	Leave        int    `json:"leave"`
}

type ProjectResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
