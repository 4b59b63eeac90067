package attendance

import "time"

type Action string

const (
	ActionPresent Action = "Present"
	ActionWFH     Action = "WFH"
	ActionLeave   Action = "Leave"
)

func ValidAction(a Action) bool {
	switch a {
	case ActionPresent, ActionWFH, ActionLeave:
		return true
	}
	return false
}

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Action     Action
	Hours      float64
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProjectAllocation is one project/sub-task pair logged against a day.
type ProjectAllocation struct {
	ProjectID   string
	ProjectName string
	SubTask     string
}

// DayRecord is an attendance row joined with its allocations.
type DayRecord struct {
	Date        time.Time
	Action      Action
	Hours       float64
	Status      string
	Allocations []ProjectAllocation
}

// ActionCounts is a per-employee tally over a window.
type ActionCounts struct {
	EmployeeID    string
	EmployeeName  string
	EmployeeEmail string
	Present       int
	WFH           int
	Leave         int
}

type Project struct {
	ID        string
	Name      string
	Status    string
	CreatedAt time.Time
}

// WeekWindow returns the Monday and Sunday, both at UTC midnight, of the
// week containing t.
func WeekWindow(t time.Time) (time.Time, time.Time) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	monday := day.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}
