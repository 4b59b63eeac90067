package leave

import (
	"time"

	"github.com/worklane/hrms-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	Reason     string `json:"reason"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid YYYY-MM-DD date",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid YYYY-MM-DD date",
		})
	}

	if okStart && okEnd && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must not be after end_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideLeaveRequest struct {
	RequestID string   `json:"request_id"`
	Decision  Decision `json:"decision"`
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if !ValidDecision(r.Decision) {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be Approved or Rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetBalanceRequest struct {
	EmployeeID   string `json:"employee_id"`
	SickLeaves   int    `json:"sick_leaves"`
	CasualLeaves int    `json:"casual_leaves"`
	PaidLeaves   int    `json:"paid_leaves"`
}

func (r *SetBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.SickLeaves < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "sick_leaves",
			Message: "sick_leaves must not be negative",
		})
	}
	if r.CasualLeaves < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "casual_leaves",
			Message: "casual_leaves must not be negative",
		})
	}
	if r.PaidLeaves < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "paid_leaves",
			Message: "paid_leaves must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  *string   `json:"employee_name,omitempty"`
	EmployeeEmail *string   `json:"employee_email,omitempty"`
	LeaveType     string    `json:"leave_type"`
	Reason        string    `json:"reason"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	NoOfDays      int       `json:"no_of_days"`
	ManagerStatus Decision  `json:"manager_status"`
	HRStatus      Decision  `json:"hr_status"`
	Status        Decision  `json:"final_status"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type LeaveBalanceResponse struct {
	EmployeeID   string    `json:"employee_id"`
	SickLeaves   int       `json:"sick_leaves"`
	CasualLeaves int       `json:"casual_leaves"`
	PaidLeaves   int       `json:"paid_leaves"`
	UpdatedAt    time.Time `json:"updated_at"`
}
