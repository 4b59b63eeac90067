package org

import "github.com/worklane/hrms-backend-go/internal/pkg/validator"

type AssignRequest struct {
	EmployeeID string `json:"employee_id"`
	AssigneeID string `json:"assignee_id"`
	Scope      string `json:"scope"`
}

func (r AssignRequest) Validate() error {
	var ve validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		ve = append(ve, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.AssigneeID) {
		ve = append(ve, validator.ValidationError{Field: "assignee_id", Message: "assignee_id is required"})
	}
	if !ValidScope(ScopeKind(r.Scope)) {
		ve = append(ve, validator.ValidationError{Field: "scope", Message: "scope must be one of Manager, HR"})
	}

	if len(ve) > 0 {
		return ve
	}

	return nil
}
