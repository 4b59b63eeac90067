package org

import "errors"

var (
	ErrInvalidScope    = errors.New("scope must be Manager or HR")
	ErrSelfAssignment  = errors.New("an employee cannot be assigned to themselves")
	ErrUnknownEmployee = errors.New("employee or assignee does not exist")
)
