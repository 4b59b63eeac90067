package org

// ScopeKind selects which join table an aggregation is scoped by.
type ScopeKind string

const (
	ScopeManager ScopeKind = "Manager"
	ScopeHR      ScopeKind = "HR"
)

func ValidScope(s ScopeKind) bool {
	return s == ScopeManager || s == ScopeHR
}

// Assignment links an employee to a manager or HR. The master record keeps
// the primary slots; these rows hold the extras and are the only source the
// resolver consults.
type Assignment struct {
	EmployeeID string
	AssigneeID string
	Kind       ScopeKind
}
