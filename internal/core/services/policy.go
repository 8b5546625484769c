package services

import (
	"github.com/velorent/insurance_sales_app/internal/apperrors"
	"github.com/velorent/insurance_sales_app/internal/core/domain"
)

// accessPolicy centralizes the visibility rules: admins see everything,
// employees only what they own. Violations surface as ErrForbidden rather
// than empty results so the client can tell "nothing there" from "not
// yours".
type accessPolicy struct{}

// canAccessSale reports whether the actor may read or modify the sale.
func (accessPolicy) canAccessSale(actor domain.Actor, sale domain.Sale) bool {
	return actor.IsAdmin() || sale.EmployeeID == actor.UserID
}

// canAccessEmployee reports whether the actor may read data belonging to
// the employee.
func (accessPolicy) canAccessEmployee(actor domain.Actor, employeeID string) bool {
	return actor.IsAdmin() || employeeID == actor.UserID
}

// scopeEmployeeID resolves the employee filter a query is allowed to use.
// Admins may ask for anyone (or everyone, with an empty ID); employees are
// pinned to themselves and asking for someone else is refused outright.
func (accessPolicy) scopeEmployeeID(actor domain.Actor, requested string) (string, error) {
	if actor.IsAdmin() {
		return requested, nil
	}
	if requested != "" && requested != actor.UserID {
		return "", apperrors.ErrForbidden
	}
	return actor.UserID, nil
}

// requireAdmin refuses non-admin actors.
func (accessPolicy) requireAdmin(actor domain.Actor) error {
	if !actor.IsAdmin() {
		return apperrors.ErrForbidden
	}
	return nil
}
