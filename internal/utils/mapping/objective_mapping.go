package mapping

import (
	"database/sql"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
	"github.com/velorent/insurance_sales_app/internal/models"
)

// ToModelObjective converts a domain Objective to its database model.
func ToModelObjective(o domain.Objective) models.Objective {
	m := models.Objective{
		ObjectiveID:      o.ObjectiveID,
		EmployeeID:       o.EmployeeID,
		EmployeeName:     o.EmployeeName,
		Type:             string(o.Type),
		TargetAmount:     o.TargetAmount,
		TargetSalesCount: o.TargetSalesCount,
		PeriodStart:      o.PeriodStart,
		PeriodEnd:        o.PeriodEnd,
		IsActive:         o.IsActive,
		CreatedAt:        o.CreatedAt,
		CreatedBy:        o.CreatedBy,
		LastUpdatedAt:    o.LastUpdatedAt,
		LastUpdatedBy:    o.LastUpdatedBy,
	}
	if o.Description != "" {
		m.Description = sql.NullString{String: o.Description, Valid: true}
	}
	if o.DeletedAt != nil {
		m.DeletedAt = sql.NullTime{Time: *o.DeletedAt, Valid: true}
	}
	return m
}

// ToDomainObjective converts a database model Objective to its domain form.
func ToDomainObjective(m models.Objective) domain.Objective {
	o := domain.Objective{
		ObjectiveID:      m.ObjectiveID,
		EmployeeID:       m.EmployeeID,
		EmployeeName:     m.EmployeeName,
		Type:             domain.ObjectiveType(m.Type),
		TargetAmount:     m.TargetAmount,
		TargetSalesCount: m.TargetSalesCount,
		PeriodStart:      m.PeriodStart,
		PeriodEnd:        m.PeriodEnd,
		IsActive:         m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.Description.Valid {
		o.Description = m.Description.String
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		o.DeletedAt = &t
	}
	return o
}

// ToModelObjectiveHistory converts a domain ObjectiveHistory to its database model.
func ToModelObjectiveHistory(h domain.ObjectiveHistory) models.ObjectiveHistory {
	return models.ObjectiveHistory{
		HistoryID:          h.HistoryID,
		ObjectiveID:        h.ObjectiveID,
		EmployeeID:         h.EmployeeID,
		EmployeeName:       h.EmployeeName,
		Type:               string(h.Type),
		TargetAmount:       h.TargetAmount,
		TargetSalesCount:   h.TargetSalesCount,
		PeriodStart:        h.PeriodStart,
		PeriodEnd:          h.PeriodEnd,
		AchievedAmount:     h.AchievedAmount,
		AchievedSalesCount: h.AchievedSalesCount,
		Achieved:           h.Achieved,
		ArchivedAt:         h.ArchivedAt,
		ArchivedBy:         h.ArchivedBy,
	}
}

// ToDomainObjectiveHistory converts a database model ObjectiveHistory to its domain form.
func ToDomainObjectiveHistory(m models.ObjectiveHistory) domain.ObjectiveHistory {
	return domain.ObjectiveHistory{
		HistoryID:          m.HistoryID,
		ObjectiveID:        m.ObjectiveID,
		EmployeeID:         m.EmployeeID,
		EmployeeName:       m.EmployeeName,
		Type:               domain.ObjectiveType(m.Type),
		TargetAmount:       m.TargetAmount,
		TargetSalesCount:   m.TargetSalesCount,
		PeriodStart:        m.PeriodStart,
		PeriodEnd:          m.PeriodEnd,
		AchievedAmount:     m.AchievedAmount,
		AchievedSalesCount: m.AchievedSalesCount,
		Achieved:           m.Achieved,
		ArchivedAt:         m.ArchivedAt,
		ArchivedBy:         m.ArchivedBy,
	}
}
