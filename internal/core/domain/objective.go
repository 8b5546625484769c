package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ObjectiveType is the cadence of a sales objective.
type ObjectiveType string

const (
	ObjectiveWeekly  ObjectiveType = "WEEKLY"
	ObjectiveMonthly ObjectiveType = "MONTHLY"
	ObjectiveYearly  ObjectiveType = "YEARLY"
)

// Objective is a commission/sales-count target assigned to an employee for
// a bounded period. Periods for the same employee must not overlap.
type Objective struct {
	ObjectiveID      string          `json:"objectiveID"` // Primary Key (UUID)
	EmployeeID       string          `json:"employeeID"`
	EmployeeName     string          `json:"employeeName"`
	Type             ObjectiveType   `json:"type"`
	TargetAmount     decimal.Decimal `json:"targetAmount"`
	TargetSalesCount int             `json:"targetSalesCount"`
	PeriodStart      time.Time       `json:"periodStart"` // Always <= PeriodEnd
	PeriodEnd        time.Time       `json:"periodEnd"`
	IsActive         bool            `json:"isActive"`
	Description      string          `json:"description,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// Contains reports whether the instant falls inside the objective period,
// boundaries included.
func (o Objective) Contains(t time.Time) bool {
	return !t.Before(o.PeriodStart) && !t.After(o.PeriodEnd)
}

// ObjectiveHistory is an immutable archival snapshot of a completed
// objective together with the totals achieved. Written once at archival
// time and never mutated.
type ObjectiveHistory struct {
	HistoryID          string          `json:"historyID"` // Primary Key (UUID)
	ObjectiveID        string          `json:"objectiveID"`
	EmployeeID         string          `json:"employeeID"`
	EmployeeName       string          `json:"employeeName"`
	Type               ObjectiveType   `json:"type"`
	TargetAmount       decimal.Decimal `json:"targetAmount"`
	TargetSalesCount   int             `json:"targetSalesCount"`
	PeriodStart        time.Time       `json:"periodStart"`
	PeriodEnd          time.Time       `json:"periodEnd"`
	AchievedAmount     decimal.Decimal `json:"achievedAmount"`
	AchievedSalesCount int             `json:"achievedSalesCount"`
	Achieved           bool            `json:"achieved"`
	ArchivedAt         time.Time       `json:"archivedAt"`
	ArchivedBy         string          `json:"archivedBy"`
}
